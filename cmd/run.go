package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/advisor"
	"github.com/spigell/career-advisor/internal/logger"
	"github.com/spigell/career-advisor/internal/profile"
	"github.com/spigell/career-advisor/internal/scoring"
	"github.com/spigell/career-advisor/internal/view"
)

const (
	PromptSetName       = "Set name"
	PromptExperience    = "Choose experience level"
	PromptAddSkill      = "Add skill"
	PromptRemoveSkill   = "Remove skill"
	PromptInterests     = "Set interests (comma separated)"
	PromptExample       = "Use example profile"
	PromptGenerate      = "Get career matches"
	PromptEdit          = "Edit profile"
	PromptSelectCareer  = "Select a career"
	PromptViewRoadmap   = "View roadmap"
	PromptResumeHelper  = "Open resume helper"
	PromptQuit          = "Quit"
	PromptBack          = "back"
	generatingIndicator = "Generating..."
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive career advisor session",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("example", false, "start with the example profile")
	runCmd.Flags().Duration("latency", scoring.DefaultLatency, "simulated latency of a suggestion request")

	viper.BindPFlag("latency", runCmd.Flags().Lookup("latency"))
}

// run is the interactive session loop.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	defer logger.Sync()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	session, err := newSession(config, logger)
	if err != nil {
		logger.Fatal("preparing a session", zap.Error(err))
	}

	if example, _ := cmd.Flags().GetBool("example"); example {
		session.LoadExample()
	}

	logger.Info("starting the career-advisor", zap.String("version", version), zap.String("session_id", session.ID()))

	out := cmd.OutOrStdout()
	for {
		if err := render(out, session); err != nil {
			logger.Fatal("rendering", zap.Error(err))
		}

		state := session.Snapshot()
		menu := promptui.Select{
			Label: "What next?",
			Items: menuItems(state),
			Size:  12,
		}

		_, action, err := menu.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				logger.Info("exiting", zap.String("reason", "interrupted"))
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(ctx, out, action, session, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func newSession(config *Config, logger *zap.Logger) (*advisor.Session, error) {
	c, err := loadCatalog(logger)
	if err != nil {
		return nil, err
	}

	scorer := scoring.NewScorer(c, logger, scoring.WithLatency(config.Latency))
	return advisor.New(config.startingProfile(), scorer, logger), nil
}

// menuItems mirrors the buttons available on the current screen.
func menuItems(state advisor.State) []string {
	var items []string
	switch state.Step {
	case advisor.StepResults:
		items = []string{PromptSelectCareer, PromptViewRoadmap, PromptEdit}
	default:
		items = []string{
			PromptGenerate,
			PromptSetName,
			PromptExperience,
			PromptAddSkill,
			PromptRemoveSkill,
			PromptInterests,
			PromptExample,
		}
	}

	if state.Selected != nil {
		items = append(items, PromptResumeHelper)
	}

	return append(items, PromptQuit)
}

func handleAction(ctx context.Context, out io.Writer, action string, session *advisor.Session, logger *zap.Logger) error {
	switch action {
	case PromptQuit:
		logger.Info("exiting", zap.String("reason", "quit selected"))
		return errExit
	case PromptSetName:
		name, err := (&promptui.Prompt{Label: "Name", Default: session.Profile().Name}).Run()
		if err != nil {
			return ignoreAbort(err)
		}
		session.SetName(name)
	case PromptExperience:
		return chooseExperience(session)
	case PromptAddSkill:
		skill, err := (&promptui.Prompt{Label: "Skill"}).Run()
		if err != nil {
			return ignoreAbort(err)
		}
		session.AddSkill(skill)
	case PromptRemoveSkill:
		return removeSkill(session)
	case PromptInterests:
		raw, err := (&promptui.Prompt{Label: "Interests", Default: session.Profile().InterestsText()}).Run()
		if err != nil {
			return ignoreAbort(err)
		}
		session.SetInterests(raw)
	case PromptExample:
		session.LoadExample()
	case PromptGenerate:
		return generate(ctx, out, session, logger)
	case PromptEdit:
		session.Edit()
	case PromptSelectCareer:
		return selectCareer(session)
	case PromptViewRoadmap:
		if _, ok := session.ViewRoadmap(); !ok {
			logger.Warn("no suggestions to show a roadmap for")
		}
	case PromptResumeHelper:
		fmt.Fprintln(out, session.ResumeHelper())
	default:
		return fmt.Errorf("invalid action: %s", action)
	}

	return nil
}

func generate(ctx context.Context, out io.Writer, session *advisor.Session, logger *zap.Logger) error {
	fmt.Fprintln(out, generatingIndicator)

	err := session.Generate(ctx)
	if errors.Is(err, advisor.ErrSuperseded) {
		logger.Debug("suggestions superseded by a newer request")
		return nil
	}
	return err
}

func chooseExperience(session *advisor.Session) error {
	levels := profile.ExperienceLevels()
	items := make([]string, 0, len(levels))
	for _, level := range levels {
		items = append(items, string(level))
	}

	current := session.Profile().Experience
	cursor := 0
	for idx, level := range levels {
		if level == current {
			cursor = idx
		}
	}

	selectPrompt := promptui.Select{
		Label:     "Experience level",
		Items:     items,
		CursorPos: cursor,
	}

	_, selected, err := selectPrompt.Run()
	if err != nil {
		return ignoreAbort(err)
	}

	session.SetExperience(profile.ParseExperience(selected))
	return nil
}

func removeSkill(session *advisor.Session) error {
	skills := session.Profile().Skills
	if len(skills) == 0 {
		return nil
	}

	skillPrompt := promptui.Select{
		Label: "Choose a skill to remove",
		Items: append(skills, PromptBack),
	}

	_, selected, err := skillPrompt.Run()
	if err != nil {
		return ignoreAbort(err)
	}

	if selected != PromptBack {
		session.RemoveSkill(selected)
	}
	return nil
}

func selectCareer(session *advisor.Session) error {
	suggestions := session.Snapshot().Suggestions

	items := make([]string, 0, len(suggestions)+1)
	for _, s := range suggestions {
		items = append(items, careerLabel(s))
	}

	careerPrompt := promptui.Select{
		Label: "Choose a career and press ENTER",
		Items: append(items, PromptBack),
	}

	idx, selected, err := careerPrompt.Run()
	if err != nil {
		return ignoreAbort(err)
	}

	if selected == PromptBack {
		return nil
	}

	_, err = session.Select(suggestions[idx].ID)
	return err
}

func careerLabel(s scoring.ScoredCareer) string {
	return fmt.Sprintf("%s (score %d, %s)", s.Title, s.Score, s.Timeline)
}

func render(out io.Writer, session *advisor.Session) error {
	screen, err := view.Render(session.Snapshot())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "\n%s\n\n", screen)
	return err
}

// ignoreAbort treats ctrl+c inside a nested prompt as "go back".
func ignoreAbort(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}
	return err
}
