package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-advisor/internal/advisor"
	"github.com/spigell/career-advisor/internal/logger"
	"github.com/spigell/career-advisor/internal/profile"
	"github.com/spigell/career-advisor/internal/scoring"
	"github.com/spigell/career-advisor/internal/utils"
	"github.com/spigell/career-advisor/internal/view"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// ScoreOptions are the flags of the score command.
type ScoreOptions struct {
	Name       string
	Skills     []string
	Interests  string
	Experience string
	Example    bool
	Roadmap    bool
	Output     string
}

// ScoreReport is the JSON form of the score command output.
type ScoreReport struct {
	Profile     *profile.Profile       `json:"profile"`
	Suggestions []scoring.ScoredCareer `json:"suggestions"`
	Selected    *scoring.ScoredCareer  `json:"selected,omitempty"`
}

var scoreOpts ScoreOptions

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the career catalog for a profile given by flags and print the ranking",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			log.Fatalf("creating a logger: %s", err)
		}
		defer logger.Sync()

		config, err := getConfig()
		if err != nil {
			logger.Fatal("getting a config", zap.Error(err))
		}

		if err := score(cmd.Context(), cmd.OutOrStdout(), config, scoreOpts, cmd.Flags().Changed("interests"), logger); err != nil {
			logger.Fatal("scoring", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVar(&scoreOpts.Name, "name", "", "your name")
	scoreCmd.Flags().StringArrayVarP(&scoreOpts.Skills, "skill", "s", nil, "a skill you have, repeat for more")
	scoreCmd.Flags().StringVarP(&scoreOpts.Interests, "interests", "i", "", "comma separated interests")
	scoreCmd.Flags().StringVar(&scoreOpts.Experience, "experience", "", "experience level: Student, Intern, 1-2 yrs, 3+ yrs")
	scoreCmd.Flags().BoolVar(&scoreOpts.Example, "example", false, "start from the example profile")
	scoreCmd.Flags().BoolVar(&scoreOpts.Roadmap, "roadmap", false, "also print the roadmap of the top career")
	scoreCmd.Flags().StringVarP(&scoreOpts.Output, "output", "o", outputText, "output format: text or json")
}

// score runs a non-interactive session: the profile is built from opts, scored
// without simulated latency and printed.
func score(ctx context.Context, out io.Writer, config *Config, opts ScoreOptions, interestsSet bool, logger *zap.Logger) error {
	if opts.Output != outputText && opts.Output != outputJSON {
		return fmt.Errorf("unsupported output format: %s", opts.Output)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := loadCatalog(logger)
	if err != nil {
		return err
	}

	scorer := scoring.NewScorer(c, logger, scoring.WithDelay(utils.NoDelay))
	session := advisor.New(config.startingProfile(), scorer, logger)

	if opts.Example {
		session.LoadExample()
	}
	if opts.Name != "" {
		session.SetName(opts.Name)
	}
	if len(opts.Skills) > 0 {
		for _, skill := range session.Profile().Skills {
			session.RemoveSkill(skill)
		}
		for _, skill := range opts.Skills {
			session.AddSkill(skill)
		}
	}
	if interestsSet {
		session.SetInterests(opts.Interests)
	}
	if opts.Experience != "" {
		session.SetExperience(profile.ParseExperience(opts.Experience))
	}

	if err := session.Generate(ctx); err != nil {
		return err
	}

	if opts.Roadmap {
		session.ViewRoadmap()
	}

	state := session.Snapshot()

	if opts.Output == outputJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(ScoreReport{
			Profile:     state.Profile,
			Suggestions: state.Suggestions,
			Selected:    state.Selected,
		})
	}

	screen, err := view.Render(state)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, screen)
	return err
}
