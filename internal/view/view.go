// Package view renders advisor state as plain text for the terminal.
package view

import (
	"embed"
	"strings"
	"sync"
	"text/template"

	"github.com/spigell/career-advisor/internal/advisor"
	"github.com/spigell/career-advisor/internal/scoring"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	templates    *template.Template
	templateOnce sync.Once
	templateErr  error
)

// NextSteps is the static advice shown beside every roadmap.
var NextSteps = []string{
	"Enroll in 1 relevant course",
	"Build 2 portfolio projects",
	"Publish a GitHub README + demo",
}

func execute(name string, data any) (string, error) {
	templateOnce.Do(func() {
		funcMap := template.FuncMap{
			"add":       func(a, b int) int { return a + b },
			"join":      strings.Join,
			"explain":   scoring.Explain,
			"nextSteps": func() []string { return NextSteps },
		}
		templates, templateErr = template.New("view").Funcs(funcMap).ParseFS(templateFS, "templates/*.tmpl")
	})

	if templateErr != nil {
		return "", templateErr
	}

	var builder strings.Builder
	if err := templates.ExecuteTemplate(&builder, name, data); err != nil {
		return "", err
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}

func Onboard(state advisor.State) (string, error) {
	return execute("onboard", state)
}

func Results(state advisor.State) (string, error) {
	return execute("results", state)
}

func Detail(career scoring.ScoredCareer) (string, error) {
	return execute("detail", career)
}

// Render draws the screen for the current step followed by the detail
// overlay when a career is selected.
func Render(state advisor.State) (string, error) {
	var (
		screen string
		err    error
	)

	switch state.Step {
	case advisor.StepResults:
		screen, err = Results(state)
	default:
		screen, err = Onboard(state)
	}
	if err != nil {
		return "", err
	}

	if state.Selected == nil {
		return screen, nil
	}

	detail, err := Detail(*state.Selected)
	if err != nil {
		return "", err
	}

	return screen + "\n\n" + strings.Repeat("-", 40) + "\n" + detail, nil
}
