package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/layza-app/layza/internal/cli/formatter"
	"github.com/layza-app/layza/internal/domain"
	"github.com/spf13/cobra"
)

// layzaHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func layzaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// selectSubject prompts for one of the three subjects.
func selectSubject(app *App) (domain.Subject, error) {
	options := make([]huh.Option[domain.Subject], 0, len(domain.AllSubjects))
	for _, subj := range domain.AllSubjects {
		options = append(options, huh.NewOption(subj.DisplayName(), subj))
	}

	var picked domain.Subject
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Subject]().
				Title("Qual matéria?").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(layzaHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", err
	}
	return picked, nil
}

// menuAction is one entry of the interactive menu.
type menuAction string

const (
	actionChat     menuAction = "chat"
	actionExam     menuAction = "exam"
	actionGrade    menuAction = "grade"
	actionProfile  menuAction = "profile"
	actionReport   menuAction = "report"
	actionQuiz     menuAction = "quiz"
	actionTip      menuAction = "tip"
	actionFeedback menuAction = "feedback"
	actionQuit     menuAction = "quit"
)

// runMenu loops the interactive menu until the student leaves.
func runMenu(app *App) error {
	out := app.out()
	fmt.Fprintln(out, formatter.Header(fmt.Sprintf("E aí, %s! Eu sou a Layza.", app.Student.Name)))

	for {
		action, err := selectAction(app)
		if err != nil {
			return err
		}

		switch action {
		case actionChat:
			err = runMenuChat(app)
		case actionExam:
			err = runMenuExam(app)
		case actionGrade:
			err = runMenuGrade(app)
		case actionProfile:
			err = runForCmd(app, newProfileCmd(app))
		case actionReport:
			err = runForCmd(app, newReportCmd(app))
		case actionQuiz:
			err = runForCmd(app, newQuizCmd(app))
		case actionTip:
			err = runForCmd(app, newTipCmd(app))
		case actionFeedback:
			err = runMenuFeedback(app)
		case actionQuit:
			fmt.Fprintln(out, "Até a próxima!")
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, formatter.StyleRed.Render(err.Error()))
		}
	}
}

func selectAction(app *App) (menuAction, error) {
	options := []huh.Option[menuAction]{
		huh.NewOption("Tirar uma dúvida", actionChat),
		huh.NewOption("Corrigir uma prova", actionExam),
		huh.NewOption("Adicionar nota", actionGrade),
		huh.NewOption("Ver perfil", actionProfile),
		huh.NewOption("Ver relatório", actionReport),
		huh.NewOption("Fazer um quiz", actionQuiz),
		huh.NewOption("Pedir uma dica", actionTip),
		huh.NewOption("Dar feedback", actionFeedback),
		huh.NewOption("Sair", actionQuit),
	}
	if !app.Student.Role.CanCorrectExams() {
		options = append(options[:1], options[2:]...)
	}

	var picked menuAction
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[menuAction]().
				Title("O que vamos fazer?").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(layzaHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return actionQuit, err
	}
	return picked, nil
}

func runMenuChat(app *App) error {
	subj, err := selectSubject(app)
	if err != nil {
		return err
	}
	return runChat(app, app.newSession(subj))
}

func runMenuExam(app *App) error {
	subj, err := selectSubject(app)
	if err != nil {
		return err
	}
	return runExam(app, app.newSession(subj))
}

func runMenuGrade(app *App) error {
	subj, err := selectSubject(app)
	if err != nil {
		return err
	}
	value, err := promptLine(app.in(), app.out(), "Qual foi a nota (0 a 100)? ")
	if err != nil {
		return nil
	}
	return runForCmd(app, newGradeCmd(app), string(subj), value)
}

func runMenuFeedback(app *App) error {
	liked := promptYesNoIO(app.in(), app.out(), "Gostou da Layza? [s/N] ", false)
	comment, _ := promptLine(app.in(), app.out(), "Quer deixar um comentário? (Enter pula) ")
	if err := app.Profile.SaveFeedback(context.Background(), app.Student.Name, liked, comment); err != nil {
		return err
	}
	fmt.Fprintln(app.out(), "Valeu pelo feedback!")
	return nil
}

// runForCmd executes a subcommand in place, reusing its RunE wiring. Args
// must be set explicitly or cobra falls back to os.Args.
func runForCmd(app *App, cmd *cobra.Command, args ...string) error {
	if args == nil {
		// cobra treats nil args as "use os.Args".
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(app.out())
	cmd.SetErr(app.out())
	return cmd.Execute()
}
