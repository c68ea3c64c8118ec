// Package cli wires the tutoring services into the layza command tree:
// subcommands for scripted use plus an interactive menu on a terminal.
package cli

import (
	"io"
	"os"

	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/profile"
	"github.com/layza-app/layza/internal/tutor"
	"github.com/spf13/cobra"
)

// App holds the wired services and the student identity the CLI acts for.
type App struct {
	Student     domain.StudentProfile
	SessionDeps tutor.Deps
	Profile     *profile.Service

	// IsInteractive reports whether stdin is a terminal. Gates the menu
	// and the spinner.
	IsInteractive func() bool

	// In and Out default to stdin/stdout; tests inject buffers.
	In  io.Reader
	Out io.Writer
}

func (a *App) in() io.Reader {
	if a.In != nil {
		return a.In
	}
	return os.Stdin
}

func (a *App) out() io.Writer {
	if a.Out != nil {
		return a.Out
	}
	return os.Stdout
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// newSession opens a fresh dialogue for the app's student on a subject.
func (a *App) newSession(subj domain.Subject) *tutor.Session {
	return tutor.NewSession(a.Student, subj, a.SessionDeps)
}

// NewRootCmd creates the top-level "layza" command and registers all
// subcommands against the provided App. Running it bare on a terminal
// opens the interactive menu.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "layza",
		Short:         "Tutora socrática de português, matemática e ciências",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runMenu(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newChatCmd(app),
		newExamCmd(app),
		newGradeCmd(app),
		newProfileCmd(app),
		newReportCmd(app),
		newQuizCmd(app),
		newTipCmd(app),
		newFeedbackCmd(app),
	)

	return root
}
