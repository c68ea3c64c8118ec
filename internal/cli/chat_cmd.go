package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/layza-app/layza/internal/cli/formatter"
	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/subject"
	"github.com/layza-app/layza/internal/tutor"
	"github.com/spf13/cobra"
)

// exitWord leaves the chat loop from any prompt.
const exitWord = "sair"

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [materia]",
		Short: "Conversar com a Layza sobre uma matéria",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subj, err := resolveSubject(app, args)
			if err != nil {
				return err
			}
			return runChat(app, app.newSession(subj))
		},
	}
}

// subjectAliases maps folded Portuguese names onto canonical subjects.
var subjectAliases = map[string]domain.Subject{
	"portugues":  domain.SubjectPortuguese,
	"matematica": domain.SubjectMath,
	"ciencias":   domain.SubjectScience,
}

// parseSubjectArg accepts both the canonical subject values and their
// Portuguese names, accents optional.
func parseSubjectArg(arg string) (domain.Subject, error) {
	folded := subject.Fold(arg)
	if subj, ok := subjectAliases[folded]; ok {
		return subj, nil
	}
	return domain.ParseSubject(folded)
}

// resolveSubject takes the subject from the args or, on a terminal, from a
// selection prompt.
func resolveSubject(app *App, args []string) (domain.Subject, error) {
	if len(args) > 0 {
		return parseSubjectArg(args[0])
	}
	if app.interactive() {
		return selectSubject(app)
	}
	return "", fmt.Errorf("informe a matéria: portugues, matematica ou ciencias")
}

// runChat drives the dialogue loop: question, reflection, optional
// clarification, then continue or switch topic. "sair" leaves at any prompt.
func runChat(app *App, sess *tutor.Session) error {
	ctx := context.Background()
	in, out := app.in(), app.out()

	fmt.Fprintf(out, "%s\n%s\n",
		formatter.Header(fmt.Sprintf("Bora estudar %s, %s!", sess.Subject().DisplayName(), app.Student.Name)),
		formatter.Dim("Digite 'sair' a qualquer momento pra encerrar."))

	for sess.State() != tutor.StateEnded {
		question, err := promptLine(in, out, "\nQual é a sua dúvida? ")
		if err != nil {
			sess.End()
			return nil
		}
		if question == exitWord {
			if promptYesNoIO(in, out, "Tem certeza que quer sair? [S/n] ", true) {
				sess.End()
				fmt.Fprintln(out, "Até a próxima!")
				return nil
			}
			continue
		}

		reply, err := generateStep(app, func() (string, error) { return sess.Ask(ctx, question) })
		switch {
		case errors.Is(err, tutor.ErrEmptyQuestion):
			continue
		case errors.Is(err, tutor.ErrWrongSubject):
			fmt.Fprintln(out, formatter.StyleYellow.Render(
				fmt.Sprintf("Ei, isso não parece ser de %s! Tenta uma pergunta dessa matéria.", sess.Subject().DisplayName())))
			continue
		case err != nil:
			return err
		}
		fmt.Fprintln(out, formatter.Tutor(reply))

		if err := followUpLoop(ctx, app, sess, in, out); err != nil {
			return err
		}

		if sess.State() == tutor.StateResolved {
			if rec := sess.Recommend(ctx); rec != nil {
				fmt.Fprintln(out, formatter.FormatRecommendation(rec))
			}
			if promptYesNoIO(in, out, "Quer continuar nesse assunto? [s/N] ", false) {
				_ = sess.ContinueTopic()
				if err := followUpLoop(ctx, app, sess, in, out); err != nil {
					return err
				}
			}
			if sess.State() == tutor.StateResolved {
				_ = sess.NewTopic()
			}
		}
	}
	return nil
}

// followUpLoop collects reflections until the turn resolves, branching into
// clarification when the student sounds lost.
func followUpLoop(ctx context.Context, app *App, sess *tutor.Session, in io.Reader, out io.Writer) error {
	for sess.State() == tutor.StateAwaitingFollowUp {
		answer, err := promptLine(in, out, "O que você acha? ")
		if err != nil || answer == exitWord {
			sess.End()
			return nil
		}

		outcome, err := generateStep(app, func() (*tutor.Outcome, error) { return sess.Respond(ctx, answer) })
		if errors.Is(err, tutor.ErrAnswerTooShort) {
			fmt.Fprintln(out, formatter.Dim("Conta um pouco mais, nem que seja um palpite!"))
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, formatter.Tutor(outcome.Reply))

		if outcome.Confused {
			if err := clarifyLoop(ctx, app, sess, in, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// clarifyLoop re-explains until the student confirms understanding, starts
// a new topic or leaves.
func clarifyLoop(ctx context.Context, app *App, sess *tutor.Session, in io.Reader, out io.Writer) error {
	kind := tutor.ClarifySimple
	for sess.State() != tutor.StateEnded {
		reply, err := generateStep(app, func() (string, error) { return sess.Clarify(ctx, kind) })
		if err != nil {
			return err
		}
		fmt.Fprintln(out, formatter.Tutor(reply))

		if promptYesNoIO(in, out, "Ficou claro agora? [s/N] ", false) {
			return sess.ConfirmUnderstanding(ctx, true)
		}

		choice, err := promptLine(in, out,
			"O que prefere? (1) mais simples (2) mais técnico (3) nova pergunta (4) sair: ")
		if err != nil {
			sess.End()
			return nil
		}
		switch choice {
		case "1":
			kind = tutor.ClarifySimple
		case "2":
			kind = tutor.ClarifyTechnical
		case "3":
			return sess.NewTopic()
		case "4", exitWord:
			sess.End()
			return nil
		default:
			kind = tutor.ClarifySimple
		}
	}
	return nil
}

// generateStep runs a gateway-backed call with a spinner on a terminal.
func generateStep[T any](a *App, fn func() (T, error)) (T, error) {
	if a.interactive() {
		stop := formatter.StartSpinner("Pensando...")
		defer stop()
	}
	return fn()
}
