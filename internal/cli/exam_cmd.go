package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/layza-app/layza/internal/cli/formatter"
	"github.com/layza-app/layza/internal/tutor"
	"github.com/spf13/cobra"
)

func newExamCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "prova [materia]",
		Short: "Corrigir uma prova sem entregar a resposta",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subj, err := resolveSubject(app, args)
			if err != nil {
				return err
			}
			return runExam(app, app.newSession(subj))
		},
	}
}

// runExam drives the two-round correction: paste the exam, react to the
// correction, optionally rate it from 1 to 5.
func runExam(app *App, sess *tutor.Session) error {
	ctx := context.Background()
	in, out := app.in(), app.out()

	fmt.Fprintln(out, formatter.Header("Correção de prova"))
	fmt.Fprintln(out, formatter.Dim("Cole a pergunta da prova na primeira linha e a sua resposta na segunda. Linha vazia encerra."))

	var lines []string
	for {
		line, err := promptLine(in, out, "> ")
		if err != nil || line == "" {
			break
		}
		lines = append(lines, line)
	}

	correction, err := generateStep(app, func() (string, error) {
		return sess.CorrectExam(ctx, strings.Join(lines, "\n"))
	})
	switch {
	case errors.Is(err, tutor.ErrExamFormat):
		fmt.Fprintln(out, formatter.StyleYellow.Render("Preciso da pergunta e da sua resposta, uma em cada linha."))
		return nil
	case errors.Is(err, tutor.ErrNotAllowed):
		fmt.Fprintln(out, formatter.StyleYellow.Render("Seu perfil não pode corrigir provas."))
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintln(out, formatter.Tutor(correction))

	reaction, err := promptLine(in, out, "O que achou da correção? ")
	if err == nil && reaction != "" && reaction != exitWord {
		reply, ferr := generateStep(app, func() (string, error) {
			return sess.ExamFeedback(ctx, reaction)
		})
		if ferr != nil {
			return ferr
		}
		fmt.Fprintln(out, formatter.Tutor(reply))
	}

	rating, err := promptLine(in, out, "De 1 a 5, quanto essa correção ajudou? (Enter pula) ")
	if err != nil {
		rating = ""
	}
	sess.FinishExam(ctx, rating)
	fmt.Fprintln(out, "Valeu! Correção registrada.")
	return nil
}
