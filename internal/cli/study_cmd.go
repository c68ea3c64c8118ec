package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/layza-app/layza/internal/cli/formatter"
	"github.com/layza-app/layza/internal/profile"
	"github.com/spf13/cobra"
)

func newGradeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "nota <materia> <valor>",
		Short: "Registrar uma nota de 0 a 100",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			subj, err := parseSubjectArg(args[0])
			if err != nil {
				return err
			}
			score, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("nota inválida: %q", args[1])
			}

			err = app.Profile.AddGrade(context.Background(), app.Student.Name, subj, score)
			if errors.Is(err, profile.ErrScoreRange) {
				return fmt.Errorf("a nota precisa estar entre 0 e 100")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out(), "Nota %.1f adicionada pra %s!\n", score, subj.DisplayName())
			return nil
		},
	}
}

func newProfileCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "perfil",
		Short: "Ver médias e atividade por matéria",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := app.Profile.Profile(context.Background(), app.Student.Name)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out(), formatter.FormatProfile(view))
			return nil
		},
	}
}

func newReportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "relatorio",
		Short: "Ver as últimas atividades",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Profile.Report(context.Background(), app.Student.Name)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out(), report)
			return nil
		},
	}
}

func newQuizCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "quiz [materia]",
		Short: "Gerar um quiz reflexivo de cinco perguntas",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subj, err := resolveSubject(app, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out(), formatter.Header(fmt.Sprintf("Quiz de %s", subj.DisplayName())))
			fmt.Fprintln(app.out(), app.Profile.Quiz(subj))
			return nil
		},
	}
}

func newTipCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dica",
		Short: "Receber uma dica de estudo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tip, err := app.Profile.StudyTip(context.Background(), app.Student.Name)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out(), formatter.FormatTip(tip))
			return nil
		},
	}
}

func newFeedbackCmd(app *App) *cobra.Command {
	var liked bool
	var comment string

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Contar o que achou da Layza",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := app.in(), app.out()
			if !cmd.Flags().Changed("gostei") {
				liked = promptYesNoIO(in, out, "Gostou da Layza? [s/N] ", false)
				comment, _ = promptLine(in, out, "Quer deixar um comentário? (Enter pula) ")
			}
			if err := app.Profile.SaveFeedback(context.Background(), app.Student.Name, liked, comment); err != nil {
				return err
			}
			fmt.Fprintln(out, "Valeu pelo feedback!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&liked, "gostei", false, "Gostou da experiência")
	cmd.Flags().StringVar(&comment, "comentario", "", "Comentário livre")
	return cmd
}
