package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/layza-app/layza/internal/auth"
	"github.com/layza-app/layza/internal/cli"
	"github.com/layza-app/layza/internal/config"
	"github.com/layza-app/layza/internal/db"
	"github.com/layza-app/layza/internal/domain"
	"github.com/layza-app/layza/internal/llm"
	"github.com/layza-app/layza/internal/profile"
	"github.com/layza-app/layza/internal/recommend"
	"github.com/layza-app/layza/internal/repository"
	"github.com/layza-app/layza/internal/tutor"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	gradeRepo := repository.NewSQLiteGradeRepo(database)
	feedbackRepo := repository.NewSQLiteFeedbackRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)

	// Wire the language-model gateway
	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	gateway, err := llm.NewClient(llmCfg, observer)
	if errors.Is(err, llm.ErrMissingAPIKey) {
		return fmt.Errorf("defina LAYZA_API_KEY pra conversar com a Layza")
	}
	if err != nil {
		return err
	}

	// Resolve who is sitting in front of the tutor. Token validation is
	// best effort; without a backend everyone is a student.
	access := auth.NewValidator(cfg.AuthURL).Validate(context.Background(), cfg.Token)
	student := domain.StudentProfile{
		Name:        cfg.Student,
		Role:        access.Role,
		Level:       domain.LevelMedio,
		Preferences: access.Preferences,
	}
	if student.Name == "" {
		student.Name = "aluno"
	}

	app := &cli.App{
		Student: student,
		SessionDeps: tutor.Deps{
			Gateway:     gateway,
			History:     historyRepo,
			Progress:    progressRepo,
			Feedback:    feedbackRepo,
			Recommender: recommend.NewClient(cfg.RecsURL),
			Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelWarn,
			})),
		},
		Profile: profile.NewService(profile.Deps{
			Grades:   gradeRepo,
			History:  historyRepo,
			Feedback: feedbackRepo,
			Progress: progressRepo,
		}),
	}

	// Detect interactive terminal for the menu entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
