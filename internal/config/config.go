// Package config loads application-level settings from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// App holds the settings the entrypoint needs outside the language-model
// gateway (which has its own loader in the llm package).
type App struct {
	DBPath  string
	AuthURL string // token validation backend, empty disables validation
	RecsURL string // recommendation backend, empty disables suggestions
	Token   string // access token forwarded to the auth backend
	Student string // student name, prompted for when unset
}

// Load reads settings from the environment. A .env file in the working
// directory is merged in first when present; a missing file is not an error.
func Load() (App, error) {
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load()

	app := App{
		DBPath:  os.Getenv("LAYZA_DB"),
		AuthURL: os.Getenv("LAYZA_AUTH_URL"),
		RecsURL: os.Getenv("LAYZA_RECS_URL"),
		Token:   os.Getenv("LAYZA_TOKEN"),
		Student: os.Getenv("LAYZA_STUDENT"),
	}

	if app.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return App{}, fmt.Errorf("finding home directory: %w", err)
		}
		app.DBPath = filepath.Join(home, ".layza", "layza.db")
	}
	return app, nil
}
