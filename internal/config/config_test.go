package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LAYZA_DB", "/tmp/layza-test.db")
	t.Setenv("LAYZA_AUTH_URL", "http://auth.local")
	t.Setenv("LAYZA_RECS_URL", "http://recs.local")
	t.Setenv("LAYZA_TOKEN", "tok-1")

	app, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/layza-test.db", app.DBPath)
	assert.Equal(t, "http://auth.local", app.AuthURL)
	assert.Equal(t, "http://recs.local", app.RecsURL)
	assert.Equal(t, "tok-1", app.Token)
}

func TestLoad_DefaultDBPath(t *testing.T) {
	t.Setenv("LAYZA_DB", "")
	t.Setenv("HOME", t.TempDir())

	app, err := Load()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(app.DBPath, filepath.Join(".layza", "layza.db")), app.DBPath)
}
