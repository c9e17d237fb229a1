package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadSettings_FromEnvironment(t *testing.T) {
	t.Setenv("PATRIMONY_ENV", "production")
	t.Setenv("PATRIMONY_LOG_LEVEL", "debug")
	t.Setenv("PATRIMONY_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("PATRIMONY_LOCALE", "pt-BR")
	t.Setenv("PATRIMONY_WORKERS", "3")

	s, err := LoadSettings(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "production", s.Env)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "/tmp/reports", s.OutputDir)
	assert.Equal(t, 3, s.Workers)
	assert.Equal(t, language.MustParse("pt-BR"), s.Language())
}

func TestLoadSettings_FromDotEnv(t *testing.T) {
	t.Setenv("PATRIMONY_WORKERS", "2")
	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("PATRIMONY_WORKERS=9\nPATRIMONY_TEST_MARKER=loaded\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PATRIMONY_TEST_MARKER") })

	s, err := LoadSettings(dotenv)
	require.NoError(t, err)

	// process environment wins over the file
	assert.Equal(t, 2, s.Workers)
	assert.Equal(t, "loaded", os.Getenv("PATRIMONY_TEST_MARKER"))
}

func TestLoadSettings_Invalid(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("workers not a number", func(t *testing.T) {
		t.Setenv("PATRIMONY_WORKERS", "many")
		_, err := LoadSettings(missing)
		assert.Error(t, err)
	})

	t.Run("negative workers", func(t *testing.T) {
		t.Setenv("PATRIMONY_WORKERS", "-1")
		_, err := LoadSettings(missing)
		assert.ErrorContains(t, err, "PATRIMONY_WORKERS")
	})

	t.Run("bad locale", func(t *testing.T) {
		t.Setenv("PATRIMONY_WORKERS", "1")
		t.Setenv("PATRIMONY_LOCALE", "not a locale!")
		_, err := LoadSettings(missing)
		assert.ErrorContains(t, err, "PATRIMONY_LOCALE")
	})
}
