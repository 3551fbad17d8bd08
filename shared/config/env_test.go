package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PREDICTOR_TEST_STR", "")
	assert.Equal(t, "fallback", GetEnv("PREDICTOR_TEST_STR", "fallback"))

	t.Setenv("PREDICTOR_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("PREDICTOR_TEST_STR", "fallback"))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("PREDICTOR_TEST_DUR", "250ms")
	assert.Equal(t, 250*time.Millisecond, GetEnvDuration("PREDICTOR_TEST_DUR", time.Second))

	t.Setenv("PREDICTOR_TEST_DUR", "soon")
	assert.Equal(t, time.Second, GetEnvDuration("PREDICTOR_TEST_DUR", time.Second))
}

func TestGetEnvList(t *testing.T) {
	def := []string{"*"}

	t.Setenv("PREDICTOR_TEST_LIST", "")
	assert.Equal(t, def, GetEnvList("PREDICTOR_TEST_LIST", def))

	t.Setenv("PREDICTOR_TEST_LIST", " http://a.test , ,http://b.test")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, GetEnvList("PREDICTOR_TEST_LIST", def))

	t.Setenv("PREDICTOR_TEST_LIST", " , ")
	assert.Equal(t, def, GetEnvList("PREDICTOR_TEST_LIST", def))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PREDICTOR_DOTENV_A=from-file\nPREDICTOR_DOTENV_B=from-file\n"), 0o600))

	t.Setenv("PREDICTOR_DOTENV_B", "from-env")
	// t.Setenv restores on cleanup; A must be cleared by hand.
	t.Cleanup(func() { os.Unsetenv("PREDICTOR_DOTENV_A") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("PREDICTOR_DOTENV_A"))
	assert.Equal(t, "from-env", os.Getenv("PREDICTOR_DOTENV_B"))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "nope.env")))
}
