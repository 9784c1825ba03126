package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"streamhub/infrastructure/configuration"
)

func TestLoadEnvFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.env")
	content := "# comment line\nTEST_ENV_LOADER_A=hello\nTEST_ENV_LOADER_B=\"quoted\"\n\nmalformed line\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("TEST_ENV_LOADER_A", "preset")

	configuration.LoadEnvFromFile(path)

	// Existing environment wins over the file.
	assert.Equal(t, "preset", os.Getenv("TEST_ENV_LOADER_A"))
	assert.Equal(t, "quoted", os.Getenv("TEST_ENV_LOADER_B"))
	defer os.Unsetenv("TEST_ENV_LOADER_B")
}

func TestLoadEnvFromFileMissingFile(t *testing.T) {
	// A missing file is skipped silently.
	configuration.LoadEnvFromFile("does-not-exist.env")
}
