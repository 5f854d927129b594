package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "CHANGELOG.md", cfg.Filename)
	assert.Equal(t, "patch", cfg.InferBump)
	assert.Equal(t, 10, cfg.ListAmount)
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".changelog.yml"),
		[]byte("filename: HISTORY.md\ninfer_bump: minor\n"),
		0o644,
	))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "HISTORY.md", cfg.Filename)
	assert.Equal(t, "minor", cfg.InferBump)
	assert.Equal(t, 10, cfg.ListAmount, "unset keys keep their defaults")
}

func TestLoad_ProjectOverridesUser(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "user.yml")
	require.NoError(t, os.WriteFile(userPath, []byte("filename: USER.md\nlist_amount: 3\n"), 0o644))
	projectPath := filepath.Join(dir, "project.yml")
	require.NoError(t, os.WriteFile(projectPath, []byte("filename: PROJECT.md\n"), 0o644))

	cfg, err := LoadWithOptions(LoadOptions{
		WorkDir:           dir,
		UserConfigPath:    userPath,
		ProjectConfigPath: projectPath,
	})
	require.NoError(t, err)

	assert.Equal(t, "PROJECT.md", cfg.Filename)
	assert.Equal(t, 3, cfg.ListAmount, "user layer still applies where project is silent")
}

func TestLoad_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, ".changelog.yml"),
		[]byte("filename: PROJECT.md\n"),
		0o644,
	))
	t.Setenv("CHANGELOG_FILENAME", "ENV.md")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "ENV.md", cfg.Filename)
}

func TestLoad_Validation(t *testing.T) {
	tests := map[string]string{
		"bad infer_bump":  "infer_bump: sideways\n",
		"empty filename":  "filename: \"\"\n",
		"zero list amount": "list_amount: 0\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".changelog.yml"), []byte(contents), 0o644))

			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}
