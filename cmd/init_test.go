package cmd

import (
	"path/filepath"
	"testing"

	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/stretchr/testify/require"
)

func TestInitWritesExampleConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.toml")

	stdout, _, err := execute(t, "init", path)
	require.NoError(t, err)
	require.Equal(t, path+"\n", stdout)

	config, err := wrapper.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, wrapper.DefaultAttribute, config.Attribute)

	_, _, err = execute(t, "init", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")
}

func TestInitIntoDirectory(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := execute(t, "init", dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, wrapper.ConfigFileName)+"\n", stdout)
}

func TestInitDefaultsToCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	stdout, _, err := execute(t, "init")
	require.NoError(t, err)
	require.Equal(t, wrapper.ConfigFileName, filepath.Base(stdout[:len(stdout)-1]))
}

func TestInitRejectsOtherFiles(t *testing.T) {
	_, _, err := execute(t, "init", filepath.Join(t.TempDir(), "config.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "is not a .toml file")
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "Version "+wrapper.Version()+"\n", stdout)
}
