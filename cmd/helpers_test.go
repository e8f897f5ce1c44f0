package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// memAttrs keeps attributes in memory, keyed by path and name.
type memAttrs struct {
	values map[string]string
	gets   int
}

func attrKey(path string, name string) string {
	return path + "\x00" + name
}

func (m *memAttrs) Get(path string, name string) ([]byte, error) {
	m.gets++
	value, ok := m.values[attrKey(path, name)]
	if !ok {
		return nil, wrapper.ErrAttrNotFound
	}
	return []byte(value), nil
}

func (m *memAttrs) Set(path string, name string, value []byte) error {
	m.values[attrKey(path, name)] = string(value)
	return nil
}

func (m *memAttrs) Remove(path string, name string) error {
	delete(m.values, attrKey(path, name))
	return nil
}

func (m *memAttrs) tag(path string, value string) {
	m.values[attrKey(path, wrapper.DefaultAttribute)] = value
}

func stubAttrs(t *testing.T) *memAttrs {
	t.Helper()
	prev := attrs
	t.Cleanup(func() { attrs = prev })
	mem := &memAttrs{values: map[string]string{}}
	attrs = mem
	return mem
}

// stubExec records the commands that would have replaced the process.
func stubExec(t *testing.T) *[]wrapper.Command {
	t.Helper()
	prev := execCommand
	t.Cleanup(func() { execCommand = prev })
	var commands []wrapper.Command
	execCommand = func(c wrapper.Command) error {
		commands = append(commands, c)
		return nil
	}
	return &commands
}

// resetFlags restores every flag of the tree so tests don't leak state.
func resetFlags(c *cobra.Command) {
	for _, flags := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
		flags.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(RootCmd)
	var out, errBuf bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errBuf)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), errBuf.String(), err
}

// tree creates the directories under a new root and returns it.
func tree(t *testing.T, dirs ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, dir := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}
	return root
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), wrapper.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
