package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListPrintsSelectedPaths(t *testing.T) {
	root := tree(t, "a/x", "b")
	mem := stubAttrs(t)
	mem.tag(filepath.Join(root, "a"), "1")
	mem.tag(filepath.Join(root, "a", "x"), "1")

	stdout, stderr, err := execute(t, "list", "-r", root)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(root, "a")+"\n"+filepath.Join(root, "a", "x")+"\n", stdout)
	require.Empty(t, stderr)
}

func TestListWithLevel(t *testing.T) {
	root := tree(t, "a", "b")
	mem := stubAttrs(t)
	mem.tag(filepath.Join(root, "a"), "1")
	mem.tag(filepath.Join(root, "b"), "photos")

	stdout, _, err := execute(t, "list", "-r", root, "-l", "photos")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "b")+"\n", stdout)
}

func TestListRequiresRoot(t *testing.T) {
	mem := stubAttrs(t)

	_, _, err := execute(t, "list")
	require.EqualError(t, err, "--root is required")
	require.Zero(t, mem.gets)
}

func TestListReportsBrokenEntries(t *testing.T) {
	root := tree(t, "a", "c")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "b")))
	mem := stubAttrs(t)
	mem.tag(filepath.Join(root, "a"), "1")
	mem.tag(filepath.Join(root, "c"), "1")

	stdout, stderr, err := execute(t, "list", "-r", root)
	require.NoError(t, err)

	require.Equal(t, filepath.Join(root, "a")+"\n"+filepath.Join(root, "c")+"\n", stdout)
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.Len(t, lines, 1)
	require.Contains(t, lines[0], "failed to retrieve metadata")
}

func TestListTable(t *testing.T) {
	root := tree(t, "a")
	mem := stubAttrs(t)
	mem.tag(filepath.Join(root, "a"), "1")

	stdout, _, err := execute(t, "list", "-r", root, "--table")
	require.NoError(t, err)

	require.Contains(t, stdout, "user.backup = 1 under "+root)
	require.Contains(t, stdout, "Path")
	require.Contains(t, stdout, filepath.Join(root, "a"))
}

func TestListFollowsSymlinkedRoot(t *testing.T) {
	target := tree(t, "alice", "bob")
	home := filepath.Join(t.TempDir(), "home")
	require.NoError(t, os.Symlink(target, home))
	mem := stubAttrs(t)
	mem.tag(filepath.Join(home, "alice"), "1")

	stdout, _, err := execute(t, "list", "-r", home)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "alice")+"\n", stdout)
}
