package wrapper

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func stubExec(t *testing.T, look func(string) (string, error), run func(string, []string, []string) error) {
	t.Helper()
	prevLook, prevExec := lookPath, execFunc
	t.Cleanup(func() {
		lookPath = prevLook
		execFunc = prevExec
	})
	lookPath = look
	execFunc = run
}

func TestExec_ReplacesProcessWithResolvedBinary(t *testing.T) {
	var gotPath string
	var gotArgv []string
	stubExec(t,
		func(name string) (string, error) { return "/usr/bin/" + name, nil },
		func(path string, argv []string, env []string) error {
			gotPath, gotArgv = path, argv
			return nil
		})

	err := Exec(Command{Name: "restic", Args: []string{"-p", "pw", "backup", "/data/a"}})

	require.NoError(t, err)
	require.Equal(t, "/usr/bin/restic", gotPath)
	require.Equal(t, []string{"restic", "-p", "pw", "backup", "/data/a"}, gotArgv)
}

func TestExec_MissingBinary(t *testing.T) {
	called := false
	stubExec(t,
		func(name string) (string, error) { return "", exec.ErrNotFound },
		func(string, []string, []string) error {
			called = true
			return nil
		})

	err := Exec(Command{Name: "duplicity"})

	require.ErrorIs(t, err, exec.ErrNotFound)
	require.Contains(t, err.Error(), "duplicity")
	require.False(t, called)
}

func TestExec_Failure(t *testing.T) {
	stubExec(t,
		func(name string) (string, error) { return "/usr/bin/" + name, nil },
		func(string, []string, []string) error { return unix.EACCES })

	err := Exec(Command{Name: "duplicity"})

	require.True(t, errors.Is(err, unix.EACCES))
	require.Contains(t, err.Error(), "duplicity: exec failed")
}

func TestExec_RealLookupFailure(t *testing.T) {
	err := Exec(Command{Name: "backup-wrapper-no-such-binary"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "backup-wrapper-no-such-binary: executable not found")
}
