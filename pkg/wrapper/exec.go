package wrapper

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Replaced in tests, which cannot survive a real exec.
var execFunc = unix.Exec

var lookPath = exec.LookPath

// Replaces the current process with c, keeping the environment. It only
// returns if the program could not be found or started.
func Exec(c Command) error {
	path, err := lookPath(c.Name)
	if err != nil {
		return fmt.Errorf("%s: executable not found: %w", c.Name, err)
	}

	if err := execFunc(path, c.Argv(), os.Environ()); err != nil {
		return fmt.Errorf("%s: exec failed: %w", c.Name, err)
	}

	// Only reachable with a stubbed exec.
	return nil
}
