package wrapper

import (
	"fmt"
	"strings"
)

// Where duplicity keeps its local cache of archive metadata.
const DefaultArchiveDir = "/var/backups/duplicity"

// Everything needed to build the command line of one engine run.
type Invocation struct {
	Engine Engine
	Mode   Mode

	// GPG key fingerprint used by duplicity to encrypt and sign.
	Key string

	// Password file of the restic repository.
	PasswordFile string

	// The directory the selected paths are relative to. Ignored by clean.
	Root string

	// duplicity target URL.
	Target string

	// Defaults to DefaultArchiveDir.
	ArchiveDir string

	// The directories selected by FindPaths, in the order they were found.
	Paths []string
}

// A program and its arguments, not including the program name itself.
type Command struct {
	Name string
	Args []string
}

// Builds the command line for inv. Values are forwarded verbatim; any problem
// with them is reported by the engine itself.
func Build(inv Invocation) (Command, error) {
	if !inv.Engine.Supports(inv.Mode) {
		return Command{}, fmt.Errorf("%w for %s: %s", ErrInvalidMode, inv.Engine, inv.Mode)
	}

	var args []string
	switch inv.Engine {
	case Duplicity:
		args = duplicityArgs(inv)
	case Restic:
		args = resticArgs(inv)
	}

	return Command{Name: inv.Engine.String(), Args: args}, nil
}

// Files are excluded by default, only tagged directories get included back.
func duplicityArgs(inv Invocation) []string {
	if inv.Mode == Clean {
		return []string{"remove-all-but-n-full", "2", inv.Target}
	}

	archiveDir := inv.ArchiveDir
	if archiveDir == "" {
		archiveDir = DefaultArchiveDir
	}

	args := []string{
		inv.Mode.String(),
		"-v4",
		"--archive-dir", archiveDir,
		"--use-agent",
		"--encrypt-sign-key", inv.Key,
	}

	for _, path := range inv.Paths {
		args = append(args, "--include", path)
	}

	return append(args, "--exclude", "**", inv.Root, inv.Target)
}

func resticArgs(inv Invocation) []string {
	args := []string{"-p", inv.PasswordFile}

	if inv.Mode == Clean {
		return append(args, "forget", "--keep-daily", "7", "--keep-weekly", "2", "--prune")
	}

	args = append(args, inv.Mode.String())
	return append(args, inv.Paths...)
}

// The full argv, program name included.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

// Renders the command as it could be typed in a POSIX shell.
func (c Command) String() string {
	argv := c.Argv()
	quoted := make([]string, 0, len(argv))
	for _, arg := range argv {
		quoted = append(quoted, shellQuote(arg))
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}

	safe := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("@%+=:,./_-", r):
		default:
			safe = false
		}
	}

	if safe {
		return s
	}

	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
