package wrapper

import (
	"errors"
	"fmt"
)

// An external backup program.
type Engine int

const (
	Duplicity Engine = iota
	Restic
)

// What the engine is asked to do. Not every mode is valid for every engine,
// see Engine.Modes.
type Mode int

const (
	Full Mode = iota
	Incremental
	Backup
	Clean
)

var ErrInvalidMode = errors.New("invalid mode")

var engineNames = map[Engine]string{
	Duplicity: "duplicity",
	Restic:    "restic",
}

var modeNames = map[Mode]string{
	Full:        "full",
	Incremental: "incremental",
	Backup:      "backup",
	Clean:       "clean",
}

var modeDescriptions = map[Mode]string{
	Full:        "Perform a full backup",
	Incremental: "Perform an incremental backup",
	Backup:      "Perform a snapshot",
	Clean:       "Clean old backups",
}

// The executable name, as looked up in PATH.
func (e Engine) String() string {
	if name, ok := engineNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Engine(%d)", int(e))
}

// The modes the engine understands, in the order they are shown in the help.
func (e Engine) Modes() []Mode {
	switch e {
	case Duplicity:
		return []Mode{Full, Incremental, Clean}
	case Restic:
		return []Mode{Backup, Clean}
	}
	return nil
}

func (e Engine) Supports(mode Mode) bool {
	for _, m := range e.Modes() {
		if m == mode {
			return true
		}
	}
	return false
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) Description() string {
	return modeDescriptions[m]
}

// Whether the mode needs the list of tagged directories. Clean modes only
// apply the retention policy.
func (m Mode) NeedsPaths() bool {
	return m != Clean
}
