package wrapper

import (
	"os"

	"github.com/BurntSushi/toml"
)

// The file name init writes when no path is given.
const ConfigFileName = "backup-wrapper.toml"

type DuplicityConfig struct {
	Target     string
	Key        string
	ArchiveDir string
}

type ResticConfig struct {
	PasswordFile string
}

// Defaults for the command line flags. Flags given explicitly always win.
type Config struct {
	Attribute string
	Level     string
	Root      string
	Duplicity DuplicityConfig
	Restic    ResticConfig
}

func LoadConfig(path string) (Config, error) {
	var config Config

	if _, err := os.Stat(path); err != nil {
		return config, err
	}

	_, err := toml.DecodeFile(path, &config)
	if err != nil {
		return config, err
	}

	return config, nil
}

func WriteExampleConfig(path string) error {
	config := Config{
		Attribute: DefaultAttribute,
		Level:     DefaultLevel,
		Root:      "/home",
		Duplicity: DuplicityConfig{
			Target:     "sftp://backup@example.com//srv/backups/duplicity",
			Key:        "0123456789ABCDEF0123456789ABCDEF01234567",
			ArchiveDir: DefaultArchiveDir,
		},
		Restic: ResticConfig{
			PasswordFile: "/etc/restic/password",
		},
	}
	return config.WriteConfig(path)
}

func (config Config) WriteConfig(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	return encoder.Encode(config)
}
