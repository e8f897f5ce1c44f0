package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/acristoffers/backup-wrapper/pkg/wrapper"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Loads the file given in --config. Without it, an empty configuration is
// returned and only flags and built-in defaults apply.
func loadConfig(cmd *cobra.Command) (wrapper.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return wrapper.Config{}, err
	}

	if path == "" {
		return wrapper.Config{}, nil
	}

	config, err := wrapper.LoadConfig(path)
	if err != nil {
		return config, fmt.Errorf("cannot load configuration %s: %w", path, err)
	}

	return config, nil
}

// Returns the flag value if it was given, otherwise the configured value, and
// the flag default as a last resort.
func option(cmd *cobra.Command, name string, configured string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", err
	}

	if !cmd.Flags().Changed(name) && configured != "" {
		return configured, nil
	}

	return value, nil
}

// Collects the values of the required options, reporting every missing one
// at once.
type requiredOptions struct {
	missing []string
}

func (r *requiredOptions) get(cmd *cobra.Command, name string, configured string) string {
	value, err := option(cmd, name, configured)
	if err != nil || value == "" {
		r.missing = append(r.missing, "--"+name)
	}
	return value
}

func (r *requiredOptions) err() error {
	switch len(r.missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s is required", r.missing[0])
	default:
		return fmt.Errorf("%s are required", strings.Join(r.missing, ", "))
	}
}

func scanRequest(cmd *cobra.Command, config wrapper.Config, root string) (wrapper.ScanRequest, error) {
	attribute, err := option(cmd, "attribute", config.Attribute)
	if err != nil {
		return wrapper.ScanRequest{}, err
	}

	level, err := option(cmd, "level", config.Level)
	if err != nil {
		return wrapper.ScanRequest{}, err
	}

	return wrapper.NewScanRequest(root, attribute, level), nil
}

func newLogger(cmd *cobra.Command, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})

	return slog.New(handler)
}

// A spinner on w while the tree is walked, or nil when w is not a terminal.
func newScanSpinner(w io.Writer) *progressbar.ProgressBar {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return nil
	}

	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(file),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Scanning"),
		progressbar.OptionClearOnFinish())
}

// Writes to w after wiping the spinner line, so log records never end up in
// the middle of it. The spinner is drawn again on the next update.
type spinnerWriter struct {
	bar *progressbar.ProgressBar
	w   io.Writer
}

func (s spinnerWriter) Write(p []byte) (int, error) {
	_ = s.bar.Clear()
	return s.w.Write(p)
}

// Scans the tree described by req, driving a spinner on stderr when possible.
func findPaths(cmd *cobra.Command, req wrapper.ScanRequest, onMatch func(string)) []string {
	opts := wrapper.ScanOptions{
		Attrs:   attrs,
		Logger:  newLogger(cmd, cmd.ErrOrStderr()),
		OnMatch: onMatch,
	}

	bar := newScanSpinner(cmd.ErrOrStderr())
	if bar != nil {
		opts.Logger = newLogger(cmd, spinnerWriter{bar: bar, w: cmd.ErrOrStderr()})
		opts.Progress = func(report wrapper.ProgressReport) {
			bar.Describe(fmt.Sprintf("Scanning %s", report.Name))
			bar.Add(1)
		}
		defer bar.Clear()
	}

	return wrapper.FindPaths(req, opts)
}

// Resolves the configuration path init writes to: the argument if it looks
// like a TOML file, ConfigFileName in that directory if it is one, or
// ConfigFileName in the current directory.
func resolveConfigPath(args []string) (string, error) {
	if len(args) == 0 {
		return filepath.Abs(wrapper.ConfigFileName)
	}

	if info, err := os.Stat(args[0]); err == nil && info.IsDir() {
		return filepath.Abs(filepath.Join(args[0], wrapper.ConfigFileName))
	}

	if !strings.HasSuffix(args[0], ".toml") {
		return "", fmt.Errorf("%s is not a .toml file", args[0])
	}

	return filepath.Abs(args[0])
}
