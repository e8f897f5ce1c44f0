package wrapper

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// How deep below the root directories are searched for the attribute. The
// root is at depth 0, so the default reaches its grandchildren.
const MaxDepth = 2

// Describes which directories should be selected: those under Root, at most
// MaxDepth levels deep, whose Attribute is exactly Value.
type ScanRequest struct {
	Root      string
	MaxDepth  int
	Attribute string
	Value     string
}

// Creates a request with the default depth. An empty attribute is replaced by
// DefaultAttribute.
func NewScanRequest(root string, attribute string, value string) ScanRequest {
	if attribute == "" {
		attribute = DefaultAttribute
	}

	return ScanRequest{
		Root:      root,
		MaxDepth:  MaxDepth,
		Attribute: attribute,
		Value:     value,
	}
}

type ScanOptions struct {
	// Defaults to Xattrs.
	Attrs AttrReader

	// Receives one record per entry that could not be read. Defaults to
	// slog.Default().
	Logger *slog.Logger

	// Called as soon as a matching directory is found, before the walk goes
	// on.
	OnMatch func(path string)

	// Called for every directory visited.
	Progress func(ProgressReport)
}

// Walks req.Root and returns the directories carrying the requested attribute
// value, in walk order. Children are visited in lexical order, so the result
// is stable for an unchanged tree.
//
// Errors never stop the walk: unreadable entries are logged and skipped, and a
// root that cannot be read yields an empty result.
func FindPaths(req ScanRequest, opts ScanOptions) []string {
	attrs := opts.Attrs
	if attrs == nil {
		attrs = Xattrs{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	backupDirs := []string{}
	visited := uint64(0)

	start := walkRoot(req.Root)
	filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		// Reported under the name it was given, without the separator
		// walkRoot may have added.
		if path == start {
			path = req.Root
		}

		if err != nil {
			logger.Warn("failed to read directory", "path", path, "error", err)
			return nil
		}

		isDir := d.IsDir()
		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				logger.Warn("failed to retrieve metadata", "path", path, "error", err)
				return nil
			}

			// Matched, but never entered.
			isDir = info.IsDir()
		}

		if !isDir {
			return nil
		}

		visited++
		if opts.Progress != nil {
			opts.Progress(ProgressReport{Count: visited, Name: path})
		}

		if matchesAttribute(attrs, logger, path, req) {
			backupDirs = append(backupDirs, path)
			if opts.OnMatch != nil {
				opts.OnMatch(path)
			}
		}

		if d.IsDir() && depth(req.Root, path) >= req.MaxDepth {
			return fs.SkipDir
		}

		return nil
	})

	return backupDirs
}

func matchesAttribute(attrs AttrReader, logger *slog.Logger, path string, req ScanRequest) bool {
	value, err := attrs.Get(path, req.Attribute)
	if errors.Is(err, ErrAttrNotFound) {
		return false
	} else if err != nil {
		logger.Debug("failed to read attribute", "path", path, "attribute", req.Attribute, "error", err)
		return false
	}

	return bytes.Equal(value, []byte(req.Value))
}

// The root as handed to the walk. A root that is a symlink to a directory
// gets a trailing separator, so it is followed like the directory it points
// to while child paths keep the link name.
func walkRoot(root string) string {
	info, err := os.Lstat(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return root
	}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return root
	}

	return root + string(filepath.Separator)
}

// Number of path elements between root and path. Both come from the same walk,
// so path always has root as prefix.
func depth(root string, path string) int {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return 0
	}

	return strings.Count(rel, string(filepath.Separator)) + 1
}
