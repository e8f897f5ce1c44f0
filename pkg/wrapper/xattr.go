package wrapper

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// The extended attribute that marks a directory for backup.
const DefaultAttribute = "user.backup"

// The attribute value of a directory tagged with the historical boolean
// convention. It is also the default level.
const DefaultLevel = "1"

// Returned by AttrReader.Get when the entry does not carry the attribute.
var ErrAttrNotFound = errors.New("attribute not found")

// Reads extended attributes. Xattrs is the implementation backed by the
// filesystem; tests provide their own.
type AttrReader interface {
	Get(path string, name string) ([]byte, error)
}

// Reads and writes extended attributes through the xattr syscalls. Symlinks
// are followed.
type Xattrs struct{}

func (Xattrs) Get(path string, name string) ([]byte, error) {
	for {
		size, err := unix.Getxattr(path, name, nil)
		if err != nil {
			return nil, wrapXattrError(err)
		}

		buffer := make([]byte, size)
		if size == 0 {
			return buffer, nil
		}

		n, err := unix.Getxattr(path, name, buffer)
		if errors.Is(err, unix.ERANGE) {
			// Value grew between both calls.
			continue
		} else if err != nil {
			return nil, wrapXattrError(err)
		}

		return buffer[:n], nil
	}
}

func (Xattrs) Set(path string, name string, value []byte) error {
	if err := unix.Setxattr(path, name, value, 0); err != nil {
		return fmt.Errorf("setting %s: %w", name, err)
	}
	return nil
}

// Removes the attribute. Removing an attribute that is not there is not an
// error.
func (Xattrs) Remove(path string, name string) error {
	if err := unix.Removexattr(path, name); err != nil {
		if errors.Is(err, unix.ENODATA) {
			return nil
		}
		return fmt.Errorf("removing %s: %w", name, err)
	}
	return nil
}

func wrapXattrError(err error) error {
	if errors.Is(err, unix.ENODATA) {
		return ErrAttrNotFound
	}
	return err
}
