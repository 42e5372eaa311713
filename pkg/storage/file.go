package storage

import (
	"os"
	"path/filepath"

	"github.com/storekit/storefront/pkg/constants"
	"github.com/storekit/storefront/pkg/errors"
)

// File persists each namespace as a YAML snapshot file under a base
// directory, analogous to a browser's local storage surviving restarts.
type File struct {
	dir string
}

// NewFile creates a file-backed store rooted at dir. The directory is
// created lazily on first save.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Load returns the snapshot stored under namespace, if any.
func (f *File) Load(namespace string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(namespace))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, errors.WrapIO("read", f.path(namespace), err)
	}
	return data, true, nil
}

// Save replaces the snapshot stored under namespace.
func (f *File) Save(namespace string, data []byte) error {
	if err := os.MkdirAll(f.dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", f.dir, err)
	}
	if err := os.WriteFile(f.path(namespace), data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", f.path(namespace), err)
	}
	return nil
}

// Delete removes the snapshot stored under namespace, if any.
func (f *File) Delete(namespace string) error {
	if err := os.Remove(f.path(namespace)); err != nil && !os.IsNotExist(err) {
		return errors.WrapIO("delete", f.path(namespace), err)
	}
	return nil
}

func (f *File) path(namespace string) string {
	return filepath.Join(f.dir, namespace+".yaml")
}
