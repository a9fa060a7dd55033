package filesystem

import (
	"io"
	"os"
	"path/filepath"
)

// GacheFs stores gache caches, such as the addon stream list cache, on the active backend.
type GacheFs struct{}

// OpenFile creates the parent directory of name first, so a cache can be written before
// its directory exists.
func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	if flag&os.O_CREATE != 0 {
		if err := API().MkdirAll(filepath.Dir(name), os.ModePerm); err != nil {
			return nil, err
		}
	}
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
