// Package filesystem is the backend every file access goes through: saved stream pages, the
// stream list cache, logs and the config file.
//
// Tests switch it to an in-memory filesystem. Watching a page needs the operating system
// backend, since change events come from the OS.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Watchable reports whether files of the active backend emit OS change events.
func Watchable() bool {
	_, ok := backend.Fs.(*afero.OsFs)
	return ok
}
