// Package where resolves the directories streamsift reads and writes.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/streamsift/streamsift/constant"
	"github.com/streamsift/streamsift/filesystem"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "STREAMSIFT_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding streamsift.toml.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

// ConfigFile is the path of the TOML config file.
func ConfigFile() string {
	return filepath.Join(Config(), constant.App+".toml")
}

// Cache is the user cache directory, or ./cache when none is available.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.App))
}

// Logs is where daily log files are written.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Streams is the addon stream list cache file.
func Streams() string {
	return filepath.Join(Cache(), "streams.json")
}
