// Package config registers every setting with its default and loads the TOML config file.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/streamsift/streamsift/constant"
	"github.com/streamsift/streamsift/filesystem"
	"github.com/streamsift/streamsift/where"
)

// EnvKeyReplacer maps config keys to env variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup applies defaults, binds env variables and reads the config file if it exists.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}
