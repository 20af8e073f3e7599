package config

import (
	"errors"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/axelarnetwork/polls/app"
)

// ReadConfig merges config.toml from the viper search paths over the default configuration.
// A missing file is not an error, all other read or decode failures are.
func ReadConfig(v *viper.Viper) (app.Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("toml")

	if err := v.MergeInConfig(); err != nil && !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return app.Config{}, err
	}

	conf := app.DefaultConfig()
	if err := v.Unmarshal(&conf, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return app.Config{}, err
	}

	if err := conf.Validate(); err != nil {
		return app.Config{}, err
	}

	return conf, nil
}
