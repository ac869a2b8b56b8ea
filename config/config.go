// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// SettingsFile is the base name of the optional local settings file;
// flags bound in /cmd override anything set in it.
const SettingsFile = "settings"

// Config is the root-level settings struct and is a mix
// of settings available in settings.yaml and those
// available from the command line
type Config struct {
	// the numbering scheme used when none is passed: imgt, kabat or chothia
	Scheme string `mapstructure:"scheme"`

	// whether to log execution details to stdout
	Verbose bool `mapstructure:"verbose"`
}

// New returns a new Config struct populated by
// Viper settings (either from the local settings.yaml)
// and/or command line arguments
func New() Config {
	viper.SetConfigName(SettingsFile)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.ReadInConfig() // the settings file is optional

	viper.SetDefault("scheme", "imgt")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode into struct, %v", err)
	}

	return c
}
