// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/where"
)

// EnvKeyReplacer is a strings.Replacer used to normalize configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// DotEnvFiles lists the dotenv files consulted on startup, highest priority first.
var DotEnvFiles = []string{".env.local", ".env"}

// Setup initializes the global configuration state, including defaults, environment bindings, and localized file resolution.
func Setup() error {
	LoadDotEnv()

	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	// Synchronize environment variable bindings.
	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	// Initialize factory default values.
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}

// LoadDotEnv loads the dotenv files that exist in the working directory.
// godotenv never overwrites variables that are already set, so the process environment wins
// and earlier files win over later ones.
func LoadDotEnv() []string {
	var loaded []string
	for _, f := range DotEnvFiles {
		if _, err := os.Stat(f); err == nil {
			loaded = append(loaded, f)
		}
	}
	if len(loaded) > 0 {
		_ = godotenv.Load(loaded...)
	}
	return loaded
}
