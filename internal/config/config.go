// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads PasswordClarity settings from defaults, YAML files,
// the environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"

	"github.com/bkearan/passwordclarity/internal/refdata"
	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "passwordclarity"
	envPrefix = "passwordclarity"
)

// ErrInvalid is wrapped by validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full application configuration.
type Config struct {
	Language string `mapstructure:"language" yaml:"language" json:"language"`
	Scoring  struct {
		Profile strength.Profile `mapstructure:"profile" yaml:"profile" json:"profile"`
	} `mapstructure:"scoring" yaml:"scoring" json:"scoring"`
	Display struct {
		MaxWarnings int  `mapstructure:"max_warnings" yaml:"max_warnings" json:"max_warnings"`
		Mask        bool `mapstructure:"mask" yaml:"mask" json:"mask"`
	} `mapstructure:"display" yaml:"display" json:"display"`
	Reference refdata.Sources `mapstructure:"reference" yaml:"reference" json:"reference"`
}

// Defaults returns the default values keyed by their dotted viper path.
func Defaults() map[string]any {
	return map[string]any{
		"language":                    "en",
		"scoring.profile":             strength.DefaultProfile.Name,
		"display.max_warnings":        3,
		"display.mask":                true,
		"reference.words":             "",
		"reference.common_passwords":  "",
		"reference.keyboard_patterns": "",
		"reference.symbols":           "",
	}
}

// Default returns a Config populated with Defaults.
func Default() Config {
	var c Config
	c.Language = "en"
	c.Scoring.Profile = strength.DefaultProfile
	c.Display.MaxWarnings = 3
	c.Display.Mask = true
	return c
}

// Validate checks values that decoding alone cannot catch.
func (c Config) Validate() error {
	if c.Display.MaxWarnings < 0 {
		return fmt.Errorf("%w: display.max_warnings must not be negative, got %d", ErrInvalid, c.Display.MaxWarnings)
	}
	if c.Scoring.Profile.LengthWeight <= 0 {
		return fmt.Errorf("%w: scoring.profile is not set", ErrInvalid)
	}
	return nil
}

// flagKeys maps command-line flag names to the config keys they override.
var flagKeys = map[string]string{
	"language":     "language",
	"profile":      "scoring.profile",
	"max-warnings": "display.max_warnings",
	"mask":         "display.mask",
	"words":        "reference.words",
	"symbols":      "reference.symbols",
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "PasswordClarity")
		default: // Linux, macOS, etc.
			configDir = "/etc/" + appName
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, appName)
	}

	return filepath.Join(configDir, appName+".yaml"), nil
}

// LoadConfig resolves a T from defaults, the first passwordclarity.yaml found
// (or the explicit file at path), PASSWORDCLARITY_* environment variables and
// the flags of cmd.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, path *string) (T, error) {
	c, _, err := LoadConfigWithSource[T](cmd, defaults, path)
	return c, err
}

// LoadConfigWithSource is LoadConfig that also reports which file was read.
// The path is empty when no file was found.
func LoadConfigWithSource[T any](cmd *cobra.Command, defaults map[string]any, path *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")

	if path != nil && *path != "" {
		v.SetConfigFile(*path)
	}

	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, anything else is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return c, "", fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		if err := bindFlags(v, cmd.Flags()); err != nil {
			return c, "", err
		}
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		profileHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return c, "", fmt.Errorf("decode config: %w", err)
	}

	return c, v.ConfigFileUsed(), nil
}

// bindFlags binds the flags that exist on fs to their config keys. Flags
// left at their defaults do not override file or environment values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// profileHook decodes profile names into strength.Profile values, failing
// early on names that are not registered.
func profileHook() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(strength.Profile{})
	return func(from, to reflect.Type, data any) (any, error) {
		if to != target || from.Kind() != reflect.String {
			return data, nil
		}
		name := reflect.ValueOf(data).String()
		if name == "" {
			return strength.DefaultProfile, nil
		}
		return strength.ProfileByName(name)
	}
}

// WriteConfigFile writes c as YAML to the user or system config path and
// returns that path.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}
	return path, WriteConfigTo(c, path)
}

// WriteConfigTo writes c as YAML to path, creating parent directories.
func WriteConfigTo[T any](c *T, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	return os.WriteFile(path, data, 0o600)
}
