// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/GoPowerDNS-Admin/randstring/internal/charset"
	"github.com/GoPowerDNS-Admin/randstring/internal/generator"
)

const (
	// DefaultPath is the directory searched for main.toml when no path is given.
	DefaultPath = "./etc/"

	// EnvPrefix prefixes environment variables overriding single settings, e.g. RANDSTRING_GENERATOR_LENGTH.
	EnvPrefix = "RANDSTRING"

	// EnvConfigJSON names the environment variable holding a JSON document merged over the file.
	EnvConfigJSON = "RANDSTRING_CONFIG_JSON"

	mainFile = "main.toml"

	maxWorkers = 8
)

var validate = validator.New() //nolint:gochecknoglobals

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	if path == "" {
		path = DefaultPath
	}

	v := viper.New()
	v.SetConfigFile(path + mainFile)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	if configJSON := os.Getenv(EnvConfigJSON); configJSON != "" {
		c, err = decodeAndMergeConfig(c, configJSON)
		if err != nil {
			return c, err
		}
	}

	applyDefaults(&c)

	return c, Validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read %s", EnvConfigJSON)
	}

	return c, nil
}

// applyDefaults fills generator settings left out of the file.
func applyDefaults(c *Config) {
	g := &c.Generator

	if g.Source == "" {
		g.Source = generator.SourceSecure
	}

	if g.Length == 0 {
		g.Length = 16
	}

	if len(g.Categories) == 0 {
		g.Categories = []string{"alphanumeric"}
	}

	if g.Count == 0 {
		g.Count = 1
	}

	if g.Workers == 0 {
		g.Workers = min(runtime.NumCPU(), maxWorkers)
	}
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	enc := toml.NewEncoder(&buffer)
	enc.SetIndentTables(true)

	if err := enc.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// Validate checks the settings randstring can not run without.
func Validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Title == "" {
		return errors.Wrap(ErrTitleIsEmpty, invalidErrMessage)
	}

	if err := validate.Struct(c.Generator); err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	categories, err := charset.Parse(c.Generator.Categories)
	if err != nil {
		return errors.Wrap(err, invalidErrMessage)
	}

	if categories == charset.None {
		return errors.Wrap(ErrNoCategories, invalidErrMessage)
	}

	return nil
}
