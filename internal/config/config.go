// Package config provides configuration loading for the document flattener.
package config

import (
	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DOCFLAT_"

// Config holds the application configuration. Command-line flags take
// precedence over these values.
//
// Keys carry no underscores: the env source maps DOCFLAT_A_B to the nested
// key "a.b", so DOCFLAT_ROWJOINER sets rowjoiner and DOCFLAT_XMLOPTIONS_XPATH
// sets the xpath entry of xmloptions.
type Config struct {
	// ConcatRows joins all rows into one string.
	ConcatRows bool   `koanf:"concat"`
	RowJoiner  string `koanf:"rowjoiner"`
	ColJoiner  string `koanf:"coljoiner"`

	// Errors is the decoding error mode handed to converters.
	Errors string `koanf:"errors"`

	// OutputFormat selects the exporter (text, json, pdf, docx, confluence).
	OutputFormat string `koanf:"format"`

	// MultiDocument makes the YAML converter treat each document of a stream as an item.
	MultiDocument bool `koanf:"multidocument"`

	// XMLOptions is forwarded to the tabular XML loader.
	XMLOptions map[string]any `koanf:"xmloptions"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		ConcatRows:   true,
		RowJoiner:    "\n",
		ColJoiner:    ", ",
		Errors:       "ignore",
		OutputFormat: "text",
		XMLOptions:   map[string]any{},
	}
}

// Load returns the application configuration using go-libs config-loader.
// Values come from the defaults, then the optional file at path, then
// DOCFLAT_* environment variables.
func Load(path string) (*Config, error) {
	defaults := Defaults()

	var (
		cfg Config
		err error
	)

	if path == "" {
		cfg, err = configloader.NewConfigLoader(
			configloader.WithDefaults(defaults),
			configloader.WithEnv[Config](EnvPrefix),
		).Load()
	} else {
		cfg, err = configloader.NewConfigLoader(
			configloader.WithDefaults(defaults),
			configloader.WithFile[Config](path),
			configloader.WithEnv[Config](EnvPrefix),
		).Load()
	}

	if err != nil {
		return nil, err
	}

	if cfg.XMLOptions == nil {
		cfg.XMLOptions = map[string]any{}
	}

	return &cfg, nil
}
