// Package config loads generator manifests.
//
// A manifest is a YAML file listing the assets and optionally overriding the symbol naming:
//
//	prefix: ion_simulator
//	assetDir: ion/src/simulator/assets/
//	guard: ION_SIMULATOR_LINUX_IMAGES_H
//	strict: true
//	assets:
//	  - logo.png
//	  - calculator-icon.png
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/maja42/incbin/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrEmptyConfigPath = errors.New("config path cannot be empty")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Manifest holds the settings of a config file.
// Nil / empty fields are not set by the manifest and keep their defaults.
type Manifest struct {
	Prefix   *string  `yaml:"prefix"`
	AssetDir *string  `yaml:"assetDir"`
	Guard    *string  `yaml:"guard"`
	Strict   *bool    `yaml:"strict"`
	Assets   []string `yaml:"assets"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	if path == "" {
		return nil, ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var m Manifest
	if err := yamlutil.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &m, nil
}
