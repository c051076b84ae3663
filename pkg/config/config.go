// Package config loads drawing options from TOML files.
//
// A config file holds the same keys as [pipeline.Options]:
//
//	width = 1200
//	height = 800
//	seed = 42
//	formats = ["svg", "png"]
//	stroke_width = 1.5
//	stroke_color = "#222222"
//	background = "#fafafa"
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
package config

import (
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/slantgrid/pkg/errors"
	"github.com/matzehuels/slantgrid/pkg/pipeline"
)

// Load reads and decodes the config file at path.
func Load(path string) (pipeline.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML config data.
func Parse(data []byte) (pipeline.Options, error) {
	var opts pipeline.Options
	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return pipeline.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return pipeline.Options{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	return opts, nil
}
