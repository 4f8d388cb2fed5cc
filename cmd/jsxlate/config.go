package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/zbyte64/jsxlate"
)

// fileConfig mirrors the library's Config for YAML loading. Zero fields keep
// their defaults.
type fileConfig struct {
	FunctionMarker       string              `yaml:"functionMarker"`
	ElementMarker        string              `yaml:"elementMarker"`
	DesignationAttribute string              `yaml:"designationAttribute"`
	AllowedAttributes    map[string][]string `yaml:"allowedAttributes"`
}

// optionsFromConfigFile loads --config into library options. An empty path
// means defaults.
func optionsFromConfigFile(path string) ([]jsxlate.Option, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	var opts []jsxlate.Option
	if fc.FunctionMarker != "" {
		opts = append(opts, jsxlate.WithFunctionMarker(fc.FunctionMarker))
	}
	if fc.ElementMarker != "" {
		opts = append(opts, jsxlate.WithElementMarker(fc.ElementMarker))
	}
	if fc.DesignationAttribute != "" {
		opts = append(opts, jsxlate.WithDesignationAttribute(fc.DesignationAttribute))
	}
	if fc.AllowedAttributes != nil {
		opts = append(opts, jsxlate.WithAllowedAttributes(fc.AllowedAttributes))
	}
	return opts, nil
}

// loadTranslations reads a flat message-key to translated-text map from a
// JSON or YAML file, chosen by extension.
func loadTranslations(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading translations %s: %w", path, err)
	}

	table := make(map[string]string)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &table)
	case ".json":
		err = json.Unmarshal(data, &table)
	default:
		return nil, fmt.Errorf("translations %s: unsupported extension (want .json, .yaml, or .yml)", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing translations %s: %w", path, err)
	}
	return table, nil
}
