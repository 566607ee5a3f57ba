// Package config loads the tempo, resolution, sample rate and time signature
// used for conversions from .yml or .json files.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/vsariola/timecalc"
)

//go:embed default.yml
var defaultContextYaml []byte

// Default returns the built-in context: 120 BPM, 960 PPQN, 44100 Hz, 4/4.
func Default() timecalc.Context {
	var ctx timecalc.Context
	if err := yaml.UnmarshalStrict(defaultContextYaml, &ctx); err != nil {
		panic(fmt.Errorf("failed to unmarshal default context: %w", err))
	}
	return ctx
}

// Parse reads a context from .json or .yml contents. Fields missing from the
// data keep their default values. Unknown fields are an error in both
// formats. The result
// is validated.
func Parse(data []byte) (timecalc.Context, error) {
	ctx := Default()
	if errJSON := unmarshalStrictJSON(data, &ctx); errJSON != nil {
		ctx = Default()
		if errYaml := yaml.UnmarshalStrict(data, &ctx); errYaml != nil {
			return timecalc.Context{}, fmt.Errorf("the context could not be parsed as .json (%v) or .yml (%v)", errJSON, errYaml)
		}
	}
	if err := ctx.Validate(); err != nil {
		return timecalc.Context{}, fmt.Errorf("invalid context: %v", err)
	}
	return ctx, nil
}

// unmarshalStrictJSON rejects unknown fields, the same way yaml.UnmarshalStrict
// does.
func unmarshalStrictJSON(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after the json object")
	}
	return nil
}

// Load reads a context from the given file.
func Load(filename string) (timecalc.Context, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return timecalc.Context{}, fmt.Errorf("could not read file %v: %v", filename, err)
	}
	ctx, err := Parse(data)
	if err != nil {
		return timecalc.Context{}, fmt.Errorf("could not parse file %v: %v", filename, err)
	}
	return ctx, nil
}

// UserPath returns where a file with the given name is looked for in the user
// configuration directory, e.g. ~/.config/timecalc/context.yml.
func UserPath(filename string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "timecalc", filename), nil
}

// LoadUser loads the context from the user configuration directory. If the
// file does not exist, the default context is returned with exists = false.
func LoadUser(filename string) (ctx timecalc.Context, exists bool, err error) {
	path, err := UserPath(filename)
	if err != nil {
		return Default(), false, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), false, nil
	}
	ctx, err = Load(path)
	if err != nil {
		return Default(), true, err
	}
	return ctx, true, nil
}

// Save writes the context as .yml, creating the parent directories if needed.
func Save(filename string, ctx timecalc.Context) error {
	contents, err := yamlv3.Marshal(ctx)
	if err != nil {
		return fmt.Errorf("could not marshal context: %v", err)
	}
	if dir := filepath.Dir(filename); dir != "" {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create directory %v: %v", dir, err)
		}
	}
	if err := os.WriteFile(filename, contents, 0644); err != nil {
		return fmt.Errorf("could not write file %v: %v", filename, err)
	}
	return nil
}
