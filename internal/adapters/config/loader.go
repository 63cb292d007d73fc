// Package config provides the configuration loader for fixgen.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/fixgen/internal/core/domain"
	"go.trai.ch/fixgen/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file searched in the working directory.
const DefaultFilename = "fixgen.yaml"

// FileSettingsLoader implements ports.SettingsLoader using a YAML file.
type FileSettingsLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a FileSettingsLoader reading DefaultFilename.
func NewLoader(logger ports.Logger) *FileSettingsLoader {
	return &FileSettingsLoader{Filename: DefaultFilename, logger: logger}
}

// Load reads the configuration from the given working directory. A
// missing config file yields the defaults.
func (l *FileSettingsLoader) Load(cwd string) (*domain.Settings, error) {
	path := filepath.Join(cwd, l.Filename)
	//nolint:gosec // Path is the well-known config location under cwd
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			settings := domain.DefaultSettings()
			return &settings, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	return Parse(data)
}

// Parse decodes a Fixfile document over the default settings.
func Parse(data []byte) (*domain.Settings, error) {
	var fixfile Fixfile
	if err := unmarshalStrict(data, &fixfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	settings := domain.DefaultSettings()
	if len(fixfile.Tool.Requirements) > 0 {
		settings.ToolRequirements = fixfile.Tool.Requirements
	}
	if len(fixfile.Tool.ConfigNames) > 0 {
		settings.ToolConfigNames = fixfile.Tool.ConfigNames
	}
	if fixfile.SourceExtension != "" {
		settings.SourceExtension = fixfile.SourceExtension
	}
	if fixfile.ImportPathEnv != "" {
		settings.ImportPathEnvVar = fixfile.ImportPathEnv
	}
	if len(fixfile.Resolver.Command) > 0 {
		settings.ResolverCommand = fixfile.Resolver.Command
	}
	if fixfile.Resolver.Delimiter != "" {
		settings.HeaderDelimiter = fixfile.Resolver.Delimiter
	}
	if len(fixfile.InterpreterConstraints) > 0 {
		settings.DefaultInterpreterConstraints = fixfile.InterpreterConstraints
	}
	if len(fixfile.ExtraEnv) > 0 {
		settings.ExtraTestEnv = fixfile.ExtraEnv
	}
	if fixfile.Parallelism > 0 {
		settings.Parallelism = fixfile.Parallelism
	}

	if len(settings.HeaderDelimiter) != 1 {
		return nil, zerr.With(zerr.New("header delimiter must be a single character"), "delimiter", settings.HeaderDelimiter)
	}

	return &settings, nil
}

// unmarshalStrict decodes YAML rejecting unknown fields. An empty
// document decodes to the zero value.
func unmarshalStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
