// Package config provides the settings loader for fred.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the settings file looked up in the working directory.
	DefaultFilename = "fred.yaml"
	// EnvConfigPath overrides the settings file location.
	EnvConfigPath = "FRED_CONFIG"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// NewLoader creates a loader for filename. An empty filename selects
// DefaultFilename.
func NewLoader(filename string) *FileConfigLoader {
	if filename == "" {
		filename = DefaultFilename
	}
	return &FileConfigLoader{Filename: filename}
}

// NewLoaderFromEnv creates a loader honoring the FRED_CONFIG variable.
func NewLoaderFromEnv() *FileConfigLoader {
	return NewLoader(os.Getenv(EnvConfigPath))
}

// Load reads the settings from the given working directory.
// An absolute Filename is used as is.
func (l *FileConfigLoader) Load(cwd string) (*domain.Settings, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	return Load(path)
}

// Load reads a settings file from the given path.
// A missing file yields domain.DefaultSettings.
func Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var file Fredfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	settings, err := file.toSettings()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return settings, nil
}

func (f *Fredfile) toSettings() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	level, err := domain.ParseLogLevel(f.LogLevel)
	if err != nil {
		return nil, err
	}
	settings.LogLevel = level

	backend, err := domain.ParseTelemetryBackend(f.Telemetry)
	if err != nil {
		return nil, err
	}
	settings.Telemetry = backend

	if f.StepTimeout != nil {
		timeout, err := time.ParseDuration(*f.StepTimeout)
		if err != nil || timeout < 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidSettings, "invalid step timeout"), "step_timeout", *f.StepTimeout)
		}
		settings.StepTimeout = timeout
	}

	if len(f.Env) > 0 {
		settings.Env = f.Env
	}

	return settings, nil
}
