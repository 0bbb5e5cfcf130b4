// ABOUTME: Settings loading with global + project config merge and an explicit override file
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3; accessors validate and apply defaults

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultQuitKey     = "ctrl-q"
	defaultReadTimeout = 100 * time.Millisecond
)

// Settings holds the merged configuration. Empty fields mean "use the default".
type Settings struct {
	Welcome     string `yaml:"welcome,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty"`
	QuitKey     string `yaml:"quit_key,omitempty"`
	ReadTimeout string `yaml:"read_timeout,omitempty"`
	LogFile     string `yaml:"log_file,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// Load reads and merges global and project-local settings, then an
// explicit file when override is non-empty. Later sources win. Missing
// global or project files are not an error; a missing override is. An
// empty projectRoot skips the project file.
func Load(projectRoot, override string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	merged := global
	if projectRoot != "" {
		project, err := loadFile(ProjectConfigFile(projectRoot))
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
		merged = merge(global, project)
	}

	if override != "" {
		explicit, err := loadFile(override)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", override, err)
		}
		merged = merge(merged, explicit)
	}

	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays non-empty fields of top onto base.
func merge(base, top *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if top == nil {
		return base
	}

	result := *base

	if top.Welcome != "" {
		result.Welcome = top.Welcome
	}
	if top.Placeholder != "" {
		result.Placeholder = top.Placeholder
	}
	if top.QuitKey != "" {
		result.QuitKey = top.QuitKey
	}
	if top.ReadTimeout != "" {
		result.ReadTimeout = top.ReadTimeout
	}
	if top.LogFile != "" {
		result.LogFile = top.LogFile
	}
	if top.LogLevel != "" {
		result.LogLevel = top.LogLevel
	}

	return &result
}

// Validate checks every field that has a constrained format.
func (s *Settings) Validate() error {
	var errs []error
	if _, err := s.QuitByte(); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.Timeout(); err != nil {
		errs = append(errs, err)
	}
	if _, err := s.Level(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// QuitByte returns the byte that ends the session.
func (s *Settings) QuitByte() (byte, error) {
	binding := s.QuitKey
	if binding == "" {
		binding = defaultQuitKey
	}
	return ParseKeyBinding(binding)
}

// Timeout returns the raw-mode read timeout.
func (s *Settings) Timeout() (time.Duration, error) {
	if s.ReadTimeout == "" {
		return defaultReadTimeout, nil
	}
	d, err := time.ParseDuration(s.ReadTimeout)
	if err != nil {
		return 0, fmt.Errorf("read_timeout: %w", err)
	}
	if d < 100*time.Millisecond || d > 25500*time.Millisecond {
		return 0, fmt.Errorf("read_timeout: %v outside 100ms..25.5s", d)
	}
	return d, nil
}

// Level returns the configured log level; Info when unset.
func (s *Settings) Level() (slog.Level, error) {
	switch strings.ToLower(s.LogLevel) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log_level: unknown level %q", s.LogLevel)
}
