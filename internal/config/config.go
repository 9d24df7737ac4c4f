package config

import (
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vango-dev/vtl/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "vtl.json"

	// DefaultTestIDAttribute is the attribute matched by the TestId queries.
	DefaultTestIDAttribute = "data-testid"

	// DefaultAsyncTimeout bounds Find* queries and WaitFor.
	DefaultAsyncTimeout = time.Second

	// DefaultAsyncInterval is the polling interval of WaitFor.
	DefaultAsyncInterval = 50 * time.Millisecond

	// DefaultDebugPrintLimit caps the output of Debug and PrettyDOM.
	DefaultDebugPrintLimit = 7000
)

// ErrNotFound is wrapped by the C001 error returned when no vtl.json exists.
var ErrNotFound = stderrors.New("config file not found")

// Environment variable names.
const (
	EnvSkipAutoCleanup = "VTL_SKIP_AUTO_CLEANUP"
	EnvDebugPrintLimit = "DEBUG_PRINT_LIMIT"
	EnvAsyncTimeout    = "VTL_ASYNC_TIMEOUT"
	EnvTestIDAttribute = "VTL_TEST_ID_ATTRIBUTE"
	EnvColors          = "VTL_COLORS"
)

// Color modes.
const (
	ColorsAuto   = "auto"
	ColorsAlways = "always"
	ColorsNever  = "never"
)

// Config represents the complete vtl.json configuration.
type Config struct {
	// TestIDAttribute is the attribute matched by the TestId queries.
	TestIDAttribute string `json:"testIdAttribute,omitempty"`

	// AsyncTimeout is the default timeout of Find* and WaitFor, as a Go duration.
	AsyncTimeout string `json:"asyncTimeout,omitempty"`

	// AsyncInterval is the WaitFor polling interval, as a Go duration.
	AsyncInterval string `json:"asyncInterval,omitempty"`

	// DebugPrintLimit caps the number of characters Debug prints.
	DebugPrintLimit int `json:"debugPrintLimit,omitempty"`

	// SkipAutoCleanup disables the cleanup registered by vtl.Setup.
	SkipAutoCleanup bool `json:"skipAutoCleanup,omitempty"`

	// DefaultHidden makes queries include inaccessible elements by default.
	DefaultHidden bool `json:"defaultHidden,omitempty"`

	// Colors selects highlighting of pretty-printed DOM: auto, always or never.
	Colors string `json:"colors,omitempty"`

	// configPath is the path this config was loaded from (not serialized).
	configPath string
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		TestIDAttribute: DefaultTestIDAttribute,
		AsyncTimeout:    DefaultAsyncTimeout.String(),
		AsyncInterval:   DefaultAsyncInterval.String(),
		DebugPrintLimit: DefaultDebugPrintLimit,
		Colors:          ColorsAuto,
	}
}

// Load reads configuration from the specified directory.
// It looks for vtl.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C001").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				Wrap(ErrNotFound)
		}
		return nil, errors.New("C001").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C001").
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, cfg.Validate()
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.TestIDAttribute == "" {
		c.TestIDAttribute = DefaultTestIDAttribute
	}
	if c.AsyncTimeout == "" {
		c.AsyncTimeout = DefaultAsyncTimeout.String()
	}
	if c.AsyncInterval == "" {
		c.AsyncInterval = DefaultAsyncInterval.String()
	}
	if c.DebugPrintLimit == 0 {
		c.DebugPrintLimit = DefaultDebugPrintLimit
	}
	if c.Colors == "" {
		c.Colors = ColorsAuto
	}
}

// ApplyEnv overrides fields from environment variables read through getenv.
// Unparseable values are reported through Validate.
func (c *Config) ApplyEnv(getenv func(string) string) *Config {
	if v := getenv(EnvSkipAutoCleanup); v != "" {
		c.SkipAutoCleanup = truthy(v)
	}
	if v := getenv(EnvDebugPrintLimit); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			c.DebugPrintLimit = n
		} else {
			c.DebugPrintLimit = -1
		}
	}
	if v := getenv(EnvAsyncTimeout); v != "" {
		c.AsyncTimeout = strings.TrimSpace(v)
	}
	if v := getenv(EnvTestIDAttribute); v != "" {
		c.TestIDAttribute = strings.TrimSpace(v)
	}
	if v := getenv(EnvColors); v != "" {
		c.Colors = strings.ToLower(strings.TrimSpace(v))
	}
	return c
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.AsyncTimeout); err != nil {
		return errors.New("C002").
			WithDetail("asyncTimeout must be a Go duration such as \"1s\"").
			Wrap(err)
	}
	if _, err := time.ParseDuration(c.AsyncInterval); err != nil {
		return errors.New("C002").
			WithDetail("asyncInterval must be a Go duration such as \"50ms\"").
			Wrap(err)
	}
	if c.DebugPrintLimit < 0 {
		return errors.New("C002").
			WithDetail("debugPrintLimit must be a positive number")
	}
	switch c.Colors {
	case ColorsAuto, ColorsAlways, ColorsNever:
	default:
		return errors.New("C002").
			WithDetail("colors must be one of auto, always, never")
	}
	return nil
}

// AsyncTimeoutDuration returns AsyncTimeout parsed, or the default.
func (c *Config) AsyncTimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(c.AsyncTimeout); err == nil && d > 0 {
		return d
	}
	return DefaultAsyncTimeout
}

// AsyncIntervalDuration returns AsyncInterval parsed, or the default.
func (c *Config) AsyncIntervalDuration() time.Duration {
	if d, err := time.ParseDuration(c.AsyncInterval); err == nil && d > 0 {
		return d
	}
	return DefaultAsyncInterval
}

// Exists checks if a vtl.json exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the directory holding vtl.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("C001").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory").
				Wrap(ErrNotFound)
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}

	return Load(root)
}

// Resolve returns the effective configuration: vtl.json when one is found
// above the working directory, defaults otherwise, then the environment.
// A broken file or environment falls back to defaults plus a non-nil error.
func Resolve() (*Config, error) {
	cfg, err := LoadFromWorkingDir()
	if err != nil {
		if !stderrors.Is(err, ErrNotFound) {
			return New(), err
		}
		cfg = New()
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return New(), err
	}
	return cfg, nil
}

// SkipAutoCleanup reports whether VTL_SKIP_AUTO_CLEANUP is set to a true value.
func SkipAutoCleanup() bool {
	return truthy(os.Getenv(EnvSkipAutoCleanup))
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
