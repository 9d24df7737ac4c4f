package query

import (
	"log/slog"
	"sync"
	"time"

	"github.com/vango-dev/vtl/internal/config"
)

// Config holds the settings shared by all queries.
type Config struct {
	// TestIDAttribute is the attribute matched by the TestId queries.
	TestIDAttribute string

	// AsyncUtilTimeout bounds Find* queries and WaitFor.
	AsyncUtilTimeout time.Duration

	// AsyncInterval is the WaitFor polling interval.
	AsyncInterval time.Duration

	// DefaultHidden includes inaccessible elements in role queries.
	DefaultHidden bool

	// DefaultIgnore is the selector of elements text queries skip.
	DefaultIgnore string

	// DebugPrintLimit caps PrettyDOM output.
	DebugPrintLimit int

	// Colors is auto, always or never.
	Colors string
}

var (
	configMu   sync.RWMutex
	current    *Config
	configOnce sync.Once
)

// fromFile converts the project configuration.
func fromFile(c *config.Config) *Config {
	return &Config{
		TestIDAttribute:  c.TestIDAttribute,
		AsyncUtilTimeout: c.AsyncTimeoutDuration(),
		AsyncInterval:    c.AsyncIntervalDuration(),
		DefaultHidden:    c.DefaultHidden,
		DefaultIgnore:    "script, style",
		DebugPrintLimit:  c.DebugPrintLimit,
		Colors:           c.Colors,
	}
}

func load() {
	cfg, err := config.Resolve()
	if err != nil {
		slog.Default().Warn("vtl: using default query configuration", "error", err)
	}
	current = fromFile(cfg)
}

// GetConfig returns a copy of the current configuration. The first call
// reads vtl.json and the environment.
func GetConfig() Config {
	configOnce.Do(func() {
		configMu.Lock()
		defer configMu.Unlock()
		if current == nil {
			load()
		}
	})
	configMu.RLock()
	defer configMu.RUnlock()
	return *current
}

// Configure changes the configuration in place.
//
//	query.Configure(func(c *query.Config) { c.TestIDAttribute = "data-test" })
func Configure(fn func(*Config)) {
	cfg := GetConfig()
	fn(&cfg)
	configMu.Lock()
	current = &cfg
	configMu.Unlock()
}

// ResetConfig discards changes made with Configure and reloads the
// project configuration.
func ResetConfig() {
	configMu.Lock()
	defer configMu.Unlock()
	load()
}
