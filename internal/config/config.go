// Package config loads memoflow.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"memoflow/internal/flow"
)

// FileName is the configuration file name looked up in the config directory
const FileName = "memoflow.toml"

// DefaultDBPath is used when neither the file nor MEMOFLOW_DB sets a path
const DefaultDBPath = "~/.local/share/memoflow/notes.db"

// Config is the top-level memoflow.toml configuration.
type Config struct {
	Store   StoreConfig   `toml:"store"`
	Log     LogConfig     `toml:"log"`
	Marquee MarqueeConfig `toml:"marquee"`
}

// StoreConfig locates the note database.
type StoreConfig struct {
	Path string `toml:"path"`
}

// LogConfig controls logrus output. An empty file means the default log file
// for the TUI and stderr for the CLI and MCP server.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MarqueeConfig tunes the flowing comments.
type MarqueeConfig struct {
	Enabled        bool    `toml:"enabled"`
	BaseIntervalMS int     `toml:"base_interval_ms"`
	JitterMS       int     `toml:"jitter_ms"`
	Speed          float64 `toml:"speed"` // cells per second
	FPS            int     `toml:"fps"`
	Lanes          int     `toml:"lanes"`
	Placeholder    string  `toml:"placeholder"`
}

// Defaults returns a Config with the reference marquee timing.
func Defaults() Config {
	return Config{
		Store: StoreConfig{Path: DefaultDBPath},
		Log:   LogConfig{Level: "info"},
		Marquee: MarqueeConfig{
			Enabled:        true,
			BaseIntervalMS: 2000,
			JitterMS:       3000,
			Speed:          12,
			FPS:            30,
			Lanes:          3,
			Placeholder:    flow.Placeholder,
		},
	}
}

// Validate checks the configuration and returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Store.Path) == "" {
		errs = append(errs, fmt.Errorf("store.path must not be empty"))
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of trace, debug, info, warn, error"))
	}
	if c.Marquee.BaseIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("marquee.base_interval_ms must be >= 0"))
	}
	if c.Marquee.JitterMS < 0 {
		errs = append(errs, fmt.Errorf("marquee.jitter_ms must be >= 0"))
	}
	if c.Marquee.Speed <= 0 {
		errs = append(errs, fmt.Errorf("marquee.speed must be > 0"))
	}
	if c.Marquee.FPS < 1 || c.Marquee.FPS > 120 {
		errs = append(errs, fmt.Errorf("marquee.fps must be between 1 and 120"))
	}
	if c.Marquee.Lanes < 1 {
		errs = append(errs, fmt.Errorf("marquee.lanes must be >= 1"))
	}

	return errors.Join(errs...)
}

// FlowConfig converts the marquee section for the scheduler
func (m MarqueeConfig) FlowConfig() flow.Config {
	return flow.Config{
		BaseInterval: time.Duration(m.BaseIntervalMS) * time.Millisecond,
		Jitter:       time.Duration(m.JitterMS) * time.Millisecond,
		Speed:        m.Speed,
	}
}

// FrameInterval is the time between marquee frames
func (m MarqueeConfig) FrameInterval() time.Duration {
	if m.FPS <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(m.FPS)
}

// Load reads the configuration. An empty path resolves through Path(); a
// missing file at the resolved default location yields Defaults. An explicit
// path must exist. Unknown keys are rejected as likely typos.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}

	cfg := Defaults()
	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return &cfg, nil
}

// Path returns the config file location: $MEMOFLOW_CONFIG, else
// $XDG_CONFIG_HOME/memoflow/memoflow.toml, else ~/.config/memoflow/memoflow.toml.
func Path() string {
	if env := os.Getenv("MEMOFLOW_CONFIG"); env != "" {
		return env
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "memoflow", FileName)
}

// DefaultLogFile returns the TUI log location under $XDG_STATE_HOME
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "memoflow", "memoflow.log")
}

// applyEnv lets MEMOFLOW_DB override the database path
func applyEnv(cfg *Config) {
	if env := os.Getenv("MEMOFLOW_DB"); env != "" {
		cfg.Store.Path = env
	}
}

// InitFile writes a default memoflow.toml to path, refusing to overwrite.
func InitFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	content := `# memoflow.toml

[store]
path = "` + DefaultDBPath + `"

[log]
level = "info"
file = ""  # empty = ~/.local/state/memoflow/memoflow.log for the TUI, stderr otherwise

[marquee]
enabled = true
base_interval_ms = 2000
jitter_ms = 3000  # next comment after base + [0, jitter) ms
speed = 12        # cells per second
fps = 30
lanes = 3
placeholder = "` + flow.Placeholder + `"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
