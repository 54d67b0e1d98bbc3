// Package config loads gridpath settings from a TOML file.
//
// Every field has a default, so an absent file or an empty one yields a
// working configuration. Command-line flags are applied on top by the cli
// package.
//
// Example file:
//
//	rows      = 40
//	width     = 800
//	algorithm = "A*"
//	delay     = "20ms"
//
//	[server]
//	addr    = ":9090"
//	metrics = true
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/gridpath/search"
)

// Defaults for a fresh board and animation.
const (
	DefaultRows  = 50
	DefaultWidth = 800
	DefaultDelay = 50 * time.Millisecond
	MaxDelay     = 500 * time.Millisecond
	DefaultAddr  = ":8080"

	// MaxRows bounds boards built from untrusted input (files, HTTP bodies).
	MaxRows = 500
)

// Sentinel errors for configuration.
var (
	ErrInvalidRows  = errors.New("config: rows must be between 1 and 500")
	ErrInvalidWidth = errors.New("config: width must be non-negative")
	ErrUnknownKey   = errors.New("config: unknown key")
)

// Config holds every tunable of the gridpath binary.
type Config struct {
	// Rows is the board edge length in cells.
	Rows int `toml:"rows"`
	// Width is the board edge length in pixels; each cell is Width/Rows wide.
	Width int `toml:"width"`
	// Algorithm is the strategy selected at start-up.
	Algorithm search.Algorithm `toml:"algorithm"`
	// Delay is the pause between animation frames in the terminal player.
	Delay time.Duration `toml:"delay"`

	Server Server `toml:"server"`
}

// Server configures the HTTP API.
type Server struct {
	Addr    string `toml:"addr"`
	Metrics bool   `toml:"metrics"`
	// Timeout caps a single solve request; zero means no cap.
	Timeout time.Duration `toml:"timeout"`
}

// Default returns the built-in configuration: a 50×50 board 800 pixels
// wide, DFS selected, 50ms between frames, API on :8080 with metrics.
func Default() Config {
	return Config{
		Rows:      DefaultRows,
		Width:     DefaultWidth,
		Algorithm: search.DFS,
		Delay:     DefaultDelay,
		Server: Server{
			Addr:    DefaultAddr,
			Metrics: true,
			Timeout: 5 * time.Second,
		},
	}
}

// Load reads the TOML file at path over Default and validates the result.
// An empty path returns Default. Keys the file sets that Config does not
// know are reported as ErrUnknownKey.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and clamps Delay into [0, MaxDelay].
func (c *Config) Validate() error {
	if c.Rows <= 0 || c.Rows > MaxRows {
		return fmt.Errorf("%w: got %d", ErrInvalidRows, c.Rows)
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, c.Width)
	}
	if _, err := c.Algorithm.MarshalText(); err != nil {
		return err
	}
	c.Delay = ClampDelay(c.Delay)
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	return nil
}

// ClampDelay limits d to the [0, MaxDelay] slider range.
func ClampDelay(d time.Duration) time.Duration {
	switch {
	case d < 0:
		return 0
	case d > MaxDelay:
		return MaxDelay
	}
	return d
}
