// Package config assembles the read-only process configuration
// (spec.md §9, "Global process state": ROM path and key bindings are
// configuration, assembled before the main loop starts and read-only
// thereafter) from CLI flags.
package config

import (
	"fmt"

	"github.com/nmartin-dev/go-invaders/input"
)

// Config holds everything main.go needs to wire a Cabinet, a Display
// and an input Source before entering the frame loop.
type Config struct {
	ROMPath string
	Scale   int
	Trace   bool
	KeyBind input.KeyBinding
}

// Default returns a Config with the spec's default scale (3, per
// spec.md §4.5) and key bindings.
func Default() Config {
	return Config{
		Scale:   3,
		KeyBind: input.DefaultKeyBinding(),
	}
}

// Validate reports a Configuration error (spec.md §7) if the assembled
// config can't start a cabinet.
func (c Config) Validate() error {
	if c.ROMPath == "" {
		return fmt.Errorf("config: rom path is required")
	}
	if c.Scale < 1 {
		return fmt.Errorf("config: scale must be >= 1, got %d", c.Scale)
	}
	return nil
}
