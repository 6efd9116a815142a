package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nmartin-dev/go-invaders/cabinet"
	"github.com/nmartin-dev/go-invaders/config"
	"github.com/nmartin-dev/go-invaders/input"
	"github.com/nmartin-dev/go-invaders/video"
)

// frameInterval is the wall-clock budget of one video frame at 60 Hz
// (spec.md §4.4/§5).
const frameInterval = time.Second / 60

func main() {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "go-invaders [rom]",
		Short: "A Space Invaders cabinet emulator: 8080 core plus cabinet I/O",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ROMPath = args[0]
			return run(cfg)
		},
	}
	rootCmd.Flags().IntVar(&cfg.Scale, "scale", cfg.Scale, "integer pixel scale factor for the display window")
	rootCmd.Flags().BoolVar(&cfg.Trace, "trace", cfg.Trace, "log runtime anomalies (unhandled ports, etc.) to stderr")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := log.New(os.Stderr, "[invaders] ", log.LstdFlags)

	rom, err := os.ReadFile(cfg.ROMPath)
	if err != nil {
		return fmt.Errorf("main: reading rom %q: %w", cfg.ROMPath, err)
	}

	mach, err := cabinet.LoadROM(rom)
	if err != nil {
		return fmt.Errorf("main: %w", err)
	}
	if cfg.Trace {
		mach.Logger = logger
	}

	display, err := video.NewSDLDisplay("Space Invaders", cfg.Scale)
	if err != nil {
		return fmt.Errorf("main: %w", err)
	}
	defer display.Close()

	source := &input.SDLSource{Bindings: cfg.KeyBind}
	defer source.Close()

	runLoop(mach, display, source)
	return nil
}

// runLoop is the teacher's Run() generalized: poll input, run one
// cabinet frame, present it, then sleep out whatever's left of the
// 1/60s budget. If a frame overran its budget the sleep is skipped
// entirely, per spec.md §5 — instructions are never skipped to catch
// up.
func runLoop(mach *cabinet.Cabinet, display video.Display, source input.Source) {
	for {
		if source.Poll(mach) {
			return
		}

		frameStart := time.Now()
		mach.RunFrame()

		frame := video.Rasterize(mach.Framebuffer())
		if err := display.Present(frame); err != nil {
			log.Printf("[invaders] present: %v", err)
		}

		if elapsed := time.Since(frameStart); elapsed < frameInterval {
			time.Sleep(frameInterval - elapsed)
		}
	}
}
