// Package cabinet implements the Space Invaders arcade hardware glue
// around the 8080: input ports, the external shift register, output
// latches, and the interrupt-driven frame scheduler. Grounded on
// original_source/src/invaders.rs's Machine struct and interrupts.rs,
// translated into the teacher's receiver-method idiom.
package cabinet

import (
	"fmt"
	"log"

	"github.com/nmartin-dev/go-invaders/cpu"
)

// romSize is the exact size of the concatenated H+G+F+E ROM images
// (spec.md §6).
const romSize = 8192

// Cabinet owns the CPU (and, through it, the CPU's memory) plus the
// ports and shift register that the ROM drives through IN/OUT.
type Cabinet struct {
	CPU *cpu.CPU

	inPort1 byte
	inPort2 byte

	shift0      byte
	shift1      byte
	shiftOffset byte

	soundPort3 byte
	soundPort5 byte

	// Logger receives runtime-anomaly notices (spec.md §7): unhandled
	// ports, etc. A nil Logger means silent — the default, since the
	// spec calls the trace log optional.
	Logger *log.Logger
}

// New builds a Cabinet with fresh CPU/memory state and the two input
// ports at their documented idle values: port 1 bit 3 ("always one")
// set, port 2 all clear.
func New() *Cabinet {
	mem := &cpu.Memory{}
	c := &Cabinet{
		CPU:     cpu.NewCPU(mem),
		inPort1: 0b0000_1000,
		inPort2: 0b0000_0000,
	}
	c.CPU.IO = c
	return c
}

// LoadROM reads rom (already read into memory by the caller — ROM
// loading itself, i.e. opening the cartridge file, is spec.md's
// external collaborator) and copies it to address 0. A size mismatch
// is a Configuration error (spec.md §7), returned rather than
// panicked.
func LoadROM(rom []byte) (*Cabinet, error) {
	if len(rom) != romSize {
		return nil, fmt.Errorf("cabinet: ROM must be exactly %d bytes, got %d", romSize, len(rom))
	}
	c := New()
	c.CPU.Mem.LoadROM(rom)
	return c, nil
}

func (c *Cabinet) logf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
