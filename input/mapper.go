// Package input converts host keyboard events into bit changes on
// the cabinet's two input ports (spec.md §4.6). mapper.go holds the
// binding table and the pure bit-mutation logic; sdl_source.go is the
// go-sdl2 event pump, grounded on the teacher's processInput().
package input

import "github.com/nmartin-dev/go-invaders/cabinet"

// Binding names a single cabinet input: which port, which bit.
type Binding struct {
	Port byte // 1 or 2
	Bit  byte
}

// KeyBinding maps host key identifiers (SDL keysyms, or any other
// comparable key-code type a Source chooses) to cabinet Bindings.
// Defaults match spec.md §4.6's example mapping.
type KeyBinding struct {
	Coin    int32
	P1Start int32
	P2Start int32
	P1Left  int32
	P1Right int32
	P1Fire  int32
	P2Left  int32
	P2Right int32
	P2Fire  int32
	Quit    int32
}

// Apply mutates the cabinet's input ports for a single key
// down/up event. It is pure with respect to the keycode -> Binding
// lookup; Sources only need to call this once per event.
func (kb KeyBinding) Apply(c *cabinet.Cabinet, key int32, down bool) {
	switch key {
	case kb.Coin:
		c.SetPort1Bit(cabinet.BitCoin, down)
	case kb.P1Start:
		c.SetPort1Bit(cabinet.BitP1Start, down)
	case kb.P2Start:
		c.SetPort1Bit(cabinet.BitP2Start, down)
	case kb.P1Left:
		c.SetPort1Bit(cabinet.BitP1Left, down)
	case kb.P1Right:
		c.SetPort1Bit(cabinet.BitP1Right, down)
	case kb.P1Fire:
		c.SetPort1Bit(cabinet.BitP1Fire, down)
	case kb.P2Left:
		c.SetPort2Bit(cabinet.BitP2Left, down)
	case kb.P2Right:
		c.SetPort2Bit(cabinet.BitP2Right, down)
	case kb.P2Fire:
		c.SetPort2Bit(cabinet.BitP2Fire, down)
	}
}

// Source is the contract keyboard-polling back ends implement.
// Keyboard event polling is spec.md's external collaborator; this is
// the seam.
type Source interface {
	// Poll drains pending host events, mutating c's input ports via
	// the bound KeyBinding, and reports whether a quit was requested.
	Poll(c *cabinet.Cabinet) (quit bool)
	Close() error
}
