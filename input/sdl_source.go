package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/nmartin-dev/go-invaders/cabinet"
)

// DefaultKeyBinding matches spec.md §4.6's example mapping: Coin=C,
// P1 start=1, P2 start=2, P1 move=A/D, P1 fire=W, P2 move=J/L,
// P2 fire=I, quit=Escape.
func DefaultKeyBinding() KeyBinding {
	return KeyBinding{
		Coin:    sdl.K_c,
		P1Start: sdl.K_1,
		P2Start: sdl.K_2,
		P1Left:  sdl.K_a,
		P1Right: sdl.K_d,
		P1Fire:  sdl.K_w,
		P2Left:  sdl.K_j,
		P2Right: sdl.K_l,
		P2Fire:  sdl.K_i,
		Quit:    sdl.K_ESCAPE,
	}
}

// SDLSource polls SDL's event queue, grounded line-for-line on the
// teacher's (c8 *chip8) processInput(): the same sdl.PollEvent loop,
// the same *sdl.QuitEvent / *sdl.KeyboardEvent type switch, the same
// press/release boolean derived from t.Type == sdl.KEYDOWN —
// generalized from chip8's 16-key hex pad to the cabinet's two input
// ports via KeyBinding.Apply.
type SDLSource struct {
	Bindings KeyBinding
}

// NewSDLSource builds a Source with the default key bindings.
func NewSDLSource() *SDLSource {
	return &SDLSource{Bindings: DefaultKeyBinding()}
}

func (s *SDLSource) Poll(c *cabinet.Cabinet) bool {
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch t := event.(type) {
		case *sdl.QuitEvent:
			quit = true
		case *sdl.KeyboardEvent:
			down := t.Type == sdl.KEYDOWN
			if t.Keysym.Sym == s.Bindings.Quit {
				if down {
					quit = true
				}
				continue
			}
			s.Bindings.Apply(c, t.Keysym.Sym, down)
		}
	}

	return quit
}

func (s *SDLSource) Close() error { return nil }
