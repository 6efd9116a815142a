package video

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// SDLDisplay is a Display backed by go-sdl2, grounded directly on the
// teacher's emulator.chip8 SDL setup and update() method
// (CreateWindow/CreateRenderer/CreateTexture, then
// Update/Clear/Copy/Present per frame), scaled by an integer factor
// instead of chip8's fixed 100x.
type SDLDisplay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	rect     *sdl.Rect
}

// NewSDLDisplay creates a window sized Width*scale x Height*scale and
// a streaming texture matching the rasterized frame's native
// resolution. Returns a Configuration-error-class error (spec.md §7)
// on any SDL failure.
func NewSDLDisplay(title string, scale int) (*SDLDisplay, error) {
	if scale < 1 {
		scale = 1
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("video: sdl init: %w", err)
	}

	winW, winH := int32(Width*scale), int32(Height*scale)

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, winW, winH, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("video: create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("video: create renderer: %w", err)
	}
	renderer.Clear()

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_STREAMING, Width, Height)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("video: create texture: %w", err)
	}

	return &SDLDisplay{
		window:   window,
		renderer: renderer,
		texture:  texture,
		rect:     &sdl.Rect{X: 0, Y: 0, W: winW, H: winH},
	}, nil
}

// Present uploads an RGBA frame and blits it scaled to the window,
// matching the teacher's chip8.update(): texture.Update, Clear, Copy,
// Present.
func (d *SDLDisplay) Present(frame *image.RGBA) error {
	pitch := frame.Stride
	if err := d.texture.Update(nil, unsafe.Pointer(&frame.Pix[0]), pitch); err != nil {
		return fmt.Errorf("video: texture update: %w", err)
	}
	d.renderer.Clear()
	if err := d.renderer.Copy(d.texture, nil, d.rect); err != nil {
		return fmt.Errorf("video: renderer copy: %w", err)
	}
	d.renderer.Present()
	return nil
}

// Close releases SDL resources in reverse creation order, matching
// the teacher's deferred Destroy/Quit calls in newChip8.
func (d *SDLDisplay) Close() error {
	d.texture.Destroy()
	d.renderer.Destroy()
	d.window.Destroy()
	sdl.Quit()
	return nil
}
