// Package video converts the cabinet's monochrome framebuffer into
// host display pixels, applying the cabinet's rotation and the
// traditional color-gel overlay. Rasterize is a pure function so the
// bit/rotation/overlay math is testable without a window; sdl_display.go
// is the go-sdl2-backed Display the teacher's chip8 update() pattern
// is generalized from.
package video

import "image"

// Width and Height are the rotated display's dimensions (spec.md §4.5).
const (
	Width  = 224
	Height = 256
)

// Color zones, approximating the cabinet's physical color gel
// (spec.md §4.5). Columns/rows are in rotated display space.
var (
	colorWhite = [4]byte{0xFF, 0xFF, 0xFF, 0xFF}
	colorRed   = [4]byte{0xFF, 0x20, 0x20, 0xFF}
	colorGreen = [4]byte{0x20, 0xFF, 0x20, 0xFF}
)

func overlayColor(x, y int) [4]byte {
	switch {
	case y >= 32 && y < 64:
		return colorRed
	case y >= 184 && y < 240:
		return colorGreen
	case y >= 238 && y < 256 && x >= 16 && x < 132:
		return colorGreen
	default:
		return colorWhite
	}
}

// Rasterize converts the 7168-byte, 1-bit-per-pixel framebuffer at
// 0x2400 into a 224x256 RGBA image. Bit 0 of byte 0 is the top-left of
// the rotated image (spec.md §4.5): each byte holds 8 vertically
// adjacent source pixels, so byte index i maps to display column
// i/32 (0-223, matching Width), and bit position within the byte maps
// to display row (i%32)*8+bit (0-255, matching Height) directly —
// bit 0 of byte 0 lands at (0,0).
func Rasterize(framebuffer []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))

	for i, b := range framebuffer {
		col := i / 32
		rowBase := (i % 32) * 8
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) == 0 {
				continue
			}
			x := col
			y := rowBase + bit
			if x < 0 || x >= Width || y < 0 || y >= Height {
				continue
			}
			rgba := overlayColor(x, y)
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = rgba[0]
			img.Pix[offset+1] = rgba[1]
			img.Pix[offset+2] = rgba[2]
			img.Pix[offset+3] = rgba[3]
		}
	}

	return img
}

// Display is the contract video presenters implement. ROM loading,
// window/surface creation and pixel blitting are spec.md's "external
// collaborators"; this interface is the seam the cabinet's frame loop
// calls through, with sdl_display.go the concrete implementation this
// repo ships.
type Display interface {
	Present(frame *image.RGBA) error
	Close() error
}
