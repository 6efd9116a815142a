package cpu

// Memory is the 8080's 64 KiB linear address space. The real cabinet
// partitions it into ROM (0x0000-0x1FFF), work RAM (0x2000-0x23FF),
// video RAM (0x2400-0x3FFF) and an unused RAM mirror (0x4000-0xFFFF),
// but nothing here enforces that partition beyond what the ROM image
// itself writes and reads — the same way the original silicon had no
// memory protection.
type Memory [65536]byte

// VideoBase is the first address of the 7168-byte monochrome framebuffer.
const VideoBase = 0x2400

// VideoSize is the length in bytes of the framebuffer (256*224/8).
const VideoSize = 7168

func (m *Memory) Read(addr uint16) byte {
	return m[addr]
}

func (m *Memory) Write(addr uint16, value byte) {
	m[addr] = value
}

// Read16 reads a little-endian 16-bit word.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := uint16(m[addr])
	hi := uint16(m[addr+1])
	return hi<<8 | lo
}

// Write16 writes a little-endian 16-bit word.
func (m *Memory) Write16(addr uint16, value uint16) {
	m[addr] = byte(value & 0xFF)
	m[addr+1] = byte(value >> 8)
}

// Video returns the framebuffer slice backing the display.
func (m *Memory) Video() []byte {
	return m[VideoBase : VideoBase+VideoSize]
}

// LoadROM copies a ROM image to address 0 of the address space. It does
// not validate size; callers that need the "exactly 8 KiB" Space
// Invaders contract should check len(rom) before calling this.
func (m *Memory) LoadROM(rom []byte) {
	copy(m[0:], rom)
}
