package cpu

// Reg names an 8-bit register. The executor dispatches on these
// directly from the opcode's register field; no ASCII tokens appear
// anywhere in the decode path.
type Reg uint8

const (
	RegB Reg = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegM // memory[HL] — not a real register, but shares the 3-bit field
	RegA
)

// Pair names a 16-bit register pair.
type Pair uint8

const (
	PairBC Pair = iota
	PairDE
	PairHL
	PairSP
)

// ieState models the interrupt-enable latch's three-state automaton
// (spec: EI takes effect only after the instruction following it
// retires, so "EI; RET" can't be preempted between the two).
type ieState uint8

const (
	ieDisabled ieState = iota
	iePending
	ieEnabled
)

// Flags holds the five 8080 condition flags.
type Flags struct {
	Z  bool
	S  bool
	P  bool
	CY bool
	AC bool
}

// Pack encodes the flags into the byte layout PUSH PSW expects:
// bit7=S bit6=Z bit5=0 bit4=AC bit3=0 bit2=P bit1=1 bit0=CY.
func (f Flags) Pack() byte {
	var b byte
	if f.S {
		b |= 1 << 7
	}
	if f.Z {
		b |= 1 << 6
	}
	if f.AC {
		b |= 1 << 4
	}
	if f.P {
		b |= 1 << 2
	}
	b |= 1 << 1 // fixed bit, always set
	if f.CY {
		b |= 1 << 0
	}
	return b
}

// UnpackFlags decodes a packed flags byte, ignoring the fixed bits.
func UnpackFlags(b byte) Flags {
	return Flags{
		S:  b&(1<<7) != 0,
		Z:  b&(1<<6) != 0,
		AC: b&(1<<4) != 0,
		P:  b&(1<<2) != 0,
		CY: b&(1<<0) != 0,
	}
}

// IOPorts is satisfied by whatever owns the cabinet's input/output
// ports (the shift register, input latches, sound/watchdog triggers).
// The CPU only knows how to execute IN/OUT; it never knows what's on
// the other end, matching spec.md's "Cabinet I/O" being a distinct
// component from the executor.
type IOPorts interface {
	In(port byte) byte
	Out(port byte, value byte)
}

// CPU is the 8080 register file plus the memory it addresses. It is a
// single owned value mutated in place by Step — the spec explicitly
// prefers this over returning a fresh copy per instruction, since a
// pure-functional shape obscures the per-instruction cycle budget.
type CPU struct {
	A, B, C, D, E, H, L byte
	SP, PC              uint16
	Flags               Flags

	ie ieState

	// Halted is true while the CPU is suspended waiting for an
	// interrupt (HLT). The scheduler keeps advancing cycles but Step
	// does not fetch while this is set.
	Halted bool

	// Cycles is the cost of the most recently retired instruction.
	Cycles int

	Mem *Memory
	IO  IOPorts

	// DebugTrap, when non-nil, is consulted at the top of Step whenever
	// PC == 0x0005. It is the CP/M BDOS print-string/print-char trap
	// used by diagnostic ROMs such as cpudiag.bin; returning true tells
	// Step the trap fully handled this instruction. Disabled (nil) by
	// default, per spec: production cabinet behavior never engages it.
	DebugTrap func(*CPU) bool
}

// Reset initializes a CPU to the documented power-on state: all
// registers and flags zero, SP = 0xF000, PC = 0x0000, interrupts
// disabled.
func (c *CPU) Reset() {
	c.A, c.B, c.C, c.D, c.E, c.H, c.L = 0, 0, 0, 0, 0, 0, 0
	c.SP = 0xF000
	c.PC = 0x0000
	c.Flags = Flags{}
	c.ie = ieDisabled
	c.Halted = false
	c.Cycles = 0
}

// NewCPU allocates a CPU wired to the given memory and resets it.
func NewCPU(mem *Memory) *CPU {
	c := &CPU{Mem: mem}
	c.Reset()
	return c
}

func (c *CPU) reg(r Reg) byte {
	switch r {
	case RegB:
		return c.B
	case RegC:
		return c.C
	case RegD:
		return c.D
	case RegE:
		return c.E
	case RegH:
		return c.H
	case RegL:
		return c.L
	case RegM:
		return c.Mem.Read(c.HL())
	case RegA:
		return c.A
	}
	panic("cpu: invalid register field")
}

func (c *CPU) setReg(r Reg, v byte) {
	switch r {
	case RegB:
		c.B = v
	case RegC:
		c.C = v
	case RegD:
		c.D = v
	case RegE:
		c.E = v
	case RegH:
		c.H = v
	case RegL:
		c.L = v
	case RegM:
		c.Mem.Write(c.HL(), v)
	case RegA:
		c.A = v
	default:
		panic("cpu: invalid register field")
	}
}

func (c *CPU) BC() uint16 { return uint16(c.B)<<8 | uint16(c.C) }
func (c *CPU) DE() uint16 { return uint16(c.D)<<8 | uint16(c.E) }
func (c *CPU) HL() uint16 { return uint16(c.H)<<8 | uint16(c.L) }

func (c *CPU) setBC(v uint16) { c.B, c.C = byte(v>>8), byte(v) }
func (c *CPU) setDE(v uint16) { c.D, c.E = byte(v>>8), byte(v) }
func (c *CPU) setHL(v uint16) { c.H, c.L = byte(v>>8), byte(v) }

func (c *CPU) pair(p Pair) uint16 {
	switch p {
	case PairBC:
		return c.BC()
	case PairDE:
		return c.DE()
	case PairHL:
		return c.HL()
	case PairSP:
		return c.SP
	}
	panic("cpu: invalid register pair")
}

func (c *CPU) setPair(p Pair, v uint16) {
	switch p {
	case PairBC:
		c.setBC(v)
	case PairDE:
		c.setDE(v)
	case PairHL:
		c.setHL(v)
	case PairSP:
		c.SP = v
	default:
		panic("cpu: invalid register pair")
	}
}

// IE reports whether interrupts are currently accepted.
func (c *CPU) IE() bool { return c.ie == ieEnabled }

// EnableInterrupts implements EI: the latch becomes Pending, not
// Enabled, so the instruction immediately following EI still cannot
// be preempted.
func (c *CPU) EnableInterrupts() { c.ie = iePending }

// DisableInterrupts implements DI, and is also what the interrupt
// controller calls once an interrupt is accepted.
func (c *CPU) DisableInterrupts() { c.ie = ieDisabled }

// retireIEDelay advances the IE automaton by one instruction
// retirement: Pending becomes Enabled. Step calls it after an
// instruction that began with the latch already Pending has executed.
func (c *CPU) retireIEDelay() {
	if c.ie == iePending {
		c.ie = ieEnabled
	}
}

func (c *CPU) push16(v uint16) {
	c.SP -= 2
	c.Mem.Write16(c.SP, v)
}

func (c *CPU) pop16() uint16 {
	v := c.Mem.Read16(c.SP)
	c.SP += 2
	return v
}
