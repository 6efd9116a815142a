package cpu

// Step decodes and executes exactly one instruction at PC, mutates
// CPU state, and returns the number of cycles consumed. It mirrors
// the teacher's cycle() shape (fetch, decode, execute) but returns
// the cost instead of printing memory, and never advances PC before
// dispatch — each opcode handler advances PC itself, since branch
// forms need to skip that entirely.
func (c *CPU) Step() int {
	if c.Halted {
		c.Cycles = 4
		return c.Cycles
	}

	if c.PC == 0x0005 && c.DebugTrap != nil && c.DebugTrap(c) {
		c.Cycles = 17
		c.retireIEDelay()
		return c.Cycles
	}

	// Only an instruction that starts with the latch already Pending
	// promotes it, so the EI that sets Pending leaves it Pending and the
	// instruction after EI is the one that completes the delay.
	wasPending := c.ie == iePending
	opcode := c.Mem.Read(c.PC)
	cycles := c.execute(opcode)
	c.Cycles = cycles
	if wasPending {
		c.retireIEDelay()
	}
	return cycles
}

// imm8 reads the byte immediately following the opcode.
func (c *CPU) imm8() byte { return c.Mem.Read(c.PC + 1) }

// imm16 reads the 16-bit immediate following the opcode (low byte
// first, per spec.md's multi-byte encoding rule).
func (c *CPU) imm16() uint16 { return c.Mem.Read16(c.PC + 1) }

// regField maps a 3-bit register field to a Reg. The 8080's own
// encoding already orders B,C,D,E,H,L,M,A for fields 0..7, which is
// exactly the order cpu.Reg's iota block uses, so this is just a cast
// with a name — the decoder never needs a lookup table or ASCII
// token, matching spec.md §9.
func regField(v byte) Reg { return Reg(v & 0x07) }

// pairField maps a 2-bit register-pair field to a Pair (BC/DE/HL/SP).
func pairField(v byte) Pair { return Pair(v & 0x03) }

// execute dispatches a single opcode. Grouped by the 8080's own
// regular bit-field ranges where the instruction set is regular (MOV,
// the 0x80-0xBF arithmetic/logic block), and by literal opcode for
// everything irregular — split across op_*.go files that mirror
// original_source/src/op_*.rs's module boundaries.
func (c *CPU) execute(opcode byte) int {
	switch {
	case opcode == 0x76: // HLT — carve out of the MOV block below
		return c.hlt()
	case opcode >= 0x40 && opcode <= 0x7F:
		return c.mov(opcode)
	case opcode >= 0x80 && opcode <= 0xBF:
		return c.aluBlock(opcode)
	}

	switch opcode {
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD:
		return c.nop()

	// 16-bit load / data transfer
	case 0x01, 0x11, 0x21, 0x31:
		return c.lxi(pairField(opcode >> 4))
	case 0x3A:
		return c.lda()
	case 0x32:
		return c.sta()
	case 0x2A:
		return c.lhld()
	case 0x22:
		return c.shld()
	case 0x0A:
		return c.ldax(PairBC)
	case 0x1A:
		return c.ldax(PairDE)
	case 0x02:
		return c.stax(PairBC)
	case 0x12:
		return c.stax(PairDE)
	case 0xEB:
		return c.xchg()
	case 0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E:
		return c.mvi(regField(opcode >> 3))

	// arithmetic / 16-bit
	case 0xC6:
		return c.adi()
	case 0xCE:
		return c.aci()
	case 0xD6:
		return c.sui()
	case 0xDE:
		return c.sbi()
	case 0x04, 0x0C, 0x14, 0x1C, 0x24, 0x2C, 0x34, 0x3C:
		return c.inr(regField(opcode >> 3))
	case 0x05, 0x0D, 0x15, 0x1D, 0x25, 0x2D, 0x35, 0x3D:
		return c.dcr(regField(opcode >> 3))
	case 0x03, 0x13, 0x23, 0x33:
		return c.inx(pairField(opcode >> 4))
	case 0x0B, 0x1B, 0x2B, 0x3B:
		return c.dcx(pairField(opcode >> 4))
	case 0x09, 0x19, 0x29, 0x39:
		return c.dad(pairField(opcode >> 4))
	case 0x27:
		return c.daa()

	// logic immediates and compare
	case 0xE6:
		return c.ani()
	case 0xEE:
		return c.xri()
	case 0xF6:
		return c.ori()
	case 0xFE:
		return c.cpi()

	// rotates and misc flag ops
	case 0x07:
		return c.rlc()
	case 0x0F:
		return c.rrc()
	case 0x17:
		return c.ral()
	case 0x1F:
		return c.rar()
	case 0x2F:
		return c.cma()
	case 0x3F:
		return c.cmc()
	case 0x37:
		return c.stc()

	// branch
	case 0xC3:
		return c.jmp()
	case 0xC2:
		return c.jcc(!c.Flags.Z)
	case 0xCA:
		return c.jcc(c.Flags.Z)
	case 0xD2:
		return c.jcc(!c.Flags.CY)
	case 0xDA:
		return c.jcc(c.Flags.CY)
	case 0xE2:
		return c.jcc(!c.Flags.P)
	case 0xEA:
		return c.jcc(c.Flags.P)
	case 0xF2:
		return c.jcc(!c.Flags.S)
	case 0xFA:
		return c.jcc(c.Flags.S)
	case 0xCD:
		return c.call()
	case 0xC4:
		return c.ccc(!c.Flags.Z)
	case 0xCC:
		return c.ccc(c.Flags.Z)
	case 0xD4:
		return c.ccc(!c.Flags.CY)
	case 0xDC:
		return c.ccc(c.Flags.CY)
	case 0xE4:
		return c.ccc(!c.Flags.P)
	case 0xEC:
		return c.ccc(c.Flags.P)
	case 0xF4:
		return c.ccc(!c.Flags.S)
	case 0xFC:
		return c.ccc(c.Flags.S)
	case 0xC9:
		return c.ret()
	case 0xC0:
		return c.rcc(!c.Flags.Z)
	case 0xC8:
		return c.rcc(c.Flags.Z)
	case 0xD0:
		return c.rcc(!c.Flags.CY)
	case 0xD8:
		return c.rcc(c.Flags.CY)
	case 0xE0:
		return c.rcc(!c.Flags.P)
	case 0xE8:
		return c.rcc(c.Flags.P)
	case 0xF0:
		return c.rcc(!c.Flags.S)
	case 0xF8:
		return c.rcc(c.Flags.S)
	case 0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF:
		return c.rst((opcode >> 3) & 0x07)
	case 0xE9:
		return c.pchl()

	// stack
	case 0xC5:
		return c.push(PairBC)
	case 0xD5:
		return c.push(PairDE)
	case 0xE5:
		return c.push(PairHL)
	case 0xF5:
		return c.pushPSW()
	case 0xC1:
		return c.pop(PairBC)
	case 0xD1:
		return c.pop(PairDE)
	case 0xE1:
		return c.pop(PairHL)
	case 0xF1:
		return c.popPSW()
	case 0xE3:
		return c.xthl()
	case 0xF9:
		return c.sphl()

	// I/O and control
	case 0xDB:
		return c.in()
	case 0xD3:
		return c.out()
	case 0xFB:
		return c.ei()
	case 0xF3:
		return c.di()
	}

	// Unreachable given the ranges above cover every byte value, but
	// Go has no exhaustiveness check over byte literals.
	return c.nop()
}
