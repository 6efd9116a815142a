package cpu

// PUSH/POP (including PSW), XTHL and SPHL. PUSH PSW / POP PSW pack
// and unpack the flags byte per spec.md §6's bit layout, implemented
// by Flags.Pack / UnpackFlags in state.go.

func (c *CPU) push(p Pair) int {
	c.push16(c.pair(p))
	c.PC++
	return 11
}

func (c *CPU) pop(p Pair) int {
	c.setPair(p, c.pop16())
	c.PC++
	return 10
}

func (c *CPU) pushPSW() int {
	psw := uint16(c.A)<<8 | uint16(c.Flags.Pack())
	c.push16(psw)
	c.PC++
	return 11
}

func (c *CPU) popPSW() int {
	psw := c.pop16()
	c.A = byte(psw >> 8)
	c.Flags = UnpackFlags(byte(psw))
	c.PC++
	return 10
}

// xthl swaps HL with the top two bytes of the stack: L <-> [SP], H <-> [SP+1].
func (c *CPU) xthl() int {
	lo := c.Mem.Read(c.SP)
	hi := c.Mem.Read(c.SP + 1)
	c.Mem.Write(c.SP, c.L)
	c.Mem.Write(c.SP+1, c.H)
	c.L, c.H = lo, hi
	c.PC++
	return 18
}

func (c *CPU) sphl() int {
	c.SP = c.HL()
	c.PC++
	return 5
}
