package cpu

// Data-move and 16-bit load/store instructions. Grounded on
// original_source/src/op_data_transfer.rs's operation set, rewritten
// in the teacher's mutate-in-place style with explicit cycle costs
// from the 8080 data sheet (spec.md §4.2).

func (c *CPU) nop() int {
	c.PC++
	return 4
}

// mov handles the regular 0x40-0x7F block: MOV dst,src, encoded as
// 01DDDSSS. HLT (0x76, DDD=SSS=110) is carved out by the caller.
func (c *CPU) mov(opcode byte) int {
	dst := regField(opcode >> 3)
	src := regField(opcode)
	c.setReg(dst, c.reg(src))
	c.PC++
	if dst == RegM || src == RegM {
		return 7
	}
	return 5
}

// mvi handles MVI r,d8 (00DDD110) and MVI M,d8.
func (c *CPU) mvi(dst Reg) int {
	v := c.imm8()
	c.setReg(dst, v)
	c.PC += 2
	if dst == RegM {
		return 10
	}
	return 7
}

func (c *CPU) lxi(p Pair) int {
	c.setPair(p, c.imm16())
	c.PC += 3
	return 10
}

func (c *CPU) lda() int {
	addr := c.imm16()
	c.A = c.Mem.Read(addr)
	c.PC += 3
	return 13
}

func (c *CPU) sta() int {
	addr := c.imm16()
	c.Mem.Write(addr, c.A)
	c.PC += 3
	return 13
}

func (c *CPU) lhld() int {
	addr := c.imm16()
	c.L = c.Mem.Read(addr)
	c.H = c.Mem.Read(addr + 1)
	c.PC += 3
	return 16
}

func (c *CPU) shld() int {
	addr := c.imm16()
	c.Mem.Write(addr, c.L)
	c.Mem.Write(addr+1, c.H)
	c.PC += 3
	return 16
}

func (c *CPU) ldax(p Pair) int {
	c.A = c.Mem.Read(c.pair(p))
	c.PC++
	return 7
}

func (c *CPU) stax(p Pair) int {
	c.Mem.Write(c.pair(p), c.A)
	c.PC++
	return 7
}

func (c *CPU) xchg() int {
	c.H, c.D = c.D, c.H
	c.L, c.E = c.E, c.L
	c.PC++
	return 4
}
