package cpu

// Logic-immediate forms, compare-immediate, rotates, and the misc
// single-bit flag operations (CMA/CMC/STC). Register-form ANA/XRA/
// ORA/CMP live in op_arithmetic.go's aluBlock since they share the
// 0x80-0xBF regular encoding with ADD/SUB.

func (c *CPU) ani() int {
	v := c.imm8()
	c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.AC = andFlags(c.A, v)
	c.Flags.CY = false
	c.PC += 2
	return 7
}

func (c *CPU) xri() int {
	v := c.imm8()
	c.A ^= v
	c.Flags.Z, c.Flags.S, c.Flags.P = orXorFlags(c.A)
	c.Flags.CY, c.Flags.AC = false, false
	c.PC += 2
	return 7
}

func (c *CPU) ori() int {
	v := c.imm8()
	c.A |= v
	c.Flags.Z, c.Flags.S, c.Flags.P = orXorFlags(c.A)
	c.Flags.CY, c.Flags.AC = false, false
	c.PC += 2
	return 7
}

func (c *CPU) cpi() int {
	v := c.imm8()
	_, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = subFlags(c.A, v)
	c.PC += 2
	return 7
}

// rlc rotates A left; the bit shifted out of bit 7 goes to bit 0 and
// to CY. Only CY changes — per spec.md's Open Questions resolution,
// CY is taken from the pre-rotate bit, never recomputed from the
// rotated result.
func (c *CPU) rlc() int {
	bit7 := c.A&0x80 != 0
	c.A = c.A << 1
	if bit7 {
		c.A |= 0x01
		c.Flags.CY = true
	} else {
		c.Flags.CY = false
	}
	c.PC++
	return 4
}

func (c *CPU) rrc() int {
	bit0 := c.A&0x01 != 0
	c.A = c.A >> 1
	if bit0 {
		c.A |= 0x80
		c.Flags.CY = true
	} else {
		c.Flags.CY = false
	}
	c.PC++
	return 4
}

func (c *CPU) ral() int {
	bit7 := c.A&0x80 != 0
	c.A = c.A << 1
	if c.Flags.CY {
		c.A |= 0x01
	}
	c.Flags.CY = bit7
	c.PC++
	return 4
}

func (c *CPU) rar() int {
	bit0 := c.A&0x01 != 0
	c.A = c.A >> 1
	if c.Flags.CY {
		c.A |= 0x80
	}
	c.Flags.CY = bit0
	c.PC++
	return 4
}

func (c *CPU) cma() int {
	c.A = ^c.A
	c.PC++
	return 4
}

func (c *CPU) cmc() int {
	c.Flags.CY = !c.Flags.CY
	c.PC++
	return 4
}

func (c *CPU) stc() int {
	c.Flags.CY = true
	c.PC++
	return 4
}
