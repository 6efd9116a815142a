package cpu

// Arithmetic instructions: the regular ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP
// block (0x80-0xBF), their immediate forms, INR/DCR/INX/DCX/DAD, and
// DAA. Grounded on original_source/src/op_arithmetic.rs, with AC
// computed per spec.md's Open Questions resolution (carry out of bit
// 3) rather than whatever a given source line happened to do.

// aluBlock dispatches the 0x80-0xBF range: bits 5-3 select the
// operation, bits 2-0 select the right-hand register (or M).
func (c *CPU) aluBlock(opcode byte) int {
	op := (opcode >> 3) & 0x07
	src := regField(opcode)
	operand := c.reg(src)
	cycles := 4
	if src == RegM {
		cycles = 7
	}

	switch op {
	case 0: // ADD
		c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = addFlags(c.A, operand)
	case 1: // ADC
		c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = adcFlags(c.A, operand, c.Flags.CY)
	case 2: // SUB
		c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = subFlags(c.A, operand)
	case 3: // SBB
		c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = sbbFlags(c.A, operand, c.Flags.CY)
	case 4: // ANA
		c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.AC = andFlags(c.A, operand)
		c.Flags.CY = false
	case 5: // XRA
		c.A = c.A ^ operand
		c.Flags.Z, c.Flags.S, c.Flags.P = orXorFlags(c.A)
		c.Flags.CY, c.Flags.AC = false, false
	case 6: // ORA
		c.A = c.A | operand
		c.Flags.Z, c.Flags.S, c.Flags.P = orXorFlags(c.A)
		c.Flags.CY, c.Flags.AC = false, false
	case 7: // CMP — subtract without writing A
		_, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = subFlags(c.A, operand)
	}

	c.PC++
	return cycles
}

func (c *CPU) adi() int {
	v := c.imm8()
	c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = addFlags(c.A, v)
	c.PC += 2
	return 7
}

func (c *CPU) aci() int {
	v := c.imm8()
	c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = adcFlags(c.A, v, c.Flags.CY)
	c.PC += 2
	return 7
}

func (c *CPU) sui() int {
	v := c.imm8()
	c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = subFlags(c.A, v)
	c.PC += 2
	return 7
}

func (c *CPU) sbi() int {
	v := c.imm8()
	c.A, c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.CY, c.Flags.AC = sbbFlags(c.A, v, c.Flags.CY)
	c.PC += 2
	return 7
}

func (c *CPU) inr(r Reg) int {
	result, z, s, p, ac := incDecFlags(c.reg(r), true)
	c.setReg(r, result)
	c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.AC = z, s, p, ac
	c.PC++
	if r == RegM {
		return 10
	}
	return 5
}

func (c *CPU) dcr(r Reg) int {
	result, z, s, p, ac := incDecFlags(c.reg(r), false)
	c.setReg(r, result)
	c.Flags.Z, c.Flags.S, c.Flags.P, c.Flags.AC = z, s, p, ac
	c.PC++
	if r == RegM {
		return 10
	}
	return 5
}

func (c *CPU) inx(p Pair) int {
	c.setPair(p, c.pair(p)+1)
	c.PC++
	return 5
}

func (c *CPU) dcx(p Pair) int {
	c.setPair(p, c.pair(p)-1)
	c.PC++
	return 5
}

// dad adds a 16-bit pair into HL, updating only CY.
func (c *CPU) dad(p Pair) int {
	wide := uint32(c.HL()) + uint32(c.pair(p))
	c.setHL(uint16(wide))
	c.Flags.CY = wide > 0xFFFF
	c.PC++
	return 10
}

// daa packs A into two BCD digits per spec.md §4.2: low nibble first,
// then high nibble, each adjustment updating its own flag.
func (c *CPU) daa() int {
	a := c.A
	cy := c.Flags.CY
	ac := false

	if a&0x0F > 9 || c.Flags.AC {
		a += 6
		ac = true
	}
	if a&0xF0 > 0x90 || cy {
		a += 0x60
		cy = true
	}

	c.A = a
	c.Flags.CY = cy
	c.Flags.AC = ac
	c.Flags.Z, c.Flags.S, c.Flags.P = zsp(c.A)
	c.PC++
	return 4
}
