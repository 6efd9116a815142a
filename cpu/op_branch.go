package cpu

// Unconditional and conditional jumps, calls, returns, RST and PCHL.
// Grounded on original_source/src/op_branch.rs's condition-to-flag
// mapping, with cycle costs from the 8080 data sheet (spec.md §4.2).

func (c *CPU) jmp() int {
	c.PC = c.imm16()
	return 10
}

func (c *CPU) jcc(taken bool) int {
	if taken {
		c.PC = c.imm16()
	} else {
		c.PC += 3
	}
	return 10
}

// call pushes the return address (PC+3, i.e. past this instruction)
// then jumps, per spec.md §4.2.
func (c *CPU) call() int {
	target := c.imm16()
	c.push16(c.PC + 3)
	c.PC = target
	return 17
}

func (c *CPU) ccc(taken bool) int {
	if taken {
		return c.call()
	}
	c.PC += 3
	return 11
}

func (c *CPU) ret() int {
	c.PC = c.pop16()
	return 10
}

func (c *CPU) rcc(taken bool) int {
	if taken {
		c.PC = c.pop16()
		return 11
	}
	c.PC++
	return 5
}

// rst pushes PC (the address of the instruction after RST) and jumps
// to the fixed vector 8*n.
func (c *CPU) rst(n byte) int {
	c.push16(c.PC + 1)
	c.PC = uint16(n) * 8
	return 11
}

func (c *CPU) pchl() int {
	c.PC = c.HL()
	return 5
}
