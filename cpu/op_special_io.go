package cpu

// IN/OUT, EI/DI, and HLT. A read or write to a port when no IOPorts
// is wired returns 0 / is discarded, per spec.md §4.2's failure
// semantics for unhandled ports.

func (c *CPU) in() int {
	port := c.imm8()
	if c.IO != nil {
		c.A = c.IO.In(port)
	} else {
		c.A = 0
	}
	c.PC += 2
	return 10
}

func (c *CPU) out() int {
	port := c.imm8()
	if c.IO != nil {
		c.IO.Out(port, c.A)
	}
	c.PC += 2
	return 10
}

func (c *CPU) ei() int {
	c.EnableInterrupts()
	c.PC++
	return 4
}

func (c *CPU) di() int {
	c.DisableInterrupts()
	c.PC++
	return 4
}

func (c *CPU) hlt() int {
	c.Halted = true
	c.PC++
	return 7
}
