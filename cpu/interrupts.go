package cpu

// Interrupt injects an external RST n (the cabinet's interrupt
// controller calls this, not the executor's own RST-opcode handler):
// push the current PC, clear IE, jump to the fixed vector 8*n. If
// interrupts are disabled the interrupt is silently dropped, so the
// scheduler calls this unconditionally without checking IE() first.
// A halted CPU resumes: the whole point of HLT is to wait for one of
// these.
func (c *CPU) Interrupt(n byte) {
	if !c.IE() {
		return
	}
	c.push16(c.PC)
	c.DisableInterrupts()
	c.PC = uint16(n) * 8
	c.Halted = false
}
