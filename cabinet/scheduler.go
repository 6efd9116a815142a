package cabinet

// CyclesPerHalfFrame is the CPU budget for one half of a 60 Hz video
// frame at the cabinet's ~2 MHz clock (spec.md §4.4): 33333/2,
// rounded the way the original hardware's interrupt timing did.
const CyclesPerHalfFrame = 16667

// RunFrame advances the CPU through one full video frame: a
// half-step, an injected RST 1 (mid-screen), a second half-step, and
// an injected RST 2 (end-of-frame). It is the single-threaded
// cooperative driver spec.md §4.4/§5 describes — it never preempts an
// instruction mid-retirement; the cycle budget is only checked after
// each Step.
//
// Interrupt injection is not counted against any half-frame's budget:
// Interrupt reports no cycle cost, and each half-step starts from zero
// spent cycles.
func (c *Cabinet) RunFrame() {
	c.runHalfStep(CyclesPerHalfFrame)
	c.CPU.Interrupt(1)

	c.runHalfStep(CyclesPerHalfFrame)
	c.CPU.Interrupt(2)
}

func (c *Cabinet) runHalfStep(budget int) {
	spent := 0
	for spent < budget {
		spent += c.CPU.Step()
	}
}

// Framebuffer returns the live 7168-byte video RAM slice for the
// renderer to rasterize after RunFrame returns.
func (c *Cabinet) Framebuffer() []byte {
	return c.CPU.Mem.Video()
}
