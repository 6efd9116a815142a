package cpu

import "testing"

// TestScenarioCallRet covers spec.md S5: SP=0x2400, PC=0x0100,
// CALL 0x1234, then RET.
func TestScenarioCallRet(t *testing.T) {
	c := newTestCPU()
	c.SP = 0x2400
	c.PC = 0x0100
	c.Mem.Write(c.PC, 0xCD)     // CALL
	c.Mem.Write16(c.PC+1, 0x1234)

	c.Step()

	if c.SP != 0x23FE {
		t.Errorf("SP = 0x%04X, want 0x23FE", c.SP)
	}
	if got := c.Mem.Read(0x23FE); got != 0x03 {
		t.Errorf("memory[0x23FE] = 0x%02X, want 0x03", got)
	}
	if got := c.Mem.Read(0x23FF); got != 0x01 {
		t.Errorf("memory[0x23FF] = 0x%02X, want 0x01", got)
	}
	if c.PC != 0x1234 {
		t.Errorf("PC = 0x%04X, want 0x1234", c.PC)
	}

	c.Mem.Write(c.PC, 0xC9) // RET
	c.Step()

	if c.SP != 0x2400 {
		t.Errorf("after RET, SP = 0x%04X, want 0x2400", c.SP)
	}
	if c.PC != 0x0103 {
		t.Errorf("after RET, PC = 0x%04X, want 0x0103", c.PC)
	}
}

// TestScenarioJZNotTaken covers spec.md S6: Z=0, PC=0x0050,
// JZ 0x1000 — not taken, stack unchanged.
func TestScenarioJZNotTaken(t *testing.T) {
	c := newTestCPU()
	c.PC = 0x0050
	c.SP = 0x2400
	c.Flags.Z = false
	c.Mem.Write(c.PC, 0xCA) // JZ
	c.Mem.Write16(c.PC+1, 0x1000)

	c.Step()

	if c.PC != 0x0053 {
		t.Errorf("PC = 0x%04X, want 0x0053", c.PC)
	}
	if c.SP != 0x2400 {
		t.Errorf("SP = 0x%04X, want unchanged 0x2400", c.SP)
	}
}

// TestPSWRoundTrip covers spec.md testable property 2: for all flag
// combinations and a sample of A values, PUSH PSW then POP PSW restores A and
// flags identically, with the fixed bits enforced.
func TestPSWRoundTrip(t *testing.T) {
	for a := 0; a < 256; a += 17 { // sample, not exhaustive over all 2^8
		for mask := 0; mask < 32; mask++ {
			c := newTestCPU()
			c.SP = 0x2400
			c.A = byte(a)
			c.Flags = Flags{
				Z:  mask&1 != 0,
				S:  mask&2 != 0,
				P:  mask&4 != 0,
				CY: mask&8 != 0,
				AC: mask&16 != 0,
			}
			wantA, wantFlags := c.A, c.Flags

			c.Mem.Write(c.PC, 0xF5) // PUSH PSW
			c.Step()
			packed := c.Mem.Read(c.SP)
			if packed&(1<<1) == 0 {
				t.Fatalf("packed flags byte 0x%02X missing fixed bit 1", packed)
			}
			if packed&(1<<3) != 0 || packed&(1<<5) != 0 {
				t.Fatalf("packed flags byte 0x%02X has a fixed-zero bit set", packed)
			}

			c.Mem.Write(c.PC, 0xF1) // POP PSW
			c.Step()

			if c.A != wantA || c.Flags != wantFlags {
				t.Fatalf("round trip: got A=0x%02X flags=%+v, want A=0x%02X flags=%+v",
					c.A, c.Flags, wantA, wantFlags)
			}
		}
	}
}

// TestStackRoundTrip covers spec.md testable property 3: for any pair
// and value, LXI rp,v; PUSH rp; POP rp' yields rp'=v and SP restored.
func TestStackRoundTrip(t *testing.T) {
	pairs := []struct {
		lxiOp, pushOp, popOp byte
		pair                 Pair
	}{
		{0x01, 0xC5, 0xC1, PairBC},
		{0x11, 0xD5, 0xD1, PairDE},
		{0x21, 0xE5, 0xE1, PairHL},
	}

	for _, tc := range pairs {
		c := newTestCPU()
		c.SP = 0x2400
		wantSP := c.SP

		c.Mem.Write(c.PC, tc.lxiOp)
		c.Mem.Write16(c.PC+1, 0xBEEF)
		c.Step()

		c.Mem.Write(c.PC, tc.pushOp)
		c.Step()

		c.Mem.Write(c.PC, tc.popOp)
		c.Step()

		if got := c.pair(tc.pair); got != 0xBEEF {
			t.Errorf("pair %v = 0x%04X, want 0xBEEF", tc.pair, got)
		}
		if c.SP != wantSP {
			t.Errorf("SP = 0x%04X, want restored 0x%04X", c.SP, wantSP)
		}
	}
}

// TestXCHGInvolution covers spec.md testable property 4.
func TestXCHGInvolution(t *testing.T) {
	c := newTestCPU()
	c.setHL(0x1234)
	c.setDE(0x5678)
	wantHL, wantDE := c.HL(), c.DE()

	c.Mem.Write(c.PC, 0xEB)
	c.Step()
	c.Mem.Write(c.PC, 0xEB)
	c.Step()

	if c.HL() != wantHL || c.DE() != wantDE {
		t.Errorf("after XCHG twice: HL=0x%04X DE=0x%04X, want HL=0x%04X DE=0x%04X",
			c.HL(), c.DE(), wantHL, wantDE)
	}
}

// TestInterruptFlow covers spec.md testable property 6.
func TestInterruptFlow(t *testing.T) {
	c := newTestCPU()
	c.SP = 0x2400
	c.PC = 0x4000
	c.EnableInterrupts()
	c.retireIEDelay() // simulate the single-instruction EI delay having elapsed

	c.Interrupt(1)

	if c.Mem.Read(c.SP+1) != byte(0x4000>>8) {
		t.Errorf("memory[SP+1] = 0x%02X, want 0x40", c.Mem.Read(c.SP+1))
	}
	if c.Mem.Read(c.SP) != byte(0x4000&0xFF) {
		t.Errorf("memory[SP] = 0x%02X, want 0x00", c.Mem.Read(c.SP))
	}
	if c.SP != 0x2400-2 {
		t.Errorf("SP = 0x%04X, want 0x%04X", c.SP, 0x2400-2)
	}
	if c.IE() {
		t.Error("IE still set after accepting an interrupt")
	}
	if c.PC != 0x0008 {
		t.Errorf("PC = 0x%04X, want 0x0008 (RST 1)", c.PC)
	}
}

// TestInterruptDroppedWhenDisabled ensures a disabled IE silently
// drops the interrupt, per spec.md §4.4.
func TestInterruptDroppedWhenDisabled(t *testing.T) {
	c := newTestCPU()
	c.SP = 0x2400
	c.PC = 0x4000
	c.DisableInterrupts()

	c.Interrupt(1)

	if c.PC != 0x4000 {
		t.Errorf("PC = 0x%04X, want unchanged 0x4000", c.PC)
	}
	if c.SP != 0x2400 {
		t.Errorf("SP = 0x%04X, want unchanged 0x2400", c.SP)
	}
}

// TestEISingleInstructionDelay locks in the three-state IE automaton:
// the instruction immediately following EI cannot be preempted.
func TestEISingleInstructionDelay(t *testing.T) {
	c := newTestCPU()
	c.SP = 0x2400
	c.Mem.Write(c.PC, 0xFB) // EI
	c.Step()

	if c.IE() {
		t.Error("IE enabled immediately after EI retires; want Pending (not yet Enabled)")
	}

	c.Mem.Write(c.PC, 0x00) // NOP — the instruction EI is protecting
	c.Step()

	if !c.IE() {
		t.Error("IE not enabled after the instruction following EI retired")
	}
}

// TestUndocumentedOpcodesAreNOP covers spec.md §4.2's failure
// semantics: undocumented opcodes execute as NOP.
func TestUndocumentedOpcodesAreNOP(t *testing.T) {
	for _, op := range []byte{0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38, 0xCB, 0xD9, 0xDD, 0xED, 0xFD} {
		c := newTestCPU()
		startPC := c.PC
		c.A, c.B = 0x42, 0x99
		c.Mem.Write(c.PC, op)

		cycles := c.Step()

		if c.PC != startPC+1 {
			t.Errorf("opcode 0x%02X: PC advanced to 0x%04X, want 0x%04X", op, c.PC, startPC+1)
		}
		if c.A != 0x42 || c.B != 0x99 {
			t.Errorf("opcode 0x%02X: mutated registers, want NOP behavior", op)
		}
		if cycles != 4 {
			t.Errorf("opcode 0x%02X: cycles = %d, want 4", op, cycles)
		}
	}
}
