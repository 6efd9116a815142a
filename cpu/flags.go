package cpu

// parityTable holds the even-parity bit for every possible byte value,
// precomputed once at package init rather than popcounted per
// instruction. Ported in spirit from oisee-z80-optimizer's
// pkg/cpu/flags.go Sz53pTable/ParityTable precomputation, trimmed down
// to just the bit the 8080 flag computer actually needs.
var parityTable [256]bool

func init() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		ones := 0
		for bit := 0; bit < 8; bit++ {
			if b&(1<<bit) != 0 {
				ones++
			}
		}
		parityTable[i] = ones%2 == 0
	}
}

func zsp(result byte) (z, s, p bool) {
	return result == 0, result&0x80 != 0, parityTable[result]
}

// addFlags computes the result and flags of an 8-bit add, including
// auxiliary carry: AC is the carry out of bit 3, computed directly
// from the low nibbles of the two operands per spec.md's Open
// Questions resolution (AC = carry out of bit 3, regardless of how
// any particular reference implementation gets it wrong).
func addFlags(a, b byte) (result byte, z, s, p, cy, ac bool) {
	wide := uint16(a) + uint16(b)
	result = byte(wide)
	z, s, p = zsp(result)
	cy = wide > 0xFF
	ac = (a&0x0F)+(b&0x0F) > 0x0F
	return
}

// adcFlags computes a+b+carryIn as a full three-way sum so the carry
// folded in by ADC/ACI can itself push the result past 0xFF or across
// the nibble 3 boundary — folding carry into b first and then calling
// addFlags would lose that case when b==0xFF and carryIn==1.
func adcFlags(a, b byte, carryIn bool) (result byte, z, s, p, cy, ac bool) {
	cin := uint16(0)
	if carryIn {
		cin = 1
	}
	wide := uint16(a) + uint16(b) + cin
	result = byte(wide)
	z, s, p = zsp(result)
	cy = wide > 0xFF
	ac = (a&0x0F)+(b&0x0F)+byte(cin) > 0x0F
	return
}

// sbbFlags computes a-b-borrowIn via the same two's-complement
// addition the 8080 ALU actually performs, so AC and CY follow the
// same "carry out of bit 3 / bit 7 of the addition" rule as subFlags.
func sbbFlags(a, b byte, borrowIn bool) (result byte, z, s, p, cy, ac bool) {
	bin := uint16(0)
	if borrowIn {
		bin = 1
	}
	wide := uint16(a) - uint16(b) - bin
	result = byte(wide)
	z, s, p = zsp(result)
	cy = uint16(a) < uint16(b)+bin
	twosComp := (-int16(b) - int16(bin)) & 0xFF
	ac = (uint16(a&0x0F) + uint16(byte(twosComp)&0x0F)) > 0x0F
	return
}

// subFlags computes a-b (borrow form): CY is set when the subtrahend
// exceeds the minuend. The 8080 ALU performs subtraction as addition
// of the two's complement, so AC follows that same internal
// addition's carry out of bit 3 (spec.md's Open Questions: "AC is the
// carry out of bit 3", applied consistently to subtract forms) —
// which reads as true when no half-borrow was needed, not the other
// way around.
func subFlags(a, b byte) (result byte, z, s, p, cy, ac bool) {
	result = a - b
	z, s, p = zsp(result)
	cy = a < b
	twosComp := -b
	ac = (a&0x0F)+(twosComp&0x0F) > 0x0F
	return
}

// incDecFlags computes Z/S/P/AC for INR/DCR, which never touch CY.
// add is true for INR (add 1), false for DCR (subtract 1).
func incDecFlags(v byte, add bool) (result byte, z, s, p, ac bool) {
	if add {
		result = v + 1
		ac = (v & 0x0F) == 0x0F
	} else {
		result = v - 1
		ac = (v & 0x0F) != 0x00
	}
	z, s, p = zsp(result)
	return
}

// andFlags implements the AND=1 auxiliary-carry convention: the
// original silicon sets AC from bit 3 of (A | operand), not from a
// bit-3 carry, for ANA/ANI specifically (spec.md §4.1).
func andFlags(a, operand byte) (result byte, z, s, p, ac bool) {
	result = a & operand
	z, s, p = zsp(result)
	ac = (a|operand)&0x08 != 0
	return
}

// orXorFlags implements ORA/XRA/ORI/XRI: CY and AC both clear.
func orXorFlags(result byte) (z, s, p bool) {
	return zsp(result)
}
