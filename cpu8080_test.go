package main

import "testing"

// TestLXIIncAndMov exercises spec scenario 1: LXI B,0x1234 ; INX B ; MOV A,C
// ; MOV L,B.
func TestLXIIncAndMov(t *testing.T) {
	rig := newCPU8080TestRig()
	rig.load(0, []byte{
		0x01, 0x34, 0x12, // LXI B, 0x1234
		0x03,       // INX B
		0x79,       // MOV A,C
		0x68,       // MOV L,B
	})

	cycles := 0
	for i := 0; i < 4; i++ {
		cycles += rig.step()
	}

	requireEqualU8(t, "A", rig.cpu.A, 0x35)
	requireEqualU8(t, "L", rig.cpu.L, 0x12)
	requireEqualU8(t, "B", rig.cpu.B, 0x12)
	requireEqualU8(t, "C", rig.cpu.C, 0x35)
	requireEqualU16(t, "PC", rig.cpu.PC, 0x06)
	requireEqualInt(t, "cycles", cycles, 25)
}

// TestSubEqualOperands exercises spec scenario 2: MVI A,0x3A ; MVI B,0x3A ;
// SUB B, where the nibbles are equal so AC (borrow from bit 4) is clear.
func TestSubEqualOperands(t *testing.T) {
	rig := newCPU8080TestRig()
	rig.load(0, []byte{
		0x3E, 0x3A, // MVI A, 0x3A
		0x06, 0x3A, // MVI B, 0x3A
		0x90, // SUB B
	})
	for i := 0; i < 3; i++ {
		rig.step()
	}

	c := rig.cpu
	requireEqualU8(t, "A", c.A, 0x00)
	if !c.flag(flagZ) {
		t.Fatal("Z should be set")
	}
	if c.flag(flagS) {
		t.Fatal("S should be clear")
	}
	if !c.flag(flagP) {
		t.Fatal("P should be set (even parity of 0)")
	}
	if c.flag(flagC) {
		t.Fatal("C should be clear")
	}
	if c.flag(flagAC) {
		t.Fatal("AC should be clear: 0xA < 0xA is false")
	}
}

// TestAdiHalfCarry exercises spec scenario 3: MVI A,0x0F ; ADI 0x01.
func TestAdiHalfCarry(t *testing.T) {
	rig := newCPU8080TestRig()
	rig.load(0, []byte{
		0x3E, 0x0F, // MVI A, 0x0F
		0xC6, 0x01, // ADI 0x01
	})
	rig.step()
	rig.step()

	c := rig.cpu
	requireEqualU8(t, "A", c.A, 0x10)
	if c.flag(flagZ) {
		t.Fatal("Z should be clear")
	}
	if c.flag(flagS) {
		t.Fatal("S should be clear")
	}
	if c.flag(flagP) {
		t.Fatal("P should be clear (odd parity of 0x10)")
	}
	if c.flag(flagC) {
		t.Fatal("C should be clear")
	}
	if !c.flag(flagAC) {
		t.Fatal("AC should be set")
	}
}

// TestAdiOverflowWrap exercises spec scenario 4: MVI A,0xFF ; ADI 0x01.
func TestAdiOverflowWrap(t *testing.T) {
	rig := newCPU8080TestRig()
	rig.load(0, []byte{
		0x3E, 0xFF, // MVI A, 0xFF
		0xC6, 0x01, // ADI 0x01
	})
	rig.step()
	rig.step()

	c := rig.cpu
	requireEqualU8(t, "A", c.A, 0x00)
	if !c.flag(flagZ) {
		t.Fatal("Z should be set")
	}
	if !c.flag(flagP) {
		t.Fatal("P should be set")
	}
	if c.flag(flagS) {
		t.Fatal("S should be clear")
	}
	if !c.flag(flagC) {
		t.Fatal("C should be set")
	}
	if !c.flag(flagAC) {
		t.Fatal("AC should be set")
	}
}

// TestPushPopRoundTrip exercises spec scenario 5: a PUSH H / POP H round
// trip through an explicitly set SP.
func TestPushPopRoundTrip(t *testing.T) {
	rig := newCPU8080TestRig()
	rig.load(0, []byte{
		0x31, 0x00, 0x30, // LXI SP, 0x3000
		0x21, 0xCD, 0xAB, // LXI H, 0xABCD
		0xE5,             // PUSH H
		0x21, 0x00, 0x00, // LXI H, 0x0000
		0xE1, // POP H
	})
	for i := 0; i < 5; i++ {
		rig.step()
	}

	c := rig.cpu
	requireEqualU8(t, "H", c.H, 0xAB)
	requireEqualU8(t, "L", c.L, 0xCD)
	requireEqualU16(t, "SP", c.SP, 0x3000)
}

// TestInrAtVRAMBoundary exercises spec scenario 6: MVI M,0xFF ; INR M at
// HL=0x2400 wraps to zero with Z and AC set.
func TestInrAtVRAMBoundary(t *testing.T) {
	rig := newCPU8080TestRig()
	rig.load(0, []byte{
		0x21, 0x00, 0x24, // LXI H, 0x2400
		0x36, 0xFF, // MVI M, 0xFF
		0x34, // INR M
	})
	rig.cpu.setFlag(flagC, true) // carry must be unaffected by INR
	for i := 0; i < 3; i++ {
		rig.step()
	}

	c := rig.cpu
	requireEqualU8(t, "mem[0x2400]", c.Mem.Read(0x2400), 0x00)
	if !c.flag(flagZ) {
		t.Fatal("Z should be set")
	}
	if !c.flag(flagAC) {
		t.Fatal("AC should be set")
	}
	if !c.flag(flagC) {
		t.Fatal("C must be left untouched by INR")
	}
}

// TestInvariantMemoryRoundTrip checks write(a,b); read(a) == b across a
// representative sample of addresses, including the ROM region (unprotected
// per spec.md section 3).
func TestInvariantMemoryRoundTrip(t *testing.T) {
	mem := NewMemory()
	addrs := []uint16{0x0000, 0x1FFF, 0x2000, 0x23FF, 0x2400, 0x3FFF, 0xFFFF}
	for _, a := range addrs {
		for _, b := range []byte{0x00, 0x42, 0xFF} {
			mem.Write(a, b)
			requireEqualU8(t, "round-trip", mem.Read(a), b)
		}
	}
}

// TestInterruptGatingWhenDisabled checks that raise_interrupt while IE is
// clear leaves PC, SP, and memory unchanged.
func TestInterruptGatingWhenDisabled(t *testing.T) {
	rig := newCPU8080TestRig()
	c := rig.cpu
	c.IE = false
	c.PC = 0x1234
	c.SP = 0x3000
	before := c.Mem.Read(c.SP - 1)

	c.RaiseInterrupt(1)

	requireEqualU16(t, "PC", c.PC, 0x1234)
	requireEqualU16(t, "SP", c.SP, 0x3000)
	requireEqualU8(t, "mem[SP-1]", c.Mem.Read(c.SP-1), before)
}

// TestInterruptGatingWhenEnabled checks the complementary case: IE set means
// the interrupt pushes PC, clears IE, and jumps to n*8.
func TestInterruptGatingWhenEnabled(t *testing.T) {
	rig := newCPU8080TestRig()
	c := rig.cpu
	c.IE = true
	c.PC = 0x1234
	c.SP = 0x3000
	c.Halted = true

	c.RaiseInterrupt(2)

	requireEqualU16(t, "PC", c.PC, 0x10)
	if c.IE {
		t.Fatal("IE should be cleared")
	}
	if c.Halted {
		t.Fatal("Halted should be cleared")
	}
	requireEqualU16(t, "SP", c.SP, 0x2FFE)
	requireEqualU16(t, "return addr", joinBytes(c.Mem.Read(0x2FFF), c.Mem.Read(0x2FFE)), 0x1234)
}

// TestParityMatchesPopcount checks F.P == even-parity(last result) across
// every possible ALU result byte.
func TestParityMatchesPopcount(t *testing.T) {
	rig := newCPU8080TestRig()
	c := rig.cpu
	for v := 0; v < 256; v++ {
		c.setZSP(byte(v))
		want := popcountEven(byte(v))
		if c.flag(flagP) != want {
			t.Fatalf("parity(%#02x) = %v, want %v", v, c.flag(flagP), want)
		}
	}
}

func popcountEven(b byte) bool {
	n := 0
	for b != 0 {
		n += int(b & 1)
		b >>= 1
	}
	return n%2 == 0
}
