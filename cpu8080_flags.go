// cpu8080_flags.go - the eight-bit ALU, shared by every arithmetic/logical
// opcode. Flag formulas match spec.md section 4.1 exactly, including the
// DAA auxiliary-carry quirk noted there (AC set unconditionally on the
// low-nibble correction, not the canonical carry-out-of-bit-3 rule).
//
// License: GPLv3 or later

package main

// add performs A <- A + x, setting C/AC/Z/S/P.
func (c *CPU8080) add(x byte) {
	sum := uint16(c.A) + uint16(x)
	c.setFlag(flagC, sum > 0xFF)
	c.setFlag(flagAC, (c.A&0xF)+(x&0xF) > 0xF)
	c.A = byte(sum)
	c.setZSP(c.A)
}

// adc performs A <- A + x + carry.
func (c *CPU8080) adc(x byte) {
	cin := uint16(c.carryBit())
	sum := uint16(c.A) + uint16(x) + cin
	c.setFlag(flagC, sum > 0xFF)
	c.setFlag(flagAC, (c.A&0xF)+(x&0xF)+byte(cin) > 0xF)
	c.A = byte(sum)
	c.setZSP(c.A)
}

// sub performs A <- A - x.
func (c *CPU8080) sub(x byte) {
	c.setFlag(flagC, c.A < x)
	c.setFlag(flagAC, (c.A&0xF) < (x&0xF))
	c.A = c.A - x
	c.setZSP(c.A)
}

// sbb performs A <- A - x - carry.
func (c *CPU8080) sbb(x byte) {
	cin := c.carryBit()
	c.setFlag(flagC, uint16(c.A) < uint16(x)+uint16(cin))
	c.setFlag(flagAC, (c.A&0xF) < (x&0xF)+cin)
	c.A = c.A - x - cin
	c.setZSP(c.A)
}

// cmp compares A against x without storing the result.
func (c *CPU8080) cmp(x byte) {
	c.setFlag(flagC, c.A < x)
	c.setFlag(flagAC, (c.A&0xF) < (x&0xF))
	c.setZSP(c.A - x)
}

// ana, xra, ora: logical ops always clear C and AC.
func (c *CPU8080) ana(x byte) {
	c.A &= x
	c.setFlag(flagC, false)
	c.setFlag(flagAC, false)
	c.setZSP(c.A)
}

func (c *CPU8080) xra(x byte) {
	c.A ^= x
	c.setFlag(flagC, false)
	c.setFlag(flagAC, false)
	c.setZSP(c.A)
}

func (c *CPU8080) ora(x byte) {
	c.A |= x
	c.setFlag(flagC, false)
	c.setFlag(flagAC, false)
	c.setZSP(c.A)
}

// inr increments the 8-bit location addressed by reg code, AC set when the
// low nibble overflowed (nibble wrapped to 0).
func (c *CPU8080) inr(code byte) {
	v := c.reg8(code) + 1
	c.setReg8(code, v)
	c.setFlag(flagAC, v&0xF == 0x0)
	c.setZSP(v)
}

// dcr decrements the 8-bit location addressed by reg code, AC set when the
// low nibble underflowed (nibble wrapped to 0xF).
func (c *CPU8080) dcr(code byte) {
	v := c.reg8(code) - 1
	c.setReg8(code, v)
	c.setFlag(flagAC, v&0xF == 0xF)
	c.setZSP(v)
}

// dad adds a 16-bit register pair into HL; only C is affected.
func (c *CPU8080) dad(rp uint16) {
	sum := uint32(c.hl()) + uint32(rp)
	c.setFlag(flagC, sum > 0xFFFF)
	c.setHL(uint16(sum))
}

// daa decimal-adjusts A after a BCD addition.
func (c *CPU8080) daa() {
	if c.A&0xF > 9 || c.flag(flagAC) {
		c.setFlag(flagAC, true)
		c.setFlag(flagC, (c.A>>4)&0xF > 9 || c.flag(flagC))
		c.A += 0x06
	}
	if (c.A>>4)&0xF > 9 || c.flag(flagC) {
		c.setFlag(flagC, true)
		c.A += 0x60
	}
	c.setZSP(c.A)
}

// rlc rotates A left, bit 7 into both bit 0 and C.
func (c *CPU8080) rlc() {
	c.setFlag(flagC, c.A&0x80 != 0)
	c.A = c.A<<1 | c.A>>7
}

// rrc rotates A right, bit 0 into both bit 7 and C.
func (c *CPU8080) rrc() {
	c.setFlag(flagC, c.A&0x01 != 0)
	c.A = c.A>>1 | c.A<<7
}

// ral rotates A left through C (9-bit rotate).
func (c *CPU8080) ral() {
	cin := c.carryBit()
	c.setFlag(flagC, c.A&0x80 != 0)
	c.A = c.A<<1 | cin
}

// rar rotates A right through C (9-bit rotate).
func (c *CPU8080) rar() {
	cin := c.carryBit()
	c.setFlag(flagC, c.A&0x01 != 0)
	c.A = c.A>>1 | cin<<7
}
