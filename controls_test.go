package main

import "testing"

func TestPort0FixedLowNibble(t *testing.T) {
	c := NewControls()
	requireEqualU8(t, "Port0", c.Port0(), 0b1111)

	c.Fire, c.Left, c.Right = true, true, true
	requireEqualU8(t, "Port0", c.Port0(), 0b0111_1111)
}

func TestPort1StartAndCoinBits(t *testing.T) {
	c := NewControls()
	c.Coin = true
	c.P2Start = true
	c.P1Start = true
	requireEqualU8(t, "Port1", c.Port1(), 0b0000_1111)
}

func TestPort2LivesEncoding(t *testing.T) {
	c := NewControls()
	for lives, want := range map[byte]byte{3: 0, 4: 1, 5: 2, 6: 3} {
		c.Lives = lives
		got := c.Port2() & 0b11
		requireEqualU8(t, "lives bits", got, want)
	}
}

func TestPort2ExtraShipAndTiltBits(t *testing.T) {
	c := NewControls()
	c.Tilt = true
	c.ExtraShipAt1000 = true
	requireEqualU8(t, "Port2", c.Port2(), 0b0000_1100)
}
