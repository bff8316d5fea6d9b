// controls.go - player input state and emulator-level commands.
//
// Bit layouts and the EmulatorCommand set are grounded on
// original_source/src/controls.rs, which resolves spec.md section 4.5's
// port-byte layout exactly.
//
// License: GPLv3 or later

package main

// EmulatorCommand is an action the scheduler acts on directly, distinct from
// game inputs that only update Controls state.
type EmulatorCommand int

const (
	CmdNone EmulatorCommand = iota
	CmdQuit
	CmdSaveState
	CmdLoadState
	CmdIncreaseFPS
	CmdDecreaseFPS
	CmdReset
	CmdMute
)

// Controls aggregates key-state edges into the three read-port bytes the
// 8080 polls, plus the service-panel configuration (lives, extra ship).
type Controls struct {
	P1Start, P2Start    bool
	Fire, Left, Right   bool
	Coin, Tilt          bool
	Lives               byte // 3..6
	ExtraShipAt1000     bool
}

// NewControls returns the cabinet's default configuration: 3 lives, no
// extra ship bonus, every edge released.
func NewControls() *Controls {
	return &Controls{Lives: 3}
}

func (c *Controls) bit(set bool, shift byte) byte {
	if set {
		return 1 << shift
	}
	return 0
}

// Port0 assembles the service-coin port: fire/left/right at bits 4/5/6, low
// nibble fixed to 0b1111.
func (c *Controls) Port0() byte {
	return c.bit(c.Right, 6) | c.bit(c.Left, 5) | c.bit(c.Fire, 4) | 0b1111
}

// Port1 assembles the player-1 port: coin bit0, P2-start bit1, P1-start
// bit2, a fixed 1 at bit3, fire/left/right at bits 4/5/6.
func (c *Controls) Port1() byte {
	return c.bit(c.Right, 6) | c.bit(c.Left, 5) | c.bit(c.Fire, 4) |
		1<<3 | c.bit(c.P1Start, 2) | c.bit(c.P2Start, 1) | c.bit(c.Coin, 0)
}

// Port2 assembles the DIP-switch port: lives at bits 0-1, tilt bit2, extra
// ship bit3, fire/left/right at bits 4/5/6.
func (c *Controls) Port2() byte {
	lives := byte(0)
	if c.Lives >= 3 {
		lives = (c.Lives - 3) & 0b11
	}
	return c.bit(c.Right, 6) | c.bit(c.Left, 5) | c.bit(c.Fire, 4) |
		c.bit(c.ExtraShipAt1000, 3) | c.bit(c.Tilt, 2) | lives
}
