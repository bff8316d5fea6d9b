// bus.go - routes CPU IN/OUT instructions to the shift register, controls,
// and audio sink; owns the CPU and memory.
//
// Grounded on the teacher's ay_playback_bus_z80.go In(port)/Out(port,value)
// shape, adapted from AY-3-8910 register semantics to the fixed Space
// Invaders port map below.
//
// License: GPLv3 or later

package main

import "fmt"

// Port map (spec.md section 4.4):
//
//	0 IN  Controls (service bits, always-ones mask)
//	1 IN  Controls (player 1 edges + coin)
//	2 IN  Controls (player 2 edges + DIP switches) / OUT shift offset
//	3 IN  shift register read          / OUT audio triggers (group A)
//	4 OUT shift register data push
//	5 OUT audio triggers (group B)
//	6 OUT watchdog (discarded)
const (
	portControls0  = 0
	portControls1  = 1
	portControls2Shift = 2
	portShiftRead  = 3
	portShiftPush  = 4
	portAudioB     = 5
	portWatchdog   = 6
)

// AudioTrigger is the subset of the Audio Sink the Bus drives on OUT 3/5.
type AudioTrigger interface {
	HandleOutPort3(value byte)
	HandleOutPort5(value byte)
}

// Bus owns the CPU, the shift register, the controls state, and the audio
// sink, and intercepts 0xDB (IN) / 0xD3 (OUT) before handing the stub
// opcode to CPU.Execute, matching the source's opcode-intercept sequencing.
type Bus struct {
	CPU     *CPU8080
	Shift   *ShiftRegister
	Controls *Controls
	Audio   AudioTrigger
}

// NewBus wires a fresh CPU, shift register, and controls state around the
// given audio sink.
func NewBus(audio AudioTrigger) *Bus {
	return &Bus{
		CPU:      NewCPU8080(),
		Shift:    NewShiftRegister(),
		Controls: NewControls(),
		Audio:    audio,
	}
}

// Step fetches the instruction at PC, performs any port I/O it encodes, and
// executes it, returning its cycle cost. This is the single entry point the
// Scheduler calls once per CPU cycle-budget iteration.
func (b *Bus) Step() int {
	opcode := b.CPU.Fetch()
	switch opcode {
	case 0xDB: // IN d8
		b.CPU.A = b.readPort(b.CPU.Mem.Read(b.CPU.PC + 1))
	case 0xD3: // OUT d8
		b.writePort(b.CPU.Mem.Read(b.CPU.PC+1), b.CPU.A)
	}
	return b.CPU.Execute(opcode)
}

// readPort dispatches an IN instruction's port number. An unknown port is
// fatal, per spec.md section 4.8's failure semantics.
func (b *Bus) readPort(port byte) byte {
	switch port {
	case portControls0:
		return b.Controls.Port0()
	case portControls1:
		return b.Controls.Port1()
	case portControls2Shift:
		return b.Controls.Port2()
	case portShiftRead:
		return b.Shift.Read()
	default:
		panic(fmt.Sprintf("bus: read from unknown port %d", port))
	}
}

// writePort dispatches an OUT instruction's port number.
func (b *Bus) writePort(port, value byte) {
	switch port {
	case portControls2Shift:
		b.Shift.SetOffset(value)
	case portShiftPush:
		b.Shift.Push(value)
	case portShiftRead: // port 3 OUT is audio group A, not a shift read
		b.Audio.HandleOutPort3(value)
	case portAudioB:
		b.Audio.HandleOutPort5(value)
	case portWatchdog:
		// discarded
	default:
		panic(fmt.Sprintf("bus: write to unknown port %d", port))
	}
}
