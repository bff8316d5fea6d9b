// scheduler.go - the per-frame loop: input, two half-frame CPU bursts split
// by RST 1 / RST 2, render, pace to wall clock.
//
// Sequencing is grounded on spec.md section 4.8; the emulator-command
// handling (increase/decrease fps, reset, mute, save/load) mirrors
// original_source/src/controls.rs's EmulatorAction arms wired into
// original_source/src/bus.rs's run loop.
//
// License: GPLv3 or later

package main

import (
	"fmt"
	"time"
)

const (
	defaultFPS       = 60.0
	defaultClockRate = 2_000_000
	minFPS           = 5.0
	minClockRate     = 100_000
	fpsStep          = 5.0
	clockRateStep    = 100_000
	rstMidFrame      = 1
	rstVBlank        = 2
)

// Scheduler owns the cabinet's only control-flow loop: it is single-
// threaded and cooperative, per spec.md section 5. No operation here
// suspends except the per-frame sleep.
type Scheduler struct {
	Bus    *Bus
	Screen *ScreenSink
	Audio  *AudioSink

	fps       float64
	clockRate float64
	muted     bool

	savedState []byte
}

// NewScheduler wires a Scheduler at the cabinet's default frame rate and
// clock speed.
func NewScheduler(bus *Bus, screen *ScreenSink, audio *AudioSink) *Scheduler {
	return &Scheduler{
		Bus:       bus,
		Screen:    screen,
		Audio:     audio,
		fps:       defaultFPS,
		clockRate: defaultClockRate,
		muted:     audio.Muted(),
	}
}

// halfFrameCycles is N from spec.md section 4.8: round(0.5 * clock_rate / fps).
func (s *Scheduler) halfFrameCycles() int {
	return int(0.5*s.clockRate/s.fps + 0.5)
}

// runCycles executes CPU instructions until the accumulated cost reaches or
// passes budget. The instruction that crosses budget runs to completion and
// is the last one executed (the budget is not split mid-instruction).
func (s *Scheduler) runCycles(budget int) {
	spent := 0
	for spent < budget {
		spent += s.Bus.Step()
	}
}

// Tick runs exactly one display frame and returns false when the cabinet
// should quit.
func (s *Scheduler) Tick() bool {
	frameStart := time.Now()

	if !s.applyCommand(s.Screen.PollCommand()) {
		return false
	}

	half := s.halfFrameCycles()
	s.runCycles(half)
	s.Bus.CPU.RaiseInterrupt(rstMidFrame)
	s.runCycles(half)
	s.Bus.CPU.RaiseInterrupt(rstVBlank)

	s.Screen.Present(s.Bus.CPU.Mem)
	s.Screen.SetTitle(s.windowTitle())

	elapsed := time.Since(frameStart)
	budget := time.Duration(float64(time.Second) / s.fps)
	if remaining := budget - elapsed; remaining > 0 {
		time.Sleep(remaining)
	}
	return true
}

// applyCommand executes one emulator command; returns false on Quit.
func (s *Scheduler) applyCommand(cmd EmulatorCommand) bool {
	switch cmd {
	case CmdQuit:
		return false
	case CmdSaveState:
		s.savedState = SaveState(s.Bus.CPU.Mem)
	case CmdLoadState:
		if s.savedState != nil {
			LoadState(s.Bus.CPU.Mem, s.savedState)
		}
	case CmdIncreaseFPS:
		s.fps += fpsStep
		s.clockRate += clockRateStep
	case CmdDecreaseFPS:
		if s.fps-fpsStep >= minFPS && s.clockRate-clockRateStep >= minClockRate {
			s.fps -= fpsStep
			s.clockRate -= clockRateStep
		}
	case CmdReset:
		s.Bus.CPU.Mem.ClearWorkAndVideoRAM()
	case CmdMute:
		s.muted = !s.muted
		s.Audio.SetMuted(s.muted)
	}
	return true
}

// windowTitle formats the live status line per spec.md section 6's
// "Window title" contract.
func (s *Scheduler) windowTitle() string {
	return fmt.Sprintf(
		"Space Invaders | FPS: %.0f | Clock: %.0f Hz | Lives: %d | Extra ship @ 1000: %v | Muted: %v",
		s.fps, s.clockRate, s.Bus.Controls.Lives, s.Bus.Controls.ExtraShipAt1000, s.muted,
	)
}
