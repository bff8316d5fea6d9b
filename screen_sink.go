// screen_sink.go - Ebiten video backend and input polling for the cabinet.
//
// Adapted from the teacher's video_backend_ebiten.go: ebiten.RunGame is
// started on its own goroutine and the emulation loop (owned by the
// Scheduler) synchronizes against it through a vsync channel rather than
// ebiten owning the frame cadence, matching EbitenOutput.Start/WaitForVSync.
// The VRAM-to-framebuffer transform (256x224 1-bpp, rotated 90 degrees
// counter-clockwise, three color regions) is grounded on
// original_source/src/screen.rs's draw().
//
// License: GPLv3 or later

package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 224
	screenHeight = 256
)

// ScreenSink owns the window, the rotated framebuffer, and keyboard
// polling. Controls is shared with the Bus so Update can write directly
// into the state the CPU's IN instructions read.
type ScreenSink struct {
	img    *ebiten.Image
	pixels []byte
	mutex  sync.RWMutex

	controls *Controls
	commands chan EmulatorCommand

	scale     int
	title     string
	vsyncChan chan struct{}
	running   bool
}

// NewScreenSink builds a sink driving the given Controls at the given
// integer window scale.
func NewScreenSink(controls *Controls, scale int) *ScreenSink {
	if scale < 1 {
		scale = 1
	}
	return &ScreenSink{
		pixels:    make([]byte, screenWidth*screenHeight*4),
		controls:  controls,
		commands:  make(chan EmulatorCommand, 8),
		scale:     scale,
		vsyncChan: make(chan struct{}, 1),
	}
}

// Start opens the window and runs ebiten's loop on its own goroutine,
// returning once the first Draw call confirms the window is live.
func (s *ScreenSink) Start(title string) error {
	s.title = title
	ebiten.SetWindowSize(screenWidth*s.scale, screenHeight*s.scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(false)
	s.running = true

	go func() {
		_ = ebiten.RunGame(s)
	}()

	<-s.vsyncChan
	return nil
}

// SetTitle updates the window title; called once per frame by the
// Scheduler with live FPS/clock/lives/mute state.
func (s *ScreenSink) SetTitle(title string) {
	s.mutex.Lock()
	s.title = title
	s.mutex.Unlock()
	ebiten.SetWindowTitle(title)
}

// Present rebuilds the framebuffer from VRAM and blocks until the next
// Draw call has consumed it, pacing the emulation loop to ebiten's own
// vsync the way WaitForVSync does in the teacher.
func (s *ScreenSink) Present(mem *Memory) {
	s.mutex.Lock()
	renderVRAM(mem, s.pixels)
	s.mutex.Unlock()

	select {
	case <-s.vsyncChan:
	default:
	}
	<-s.vsyncChan
}

// renderVRAM transposes the 256x224 1-bpp bitmap into a 224x256 RGBA
// buffer, combining the CRT's physical rotation with screen.rs's
// vertical flip into a single coordinate remap: source column x (0..256)
// becomes destination row 255-x; source row y (0..224) becomes
// destination column y.
func renderVRAM(mem *Memory, dst []byte) {
	for x := 0; x < 256; x++ {
		for y := 0; y < 224; y++ {
			b := mem.Read(uint16(vramStart + 32*y + x/8))
			bit := byte(x % 8)
			set := (b>>bit)&1 == 1

			var r, g, bl byte
			if set {
				switch {
				case x >= 205 && x < 223:
					r = 255
				case x >= 16 && x < 72:
					g = 255
				case x < 16 && y >= 20 && y < 112:
					g = 255
				default:
					r, g, bl = 255, 255, 255
				}
			}

			destX := y
			destY := 255 - x
			off := (destY*screenWidth + destX) * 4
			dst[off] = r
			dst[off+1] = g
			dst[off+2] = bl
			dst[off+3] = 255
		}
	}
}

// PollCommand returns the next pending emulator command, or CmdNone if
// none is queued.
func (s *ScreenSink) PollCommand() EmulatorCommand {
	select {
	case cmd := <-s.commands:
		return cmd
	default:
		return CmdNone
	}
}

func (s *ScreenSink) pushCommand(cmd EmulatorCommand) {
	select {
	case s.commands <- cmd:
	default:
	}
}

// Update polls keyboard state once per ebiten tick, per spec.md section 6's
// keymap, and is grounded on original_source/src/controls.rs's send_input:
// movement/fire/start/coin/tilt are held state, lives/extra-ship/save-load/
// fps/reset/mute are edges.
func (s *ScreenSink) Update() error {
	if ebiten.IsWindowBeingClosed() {
		s.pushCommand(CmdQuit)
		return ebiten.Termination
	}
	if !s.running {
		return ebiten.Termination
	}

	c := s.controls
	c.Left = ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	c.Right = ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	c.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	c.P1Start = ebiten.IsKeyPressed(ebiten.KeyDigit1)
	c.P2Start = ebiten.IsKeyPressed(ebiten.KeyDigit2)
	c.Coin = ebiten.IsKeyPressed(ebiten.KeyC)
	c.Tilt = ebiten.IsKeyPressed(ebiten.KeyT)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		c.Lives = 3
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit4):
		c.Lives = 4
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit5):
		c.Lives = 5
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit6):
		c.Lives = 6
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		c.ExtraShipAt1000 = !c.ExtraShipAt1000
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.pushCommand(CmdQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.pushCommand(CmdSaveState)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		s.pushCommand(CmdLoadState)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		s.pushCommand(CmdIncreaseFPS)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		s.pushCommand(CmdDecreaseFPS)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.pushCommand(CmdReset)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.pushCommand(CmdMute)
	}
	return nil
}

// Draw blits the framebuffer and releases a waiting Present call.
func (s *ScreenSink) Draw(screen *ebiten.Image) {
	if s.img == nil {
		s.img = ebiten.NewImage(screenWidth, screenHeight)
	}
	s.mutex.RLock()
	s.img.WritePixels(s.pixels)
	s.mutex.RUnlock()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(s.scale), float64(s.scale))
	screen.DrawImage(s.img, opts)

	select {
	case s.vsyncChan <- struct{}{}:
	default:
	}
}

// Layout fixes the logical screen size regardless of window scale.
func (s *ScreenSink) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
