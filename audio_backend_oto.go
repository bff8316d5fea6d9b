// audio_backend_oto.go - oto v3 audio output, adapted from the teacher's
// continuous ring-buffer synth player to a discrete one-shot sample mixer.
//
// Kept structurally close to the original: same struct name, same
// Start/Stop/Close/IsStarted surface, same mutex-guards-setup-only
// discipline. The one real change is what feeds op.ctx.NewPlayer: the
// teacher hands oto a SoundChip that synthesizes continuously; this cabinet
// has no synthesizer, so the AudioSink (nine fixed samples, trigger-on-edge)
// is the io.Reader instead.
//
// License: GPLv3 or later

package main

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoPlayer owns the oto playback context and the single player streaming
// from an AudioSink.
type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	started bool
	mutex   sync.Mutex
}

// NewOtoPlayer opens an oto context at sampleRate, mono float32, matching
// the format AudioSink.Read produces.
func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{ctx: ctx}, nil
}

// SetupPlayer creates the oto.Player reading from sink.
func (op *OtoPlayer) SetupPlayer(sink *AudioSink) {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	op.player = op.ctx.NewPlayer(sink)
}

// Start begins playback; idempotent.
func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
}

// Stop halts playback without releasing the player.
func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Pause()
		op.started = false
	}
}

// Close releases the player.
func (op *OtoPlayer) Close() {
	op.Stop()
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.player != nil {
		op.player.Close()
		op.player = nil
	}
}

// IsStarted reports whether playback has begun.
func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
