// audio_sink.go - maps OUT-port bit edges to nine discrete sample triggers.
//
// Trigger priority and edge detection are grounded on
// original_source/src/audio.rs's play() function: within one OUT, the
// else-if chain means only the first-matching bit fires (spec.md section
// 4.6), and only bit 1 of port 3 (Shot) is edge-triggered — every other bit
// fires whenever set, as long as its channel is idle.
//
// License: GPLv3 or later

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Sample channel indices, fixed by iteration order over the sample
// directory: UFO, Shot, Player-die, Invader-die, Fleet-1..4, UFO-hit.
const (
	chUFO = iota
	chShot
	chPlayerDie
	chInvaderDie
	chFleet1
	chFleet2
	chFleet3
	chFleet4
	chUFOHit
	channelCount
)

// audioChannel is one of the nine mutually independent playback voices: a
// decoded mono PCM buffer and a play cursor. A sample does not retrigger
// while its channel is still playing.
type audioChannel struct {
	pcm     []float32
	pos     int
	playing bool
}

// AudioSink mixes the nine trigger channels into a single mono stream for
// an oto.Player to pull from, adapted from the teacher's
// audio_backend_oto.go streaming pattern: the teacher feeds a continuous
// synthesizer into op.Read, this sink feeds a bank of one-shot samples
// instead.
type AudioSink struct {
	channels  [channelCount]audioChannel
	prevPort3 byte
	muted     bool
}

// LoadAudioSink decodes the nine fixed sample files from dir, in directory
// iteration order, into an AudioSink ready to drive from Bus OUT-port
// writes.
func LoadAudioSink(dir string, sampleRate int) (*AudioSink, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("audio: reading %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) != channelCount {
		return nil, fmt.Errorf("audio: %s has %d sample files, want %d", dir, len(names), channelCount)
	}

	sink := &AudioSink{}
	for i, name := range names {
		pcm, err := decodeWAV(filepath.Join(dir, name), sampleRate)
		if err != nil {
			return nil, fmt.Errorf("audio: decoding %s: %w", name, err)
		}
		sink.channels[i].pcm = pcm
	}
	return sink, nil
}

// decodeWAV reads a 16-bit stereo WAV file and folds it down to mono
// float32 PCM at sampleRate, resampled by the wav package itself.
func decodeWAV(path string, sampleRate int) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(sampleRate, f)
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(stream)
	if err != nil {
		return nil, err
	}

	// raw is 16-bit little-endian stereo: 4 bytes per frame.
	frames := len(raw) / 4
	pcm := make([]float32, frames)
	for i := 0; i < frames; i++ {
		l := int16(uint16(raw[i*4]) | uint16(raw[i*4+1])<<8)
		r := int16(uint16(raw[i*4+2]) | uint16(raw[i*4+3])<<8)
		pcm[i] = (float32(l) + float32(r)) / 2 / 32768
	}
	return pcm, nil
}

func (s *AudioSink) trigger(ch int) {
	c := &s.channels[ch]
	if !c.playing {
		c.playing = true
		c.pos = 0
	}
}

// HandleOutPort3 decodes group-A triggers: UFO (bit0, level), Shot (bit1,
// rising edge only), Player-die (bit2, level), Invader-die (bit3, level),
// else-if priority in that order.
func (s *AudioSink) HandleOutPort3(value byte) {
	switch {
	case value&0x01 != 0:
		s.trigger(chUFO)
	case value&0x02 != 0 && s.prevPort3&0x02 == 0:
		s.trigger(chShot)
	case value&0x04 != 0:
		s.trigger(chPlayerDie)
	case value&0x08 != 0:
		s.trigger(chInvaderDie)
	}
	s.prevPort3 = value
}

// HandleOutPort5 decodes group-B triggers: Fleet-1..4 (bits 0-3), UFO-hit
// (bit4), else-if priority, no edge detection.
func (s *AudioSink) HandleOutPort5(value byte) {
	switch {
	case value&0x01 != 0:
		s.trigger(chFleet1)
	case value&0x02 != 0:
		s.trigger(chFleet2)
	case value&0x04 != 0:
		s.trigger(chFleet3)
	case value&0x08 != 0:
		s.trigger(chFleet4)
	case value&0x10 != 0:
		s.trigger(chUFOHit)
	}
}

// SetMuted zeroes (or restores) every channel's output volume without
// stopping playback, matching the original's set_volume(0|128) behavior: a
// sample already playing when Mute fires finishes silently rather than
// being cut off.
func (s *AudioSink) SetMuted(muted bool) {
	s.muted = muted
}

// Muted reports the current mute state, used by the window title.
func (s *AudioSink) Muted() bool {
	return s.muted
}

// Read implements io.Reader for an oto.Player: it mixes every currently
// playing channel into p as little-endian float32 samples.
func (s *AudioSink) Read(p []byte) (int, error) {
	numSamples := len(p) / 4
	for i := 0; i < numSamples; i++ {
		var mixed float32
		if !s.muted {
			for ch := range s.channels {
				c := &s.channels[ch]
				if !c.playing {
					continue
				}
				mixed += c.pcm[c.pos]
				c.pos++
				if c.pos >= len(c.pcm) {
					c.playing = false
				}
			}
		} else {
			for ch := range s.channels {
				c := &s.channels[ch]
				if c.playing {
					c.pos++
					if c.pos >= len(c.pcm) {
						c.playing = false
					}
				}
			}
		}
		putFloat32LE(p[i*4:i*4+4], mixed)
	}
	return len(p), nil
}

func putFloat32LE(dst []byte, v float32) {
	bits := math.Float32bits(v)
	dst[0] = byte(bits)
	dst[1] = byte(bits >> 8)
	dst[2] = byte(bits >> 16)
	dst[3] = byte(bits >> 24)
}
