package main

import "testing"

func newTestSink() *AudioSink {
	sink := &AudioSink{}
	for i := range sink.channels {
		sink.channels[i].pcm = []float32{1, 1, 1}
	}
	return sink
}

// TestPort3ElseIfPriority confirms only the first matching bit fires within
// one OUT, per original_source/src/audio.rs's play() else-if chain.
func TestPort3ElseIfPriority(t *testing.T) {
	sink := newTestSink()
	sink.HandleOutPort3(0b0000_0011) // UFO and Shot both set; UFO wins

	if !sink.channels[chUFO].playing {
		t.Fatal("UFO should trigger")
	}
	if sink.channels[chShot].playing {
		t.Fatal("Shot should not trigger when UFO bit also set")
	}
}

// TestPort3ShotEdgeOnly confirms bit 1 (Shot) only triggers on a rising
// edge, unlike every other port-3 bit.
func TestPort3ShotEdgeOnly(t *testing.T) {
	sink := newTestSink()
	sink.HandleOutPort3(0b0000_0010)
	if !sink.channels[chShot].playing {
		t.Fatal("Shot should trigger on rising edge")
	}

	sink.channels[chShot].playing = false // simulate playback finishing
	sink.HandleOutPort3(0b0000_0010)      // bit held, not a new edge
	if sink.channels[chShot].playing {
		t.Fatal("Shot should not retrigger while bit stays set without a new edge")
	}
}

// TestPort3NoRetriggerWhilePlaying confirms a level-triggered channel does
// not reset its play position while already playing.
func TestPort3NoRetriggerWhilePlaying(t *testing.T) {
	sink := newTestSink()
	sink.HandleOutPort3(0b0000_0001)
	sink.channels[chUFO].pos = 2
	sink.HandleOutPort3(0b0000_0001)
	requireEqualInt(t, "pos", sink.channels[chUFO].pos, 2)
}

// TestPort5NoEdgeDetection confirms group-B bits retrigger is governed only
// by the playing flag, with no edge requirement.
func TestPort5NoEdgeDetection(t *testing.T) {
	sink := newTestSink()
	sink.HandleOutPort5(0b0000_0001)
	sink.channels[chFleet1].playing = false
	sink.HandleOutPort5(0b0000_0001)
	if !sink.channels[chFleet1].playing {
		t.Fatal("Fleet1 should retrigger once idle, bit held or not")
	}
}

// TestMutedOutputIsSilentButAdvances confirms muting zeroes the mix while
// still advancing a playing channel's position to completion.
func TestMutedOutputIsSilentButAdvances(t *testing.T) {
	sink := newTestSink()
	sink.SetMuted(true)
	sink.HandleOutPort3(0b0000_0001)

	buf := make([]byte, 4*3)
	n, err := sink.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	requireEqualInt(t, "n", n, len(buf))
	for i := 0; i < n; i++ {
		if buf[i] != 0 {
			t.Fatalf("expected silent output while muted, byte %d = %d", i, buf[i])
		}
	}
	if sink.channels[chUFO].playing {
		t.Fatal("channel should have finished advancing through its 3 samples")
	}
}
