// main.go - Space Invaders cabinet core entry point.
//
// Replaces the teacher's multi-CPU-mode GTK wiring (IE32/M68K select, GUI
// frontend construction) with the cabinet's fixed wiring order: audio sink,
// oto player, bus (CPU and memory), ROM load, screen sink, scheduler. CLI
// shape kept from the
// pack's one real cobra user, cmd/z80opt/main.go: a single command with
// Flags().XVar and a RunE that becomes the process exit code.
//
// License: GPLv3 or later

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var romDir string
	var sampleDir string
	var scale int
	var startMuted bool

	rootCmd := &cobra.Command{
		Use:   "invaders",
		Short: "Space Invaders arcade cabinet core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(romDir, sampleDir, scale, startMuted)
		},
	}
	rootCmd.Flags().StringVar(&romDir, "rom-dir", "roms", "Directory containing invaders.h/g/f/e")
	rootCmd.Flags().StringVar(&sampleDir, "sample-dir", "samples", "Directory containing the 9 sound sample WAV files")
	rootCmd.Flags().IntVar(&scale, "scale", 2, "Integer window scale")
	rootCmd.Flags().BoolVar(&startMuted, "muted", false, "Start with audio muted")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires the cabinet and drives the Scheduler until Quit. Any
// construction failure (missing ROM, missing samples, video init failure)
// is fatal, per spec.md section 7.
func run(romDir, sampleDir string, scale int, startMuted bool) error {
	audio, err := LoadAudioSink(sampleDir, audioSampleRate)
	if err != nil {
		return fmt.Errorf("loading audio samples: %w", err)
	}
	audio.SetMuted(startMuted)

	player, err := NewOtoPlayer(audioSampleRate)
	if err != nil {
		return fmt.Errorf("initializing audio device: %w", err)
	}
	player.SetupPlayer(audio)
	player.Start()
	defer player.Close()

	bus := NewBus(audio)
	if err := LoadROM(bus.CPU.Mem, romDir); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	screen := NewScreenSink(bus.Controls, scale)
	if err := screen.Start("Space Invaders"); err != nil {
		return fmt.Errorf("initializing video: %w", err)
	}

	scheduler := NewScheduler(bus, screen, audio)
	for scheduler.Tick() {
	}
	return nil
}

const audioSampleRate = 44100
