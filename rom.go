// rom.go - loads the four Space Invaders cartridge images into memory.
//
// License: GPLv3 or later

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// romFiles lists the cartridge images in load order: h, g, f, e, each 2048
// bytes, landing at 0x0000, 0x0800, 0x1000, 0x1800 respectively.
var romFiles = []string{"invaders.h", "invaders.g", "invaders.f", "invaders.e"}

const romChunkSize = 0x800

// LoadROM reads the four fixed cartridge images from dir and concatenates
// them into mem starting at 0x0000. Any missing file, short read, or
// oversized file is fatal per the cabinet's error model.
func LoadROM(mem *Memory, dir string) error {
	offset := uint16(0)
	for _, name := range romFiles {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("rom: reading %s: %w", path, err)
		}
		if len(data) != romChunkSize {
			return fmt.Errorf("rom: %s is %d bytes, want %d", path, len(data), romChunkSize)
		}
		mem.LoadROM(data, offset)
		offset += romChunkSize
	}
	return nil
}
