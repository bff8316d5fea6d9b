// memory.go - flat 64 KiB address space for the Space Invaders cabinet core.
//
// License: GPLv3 or later

package main

// Memory layout, fixed by the cabinet hardware:
//
//	[0x0000, 0x2000) ROM   - invaders.h/g/f/e, not write-protected
//	[0x2000, 0x2400) RAM   - work RAM
//	[0x2400, 0x4000) VRAM  - 256x224 1-bpp framebuffer
//	[0x4000, 0x10000) mirror/unused, present but never addressed by the ROM
const (
	romStart  = 0x0000
	romEnd    = 0x2000
	ramStart  = 0x2000
	ramEnd    = 0x2400
	vramStart = 0x2400
	vramEnd   = 0x4000
)

// Memory is a flat, unprotected 64 KiB byte array. It is owned by the CPU but
// also read by the Screen Sink (VRAM) and accessed by the Scheduler, which
// snapshots, restores, and clears [0x2000, 0x4000) for save/load/reset.
type Memory struct {
	bytes [0x10000]byte
}

// NewMemory returns a zero-initialized 64 KiB address space.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the byte at addr. addr is masked to 16 bits by the caller (the
// CPU); Memory itself trusts its input.
func (m *Memory) Read(addr uint16) byte {
	return m.bytes[addr]
}

// Write stores value at addr. No region is write-protected: the original
// cabinet relies on the ROM chips being physically read-only, not on any
// runtime check.
func (m *Memory) Write(addr uint16, value byte) {
	m.bytes[addr] = value
}

// LoadROM copies rom into memory starting at offset, wrapping at the top of
// the address space like every other access.
func (m *Memory) LoadROM(rom []byte, offset uint16) {
	for i, b := range rom {
		m.bytes[offset+uint16(i)] = b
	}
}

// Slice returns a read-only view of [start, end) for the Screen Sink and for
// save-state snapshots. Callers must not retain it past the next mutation.
func (m *Memory) Slice(start, end uint16) []byte {
	return m.bytes[start:end]
}

// WorkAndVideoRAM returns the 8 KiB range [0x2000, 0x4000) the save-state
// format snapshots.
func (m *Memory) WorkAndVideoRAM() []byte {
	return m.bytes[ramStart:vramEnd]
}

// ClearWorkAndVideoRAM zeroes [0x2000, 0x4000), used by the Reset command.
func (m *Memory) ClearWorkAndVideoRAM() {
	clear(m.bytes[ramStart:vramEnd])
}
