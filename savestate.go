// savestate.go - the cabinet's 8 KiB save-state blob.
//
// Grounded on original_source/src/bus.rs's emulator_save_state buffer and
// SaveState/LoadState match arms. CPU registers are intentionally excluded
// (spec.md section 3 and 9's Open Question: preserved as observed source
// behavior, see DESIGN.md).
//
// License: GPLv3 or later

package main

// SaveStateSize is the exact size of a save-state blob: [0x2000, 0x4000).
const SaveStateSize = vramEnd - ramStart

// SaveState copies memory[0x2000:0x4000) into a new 8 KiB blob.
func SaveState(mem *Memory) []byte {
	blob := make([]byte, SaveStateSize)
	copy(blob, mem.WorkAndVideoRAM())
	return blob
}

// LoadState copies an 8 KiB blob back into memory[0x2000:0x4000). A blob of
// the wrong size is ignored rather than partially applied.
func LoadState(mem *Memory, blob []byte) {
	if len(blob) != SaveStateSize {
		return
	}
	copy(mem.WorkAndVideoRAM(), blob)
}
