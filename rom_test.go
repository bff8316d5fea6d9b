package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeROMSet(t *testing.T, dir string) {
	t.Helper()
	for i, name := range romFiles {
		data := make([]byte, romChunkSize)
		data[0] = byte(i) // tag each chunk so load order is verifiable
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
}

func TestLoadROMConcatenatesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeROMSet(t, dir)

	mem := NewMemory()
	if err := LoadROM(mem, dir); err != nil {
		t.Fatalf("LoadROM: %v", err)
	}

	for i, offset := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		requireEqualU8(t, "chunk tag", mem.Read(offset), byte(i))
	}
}

func TestLoadROMMissingFileIsFatal(t *testing.T) {
	dir := t.TempDir()
	if err := LoadROM(NewMemory(), dir); err == nil {
		t.Fatal("expected error for missing ROM files")
	}
}

func TestLoadROMWrongSizeIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeROMSet(t, dir)
	if err := os.WriteFile(filepath.Join(dir, "invaders.h"), []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadROM(NewMemory(), dir); err == nil {
		t.Fatal("expected error for undersized ROM file")
	}
}
