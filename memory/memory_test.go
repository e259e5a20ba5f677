package memory

import "testing"

func TestROMReadsBackDataAndIgnoresWrites(t *testing.T) {
	r := NewROM([]uint8{0x10, 0x20, 0x30})
	r.Write(0, 0xFF)
	if got := r.Read(0); got != 0x10 {
		t.Errorf("Read(0) = %#02x, want 0x10 (write must be dropped)", got)
	}
}

func TestROMMirrorsWhenAddressExceedsLength(t *testing.T) {
	r := NewROM([]uint8{0xAA, 0xBB})
	if got := r.Read(2); got != 0xAA {
		t.Errorf("Read(2) = %#02x, want 0xAA (wraps to index 0)", got)
	}
}

func TestROMEmptyReadsZero(t *testing.T) {
	r := NewROM(nil)
	if got := r.Read(0); got != 0 {
		t.Errorf("Read(0) on empty ROM = %#02x, want 0", got)
	}
}

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM(4)
	r.Write(1, 0x42)
	if got := r.Read(1); got != 0x42 {
		t.Errorf("Read(1) = %#02x, want 0x42", got)
	}
	if got := r.Read(5); got != 0x42 {
		t.Errorf("Read(5) = %#02x, want 0x42 (wraps to index 1)", got)
	}
}

func TestMirroredFoldsAddressesIntoPeriod(t *testing.T) {
	backing := NewRAM(0x800)
	m := NewMirrored(backing, 0x800)

	m.Write(0x0000, 0x11)
	if got := m.Read(0x0800); got != 0x11 {
		t.Errorf("Read(0x0800) = %#02x, want 0x11 (same underlying byte as 0x0000)", got)
	}
	if got := m.Read(0x1800); got != 0x11 {
		t.Errorf("Read(0x1800) = %#02x, want 0x11", got)
	}
}

func TestNewMirroredPanicsOnZeroPeriod(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewMirrored with period 0 did not panic")
		}
	}()
	NewMirrored(NewRAM(1), 0)
}
