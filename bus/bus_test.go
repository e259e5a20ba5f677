package bus

import "testing"

type fixedDevice struct{ val uint8 }

func (d *fixedDevice) Read(uint16) uint8     { return d.val }
func (d *fixedDevice) Write(_ uint16, v uint8) { d.val = v }

func TestRegisterDispatchesInRange(t *testing.T) {
	b := New(0x10000)
	d := &fixedDevice{val: 0x42}
	b.Register(d, NewRange(0x8000, 0x8FFF))

	for _, addr := range []uint16{0x8000, 0x8080, 0x8FFF} {
		if got := b.Read(addr); got != 0x42 {
			t.Errorf("Read(%#04x) = %#02x, want 0x42", addr, got)
		}
	}
}

func TestUnregisteredAddressReadsZeroAndDropsWrites(t *testing.T) {
	b := New(0x10000)
	if got := b.Read(0x1234); got != 0 {
		t.Errorf("Read(0x1234) = %#02x, want 0", got)
	}
	b.Write(0x1234, 0xFF)
	if got := b.Read(0x1234); got != 0 {
		t.Errorf("Read(0x1234) after write = %#02x, want 0 (empty device absorbs writes)", got)
	}
}

func TestLaterRegistrationWinsInOverlap(t *testing.T) {
	b := New(0x10000)
	first := &fixedDevice{val: 1}
	second := &fixedDevice{val: 2}

	b.Register(first, NewRange(0x0000, 0x00FF))
	b.Register(second, NewRange(0x0080, 0x017F))

	if got := b.Read(0x0010); got != 1 {
		t.Errorf("Read(0x0010) = %d, want 1 (untouched by overlap)", got)
	}
	if got := b.Read(0x00FF); got != 2 {
		t.Errorf("Read(0x00FF) = %d, want 2 (overwritten by later registration)", got)
	}
	if got := b.Read(0x0170); got != 2 {
		t.Errorf("Read(0x0170) = %d, want 2", got)
	}
}

func TestNewRangePanicsOnInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRange(0x10, 0x00) did not panic")
		}
	}()
	NewRange(0x10, 0x00)
}

type ramDevice []uint8

func (r *ramDevice) Read(addr uint16) uint8      { return (*r)[addr] }
func (r *ramDevice) Write(addr uint16, val uint8) { (*r)[addr] = val }
