// Package bus implements the address-decoded device dispatcher shared by
// the CPU and PPU: a flat mapping table from address to owning device, so
// every access is an O(1) slice lookup regardless of how many devices are
// registered.
package bus

import "fmt"

// Addressable is the universal capability exposed by every storage or
// register-mapped device: answer a byte read or write at a 16-bit address.
// Reads are permitted to mutate state (read-clearing status bits, rotating
// an internal buffer) exactly like real hardware.
type Addressable interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

// AddressRange is an inclusive [Start, End] pair over the 16-bit address
// space. Constructing one with Start > End panics; that's a programming
// error in the caller, not a runtime condition to recover from.
type AddressRange struct {
	Start, End uint16
}

// NewRange validates and builds an AddressRange.
func NewRange(start, end uint16) AddressRange {
	if start > end {
		panic(fmt.Sprintf("bus: invalid range [%#04x, %#04x]: start > end", start, end))
	}
	return AddressRange{Start: start, End: end}
}

// emptyDevice is device index 0 on every Bus: reads return 0, writes are
// dropped. It backs every address never explicitly registered.
type emptyDevice struct{}

func (emptyDevice) Read(uint16) uint8    { return 0 }
func (emptyDevice) Write(uint16, uint8) {}

// Bus is an address-space-indexed device dispatcher. Device index 0 is
// always the empty device. Registering a device appends it to devices and
// fills mapping[addr] with that index for every address in range,
// overwriting whatever owned those addresses before.
type Bus struct {
	devices []Addressable
	mapping []uint32
}

// New builds a Bus whose mapping table covers size addresses (65536 for a
// CPU bus, 16384 for a PPU bus).
func New(size int) *Bus {
	b := &Bus{
		devices: []Addressable{emptyDevice{}},
		mapping: make([]uint32, size),
	}
	return b
}

// Register installs device as the owner of every address in r, returning
// the index assigned to device in the bus's device list.
func (b *Bus) Register(device Addressable, r AddressRange) int {
	idx := len(b.devices)
	b.devices = append(b.devices, device)
	for a := uint32(r.Start); a <= uint32(r.End); a++ {
		b.mapping[a] = uint32(idx)
	}
	return idx
}

// Read dispatches to the device that owns addr.
func (b *Bus) Read(addr uint16) uint8 {
	return b.devices[b.mapping[addr]].Read(addr)
}

// Write dispatches to the device that owns addr.
func (b *Bus) Write(addr uint16, val uint8) {
	b.devices[b.mapping[addr]].Write(addr, val)
}
