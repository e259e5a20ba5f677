// Package mapper implements cartridge board logic: the address
// translation between the CPU/PPU-visible PRG/CHR windows and the
// cartridge's underlying banks. Only mapper 0 (NROM) is implemented
// concretely; additional mappers register themselves the same way NROM
// does.
package mapper

import (
	"errors"
	"fmt"

	"github.com/claude/gintendo/cartridge"
)

// ErrUnknownMapper is returned by Get for any mapper id without a
// registered factory.
var ErrUnknownMapper = errors.New("mapper: unknown mapper id")

// Mapper translates cartridge-relative PRG/CHR addresses for one loaded
// cartridge instance.
type Mapper interface {
	PRGRead(addr uint16) uint8
	PRGWrite(addr uint16, val uint8)
	CHRRead(addr uint16) uint8
	CHRWrite(addr uint16, val uint8)
	Mirroring() cartridge.Mirroring
}

// Factory builds a Mapper bound to one cartridge. Each cartridge load gets
// its own Mapper instance from a fresh factory call, so two cartridges
// loaded in the same process never share mutable mapper state.
type Factory func(c *cartridge.Cartridge) Mapper

var registry = map[uint8]Factory{}

// Register installs factory as the builder for mapper id. Called from
// each mapper implementation's init().
func Register(id uint8, factory Factory) {
	registry[id] = factory
}

// Get builds a Mapper for cartridge c using the factory registered under
// c.Mapper, or ErrUnknownMapper if none is registered.
func Get(c *cartridge.Cartridge) (Mapper, error) {
	if c.Mapper > 0xFF {
		return nil, fmt.Errorf("mapper %d: %w", c.Mapper, ErrUnknownMapper)
	}
	id := uint8(c.Mapper)
	factory, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("mapper %d: %w", c.Mapper, ErrUnknownMapper)
	}
	return factory(c), nil
}
