// Package console wires a cartridge, the CPU/PPU buses, the CPU, the PPU,
// and the controllers together into a runnable machine, and provides the
// joypad shift-register device.
package console

import (
	"context"

	"github.com/claude/gintendo/bus"
	"github.com/claude/gintendo/cartridge"
	"github.com/claude/gintendo/cpu"
	"github.com/claude/gintendo/mapper"
	"github.com/claude/gintendo/memory"
	"github.com/claude/gintendo/ppu"
)

const (
	cpuRAMSize  = 2 * 1024
	prgRAMSize  = 8 * 1024
	cpuBusSize  = 0x10000
	ppuBusSize  = 0x4000

	// ppuTicksPerCPUTick is the fixed NTSC clock ratio: the PPU runs at
	// 3x the CPU's rate.
	ppuTicksPerCPUTick = 3
)

// mapperCHR adapts a mapper.Mapper's CHR-side methods to bus.Addressable
// so it can be registered directly onto the PPU bus.
type mapperCHR struct{ m mapper.Mapper }

func (a mapperCHR) Read(addr uint16) uint8      { return a.m.CHRRead(addr) }
func (a mapperCHR) Write(addr uint16, val uint8) { a.m.CHRWrite(addr, val) }

// mapperPRG adapts a mapper.Mapper's PRG-side methods to bus.Addressable
// so it can be registered directly onto the CPU bus.
type mapperPRG struct{ m mapper.Mapper }

func (a mapperPRG) Read(addr uint16) uint8      { return a.m.PRGRead(addr) }
func (a mapperPRG) Write(addr uint16, val uint8) { a.m.PRGWrite(addr, val) }

// Console owns the whole machine: both buses, the CPU, the PPU, the
// cartridge's mapper, and the two controller ports.
type Console struct {
	CPU  *cpu.CPU
	PPU  *ppu.PPU

	CPUBus *bus.Bus
	PPUBus *bus.Bus

	Controller1 *Controller
	Controller2 *Controller

	cycles uint64
}

// New builds a runnable Console from a parsed cartridge.
func New(cart *cartridge.Cartridge) (*Console, error) {
	m, err := mapper.Get(cart)
	if err != nil {
		return nil, err
	}

	ppuBus := bus.New(ppuBusSize)
	ppuBus.Register(mapperCHR{m}, bus.NewRange(0x0000, 0x1FFF))
	ppuBus.Register(ppu.NewVRAM(m.Mirroring()), bus.NewRange(0x2000, 0x3EFF))
	ppuBus.Register(ppu.NewPalette(), bus.NewRange(0x3F00, 0x3FFF))

	p := ppu.New(ppuBus)

	cpuBus := bus.New(cpuBusSize)
	ram := memory.NewMirrored(memory.NewRAM(cpuRAMSize), cpuRAMSize)
	cpuBus.Register(ram, bus.NewRange(0x0000, 0x1FFF))
	cpuBus.Register(p, bus.NewRange(0x2000, 0x3FFF))

	c1, c2 := &Controller{}, &Controller{}
	cpuBus.Register(c1, bus.NewRange(0x4016, 0x4016))
	cpuBus.Register(c2, bus.NewRange(0x4017, 0x4017))

	cpuBus.Register(memory.NewRAM(prgRAMSize), bus.NewRange(0x6000, 0x7FFF))
	cpuBus.Register(mapperPRG{m}, bus.NewRange(0x8000, 0xFFFF))

	return &Console{
		CPU:         cpu.New(cpuBus),
		PPU:         p,
		CPUBus:      cpuBus,
		PPUBus:      ppuBus,
		Controller1: c1,
		Controller2: c2,
	}, nil
}

// Step advances the CPU exactly one tick, plus the proportional number of
// PPU ticks (3 per CPU tick on NTSC). The PPU itself has no independently
// steppable clock in this core (its rendering pipeline is out of scope),
// so these ticks are counted rather than used to drive pixel output.
func (c *Console) Step() error {
	if err := c.CPU.Step(); err != nil {
		return err
	}
	c.cycles += ppuTicksPerCPUTick
	return nil
}

// Cycles reports the running count of PPU-equivalent ticks elapsed.
func (c *Console) Cycles() uint64 { return c.cycles }

// Run steps the console until ctx is cancelled or the CPU hits a fatal
// decode error.
func (c *Console) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
}
