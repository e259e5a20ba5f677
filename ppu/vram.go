package ppu

import "github.com/claude/gintendo/cartridge"

// quadrantTable maps each of the four 1 KiB nametable quadrants to the
// backing table index (0 or 1; 0-3 under FourScreen) under the given
// mirroring mode.
var quadrantTable = map[cartridge.Mirroring][4]int{
	cartridge.Horizontal: {0, 0, 1, 1},
	cartridge.Vertical:    {0, 1, 0, 1},
	cartridge.SingleScreen: {0, 0, 0, 0},
	cartridge.FourScreen:  {0, 1, 2, 3},
}

// VRAM backs the PPU bus's $2000-$3EFF nametable window: two 1 KiB tables
// (four, when mirroring is FourScreen and cartridge-supplied RAM backs the
// extra pair) resolved through the cartridge's mirroring mode.
type VRAM struct {
	tables    [4][1024]uint8
	mirroring cartridge.Mirroring
}

// NewVRAM builds nametable storage resolved through mirroring.
func NewVRAM(mirroring cartridge.Mirroring) *VRAM {
	return &VRAM{mirroring: mirroring}
}

func (v *VRAM) resolve(addr uint16) (table int, offset uint16) {
	relative := (addr - 0x2000) & 0x1FFF
	if relative >= 0x1000 {
		relative -= 0x1000 // $3000-$3EFF mirrors $2000-$2EFF
	}
	quadrant := int(relative>>10) & 3
	return quadrantTable[v.mirroring][quadrant], relative & 0x3FF
}

func (v *VRAM) Read(addr uint16) uint8 {
	table, offset := v.resolve(addr)
	return v.tables[table][offset]
}

func (v *VRAM) Write(addr uint16, val uint8) {
	table, offset := v.resolve(addr)
	v.tables[table][offset] = val
}
