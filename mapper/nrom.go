package mapper

import "github.com/claude/gintendo/cartridge"

func init() {
	Register(0, newNROM)
}

// nrom implements mapper 0: a fixed 16 KiB or 32 KiB PRG window with no
// bank switching, and either CHR ROM or a single 8 KiB CHR RAM bank.
type nrom struct {
	prg       []uint8
	chr       []uint8
	chrIsRAM  bool
	mirroring cartridge.Mirroring
}

func newNROM(c *cartridge.Cartridge) Mapper {
	chr := c.CHRROM
	chrIsRAM := false
	if chr == nil {
		chr = make([]uint8, 8*1024)
		chrIsRAM = true
	}
	return &nrom{
		prg:       c.PRGROM,
		chr:       chr,
		chrIsRAM:  chrIsRAM,
		mirroring: c.Mirroring,
	}
}

// PRGRead maps $8000-$FFFF onto the PRG ROM, mirroring a single 16 KiB
// bank across both halves when only one is present.
func (m *nrom) PRGRead(addr uint16) uint8 {
	offset := int(addr - 0x8000)
	return m.prg[offset%len(m.prg)]
}

// PRGWrite is a no-op: NROM carries no PRG RAM or bank-select registers.
func (m *nrom) PRGWrite(uint16, uint8) {}

func (m *nrom) CHRRead(addr uint16) uint8 {
	return m.chr[int(addr)%len(m.chr)]
}

func (m *nrom) CHRWrite(addr uint16, val uint8) {
	if !m.chrIsRAM {
		return
	}
	m.chr[int(addr)%len(m.chr)] = val
}

func (m *nrom) Mirroring() cartridge.Mirroring {
	return m.mirroring
}
