package cartridge

import (
	"bytes"
	"errors"
	"testing"
)

func buildHeader(prgBanks, chrBanks, flags6, flags7 uint8) []uint8 {
	h := make([]uint8, headerSize)
	h[0], h[1], h[2], h[3] = magic0, magic1, magic2, magic3
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestLoadINES1ProducesExpectedBankLengths(t *testing.T) {
	header := buildHeader(2, 1, 0x00, 0x00)
	prg := bytes.Repeat([]uint8{0xEA}, 2*prgBankSize)
	chr := bytes.Repeat([]uint8{0x01}, chrBankSize)

	data := append(append(append([]uint8{}, header...), prg...), chr...)

	c, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.PRGROM) != 2*prgBankSize {
		t.Errorf("len(PRGROM) = %d, want %d", len(c.PRGROM), 2*prgBankSize)
	}
	if len(c.CHRROM) != chrBankSize {
		t.Errorf("len(CHRROM) = %d, want %d", len(c.CHRROM), chrBankSize)
	}
}

func TestLoadRejectsMissingMagic(t *testing.T) {
	header := buildHeader(1, 0, 0, 0)
	header[0] = 'X'
	_, err := Load(append(header, bytes.Repeat([]uint8{0}, prgBankSize)...))
	if !errors.Is(err, ErrMissingMagic) {
		t.Errorf("err = %v, want ErrMissingMagic", err)
	}
}

func TestLoadRejectsZeroPrgBanks(t *testing.T) {
	header := buildHeader(0, 0, 0, 0)
	_, err := Load(header)
	if !errors.Is(err, ErrMissingPrgRom) {
		t.Errorf("err = %v, want ErrMissingPrgRom", err)
	}
}

func TestHeaderDispatchRoutesNES20ToNES20Parser(t *testing.T) {
	header := buildHeader(1, 0, 0x00, 0x08) // flags7 & 0x0C == 0x08
	prg := bytes.Repeat([]uint8{0xEA}, prgBankSize)
	data := append(append([]uint8{}, header...), prg...)

	c, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.PRGROM) != prgBankSize {
		t.Errorf("len(PRGROM) = %d, want %d", len(c.PRGROM), prgBankSize)
	}
}

func TestLoadINES1RejectsNES20Header(t *testing.T) {
	header := buildHeader(1, 0, 0x00, 0x08)
	prg := bytes.Repeat([]uint8{0xEA}, prgBankSize)
	_, err := LoadINES1(append(append([]uint8{}, header...), prg...))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadNES20RejectsINES1Header(t *testing.T) {
	header := buildHeader(1, 0, 0x00, 0x00)
	prg := bytes.Repeat([]uint8{0xEA}, prgBankSize)
	_, err := LoadNES20(append(append([]uint8{}, header...), prg...))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestMirroringFlagDecoding(t *testing.T) {
	cases := []struct {
		flags6 uint8
		want   Mirroring
	}{
		{0x00, Horizontal},
		{0x01, Vertical},
		{0x08, FourScreen},
		{0x09, FourScreen}, // four-screen bit overrides the vertical bit
	}
	for _, tc := range cases {
		header := buildHeader(1, 0, tc.flags6, 0)
		prg := bytes.Repeat([]uint8{0xEA}, prgBankSize)
		c, err := Load(append(append([]uint8{}, header...), prg...))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if c.Mirroring != tc.want {
			t.Errorf("flags6=%#02x: Mirroring = %v, want %v", tc.flags6, c.Mirroring, tc.want)
		}
	}
}

func TestMapperNumberAssembledFromBothNibbles(t *testing.T) {
	// low nibble of flags6 high nibble = mapper low nibble (0x1 -> 1),
	// flags7 high nibble = mapper high nibble (0x40 -> 4) => mapper 0x41
	header := buildHeader(1, 0, 0x10, 0x40)
	prg := bytes.Repeat([]uint8{0xEA}, prgBankSize)
	c, err := Load(append(append([]uint8{}, header...), prg...))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Mapper != 0x41 {
		t.Errorf("Mapper = %#02x, want 0x41", c.Mapper)
	}
}

func TestTrainerIsReadWhenFlagSet(t *testing.T) {
	header := buildHeader(1, 0, 0x04, 0x00) // bit2 = trainer present
	trainer := bytes.Repeat([]uint8{0x55}, trainerSize)
	prg := bytes.Repeat([]uint8{0xEA}, prgBankSize)
	data := append(append(append([]uint8{}, header...), trainer...), prg...)

	c, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Trainer) != trainerSize {
		t.Fatalf("len(Trainer) = %d, want %d", len(c.Trainer), trainerSize)
	}
	if c.Trainer[0] != 0x55 {
		t.Errorf("Trainer[0] = %#02x, want 0x55", c.Trainer[0])
	}
	if len(c.PRGROM) != prgBankSize || c.PRGROM[0] != 0xEA {
		t.Errorf("PRGROM not read correctly after trainer")
	}
}

func TestNES20ExtendedSizeDecoding(t *testing.T) {
	// E=15, M=1 => 2^15 * (2*1+1) = 98304 bytes = 6 banks of prgBankSize (16 KiB) = 96 KiB
	lowByte := uint8(15<<3 | 1)
	banks, err := decodeNES20Size(lowByte, 0x0F, prgBankSize)
	if err != nil {
		t.Fatalf("decodeNES20Size: %v", err)
	}
	if banks != 6 {
		t.Errorf("banks = %d, want 6", banks)
	}
}

func TestNES20PlainSizeDecoding(t *testing.T) {
	banks, err := decodeNES20Size(0x04, 0x00, prgBankSize)
	if err != nil {
		t.Fatalf("decodeNES20Size: %v", err)
	}
	if banks != 4 {
		t.Errorf("banks = %d, want 4", banks)
	}
}
