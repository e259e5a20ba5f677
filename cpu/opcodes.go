package cpu

// Addressing-mode microsequences, shared across every opcode that uses
// that mode. A nil sequence means the instruction is implicit/accumulator
// addressed: nothing runs before the operation sequence.
var (
	addrImmediate = []Micro{MicroImmediateRead}
	addrZeroPage  = []Micro{MicroReadAdl, MicroReadZeroPage}
	addrZeroPageX = []Micro{MicroReadBal, MicroEmpty, MicroReadZeroPageBalX}
	addrZeroPageY = []Micro{MicroReadBal, MicroEmpty, MicroReadZeroPageBalY}
	addrAbsolute  = []Micro{MicroReadAdl, MicroReadAdh, MicroReadAbsolute}
	addrAbsoluteX = []Micro{MicroReadBal, MicroReadBah, MicroReadAdlAdhAbsoluteX}
	addrAbsoluteY = []Micro{MicroReadBal, MicroReadBah, MicroReadAdlAdhAbsoluteY}
	addrIndirectX = []Micro{MicroReadBal, MicroEmpty, MicroReadAdlIndirectBal, MicroReadAdhIndirectBal, MicroReadAbsolute}
	addrIndirectY = []Micro{MicroReadIal, MicroReadBalIndirectIal, MicroReadBahIndirectIal, MicroReadAdlAdhAbsoluteY}
)

// opEntry is what DecodeOperation installs: the addressing sequence (nil
// for implicit/accumulator modes) and the operation sequence.
type opEntry struct {
	addressing []Micro
	operation  []Micro
}

// rmw and store both need a write-back Micro matching the addressing mode
// that produced the effective address, so the final write reuses the latch
// the addressing sequence already populated instead of recomputing it.
// Absolute, Absolute,X and Absolute,Y addressing all latch the final
// effective address into ADH:ADL, so they all write back through
// WriteAbsolute — this is the documented fix for RMW absolute,X, which
// earlier revisions routed through a separate (and inconsistent)
// write-absolute-indexed step.
func rmw(addressing []Micro, writeBack Micro, op Micro) opEntry {
	return opEntry{addressing: addressing, operation: []Micro{op, writeBack}}
}

func load(addressing []Micro, op Micro) opEntry {
	return opEntry{addressing: addressing, operation: []Micro{op}}
}

func store(addressing []Micro, writeBack Micro, op Micro) opEntry {
	return opEntry{addressing: addressing, operation: []Micro{op, writeBack}}
}

func implicit(op Micro) opEntry {
	return opEntry{addressing: nil, operation: []Micro{op}}
}

var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() map[uint8]opEntry {
	t := map[uint8]opEntry{}

	// LDA
	t[0xA9] = load(addrImmediate, MicroLoadAccumulator)
	t[0xA5] = load(addrZeroPage, MicroLoadAccumulator)
	t[0xB5] = load(addrZeroPageX, MicroLoadAccumulator)
	t[0xAD] = load(addrAbsolute, MicroLoadAccumulator)
	t[0xBD] = load(addrAbsoluteX, MicroLoadAccumulator)
	t[0xB9] = load(addrAbsoluteY, MicroLoadAccumulator)
	t[0xA1] = load(addrIndirectX, MicroLoadAccumulator)
	t[0xB1] = load(addrIndirectY, MicroLoadAccumulator)

	// LDX
	t[0xA2] = load(addrImmediate, MicroLoadX)
	t[0xA6] = load(addrZeroPage, MicroLoadX)
	t[0xB6] = load(addrZeroPageY, MicroLoadX)
	t[0xAE] = load(addrAbsolute, MicroLoadX)
	t[0xBE] = load(addrAbsoluteY, MicroLoadX)

	// LDY
	t[0xA0] = load(addrImmediate, MicroLoadY)
	t[0xA4] = load(addrZeroPage, MicroLoadY)
	t[0xB4] = load(addrZeroPageX, MicroLoadY)
	t[0xAC] = load(addrAbsolute, MicroLoadY)
	t[0xBC] = load(addrAbsoluteX, MicroLoadY)

	// STA
	t[0x85] = store(addrZeroPage, MicroWriteZeroPage, MicroStoreAccumulator)
	t[0x95] = store(addrZeroPageX, MicroWriteZeroPageBalX, MicroStoreAccumulator)
	t[0x8D] = store(addrAbsolute, MicroWriteAbsolute, MicroStoreAccumulator)
	t[0x9D] = store(addrAbsoluteX, MicroWriteAbsolute, MicroStoreAccumulator)
	t[0x99] = store(addrAbsoluteY, MicroWriteAbsolute, MicroStoreAccumulator)
	t[0x81] = store(addrIndirectX, MicroWriteAbsolute, MicroStoreAccumulator)
	t[0x91] = store(addrIndirectY, MicroWriteAbsolute, MicroStoreAccumulator)

	// STX
	t[0x86] = store(addrZeroPage, MicroWriteZeroPage, MicroStoreX)
	t[0x96] = store(addrZeroPageY, MicroWriteZeroPageBalY, MicroStoreX)
	t[0x8E] = store(addrAbsolute, MicroWriteAbsolute, MicroStoreX)

	// STY
	t[0x84] = store(addrZeroPage, MicroWriteZeroPage, MicroStoreY)
	t[0x94] = store(addrZeroPageX, MicroWriteZeroPageBalX, MicroStoreY)
	t[0x8C] = store(addrAbsolute, MicroWriteAbsolute, MicroStoreY)

	// ASL
	t[0x0A] = implicit(MicroShiftLeftAccumulator)
	t[0x06] = rmw(addrZeroPage, MicroWriteZeroPage, MicroShiftLeftMemoryBuffer)
	t[0x16] = rmw(addrZeroPageX, MicroWriteZeroPageBalX, MicroShiftLeftMemoryBuffer)
	t[0x0E] = rmw(addrAbsolute, MicroWriteAbsolute, MicroShiftLeftMemoryBuffer)
	t[0x1E] = rmw(addrAbsoluteX, MicroWriteAbsolute, MicroShiftLeftMemoryBuffer)

	// INC / DEC
	t[0xE6] = rmw(addrZeroPage, MicroWriteZeroPage, MicroIncrementMemoryBuffer)
	t[0xF6] = rmw(addrZeroPageX, MicroWriteZeroPageBalX, MicroIncrementMemoryBuffer)
	t[0xEE] = rmw(addrAbsolute, MicroWriteAbsolute, MicroIncrementMemoryBuffer)
	t[0xFE] = rmw(addrAbsoluteX, MicroWriteAbsolute, MicroIncrementMemoryBuffer)
	t[0xC6] = rmw(addrZeroPage, MicroWriteZeroPage, MicroDecrementMemoryBuffer)
	t[0xD6] = rmw(addrZeroPageX, MicroWriteZeroPageBalX, MicroDecrementMemoryBuffer)
	t[0xCE] = rmw(addrAbsolute, MicroWriteAbsolute, MicroDecrementMemoryBuffer)
	t[0xDE] = rmw(addrAbsoluteX, MicroWriteAbsolute, MicroDecrementMemoryBuffer)
	t[0xE8] = implicit(MicroIncrementX)
	t[0xC8] = implicit(MicroIncrementY)
	t[0xCA] = implicit(MicroDecrementX)
	t[0x88] = implicit(MicroDecrementY)

	// Register transfers
	t[0xAA] = implicit(MicroTransferAccumulatorToX)
	t[0xA8] = implicit(MicroTransferAccumulatorToY)
	t[0x8A] = implicit(MicroTransferXToAccumulator)
	t[0x98] = implicit(MicroTransferYToAccumulator)
	t[0xBA] = implicit(MicroTransferStackptrToX)
	t[0x9A] = implicit(MicroTransferXToStackptr)

	// AND / EOR / ORA
	t[0x29] = load(addrImmediate, MicroAnd)
	t[0x25] = load(addrZeroPage, MicroAnd)
	t[0x35] = load(addrZeroPageX, MicroAnd)
	t[0x2D] = load(addrAbsolute, MicroAnd)
	t[0x3D] = load(addrAbsoluteX, MicroAnd)
	t[0x39] = load(addrAbsoluteY, MicroAnd)
	t[0x21] = load(addrIndirectX, MicroAnd)
	t[0x31] = load(addrIndirectY, MicroAnd)

	t[0x49] = load(addrImmediate, MicroXor)
	t[0x45] = load(addrZeroPage, MicroXor)
	t[0x55] = load(addrZeroPageX, MicroXor)
	t[0x4D] = load(addrAbsolute, MicroXor)
	t[0x5D] = load(addrAbsoluteX, MicroXor)
	t[0x59] = load(addrAbsoluteY, MicroXor)
	t[0x41] = load(addrIndirectX, MicroXor)
	t[0x51] = load(addrIndirectY, MicroXor)

	t[0x09] = load(addrImmediate, MicroOr)
	t[0x05] = load(addrZeroPage, MicroOr)
	t[0x15] = load(addrZeroPageX, MicroOr)
	t[0x0D] = load(addrAbsolute, MicroOr)
	t[0x1D] = load(addrAbsoluteX, MicroOr)
	t[0x19] = load(addrAbsoluteY, MicroOr)
	t[0x01] = load(addrIndirectX, MicroOr)
	t[0x11] = load(addrIndirectY, MicroOr)

	// Flag clear/set
	t[0x18] = implicit(MicroClearCarryFlag)
	t[0xD8] = implicit(MicroClearDecimalFlag)
	t[0x58] = implicit(MicroClearInterruptDisableFlag)
	t[0xB8] = implicit(MicroClearOverflowFlag)
	t[0x38] = implicit(MicroSetCarryFlag)
	t[0xF8] = implicit(MicroSetDecimalFlag)
	t[0x78] = implicit(MicroSetInterruptDisableFlag)

	// Stack
	t[0x48] = implicit(MicroPushAccumulator)
	t[0x68] = implicit(MicroPullAccumulator)
	t[0x08] = implicit(MicroPushStatusRegister)
	t[0x28] = implicit(MicroPullStatusRegister)

	return t
}
