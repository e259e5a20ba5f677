// Package cpu implements a cycle-level MOS 6502 interpreter: every
// instruction is decomposed into one-cycle microinstructions so the
// engine can be driven exactly one bus access at a time.
package cpu

import (
	"errors"
	"fmt"

	"github.com/claude/gintendo/bus"
)

// ErrUnknownOpcode is the interpreter's only fatal condition: the decode
// table has no entry for the fetched opcode.
var ErrUnknownOpcode = errors.New("cpu: unknown opcode")

// State is the CPU's top-level phase.
type State int

const (
	Fetching State = iota
	Execution
)

var fetchSteps = []Micro{MicroReadOperationCode, MicroDecodeOperation}

// CPU is the 6502 interpreter. It owns the CPU bus exclusively during
// Step and performs at most one bus access per call.
type CPU struct {
	Registers
	Bus bus.Addressable

	state State
	fetch *Sequence

	addressing *Sequence
	operation  *Sequence

	err error
}

// New builds a CPU wired to bus, with the stack pointer at its power-on
// value and the fetch cycle about to start at PC.
func New(b bus.Addressable) *CPU {
	return &CPU{
		Bus:   b,
		state: Fetching,
		fetch: NewSequence(fetchSteps),
		Registers: Registers{
			SP: 0xFD,
			P:  FlagInterruptDisable | FlagUnused,
		},
	}
}

// Err returns the fatal decode error, if Step has ever hit an unknown
// opcode. Once set it never clears; the CPU cannot meaningfully continue.
func (c *CPU) Err() error { return c.err }

// State reports whether the CPU is between instructions (Fetching) or
// mid-instruction (Execution).
func (c *CPU) State() State { return c.state }

// activeSequence implements the "which sequence is active" rule: the
// addressing sequence runs first, unless it's absent or already spent.
func (c *CPU) activeSequence() *Sequence {
	if !c.addressing.Done() {
		return c.addressing
	}
	return c.operation
}

// Step advances the CPU exactly one microinstruction (at most one bus
// access). If a prior Step hit an unknown opcode, Step is a no-op that
// returns the same error again.
func (c *CPU) Step() error {
	if c.err != nil {
		return c.err
	}

	switch c.state {
	case Fetching:
		instr := c.fetch.Current()
		if c.fetch.Done() {
			c.fetch.cursor = 0
			c.state = Execution
		}
		c.apply(instr)
	case Execution:
		seq := c.activeSequence()
		instr := seq.Current()
		c.apply(instr)
		if c.operation.Done() {
			c.state = Fetching
			c.addressing = nil
			c.operation = nil
		}
	}
	return c.err
}

// decode installs the addressing and operation sequences for opcode, or
// sets the fatal decode error.
func (c *CPU) decode(opcode uint8) {
	entry, ok := opcodeTable[opcode]
	if !ok {
		c.err = fmt.Errorf("%w: %#02x at pc %#04x", ErrUnknownOpcode, opcode, c.Registers.PC)
		return
	}
	if entry.addressing != nil {
		c.addressing = NewSequence(entry.addressing)
	} else {
		c.addressing = nil
	}
	c.operation = NewSequence(entry.operation)
}
