// This file is part of atsim85.
//
// atsim85 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// atsim85 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with atsim85.  If not, see <https://www.gnu.org/licenses/>.

// Package cpu implements the fetch/decode/execute core: register file
// access, the program counter, and the single-instruction step that the
// machine package drives in a loop.
package cpu

import (
	"github.com/attiny85sim/atsim85/hardware/cpu/instructions"
	"github.com/attiny85sim/atsim85/hardware/cpu/registers"
	"github.com/attiny85sim/atsim85/hardware/mcu"
	"github.com/attiny85sim/atsim85/hardware/memory"
	"github.com/attiny85sim/atsim85/logger"
)

// Register pair base indices, per the architecture's fixed X/Y/Z
// assignment.
const (
	PairX uint8 = 26
	PairY uint8 = 28
	PairZ uint8 = 30
)

// CPU is the fetch/decode/execute engine for one AVRe-class core. It
// does not own the data or flash memories outright -- Machine does --
// but holds the references it needs to act on them.
type CPU struct {
	Variant mcu.Variant

	pc uint16

	Mem   *memory.DataMemory
	Flash *memory.FlashMemory

	// Skip is the latch CPSE/SBRC/SBRS/SBIC/SBIS arm: the next
	// instruction -- both words of it, if it is a two-word form -- is
	// fetched but not executed.
	Skip bool
}

// New builds a CPU bound to the given memories. PC starts at zero; the
// caller is responsible for loading Flash before stepping.
func New(v mcu.Variant, mem *memory.DataMemory, flash *memory.FlashMemory) *CPU {
	return &CPU{Variant: v, Mem: mem, Flash: flash}
}

// instructions.CPU implementation.

func (c *CPU) GetReg(n uint8) uint8 { return c.Mem.R[n] }
func (c *CPU) SetReg(n uint8, v uint8) { c.Mem.R[n] = v }

func (c *CPU) GetRegPair(base uint8) uint16 {
	return uint16(c.Mem.R[base]) | uint16(c.Mem.R[base+1])<<8
}

func (c *CPU) SetRegPair(base uint8, v uint16) {
	c.Mem.R[base] = uint8(v)
	c.Mem.R[base+1] = uint8(v >> 8)
}

func (c *CPU) DataGet(addr uint16) uint8 { return c.Mem.Get(addr) }
func (c *CPU) DataSet(addr uint16, v uint8) { c.Mem.Set(addr, v) }

func (c *CPU) FlashWord(addr uint16) uint16 { return c.Flash.Word(addr) }
func (c *CPU) FlashByte(addr uint16) uint8 { return c.Flash.Byte(addr) }

func (c *CPU) PC() uint16 { return c.pc }
func (c *CPU) SetPC(v uint16) { c.pc = v & c.Variant.PCMask() }
func (c *CPU) PCMask() uint16 { return c.Variant.PCMask() }

func (c *CPU) Push8(v uint8) { c.Mem.Push8(v) }
func (c *CPU) Pop8() uint8 { return c.Mem.Pop8() }
func (c *CPU) Push16(v uint16) { c.Mem.Push16(v) }
func (c *CPU) Pop16() uint16 { return c.Mem.Pop16() }

func (c *CPU) SREG() *registers.StatusRegister { return c.Mem.SREG }

func (c *CPU) SetSkip() { c.Skip = true }

// X, Y, and Z are convenience accessors for the three index-register
// pairs.
func (c *CPU) X() uint16 { return c.GetRegPair(PairX) }
func (c *CPU) Y() uint16 { return c.GetRegPair(PairY) }
func (c *CPU) Z() uint16 { return c.GetRegPair(PairZ) }

// Step fetches one opcode, advances PC past it, and either executes it
// or -- if the skip latch is set -- discards it (and, for a two-word
// form, the word that follows it too). PC is advanced before the
// instruction body runs, so a jump/branch/call executor that sets PC
// itself simply overwrites this pre-increment.
func (c *CPU) Step(table *instructions.Dispatch) {
	op := c.Flash.Word(c.pc)
	c.SetPC(c.pc + 1)

	def := table.Decode(op)

	if c.Skip {
		c.Skip = false
		if def != nil && def.TwoWord {
			c.SetPC(c.pc + 1)
		}
		return
	}

	if def == nil {
		// unimplemented/illegal opcode: a no-op, but leave a trace
		logger.Logf("cpu", "unknown opcode %#04x at pc %#04x", op, (c.pc-1)&c.PCMask())
		return
	}
	def.Exec(c, op, def)
}
