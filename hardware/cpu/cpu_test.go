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

package cpu_test

import (
	"testing"

	"github.com/attiny85sim/atsim85/hardware/cpu"
	"github.com/attiny85sim/atsim85/hardware/cpu/instructions"
	"github.com/attiny85sim/atsim85/hardware/mcu"
	"github.com/attiny85sim/atsim85/hardware/memory"
	"github.com/attiny85sim/atsim85/test"
)

var table = instructions.BuildDispatchTable(instructions.Table)

func newTestCPU() (*cpu.CPU, *memory.DataMemory, *memory.FlashMemory) {
	mem := memory.NewDataMemory(mcu.ATtiny85)
	flash := memory.NewFlashMemory(mcu.ATtiny85.FlashSize)
	return cpu.New(mcu.ATtiny85, mem, flash), mem, flash
}

func putProgram(flash *memory.FlashMemory, words ...uint16) {
	for i, w := range words {
		flash.SetWord(uint16(i), w)
	}
}

func step(c *cpu.CPU) {
	c.Step(table)
}

// opRegReg encodes the xxxx_xxrd_dddd_rrrr two-register forms.
func opRegReg(base uint16, d, r uint8) uint16 {
	return base | uint16(d)<<4 | uint16(r&0x0f) | uint16(r&0x10)<<5
}

// opLDI encodes LDI Rd,K for d in 16..31.
func opLDI(d uint8, k uint8) uint16 {
	return 0xe000 | uint16(k&0xf0)<<4 | uint16(d-16)<<4 | uint16(k&0x0f)
}

func TestLPMLittleEndian(t *testing.T) {
	c, mem, flash := newTestCPU()

	flash.SetWord(512, 0x4433)

	// Z = 1024, the byte address of word 512
	mem.R[30] = 0x00
	mem.R[31] = 0x04

	// LPM R10,Z+ ; LPM R11,Z+
	putProgram(flash, 0x90a5, 0x90b5)
	step(c)
	step(c)

	test.Equate(t, mem.R[10], 0x33)
	test.Equate(t, mem.R[11], 0x44)
	test.Equate(t, c.Z(), 1026)
	test.Equate(t, c.PC(), 2)
}

func TestADDFlags(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.R[0] = 0x7f
	mem.R[1] = 0x01

	putProgram(flash, opRegReg(0x0c00, 0, 1)) // ADD R0,R1
	step(c)

	test.Equate(t, mem.R[0], 0x80)
	test.Equate(t, mem.SREG.H, true)
	test.Equate(t, mem.SREG.V, true)
	test.Equate(t, mem.SREG.N, true)
	test.Equate(t, mem.SREG.Z, false)
	test.Equate(t, mem.SREG.C, false)
	test.Equate(t, mem.SREG.S, false)
}

func TestSBCZeroClearedOnNonZeroResult(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.R[0] = 0x10
	mem.R[1] = 0x10
	mem.SREG.C = true
	mem.SREG.Z = true

	putProgram(flash, opRegReg(0x0800, 0, 1)) // SBC R0,R1
	step(c)

	test.Equate(t, mem.R[0], 0xff)
	test.Equate(t, mem.SREG.Z, false)
	test.Equate(t, mem.SREG.C, true)
	test.Equate(t, mem.SREG.N, true)
}

func TestSBCZeroPreservedOnZeroResult(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.R[0] = 0x11
	mem.R[1] = 0x10
	mem.SREG.C = true
	mem.SREG.Z = true

	putProgram(flash, opRegReg(0x0800, 0, 1)) // SBC R0,R1
	step(c)

	test.Equate(t, mem.R[0], 0x00)
	test.Equate(t, mem.SREG.Z, true)

	// but a zero result with prior Z clear leaves Z clear
	c2, mem2, flash2 := newTestCPU()
	mem2.R[0] = 0x11
	mem2.R[1] = 0x10
	mem2.SREG.C = true
	mem2.SREG.Z = false
	putProgram(flash2, opRegReg(0x0800, 0, 1))
	step(c2)
	test.Equate(t, mem2.SREG.Z, false)
}

func TestSkipTwoWord(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.Set(0x0060, 0xab)

	// CPSE R0,R0 ; LDS R1,0x0060 ; NOP
	putProgram(flash,
		opRegReg(0x1000, 0, 0), // CPSE R0,R0 (always skips)
		0x9010,                 // LDS R1,...
		0x0060,                 // ...address word
		0x0000,                 // NOP
	)

	step(c)
	test.Equate(t, c.PC(), 1)

	step(c) // LDS is fetched but skipped, both words
	test.Equate(t, c.PC(), 3)
	test.Equate(t, mem.R[1], 0)

	step(c) // NOP
	test.Equate(t, c.PC(), 4)
}

func TestSkipOneWord(t *testing.T) {
	c, mem, flash := newTestCPU()

	// SBRC R2,0 ; INC R5 -- R2 bit 0 is clear so INC is skipped
	putProgram(flash, 0xfc20, 0x9453)
	step(c)
	step(c)

	test.Equate(t, mem.R[5], 0)
	test.Equate(t, c.PC(), 2)
}

func TestLDSAndSTS(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.Set(0x0060, 0xab)

	// LDS R1,0x0060 ; STS 0x0061,R1
	putProgram(flash, 0x9010, 0x0060, 0x9210, 0x0061)
	step(c)
	test.Equate(t, mem.R[1], 0xab)
	test.Equate(t, c.PC(), 2)

	step(c)
	test.Equate(t, mem.Get(0x0061), 0xab)
	test.Equate(t, c.PC(), 4)
}

func TestStackPushPop(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.SetSP(0x025f)

	// LDI R16,0xDE ; PUSH R16 ; LDI R16,0x00 ; POP R17
	putProgram(flash,
		opLDI(16, 0xde),
		0x920f|16<<4,
		opLDI(16, 0x00),
		0x900f|17<<4,
	)
	for i := 0; i < 4; i++ {
		step(c)
	}

	test.Equate(t, mem.R[17], 0xde)
	test.Equate(t, mem.SP(), 0x025f)
}

func TestBranchTakenAndNotTaken(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.SREG.Z = true

	// BRBS 1,+2 (BREQ)
	putProgram(flash, 0xf000|2<<3|1)
	step(c)
	test.Equate(t, c.PC(), 3)

	// BRBC 1,+2 (BRNE) with Z still set: not taken
	c2, mem2, flash2 := newTestCPU()
	mem2.SREG.Z = true
	putProgram(flash2, 0xf400|2<<3|1)
	step(c2)
	test.Equate(t, c2.PC(), 1)
}

func TestRJMPBackward(t *testing.T) {
	c, _, flash := newTestCPU()

	// RJMP .-2: a self-loop at address 0
	putProgram(flash, 0xcfff)
	step(c)

	test.Equate(t, c.PC(), 0)
}

func TestRCALLAndRET(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.SetSP(0x025f)

	// RCALL +3 ; ... ; RET at word 4
	putProgram(flash, 0xd003)
	flash.SetWord(4, 0x9508)

	step(c)
	test.Equate(t, c.PC(), 4)
	test.Equate(t, mem.SP(), 0x025d)

	step(c)
	test.Equate(t, c.PC(), 1)
	test.Equate(t, mem.SP(), 0x025f)
}

func TestIJMPAndICALL(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.SetSP(0x025f)
	mem.R[30] = 0x23
	mem.R[31] = 0x01

	putProgram(flash, 0x9509) // ICALL
	flash.SetWord(0x0123, 0x9508)

	step(c)
	test.Equate(t, c.PC(), 0x0123)

	step(c) // RET
	test.Equate(t, c.PC(), 1)
	test.Equate(t, mem.SP(), 0x025f)

	// IJMP does not touch the stack
	c2, mem2, flash2 := newTestCPU()
	mem2.SetSP(0x025f)
	mem2.R[30] = 0x23
	mem2.R[31] = 0x01
	putProgram(flash2, 0x9409)
	step(c2)
	test.Equate(t, c2.PC(), 0x0123)
	test.Equate(t, mem2.SP(), 0x025f)
}

func TestInOutSREGOverlay(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.R[16] = 0x03

	// OUT 0x3F,R16 ; IN R17,0x3F
	putProgram(flash, 0xbf0f, 0xb71f)
	step(c)

	test.Equate(t, mem.SREG.C, true)
	test.Equate(t, mem.SREG.Z, true)
	test.Equate(t, mem.SREG.N, false)

	step(c)
	test.Equate(t, mem.R[17], 0x03)
}

func TestSBICBI(t *testing.T) {
	c, mem, flash := newTestCPU()

	// SBI 0x10,3 ; CBI 0x10,3
	putProgram(flash, 0x9a00|0x10<<3|3, 0x9800|0x10<<3|3)
	step(c)
	test.Equate(t, mem.IO[0x10], 0x08)

	step(c)
	test.Equate(t, mem.IO[0x10], 0x00)
}

func TestMOVW(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.R[30] = 0xcd
	mem.R[31] = 0xab

	// MOVW R2,R30
	putProgram(flash, 0x0100|1<<4|15)
	step(c)

	test.Equate(t, mem.R[2], 0xcd)
	test.Equate(t, mem.R[3], 0xab)
}

func TestLDDAndSTD(t *testing.T) {
	c, mem, flash := newTestCPU()

	// Y = 0x0100
	mem.R[28] = 0x00
	mem.R[29] = 0x01
	mem.R[20] = 0x77

	// STD Y+5,R20 ; LDD R21,Y+5
	putProgram(flash, 0x834d, 0x815d)
	step(c)
	test.Equate(t, mem.Get(0x0105), 0x77)

	step(c)
	test.Equate(t, mem.R[21], 0x77)

	// Y itself is not modified by the displaced forms
	test.Equate(t, c.Y(), 0x0100)
}

func TestIndirectLoadStoreWithPostIncPreDec(t *testing.T) {
	c, mem, flash := newTestCPU()

	// X = 0x0060
	mem.R[26] = 0x60
	mem.R[27] = 0x00
	mem.R[5] = 0x11
	mem.R[6] = 0x22

	// ST X+,R5 ; ST X+,R6 ; LD R7,-X
	putProgram(flash,
		0x920d|5<<4,
		0x920d|6<<4,
		0x900e|7<<4,
	)
	step(c)
	step(c)
	test.Equate(t, c.X(), 0x0062)

	step(c)
	test.Equate(t, mem.R[7], 0x22)
	test.Equate(t, c.X(), 0x0061)
}

func TestUnknownOpcodeIsNoOp(t *testing.T) {
	c, mem, flash := newTestCPU()

	mem.R[0] = 0x42
	putProgram(flash, 0x95b8) // not a defined encoding on this core
	step(c)

	test.Equate(t, c.PC(), 1)
	test.Equate(t, mem.R[0], 0x42)
	test.Equate(t, mem.SREG.Pack(), 0)
}
