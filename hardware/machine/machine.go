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

// Package machine bundles a CPU with its memories and drives the
// fetch/decode/execute loop, including the halt-detection heuristic used
// by the command line front end.
package machine

import (
	"fmt"
	"strings"

	"github.com/attiny85sim/atsim85/hardware/cpu"
	"github.com/attiny85sim/atsim85/hardware/cpu/instructions"
	"github.com/attiny85sim/atsim85/hardware/mcu"
	"github.com/attiny85sim/atsim85/hardware/memory"
	"github.com/attiny85sim/atsim85/peripherals"
)

// Machine is one simulated AVRe-class part: a CPU, its data memory,
// flash, EEPROM, and an optional peripheral observer.
type Machine struct {
	Variant mcu.Variant

	CPU    *cpu.CPU
	Data   *memory.DataMemory
	Flash  *memory.FlashMemory
	EEPROM *memory.EEPROM

	Observer peripherals.Observer

	table *instructions.Dispatch

	// Cycles is the running count of ExecuteCycle calls, reported by
	// the register dump.
	Cycles uint64
}

// New builds a zero-initialised machine for the given variant and
// instruction dispatch table. There is no randomised reset: every
// register, I/O address, and byte of SRAM starts at zero.
func New(v mcu.Variant, table *instructions.Dispatch) *Machine {
	data := memory.NewDataMemory(v)
	flash := memory.NewFlashMemory(v.FlashSize)
	m := &Machine{
		Variant: v,
		Data:    data,
		Flash:   flash,
		EEPROM:  memory.NewEEPROM(v.EEPROMSize),
		table:   table,
	}
	m.CPU = cpu.New(v, data, flash)
	return m
}

// SetObserver attaches a peripheral observer both to the machine (for
// PreTick/PostTick) and to the data memory (for the I/O-range
// Get/Set hooks).
func (m *Machine) SetObserver(o peripherals.Observer) {
	m.Observer = o
	m.Data.Observer = o
}

// Load copies a raw byte image into FLASH. The caller's slice is never
// retained.
func (m *Machine) Load(image []byte) {
	cp := make([]byte, len(image))
	copy(cp, image)
	m.Flash.Load(cp)
}

// DataByte and SetDataByte satisfy peripherals.Machine.
func (m *Machine) DataByte(addr uint16) uint8 { return m.Data.DataByte(addr) }
func (m *Machine) SetDataByte(addr uint16, v uint8) { m.Data.SetDataByte(addr, v) }

// ExecuteCycle runs one fetch/decode/execute step, wrapped in the
// PreTick/PostTick observer hooks.
func (m *Machine) ExecuteCycle() {
	if m.Observer != nil {
		m.Observer.PreTick(m)
	}

	m.CPU.Step(m.table)
	m.Cycles++

	if m.Observer != nil {
		m.Observer.PostTick(m)
	}
}

// RunUntilHalt repeatedly calls ExecuteCycle until the program counter
// stops changing across cycles -- the halt heuristic for a core with no
// explicit HALT/SLEEP semantics: a tight RJMP .-2 (or any jump back to
// itself) converges on a PC that reads the same value both before and
// after a step. maxCycles bounds a program that never converges.
func RunUntilHalt(m *Machine, maxCycles int) int {
	prevPC := m.CPU.PC()
	executed := 0
	for i := 0; i < maxCycles; i++ {
		m.ExecuteCycle()
		executed++
		pc := m.CPU.PC()
		if pc == prevPC {
			break
		}
		prevPC = pc
	}
	return executed
}

// DumpRegisters renders a human-readable snapshot of the register file,
// the index-register pairs, PC, SP, and SREG. Not bit-exact; intended
// for eyeballing during development.
func (m *Machine) DumpRegisters() string {
	var b strings.Builder
	for i := 0; i < mcu.NumGPRegisters; i += 8 {
		fmt.Fprintf(&b, "R%-2d-R%-2d:", i, i+7)
		for j := i; j < i+8; j++ {
			fmt.Fprintf(&b, " %02x", m.CPU.GetReg(uint8(j)))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "X=%04x Y=%04x Z=%04x\n", m.CPU.X(), m.CPU.Y(), m.CPU.Z())
	fmt.Fprintf(&b, "PC=%04x SP=%04x\n", m.CPU.PC(), m.Data.SP())

	s := m.Data.SREG
	fmt.Fprintf(&b, "SREG=%02x [I=%v T=%v H=%v S=%v V=%v N=%v Z=%v C=%v]\n",
		s.Pack(), s.I, s.T, s.H, s.S, s.V, s.N, s.Z, s.C)
	fmt.Fprintf(&b, "cycles=%d\n", m.Cycles)
	return b.String()
}

// DumpStack renders the live stack bytes between the current SP and the
// top of SRAM.
func (m *Machine) DumpStack() string {
	var b strings.Builder
	sp := m.Data.SP()
	top := uint16(mcu.SRAMBase + len(m.Data.SRAM) - 1)
	fmt.Fprintf(&b, "SP=%04x top=%04x\n", sp, top)
	if sp < mcu.SRAMBase || sp > top {
		// SP was never initialised (or has wandered off); there is no
		// stack to show
		return b.String()
	}
	for addr := sp + 1; addr <= top; addr++ {
		fmt.Fprintf(&b, "%04x: %02x\n", addr, m.Data.Get(addr))
	}
	return b.String()
}
