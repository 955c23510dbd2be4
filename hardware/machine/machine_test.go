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

package machine_test

import (
	"strings"
	"testing"

	"github.com/attiny85sim/atsim85/hardware/cpu/instructions"
	"github.com/attiny85sim/atsim85/hardware/machine"
	"github.com/attiny85sim/atsim85/hardware/mcu"
	"github.com/attiny85sim/atsim85/test"
)

var table = instructions.BuildDispatchTable(instructions.Table)

func TestRunUntilHaltOnSelfLoop(t *testing.T) {
	m := machine.New(mcu.ATtiny85, table)

	// RJMP .-2 at address 0, as raw image bytes (little-endian)
	m.Load([]byte{0xff, 0xcf})

	executed := machine.RunUntilHalt(m, 1000)
	test.Equate(t, executed, 1)
	test.Equate(t, m.CPU.PC(), 0)
}

func TestRunUntilHaltAfterWork(t *testing.T) {
	m := machine.New(mcu.ATtiny85, table)

	// NOP ; NOP ; RJMP .-2
	m.Load([]byte{0x00, 0x00, 0x00, 0x00, 0xff, 0xcf})

	executed := machine.RunUntilHalt(m, 1000)
	test.Equate(t, executed, 3)
	test.Equate(t, m.CPU.PC(), 2)
	test.Equate(t, m.Cycles, 3)
}

func TestRunUntilHaltRespectsMaxCycles(t *testing.T) {
	m := machine.New(mcu.ATtiny85, table)

	// a two-instruction loop never leaves PC unchanged across a single
	// cycle: NOP at word 0, RJMP .-4 at word 1
	m.Load([]byte{0x00, 0x00, 0xfe, 0xcf})

	executed := machine.RunUntilHalt(m, 50)
	test.Equate(t, executed, 50)
}

func TestLoadDoesNotAliasCaller(t *testing.T) {
	m := machine.New(mcu.ATtiny85, table)

	image := []byte{0x0e, 0xc0}
	m.Load(image)
	image[0] = 0xff

	test.Equate(t, m.Flash.Word(0), 0xc00e)
}

func TestRegisterDump(t *testing.T) {
	m := machine.New(mcu.ATtiny85, table)

	m.CPU.SetReg(10, 0xab)
	m.Data.SetSP(0x025f)

	dump := m.DumpRegisters()
	if !strings.Contains(dump, "ab") {
		t.Errorf("register dump does not contain R10's value: %s", dump)
	}
	if !strings.Contains(dump, "SP=025f") {
		t.Errorf("register dump does not contain SP: %s", dump)
	}
	if !strings.Contains(dump, "SREG=") {
		t.Errorf("register dump does not contain SREG: %s", dump)
	}
}

func TestStackDump(t *testing.T) {
	m := machine.New(mcu.ATtiny85, table)

	m.Data.SetSP(0x025f)
	m.Data.Push8(0xde)
	m.Data.Push8(0xad)

	dump := m.DumpStack()
	if !strings.Contains(dump, "de") {
		t.Errorf("stack dump does not contain first pushed byte: %s", dump)
	}
	if !strings.Contains(dump, "ad") {
		t.Errorf("stack dump does not contain second pushed byte: %s", dump)
	}
}
