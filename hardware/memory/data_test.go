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

package memory_test

import (
	"testing"

	"github.com/attiny85sim/atsim85/hardware/mcu"
	"github.com/attiny85sim/atsim85/hardware/memory"
	"github.com/attiny85sim/atsim85/test"
)

func TestDataOverlayRoundTrip(t *testing.T) {
	d := memory.NewDataMemory(mcu.ATtiny85)

	// every mapped address reads back what was written. address 0x5f is
	// no exception: the write unpacks into the status register and the
	// read packs it again.
	size := uint16(mcu.ATtiny85.DataMemSize())
	for a := uint16(0); a < size; a++ {
		d.Set(a, uint8(a^0xa5))
		test.Equate(t, d.Get(a), uint8(a^0xa5))
	}
}

func TestDataOverlayBacking(t *testing.T) {
	d := memory.NewDataMemory(mcu.ATtiny85)

	// writes land in the expected backing array
	d.Set(0x001f, 0x11)
	test.Equate(t, d.R[31], 0x11)

	d.Set(0x0020, 0x22)
	test.Equate(t, d.IO[0], 0x22)

	d.Set(0x0060, 0x33)
	test.Equate(t, d.SRAM[0], 0x33)
}

func TestSREGOverlay(t *testing.T) {
	d := memory.NewDataMemory(mcu.ATtiny85)

	d.Set(mcu.SREGAddr, 0x83)
	test.Equate(t, d.SREG.I, true)
	test.Equate(t, d.SREG.Z, true)
	test.Equate(t, d.SREG.C, true)
	test.Equate(t, d.SREG.N, false)

	d.SREG.N = true
	test.Equate(t, d.Get(mcu.SREGAddr), 0x87)
}

func TestOutOfRangeAccess(t *testing.T) {
	d := memory.NewDataMemory(mcu.ATtiny85)

	beyond := uint16(mcu.ATtiny85.DataMemSize())
	test.Equate(t, d.Get(beyond), 0)

	// write is discarded, not wrapped into SRAM
	d.Set(beyond, 0xff)
	test.Equate(t, d.Get(beyond), 0)
	test.Equate(t, d.SRAM[len(d.SRAM)-1], 0)
}

func TestStackPointer(t *testing.T) {
	d := memory.NewDataMemory(mcu.ATtiny85)

	d.SetSP(0x025f)
	test.Equate(t, d.SP(), 0x025f)
	test.Equate(t, d.IO[0x3d], 0x5f)
	test.Equate(t, d.IO[0x3e], 0x02)

	// SP is also reachable through the unified address space
	test.Equate(t, d.Get(mcu.SPLAddr), 0x5f)
	test.Equate(t, d.Get(mcu.SPHAddr), 0x02)
}

func TestStackRoundTrip8(t *testing.T) {
	d := memory.NewDataMemory(mcu.ATtiny85)
	d.SetSP(0x025f)

	d.Push8(0xde)
	test.Equate(t, d.SP(), 0x025e)
	test.Equate(t, d.Pop8(), 0xde)
	test.Equate(t, d.SP(), 0x025f)
}

func TestStackRoundTrip16(t *testing.T) {
	d := memory.NewDataMemory(mcu.ATtiny85)
	d.SetSP(0x025f)

	d.Push16(0x1234)
	test.Equate(t, d.SP(), 0x025d)

	// big-endian in memory: high byte at the lower address
	test.Equate(t, d.Get(0x025e), 0x12)
	test.Equate(t, d.Get(0x025f), 0x34)

	test.Equate(t, d.Pop16(), 0x1234)
	test.Equate(t, d.SP(), 0x025f)
}
