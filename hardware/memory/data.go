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

package memory

import (
	"github.com/attiny85sim/atsim85/hardware/cpu/registers"
	"github.com/attiny85sim/atsim85/hardware/mcu"
	"github.com/attiny85sim/atsim85/logger"
	"github.com/attiny85sim/atsim85/peripherals"
)

// DataMemory is the unified byte-addressed data space: 32 general
// purpose registers at 0x00-0x1f, 64 I/O registers at 0x20-0x5f (with
// the status register overlaid at 0x5f and the stack pointer at
// 0x5d/0x5e), and SRAM above that.
type DataMemory struct {
	R    [mcu.NumGPRegisters]uint8
	IO   [mcu.NumIORegisters]uint8
	SRAM []uint8

	SREG *registers.StatusRegister

	Observer peripherals.Observer

	// LowWater, when non-zero, is the stack warning threshold: a push
	// that takes SP below it leaves an entry in the log. The stack is
	// never policed beyond that.
	LowWater uint16

	sramBase uint16
}

// NewDataMemory allocates a zeroed data memory for the given variant.
func NewDataMemory(v mcu.Variant) *DataMemory {
	return &DataMemory{
		SRAM:     make([]uint8, v.SRAMSize),
		SREG:     &registers.StatusRegister{},
		sramBase: mcu.SRAMBase,
	}
}

// inIORange reports whether a unified data address falls in the I/O
// register window, where the observer hook is offered.
func inIORange(addr uint16) bool {
	return addr >= mcu.IORegBase && addr < mcu.SRAMBase
}

// Get reads one byte from the unified data address space.
func (d *DataMemory) Get(addr uint16) uint8 {
	if d.Observer != nil && inIORange(addr) {
		d.Observer.PreGet(d, addr)
	}

	v := d.rawGet(addr)

	if d.Observer != nil && inIORange(addr) {
		d.Observer.PostGet(d, addr, v)
	}
	return v
}

func (d *DataMemory) rawGet(addr uint16) uint8 {
	switch {
	case addr < mcu.IORegBase:
		return d.R[addr]
	case addr == mcu.SREGAddr:
		return d.SREG.Pack()
	case addr < mcu.SRAMBase:
		return d.IO[addr-mcu.IORegBase]
	default:
		i := int(addr) - int(d.sramBase)
		if i < 0 || i >= len(d.SRAM) {
			return 0
		}
		return d.SRAM[i]
	}
}

// Set writes one byte to the unified data address space.
func (d *DataMemory) Set(addr uint16, v uint8) {
	if d.Observer != nil && inIORange(addr) {
		d.Observer.PreSet(d, addr, v)
	}

	d.rawSet(addr, v)

	if d.Observer != nil && inIORange(addr) {
		d.Observer.PostSet(d, addr)
	}
}

func (d *DataMemory) rawSet(addr uint16, v uint8) {
	switch {
	case addr < mcu.IORegBase:
		d.R[addr] = v
	case addr == mcu.SREGAddr:
		d.SREG.Unpack(v)
	case addr < mcu.SRAMBase:
		d.IO[addr-mcu.IORegBase] = v
	default:
		i := int(addr) - int(d.sramBase)
		if i >= 0 && i < len(d.SRAM) {
			d.SRAM[i] = v
		}
	}
}

// DataByte and SetDataByte satisfy peripherals.Machine, letting an
// Observer read/write data memory without going through the full
// machine type.
func (d *DataMemory) DataByte(addr uint16) uint8 { return d.rawGet(addr) }
func (d *DataMemory) SetDataByte(addr uint16, v uint8) { d.rawSet(addr, v) }

// SP returns the current stack pointer, assembled from 0x3d/0x3e.
func (d *DataMemory) SP() uint16 {
	lo := d.IO[mcu.SPLAddr-mcu.IORegBase]
	hi := d.IO[mcu.SPHAddr-mcu.IORegBase]
	return uint16(lo) | uint16(hi)<<8
}

// SetSP writes the stack pointer back to 0x3d/0x3e.
func (d *DataMemory) SetSP(sp uint16) {
	d.IO[mcu.SPLAddr-mcu.IORegBase] = uint8(sp)
	d.IO[mcu.SPHAddr-mcu.IORegBase] = uint8(sp >> 8)
}

// Push8 pushes one byte and decrements SP by one.
func (d *DataMemory) Push8(v uint8) {
	sp := d.SP()
	d.Set(sp, v)
	d.SetSP(sp - 1)
	if d.LowWater != 0 && sp-1 < d.LowWater {
		logger.Logf("stack", "SP %#04x below low-water mark %#04x", sp-1, d.LowWater)
	}
}

// Pop8 increments SP by one and pops one byte.
func (d *DataMemory) Pop8() uint8 {
	sp := d.SP() + 1
	d.SetSP(sp)
	return d.Get(sp)
}

// Push16 pushes a 16-bit value big-endian in memory: the low byte ends
// up at the higher of the two addresses used (SP), the high byte at
// SP-1, so that Pop16 (which reads high-then-low as SP increases) gets
// them back in the right order. This mirrors the reference
// implementation's PushStack16/PopStack16 byte order exactly.
func (d *DataMemory) Push16(v uint16) {
	d.Push8(uint8(v))      // low byte first, at the higher address
	d.Push8(uint8(v >> 8)) // high byte second, at the lower address
}

// Pop16 reverses Push16.
func (d *DataMemory) Pop16() uint16 {
	hi := d.Pop8()
	lo := d.Pop8()
	return uint16(lo) | uint16(hi)<<8
}
