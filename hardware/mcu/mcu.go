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

// Package mcu describes the sizing of a particular AVRe-class part. A
// Variant is just a bundle of memory sizes; the rest of the hardware
// package is written against a Variant rather than against hard-coded
// constants so that a second part (bigger flash, bigger SRAM) can be
// added without touching the CPU or decoder.
package mcu

// Variant describes the memory geometry of one member of the AVRe-class
// family.
type Variant struct {
	Name string

	// FlashSize is in bytes. FLASH is word-addressed, so FlashWords is
	// FlashSize/2.
	FlashSize int

	// SRAMSize is in bytes, sitting directly above the 32 general
	// purpose registers and 64 I/O registers in the unified data
	// address space.
	SRAMSize int

	// EEPROMSize is in bytes. EEPROM is a separate address space
	// entirely; it is not mapped into DataMemory.
	EEPROMSize int
}

// ATtiny85 is the only variant shipped: 8K flash, 512 bytes SRAM, 512
// bytes EEPROM.
var ATtiny85 = Variant{
	Name:       "ATtiny85",
	FlashSize:  8192,
	SRAMSize:   512,
	EEPROMSize: 512,
}

// FlashWords is the number of 16-bit words in FLASH.
func (v Variant) FlashWords() int {
	return v.FlashSize / 2
}

// PCMask masks a program counter value to the number of bits needed to
// address FlashWords words. FlashWords is always a power of two for the
// parts we model, so this is FlashWords-1.
func (v Variant) PCMask() uint16 {
	return uint16(v.FlashWords() - 1)
}

// NumGPRegisters is fixed across the whole AVRe class.
const NumGPRegisters = 32

// NumIORegisters is fixed across the whole AVRe class: addresses
// 0x20..0x5f in the unified data space.
const NumIORegisters = 64

// GPRegBase and IORegBase are the unified data-address-space offsets at
// which the general purpose registers and I/O registers begin.
const (
	GPRegBase = 0x0000
	IORegBase = 0x0020
	SRAMBase  = 0x0060
)

// SREGAddr is the unified data-address-space address of the status
// register image.
const SREGAddr = 0x005F

// SPLAddr and SPHAddr are the stack pointer's low/high byte addresses
// in the unified data space (I/O offsets 0x3d and 0x3e).
const (
	SPLAddr = 0x005D
	SPHAddr = 0x005E
)

// DataMemSize returns the total size of the unified data address space
// for this variant: general purpose registers + I/O registers + SRAM.
func (v Variant) DataMemSize() int {
	return NumGPRegisters + NumIORegisters + v.SRAMSize
}
