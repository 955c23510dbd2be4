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

// EEPROM is a plain byte-addressable store. It has no special-cased
// addresses and no programming-sequence semantics (no EEPE/EEMPE
// handshake) -- just storage, per scope.
type EEPROM struct {
	bytes []uint8
}

// NewEEPROM allocates a zeroed EEPROM of the given size.
func NewEEPROM(size int) *EEPROM {
	return &EEPROM{bytes: make([]uint8, size)}
}

func (e *EEPROM) Get(addr uint16) uint8 {
	if int(addr) >= len(e.bytes) {
		return 0
	}
	return e.bytes[addr]
}

func (e *EEPROM) Set(addr uint16, v uint8) {
	if int(addr) < len(e.bytes) {
		e.bytes[addr] = v
	}
}

func (e *EEPROM) Size() int { return len(e.bytes) }
