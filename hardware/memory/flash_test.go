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

	"github.com/attiny85sim/atsim85/hardware/memory"
	"github.com/attiny85sim/atsim85/test"
)

func TestFlashLoadLittleEndian(t *testing.T) {
	f := memory.NewFlashMemory(8192)
	f.Load([]byte{0x0e, 0xc0, 0x33, 0x44})

	test.Equate(t, f.Word(0), 0xc00e)
	test.Equate(t, f.Word(1), 0x4433)
	test.Equate(t, f.Word(2), 0)
}

func TestFlashByteAccess(t *testing.T) {
	f := memory.NewFlashMemory(8192)
	f.SetWord(512, 0x4433)

	// byte address 1024 is the low byte of word 512
	test.Equate(t, f.Byte(1024), 0x33)
	test.Equate(t, f.Byte(1025), 0x44)
}

func TestFlashOddLengthImage(t *testing.T) {
	f := memory.NewFlashMemory(8192)
	f.Load([]byte{0x11, 0x22, 0x33})

	test.Equate(t, f.Word(0), 0x2211)

	// the trailing high byte of the final word is left zero
	test.Equate(t, f.Word(1), 0x0033)
}

func TestFlashOversizeImage(t *testing.T) {
	f := memory.NewFlashMemory(4)
	f.Load([]byte{0x11, 0x22, 0x33, 0x44, 0x55, 0x66})

	// excess bytes are ignored
	test.Equate(t, f.Word(0), 0x2211)
	test.Equate(t, f.Word(1), 0x4433)
	test.Equate(t, f.Words(), 2)
}

func TestFlashReload(t *testing.T) {
	f := memory.NewFlashMemory(8192)
	f.Load([]byte{0x11, 0x22, 0x33, 0x44})
	f.Load([]byte{0x55, 0x66})

	// a reload clears everything the previous image wrote
	test.Equate(t, f.Word(0), 0x6655)
	test.Equate(t, f.Word(1), 0)
}
