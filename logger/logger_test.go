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

package logger_test

import (
	"testing"

	"github.com/attiny85sim/atsim85/logger"
)

func TestDeduplication(t *testing.T) {
	logger.Clear()

	logger.Log("decode", "unrecognised opcode 0xffff")
	logger.Log("decode", "unrecognised opcode 0xffff")
	logger.Log("decode", "unrecognised opcode 0xffff")

	tail := logger.Tail(0)
	if len(tail) != 1 {
		t.Fatalf("expected repeated entries to collapse, got %d entries", len(tail))
	}
	if tail[0].Repeated != 3 {
		t.Errorf("expected repeated count of 3, got %d", tail[0].Repeated)
	}
}

func TestDistinctEntriesDoNotCollapse(t *testing.T) {
	logger.Clear()

	logger.Log("decode", "unrecognised opcode 0xffff")
	logger.Log("stack", "sp below SRAM window")

	tail := logger.Tail(0)
	if len(tail) != 2 {
		t.Fatalf("expected 2 distinct entries, got %d", len(tail))
	}
}

func TestTailLimitsCount(t *testing.T) {
	logger.Clear()

	for i := 0; i < 5; i++ {
		logger.Logf("test", "entry %d", i)
	}

	tail := logger.Tail(2)
	if len(tail) != 2 {
		t.Fatalf("expected Tail(2) to return 2 entries, got %d", len(tail))
	}
	if tail[1].Detail != "entry 4" {
		t.Errorf("expected last entry to be most recent, got %q", tail[1].Detail)
	}
}
