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

// Package logger is a small process-wide log, used for the handful of
// conditions the simulator recovers from silently but still wants a
// trace of: an unrecognised opcode, a stack pointer that has wandered
// below the valid SRAM window, and so on. It never panics and never
// writes to stderr directly -- Tail() is how a caller inspects it.
package logger

import (
	"fmt"
	"sync"
)

// Entry is one log line. Consecutive identical entries against the same
// tag collapse into a single Entry with a growing Repeated count,
// rather than flooding the log.
type Entry struct {
	Tag      string
	Detail   string
	Repeated int
}

func (e Entry) String() string {
	if e.Repeated > 1 {
		return fmt.Sprintf("%s: %s (x%d)", e.Tag, e.Detail, e.Repeated)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Detail)
}

var (
	mu      sync.Mutex
	entries []Entry
	echo    bool
)

// SetEcho controls whether every logged entry is also printed to
// stdout as it arrives, in addition to being retained for Tail().
func SetEcho(v bool) {
	mu.Lock()
	defer mu.Unlock()
	echo = v
}

// Log records a pre-formatted detail string against tag.
func Log(tag, detail string) {
	mu.Lock()
	defer mu.Unlock()

	if n := len(entries); n > 0 && entries[n-1].Tag == tag && entries[n-1].Detail == detail {
		entries[n-1].Repeated++
	} else {
		entries = append(entries, Entry{Tag: tag, Detail: detail, Repeated: 1})
	}

	if echo {
		fmt.Println(entries[len(entries)-1].String())
	}
}

// Logf records a formatted detail string against tag.
func Logf(tag, format string, args ...interface{}) {
	Log(tag, fmt.Sprintf(format, args...))
}

// Tail returns the most recent n entries, oldest first. A count of zero
// or less returns every entry retained.
func Tail(n int) []Entry {
	mu.Lock()
	defer mu.Unlock()

	if n <= 0 || n > len(entries) {
		n = len(entries)
	}
	out := make([]Entry, n)
	copy(out, entries[len(entries)-n:])
	return out
}

// Clear discards every retained entry. Mostly useful between test runs.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	entries = nil
}
