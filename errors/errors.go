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

package errors

import "fmt"

// Errno identifies one of the categories main.go switches on to decide
// an exit code.
type Errno int

// Values holds the arguments for a CategorisedError's message.
type Values []interface{}

// CategorisedError is the enum-tagged error type. It exists alongside
// curated's freeform errors for the same reason the pattern is split in
// two: main.go needs a stable category to switch on for a handful of
// startup conditions, and a fixed enum is the simplest way to give it
// one.
type CategorisedError struct {
	Errno  Errno
	Values Values
}

// New creates a CategorisedError of the given category.
func New(errno Errno, values ...interface{}) CategorisedError {
	return CategorisedError{Errno: errno, Values: values}
}

func (e CategorisedError) Error() string {
	return fmt.Sprintf(messages[e.Errno], e.Values...)
}

// Is reports whether err is a CategorisedError of category errno.
func Is(err error, errno Errno) bool {
	ce, ok := err.(CategorisedError)
	return ok && ce.Errno == errno
}
