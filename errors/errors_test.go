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

package errors_test

import (
	"testing"

	"github.com/attiny85sim/atsim85/errors"
)

func TestError(t *testing.T) {
	e := errors.New(errors.ImageOpenError, "blink.bin", "no such file")
	if e.Error() != "cannot open program image (blink.bin): no such file" {
		t.Errorf("unexpected error message: %s", e.Error())
	}

	if !errors.Is(e, errors.ImageOpenError) {
		t.Errorf("error does not match its own category")
	}
	if errors.Is(e, errors.ArgumentError) {
		t.Errorf("error matches the wrong category")
	}
}

func TestCategoryOfForeignError(t *testing.T) {
	if errors.Is(errForeign{}, errors.ArgumentError) {
		t.Errorf("foreign error type matched a category")
	}
}

type errForeign struct{}

func (errForeign) Error() string { return "foreign" }
