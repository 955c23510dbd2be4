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

package cartridgeloader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/attiny85sim/atsim85/cartridgeloader"
	"github.com/attiny85sim/atsim85/errors"
	"github.com/attiny85sim/atsim85/peripherals/usi"
	"github.com/attiny85sim/atsim85/test"
)

func TestFormatFingerprinting(t *testing.T) {
	cl := cartridgeloader.NewLoader("blink.bin", "AUTO")
	test.Equate(t, cl.Format, cartridgeloader.FormatRaw)

	cl = cartridgeloader.NewLoader("blink.WAV", "")
	test.Equate(t, cl.Format, cartridgeloader.FormatCassette)

	cl = cartridgeloader.NewLoader("blink.mp3", "")
	test.Equate(t, cl.Format, cartridgeloader.FormatCassette)

	// a forced format beats the extension
	cl = cartridgeloader.NewLoader("blink.wav", "RAW")
	test.Equate(t, cl.Format, cartridgeloader.FormatRaw)
}

func TestShortName(t *testing.T) {
	cl := cartridgeloader.NewLoader("images/blink.bin", "AUTO")
	test.Equate(t, cl.ShortName(), "blink")
}

func TestRawLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "blink.bin")
	image := []byte{0x0e, 0xc0, 0xff, 0xcf}
	if err := os.WriteFile(fn, image, 0o644); err != nil {
		t.Fatal(err)
	}

	cl := cartridgeloader.NewLoader(fn, "AUTO")
	test.ExpectedSuccess(t, cl.Load(8192))
	test.Equate(t, cl.HasLoaded(), true)

	if !bytes.Equal(cl.Data, image) {
		t.Errorf("loaded data does not match image")
	}

	if cl.Hash == "" {
		t.Errorf("no hash generated for loaded image")
	}
}

func TestImageOpenError(t *testing.T) {
	cl := cartridgeloader.NewLoader("no-such-file.bin", "AUTO")
	err := cl.Load(8192)
	test.ExpectedFailure(t, err)
	if !errors.Is(err, errors.ImageOpenError) {
		t.Errorf("expected ImageOpenError, got: %v", err)
	}
}

func TestImageTooLarge(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "big.bin")
	if err := os.WriteFile(fn, make([]byte, 16), 0o644); err != nil {
		t.Fatal(err)
	}

	cl := cartridgeloader.NewLoader(fn, "AUTO")
	err := cl.Load(8)
	test.ExpectedFailure(t, err)
	if !errors.Is(err, errors.ImageTooLarge) {
		t.Errorf("expected ImageTooLarge, got: %v", err)
	}
}

// the cassette loader decodes the audio format the USI sonifier emits,
// so a sonifier recording loads back as the bytes that were shifted
// out.
func TestCassetteRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tape.wav")

	s := usi.NewSonifier(fn)
	for _, b := range []byte("Hi!") {
		s.AppendByte(b)
	}
	test.ExpectedSuccess(t, s.Close())

	cl := cartridgeloader.NewLoader(fn, "AUTO")
	test.ExpectedSuccess(t, cl.Load(8192))

	if !bytes.Equal(cl.Data, []byte("Hi!")) {
		t.Errorf("cassette round trip failed: got %q", cl.Data)
	}
}
