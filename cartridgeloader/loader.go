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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/attiny85sim/atsim85/curated"
	"github.com/attiny85sim/atsim85/errors"
)

// Loader is used to specify the program image to load into the
// simulated part's flash. It also permits the caller to force the image
// format (fingerprinting by file extension is usually good enough).
type Loader struct {
	// filename of program image to load.
	Filename string

	// one of the Format* values. empty string or "AUTO" indicates
	// fingerprinting by file extension
	Format string

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation
	// the value will be the hash of the loaded data
	//
	// in the case of cassette data the hash is of the decoded program
	// bytes, not the original audio file
	Hash string

	// copy of the loaded data. subsequent calls to Load() will return
	// this data
	Data []byte
}

// Available image formats.
const (
	FormatAuto     = "AUTO"
	FormatRaw      = "RAW"
	FormatCassette = "CASSETTE"
)

// NewLoader is the preferred method of initialisation for the Loader
// type.
//
// The format argument will be used to set the Format field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field: .wav and .mp3 files load as
// cassette audio, everything else as a raw image.
//
// Alphabetic characters in file extensions can be in upper or lower
// case or a mixture of both.
func NewLoader(filename string, format string) Loader {
	cl := Loader{
		Filename: filename,
		Format:   FormatRaw,
	}

	format = strings.TrimSpace(strings.ToUpper(format))
	if format != FormatAuto && format != "" {
		cl.Format = format
		return cl
	}

	switch strings.ToUpper(path.Ext(filename)) {
	case ".WAV", ".MP3":
		cl.Format = FormatCassette
	default:
		cl.Format = FormatRaw
	}

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the program image and make it available through the Data field.
// A short file is valid -- the unwritten remainder of flash stays zero
// -- but an image larger than maxSize bytes is an error.
func (cl *Loader) Load(maxSize int) error {
	if len(cl.Data) > 0 {
		return nil
	}

	f, err := os.Open(cl.Filename)
	if err != nil {
		return errors.New(errors.ImageOpenError, cl.Filename, err)
	}
	defer f.Close()

	switch cl.Format {
	case FormatRaw:
		cfi, err := f.Stat()
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

		cl.Data = make([]byte, cfi.Size())
		if _, err := f.Read(cl.Data); err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case FormatCassette:
		cl.Data, err = decodeCassette(f, cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported image format (%s)", cl.Format))
	}

	if len(cl.Data) > maxSize {
		return errors.New(errors.ImageTooLarge, len(cl.Data), maxSize)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}
