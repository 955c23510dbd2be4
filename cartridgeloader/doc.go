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

// Package cartridgeloader is used to specify the program image that is
// to be loaded into the simulated part's flash.
//
// When the image is ready to be loaded the Load() function should be
// used. Load() handles the two supported sources: a raw binary image
// (bytes copied straight into flash, little-endian within each word)
// and a cassette recording (a WAV or MP3 file whose audio encodes the
// program bytes as square-wave pulses, the same format the USI sonifier
// emits).
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "images/blink.bin",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function will set the format field automatically
// according to the filename extension.
package cartridgeloader
