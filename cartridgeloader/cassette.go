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
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/attiny85sim/atsim85/logger"
)

// tag string used in calls to Log().
const cassetteLogTag = "cartridgeloader: cassette"

// The cassette audio format. One program byte is eight bits, most
// significant first; one bit is bitWindow samples of square wave. A '1'
// bit uses a short half-cycle and so crosses zero often inside its
// window, a '0' bit uses a half-cycle twice as long and crosses half as
// often. crossingThreshold sits between the two counts.
const (
	bitWindow         = 200
	crossingThreshold = 15
)

// decodeCassette recovers program bytes from an audio recording. The
// source file may be WAV or MP3; either way the samples are reduced to
// one channel before the pulse-length decode.
func decodeCassette(f io.ReadSeeker, filename string) ([]byte, error) {
	samples, err := getPCM(f, filename)
	if err != nil {
		return nil, err
	}

	logger.Logf(cassetteLogTag, "%d samples, %d bit windows", len(samples), len(samples)/bitWindow)

	var data []byte
	var acc uint8
	var nbits int

	for start := 0; start+bitWindow <= len(samples); start += bitWindow {
		crossings := 0
		for i := start + 1; i < start+bitWindow; i++ {
			if (samples[i] >= 0) != (samples[i-1] >= 0) {
				crossings++
			}
		}

		acc <<= 1
		if crossings >= crossingThreshold {
			acc |= 1
		}

		nbits++
		if nbits == 8 {
			data = append(data, acc)
			acc = 0
			nbits = 0
		}
	}

	logger.Logf(cassetteLogTag, "%d bytes recovered", len(data))

	return data, nil
}

// getPCM reads every sample from an audio file, keeping only the first
// channel of a multi-channel recording.
func getPCM(f io.ReadSeeker, filename string) ([]float32, error) {
	var data []float32

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if dec == nil {
			return nil, fmt.Errorf("wav: error decoding")
		}

		if !dec.IsValidFile() {
			return nil, fmt.Errorf("wav: not a valid wav file")
		}

		logger.Log(cassetteLogTag, "loading from wav file")

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, fmt.Errorf("wav: %v", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// copy first channel only of data stream
		data = make([]float32, 0, len(floatBuf.Data)/int(dec.NumChans))
		for i := 0; i < len(floatBuf.Data); i += int(dec.NumChans) {
			data = append(data, floatBuf.Data[i])
		}

		// 8-bit WAV data decodes as unsigned; recentre on zero so the
		// crossing count below means what it says
		if dec.BitDepth == 8 {
			for i := range data {
				data[i] -= 128
			}
		}

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return nil, fmt.Errorf("mp3: %v", err)
		}

		logger.Log(cassetteLogTag, "loading from mp3 file")

		err = nil
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("mp3: %v", err)
			}

			// index increment of 4 because:
			//  - two bytes per sample per channel
			//  - we only want the left channel
			for i := 0; i+1 < chunkLen; i += 4 {
				// little endian 16 bit sample
				v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				data = append(data, float32(v))
			}
		}

	default:
		return nil, fmt.Errorf("cassette: unsupported audio file (%s)", filepath.Ext(filename))
	}

	return data, nil
}
