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

package usi

import (
	"os"

	"github.com/attiny85sim/atsim85/curated"
	"github.com/attiny85sim/atsim85/logger"
	"github.com/youpy/go-wav"
)

// sampleRate and samplesPerBit fix the sonifier's audio format: every
// shifted-out bit becomes a fixed-length square-wave burst, long enough
// to be audible at sampleRate without sounding like static.
const (
	sampleRate    = 8000
	samplesPerBit = 200

	highPeriod = 10 // samples per half-cycle for a shifted '1' bit
	lowPeriod  = 20 // samples per half-cycle for a shifted '0' bit
)

// Sonifier renders every byte shifted out of the USI as eight
// square-wave bursts -- one per bit, most significant first -- and
// writes the accumulated audio to a WAV file on Close. Attach it to a
// Shifter with OnByte; it never touches architectural state.
type Sonifier struct {
	filename string
	buffer   []wav.Sample
}

// NewSonifier returns a Sonifier that will write to filename on Close.
func NewSonifier(filename string) *Sonifier {
	return &Sonifier{filename: filename}
}

// AppendByte renders one shifted-out byte into the audio buffer. It is
// the function to hand to Shifter.OnByte.
func (s *Sonifier) AppendByte(b byte) {
	for bit := 7; bit >= 0; bit-- {
		high := b&(1<<uint(bit)) != 0
		period := lowPeriod
		if high {
			period = highPeriod
		}
		s.appendSquareWave(period)
	}
}

func (s *Sonifier) appendSquareWave(period int) {
	high := false
	for i := 0; i < samplesPerBit; i++ {
		if i%period == 0 {
			high = !high
		}
		// 8-bit WAV samples are unsigned, centred on 128
		v := 32
		if high {
			v = 224
		}
		s.buffer = append(s.buffer, wav.Sample{Values: [2]int{v, v}})
	}
}

// Close flushes the accumulated audio to the sonifier's WAV file. It is
// a no-op, successfully, if no bytes were ever shifted out.
func (s *Sonifier) Close() (rerr error) {
	if len(s.buffer) == 0 {
		return nil
	}

	f, err := os.Create(s.filename)
	if err != nil {
		return curated.Errorf("usi: sonifier: %v", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && rerr == nil {
			rerr = curated.Errorf("usi: sonifier: %v", cerr)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(s.buffer)), 1, sampleRate, 8)
	if enc == nil {
		return curated.Errorf("usi: sonifier: bad parameters for wav encoding")
	}

	logger.Logf("usi", "writing %d samples to %s", len(s.buffer), s.filename)
	enc.WriteSamples(s.buffer)
	return nil
}
