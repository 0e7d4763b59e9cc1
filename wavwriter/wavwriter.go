// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter saves the beeps of a session to a WAV file. It is an
// alternative implementation of the chip8.Beeper interface, useful for
// testing the sound timer behaviour of a ROM.
package wavwriter

import (
	"os"
	"time"

	"github.com/jetsetilly/gopher8/curated"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	sampleFreq = 44100
	beepFreq   = 440
)

// WavWriter implements the chip8.Beeper interface. Beep on/off transitions
// are recorded with wall-clock timestamps and rendered to a square wave when
// the session ends.
type WavWriter struct {
	filename string
	start    time.Time
	beeping  bool

	// offsets into the session, in samples, at which the beeping state
	// flipped
	transitions []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
		start:    time.Now(),
	}
}

// SetBeeping implements the chip8.Beeper interface.
func (aw *WavWriter) SetBeeping(beeping bool) error {
	if beeping == aw.beeping {
		return nil
	}
	aw.beeping = beeping
	aw.transitions = append(aw.transitions, aw.sampleOffset())
	return nil
}

// EndBeeping implements the chip8.Beeper interface. The recorded session is
// rendered and written to the WAV file.
func (aw *WavWriter) EndBeeping() error {
	if aw.beeping {
		aw.beeping = false
		aw.transitions = append(aw.transitions, aw.sampleOffset())
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.render(),
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

func (aw *WavWriter) sampleOffset() int {
	return int(time.Since(aw.start).Seconds() * sampleFreq)
}

// render the transition list as samples. silence between transitions at even
// indexes, a square wave between transitions at odd indexes.
func (aw *WavWriter) render() []int {
	if len(aw.transitions) == 0 {
		return []int{}
	}

	data := make([]int, aw.transitions[len(aw.transitions)-1])
	for i := range data {
		data[i] = 128
	}

	period := sampleFreq / beepFreq
	for i := 0; i < len(aw.transitions)-1; i += 2 {
		for s := aw.transitions[i]; s < aw.transitions[i+1]; s++ {
			if (s/(period/2))%2 == 0 {
				data[s] = 152
			}
		}
	}

	return data
}
