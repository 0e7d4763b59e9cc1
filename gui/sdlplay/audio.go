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

package sdlplay

import (
	"sync"

	"github.com/jetsetilly/gopher8/curated"

	"github.com/veandco/go-sdl2/sdl"
)

const (
	sampleFreq = 44100

	// the pitch of the beep. something close to the tone a real buzzer makes
	beepFreq = 440

	// the amount of audio queued at a time. a quarter of a second is plenty,
	// the queue is topped up every Service() call
	queueLen = sampleFreq / 4
)

// beeper is an implementation of the chip8.Beeper interface using the SDL
// audio device.
//
// SetBeeping() and EndBeeping() can be called from any goroutine but
// service() must only be called from the main goroutine.
type beeper struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// one full period of a square wave, queued repeatedly while beeping
	wave []byte

	crit    sync.Mutex
	beeping bool
}

func newBeeper() (*beeper, error) {
	snd := &beeper{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	var actualSpec sdl.AudioSpec

	snd.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	snd.spec = actualSpec

	// build the square wave from the sample frequency the device actually
	// gave us
	period := int(snd.spec.Freq) / beepFreq
	snd.wave = make([]byte, period)
	for i := 0; i < period/2; i++ {
		snd.wave[i] = snd.spec.Silence + 24
	}
	for i := period / 2; i < period; i++ {
		snd.wave[i] = snd.spec.Silence
	}

	// the device opens in the paused state and stays there until the sound
	// timer asks for a beep
	return snd, nil
}

// SetBeeping implements the chip8.Beeper interface.
func (snd *beeper) SetBeeping(beeping bool) error {
	snd.crit.Lock()
	defer snd.crit.Unlock()

	if snd.beeping == beeping {
		return nil
	}
	snd.beeping = beeping

	if beeping {
		if err := snd.queue(); err != nil {
			return err
		}
		sdl.PauseAudioDevice(snd.id, false)
		return nil
	}

	sdl.PauseAudioDevice(snd.id, true)
	sdl.ClearQueuedAudio(snd.id)
	return nil
}

// EndBeeping implements the chip8.Beeper interface.
func (snd *beeper) EndBeeping() error {
	snd.crit.Lock()
	defer snd.crit.Unlock()

	snd.beeping = false
	sdl.CloseAudioDevice(snd.id)
	return nil
}

// keep the audio queue topped up while the beep is playing.
//
// MUST ONLY be called from the main goroutine.
func (snd *beeper) service() {
	snd.crit.Lock()
	defer snd.crit.Unlock()

	if !snd.beeping {
		return
	}
	_ = snd.queue()
}

func (snd *beeper) queue() error {
	for sdl.GetQueuedAudioSize(snd.id) < queueLen {
		if err := sdl.QueueAudio(snd.id, snd.wave); err != nil {
			return curated.Errorf("sdlplay: %v", err)
		}
	}
	return nil
}
