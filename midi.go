// midi.go - MIDI event translator: NOTE_ON/NOTE_OFF/PITCH_BEND/CC -> Engine

package main

import (
	"fmt"
	"math"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// noteFrequency returns the standard MIDI equal-temperament frequency
// for note, per spec §4.9: f(n) = 440*2^((n-69)/12).
func noteFrequency(note uint8) float64 {
	return MIDIA4Freq * math.Pow(2, (float64(note)-MIDIA4Note)/12)
}

// cutoffFromCC7 maps a volume CC (data2 in [0,127]) to a low-pass cutoff
// in [midiMinFreq, midiMaxFreq], per spec §4.9:
// 80*(12000/80)^(data2/127).
func cutoffFromCC7(data2 uint8) float64 {
	t := float64(data2) / 127
	return midiMinFreq * math.Pow(midiMaxFreq/midiMinFreq, t)
}

// MIDITranslator consumes gomidi messages and drives an Engine, per
// spec §4.9. Grounded on midi-mixer's midi.Handler: the same
// ListenTo/stopFunc lifecycle and rtmididrv import, but dispatching to
// Engine note/pitch-bend/cutoff calls instead of forwarding a CC channel.
type MIDITranslator struct {
	mu       sync.Mutex
	engine   *Engine
	inPort   drivers.In
	stopFunc func()
}

func init() {
	compiledFeatures = append(compiledFeatures, "midi: gomidi/rtmididrv")
}

// NewMIDITranslator returns a translator bound to engine. Connect must
// be called separately to open a port and begin listening.
func NewMIDITranslator(engine *Engine) *MIDITranslator {
	return &MIDITranslator{engine: engine}
}

// ListInputPorts returns the available MIDI input ports.
func ListInputPorts() []drivers.In {
	return midi.GetInPorts()
}

// Connect opens inPort and starts listening for messages on it,
// dispatching each to HandleMessage. Per spec §4.10, a host device that
// cannot be opened is a HostError surfaced to the caller, never the
// audio callback.
func (t *MIDITranslator) Connect(inPort drivers.In) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopFunc != nil {
		t.stopFunc()
		t.stopFunc = nil
	}

	stop, err := midi.ListenTo(inPort, t.handle, midi.UseSysEx())
	if err != nil {
		return fmt.Errorf("midi: failed to listen on input port: %w", err)
	}

	t.inPort = inPort
	t.stopFunc = stop
	return nil
}

// Close stops listening and releases the input port.
func (t *MIDITranslator) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopFunc != nil {
		t.stopFunc()
		t.stopFunc = nil
	}
	t.inPort = nil
}

// handle is the gomidi callback. Runs on the MIDI input thread, per
// spec §5's third cooperating thread; calls the same Engine setters the
// UI thread would.
func (t *MIDITranslator) handle(msg midi.Message, timestampms int32) {
	var ch, key, velocity uint8
	if msg.GetNoteOn(&ch, &key, &velocity) {
		if velocity == 0 {
			freq := noteFrequency(key)
			t.engine.TriggerNoteOff(&freq)
		} else {
			t.engine.TriggerNote(noteFrequency(key))
		}
		return
	}

	if msg.GetNoteOff(&ch, &key, &velocity) {
		freq := noteFrequency(key)
		t.engine.TriggerNoteOff(&freq)
		return
	}

	var relative int16
	var absolute uint16
	if msg.GetPitchBend(&ch, &relative, &absolute) {
		t.engine.SetPitchBend(int(relative))
		return
	}

	var controller, value uint8
	if msg.GetControlChange(&ch, &controller, &value) {
		if controller == MIDIVolumeCC {
			t.engine.SetLowPassCutoff(cutoffFromCC7(value))
		}
		return
	}
}

// HandleMessage exposes the dispatch logic directly, for callers (tests,
// a sequencer input mode) that construct midi.Message values without
// going through a live port.
func (t *MIDITranslator) HandleMessage(msg midi.Message) {
	t.handle(msg, 0)
}
