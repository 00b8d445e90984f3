// Package midi implements the Standard-MIDI-style event stream reader: the
// 16-entry channel table, the running-status byte-stream interpreter, and
// the fade envelope that ramps master volume in and out.
package midi

// NumChannels is the number of addressable MIDI channels. The low nibble of
// a status byte selects one of 16 channels; an earlier revision of this
// driver declared only 15 entries, which is corrected here.
const NumChannels = 16

// PercussionChannel is the MIDI channel routed to the rhythm-mode
// percussion path rather than the melodic voice allocator.
const PercussionChannel = 9

// Channel holds the per-MIDI-channel state the interpreter mutates while
// playing: program, volume and sustain-pedal state.
type Channel struct {
	Program byte
	Volume  byte
	Pedal   bool
}

// NewChannels returns all 16 channels at their default reset state: program
// 0, volume 127 (full), pedal off.
func NewChannels() [NumChannels]Channel {
	var ch [NumChannels]Channel
	for i := range ch {
		ch[i] = Channel{Program: 0, Volume: 127, Pedal: false}
	}
	return ch
}
