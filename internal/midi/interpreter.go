package midi

import "github.com/cbegin/oplrhythm-go/internal/opl"

// Status values for the channel event switch, i.e. the high nibble of a
// non-meta status byte.
const (
	statusNoteOff         = 0x8
	statusNoteOn          = 0x9
	statusPolyAftertouch  = 0xA
	statusController      = 0xB
	statusProgramChange   = 0xC
	statusChannelAftertch = 0xD
	statusPitchBend       = 0xE
)

const (
	controllerModulation  = 1
	controllerVolume      = 7
	controllerPedal       = 4
	controllerAllNotesOff = 123
)

const metaEventStatus = 0xFF
const metaTempoType = 0x51

// headerSize is the byte offset of the first delta-time record: a 4-byte
// signature, one tempo byte, and a 16-bit division word.
const headerSize = 7

// pitchBendThreshold is the 14-bit pitch-bend center value. It mirrors the
// opl package's unexported constant of the same name; the re-centering itself
// happens in opl.Driver.PitchBend, and this package does not use it.
const pitchBendThreshold = 8192

// EndSignal reports what happened when Advance reached the end of the
// buffer: none, looped back to the start, or hit a genuine end with no loop.
type EndSignal int

const (
	EndNone EndSignal = iota
	EndLooped
	EndStopped
)

// Interpreter walks a Standard-MIDI-style byte buffer: a 4-byte signature,
// a tempo byte, a 16-bit PPQN division, then delta+status event records. It
// owns the 16-entry channel table and the running-status cursor, and drives
// an opl.Driver as it dispatches channel events.
type Interpreter struct {
	Channels [NumChannels]Channel

	Buffer []byte
	pos    int

	EventDelta    uint16
	EventType     byte
	LastEventType byte

	Tempo     byte
	Division  uint16
	Timestamp int64

	Volume byte // master volume, 0..127
	Loop   bool
}

// NewInterpreter returns an interpreter with default channel state and no
// buffer loaded.
func NewInterpreter() *Interpreter {
	return &Interpreter{
		Channels: NewChannels(),
		Volume:   127,
	}
}

func (in *Interpreter) readByte() byte {
	if in.pos >= len(in.Buffer) {
		return 0
	}
	b := in.Buffer[in.pos]
	in.pos++
	return b
}

func (in *Interpreter) readWord() uint16 {
	lo := in.readByte()
	hi := in.readByte()
	return uint16(lo) | uint16(hi)<<8
}

func (in *Interpreter) exhausted() bool {
	return in.pos >= len(in.Buffer)
}

// Load installs a new buffer and resets the cursor to the start of the
// event stream: signature skipped, tempo and division read, and the first
// delta/status record primed.
func (in *Interpreter) Load(buf []byte) {
	in.Buffer = buf
	in.pos = 4
	in.Tempo = in.readByte()
	in.Division = in.readWord()
	if in.Division > 255 {
		in.Division = 192
	}
	in.EventDelta = in.readWord()
	in.EventType = in.readByte()
	in.LastEventType = 0
	in.Timestamp = 0
}

// rewind returns the cursor to offset 7 (past signature, tempo and
// division) and re-primes the first delta/status record, for looped
// playback.
func (in *Interpreter) rewind() {
	in.pos = headerSize
	in.EventDelta = in.readWord()
	in.EventType = in.readByte()
}

// TickRate returns ticks-per-second for the current tempo and division,
// used by the caller to reprogram the host's periodic timer.
func (in *Interpreter) TickRate() uint32 {
	return (uint32(in.Tempo) * uint32(in.Division)) / 60
}

// Advance runs the event-dispatch portion of a single driver tick: bump the
// timestamp, decrement the pending delta, and if it reaches zero, dispatch
// every zero-delta event back to back until a non-zero delta is read or the
// buffer ends. At the end of the buffer it either rewinds (Loop set) and
// returns EndLooped, or returns EndStopped. Fade handling is the caller's
// responsibility and happens before Advance is called.
func (in *Interpreter) Advance(driver *opl.Driver) EndSignal {
	in.Timestamp++
	for {
		if in.exhausted() {
			if in.Loop {
				in.rewind()
				return EndLooped
			}
			return EndStopped
		}

		if in.EventDelta != 0 {
			in.EventDelta--
			return EndNone
		}

		if in.EventType == metaEventStatus {
			in.processMeta()
			in.EventDelta = in.readWord()
			in.EventType = in.readByte()
			continue
		}

		if in.EventType&0x80 == 0 {
			// Running status: the byte we just read was data, not a
			// status byte. Back up and reuse the last status.
			in.pos--
			in.EventType = in.LastEventType
		}

		in.processChannelEvent(driver)
		in.LastEventType = in.EventType
		in.EventDelta = in.readWord()
		in.EventType = in.readByte()
	}
}

func (in *Interpreter) processMeta() {
	metaType := in.readByte()
	length := in.readByte()

	if metaType == metaTempoType {
		v0 := in.readByte()
		v1 := in.readByte()
		v2 := in.readByte()
		microsPerQuarter := uint32(v0)<<16 | uint32(v1)<<8 | uint32(v2)
		if microsPerQuarter != 0 {
			in.Tempo = byte(60000000 / microsPerQuarter)
		}
		return
	}

	for i := byte(0); i < length; i++ {
		in.readByte()
	}
}

func (in *Interpreter) processChannelEvent(driver *opl.Driver) {
	channel := int(in.EventType & 0x0F)
	event := in.EventType >> 4

	switch event {
	case statusNoteOn:
		note := int(in.readByte())
		rawVelocity := in.readByte()
		if rawVelocity == 0 {
			in.turnOff(driver, channel, note)
			return
		}
		in.turnOn(driver, channel, note, rawVelocity)

	case statusNoteOff:
		note := int(in.readByte())
		in.readByte() // release velocity, unused
		in.turnOff(driver, channel, note)

	case statusPolyAftertouch:
		in.readByte()
		in.readByte()

	case statusProgramChange:
		in.Channels[channel].Program = in.readByte()

	case statusChannelAftertch:
		in.readByte()

	case statusPitchBend:
		lsb := in.readByte()
		msb := in.readByte()
		amount := int(msb)<<7 | int(lsb)
		driver.PitchBend(channel, amount, in.Timestamp)

	case statusController:
		in.processController(driver, channel)
	}
}

func (in *Interpreter) processController(driver *opl.Driver, channel int) {
	number := in.readByte()
	value := in.readByte()

	switch number {
	case controllerModulation:
		driver.Modulation(value)
	case controllerVolume:
		in.Channels[channel].Volume = value
	case controllerPedal:
		in.Channels[channel].Pedal = value >= 64
	case controllerAllNotesOff:
		driver.MuteAllVoices()
	}
}

func (in *Interpreter) turnOn(driver *opl.Driver, channel, note int, rawVelocity byte) {
	ch := &in.Channels[channel]
	velocity := opl.ScaleVelocity(in.Volume, rawVelocity)
	if channel == PercussionChannel {
		driver.OnOffPercussion(note, true, velocity, ch.Volume)
		return
	}
	driver.TurnOnMelodic(channel, int(ch.Program), note, velocity, ch.Volume, in.Timestamp)
}

func (in *Interpreter) turnOff(driver *opl.Driver, channel, note int) {
	ch := &in.Channels[channel]
	if channel == PercussionChannel {
		driver.OnOffPercussion(note, false, 0, 0)
		return
	}
	driver.TurnOffMelodic(channel, note, ch.Pedal)
}
