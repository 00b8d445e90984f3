package opl

// Driver turns note/controller-level requests into the sequenced OPL
// register writes described by the rhythm-mode protocol. It owns no MIDI
// parsing; the caller (the interpreter) hands it already-decoded channel,
// program, note, velocity and channel-volume values.
type Driver struct {
	Emitter *Emitter
	Pool    *Pool
}

// NewDriver builds a driver over an emitter and voice pool. Both are owned
// by the caller, matching the flat ownership model: the driver never
// allocates its own emitter or pool.
func NewDriver(e *Emitter, p *Pool) *Driver {
	return &Driver{Emitter: e, Pool: p}
}

// Init establishes OPL2 rhythm mode, clears every hardware voice's
// A0/B0/C0 registers and writes the default percussion mask.
func (d *Driver) Init() {
	d.Emitter.InitRhythmMode()
}

func noteOctaveIndex(note int) (octave byte, fIndex int) {
	oct := note / 12
	if oct > 7 {
		oct = 7
	}
	return byte(oct), 12 + note%12
}

func (d *Driver) programMelodicVoice(voice byte, program int) {
	prg := &melodicPrograms[program]
	offset1 := operator1OffsetForMelodic[voice]
	offset2 := operator2OffsetForMelodic[voice]

	d.Emitter.Write(0x40+offset1, maximumLevel)
	d.Emitter.Write(0x40+offset2, maximumLevel)

	d.muteMelodicVoice(voice)

	d.Emitter.ProgramOperator(offset1, prg.Op[0])
	d.Emitter.ProgramOperator(offset2, prg.Op[1])
	d.Emitter.SetFeedbackAlgorithm(voice, prg.FeedbackAlgo)
}

func (d *Driver) muteMelodicVoice(voice byte) {
	v := &d.Pool.Voices[voice]
	d.Emitter.WriteFrequency(voice, v.Octave, v.FNumber, false)
}

func (d *Driver) playMelodicNote(voice byte, channel, program, note int, velocity, channelVolume byte, timestamp int64) {
	octave, fIndex := noteOctaveIndex(note)
	prg := &melodicPrograms[program]

	if prg.FeedbackAlgo&1 == 1 {
		// additive algorithm: both operators are carriers.
		lvl1 := ComposeLevel(velocity, prg.Op[0].Levels&levelMask, channelVolume)
		d.Emitter.SetOperatorLevel(operator1OffsetForMelodic[voice], prg.Op[0], lvl1)
		lvl2 := ComposeLevel(velocity, prg.Op[1].Levels&levelMask, channelVolume)
		d.Emitter.SetOperatorLevel(operator2OffsetForMelodic[voice], prg.Op[1], lvl2)
	} else {
		// op2 modulates op1: only op2 (the carrier) gets a note-driven level.
		lvl2 := ComposeLevel(velocity, maximumLevel, channelVolume)
		d.Emitter.SetOperatorLevel(operator2OffsetForMelodic[voice], prg.Op[1], lvl2)
	}

	fnumber := melodicFNumbers[fIndex]
	d.Emitter.WriteFrequency(voice, octave, fnumber, true)

	v := &d.Pool.Voices[voice]
	v.Program = program
	v.Key = note
	v.Channel = channel
	v.Timestamp = timestamp
	v.FNumber = fnumber
	v.Octave = octave
	v.InUse = true
}

// TurnOnMelodic runs the voice allocator and then mutes/reprograms/strikes
// according to the tier that matched.
func (d *Driver) TurnOnMelodic(channel, program, note int, velocity, channelVolume byte, timestamp int64) {
	voice, tier := d.Pool.Allocate(channel, program, note)

	switch tier {
	case TierExactRehit, TierSameProgramSteal:
		d.muteMelodicVoice(voice)
	case TierAnyIdle, TierLRUSteal:
		d.programMelodicVoice(voice, program)
	case TierIdleSameProgram:
		// already idle and already programmed for this program; strike as-is.
	}

	d.playMelodicNote(voice, channel, program, note, velocity, channelVolume, timestamp)
}

// TurnOffMelodic key-offs every voice whose (channel, key) matches, unless
// the channel's pedal is held, in which case the release is ignored. This
// only writes the key-off register; voice occupancy bookkeeping (in_use,
// program, key) is left untouched until the allocator reclaims the voice —
// that is what lets a later note-on find it via the exact-rehit or
// same-program-steal tiers without reprogramming. Because in_use stays set,
// a released voice is not picked by the idle-same-program or any-idle tiers.
func (d *Driver) TurnOffMelodic(channel, note int, pedalHeld bool) {
	if pedalHeld {
		return
	}
	for i := range d.Pool.Voices {
		v := &d.Pool.Voices[i]
		if v.Channel == channel && v.Key == note {
			d.muteMelodicVoice(byte(i))
		}
	}
}

func (d *Driver) setupPercussion(pn *PercussionNote) {
	if pn.Percussion < 4 {
		d.Emitter.SetMaskBit(1<<pn.Percussion, false)
		offset := operatorOffsetsForPercussion[pn.Percussion]
		d.Emitter.ProgramOperatorShort(offset, pn.Op[0])
		return
	}
	// bass drum: two operators on voice 6.
	d.Emitter.SetMaskBit(0x10, false)
	d.Emitter.ProgramOperator(0x10, pn.Op[0])
	d.Emitter.ProgramOperator(0x13, pn.Op[1])
	d.Emitter.SetFeedbackAlgorithm(6, pn.FeedbackAlgo)
}

func (d *Driver) playPercussion(pn *PercussionNote, velocity, channelVolume byte) {
	if pn.Percussion < 4 {
		bit := byte(1) << pn.Percussion
		d.Emitter.SetMaskBit(bit, false)

		offset := operatorOffsetsForPercussion[pn.Percussion]
		lvl := ComposeLevel(velocity, maximumLevel, channelVolume)
		d.Emitter.SetOperatorLevel(offset, pn.Op[0], lvl)

		switch pn.Percussion {
		case 2: // tom tom: voice 8, operator 1
			d.Emitter.WriteFrequency(8, pn.Octave, pn.FNumber, false)
		case 3: // snare drum: voice 7, operator 1
			d.Emitter.WriteFrequency(7, pn.Octave, pn.FNumber, false)
		}

		d.Emitter.SetMaskBit(bit, true)
		return
	}

	// bass drum (2 operators, voice 6).
	d.Emitter.SetMaskBit(0x10, false)
	if pn.FeedbackAlgo&1 == 1 {
		lvl0 := ComposeLevel(velocity, maximumLevel, channelVolume)
		d.Emitter.SetOperatorLevel(0x10, pn.Op[0], lvl0)
		lvl1 := ComposeLevel(velocity, maximumLevel, channelVolume)
		d.Emitter.SetOperatorLevel(0x13, pn.Op[1], lvl1)
	} else {
		lvl1 := ComposeLevel(velocity, maximumLevel, channelVolume)
		d.Emitter.SetOperatorLevel(0x13, pn.Op[1], lvl1)
	}
	d.Emitter.WriteFrequency(6, pn.Octave, pn.FNumber, false)
	d.Emitter.SetMaskBit(0x10, true)
}

// OnOffPercussion dispatches a note-on/off on MIDI channel 9. Notes outside
// 35..81, or whose table entry is marked invalid, are silently dropped.
func (d *Driver) OnOffPercussion(note int, on bool, velocity, channelVolume byte) {
	if note < 35 || note > 81 {
		return
	}
	pn := &percussionNotes[note-35]

	if !on {
		d.Emitter.SetMaskBit(1<<pn.Percussion, false)
		return
	}
	if !pn.Valid {
		return
	}
	if note != d.Pool.PercussionSlotNote(pn.Percussion) {
		d.setupPercussion(pn)
		d.Pool.SetPercussionSlotNote(pn.Percussion, note)
	}
	d.playPercussion(pn, velocity, channelVolume)
}

// PitchBend re-centers a 14-bit pitch-bend value around zero and retunes
// every currently in-use voice on the bending channel, interpolating the
// new F-number from the +-2-semitone headroom in the F-number table. The
// note is rewritten with keyOn=1 so it keeps sounding.
func (d *Driver) PitchBend(channel, amount int, timestamp int64) {
	amount -= pitchBendThreshold

	for i := range d.Pool.Voices {
		v := &d.Pool.Voices[i]
		if v.Channel != channel || !v.InUse {
			continue
		}
		f := 12 + v.Key%12

		var bend int
		if amount > 0 {
			bend = amount * (int(melodicFNumbers[f+2]) - int(melodicFNumbers[f])) / pitchBendThreshold
		} else {
			bend = amount * (int(melodicFNumbers[f]) - int(melodicFNumbers[f-2])) / pitchBendThreshold
		}
		bend += int(melodicFNumbers[f])

		d.Emitter.WriteFrequency(byte(i), v.Octave, uint16(bend), true)
		v.Timestamp = timestamp
	}
}

// Modulation sets or clears the OPL AM-depth bit (0xBD bit 7) for controller
// 1 (modulation wheel). This affects every voice globally, not just the
// sending channel.
func (d *Driver) Modulation(value byte) {
	d.Emitter.SetMaskBit(amDepthBit, value >= 64)
}

// MuteAllVoices key-offs every melodic voice and restores the default
// percussion mask. Used by controller 123 (all notes off) as well as by the
// stop/pause lifecycle transitions.
func (d *Driver) MuteAllVoices() {
	for i := range d.Pool.Voices {
		d.muteMelodicVoice(byte(i))
	}
	d.Emitter.SetMask(defaultPercussionMask)
}
