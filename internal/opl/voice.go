package opl

// MelodicVoice tracks one of the six rhythm-mode melodic hardware voices.
type MelodicVoice struct {
	Key       int // MIDI note; -1 = vacant
	Program   int // -1 = never programmed
	Channel   int
	Timestamp int64
	FNumber   uint16
	Octave    byte
	InUse     bool
}

// Pool is the fixed set of melodic voices plus the round-robin allocator
// cursor, and the five percussion slots' current occupant note.
type Pool struct {
	Voices         [numMelodicVoices]MelodicVoice
	AssignedVoice  byte
	percussionSlot [numPercussions]int // MIDI note occupying the slot, -1 = none
}

// NewPool returns a pool with every voice vacant and every percussion slot
// empty.
func NewPool() *Pool {
	p := &Pool{}
	p.Reset()
	return p
}

// Reset returns every voice and percussion slot to its initial, vacant
// state. Used by Pool construction and by ADLIB_init_voices-equivalent
// resume-from-stopped handling.
func (p *Pool) Reset() {
	for i := range p.Voices {
		p.Voices[i] = MelodicVoice{Key: -1, Program: -1, Channel: -1}
	}
	for i := range p.percussionSlot {
		p.percussionSlot[i] = -1
	}
	p.AssignedVoice = 0
}

// PercussionSlotNote returns the MIDI note currently occupying a percussion
// slot, or -1 if none.
func (p *Pool) PercussionSlotNote(percussion byte) int {
	return p.percussionSlot[percussion]
}

// SetPercussionSlotNote records which MIDI note now occupies a percussion
// slot.
func (p *Pool) SetPercussionSlotNote(percussion byte, note int) {
	p.percussionSlot[percussion] = note
}
