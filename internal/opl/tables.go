// Package opl implements the Yamaha OPL2 rhythm-mode register protocol:
// static instrument tables, the level composer, the melodic voice pool and
// allocator, and the driver that turns notes into register writes.
package opl

// Operator is one FM oscillator's register payload: characteristic (AM/VIB/EG/KSR/MULT),
// levels (upper two bits KSL, lower six bits TL), attack/decay, sustain/release and waveform.
type Operator struct {
	Characteristic byte
	Levels         byte
	AttackDecay    byte
	SustainRelease byte
	Waveform       byte
}

// MelodicProgram is a two-operator melodic instrument definition.
type MelodicProgram struct {
	Op            [2]Operator
	FeedbackAlgo  byte
}

// PercussionNote is a rhythm-mode percussion instrument definition, indexed by
// MIDI note number 35..81 (offset by -35 into the table).
type PercussionNote struct {
	Op           [2]Operator
	FeedbackAlgo byte
	Percussion   byte // 0=hi-hat 1=cymbal 2=tom 3=snare 4=bass-drum
	Valid        bool
	FNumber      uint16
	Octave       byte
}

func newMelodicProgram(c1, l1, a1, s1, w1, c2, l2, a2, s2, w2, fb byte) MelodicProgram {
	return MelodicProgram{
		Op: [2]Operator{
			{Characteristic: c1, Levels: l1, AttackDecay: a1, SustainRelease: s1, Waveform: w1},
			{Characteristic: c2, Levels: l2, AttackDecay: a2, SustainRelease: s2, Waveform: w2},
		},
		FeedbackAlgo: fb,
	}
}

func newPercussionNote(c1, l1, a1, s1, w1, c2, l2, a2, s2, w2, fb, percussion byte, valid int, fnumber uint16, octave byte) PercussionNote {
	return PercussionNote{
		Op: [2]Operator{
			{Characteristic: c1, Levels: l1, AttackDecay: a1, SustainRelease: s1, Waveform: w1},
			{Characteristic: c2, Levels: l2, AttackDecay: a2, SustainRelease: s2, Waveform: w2},
		},
		FeedbackAlgo: fb,
		Percussion:   percussion,
		Valid:        valid != 0,
		FNumber:      fnumber,
		Octave:       octave,
	}
}

// melodicFNumbers supplies 10-bit OPL F-numbers for f_index in 0..35: index
// 12 is the base of the octave, with two extra octaves of headroom on each
// side (0..11 and 24..35) so a +-2-semitone pitch bend never needs bounds
// checks against the table.
var melodicFNumbers = [36]uint16{
	0x55, 0x5a, 0x60, 0x66, 0x6c, 0x72, 0x79, 0x80, 0x88,
	0x90, 0x99, 0xa1, 0xab, 0xb5, 0xc0, 0xcc, 0xd8, 0xe5,
	0xf2, 0x101, 0x110, 0x120, 0x132, 0x143, 0x156, 0x16b, 0x181,
	0x198, 0x1b0, 0x1ca, 0x1e5, 0x202, 0x220, 0x241, 0x263, 0x286,
}

// operator1OffsetForMelodic and operator2OffsetForMelodic give the two
// operator register offsets for each of the 6 melodic voices.
var operator1OffsetForMelodic = [numMelodicVoices]byte{0x00, 0x01, 0x02, 0x08, 0x09, 0x0a}
var operator2OffsetForMelodic = [numMelodicVoices]byte{0x03, 0x04, 0x05, 0x0b, 0x0c, 0x0d}

// operatorOffsetsForPercussion gives the single operator offset used by each
// of the first four (1-operator) percussions; the bass drum (index 4) uses
// two fixed offsets (0x10, 0x13) handled separately.
var operatorOffsetsForPercussion = [4]byte{0x11, 0x15, 0x12, 0x14}

var melodicPrograms = [128]MelodicProgram{
	newMelodicProgram(0x1, 0x51, 0xf2, 0xb2, 0x0, 0x11, 0x0, 0xf2, 0xa2, 0x0, 0x0),
	newMelodicProgram(0xc2, 0x4b, 0xf1, 0x53, 0x0, 0xd2, 0x0, 0xf2, 0x74, 0x0, 0x4),
	newMelodicProgram(0x81, 0x9d, 0xf2, 0x74, 0x0, 0x13, 0x0, 0xf2, 0xf1, 0x0, 0x6),
	newMelodicProgram(0x3, 0x4f, 0xf1, 0x53, 0x0, 0x17, 0x3, 0xf2, 0x74, 0x0, 0x6),
	newMelodicProgram(0xd1, 0x81, 0x81, 0x73, 0x2, 0xd4, 0x0, 0xe1, 0x34, 0x0, 0x3),
	newMelodicProgram(0x1, 0x0, 0x94, 0xa6, 0x0, 0x2, 0x0, 0x83, 0x26, 0x0, 0x1),
	newMelodicProgram(0xf3, 0x84, 0x81, 0x2, 0x1, 0x55, 0x80, 0xdd, 0x3, 0x0, 0x4),
	newMelodicProgram(0x5, 0x8a, 0xf2, 0x26, 0x0, 0x1, 0x80, 0xf3, 0x48, 0x0, 0x0),
	newMelodicProgram(0x32, 0x0, 0xb1, 0x14, 0x0, 0x12, 0x0, 0xfd, 0x36, 0x0, 0x3),
	newMelodicProgram(0x1, 0x0, 0x82, 0xa, 0x2, 0x2, 0x0, 0x85, 0x15, 0x0, 0x3),
	newMelodicProgram(0xd1, 0x1, 0x97, 0xaa, 0x0, 0x4, 0xd, 0xf3, 0xa5, 0x1, 0x9),
	newMelodicProgram(0x17, 0x0, 0xf2, 0x62, 0x0, 0x12, 0x0, 0xf2, 0x72, 0x0, 0x8),
	newMelodicProgram(0x6, 0x0, 0xff, 0xf4, 0x0, 0xc4, 0x0, 0xf8, 0xb5, 0x0, 0xe),
	newMelodicProgram(0xc0, 0x81, 0xf2, 0x13, 0x2, 0xc0, 0xc1, 0xf3, 0x14, 0x2, 0xb),
	newMelodicProgram(0x44, 0x53, 0xf5, 0x31, 0x0, 0x60, 0x80, 0xfd, 0x22, 0x0, 0x6),
	newMelodicProgram(0xe0, 0x80, 0xf4, 0xf2, 0x0, 0x61, 0x0, 0xf2, 0x6, 0x0, 0x8),
	newMelodicProgram(0xc1, 0x6, 0x83, 0x23, 0x0, 0xc1, 0x4, 0xf0, 0x26, 0x0, 0x1),
	newMelodicProgram(0x26, 0x0, 0xf4, 0xb6, 0x0, 0x21, 0x0, 0x81, 0x4b, 0x0, 0x1),
	newMelodicProgram(0x24, 0x80, 0xff, 0xf, 0x0, 0x21, 0x80, 0xff, 0xf, 0x0, 0x1),
	newMelodicProgram(0x24, 0x4f, 0xf2, 0xb, 0x0, 0x31, 0x0, 0x52, 0xb, 0x0, 0xb),
	newMelodicProgram(0x31, 0x8, 0x81, 0xb, 0x0, 0xa1, 0x80, 0x92, 0x3b, 0x0, 0x0),
	newMelodicProgram(0x70, 0xc5, 0x52, 0x11, 0x1, 0x71, 0x80, 0x31, 0xfe, 0x1, 0x0),
	newMelodicProgram(0x51, 0x88, 0x10, 0xf0, 0x0, 0x42, 0x83, 0x40, 0xfc, 0x0, 0x8),
	newMelodicProgram(0xf0, 0xd9, 0x81, 0x3, 0x0, 0xb1, 0x80, 0xf1, 0x5, 0x0, 0xa),
	newMelodicProgram(0x21, 0x4f, 0xf1, 0x31, 0x0, 0x2, 0x80, 0xc3, 0x45, 0x0, 0x0),
	newMelodicProgram(0x7, 0x8f, 0x9c, 0x33, 0x1, 0x1, 0x80, 0x8a, 0x13, 0x0, 0x0),
	newMelodicProgram(0x21, 0x40, 0xf1, 0x31, 0x0, 0x6, 0x80, 0xf4, 0x44, 0x0, 0x0),
	newMelodicProgram(0x21, 0x40, 0xf1, 0x31, 0x3, 0x81, 0x0, 0xf4, 0x44, 0x2, 0x2),
	newMelodicProgram(0x11, 0x8d, 0xfd, 0x11, 0x0, 0x11, 0x80, 0xfd, 0x11, 0x0, 0x8),
	newMelodicProgram(0xf0, 0x1, 0x97, 0x17, 0x0, 0x21, 0xd, 0xf1, 0x18, 0x0, 0x8),
	newMelodicProgram(0xf1, 0x1, 0x97, 0x17, 0x0, 0x21, 0xd, 0xf1, 0x18, 0x0, 0x8),
	newMelodicProgram(0xcd, 0x9e, 0x55, 0xd1, 0x0, 0xd1, 0x0, 0xf2, 0x71, 0x0, 0xe),
	newMelodicProgram(0x1, 0x0, 0xf2, 0x88, 0x0, 0x1, 0x0, 0xf5, 0x88, 0x0, 0x1),
	newMelodicProgram(0x30, 0xd, 0xf2, 0xef, 0x0, 0x21, 0x0, 0xf5, 0x78, 0x0, 0x6),
	newMelodicProgram(0x0, 0x10, 0xf4, 0xd9, 0x0, 0x0, 0x0, 0xf5, 0xd7, 0x0, 0x4),
	newMelodicProgram(0x1, 0x4c, 0xf2, 0x50, 0x0, 0x1, 0x40, 0xd2, 0x59, 0x0, 0x8),
	newMelodicProgram(0x20, 0x11, 0xe2, 0x8a, 0x0, 0x20, 0x0, 0xe4, 0xa8, 0x0, 0xa),
	newMelodicProgram(0x21, 0x40, 0x7b, 0x4, 0x1, 0x21, 0x0, 0x75, 0x72, 0x0, 0x2),
	newMelodicProgram(0x31, 0xd, 0xf2, 0xef, 0x0, 0x21, 0x0, 0xf5, 0x78, 0x0, 0xa),
	newMelodicProgram(0x1, 0xc, 0xf5, 0x2f, 0x1, 0x0, 0x80, 0xf5, 0x5c, 0x0, 0x0),
	newMelodicProgram(0xb0, 0x1c, 0x81, 0x3, 0x2, 0x20, 0x0, 0x54, 0x67, 0x2, 0xe),
	newMelodicProgram(0x1, 0x0, 0xf1, 0x65, 0x0, 0x1, 0x80, 0xa3, 0xa8, 0x2, 0x1),
	newMelodicProgram(0xe1, 0x4f, 0xc1, 0xd3, 0x2, 0x21, 0x0, 0x32, 0x74, 0x1, 0x0),
	newMelodicProgram(0x2, 0x0, 0xf6, 0x16, 0x0, 0x12, 0x0, 0xf2, 0xf8, 0x0, 0x1),
	newMelodicProgram(0xe0, 0x63, 0xf8, 0xf3, 0x0, 0x70, 0x80, 0xf7, 0xf3, 0x0, 0x4),
	newMelodicProgram(0x1, 0x6, 0xf3, 0xff, 0x0, 0x8, 0x0, 0xf7, 0xff, 0x0, 0x4),
	newMelodicProgram(0x21, 0x16, 0xb0, 0x81, 0x1, 0x22, 0x0, 0xb3, 0x13, 0x1, 0xc),
	newMelodicProgram(0x1, 0x4f, 0xf0, 0xff, 0x0, 0x30, 0x0, 0x90, 0xf, 0x0, 0x6),
	newMelodicProgram(0x0, 0x10, 0xf1, 0xf2, 0x2, 0x1, 0x0, 0xf1, 0xf2, 0x3, 0x0),
	newMelodicProgram(0x1, 0x4f, 0xf1, 0x50, 0x0, 0x21, 0x80, 0xa3, 0x5, 0x3, 0x6),
	newMelodicProgram(0xb1, 0x3, 0x55, 0x3, 0x0, 0xb1, 0x3, 0x8, 0xa, 0x0, 0x9),
	newMelodicProgram(0x22, 0x0, 0xa9, 0x34, 0x1, 0x1, 0x0, 0xa2, 0x42, 0x2, 0x2),
	newMelodicProgram(0xa0, 0xdc, 0x81, 0x31, 0x3, 0xb1, 0x80, 0xf1, 0x1, 0x3, 0x0),
	newMelodicProgram(0x1, 0x4f, 0xf1, 0x50, 0x0, 0x21, 0x80, 0xa3, 0x5, 0x3, 0x6),
	newMelodicProgram(0xf1, 0x80, 0xa0, 0x72, 0x0, 0x74, 0x0, 0x90, 0x22, 0x0, 0x9),
	newMelodicProgram(0xe1, 0x13, 0x71, 0xae, 0x0, 0xe1, 0x0, 0xf0, 0xfc, 0x1, 0xa),
	newMelodicProgram(0x31, 0x1c, 0x41, 0xb, 0x0, 0xa1, 0x80, 0x92, 0x3b, 0x0, 0xe),
	newMelodicProgram(0x71, 0x1c, 0x41, 0x1f, 0x0, 0xa1, 0x80, 0x92, 0x3b, 0x0, 0xe),
	newMelodicProgram(0x21, 0x1c, 0x53, 0x1d, 0x0, 0xa1, 0x80, 0x52, 0x3b, 0x0, 0xc),
	newMelodicProgram(0x21, 0x1d, 0xa4, 0xae, 0x1, 0x21, 0x0, 0xb1, 0x9e, 0x0, 0xc),
	newMelodicProgram(0xe1, 0x16, 0x71, 0xae, 0x0, 0xe1, 0x0, 0x81, 0x9e, 0x0, 0xa),
	newMelodicProgram(0xe1, 0x15, 0x71, 0xae, 0x0, 0xe2, 0x0, 0x81, 0x9e, 0x0, 0xe),
	newMelodicProgram(0x21, 0x16, 0x71, 0xae, 0x0, 0x21, 0x0, 0x81, 0x9e, 0x0, 0xe),
	newMelodicProgram(0x71, 0x1c, 0x41, 0x1f, 0x0, 0xa1, 0x80, 0x92, 0x3b, 0x0, 0xe),
	newMelodicProgram(0x21, 0x4f, 0x81, 0x53, 0x0, 0x32, 0x0, 0x22, 0x2c, 0x0, 0xa),
	newMelodicProgram(0x22, 0x4f, 0x81, 0x53, 0x0, 0x32, 0x0, 0x22, 0x2c, 0x0, 0xa),
	newMelodicProgram(0x23, 0x4f, 0x81, 0x53, 0x0, 0x34, 0x0, 0x22, 0x2c, 0x0, 0xa),
	newMelodicProgram(0xe1, 0x16, 0x71, 0xae, 0x0, 0xe1, 0x0, 0x81, 0x9e, 0x0, 0xa),
	newMelodicProgram(0x71, 0xc5, 0x6e, 0x17, 0x0, 0x22, 0x5, 0x8b, 0xe, 0x0, 0x2),
	newMelodicProgram(0xe6, 0x27, 0x70, 0xf, 0x1, 0xe3, 0x0, 0x60, 0x9f, 0x0, 0xa),
	newMelodicProgram(0x30, 0xc8, 0xd5, 0x19, 0x0, 0xb1, 0x80, 0x61, 0x1b, 0x0, 0xc),
	newMelodicProgram(0x32, 0x9a, 0x51, 0x1b, 0x0, 0xa1, 0x82, 0xa2, 0x3b, 0x0, 0xc),
	newMelodicProgram(0xad, 0x3, 0x74, 0x29, 0x0, 0xa2, 0x82, 0x73, 0x29, 0x0, 0x7),
	newMelodicProgram(0x21, 0x83, 0x74, 0x17, 0x0, 0x62, 0x8d, 0x65, 0x17, 0x0, 0x7),
	newMelodicProgram(0x94, 0xb, 0x85, 0xff, 0x1, 0x13, 0x0, 0x74, 0xff, 0x0, 0xc),
	newMelodicProgram(0x74, 0x87, 0xa4, 0x2, 0x0, 0xd6, 0x80, 0x45, 0x42, 0x0, 0x2),
	newMelodicProgram(0xb3, 0x85, 0x76, 0x21, 0x1, 0x20, 0x0, 0x3d, 0xc1, 0x0, 0x6),
	newMelodicProgram(0x17, 0x4f, 0xf2, 0x61, 0x0, 0x12, 0x8, 0xf1, 0xb4, 0x0, 0x8),
	newMelodicProgram(0x4f, 0x86, 0x65, 0x1, 0x0, 0x1f, 0x0, 0x32, 0x74, 0x0, 0x4),
	newMelodicProgram(0xe1, 0x23, 0x71, 0xae, 0x0, 0xe4, 0x0, 0x82, 0x9e, 0x0, 0xa),
	newMelodicProgram(0x11, 0x86, 0xf2, 0xbd, 0x0, 0x4, 0x80, 0xa0, 0x9b, 0x1, 0x8),
	newMelodicProgram(0x20, 0x90, 0xf5, 0x9e, 0x2, 0x11, 0x0, 0xf4, 0x5b, 0x3, 0xc),
	newMelodicProgram(0xf0, 0x80, 0x34, 0xe4, 0x0, 0x7e, 0x0, 0xa2, 0x6, 0x0, 0x8),
	newMelodicProgram(0x90, 0xf, 0xff, 0x1, 0x3, 0x0, 0x0, 0x1f, 0x1, 0x0, 0xe),
	newMelodicProgram(0x1, 0x4f, 0xf0, 0xff, 0x0, 0x33, 0x0, 0x90, 0xf, 0x0, 0x6),
	newMelodicProgram(0x1e, 0x0, 0x1f, 0xf, 0x0, 0x10, 0x0, 0x1f, 0x7f, 0x0, 0x0),
	newMelodicProgram(0xbe, 0x0, 0xf1, 0x1, 0x3, 0x31, 0x0, 0xf1, 0x1, 0x0, 0x4),
	newMelodicProgram(0xbe, 0x0, 0xf1, 0x1, 0x3, 0x31, 0x0, 0xf1, 0x1, 0x0, 0x4),
	newMelodicProgram(0x93, 0x6, 0xc1, 0x4, 0x1, 0x82, 0x0, 0x51, 0x9, 0x0, 0x6),
	newMelodicProgram(0xa0, 0x0, 0x96, 0x33, 0x0, 0x20, 0x0, 0x55, 0x2b, 0x0, 0x6),
	newMelodicProgram(0x0, 0xc0, 0xff, 0x5, 0x0, 0x0, 0x0, 0xff, 0x5, 0x3, 0x0),
	newMelodicProgram(0x4, 0x8, 0xf8, 0x7, 0x0, 0x1, 0x0, 0x82, 0x74, 0x0, 0x8),
	newMelodicProgram(0x0, 0x0, 0x2f, 0x5, 0x0, 0x20, 0x0, 0xff, 0x5, 0x3, 0xa),
	newMelodicProgram(0x93, 0x0, 0xf7, 0x7, 0x2, 0x0, 0x0, 0xf7, 0x7, 0x0, 0xa),
	newMelodicProgram(0x0, 0x40, 0x80, 0x7a, 0x0, 0xc4, 0x0, 0xc0, 0x7e, 0x0, 0x8),
	newMelodicProgram(0x90, 0x80, 0x55, 0xf5, 0x0, 0x0, 0x0, 0x55, 0xf5, 0x0, 0x8),
	newMelodicProgram(0xe1, 0x80, 0x34, 0xe4, 0x0, 0x69, 0x0, 0xf2, 0x6, 0x0, 0x8),
	newMelodicProgram(0x3, 0x2, 0xf0, 0xff, 0x3, 0x11, 0x80, 0xf0, 0xff, 0x2, 0x2),
	newMelodicProgram(0x1e, 0x0, 0x1f, 0xf, 0x0, 0x10, 0x0, 0x1f, 0x7f, 0x0, 0x0),
	newMelodicProgram(0x0, 0x0, 0x2f, 0x1, 0x0, 0x0, 0x0, 0xff, 0x1, 0x0, 0x4),
	newMelodicProgram(0xbe, 0x0, 0xf1, 0x1, 0x3, 0x31, 0x0, 0xf1, 0x1, 0x0, 0x4),
	newMelodicProgram(0x93, 0x85, 0x3f, 0x6, 0x1, 0x0, 0x0, 0x5f, 0x7, 0x0, 0x6),
	newMelodicProgram(0x6, 0x0, 0xa0, 0xf0, 0x0, 0x44, 0x0, 0xc5, 0x75, 0x0, 0xe),
	newMelodicProgram(0x60, 0x0, 0x10, 0x81, 0x0, 0x20, 0x8c, 0x12, 0x91, 0x0, 0xe),
	newMelodicProgram(0x1, 0x40, 0xf1, 0x53, 0x0, 0x8, 0x40, 0xf1, 0x53, 0x0, 0x0),
	newMelodicProgram(0x31, 0x0, 0x56, 0x31, 0x0, 0x16, 0x0, 0x7d, 0x41, 0x0, 0x0),
	newMelodicProgram(0x0, 0x10, 0xf2, 0x72, 0x0, 0x13, 0x0, 0xf2, 0x72, 0x0, 0xc),
	newMelodicProgram(0x10, 0x0, 0x75, 0x93, 0x1, 0x1, 0x0, 0xf5, 0x82, 0x1, 0x0),
	newMelodicProgram(0x0, 0x0, 0xf6, 0xff, 0x2, 0x0, 0x0, 0xf6, 0xff, 0x0, 0x8),
	newMelodicProgram(0x30, 0x0, 0xff, 0xa0, 0x3, 0x63, 0x0, 0x65, 0xb, 0x2, 0x0),
	newMelodicProgram(0x2a, 0x0, 0xf6, 0x87, 0x0, 0x2b, 0x0, 0x76, 0x25, 0x0, 0x0),
	newMelodicProgram(0x85, 0x0, 0xb8, 0x84, 0x0, 0x43, 0x0, 0xe5, 0x8f, 0x0, 0x6),
	newMelodicProgram(0x7, 0x4f, 0xf2, 0x60, 0x0, 0x12, 0x0, 0xf2, 0x72, 0x0, 0x8),
	newMelodicProgram(0x5, 0x40, 0xb3, 0xd3, 0x0, 0x86, 0x80, 0xf2, 0x24, 0x0, 0x2),
	newMelodicProgram(0xd0, 0x0, 0x11, 0xcf, 0x0, 0xd1, 0x0, 0xf4, 0xe8, 0x3, 0x0),
	newMelodicProgram(0x5, 0x4e, 0xda, 0x25, 0x2, 0x1, 0x0, 0xf9, 0x15, 0x0, 0xa),
	newMelodicProgram(0x3, 0x0, 0x8f, 0x7, 0x2, 0x2, 0x0, 0xff, 0x6, 0x0, 0x0),
	newMelodicProgram(0x13, 0x0, 0x8f, 0x7, 0x2, 0x2, 0x0, 0xf9, 0x5, 0x0, 0x0),
	newMelodicProgram(0xf0, 0x1, 0x97, 0x17, 0x0, 0x21, 0xd, 0xf1, 0x18, 0x0, 0x8),
	newMelodicProgram(0xf1, 0x41, 0x11, 0x11, 0x0, 0xf1, 0x41, 0x11, 0x11, 0x0, 0x2),
	newMelodicProgram(0x13, 0x0, 0x8f, 0x7, 0x2, 0x2, 0x0, 0xff, 0x6, 0x0, 0x0),
	newMelodicProgram(0x1, 0x0, 0x2f, 0x1, 0x0, 0x1, 0x0, 0xaf, 0x1, 0x3, 0xf),
	newMelodicProgram(0x1, 0x6, 0xf3, 0xff, 0x0, 0x8, 0x0, 0xf7, 0xff, 0x0, 0x4),
	newMelodicProgram(0xc0, 0x4f, 0xf1, 0x3, 0x0, 0xbe, 0xc, 0x10, 0x1, 0x0, 0x2),
	newMelodicProgram(0x0, 0x2, 0xf0, 0xff, 0x0, 0x11, 0x80, 0xf0, 0xff, 0x0, 0x6),
	newMelodicProgram(0x81, 0x47, 0xf1, 0x83, 0x0, 0xa2, 0x4, 0x91, 0x86, 0x0, 0x6),
	newMelodicProgram(0xf0, 0xc0, 0xff, 0xff, 0x3, 0xe5, 0x0, 0xfb, 0xf0, 0x0, 0xe),
	newMelodicProgram(0x0, 0x2, 0xf0, 0xff, 0x0, 0x11, 0x80, 0xf0, 0xff, 0x0, 0x6),
}

var percussionNotes = [47]PercussionNote{
	newPercussionNote(0x0, 0xb, 0xa8, 0x38, 0x0, 0x0, 0x0, 0xd6, 0x49, 0x0, 0x0, 0x4, 0x1, 0x97, 0x4),
	newPercussionNote(0xc0, 0xc0, 0xf8, 0x3f, 0x2, 0xc0, 0x0, 0xf6, 0x8e, 0x0, 0x0, 0x4, 0x1, 0xf7, 0x4),
	newPercussionNote(0xc0, 0x80, 0xc9, 0xab, 0x0, 0xeb, 0x40, 0xb5, 0xf6, 0x0, 0x1, 0x3, 0x1, 0x6a, 0x6),
	newPercussionNote(0xc, 0x0, 0xd8, 0xa6, 0x0, 0x0, 0x0, 0xd6, 0x4f, 0x0, 0x1, 0x3, 0x1, 0x6c, 0x5),
	newPercussionNote(0x1, 0x0, 0xe2, 0xd2, 0x0, 0x3, 0x41, 0x8f, 0x48, 0x49, 0xc, 0x4, 0x1, 0x2f, 0x5),
	newPercussionNote(0x0, 0x0, 0xc8, 0x58, 0x3, 0x0, 0x0, 0xf6, 0x4f, 0x0, 0x9, 0x3, 0x1, 0x108, 0x4),
	newPercussionNote(0x1, 0x0, 0xff, 0x5, 0x0, 0xf2, 0xff, 0xe0, 0x50, 0x52, 0x5d, 0x2, 0x1, 0x9f, 0x5),
	newPercussionNote(0xe, 0x9, 0xb9, 0x47, 0x0, 0xeb, 0x40, 0xf5, 0xe6, 0x0, 0x0, 0x0, 0x1, 0x82, 0x6),
	newPercussionNote(0x0, 0x0, 0xd6, 0x83, 0x0, 0xd6, 0xd7, 0xe0, 0x41, 0x5e, 0x4a, 0x2, 0x1, 0xc7, 0x5),
	newPercussionNote(0x1, 0x9, 0x89, 0x67, 0x0, 0xd6, 0xd7, 0xe0, 0x41, 0x5e, 0x4a, 0x0, 0x1, 0x80, 0x6),
	newPercussionNote(0x1, 0x0, 0xd6, 0x96, 0x0, 0xd6, 0xd7, 0xe0, 0x41, 0x5e, 0x4a, 0x2, 0x1, 0xed, 0x5),
	newPercussionNote(0x0, 0x9, 0xa9, 0x55, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x1, 0x82, 0x6),
	newPercussionNote(0x2, 0x0, 0xc6, 0x96, 0x0, 0xe0, 0x0, 0xe0, 0x40, 0x0, 0x1, 0x2, 0x1, 0x123, 0x5),
	newPercussionNote(0x5, 0x0, 0xf6, 0x56, 0x0, 0xf7, 0xff, 0xb3, 0x90, 0x4f, 0x1, 0x2, 0x1, 0x15b, 0x5),
	newPercussionNote(0x1, 0x0, 0xf7, 0x14, 0x0, 0xf7, 0xff, 0x36, 0x90, 0x79, 0xe7, 0x1, 0x1, 0x1ac, 0x5),
	newPercussionNote(0x0, 0x0, 0xf6, 0x56, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x1, 0x2, 0x1, 0x18b, 0x5),
	newPercussionNote(0x0, 0x83, 0xfb, 0x5, 0x0, 0xf7, 0x41, 0x39, 0x90, 0x79, 0x1, 0x1, 0x1, 0xc8, 0x5),
	newPercussionNote(0x0, 0x0, 0xff, 0x5, 0x0, 0xf7, 0xff, 0x36, 0x90, 0x79, 0xe7, 0x1, 0x1, 0xf9, 0x5),
	newPercussionNote(0x1, 0x0, 0xa0, 0x5, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x2, 0x1, 0x27a, 0x6),
	newPercussionNote(0x0, 0x5, 0xf3, 0x6, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x2, 0x1, 0x108, 0x7),
	newPercussionNote(0x1, 0x0, 0xf9, 0x34, 0x0, 0xf7, 0xff, 0x36, 0x90, 0x79, 0xe7, 0x1, 0x1, 0x147, 0x4),
	newPercussionNote(0x0, 0x0, 0xf7, 0x16, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x2, 0x1, 0x120, 0x6),
	newPercussionNote(0x1, 0x0, 0xff, 0x5, 0x0, 0xf7, 0xff, 0x36, 0x90, 0x79, 0xe7, 0x1, 0x1, 0x42, 0x6),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x1, 0x0, 0xff, 0x5, 0x0, 0xf7, 0xff, 0x36, 0x90, 0x79, 0xe7, 0x1, 0x1, 0x6d, 0x5),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
	newPercussionNote(0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x0, 0x3fc, 0x4),
}