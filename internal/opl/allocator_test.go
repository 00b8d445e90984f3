package opl

import "testing"

func TestAllocateExactRehit(t *testing.T) {
	p := NewPool()
	p.Voices[2] = MelodicVoice{Key: 60, Program: 5, Channel: 0, InUse: true, Timestamp: 10}

	voice, tier := p.Allocate(0, 5, 60)
	if tier != TierExactRehit {
		t.Fatalf("tier = %v, want TierExactRehit", tier)
	}
	if voice != 2 {
		t.Fatalf("voice = %d, want 2", voice)
	}
}

func TestAllocateIdleSameProgram(t *testing.T) {
	p := NewPool()
	// Voice 3 is idle but was last programmed for program 7.
	p.Voices[3] = MelodicVoice{Key: -1, Program: 7, Channel: -1, InUse: false}
	p.AssignedVoice = 0

	voice, tier := p.Allocate(1, 7, 64)
	if tier != TierIdleSameProgram {
		t.Fatalf("tier = %v, want TierIdleSameProgram", tier)
	}
	if voice != 3 {
		t.Fatalf("voice = %d, want 3", voice)
	}
}

func TestAllocateAnyIdleReprograms(t *testing.T) {
	p := NewPool()
	// All voices idle, none programmed for program 9: falls to tier 3.
	voice, tier := p.Allocate(0, 9, 60)
	if tier != TierAnyIdle {
		t.Fatalf("tier = %v, want TierAnyIdle", tier)
	}
	if voice > 5 {
		t.Fatalf("voice out of range: %d", voice)
	}
}

func TestAllocateSameProgramSteal(t *testing.T) {
	p := NewPool()
	for i := range p.Voices {
		p.Voices[i] = MelodicVoice{Key: 40 + i, Program: 3, Channel: 2, InUse: true, Timestamp: int64(i)}
	}
	// All busy, program 3 matches everywhere: tier 2/3 find nothing idle, tier 4 steals.
	voice, tier := p.Allocate(2, 3, 99)
	if tier != TierSameProgramSteal {
		t.Fatalf("tier = %v, want TierSameProgramSteal", tier)
	}
	if p.Voices[voice].Program != 3 {
		t.Fatalf("stolen voice %d has program %d, want 3", voice, p.Voices[voice].Program)
	}
}

func TestAllocateLRUSteal(t *testing.T) {
	p := NewPool()
	for i := range p.Voices {
		p.Voices[i] = MelodicVoice{Key: 40 + i, Program: i, Channel: 0, InUse: true, Timestamp: int64(10 - i)}
	}
	// Voice 5 would be the LRU victim (timestamp 10-5=5); override voice 4
	// with a smaller one.
	p.Voices[4].Timestamp = 1 // force voice 4 to be the LRU victim

	voice, tier := p.Allocate(0, 99, 60)
	if tier != TierLRUSteal {
		t.Fatalf("tier = %v, want TierLRUSteal", tier)
	}
	if voice != 4 {
		t.Fatalf("voice = %d, want 4 (smallest timestamp)", voice)
	}
	if p.AssignedVoice != 4 {
		t.Fatalf("AssignedVoice = %d, want 4", p.AssignedVoice)
	}
}

func TestAllocateAtMostSixInUse(t *testing.T) {
	p := NewPool()
	for n := 0; n < 20; n++ {
		voice, tier := p.Allocate(0, n%3, 60+n)
		d := NewDriver(NewEmitter(nil), p)
		switch tier {
		case TierExactRehit, TierSameProgramSteal:
			d.muteMelodicVoice(voice)
		case TierAnyIdle, TierLRUSteal:
			d.programMelodicVoice(voice, n%3)
		}
		d.playMelodicNote(voice, 0, n%3, 60+n, 100, 127, int64(n))

		inUse := 0
		for _, v := range p.Voices {
			if v.InUse {
				inUse++
			}
		}
		if inUse > 6 {
			t.Fatalf("after %d allocations, %d voices in_use (max 6)", n+1, inUse)
		}
		if p.AssignedVoice > 5 {
			t.Fatalf("AssignedVoice = %d, want 0..5", p.AssignedVoice)
		}
	}
}
