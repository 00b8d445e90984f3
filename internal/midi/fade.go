package midi

// FadeState tracks the fixed-point fade-in/fade-out accumulators that ramp
// master volume toward or away from a target level across many ticks. Both
// directions keep their own accumulator because a fade-in and a trailing
// fade-out can in principle straddle the same tick, exactly as in the
// original driver.
type FadeState struct {
	FadingIn  bool
	fadeInCur uint32
	fadeInInc uint32

	FadingOut  bool
	fadeOutCur uint32
	fadeOutDec uint32

	fullVolume byte
}

// coarse extracts the 8-bit volume from a fine-grained (volume<<8)
// accumulator.
func coarse(fine uint32) byte {
	return byte(fine >> 8)
}

// StartFadeIn begins ramping from silence up to masterVolume over
// rate*division ticks. A zero rate or division produces a single full step:
// the next Advance reaches masterVolume and the one after completes the fade.
func (f *FadeState) StartFadeIn(masterVolume byte, rate, division uint32) {
	f.fullVolume = masterVolume
	f.fadeInCur = 0
	if rate == 0 || division == 0 {
		f.fadeInInc = uint32(masterVolume) << 8
	} else {
		f.fadeInInc = (uint32(masterVolume) << 8) / (rate * division)
	}
	f.FadingIn = true
}

// StartFadeOut begins ramping from masterVolume down to silence. It is a
// no-op if a fade-out is already in progress; the driver never re-enters a
// running fade-out.
func (f *FadeState) StartFadeOut(masterVolume byte, rate, division uint32) {
	if f.FadingOut {
		return
	}
	f.fullVolume = masterVolume
	f.fadeOutCur = uint32(masterVolume) << 8
	if rate == 0 || division == 0 {
		f.fadeOutDec = uint32(masterVolume) << 8
	} else {
		f.fadeOutDec = (uint32(masterVolume) << 8) / (rate * division)
	}
	f.FadingOut = true
}

// ResetAccumulators zeroes both fine-grained accumulators without touching
// the FadingIn/FadingOut flags or target volume; used by the fade-rate-reset
// mailbox command.
func (f *FadeState) ResetAccumulators() {
	f.fadeInCur = 0
	f.fadeOutCur = 0
}

// AdvanceFadeIn steps the fade-in accumulator one tick. It reports the
// volume to apply this tick and whether the fade has just completed. While
// still ramping, the caller is expected to keep processing the rest of the
// tick normally; the one tick on which the fade completes consumes the tick
// (the caller should stop without dispatching any MIDI events), matching
// the original driver's control flow.
func (f *FadeState) AdvanceFadeIn() (volume byte, justCompleted bool) {
	if !f.FadingIn {
		return 0, false
	}
	if coarse(f.fadeInCur) < f.fullVolume {
		f.fadeInCur += f.fadeInInc
		if uint32(f.fullVolume)<<8 < f.fadeInCur {
			return f.fullVolume, false
		}
		return coarse(f.fadeInCur), false
	}
	f.FadingIn = false
	return f.fullVolume, true
}

// AdvanceFadeOut steps the fade-out accumulator one tick. justCompleted
// signals the caller to stop dispatching events for this tick;
// shouldStopPlayback additionally signals that playback should halt, which
// the engine does by calling Stop. On
// completion the volume reported is the pre-fade full volume (not zero) —
// harmless, since the stop transition mutes every voice regardless, and
// this restores exactly what the original driver did.
func (f *FadeState) AdvanceFadeOut() (volume byte, justCompleted, shouldStopPlayback bool) {
	if !f.FadingOut {
		return 0, false, false
	}
	if coarse(f.fadeOutCur) > 0 {
		if f.fadeOutCur < f.fadeOutDec {
			f.fadeOutCur = 0
		} else {
			f.fadeOutCur -= f.fadeOutDec
		}
		return coarse(f.fadeOutCur), false, false
	}
	f.FadingOut = false
	return f.fullVolume, true, true
}
