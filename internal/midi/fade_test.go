package midi

import "testing"

func TestFadeInRampsToFullVolume(t *testing.T) {
	var f FadeState
	f.StartFadeIn(127, 4, 10) // 40 ticks to ramp

	var last byte
	completed := false
	for i := 0; i < 100 && !completed; i++ {
		v, done := f.AdvanceFadeIn()
		last = v
		completed = done
	}
	if !completed {
		t.Fatalf("fade-in never completed within 100 ticks")
	}
	if last != 127 {
		t.Errorf("fade-in completed at volume %d, want 127", last)
	}
	if f.FadingIn {
		t.Errorf("FadingIn still true after completion")
	}
}

func TestFadeInIsMonotonicWhileActive(t *testing.T) {
	var f FadeState
	f.StartFadeIn(100, 2, 20)

	prev := byte(0)
	for i := 0; i < 10; i++ {
		v, done := f.AdvanceFadeIn()
		if done {
			break
		}
		if v < prev {
			t.Fatalf("fade-in volume decreased: %d -> %d", prev, v)
		}
		prev = v
	}
}

func TestFadeOutRampsToSilenceAndSignalsStop(t *testing.T) {
	var f FadeState
	f.StartFadeOut(127, 4, 10)

	completed, stop := false, false
	for i := 0; i < 100 && !completed; i++ {
		_, done, shouldStop := f.AdvanceFadeOut()
		completed = done
		stop = shouldStop
	}
	if !completed {
		t.Fatalf("fade-out never completed within 100 ticks")
	}
	if !stop {
		t.Errorf("fade-out completion should signal playback stop")
	}
	if f.FadingOut {
		t.Errorf("FadingOut still true after completion")
	}
}

func TestFadeOutCannotReenterWhileRunning(t *testing.T) {
	var f FadeState
	f.StartFadeOut(127, 4, 10)
	firstDec := f.fadeOutDec

	f.StartFadeOut(50, 1, 1) // should be ignored entirely

	if f.fadeOutDec != firstDec {
		t.Errorf("second StartFadeOut call mutated state while a fade-out was already in progress")
	}
}

func TestAdvanceWhenNotFadingIsNoop(t *testing.T) {
	var f FadeState
	v, done := f.AdvanceFadeIn()
	if v != 0 || done {
		t.Errorf("AdvanceFadeIn with no fade in progress should be a no-op")
	}
	v, done, stop := f.AdvanceFadeOut()
	if v != 0 || done || stop {
		t.Errorf("AdvanceFadeOut with no fade in progress should be a no-op")
	}
}
