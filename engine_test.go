package oplrhythm

import "testing"

func le16(v uint16) (lo, hi byte) {
	return byte(v & 0xFF), byte(v >> 8)
}

func testBuffer() []byte {
	lo, hi := le16(192)
	return []byte{
		'M', 'T', 'h', 'd', 120, lo, hi,
		0, 0, 0x90, 60, 100, // note on ch0 key60 vel100
		0, 0, 0xFF, 0x2F, 0, // meta end-of-track
	}
}

func TestResumeFromStoppedLoadsRegisteredBuffer(t *testing.T) {
	var writes []byte
	e := New(WithEmitFunc(func(addr, value byte) { writes = append(writes, addr) }))

	if err := e.RegisterBuffer(0, testBuffer()); err != nil {
		t.Fatalf("RegisterBuffer: %v", err)
	}
	e.Dispatch(CmdSetBufferHi, 0)
	e.Dispatch(CmdSetBufferLo, 0)
	e.Dispatch(CmdResume, 0)

	if e.Status() != StatusPlaying {
		t.Fatalf("Status() = %v, want StatusPlaying", e.Status())
	}

	e.Tick()
	if e.pool.Voices[0].InUse == false {
		t.Errorf("expected voice 0 struck after ticking through the loaded buffer")
	}
}

func TestRegisterBufferRejectsShortBuffer(t *testing.T) {
	e := New()
	if err := e.RegisterBuffer(0, []byte{1, 2, 3}); err == nil {
		t.Fatalf("expected an error for a too-short buffer")
	}
}

func TestPauseThenResumePreservesPosition(t *testing.T) {
	e := New(WithEmitFunc(func(addr, value byte) {}))
	e.RegisterBuffer(0, testBuffer())
	e.Dispatch(CmdResume, 0)
	e.Tick() // consumes the note-on

	tsBeforePause := e.interp.Timestamp
	e.Dispatch(CmdPause, 0)
	if e.Status() != StatusPaused {
		t.Fatalf("Status() = %v, want StatusPaused", e.Status())
	}

	e.Dispatch(CmdResume, 0)
	if e.Status() != StatusPlaying {
		t.Fatalf("Status() = %v, want StatusPlaying", e.Status())
	}
	if e.interp.Timestamp != tsBeforePause {
		t.Errorf("resume from paused should not re-parse the header: timestamp changed from %d to %d", tsBeforePause, e.interp.Timestamp)
	}
}

func TestStopTwiceIsNoop(t *testing.T) {
	e := New()
	e.Stop()
	e.Stop()
	if e.Status() != StatusStopped {
		t.Errorf("Status() = %v, want StatusStopped", e.Status())
	}
}

func TestTeardownMarksUninstalledAndTicksAreNoop(t *testing.T) {
	e := New(WithEmitFunc(func(addr, value byte) {}))
	e.RegisterBuffer(0, testBuffer())
	e.Dispatch(CmdResume, 0)

	e.Teardown()
	if e.Installed() {
		t.Fatalf("expected Installed()=false after Teardown")
	}

	before := e.interp.Timestamp
	e.Tick()
	if e.interp.Timestamp != before {
		t.Errorf("Tick() after Teardown should not advance the interpreter")
	}
}

func TestTickRatioHasNoDivideByZero(t *testing.T) {
	e := New()
	if ratio := e.TickRatio(); ratio == 0 {
		t.Errorf("TickRatio() = 0, should floor at 1")
	}
}
