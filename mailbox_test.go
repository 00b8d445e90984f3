package oplrhythm

import "testing"

func TestDispatchSetAndQueryMasterVolume(t *testing.T) {
	e := New()
	e.Dispatch(CmdSetMasterVolume, 100)
	if got := e.Dispatch(CmdQueryVolume, 0); got != 100 {
		t.Errorf("CmdQueryVolume = %d, want 100", got)
	}
}

func TestDispatchSetAndQueryTempo(t *testing.T) {
	e := New()
	e.Dispatch(CmdSetTempo, 140)
	if got := e.Dispatch(CmdQueryTempo, 0); got != 140 {
		t.Errorf("CmdQueryTempo = %d, want 140", got)
	}
}

func TestDispatchSetAndQueryLoop(t *testing.T) {
	e := New()
	e.Dispatch(CmdSetLoop, 1)
	if got := e.Dispatch(CmdQueryLoop, 0); got != 1 {
		t.Errorf("CmdQueryLoop = %d, want 1", got)
	}
	e.Dispatch(CmdSetLoop, 0)
	if got := e.Dispatch(CmdQueryLoop, 0); got != 0 {
		t.Errorf("CmdQueryLoop = %d, want 0", got)
	}
}

func TestDispatchChannelProgramRoundTrip(t *testing.T) {
	e := New()
	param := uint16(3) | uint16(42)<<8 // channel 3, program 42
	e.Dispatch(CmdSetChannelProgram, param)
	got := e.Dispatch(CmdQueryChannelProgram, 3)
	if got != 42 {
		t.Errorf("CmdQueryChannelProgram = %d, want 42", got)
	}
}

func TestDispatchChannelVolume(t *testing.T) {
	e := New()
	param := uint16(5) | uint16(90)<<8 // channel 5, volume 90
	e.Dispatch(CmdSetChannelVolume, param)
	if v := e.interp.Channels[5].Volume; v != 90 {
		t.Errorf("Channels[5].Volume = %d, want 90", v)
	}
}

func TestDispatchVersionQueries(t *testing.T) {
	e := New()
	if got := e.Dispatch(CmdQueryVersionMajor, 0); byte(got) != VersionMajor {
		t.Errorf("CmdQueryVersionMajor = %d, want %d", got, VersionMajor)
	}
	if got := e.Dispatch(CmdQueryVersionMinor, 0); byte(got) != VersionMinor {
		t.Errorf("CmdQueryVersionMinor = %d, want %d", got, VersionMinor)
	}
}

func TestDispatchQueryStatusReflectsLifecycle(t *testing.T) {
	e := New()
	if got := e.Dispatch(CmdQueryStatus, 0); Status(got) != StatusStopped {
		t.Errorf("CmdQueryStatus = %d, want StatusStopped", got)
	}
	e.RegisterBuffer(0, testBuffer())
	e.Dispatch(CmdResume, 0)
	if got := e.Dispatch(CmdQueryStatus, 0); Status(got) != StatusPlaying {
		t.Errorf("CmdQueryStatus = %d, want StatusPlaying", got)
	}
}

func TestPostCommandDrainedOnTick(t *testing.T) {
	e := New()
	e.PostCommand(CmdSetMasterVolume, 55)
	e.Tick()
	if e.interp.Volume != 55 {
		t.Errorf("Volume after tick-drained command = %d, want 55", e.interp.Volume)
	}
	if got := e.Dispatch(CmdQueryVolume, 0); got != 55 {
		t.Errorf("CmdQueryVolume after drain = %d, want 55", got)
	}
}

func TestDispatchSetAndQueryFadeRate(t *testing.T) {
	e := New()
	e.Dispatch(CmdSetFadeRate, 3)
	if got := e.Dispatch(CmdQueryFadeRate, 0); got != 3 {
		t.Errorf("CmdQueryFadeRate = %d, want 3", got)
	}
}
