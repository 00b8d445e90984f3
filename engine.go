// Package oplrhythm implements a real-time MIDI sequencer and OPL2-compatible
// FM-synthesis engine running in rhythm (percussion) mode: a Standard-MIDI
// style byte buffer drives six melodic voices and five percussion
// instruments through a register emitter, on a host-supplied periodic tick.
package oplrhythm

import (
	"fmt"

	"github.com/cbegin/oplrhythm-go/internal/midi"
	"github.com/cbegin/oplrhythm-go/internal/opl"
)

// Status is the engine's playback lifecycle state.
type Status int

const (
	StatusStopped Status = iota
	StatusPlaying
	StatusPaused
)

// Params holds engine-wide tunables that are not part of the wire format.
type Params struct {
	// DivisionFallback is the division new engines start with before any
	// buffer is loaded. A loaded buffer's division word replaces it; an
	// out-of-range word is clamped by the interpreter to 192, not to this
	// value.
	DivisionFallback uint16
	// FadeRate is the divisor in the fade-envelope ramp time
	// (rate * division ticks to complete a fade).
	FadeRate uint32
	// MasterVolume is the engine's initial master volume (0..127).
	MasterVolume byte
}

// DefaultParams returns the conventional defaults: 192 PPQN, a fade rate of
// 1, and full master volume.
func DefaultParams() Params {
	return Params{DivisionFallback: 192, FadeRate: 1, MasterVolume: 127}
}

type engineConfig struct {
	params      Params
	emit        opl.EmitFunc
	installTick func(hz uint32)
	removeTick  func()
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*engineConfig)

// WithParams overrides the default Params.
func WithParams(p Params) EngineOption {
	return func(cfg *engineConfig) { cfg.params = p }
}

// WithEmitFunc installs the register-write sink. Without one, register
// writes are silently discarded — useful for allocator/level unit tests
// that never touch a real chip.
func WithEmitFunc(emit opl.EmitFunc) EngineOption {
	return func(cfg *engineConfig) { cfg.emit = emit }
}

// WithTimerHooks installs the host's periodic-timer install/remove
// callbacks. install is called with the tick rate in Hz whenever the engine
// (re)starts playback or changes tempo; remove is called on pause, stop and
// teardown. Both are optional.
func WithTimerHooks(install func(hz uint32), remove func()) EngineOption {
	return func(cfg *engineConfig) {
		cfg.installTick = install
		cfg.removeTick = remove
	}
}

// Engine is the single owned value holding every piece of driver state: the
// voice pool, the register emitter, the MIDI interpreter and channel table,
// the fade envelope, and the command mailbox. Callers must serialize their
// own calls to Tick and Dispatch/PostCommand — the engine matches the
// original single-hardware-interrupt model and does no internal locking.
type Engine struct {
	params    Params
	status    Status
	installed bool

	pool    *opl.Pool
	emitter *opl.Emitter
	driver  *opl.Driver
	interp  *midi.Interpreter
	fade    midi.FadeState

	installTick func(hz uint32)
	removeTick  func()

	fadeInFlag, fadeOutFlag bool

	buffers               map[uint32][]byte
	pendingHi, pendingLo  uint16
	pendingSize           uint32

	pendingCommand byte
	pendingParam   uint16
}

// New builds a fresh engine: default params plus any options, OPL rhythm
// mode established, and the driver marked installed.
func New(opts ...EngineOption) *Engine {
	cfg := engineConfig{params: DefaultParams()}
	for _, opt := range opts {
		opt(&cfg)
	}

	pool := opl.NewPool()
	emitter := opl.NewEmitter(cfg.emit)
	driver := opl.NewDriver(emitter, pool)
	interp := midi.NewInterpreter()
	interp.Volume = cfg.params.MasterVolume
	interp.Division = cfg.params.DivisionFallback

	e := &Engine{
		params:      cfg.params,
		pool:        pool,
		emitter:     emitter,
		driver:      driver,
		interp:      interp,
		installTick: cfg.installTick,
		removeTick:  cfg.removeTick,
		buffers:     make(map[uint32][]byte),
	}
	e.driver.Init()
	e.installed = true
	return e
}

// RegisterBuffer associates a host-chosen numeric handle with the raw MIDI
// buffer bytes it names. There is no real segmented host memory to address
// here, so the buffer-address mailbox commands (1/2/3) combine their two
// 16-bit halves into one such handle rather than reconstructing
// segment:offset arithmetic; the host calls RegisterBuffer once per song it
// wants addressable.
func (e *Engine) RegisterBuffer(handle uint32, data []byte) error {
	if len(data) < 7 {
		return fmt.Errorf("oplrhythm: buffer too short: %d bytes, need at least 7", len(data))
	}
	e.buffers[handle] = data
	return nil
}

// Status reports the current lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Installed reports whether the engine will respond to ticks and commands.
func (e *Engine) Installed() bool { return e.installed }

func boolToUint16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// setTempo recomputes the tick rate from the interpreter's tempo/division
// and reprograms the host timer through the installed hook, if any.
func (e *Engine) setTempo() {
	if e.installTick != nil {
		e.installTick(e.interp.TickRate())
	}
}

// TickRatio is the number of engine ticks between calls the host should make
// to its own previous timer handler, so a faster engine tick rate doesn't
// starve the rest of the host's timekeeping.
func (e *Engine) TickRatio() uint32 {
	rate := e.interp.TickRate()
	ratio := (rate << 4) / 291
	if ratio == 0 {
		return 1
	}
	return ratio
}

// Resume starts playback. From Stopped it re-parses the currently
// registered buffer from its header and resets voice state; from Paused it
// continues exactly where it left off. Either way it reprograms the host
// timer for the current tempo.
func (e *Engine) Resume() {
	if !e.installed {
		return
	}
	if e.status != StatusPaused {
		e.pool.Reset()
		handle := uint32(e.pendingHi)<<16 | uint32(e.pendingLo)
		if buf, ok := e.buffers[handle]; ok {
			if e.pendingSize > 0 && e.pendingSize <= uint32(len(buf)) {
				buf = buf[:e.pendingSize]
			}
			e.interp.Load(buf)
		}
		e.emitter.Write(0xBD, e.emitter.Mask())

		if e.fadeInFlag && !e.fade.FadingIn {
			e.fade.StartFadeIn(e.interp.Volume, e.params.FadeRate, uint32(e.interp.Division))
		}
	}

	e.setTempo()
	e.status = StatusPlaying
}

// Pause mutes every voice, stops the host timer, and preserves buffer
// position for a later Resume.
func (e *Engine) Pause() {
	if !e.installed {
		return
	}
	e.driver.MuteAllVoices()
	if e.removeTick != nil {
		e.removeTick()
	}
	e.status = StatusPaused
}

// Stop mutes every voice, stops the host timer, and fully resets playback
// state. Calling Stop twice is a no-op.
func (e *Engine) Stop() {
	if !e.installed {
		return
	}
	if e.status == StatusStopped {
		return
	}
	e.driver.MuteAllVoices()
	if e.removeTick != nil {
		e.removeTick()
	}
	e.status = StatusStopped
}

// FadeoutAndStop begins a fade-out if the fade-out flag is set and no
// fade-out is already running; otherwise it stops immediately.
func (e *Engine) FadeoutAndStop() {
	if !e.installed || e.status == StatusStopped {
		return
	}
	if e.fadeOutFlag && !e.fade.FadingOut {
		e.fade.StartFadeOut(e.interp.Volume, e.params.FadeRate, uint32(e.interp.Division))
		return
	}
	e.Stop()
}

// Teardown removes the host timer hook and marks the engine uninstalled;
// every subsequent Tick and Dispatch call becomes a no-op.
func (e *Engine) Teardown() {
	if !e.installed {
		return
	}
	e.driver.MuteAllVoices()
	if e.removeTick != nil {
		e.removeTick()
	}
	e.installed = false
	e.status = StatusStopped
}

// PostCommand writes a command into the single-slot mailbox. It is drained
// on the next Tick, matching the original's once-per-interrupt processing
// model.
func (e *Engine) PostCommand(command byte, parameter uint16) {
	e.pendingCommand = command
	e.pendingParam = parameter
}

// LastResult returns the parameter value left by the most recently drained
// command — the only way a query command (12, 14-16, 18, 19, 21-23, 25)
// posted through PostCommand reports back, since the mailbox is a
// fire-and-forget byte/word pair rather than a request/response call.
func (e *Engine) LastResult() uint16 { return e.pendingParam }

// Tick advances playback by one host timer period — fade envelope, MIDI
// event dispatch — and then drains any pending mailbox command. Both halves
// run every tick regardless of the other's state: a Resume command must be
// processable even while the engine is Stopped.
func (e *Engine) Tick() {
	if e.installed && e.status == StatusPlaying {
		e.tickPlayback()
	}
	if e.pendingCommand != 0 {
		e.pendingParam = e.Dispatch(e.pendingCommand, e.pendingParam)
		e.pendingCommand = 0
	}
}

func (e *Engine) tickPlayback() {
	if e.fade.FadingIn {
		vol, justCompleted := e.fade.AdvanceFadeIn()
		e.interp.Volume = vol
		if justCompleted {
			return
		}
	}
	if e.fade.FadingOut {
		vol, justCompleted, shouldStop := e.fade.AdvanceFadeOut()
		e.interp.Volume = vol
		if justCompleted {
			if shouldStop {
				e.Stop()
			}
			return
		}
	}

	tempo := e.interp.Tempo
	sig := e.interp.Advance(e.driver)
	if e.interp.Tempo != tempo {
		e.setTempo()
	}
	if sig == midi.EndStopped {
		e.Stop()
	}
}
