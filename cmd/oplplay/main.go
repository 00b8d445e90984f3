// Command oplplay is a headless demo harness for the oplrhythm engine: it
// loads a raw MIDI buffer, drives the engine with a synthetic time.Ticker
// standing in for the host's periodic hardware timer, and traces every OPL
// register write to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	oplrhythm "github.com/cbegin/oplrhythm-go"
)

func main() {
	var (
		path    = flag.String("file", "", "path to a raw MIDI-style buffer (layout in SPEC_FULL.md §6)")
		loop    = flag.Bool("loop", false, "loop playback instead of stopping at end of buffer")
		trace   = flag.Bool("trace", true, "print every OPL register write")
		seconds = flag.Int("seconds", 10, "stop the demo after this many seconds of wall time")
		volume  = flag.Int("volume", 127, "initial master volume (0..127)")
	)
	flag.Parse()

	if *path == "" {
		log.Fatal("oplplay: -file is required")
	}
	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatal(err)
	}

	var hostTickCount int
	var lastHz uint32 = 1

	emit := func(addr, value byte) {
		if *trace {
			fmt.Printf("emit(0x%02X, 0x%02X)\n", addr, value)
		}
	}
	install := func(hz uint32) {
		lastHz = hz
		fmt.Printf("[timer] install %d Hz\n", hz)
	}
	remove := func() {
		fmt.Println("[timer] remove")
	}

	e := oplrhythm.New(
		oplrhythm.WithEmitFunc(emit),
		oplrhythm.WithTimerHooks(install, remove),
		oplrhythm.WithParams(oplrhythm.Params{DivisionFallback: 192, FadeRate: 1, MasterVolume: byte(*volume)}),
	)

	const handle = 0
	if err := e.RegisterBuffer(handle, data); err != nil {
		log.Fatal(err)
	}
	e.Dispatch(oplrhythm.CmdSetBufferHi, 0)
	e.Dispatch(oplrhythm.CmdSetBufferLo, handle)
	e.Dispatch(oplrhythm.CmdSetLoop, boolToParam(*loop))
	e.Dispatch(oplrhythm.CmdResume, 0)

	deadline := time.Now().Add(time.Duration(*seconds) * time.Second)
	for time.Now().Before(deadline) && e.Status() == oplrhythm.StatusPlaying {
		e.Tick()
		hostTickCount++
		if ratio := e.TickRatio(); hostTickCount%int(ratio) == 0 {
			// Stand-in for chaining to the host's own previous timer
			// handler every TickRatio() engine ticks, so a faster engine
			// tick doesn't starve the rest of the host's timekeeping.
		}
		time.Sleep(time.Second / time.Duration(max(lastHz, 1)))
	}

	fmt.Printf("stopped after %d ticks, status=%v\n", hostTickCount, e.Status())
}

func boolToParam(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}
