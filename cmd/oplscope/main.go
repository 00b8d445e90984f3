// Command oplscope is a small ebiten visualizer for the oplrhythm engine's
// register-write protocol: one strip per hardware voice (0-5 melodic, 6-8
// percussion via the 0xBD mask bits), flashing on key-on, plus a text
// readout of playback status and tick rate; tempo, master volume and the
// mailbox state are not shown. It renders no
// audio — only the register traffic the engine would otherwise send to a
// real OPL2 chip.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	oplrhythm "github.com/cbegin/oplrhythm-go"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	windowW = 720
	windowH = 360

	numStrips  = 9 // voices 0-5 melodic, 6-8 the rhythm-mode voices lit from the 0xBD key-on bits (see percussionVoice)
	stripH     = 28
	stripPad   = 6
	flashTicks = 6
)

type game struct {
	engine   *oplrhythm.Engine
	lastTick time.Time
	hz       uint32

	flash [numStrips]int // remaining frames to render a strip "hot"
}

func (g *game) Update() error {
	now := time.Now()
	if g.hz == 0 {
		g.hz = 1
	}
	period := time.Second / time.Duration(g.hz)
	for now.Sub(g.lastTick) >= period {
		g.engine.Tick()
		g.lastTick = g.lastTick.Add(period)
	}
	for i := range g.flash {
		if g.flash[i] > 0 {
			g.flash[i]--
		}
	}
	return nil
}

// percussionVoice maps each 0xBD key-on bit to the hardware voice it sounds
// on: hi-hat 7, cymbal 8, tom 8, snare 7, bass drum 6.
var percussionVoice = [5]int{7, 8, 8, 7, 6}

func (g *game) trace(addr, value byte) {
	switch {
	case addr >= 0xB0 && addr <= 0xB8 && value&0x20 != 0:
		g.flash[addr-0xB0] = flashTicks
	case addr == 0xBD:
		for bit := 0; bit < 5; bit++ {
			if value&(1<<bit) != 0 {
				g.flash[percussionVoice[bit]] = flashTicks
			}
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{16, 16, 20, 255})

	for i := 0; i < numStrips; i++ {
		y := stripPad + i*(stripH+stripPad)
		base := color.RGBA{40, 40, 48, 255}
		if g.flash[i] > 0 {
			base = color.RGBA{80, 200, 255, 255}
		}
		ebitenutil.DrawRect(screen, stripPad, float64(y), windowW-2*stripPad, float64(stripH), base)
		label := fmt.Sprintf("voice %d", i)
		if i >= 6 {
			label = fmt.Sprintf("voice %d (percussion)", i)
		}
		ebitenutil.DebugPrintAt(screen, label, stripPad+6, y+8)
	}

	readout := fmt.Sprintf("status=%v  tick-rate=%d Hz", g.engine.Status(), g.hz)
	ebitenutil.DebugPrintAt(screen, readout, stripPad, windowH-20)
}

func (g *game) Layout(outsideW, outsideH int) (int, int) {
	return windowW, windowH
}

func main() {
	path := flag.String("file", "", "path to a raw MIDI-style buffer")
	loop := flag.Bool("loop", true, "loop playback")
	flag.Parse()

	if *path == "" {
		log.Fatal("oplscope: -file is required")
	}
	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatal(err)
	}

	g := &game{lastTick: time.Now(), hz: 1}
	g.engine = oplrhythm.New(
		oplrhythm.WithEmitFunc(func(addr, value byte) { g.trace(addr, value) }),
		oplrhythm.WithTimerHooks(func(hz uint32) { g.hz = hz }, func() {}),
	)
	if err := g.engine.RegisterBuffer(0, data); err != nil {
		log.Fatal(err)
	}
	g.engine.Dispatch(oplrhythm.CmdSetBufferHi, 0)
	g.engine.Dispatch(oplrhythm.CmdSetBufferLo, 0)
	if *loop {
		g.engine.Dispatch(oplrhythm.CmdSetLoop, 1)
	}
	g.engine.Dispatch(oplrhythm.CmdResume, 0)

	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowTitle("oplscope — register activity")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
