// Package frontend adapts a console.Console to the ebiten.Game interface
// so the emulator core can be driven by ebiten's run loop. Pixel-accurate
// rendering is out of scope for this core; Draw proves the PPU's palette
// memory is wired to something visible rather than claiming full
// rendering.
package frontend

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/claude/gintendo/console"
	"github.com/claude/gintendo/ppu"
)

const (
	screenWidth  = 256
	screenHeight = 240

	// cyclesPerFrame is the NTSC CPU cycle budget for one 60 Hz frame.
	cyclesPerFrame = 29780
)

// Game wraps a Console as an ebiten.Game.
type Game struct {
	Console *console.Console
}

// New builds a frontend around an already-wired console, setting the
// window to the NES's fixed resolution.
func New(c *console.Console) *Game {
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("gintendo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return &Game{Console: c}
}

// Update drives the console's clock by one frame's worth of CPU cycles.
func (g *Game) Update() error {
	for i := 0; i < cyclesPerFrame; i++ {
		if err := g.Console.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Draw paints the screen with the RGB color the system palette maps
// background palette entry 0 to.
func (g *Game) Draw(screen *ebiten.Image) {
	entry := g.Console.PPUBus.Read(0x3F00)
	r, gr, b := ppu.RGB(entry)
	screen.Fill(color.RGBA{R: r, G: gr, B: b, A: 0xFF})
}

// Layout reports the NES's fixed resolution, matching the teacher's
// convention of ignoring the outer window size and letting ebiten scale.
func (g *Game) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}
