// Command gintendo loads an NES ROM and either runs it under ebiten or
// drops into a register-level debug REPL.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/claude/gintendo/cartridge"
	"github.com/claude/gintendo/console"
	"github.com/claude/gintendo/frontend"
)

var (
	romPath = flag.String("rom", "", "Path to the .nes ROM to load.")
	debug   = flag.Bool("debug", false, "Drop into the register-level debug REPL instead of running the frontend.")
)

func main() {
	flag.Parse()

	if *romPath == "" {
		log.Fatalf("missing -rom")
	}

	data, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("reading ROM: %v", err)
	}

	cart, err := cartridge.Load(data)
	if err != nil {
		log.Fatalf("loading cartridge: %v", err)
	}

	con, err := console.New(cart)
	if err != nil {
		log.Fatalf("wiring console: %v", err)
	}

	if *debug {
		con.Debug(context.Background())
		return
	}

	if err := ebiten.RunGame(frontend.New(con)); err != nil {
		log.Fatal(err)
	}
}
