package main

import (
	"flag"
	"log"

	"github.com/pkg/profile"

	"nesticle/internal/nes"
	"nesticle/internal/ui"
)

func main() {
	romFile := flag.String("rom", "", "path to an iNES ROM file")
	profileMode := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *profileMode {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	bus := nes.NewBus()
	u := ui.New(bus)

	if *romFile != "" {
		if err := u.LoadROM(*romFile); err != nil {
			log.Fatalf("couldn't load the ROM: %s\n", err)
		}
	}

	if err := ui.RunUI(u); err != nil {
		log.Fatalf("couldn't run the UI: %s\n", err)
	}
}
