// Command inesfmt wraps raw PRG and CHR ROM binaries in a minimal
// iNES header.
package main

import (
	"flag"
	"log"
	"os"

	"nesticle/internal/nes"
)

func main() {
	prgFile := flag.String("prg", "", "path to the raw PRG ROM binary (required)")
	chrFile := flag.String("chr", "", "path to the raw CHR ROM binary (optional)")
	outFile := flag.String("o", "output.nes", "path to the output .nes file")
	flag.Parse()

	if *prgFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	prgRom, err := os.ReadFile(*prgFile)
	if err != nil {
		log.Fatalf("couldn't read PRG ROM: %s\n", err)
	}

	var chrRom []uint8
	if *chrFile != "" {
		chrRom, err = os.ReadFile(*chrFile)
		if err != nil {
			log.Fatalf("couldn't read CHR ROM: %s\n", err)
		}
	}

	out, err := os.Create(*outFile)
	if err != nil {
		log.Fatalf("couldn't create the output file: %s\n", err)
	}
	defer out.Close()

	if err := nes.WriteINES(out, prgRom, chrRom); err != nil {
		log.Fatalf("couldn't write the ROM: %s\n", err)
	}
	log.Printf("iNES ROM written to %s\n", *outFile)
}
