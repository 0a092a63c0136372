package nes

import (
	"fmt"
	"io"
)

// WriteINES writes a minimal iNES image: the 4-byte signature, bank
// counts for PRG and CHR, ten zero bytes (no mapper, no trainer, no
// flags), then the raw payloads. Payload lengths are floor-divided by
// the bank size, so a partial trailing bank is written but not counted
// in the header.
func WriteINES(w io.Writer, prgRom, chrRom []uint8) error {
	var header [headerSizeBytes]uint8
	copy(header[:], inesMagic[:])
	header[4] = uint8(len(prgRom) / prgBankSizeBytes)
	header[5] = uint8(len(chrRom) / chrBankSizeBytes)

	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("couldn't write the header: %w", err)
	}
	if _, err := w.Write(prgRom); err != nil {
		return fmt.Errorf("couldn't write PRG ROM: %w", err)
	}
	if len(chrRom) > 0 {
		if _, err := w.Write(chrRom); err != nil {
			return fmt.Errorf("couldn't write CHR ROM: %w", err)
		}
	}
	return nil
}
