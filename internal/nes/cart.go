package nes

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
)

const (
	headerSizeBytes  = 16
	trainerSizeBytes = 512
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
)

// "NES" followed by the MS-DOS EOF marker.
var inesMagic = [4]uint8{0x4e, 0x45, 0x53, 0x1a}

// ErrInvalidFormat reports that a buffer does not start with the iNES
// signature. Callers must not build a session from the rejected data.
var ErrInvalidFormat = errors.New("invalid iNES signature")

// Cart holds a parsed cartridge image. PRG ROM is read by the CPU
// through the address space; CHR ROM is handed to the PPU and is
// otherwise unused by this core.
type Cart struct {
	prgMem []uint8
	chrMem []uint8
}

func NewCart(prgRom, chrRom []uint8) *Cart {
	return &Cart{
		prgMem: prgRom,
		chrMem: chrRom,
	}
}

// NewCartFromFile reads a .nes file and parses it.
// Supported NES format: iNES
func NewCartFromFile(path string) (*Cart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the file: %w", err)
	}
	prgRom, chrRom, err := ParseINES(data)
	if err != nil {
		return nil, err
	}
	return NewCart(prgRom, chrRom), nil
}

// ParseINES splits an iNES image into its PRG and CHR payloads.
//
// The declared sizes are not validated against the actual file length:
// a truncated image yields shorter-than-declared buffers silently, and
// the address space then mirrors over what is actually there.
func ParseINES(data []uint8) (prgRom, chrRom []uint8, err error) {
	if len(data) < len(inesMagic) || !bytes.Equal(data[:len(inesMagic)], inesMagic[:]) {
		return nil, nil, ErrInvalidFormat
	}

	var header struct {
		Magic      [4]uint8
		PrgRomSize uint8
		ChrRomSize uint8
		Flags6     uint8
		_          [9]uint8 // mapper, mirroring etc. are out of scope
	}
	if err := binary.Read(bytes.NewReader(data), binary.LittleEndian, &header); err != nil {
		return nil, nil, fmt.Errorf("couldn't read the header: %w", err)
	}

	body := data[headerSizeBytes:]
	// the third bit of flags6 is the trainer flag
	if header.Flags6&0x04 != 0 {
		if len(body) < trainerSizeBytes {
			body = nil
		} else {
			body = body[trainerSizeBytes:]
		}
	}

	prgSize := min(int(header.PrgRomSize)*prgBankSizeBytes, len(body))
	prgRom = body[:prgSize]
	body = body[prgSize:]

	chrSize := min(int(header.ChrRomSize)*chrBankSizeBytes, len(body))
	chrRom = body[:chrSize]

	return prgRom, chrRom, nil
}

func (c Cart) PrgRom() []uint8 {
	return c.prgMem
}

func (c Cart) ChrRom() []uint8 {
	return c.chrMem
}
