package nes

import "image"

const (
	screenWidthPx  = 256
	screenHeightPx = 240
)

// PPU is a rendering stub: it holds the CHR ROM and keeps scanline
// bookkeeping, but the output frame stays black. Tile and sprite data
// are never read.
type PPU struct {
	chrMem []uint8
	frame  *image.RGBA

	cycles   uint16
	scanLine uint16
	frames   uint64
}

func NewPPU(chrRom []uint8) *PPU {
	p := &PPU{
		chrMem: chrRom,
		frame:  image.NewRGBA(image.Rect(0, 0, screenWidthPx, screenHeightPx)),
	}
	// opaque black
	for i := 3; i < len(p.frame.Pix); i += 4 {
		p.frame.Pix[i] = 0xff
	}
	return p
}

func (p *PPU) Tic() {
	p.cycles++
	if p.cycles > 340 {
		p.cycles = 0
		p.scanLine++

		if p.scanLine > 260 {
			p.scanLine = 0
			p.frames++
		}
	}
}

// Frame returns the current output frame.
func (p *PPU) Frame() image.Image {
	return p.frame
}

// FrameCount reports how many whole frames of scanline bookkeeping
// have elapsed.
func (p *PPU) FrameCount() uint64 {
	return p.frames
}
