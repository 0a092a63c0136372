package nes

type ReadWriter interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, data uint8)
}

// $0000-$07FF: 2 KB of internal RAM
// $0800-$1FFF: Mirrors of $0000-$07FF
// $2000-$7FFF: PPU/APU/mapper registers, not wired: reads return 0, writes are dropped
// $8000-$FFFF: PRG ROM, mirrored over the actual buffer length
type Memory struct {
	ram *RAM
	prg []uint8
}

func NewMemory(prgRom []uint8) *Memory {
	return &Memory{
		ram: NewRAM(),
		prg: prgRom,
	}
}

// Read8 never fails: unmapped addresses read as 0.
func (m *Memory) Read8(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return m.ram.Read8(addr % ramSizeBytes)
	case addr >= 0x8000:
		if len(m.prg) == 0 {
			return 0
		}
		// mirror over the actual length, not the declared one: a
		// truncated image banks differently and that is kept as-is
		return m.prg[int(addr-0x8000)%len(m.prg)]
	}
	return 0
}

// Write8 takes effect only below $2000. Writes to ROM or unmapped
// regions are discarded, not an error.
func (m *Memory) Write8(addr uint16, data uint8) {
	if addr < 0x2000 {
		m.ram.Write8(addr%ramSizeBytes, data)
	}
}

// Read16 reads a little-endian word. The high byte address wraps at the
// top of the address space and then goes through the same mirroring
// rules as any other read.
func (m *Memory) Read16(addr uint16) uint16 {
	lo := uint16(m.Read8(addr))
	hi := uint16(m.Read8(addr + 1))
	return lo | hi<<8
}

// Reset zeroes the RAM. The PRG ROM is read-only for the lifetime of
// the Memory and is left untouched.
func (m *Memory) Reset() {
	m.ram.Reset()
}
