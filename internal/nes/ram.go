package nes

const ramSizeBytes = 0x800

// RAM is the console's 2 KB of internal work memory. Mirroring of the
// $0000-$1FFF window onto it is handled by Memory.
type RAM struct {
	ram [ramSizeBytes]uint8
}

func NewRAM() *RAM {
	return &RAM{}
}

func (r *RAM) Read8(addr uint16) uint8 {
	return r.ram[addr]
}

func (r *RAM) Write8(addr uint16, data uint8) {
	r.ram[addr] = data
}

// Reset zeroes the buffer, as on a freshly constructed session.
func (r *RAM) Reset() {
	r.ram = [ramSizeBytes]uint8{}
}
