package nes

import "image"

// Bus is one emulation session. It exclusively owns the address space
// and the processor state; nothing here is safe for concurrent use,
// and nothing needs to be: the host drives Tic from a single loop.
type Bus struct {
	cpu  *CPU
	ppu  *PPU
	mem  *Memory
	ctrl *Controller
	cart *Cart

	paused   bool
	stepOnce bool

	ticCounter uint64
}

func NewBus() *Bus {
	return &Bus{
		ctrl: NewController(),
	}
}

// LoadCart starts a fresh session over the cartridge: a new address
// space around its PRG ROM, a new CPU with PC taken from the reset
// vector, and a new PPU holding the CHR ROM.
func (b *Bus) LoadCart(cart *Cart) {
	b.cart = cart
	b.mem = NewMemory(cart.PrgRom())
	b.cpu = NewCPU(b.mem)
	b.ppu = NewPPU(cart.ChrRom())
	b.paused = false
	b.stepOnce = false
	b.ticCounter = 0
}

func (b *Bus) Loaded() bool {
	return b.cart != nil
}

// Reset rewinds the session without re-parsing the cartridge: RAM is
// zeroed and the CPU restarts from the reset vector.
func (b *Bus) Reset() {
	if b.cart == nil {
		return
	}
	b.mem.Reset()
	b.cpu.Reset()
	b.paused = false
	b.stepOnce = false
	b.ticCounter = 0
}

// Tic advances the session by one host tick: exactly one CPU
// instruction and one PPU tick. It completes synchronously before
// returning; there is nothing to cancel.
func (b *Bus) Tic() {
	if b.cart == nil {
		return
	}
	if b.paused && !b.stepOnce {
		return
	}
	b.stepOnce = false
	b.cpu.Step()
	b.ppu.Tic()
	b.ticCounter++
}

func (b *Bus) TogglePause() {
	b.paused = !b.paused
}

// StepOnce lets exactly one Tic through while the session stays paused.
func (b *Bus) StepOnce() {
	b.paused = true
	b.stepOnce = true
}

func (b *Bus) Paused() bool {
	return b.paused
}

func (b *Bus) Controller() *Controller {
	return b.ctrl
}

// Screen returns the PPU output frame, or nil before a cart is loaded.
func (b *Bus) Screen() image.Image {
	if b.ppu == nil {
		return nil
	}
	return b.ppu.Frame()
}

// DebugState is a point-in-time register snapshot for the status
// display.
type DebugState struct {
	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  uint8

	// Op is the mnemonic tabled for the opcode at PC, "???" for
	// opcodes outside the implemented subset.
	Op string

	Tics uint64
}

// StatusString renders the flag bits as NVUBDIZC, with a dot for every
// clear bit.
func (s DebugState) StatusString() string {
	const names = "NVUBDIZC"
	buf := make([]byte, len(names))
	for i := range buf {
		buf[i] = '.'
		if s.P&(1<<(7-i)) != 0 {
			buf[i] = names[i]
		}
	}
	return string(buf)
}

func (b *Bus) DebugInfo() DebugState {
	if b.cpu == nil {
		return DebugState{}
	}
	return DebugState{
		PC:   b.cpu.pc,
		A:    b.cpu.a,
		X:    b.cpu.x,
		Y:    b.cpu.y,
		SP:   b.cpu.sp,
		P:    b.cpu.p,
		Op:   b.cpu.instrs[b.cpu.read8(b.cpu.pc)].name,
		Tics: b.ticCounter,
	}
}
