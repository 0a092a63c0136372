package nes

const resetVectorAddr = uint16(0xfffc)

const (
	flagC = uint8(1 << iota) // Carry (not modeled)
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode (not modeled)
	flagB                    // Break Command (not modeled)
	flagU                    // Unused
	flagV                    // Overflow (not modeled)
	flagN                    // Negative
)

type addrMode uint8

const (
	addrModeIMM addrMode = iota + 1 // Immediate
	addrModeABS                     // Absolute
	addrModeIMP                     // Implied
)

type instr struct {
	name string
	mode addrMode
	fn   func()

	// implemented distinguishes real instruction semantics from the
	// recognized-but-inert entries (BRK, every unassigned opcode).
	// Both no-op today, but they are not the same thing: an
	// unimplemented entry is a hole to fill, NOP is done.
	implemented bool
}

// CPU is a 6502 instruction executor over the subset this core
// implements. All registers are exclusively owned by one session;
// Step is not safe for concurrent use.
type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	p  uint8
	sp uint8
	pc uint16

	mem    ReadWriter
	instrs [0x100]instr

	operandAddr  uint16
	operandValue uint8
}

// NewCPU builds the executor over mem and loads the initial PC from
// the reset vector at $FFFC.
func NewCPU(mem ReadWriter) *CPU {
	c := &CPU{mem: mem}
	c.initInstructions()
	c.Reset()
	return c
}

func (c *CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c *CPU) read16(addr uint16) uint16 {
	return uint16(c.read8(addr)) | uint16(c.read8(addr+1))<<8
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

// Reset returns the CPU to its initial state: registers cleared,
// SP at $FD, interrupts disabled, PC read from the reset vector.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.p = 0x00 | flagU | flagI
	c.sp = 0xfd
	c.pc = c.read16(resetVectorAddr)
}

// Step runs exactly one fetch-decode-execute cycle. Unknown opcodes
// are inert: PC advances past them and Step stays callable forever.
// There is no halt state.
func (c *CPU) Step() {
	opcode := c.read8(c.pc)
	c.pc++
	in := c.instrs[opcode]
	c.fetch(in.mode)
	in.fn()

	c.operandAddr = 0
	c.operandValue = 0
}

// fetch reads the operand for the current instruction and advances PC
// past it.
func (c *CPU) fetch(mode addrMode) {
	switch mode {
	case addrModeIMM:
		c.operandAddr = c.pc
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABS:
		c.operandAddr = c.read16(c.pc)
		c.pc += 2

	case addrModeIMP:
	}
}

// Load Accumulator
// A <- M
//
// Flags affected: Z, N
func (c *CPU) lda() {
	c.a = c.operandValue
	c.setFlagsZN(c.a)
}

// Load X Register
// X <- M
//
// Flags affected: Z, N
func (c *CPU) ldx() {
	c.x = c.operandValue
	c.setFlagsZN(c.x)
}

// Load Y Register
// Y <- M
//
// Flags affected: Z, N
func (c *CPU) ldy() {
	c.y = c.operandValue
	c.setFlagsZN(c.y)
}

// Store Accumulator
// M <- A
//
// Flags affected: None
func (c *CPU) sta() {
	c.write8(c.operandAddr, c.a)
}

// Jump
// PC <- address (absolute, not relative to the instruction)
//
// Flags affected: None
func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

// Increment X Register
// X + 1
//
// Flags affected: Z, N
func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

// Decrement X Register
// X - 1
//
// Flags affected: Z, N
func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

// No Operation
func (c *CPU) nop() {
}

func (c *CPU) initInstructions() {
	for i := range c.instrs {
		c.instrs[i] = instr{name: "???", mode: addrModeIMP, fn: c.nop}
	}

	// BRK is recognized but not implemented: no stack push, no
	// interrupt vector fetch. It stays tabled by name so completing
	// it later is a table edit.
	c.instrs[0x00] = instr{name: "BRK", mode: addrModeIMP, fn: c.nop}

	c.instrs[0x4c] = instr{name: "JMP", mode: addrModeABS, fn: c.jmp, implemented: true}
	c.instrs[0x8d] = instr{name: "STA", mode: addrModeABS, fn: c.sta, implemented: true}
	c.instrs[0xa0] = instr{name: "LDY", mode: addrModeIMM, fn: c.ldy, implemented: true}
	c.instrs[0xa2] = instr{name: "LDX", mode: addrModeIMM, fn: c.ldx, implemented: true}
	c.instrs[0xa9] = instr{name: "LDA", mode: addrModeIMM, fn: c.lda, implemented: true}
	c.instrs[0xca] = instr{name: "DEX", mode: addrModeIMP, fn: c.dex, implemented: true}
	c.instrs[0xe8] = instr{name: "INX", mode: addrModeIMP, fn: c.inx, implemented: true}
	c.instrs[0xea] = instr{name: "NOP", mode: addrModeIMP, fn: c.nop, implemented: true}
}

func opcodeImplemented(opcode uint8) bool {
	c := &CPU{}
	c.initInstructions()
	return c.instrs[opcode].implemented
}
