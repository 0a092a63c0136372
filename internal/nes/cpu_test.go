package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type memMock struct {
	mock.Mock
}

func (m *memMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *memMock) Write8(addr uint16, data uint8) {
	m.Called(addr, data)
}

// newTestCPU builds a CPU over a full 32 KiB PRG bank with the program
// at $8000 and the reset vector pointing there.
func newTestCPU(program []uint8) (*CPU, *Memory) {
	prg := make([]uint8, 0x8000)
	copy(prg, program)
	prg[0x7ffc] = 0x00
	prg[0x7ffd] = 0x80
	mem := NewMemory(prg)
	return NewCPU(mem), mem
}

func Test_Reset(t *testing.T) {
	prg := make([]uint8, 0x8000)
	prg[0x7ffc] = 0x34
	prg[0x7ffd] = 0x12
	cpu := NewCPU(NewMemory(prg))

	assert.EqualValues(t, 0x1234, cpu.pc, "PC from the reset vector")
	assert.EqualValues(t, 0xfd, cpu.sp)
	assert.EqualValues(t, flagU|flagI, cpu.p)
	assert.EqualValues(t, 0, cpu.a)
	assert.EqualValues(t, 0, cpu.x)
	assert.EqualValues(t, 0, cpu.y)
}

func Test_LoadImmediate(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint8
		regOf  func(*CPU) uint8
	}{
		{name: "LDA", opcode: 0xa9, regOf: func(c *CPU) uint8 { return c.a }},
		{name: "LDX", opcode: 0xa2, regOf: func(c *CPU) uint8 { return c.x }},
		{name: "LDY", opcode: 0xa0, regOf: func(c *CPU) uint8 { return c.y }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for v := 0; v < 0x100; v++ {
				cpu, _ := newTestCPU([]uint8{tc.opcode, uint8(v)})
				cpu.Step()

				assert.EqualValues(t, v, tc.regOf(cpu), "register for operand %02X", v)
				assert.Equal(t, v == 0, cpu.p&flagZ != 0, "Z for operand %02X", v)
				assert.Equal(t, v&0x80 != 0, cpu.p&flagN != 0, "N for operand %02X", v)
				assert.EqualValues(t, 0x8002, cpu.pc, "PC advances by two")
			}
		})
	}
}

func Test_INX(t *testing.T) {
	t.Run("advances PC by one", func(t *testing.T) {
		cpu, _ := newTestCPU([]uint8{0xe8})
		cpu.Step()

		assert.EqualValues(t, 1, cpu.x)
		assert.EqualValues(t, 0x8001, cpu.pc)
	})

	t.Run("wraps from ff to zero", func(t *testing.T) {
		cpu, _ := newTestCPU([]uint8{0xa2, 0xff, 0xe8})
		cpu.Step()
		cpu.Step()

		assert.EqualValues(t, 0, cpu.x)
		assert.NotZero(t, cpu.p&flagZ)
		assert.Zero(t, cpu.p&flagN)
	})

	t.Run("sets negative at 80", func(t *testing.T) {
		cpu, _ := newTestCPU([]uint8{0xa2, 0x7f, 0xe8})
		cpu.Step()
		cpu.Step()

		assert.EqualValues(t, 0x80, cpu.x)
		assert.Zero(t, cpu.p&flagZ)
		assert.NotZero(t, cpu.p&flagN)
	})
}

func Test_DEX(t *testing.T) {
	t.Run("wraps from zero to ff", func(t *testing.T) {
		cpu, _ := newTestCPU([]uint8{0xca})
		cpu.Step()

		assert.EqualValues(t, 0xff, cpu.x)
		assert.Zero(t, cpu.p&flagZ)
		assert.NotZero(t, cpu.p&flagN)
		assert.EqualValues(t, 0x8001, cpu.pc)
	})

	t.Run("reaches zero", func(t *testing.T) {
		cpu, _ := newTestCPU([]uint8{0xa2, 0x01, 0xca})
		cpu.Step()
		cpu.Step()

		assert.EqualValues(t, 0, cpu.x)
		assert.NotZero(t, cpu.p&flagZ)
		assert.Zero(t, cpu.p&flagN)
	})
}

func Test_STA(t *testing.T) {
	mem := new(memMock)
	// reset vector -> $8000
	mem.On("Read8", uint16(0xfffc)).Return(uint8(0x00))
	mem.On("Read8", uint16(0xfffd)).Return(uint8(0x80))
	// LDA #$42; STA $0200
	mem.On("Read8", uint16(0x8000)).Return(uint8(0xa9))
	mem.On("Read8", uint16(0x8001)).Return(uint8(0x42))
	mem.On("Read8", uint16(0x8002)).Return(uint8(0x8d))
	mem.On("Read8", uint16(0x8003)).Return(uint8(0x00))
	mem.On("Read8", uint16(0x8004)).Return(uint8(0x02))
	mem.On("Write8", uint16(0x0200), uint8(0x42)).Return()

	cpu := NewCPU(mem)
	cpu.Step()
	cpu.Step()

	assert.EqualValues(t, 0x8005, cpu.pc, "STA advances PC by three")
	mem.AssertExpectations(t)
}

func Test_JMP(t *testing.T) {
	cpu, _ := newTestCPU([]uint8{0x4c, 0x00, 0x80})
	cpu.Step()

	assert.EqualValues(t, 0x8000, cpu.pc, "target is absolute, not relative")
}

func Test_NOP(t *testing.T) {
	cpu, _ := newTestCPU([]uint8{0xea})
	p := cpu.p
	cpu.Step()

	assert.EqualValues(t, 0x8001, cpu.pc)
	assert.Equal(t, p, cpu.p)
	assert.EqualValues(t, 0, cpu.a)
	assert.EqualValues(t, 0, cpu.x)
	assert.EqualValues(t, 0, cpu.y)
}

func Test_UnknownOpcodesAreInert(t *testing.T) {
	t.Run("unassigned opcode advances PC by one", func(t *testing.T) {
		cpu, _ := newTestCPU([]uint8{0xff, 0xff, 0xff})
		p := cpu.p
		cpu.Step()

		assert.EqualValues(t, 0x8001, cpu.pc)
		assert.Equal(t, p, cpu.p, "flags untouched")
		assert.EqualValues(t, 0, cpu.a)
	})

	t.Run("BRK behaves as NOP", func(t *testing.T) {
		cpu, _ := newTestCPU([]uint8{0x00, 0x00})
		cpu.Step()

		assert.EqualValues(t, 0x8001, cpu.pc)
		assert.EqualValues(t, 0xfd, cpu.sp, "no stack push")

		// no halt state: stepping continues after BRK
		cpu.Step()
		assert.EqualValues(t, 0x8002, cpu.pc)
	})
}

func Test_StoreAndLoop(t *testing.T) {
	cpu, mem := newTestCPU([]uint8{0xa9, 0x05, 0x8d, 0x00, 0x02, 0x4c, 0x00, 0x80})
	for i := 0; i < 3; i++ {
		cpu.Step()
	}

	assert.EqualValues(t, 0x05, cpu.a)
	assert.EqualValues(t, 0x05, mem.Read8(0x0200))
	assert.EqualValues(t, 0x8000, cpu.pc, "JMP looped back to start")
}

func Test_opcodeImplemented(t *testing.T) {
	for _, op := range []uint8{0x4c, 0x8d, 0xa0, 0xa2, 0xa9, 0xca, 0xe8, 0xea} {
		assert.True(t, opcodeImplemented(op), "opcode %02X", op)
	}
	assert.False(t, opcodeImplemented(0x00), "BRK is recognized but not implemented")
	assert.False(t, opcodeImplemented(0x69), "ADC is outside the subset")
}
