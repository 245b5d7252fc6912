/*
   R5900 CPU state definitions.

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.

*/

// Package cpu implements the R5900 Emotion Engine instruction interpreter:
// register state, the three-level opcode decoder, the per-opcode handler
// table, and the Machine aggregate that ties CPU state to memory.
package cpu

import "github.com/ps2emu/eecore/emu/memory"

// ResetVector is the PC loaded by Reset: the MIPS reset vector, which lies
// in the uncached kseg1 window onto the start of the boot ROM.
const ResetVector uint32 = 0xBFC0_0000

// PRId is the COP0 processor identification value an Emotion Engine
// reports, loaded into cop0[15] on reset.
const PRId uint32 = 0x0000_2E20

// cop0PRIdReg is the COP0 register index MFC0/MTC0 address for PRId.
const cop0PRIdReg = 15

// CPUState is the register file: PC, the 128-bit GPRs stored as four
// little-endian 32-bit lanes, COP0, HI/LO, and the branch-delay pending
// fields. gpr[0] is never written by any of the helpers below, so it reads
// as zero unconditionally, satisfying the register-zero invariant at the
// write side rather than special-casing every read.
type CPUState struct {
	PC  uint32
	iPC uint32 // address of the instruction currently executing, for link/jump math

	GPR  [32][4]uint32
	COP0 [32]uint32
	HI   uint32
	LO   uint32

	// BranchTarget and DelaySlotAddr implement the NORMAL/BRANCH_PENDING
	// state machine from spec.md §4.5. DelaySlotAddr is nonzero exactly
	// when a branch is pending: it holds the address of the delay-slot
	// instruction that must execute before the jump lands.
	BranchTarget  uint32
	DelaySlotAddr uint32
}

// Reset restores the CPU to its post-power-on state: PC at the reset
// vector, PRId loaded, everything else zero.
func (c *CPUState) Reset() {
	*c = CPUState{}
	c.PC = ResetVector
	c.COP0[cop0PRIdReg] = PRId
}

// readGPR32 returns the low 32-bit lane of a GPR.
func (c *CPUState) readGPR32(r uint8) uint32 {
	return c.GPR[r][0]
}

// readLow64 returns the low 64 bits of a GPR, the two lanes this core
// actually computes with (MIPS-III arithmetic never touches lanes 2-3).
func (c *CPUState) readLow64(r uint8) uint64 {
	return uint64(c.GPR[r][0]) | uint64(c.GPR[r][1])<<32
}

// writeSignExtended32 writes a 32-bit result into r, sign-extending it
// into the upper 32 bits of the low 64, per the MIPS-III rule that every
// 32-bit-producing instruction's result is sign-extended to fill the
// register. Writes to r0 are discarded.
func (c *CPUState) writeSignExtended32(r uint8, v uint32) {
	if r == 0 {
		return
	}
	c.GPR[r][0] = v
	if v&0x8000_0000 != 0 {
		c.GPR[r][1] = 0xFFFF_FFFF
	} else {
		c.GPR[r][1] = 0
	}
}

// writeLow64 writes a full 64-bit result into r's low two lanes, for the
// instructions whose architectural result is already 64 bits wide (AND,
// OR, XOR, NOR, DADDU, the D-shifts). Writes to r0 are discarded.
func (c *CPUState) writeLow64(r uint8, v uint64) {
	if r == 0 {
		return
	}
	c.GPR[r][0] = uint32(v)
	c.GPR[r][1] = uint32(v >> 32)
}

// Machine is the aggregate that owns both the CPU register file and the
// address space. Every handler takes *Machine and is free to touch both
// halves directly: there is no sub-ownership split to borrow around, only
// one goroutine is ever handed the pointer at a time (see the Core
// runner), so no locking is needed here.
type Machine struct {
	CPU CPUState
	Mem memory.AddressSpace

	// Trace receives one Event per retired instruction when non-nil. It
	// is deliberately a plain interface field rather than a channel: the
	// step driver calls it synchronously, in the same goroutine that owns
	// the Machine.
	Trace Sink
}

// New builds a Machine with romImage loaded into the boot ROM region and
// the CPU reset to its power-on state.
func New(romImage []byte) (*Machine, error) {
	mem, err := memory.New(romImage)
	if err != nil {
		return nil, err
	}
	m := &Machine{Mem: *mem}
	m.CPU.Reset()
	return m, nil
}

// ReadEEU32 is a diagnostic accessor onto EE RAM, independent of the CPU's
// own fetch/load path, for tests and the debugger's memory dump command.
func (m *Machine) ReadEEU32(addr uint32) uint32 {
	return m.Mem.Read32(addr)
}

// WriteEEU32 is the diagnostic write counterpart of ReadEEU32.
func (m *Machine) WriteEEU32(addr, value uint32) {
	m.Mem.Write32(addr, value)
}

// ReadEEU8 is the byte-granularity counterpart of ReadEEU32, for the
// debugger's raw byte dump command.
func (m *Machine) ReadEEU8(addr uint32) uint8 {
	return m.Mem.Read8(addr)
}
