/*
   R5900 interpreter scenario and invariant tests.

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

package cpu

import "testing"

// romFromWords builds a little-endian boot ROM image out of machine words,
// the same instruction words a disassembler or assembler would emit.
func romFromWords(words ...uint32) []byte {
	b := make([]byte, len(words)*4)
	for i, w := range words {
		b[i*4+0] = byte(w)
		b[i*4+1] = byte(w >> 8)
		b[i*4+2] = byte(w >> 16)
		b[i*4+3] = byte(w >> 24)
	}
	return b
}

func newMachine(t *testing.T, words ...uint32) *Machine {
	t.Helper()
	m, err := New(romFromWords(words...))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func runSteps(m *Machine, n int) {
	for i := 0; i < n; i++ {
		Step(m)
	}
}

// S1 - LUI + ORI load immediate.
func TestLuiOriLoadsImmediate(t *testing.T) {
	m := newMachine(t, 0x3C02_1234, 0x3442_5678)
	runSteps(m, 2)

	if got := m.CPU.readLow64(2); got != 0x0000_0000_1234_5678 {
		t.Errorf("gpr[2] = 0x%016x, want 0x0000000012345678", got)
	}
	if m.CPU.PC != ResetVector+8 {
		t.Errorf("pc = 0x%08x, want 0x%08x", m.CPU.PC, ResetVector+8)
	}
}

// S2 - Branch-delay correctness: the delay slot always executes, the
// skipped instruction past the branch never does.
func TestBranchDelaySlotExecutes(t *testing.T) {
	m := newMachine(t,
		0x1000_0002, // BEQ R0, R0, +2
		0x3403_AAAA, // ORI R3, R0, 0xAAAA  (delay slot)
		0x3404_BBBB, // ORI R4, R0, 0xBBBB  (skipped)
		0x3405_CCCC, // ORI R5, R0, 0xCCCC  (branch target)
	)
	runSteps(m, 3)

	if got := m.CPU.readLow64(3); got != 0xAAAA {
		t.Errorf("gpr[3] = 0x%x, want 0xAAAA", got)
	}
	if got := m.CPU.readLow64(4); got != 0 {
		t.Errorf("gpr[4] = 0x%x, want 0 (skipped by branch)", got)
	}
	if got := m.CPU.readLow64(5); got != 0xCCCC {
		t.Errorf("gpr[5] = 0x%x, want 0xCCCC", got)
	}
	// The target ORI itself retires and advances PC by 4, so the final PC
	// is one word past the target, not the target's own address.
	if m.CPU.PC != ResetVector+0x10 {
		t.Errorf("pc = 0x%08x, want 0x%08x", m.CPU.PC, ResetVector+0x10)
	}
}

// S3 - A not-taken likely branch annuls its delay slot entirely.
func TestLikelyBranchAnnulsDelaySlot(t *testing.T) {
	m := newMachine(t,
		0x3401_0001, // ORI R1, R0, 1
		0x5001_0001, // BEQL R0, R1, +1 (not equal: R0 != R1, not taken)
		0x3402_DEAD, // ORI R2, R0, 0xDEAD (annulled)
		0x3403_BEEF, // ORI R3, R0, 0xBEEF
	)
	runSteps(m, 4)

	if got := m.CPU.readLow64(2); got != 0 {
		t.Errorf("gpr[2] = 0x%x, want 0 (annulled)", got)
	}
	if got := m.CPU.readLow64(3); got != 0xBEEF {
		t.Errorf("gpr[3] = 0x%x, want 0xBEEF", got)
	}
}

// S4 - Writes to r0 never stick, whatever instruction attempts it.
func TestWriteToR0IsSilent(t *testing.T) {
	m := newMachine(t, 0x3400_FFFF) // ORI R0, R0, 0xFFFF
	runSteps(m, 1)

	if m.CPU.readLow64(0) != 0 {
		t.Errorf("gpr[0] = 0x%x, want 0", m.CPU.readLow64(0))
	}
}

// S5 - A stored word reads back unchanged through EE RAM.
func TestStoreLoadRoundTrip(t *testing.T) {
	m := newMachine(t,
		0x3C01_0000, // LUI R1, 0x0000
		0x3421_1000, // ORI R1, R1, 0x1000
		0x3402_4242, // ORI R2, R0, 0x4242
		0xAC22_0000, // SW R2, 0(R1)
		0x8C23_0000, // LW R3, 0(R1)
	)
	runSteps(m, 5)

	if got := m.CPU.readLow64(3); got != 0x4242 {
		t.Errorf("gpr[3] = 0x%x, want 0x4242", got)
	}
}

// S6 - A freshly built Machine already has the reset-vector word available
// to read, before any Step runs.
func TestResetVectorFetchReturnsFirstROMWord(t *testing.T) {
	const w = 0x1234_5678
	m := newMachine(t, w)

	if got := m.ReadEEU32(ResetVector); got != w {
		t.Errorf("read_ee_u32(reset vector) = 0x%08x, want 0x%08x", got, w)
	}
}

// 32-bit results sign-extend into the upper half of the low 64 bits.
func TestWriteSignExtended32SignExtendsNegative(t *testing.T) {
	m := newMachine(t)
	m.CPU.writeSignExtended32(8, 0x8000_0001)

	if got := m.CPU.readLow64(8); got != 0xFFFF_FFFF_8000_0001 {
		t.Errorf("gpr[8] = 0x%016x, want 0xFFFFFFFF80000001", got)
	}
}

func TestWriteSignExtended32ToR0IsDiscarded(t *testing.T) {
	m := newMachine(t)
	m.CPU.writeSignExtended32(0, 0xFFFF_FFFF)

	if m.CPU.readLow64(0) != 0 {
		t.Errorf("gpr[0] = 0x%x, want 0", m.CPU.readLow64(0))
	}
}

// Dividing by zero leaves HI/LO untouched and never aborts execution.
func TestDivByZeroLeavesHiLoUnchanged(t *testing.T) {
	m := newMachine(t, 0x0043_001A) // DIV R2, R3 (R3 will be left at 0)
	m.CPU.HI = 0x1111_1111
	m.CPU.LO = 0x2222_2222
	m.CPU.GPR[2][0] = 7
	runSteps(m, 1)

	if m.CPU.HI != 0x1111_1111 || m.CPU.LO != 0x2222_2222 {
		t.Errorf("HI/LO changed on divide by zero: hi=0x%x lo=0x%x", m.CPU.HI, m.CPU.LO)
	}
	if m.CPU.PC != ResetVector+4 {
		t.Errorf("pc = 0x%08x, want 0x%08x", m.CPU.PC, ResetVector+4)
	}
}

// MFC0 sign-extends the 32-bit COP0 value into the destination GPR.
func TestMfc0SignExtends(t *testing.T) {
	m := newMachine(t, 0x4002_6800) // MFC0 R2, R13 (Cause)
	m.CPU.COP0[13] = 0x8000_0000
	runSteps(m, 1)

	if got := m.CPU.readLow64(2); got != 0xFFFF_FFFF_8000_0000 {
		t.Errorf("gpr[2] = 0x%016x, want sign-extended 0x8000_0000", got)
	}
}

// A second branch decoded while one is already pending is a no-op: PC
// simply advances and the first branch still lands on schedule.
func TestBranchWhilePendingIsNoop(t *testing.T) {
	m := newMachine(t,
		0x1000_0002, // BEQ R0, R0, +2  -> target is instruction at +0xC
		0x1000_0001, // BEQ R0, R0, +1  (delay slot: itself a branch, ignored)
		0x3404_BBBB, // ORI R4, R0, 0xBBBB
		0x3405_CCCC, // ORI R5, R0, 0xCCCC (target of the first branch)
	)
	runSteps(m, 3)

	if got := m.CPU.readLow64(5); got != 0xCCCC {
		t.Errorf("gpr[5] = 0x%x, want 0xCCCC (first branch should still land)", got)
	}
}

// Fetching an address outside every mapped region yields the unmapped
// sentinel 0xDEADBEEF, which decodes as an LD (primary opcode 0x37) from
// another unmapped address; the step completes without panicking and PC
// advances by 4.
func TestFetchFromUnmappedAddressAdvancesPC(t *testing.T) {
	m := newMachine(t)
	m.CPU.PC = 0x0999_9999
	pc := m.CPU.PC
	runSteps(m, 1)

	if m.CPU.PC != pc+4 {
		t.Errorf("pc = 0x%08x, want 0x%08x", m.CPU.PC, pc+4)
	}
}
