/*
   Fetch/decode/execute step driver and branch-delay resolution.

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

// Step fetches, decodes and executes one instruction.
//
// The delay-slot test happens before the handler runs, because the handler
// is what advances PC: a branch handler leaves PC pointing at the delay
// slot and schedules BranchTarget/DelaySlotAddr, so the *next* call to Step
// is the one that both executes the delay-slot instruction and lands the
// jump, in that order.
func Step(m *Machine) {
	pc := m.CPU.PC
	inDelaySlot := m.CPU.DelaySlotAddr != 0 && m.CPU.DelaySlotAddr == pc

	word := m.Mem.Read32(pc)
	d := decode(word)
	m.CPU.iPC = pc

	primaryTable[d.opcode](m, d)

	if inDelaySlot {
		m.CPU.PC = m.CPU.BranchTarget
		m.CPU.DelaySlotAddr = 0
	}

	if m.Trace != nil {
		m.Trace.Emit(Event{PC: pc, Word: word})
	}
}

// scheduleBranch arms a pending branch: the instruction at pc+4 (the delay
// slot) still executes, then PC lands at target. A branch decoded while
// another branch is already pending has no delay slot of its own to use,
// so spec.md treats it as a diagnostic no-op: advance PC normally and
// leave the already-pending branch alone.
func scheduleBranch(m *Machine, target uint32) {
	if m.CPU.DelaySlotAddr != 0 {
		m.CPU.PC += 4
		return
	}
	m.CPU.BranchTarget = target
	m.CPU.DelaySlotAddr = m.CPU.PC + 4
	m.CPU.PC += 4
}

// resolveLikely implements the *L branch family: taken behaves exactly
// like an ordinary branch, not-taken annuls the delay slot by skipping
// both it and the branch itself, advancing PC by 8 with no pending branch
// at all.
func resolveLikely(m *Machine, taken bool, target uint32) {
	if taken {
		scheduleBranch(m, target)
		return
	}
	m.CPU.PC += 8
}

func branchTarget(pc uint32, imm uint16) uint32 {
	return pc + 4 + (signExtendImm(imm) << 2)
}

func jumpTarget(iPC uint32, target uint32) uint32 {
	return (target << 2) | (iPC & 0xF000_0000)
}
