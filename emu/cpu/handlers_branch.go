/*
   Branch and jump handlers.

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

func opBeq(m *Machine, d decoded) {
	taken := m.CPU.readLow64(d.rs) == m.CPU.readLow64(d.rt)
	target := branchTarget(m.CPU.iPC, d.imm)
	if taken {
		scheduleBranch(m, target)
	} else {
		m.CPU.PC += 4
	}
}

func opBne(m *Machine, d decoded) {
	taken := m.CPU.readLow64(d.rs) != m.CPU.readLow64(d.rt)
	target := branchTarget(m.CPU.iPC, d.imm)
	if taken {
		scheduleBranch(m, target)
	} else {
		m.CPU.PC += 4
	}
}

// opBlez and opBgtz are supplemented per SPEC_FULL.md §4.4: same shape as
// BGEZ/BLTZ, compared against zero instead of another register.
func opBlez(m *Machine, d decoded) {
	taken := int64(m.CPU.readLow64(d.rs)) <= 0
	target := branchTarget(m.CPU.iPC, d.imm)
	if taken {
		scheduleBranch(m, target)
	} else {
		m.CPU.PC += 4
	}
}

func opBgtz(m *Machine, d decoded) {
	taken := int64(m.CPU.readLow64(d.rs)) > 0
	target := branchTarget(m.CPU.iPC, d.imm)
	if taken {
		scheduleBranch(m, target)
	} else {
		m.CPU.PC += 4
	}
}

func opBeql(m *Machine, d decoded) {
	taken := m.CPU.readLow64(d.rs) == m.CPU.readLow64(d.rt)
	resolveLikely(m, taken, branchTarget(m.CPU.iPC, d.imm))
}

func opBnel(m *Machine, d decoded) {
	taken := m.CPU.readLow64(d.rs) != m.CPU.readLow64(d.rt)
	resolveLikely(m, taken, branchTarget(m.CPU.iPC, d.imm))
}

// opBlezl and opBgtzl are supplemented: same shape as BEQL/BNEL's likely
// annulment, compared against zero.
func opBlezl(m *Machine, d decoded) {
	taken := int64(m.CPU.readLow64(d.rs)) <= 0
	resolveLikely(m, taken, branchTarget(m.CPU.iPC, d.imm))
}

func opBgtzl(m *Machine, d decoded) {
	taken := int64(m.CPU.readLow64(d.rs)) > 0
	resolveLikely(m, taken, branchTarget(m.CPU.iPC, d.imm))
}

func opBltz(m *Machine, d decoded) {
	taken := int64(m.CPU.readLow64(d.rs)) < 0
	target := branchTarget(m.CPU.iPC, d.imm)
	if taken {
		scheduleBranch(m, target)
	} else {
		m.CPU.PC += 4
	}
}

func opBgez(m *Machine, d decoded) {
	taken := int64(m.CPU.readLow64(d.rs)) >= 0
	target := branchTarget(m.CPU.iPC, d.imm)
	if taken {
		scheduleBranch(m, target)
	} else {
		m.CPU.PC += 4
	}
}

func opBltzl(m *Machine, d decoded) {
	taken := int64(m.CPU.readLow64(d.rs)) < 0
	resolveLikely(m, taken, branchTarget(m.CPU.iPC, d.imm))
}

func opBgezl(m *Machine, d decoded) {
	taken := int64(m.CPU.readLow64(d.rs)) >= 0
	resolveLikely(m, taken, branchTarget(m.CPU.iPC, d.imm))
}

func opBltzal(m *Machine, d decoded) {
	m.CPU.writeSignExtended32(31, m.CPU.iPC+8)
	taken := int64(m.CPU.readLow64(d.rs)) < 0
	target := branchTarget(m.CPU.iPC, d.imm)
	if taken {
		scheduleBranch(m, target)
	} else {
		m.CPU.PC += 4
	}
}

func opBgezal(m *Machine, d decoded) {
	m.CPU.writeSignExtended32(31, m.CPU.iPC+8)
	taken := int64(m.CPU.readLow64(d.rs)) >= 0
	target := branchTarget(m.CPU.iPC, d.imm)
	if taken {
		scheduleBranch(m, target)
	} else {
		m.CPU.PC += 4
	}
}

func opJ(m *Machine, d decoded) {
	scheduleBranch(m, jumpTarget(m.CPU.iPC, d.target))
}

func opJal(m *Machine, d decoded) {
	m.CPU.writeSignExtended32(31, m.CPU.iPC+8)
	scheduleBranch(m, jumpTarget(m.CPU.iPC, d.target))
}

func opJr(m *Machine, d decoded) {
	scheduleBranch(m, m.CPU.readGPR32(d.rs))
}

func opJalr(m *Machine, d decoded) {
	target := m.CPU.readGPR32(d.rs)
	link := d.rd
	m.CPU.writeSignExtended32(link, m.CPU.iPC+8)
	scheduleBranch(m, target)
}

// opMovz and opMovn are supplemented: conditional register move, trivial
// once SLT/SLTU's readLow64 comparison plumbing already exists.
func opMovz(m *Machine, d decoded) {
	if m.CPU.readLow64(d.rt) == 0 {
		m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rs))
	}
	m.CPU.PC += 4
}

func opMovn(m *Machine, d decoded) {
	if m.CPU.readLow64(d.rt) != 0 {
		m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rs))
	}
	m.CPU.PC += 4
}
