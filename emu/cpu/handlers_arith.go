/*
   ALU handlers: immediate and register arithmetic, logical, and set-less-
   than opcodes.

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

// opAddImmediate backs both ADDI and ADDIU: this subset has no overflow
// trap, so the two differ only in the name a disassembler would print.
func opAddImmediate(m *Machine, d decoded) {
	result := m.CPU.readGPR32(d.rs) + signExtendImm(d.imm)
	m.CPU.writeSignExtended32(d.rt, result)
	m.CPU.PC += 4
}

func opSlti(m *Machine, d decoded) {
	result := uint32(0)
	if int32(m.CPU.readGPR32(d.rs)) < int32(signExtendImm(d.imm)) {
		result = 1
	}
	m.CPU.writeSignExtended32(d.rt, result)
	m.CPU.PC += 4
}

func opSltiu(m *Machine, d decoded) {
	result := uint32(0)
	if m.CPU.readGPR32(d.rs) < signExtendImm(d.imm) {
		result = 1
	}
	m.CPU.writeSignExtended32(d.rt, result)
	m.CPU.PC += 4
}

func opAndi(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rt, m.CPU.readLow64(d.rs)&uint64(d.imm))
	m.CPU.PC += 4
}

func opOri(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rt, m.CPU.readLow64(d.rs)|uint64(d.imm))
	m.CPU.PC += 4
}

func opXori(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rt, m.CPU.readLow64(d.rs)^uint64(d.imm))
	m.CPU.PC += 4
}

func opLui(m *Machine, d decoded) {
	m.CPU.writeSignExtended32(d.rt, uint32(d.imm)<<16)
	m.CPU.PC += 4
}

func opAdd(m *Machine, d decoded) {
	result := m.CPU.readGPR32(d.rs) + m.CPU.readGPR32(d.rt)
	m.CPU.writeSignExtended32(d.rd, result)
	m.CPU.PC += 4
}

func opAddu(m *Machine, d decoded) {
	opAdd(m, d)
}

func opSub(m *Machine, d decoded) {
	result := m.CPU.readGPR32(d.rs) - m.CPU.readGPR32(d.rt)
	m.CPU.writeSignExtended32(d.rd, result)
	m.CPU.PC += 4
}

func opSubu(m *Machine, d decoded) {
	opSub(m, d)
}

func opAnd(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rs)&m.CPU.readLow64(d.rt))
	m.CPU.PC += 4
}

func opOr(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rs)|m.CPU.readLow64(d.rt))
	m.CPU.PC += 4
}

func opXor(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rs)^m.CPU.readLow64(d.rt))
	m.CPU.PC += 4
}

func opNor(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rd, ^(m.CPU.readLow64(d.rs) | m.CPU.readLow64(d.rt)))
	m.CPU.PC += 4
}

func opSlt(m *Machine, d decoded) {
	result := uint32(0)
	if int64(m.CPU.readLow64(d.rs)) < int64(m.CPU.readLow64(d.rt)) {
		result = 1
	}
	m.CPU.writeSignExtended32(d.rd, result)
	m.CPU.PC += 4
}

func opSltu(m *Machine, d decoded) {
	result := uint32(0)
	if m.CPU.readLow64(d.rs) < m.CPU.readLow64(d.rt) {
		result = 1
	}
	m.CPU.writeSignExtended32(d.rd, result)
	m.CPU.PC += 4
}

func opDaddu(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rs)+m.CPU.readLow64(d.rt))
	m.CPU.PC += 4
}
