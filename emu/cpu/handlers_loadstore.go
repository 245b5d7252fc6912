/*
   Load/store handlers.

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

func effectiveAddr(m *Machine, d decoded) uint32 {
	return m.CPU.readGPR32(d.rs) + signExtendImm(d.imm)
}

func opLb(m *Machine, d decoded) {
	v := int8(m.Mem.Read8(effectiveAddr(m, d)))
	m.CPU.writeSignExtended32(d.rt, uint32(int32(v)))
	m.CPU.PC += 4
}

// opLbu is supplemented: same shape as opLb, zero-extended instead of
// sign-extended.
func opLbu(m *Machine, d decoded) {
	v := m.Mem.Read8(effectiveAddr(m, d))
	m.CPU.writeSignExtended32(d.rt, uint32(v))
	m.CPU.PC += 4
}

// opLh and opLhu are supplemented: same shape as LB/LBU at half-word
// width.
func opLh(m *Machine, d decoded) {
	v := int16(m.Mem.Read16(effectiveAddr(m, d)))
	m.CPU.writeSignExtended32(d.rt, uint32(int32(v)))
	m.CPU.PC += 4
}

func opLhu(m *Machine, d decoded) {
	v := m.Mem.Read16(effectiveAddr(m, d))
	m.CPU.writeSignExtended32(d.rt, uint32(v))
	m.CPU.PC += 4
}

func opLw(m *Machine, d decoded) {
	v := m.Mem.Read32(effectiveAddr(m, d))
	m.CPU.writeSignExtended32(d.rt, v)
	m.CPU.PC += 4
}

func opLd(m *Machine, d decoded) {
	v := m.Mem.Read64(effectiveAddr(m, d))
	m.CPU.writeLow64(d.rt, v)
	m.CPU.PC += 4
}

// opSb and opSh are supplemented: same shape as SW at byte/half-word
// width.
func opSb(m *Machine, d decoded) {
	m.Mem.Write8(effectiveAddr(m, d), uint8(m.CPU.readGPR32(d.rt)))
	m.CPU.PC += 4
}

func opSh(m *Machine, d decoded) {
	m.Mem.Write16(effectiveAddr(m, d), uint16(m.CPU.readGPR32(d.rt)))
	m.CPU.PC += 4
}

func opSw(m *Machine, d decoded) {
	m.Mem.Write32(effectiveAddr(m, d), m.CPU.readGPR32(d.rt))
	m.CPU.PC += 4
}

func opSd(m *Machine, d decoded) {
	m.Mem.Write64(effectiveAddr(m, d), m.CPU.readLow64(d.rt))
	m.CPU.PC += 4
}
