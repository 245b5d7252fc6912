/*
   Shift handlers: fixed and variable 32-bit shifts, and the 64-bit D-shift
   family.

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

// opSll also backs the architectural NOP, encoded as SLL $zero, $zero, 0:
// writeSignExtended32 already discards writes to r0, so no special case is
// needed here.
func opSll(m *Machine, d decoded) {
	m.CPU.writeSignExtended32(d.rd, m.CPU.readGPR32(d.rt)<<d.sa)
	m.CPU.PC += 4
}

func opSrl(m *Machine, d decoded) {
	m.CPU.writeSignExtended32(d.rd, m.CPU.readGPR32(d.rt)>>d.sa)
	m.CPU.PC += 4
}

func opSra(m *Machine, d decoded) {
	result := uint32(int32(m.CPU.readGPR32(d.rt)) >> d.sa)
	m.CPU.writeSignExtended32(d.rd, result)
	m.CPU.PC += 4
}

func opSllv(m *Machine, d decoded) {
	shift := m.CPU.readGPR32(d.rs) & 0x1F
	m.CPU.writeSignExtended32(d.rd, m.CPU.readGPR32(d.rt)<<shift)
	m.CPU.PC += 4
}

func opSrlv(m *Machine, d decoded) {
	shift := m.CPU.readGPR32(d.rs) & 0x1F
	m.CPU.writeSignExtended32(d.rd, m.CPU.readGPR32(d.rt)>>shift)
	m.CPU.PC += 4
}

func opSrav(m *Machine, d decoded) {
	shift := m.CPU.readGPR32(d.rs) & 0x1F
	result := uint32(int32(m.CPU.readGPR32(d.rt)) >> shift)
	m.CPU.writeSignExtended32(d.rd, result)
	m.CPU.PC += 4
}

func opDsll(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rt)<<d.sa)
	m.CPU.PC += 4
}

func opDsrl(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rt)>>d.sa)
	m.CPU.PC += 4
}

func opDsra(m *Machine, d decoded) {
	result := uint64(int64(m.CPU.readLow64(d.rt)) >> d.sa)
	m.CPU.writeLow64(d.rd, result)
	m.CPU.PC += 4
}

func opDsll32(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rt)<<(uint(d.sa)+32))
	m.CPU.PC += 4
}

func opDsrl32(m *Machine, d decoded) {
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rt)>>(uint(d.sa)+32))
	m.CPU.PC += 4
}

func opDsra32(m *Machine, d decoded) {
	result := uint64(int64(m.CPU.readLow64(d.rt)) >> (uint(d.sa) + 32))
	m.CPU.writeLow64(d.rd, result)
	m.CPU.PC += 4
}

func opDsllv(m *Machine, d decoded) {
	shift := m.CPU.readGPR32(d.rs) & 0x3F
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rt)<<shift)
	m.CPU.PC += 4
}

func opDsrlv(m *Machine, d decoded) {
	shift := m.CPU.readGPR32(d.rs) & 0x3F
	m.CPU.writeLow64(d.rd, m.CPU.readLow64(d.rt)>>shift)
	m.CPU.PC += 4
}

func opDsrav(m *Machine, d decoded) {
	shift := m.CPU.readGPR32(d.rs) & 0x3F
	result := uint64(int64(m.CPU.readLow64(d.rt)) >> shift)
	m.CPU.writeLow64(d.rd, result)
	m.CPU.PC += 4
}
