/*
   Multiply/divide handlers and HI/LO accumulator transfers.

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

import "log/slog"

// opMult produces a signed 64-bit product split across HI (upper 32 bits)
// and LO (lower 32 bits), this subset's HI/LO width per spec.md §3.
func opMult(m *Machine, d decoded) {
	a := int64(int32(m.CPU.readGPR32(d.rs)))
	b := int64(int32(m.CPU.readGPR32(d.rt)))
	product := uint64(a * b)
	m.CPU.LO = uint32(product)
	m.CPU.HI = uint32(product >> 32)
	m.CPU.PC += 4
}

func opMultu(m *Machine, d decoded) {
	a := uint64(m.CPU.readGPR32(d.rs))
	b := uint64(m.CPU.readGPR32(d.rt))
	product := a * b
	m.CPU.LO = uint32(product)
	m.CPU.HI = uint32(product >> 32)
	m.CPU.PC += 4
}

// opDiv leaves HI/LO unchanged on division by zero rather than trapping,
// per spec.md §7's error handling design: the error is logged, not fatal,
// and does not escape step.
func opDiv(m *Machine, d decoded) {
	divisor := int32(m.CPU.readGPR32(d.rt))
	if divisor == 0 {
		slog.Warn("cpu: DIV by zero", "pc", m.CPU.iPC)
		m.CPU.PC += 4
		return
	}
	dividend := int32(m.CPU.readGPR32(d.rs))
	m.CPU.LO = uint32(dividend / divisor)
	m.CPU.HI = uint32(dividend % divisor)
	m.CPU.PC += 4
}

func opDivu(m *Machine, d decoded) {
	divisor := m.CPU.readGPR32(d.rt)
	if divisor == 0 {
		slog.Warn("cpu: DIVU by zero", "pc", m.CPU.iPC)
		m.CPU.PC += 4
		return
	}
	dividend := m.CPU.readGPR32(d.rs)
	m.CPU.LO = dividend / divisor
	m.CPU.HI = dividend % divisor
	m.CPU.PC += 4
}

func opMfhi(m *Machine, d decoded) {
	m.CPU.writeSignExtended32(d.rd, m.CPU.HI)
	m.CPU.PC += 4
}

func opMflo(m *Machine, d decoded) {
	m.CPU.writeSignExtended32(d.rd, m.CPU.LO)
	m.CPU.PC += 4
}

func opMthi(m *Machine, d decoded) {
	m.CPU.HI = m.CPU.readGPR32(d.rs)
	m.CPU.PC += 4
}

func opMtlo(m *Machine, d decoded) {
	m.CPU.LO = m.CPU.readGPR32(d.rs)
	m.CPU.PC += 4
}
