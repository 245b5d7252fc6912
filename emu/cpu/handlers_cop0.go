/*
   COP0 move handlers.

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

// opMfc0 sign-extends cop0[rd] into GPR[rt], per spec.md §4.4's handler
// contract. spec.md §9 flags that the reference implementation this core
// was distilled from does not sign-extend here; that note only flags the
// discrepancy, it does not override §4.4's normative handler table, so
// this follows §4.4.
func opMfc0(m *Machine, d decoded) {
	m.CPU.writeSignExtended32(d.rt, m.CPU.COP0[d.rd])
	m.CPU.PC += 4
}

func opMtc0(m *Machine, d decoded) {
	m.CPU.COP0[d.rd] = m.CPU.readGPR32(d.rt)
	m.CPU.PC += 4
}
