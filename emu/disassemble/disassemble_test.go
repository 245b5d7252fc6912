/*
   Disassembler spot checks.

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

package disassemble

import "testing"

func TestInstructionMnemonics(t *testing.T) {
	cases := []struct {
		pc, word uint32
		want     string
	}{
		{0xBFC0_0000, 0x3C02_1234, "lui v0, 0x1234"},
		{0xBFC0_0000, 0x3442_5678, "ori v0, v0, 0x5678"},
		{0xBFC0_0000, 0x1000_0002, "beq zero, zero, 0xbfc0000c"},
		{0xBFC0_0000, 0x0000_0000, "nop"},
		{0xBFC0_0000, 0x0043_001A, "div v0, v1"},
		{0xBFC0_0000, 0x0000_0008, "jr zero"},
		{0xBFC0_0000, 0x9999_9999, ".word 0x99999999"},
	}

	for _, c := range cases {
		if got := Instruction(c.pc, c.word); got != c.want {
			t.Errorf("Instruction(0x%08x, 0x%08x) = %q, want %q", c.pc, c.word, got, c.want)
		}
	}
}

func TestCop0RegisterNameFallsBackForUnnamedIndex(t *testing.T) {
	if got := cop0(20); got != "cop0.20" {
		t.Errorf("cop0(20) = %q, want \"cop0.20\"", got)
	}
}
