/*
   R5900 opcode numbering for decode, disassembly and trace output.

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

// Package opcodemap names the primary, SPECIAL and REGIMM opcode slots of
// the R5900 instruction word so the decoder and disassembler share one
// numbering instead of scattering magic constants.
package opcodemap

// Primary 6-bit opcode field, bits 31:26.
const (
	OpSpecial = 0x00
	OpRegimm  = 0x01
	OpJ       = 0x02
	OpJal     = 0x03
	OpBeq     = 0x04
	OpBne     = 0x05
	OpBlez    = 0x06
	OpBgtz    = 0x07
	OpAddi    = 0x08
	OpAddiu   = 0x09
	OpSlti    = 0x0A
	OpSltiu   = 0x0B
	OpAndi    = 0x0C
	OpOri     = 0x0D
	OpXori    = 0x0E
	OpLui     = 0x0F
	OpCop0    = 0x10
	OpBeql    = 0x14
	OpBnel    = 0x15
	OpBlezl   = 0x16
	OpBgtzl   = 0x17
	OpLb      = 0x20
	OpLh      = 0x21
	OpLwl     = 0x22
	OpLw      = 0x23
	OpLbu     = 0x24
	OpLhu     = 0x25
	OpLwr     = 0x26
	OpSb      = 0x28
	OpSh      = 0x29
	OpSwl     = 0x2A
	OpSw      = 0x2B
	OpSwr     = 0x2E
	OpCache   = 0x2F
	OpLwc1    = 0x31
	OpLd      = 0x37
	OpSwc1    = 0x39
	OpSd      = 0x3F
)

// SPECIAL 6-bit function field, bits 5:0, selected when the primary opcode
// is OpSpecial.
const (
	FnSll     = 0x00
	FnSrl     = 0x02
	FnSra     = 0x03
	FnSllv    = 0x04
	FnSrlv    = 0x06
	FnSrav    = 0x07
	FnJr      = 0x08
	FnJalr    = 0x09
	FnMovz    = 0x0A
	FnMovn    = 0x0B
	FnSyscall = 0x0C
	FnBreak   = 0x0D
	FnSync    = 0x0F
	FnMfhi    = 0x10
	FnMthi    = 0x11
	FnMflo    = 0x12
	FnMtlo    = 0x13
	FnDsllv   = 0x14
	FnDsrlv   = 0x16
	FnDsrav   = 0x17
	FnMult    = 0x18
	FnMultu   = 0x19
	FnDiv     = 0x1A
	FnDivu    = 0x1B
	FnAdd     = 0x20
	FnAddu    = 0x21
	FnSub     = 0x22
	FnSubu    = 0x23
	FnAnd     = 0x24
	FnOr      = 0x25
	FnXor     = 0x26
	FnNor     = 0x27
	FnSlt     = 0x2A
	FnSltu    = 0x2B
	FnDaddu   = 0x2D
	FnTge     = 0x30
	FnTgeu    = 0x31
	FnTlt     = 0x32
	FnTltu    = 0x33
	FnTeq     = 0x34
	FnTne     = 0x36
	FnDsll    = 0x38
	FnDsrl    = 0x3A
	FnDsra    = 0x3B
	FnDsll32  = 0x3C
	FnDsrl32  = 0x3E
	FnDsra32  = 0x3F
)

// REGIMM 5-bit rt field, bits 20:16, selected when the primary opcode is
// OpRegimm.
const (
	RtBltz   = 0x00
	RtBgez   = 0x01
	RtBltzl  = 0x02
	RtBgezl  = 0x03
	RtTgei   = 0x08
	RtTgeiu  = 0x09
	RtTlti   = 0x0A
	RtTltiu  = 0x0B
	RtTeqi   = 0x0C
	RtTnei   = 0x0E
	RtBltzal = 0x10
	RtBgezal = 0x11
)

// COP0 rs field, bits 25:21, selected when the primary opcode is OpCop0.
const (
	Cop0Mf = 0x00
	Cop0Mt = 0x04
)

// MIPSGPRNames holds the conventional ABI register names, index 0 through
// 31, used by the disassembler and the debugger's register dump.
var MIPSGPRNames = [32]string{
	"zero", "at", "v0", "v1", "a0", "a1", "a2", "a3",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7",
	"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7",
	"t8", "t9", "k0", "k1", "gp", "sp", "fp", "ra",
}

// COP0RegNames holds names for the COP0 registers this core models.
// Unnamed slots still exist architecturally but carry no defined meaning
// here; the disassembler prints them as "cop0.N" and the debugger's cop0
// dump skips them.
var COP0RegNames = [32]string{
	0:  "Index",
	1:  "Random",
	2:  "EntryLo0",
	3:  "EntryLo1",
	4:  "Context",
	5:  "PageMask",
	6:  "Wired",
	8:  "BadVAddr",
	9:  "Count",
	10: "EntryHi",
	11: "Compare",
	12: "Status",
	13: "Cause",
	14: "EPC",
	15: "PRId",
	16: "Config",
}
