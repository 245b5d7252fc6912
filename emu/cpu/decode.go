/*
   R5900 instruction decode and opcode dispatch tables.

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

import op "github.com/ps2emu/eecore/emu/opcodemap"

// decoded is the fixed field extraction of one instruction word. Every
// handler receives the same decoded value regardless of which fields its
// opcode actually uses.
type decoded struct {
	word   uint32
	opcode uint8
	rs     uint8
	rt     uint8
	rd     uint8
	sa     uint8
	funct  uint8
	imm    uint16
	target uint32
}

func decode(word uint32) decoded {
	return decoded{
		word:   word,
		opcode: uint8((word >> 26) & 0x3F),
		rs:     uint8((word >> 21) & 0x1F),
		rt:     uint8((word >> 16) & 0x1F),
		rd:     uint8((word >> 11) & 0x1F),
		sa:     uint8((word >> 6) & 0x1F),
		funct:  uint8(word & 0x3F),
		imm:    uint16(word & 0xFFFF),
		target: word & 0x03FF_FFFF,
	}
}

// signExtendImm sign-extends the 16-bit immediate field to 32 bits, the
// operation every I-format arithmetic and load/store handler needs.
func signExtendImm(imm uint16) uint32 {
	return uint32(int32(int16(imm)))
}

type handlerFunc func(m *Machine, d decoded)

// primaryTable, specialTable and regimmTable are the three dispatch
// levels from spec.md §4.3. Every slot is filled, most with opIllegal, so
// decode is total: there is no instruction word that fails to resolve to
// a handler.
var primaryTable [64]handlerFunc
var specialTable [64]handlerFunc
var regimmTable [32]handlerFunc

func init() {
	for i := range primaryTable {
		primaryTable[i] = opIllegal
	}
	for i := range specialTable {
		specialTable[i] = opIllegal
	}
	for i := range regimmTable {
		regimmTable[i] = opIllegal
	}

	primaryTable[op.OpSpecial] = dispatchSpecial
	primaryTable[op.OpRegimm] = dispatchRegimm
	primaryTable[op.OpJ] = opJ
	primaryTable[op.OpJal] = opJal
	primaryTable[op.OpBeq] = opBeq
	primaryTable[op.OpBne] = opBne
	primaryTable[op.OpBlez] = opBlez
	primaryTable[op.OpBgtz] = opBgtz
	primaryTable[op.OpAddi] = opAddImmediate
	primaryTable[op.OpAddiu] = opAddImmediate
	primaryTable[op.OpSlti] = opSlti
	primaryTable[op.OpSltiu] = opSltiu
	primaryTable[op.OpAndi] = opAndi
	primaryTable[op.OpOri] = opOri
	primaryTable[op.OpXori] = opXori
	primaryTable[op.OpLui] = opLui
	primaryTable[op.OpCop0] = dispatchCop0
	primaryTable[op.OpBeql] = opBeql
	primaryTable[op.OpBnel] = opBnel
	primaryTable[op.OpBlezl] = opBlezl
	primaryTable[op.OpBgtzl] = opBgtzl
	primaryTable[op.OpLb] = opLb
	primaryTable[op.OpLh] = opLh
	primaryTable[op.OpLw] = opLw
	primaryTable[op.OpLbu] = opLbu
	primaryTable[op.OpLhu] = opLhu
	primaryTable[op.OpSb] = opSb
	primaryTable[op.OpSh] = opSh
	primaryTable[op.OpSw] = opSw
	primaryTable[op.OpCache] = opNoop
	primaryTable[op.OpSwc1] = opNoop
	primaryTable[op.OpLd] = opLd
	primaryTable[op.OpSd] = opSd

	specialTable[op.FnSll] = opSll
	specialTable[op.FnSrl] = opSrl
	specialTable[op.FnSra] = opSra
	specialTable[op.FnSllv] = opSllv
	specialTable[op.FnSrlv] = opSrlv
	specialTable[op.FnSrav] = opSrav
	specialTable[op.FnJr] = opJr
	specialTable[op.FnJalr] = opJalr
	specialTable[op.FnMovz] = opMovz
	specialTable[op.FnMovn] = opMovn
	specialTable[op.FnSyscall] = opNoop
	specialTable[op.FnBreak] = opNoop
	specialTable[op.FnSync] = opNoop
	specialTable[op.FnMfhi] = opMfhi
	specialTable[op.FnMthi] = opMthi
	specialTable[op.FnMflo] = opMflo
	specialTable[op.FnMtlo] = opMtlo
	specialTable[op.FnDsllv] = opDsllv
	specialTable[op.FnDsrlv] = opDsrlv
	specialTable[op.FnDsrav] = opDsrav
	specialTable[op.FnMult] = opMult
	specialTable[op.FnMultu] = opMultu
	specialTable[op.FnDiv] = opDiv
	specialTable[op.FnDivu] = opDivu
	specialTable[op.FnAdd] = opAdd
	specialTable[op.FnAddu] = opAddu
	specialTable[op.FnSub] = opSub
	specialTable[op.FnSubu] = opSubu
	specialTable[op.FnAnd] = opAnd
	specialTable[op.FnOr] = opOr
	specialTable[op.FnXor] = opXor
	specialTable[op.FnNor] = opNor
	specialTable[op.FnSlt] = opSlt
	specialTable[op.FnSltu] = opSltu
	specialTable[op.FnDaddu] = opDaddu
	specialTable[op.FnTge] = opNoop
	specialTable[op.FnTgeu] = opNoop
	specialTable[op.FnTlt] = opNoop
	specialTable[op.FnTltu] = opNoop
	specialTable[op.FnTeq] = opNoop
	specialTable[op.FnTne] = opNoop
	specialTable[op.FnDsll] = opDsll
	specialTable[op.FnDsrl] = opDsrl
	specialTable[op.FnDsra] = opDsra
	specialTable[op.FnDsll32] = opDsll32
	specialTable[op.FnDsrl32] = opDsrl32
	specialTable[op.FnDsra32] = opDsra32

	regimmTable[op.RtBltz] = opBltz
	regimmTable[op.RtBgez] = opBgez
	regimmTable[op.RtBltzl] = opBltzl
	regimmTable[op.RtBgezl] = opBgezl
	regimmTable[op.RtBltzal] = opBltzal
	regimmTable[op.RtBgezal] = opBgezal
	regimmTable[op.RtTgei] = opNoop
	regimmTable[op.RtTgeiu] = opNoop
	regimmTable[op.RtTlti] = opNoop
	regimmTable[op.RtTltiu] = opNoop
	regimmTable[op.RtTeqi] = opNoop
	regimmTable[op.RtTnei] = opNoop
}

func dispatchSpecial(m *Machine, d decoded) {
	specialTable[d.funct](m, d)
}

func dispatchRegimm(m *Machine, d decoded) {
	regimmTable[d.rt](m, d)
}

func dispatchCop0(m *Machine, d decoded) {
	switch d.rs {
	case op.Cop0Mf:
		opMfc0(m, d)
	case op.Cop0Mt:
		opMtc0(m, d)
	default:
		opNoop(m, d)
	}
}

// opIllegal is the fill value for every undecoded slot: advance PC, do
// nothing else, matching spec.md §4.3's "illegal = no-op + PC+4" rule.
func opIllegal(m *Machine, _ decoded) {
	m.CPU.PC += 4
}

// opNoop advances PC without otherwise touching architectural state. It
// backs every decoded-but-unimplemented opcode named in spec.md's
// Non-goals: SYSCALL, BREAK, SYNC, CACHE, SWC1, and the trap-on-condition
// family.
func opNoop(m *Machine, _ decoded) {
	m.CPU.PC += 4
}
