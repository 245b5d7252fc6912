/*
   R5900 disassembler: renders a fetched instruction word as a trace line.

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

// Package disassemble renders a 32-bit R5900 instruction word as text for
// the trace sink and the debugger's "dis" command. It covers the opcode
// surface the interpreter actually executes. An unknown primary opcode
// prints as a raw .word; an unknown SPECIAL function prints as
// "special.NN", an unknown REGIMM entry as "trap", and any COP0 operation
// other than MFC0/MTC0 as "cop0 ???".
package disassemble

import (
	"fmt"
	"strings"

	op "github.com/ps2emu/eecore/emu/opcodemap"
)

func gpr(r uint8) string {
	return op.MIPSGPRNames[r&0x1F]
}

func cop0(r uint8) string {
	if name := op.COP0RegNames[r&0x1F]; name != "" {
		return name
	}
	return fmt.Sprintf("cop0.%d", r&0x1F)
}

func fields(word uint32) (opcode, rs, rt, rd, sa, funct uint8, imm uint16, target uint32) {
	opcode = uint8((word >> 26) & 0x3F)
	rs = uint8((word >> 21) & 0x1F)
	rt = uint8((word >> 16) & 0x1F)
	rd = uint8((word >> 11) & 0x1F)
	sa = uint8((word >> 6) & 0x1F)
	funct = uint8(word & 0x3F)
	imm = uint16(word & 0xFFFF)
	target = word & 0x03FF_FFFF
	return
}

// Instruction formats word, fetched from pc, as a mnemonic and operand
// list. pc is only used for branch/jump target printing.
func Instruction(pc, word uint32) string {
	opcode, rs, rt, rd, sa, funct, imm, target := fields(word)

	switch opcode {
	case op.OpSpecial:
		return specialMnemonic(rs, rt, rd, sa, funct)
	case op.OpRegimm:
		return regimmMnemonic(rs, rt, imm, pc)
	case op.OpJ:
		return fmt.Sprintf("j 0x%08x", jumpTarget(pc, target))
	case op.OpJal:
		return fmt.Sprintf("jal 0x%08x", jumpTarget(pc, target))
	case op.OpBeq:
		return fmt.Sprintf("beq %s, %s, 0x%08x", gpr(rs), gpr(rt), branchTarget(pc, imm))
	case op.OpBne:
		return fmt.Sprintf("bne %s, %s, 0x%08x", gpr(rs), gpr(rt), branchTarget(pc, imm))
	case op.OpBlez:
		return fmt.Sprintf("blez %s, 0x%08x", gpr(rs), branchTarget(pc, imm))
	case op.OpBgtz:
		return fmt.Sprintf("bgtz %s, 0x%08x", gpr(rs), branchTarget(pc, imm))
	case op.OpBeql:
		return fmt.Sprintf("beql %s, %s, 0x%08x", gpr(rs), gpr(rt), branchTarget(pc, imm))
	case op.OpBnel:
		return fmt.Sprintf("bnel %s, %s, 0x%08x", gpr(rs), gpr(rt), branchTarget(pc, imm))
	case op.OpBlezl:
		return fmt.Sprintf("blezl %s, 0x%08x", gpr(rs), branchTarget(pc, imm))
	case op.OpBgtzl:
		return fmt.Sprintf("bgtzl %s, 0x%08x", gpr(rs), branchTarget(pc, imm))
	case op.OpAddi:
		return immFormat("addi", rt, rs, imm)
	case op.OpAddiu:
		return immFormat("addiu", rt, rs, imm)
	case op.OpSlti:
		return immFormat("slti", rt, rs, imm)
	case op.OpSltiu:
		return immFormat("sltiu", rt, rs, imm)
	case op.OpAndi:
		return immFormatUnsigned("andi", rt, rs, imm)
	case op.OpOri:
		return immFormatUnsigned("ori", rt, rs, imm)
	case op.OpXori:
		return immFormatUnsigned("xori", rt, rs, imm)
	case op.OpLui:
		return fmt.Sprintf("lui %s, 0x%04x", gpr(rt), imm)
	case op.OpCop0:
		return cop0Mnemonic(rs, rt, rd)
	case op.OpLb:
		return memFormat("lb", rt, rs, imm)
	case op.OpLh:
		return memFormat("lh", rt, rs, imm)
	case op.OpLw:
		return memFormat("lw", rt, rs, imm)
	case op.OpLbu:
		return memFormat("lbu", rt, rs, imm)
	case op.OpLhu:
		return memFormat("lhu", rt, rs, imm)
	case op.OpSb:
		return memFormat("sb", rt, rs, imm)
	case op.OpSh:
		return memFormat("sh", rt, rs, imm)
	case op.OpSw:
		return memFormat("sw", rt, rs, imm)
	case op.OpLd:
		return memFormat("ld", rt, rs, imm)
	case op.OpSd:
		return memFormat("sd", rt, rs, imm)
	case op.OpCache:
		return "cache"
	case op.OpSwc1:
		return "swc1"
	default:
		return fmt.Sprintf(".word 0x%08x", word)
	}
}

func immFormat(name string, rt, rs uint8, imm uint16) string {
	return fmt.Sprintf("%s %s, %s, %d", name, gpr(rt), gpr(rs), int16(imm))
}

func immFormatUnsigned(name string, rt, rs uint8, imm uint16) string {
	return fmt.Sprintf("%s %s, %s, 0x%04x", name, gpr(rt), gpr(rs), imm)
}

func memFormat(name string, rt, rs uint8, imm uint16) string {
	return fmt.Sprintf("%s %s, %d(%s)", name, gpr(rt), int16(imm), gpr(rs))
}

func branchTarget(pc uint32, imm uint16) uint32 {
	return pc + 4 + (uint32(int32(int16(imm))) << 2)
}

func jumpTarget(pc uint32, target uint32) uint32 {
	return (target << 2) | (pc & 0xF000_0000)
}

func cop0Mnemonic(rs, rt, rd uint8) string {
	switch rs {
	case op.Cop0Mf:
		return fmt.Sprintf("mfc0 %s, %s", gpr(rt), cop0(rd))
	case op.Cop0Mt:
		return fmt.Sprintf("mtc0 %s, %s", gpr(rt), cop0(rd))
	default:
		return "cop0 ???"
	}
}

func regimmMnemonic(rs, rt uint8, imm uint16, pc uint32) string {
	names := map[uint8]string{
		op.RtBltz: "bltz", op.RtBgez: "bgez",
		op.RtBltzl: "bltzl", op.RtBgezl: "bgezl",
		op.RtBltzal: "bltzal", op.RtBgezal: "bgezal",
	}
	if name, ok := names[rt]; ok {
		return fmt.Sprintf("%s %s, 0x%08x", name, gpr(rs), branchTarget(pc, imm))
	}
	return "trap"
}

func specialMnemonic(rs, rt, rd, sa, funct uint8) string {
	switch funct {
	case op.FnSll:
		if rd == 0 && rt == 0 && sa == 0 {
			return "nop"
		}
		return fmt.Sprintf("sll %s, %s, %d", gpr(rd), gpr(rt), sa)
	case op.FnSrl:
		return fmt.Sprintf("srl %s, %s, %d", gpr(rd), gpr(rt), sa)
	case op.FnSra:
		return fmt.Sprintf("sra %s, %s, %d", gpr(rd), gpr(rt), sa)
	case op.FnSllv:
		return fmt.Sprintf("sllv %s, %s, %s", gpr(rd), gpr(rt), gpr(rs))
	case op.FnSrlv:
		return fmt.Sprintf("srlv %s, %s, %s", gpr(rd), gpr(rt), gpr(rs))
	case op.FnSrav:
		return fmt.Sprintf("srav %s, %s, %s", gpr(rd), gpr(rt), gpr(rs))
	case op.FnJr:
		return fmt.Sprintf("jr %s", gpr(rs))
	case op.FnJalr:
		return fmt.Sprintf("jalr %s, %s", gpr(rd), gpr(rs))
	case op.FnMovz:
		return fmt.Sprintf("movz %s, %s, %s", gpr(rd), gpr(rs), gpr(rt))
	case op.FnMovn:
		return fmt.Sprintf("movn %s, %s, %s", gpr(rd), gpr(rs), gpr(rt))
	case op.FnSyscall:
		return "syscall"
	case op.FnBreak:
		return "break"
	case op.FnSync:
		return "sync"
	case op.FnMfhi:
		return fmt.Sprintf("mfhi %s", gpr(rd))
	case op.FnMthi:
		return fmt.Sprintf("mthi %s", gpr(rs))
	case op.FnMflo:
		return fmt.Sprintf("mflo %s", gpr(rd))
	case op.FnMtlo:
		return fmt.Sprintf("mtlo %s", gpr(rs))
	case op.FnMult:
		return fmt.Sprintf("mult %s, %s", gpr(rs), gpr(rt))
	case op.FnMultu:
		return fmt.Sprintf("multu %s, %s", gpr(rs), gpr(rt))
	case op.FnDiv:
		return fmt.Sprintf("div %s, %s", gpr(rs), gpr(rt))
	case op.FnDivu:
		return fmt.Sprintf("divu %s, %s", gpr(rs), gpr(rt))
	case op.FnAdd:
		return rFormat("add", rd, rs, rt)
	case op.FnAddu:
		return rFormat("addu", rd, rs, rt)
	case op.FnSub:
		return rFormat("sub", rd, rs, rt)
	case op.FnSubu:
		return rFormat("subu", rd, rs, rt)
	case op.FnAnd:
		return rFormat("and", rd, rs, rt)
	case op.FnOr:
		return rFormat("or", rd, rs, rt)
	case op.FnXor:
		return rFormat("xor", rd, rs, rt)
	case op.FnNor:
		return rFormat("nor", rd, rs, rt)
	case op.FnSlt:
		return rFormat("slt", rd, rs, rt)
	case op.FnSltu:
		return rFormat("sltu", rd, rs, rt)
	case op.FnDaddu:
		return rFormat("daddu", rd, rs, rt)
	case op.FnDsllv:
		return fmt.Sprintf("dsllv %s, %s, %s", gpr(rd), gpr(rt), gpr(rs))
	case op.FnDsrlv:
		return fmt.Sprintf("dsrlv %s, %s, %s", gpr(rd), gpr(rt), gpr(rs))
	case op.FnDsrav:
		return fmt.Sprintf("dsrav %s, %s, %s", gpr(rd), gpr(rt), gpr(rs))
	case op.FnDsll, op.FnDsrl, op.FnDsra, op.FnDsll32, op.FnDsrl32, op.FnDsra32:
		return dshiftMnemonic(funct, rd, rt, sa)
	case op.FnTge, op.FnTgeu, op.FnTlt, op.FnTltu, op.FnTeq, op.FnTne:
		return "trap"
	default:
		return strings.TrimSpace(fmt.Sprintf("special.%02x", funct))
	}
}

func rFormat(name string, rd, rs, rt uint8) string {
	return fmt.Sprintf("%s %s, %s, %s", name, gpr(rd), gpr(rs), gpr(rt))
}

func dshiftMnemonic(funct, rd, rt, sa uint8) string {
	names := map[uint8]string{
		op.FnDsll: "dsll", op.FnDsrl: "dsrl", op.FnDsra: "dsra",
		op.FnDsll32: "dsll32", op.FnDsrl32: "dsrl32", op.FnDsra32: "dsra32",
	}
	return fmt.Sprintf("%s %s, %s, %d", names[funct], gpr(rd), gpr(rt), sa)
}
