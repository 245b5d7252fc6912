/*
   Debugger command implementations.

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

package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ps2emu/eecore/command/command"
	"github.com/ps2emu/eecore/emu/cpu"
	"github.com/ps2emu/eecore/emu/disassemble"
	"github.com/ps2emu/eecore/emu/opcodemap"
	"github.com/ps2emu/eecore/util/hex"
)

func (l *cmdLine) getNumber() (uint64, bool) {
	w := l.getWord()
	if w == "" {
		return 0, false
	}
	w = strings.TrimPrefix(w, "0x")
	n, err := strconv.ParseUint(w, 16, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func step(l *cmdLine, ctx *command.Context) (bool, error) {
	count := uint64(1)
	if n, ok := l.getNumber(); ok {
		count = n
	}
	for i := uint64(0); i < count; i++ {
		ctx.Run.Step()
	}
	fmt.Printf("pc = 0x%08x\n", ctx.Mach.CPU.PC)
	return false, nil
}

func cont(_ *cmdLine, ctx *command.Context) (bool, error) {
	ctx.Run.Start()
	return false, nil
}

func stop(_ *cmdLine, ctx *command.Context) (bool, error) {
	ctx.Run.Stop()
	return false, nil
}

func regs(_ *cmdLine, ctx *command.Context) (bool, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "pc  = 0x%08x\n", ctx.Mach.CPU.PC)
	for i := 0; i < 32; i++ {
		fmt.Fprintf(&b, "%-5s= 0x%08x_%08x", opcodemap.MIPSGPRNames[i], ctx.Mach.CPU.GPR[i][1], ctx.Mach.CPU.GPR[i][0])
		if i%2 == 1 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}
	fmt.Fprintf(&b, "hi  = 0x%08x  lo = 0x%08x\n", ctx.Mach.CPU.HI, ctx.Mach.CPU.LO)
	fmt.Print(b.String())
	return false, nil
}

func cop0regs(_ *cmdLine, ctx *command.Context) (bool, error) {
	for i := 0; i < 32; i++ {
		name := opcodemap.COP0RegNames[i]
		if name == "" {
			continue
		}
		fmt.Printf("%-10s= 0x%08x\n", name, ctx.Mach.CPU.COP0[i])
	}
	return false, nil
}

func mem(l *cmdLine, ctx *command.Context) (bool, error) {
	addr, ok := l.getNumber()
	if !ok {
		return false, errors.New("memory requires an address")
	}
	count := uint64(4)
	if n, ok := l.getNumber(); ok {
		count = n
	}
	const perRow = 4
	row := make([]uint32, 0, perRow)
	a := uint32(addr)
	for i := uint64(0); i < count; i++ {
		row = append(row, ctx.Mach.ReadEEU32(a+uint32(i)*4))
		if len(row) == perRow || i == count-1 {
			var b strings.Builder
			fmt.Fprintf(&b, "0x%08x: ", a)
			hex.FormatWord(&b, row)
			fmt.Println(strings.TrimRight(b.String(), " "))
			a += uint32(len(row)) * 4
			row = row[:0]
		}
	}
	return false, nil
}

func bytesCmd(l *cmdLine, ctx *command.Context) (bool, error) {
	addr, ok := l.getNumber()
	if !ok {
		return false, errors.New("bytes requires an address")
	}
	count := uint64(16)
	if n, ok := l.getNumber(); ok {
		count = n
	}

	const perRow = 16
	row := make([]uint8, 0, perRow)
	a := uint32(addr)
	for i := uint64(0); i < count; i++ {
		row = append(row, ctx.Mach.ReadEEU8(a+uint32(i)))
		if len(row) == perRow || i == count-1 {
			var b strings.Builder
			fmt.Fprintf(&b, "0x%08x: ", a)
			hex.FormatBytes(&b, true, row)
			fmt.Println(strings.TrimRight(b.String(), " "))
			a += uint32(len(row))
			row = row[:0]
		}
	}
	return false, nil
}

func poke(l *cmdLine, ctx *command.Context) (bool, error) {
	addr, ok := l.getNumber()
	if !ok {
		return false, errors.New("poke requires an address")
	}
	value, ok := l.getNumber()
	if !ok {
		return false, errors.New("poke requires a value")
	}
	ctx.Mach.WriteEEU32(uint32(addr), uint32(value))
	return false, nil
}

func pcCmd(l *cmdLine, ctx *command.Context) (bool, error) {
	if addr, ok := l.getNumber(); ok {
		ctx.Mach.CPU.PC = uint32(addr)
	}
	fmt.Printf("pc = 0x%08x\n", ctx.Mach.CPU.PC)
	return false, nil
}

func resetCmd(_ *cmdLine, ctx *command.Context) (bool, error) {
	ctx.Mach.CPU.Reset()
	return false, nil
}

func traceCmd(l *cmdLine, ctx *command.Context) (bool, error) {
	switch l.getWord() {
	case "on":
		ctx.Trace = true
		ctx.Mach.Trace = cpu.SlogSink{}
	case "off":
		ctx.Trace = false
		ctx.Mach.Trace = nil
	default:
		return false, errors.New("trace requires on or off")
	}
	return false, nil
}

func disCmd(l *cmdLine, ctx *command.Context) (bool, error) {
	addr := ctx.Mach.CPU.PC
	if a, ok := l.getNumber(); ok {
		addr = uint32(a)
	}
	count := uint64(8)
	if n, ok := l.getNumber(); ok {
		count = n
	}
	for i := uint64(0); i < count; i++ {
		a := addr + uint32(i)*4
		word := ctx.Mach.ReadEEU32(a)
		fmt.Printf("0x%08x: %s\n", a, disassemble.Instruction(a, word))
	}
	return false, nil
}

func help(_ *cmdLine, _ *command.Context) (bool, error) {
	fmt.Println("commands: step [n], continue, stop, registers, cop0, memory <addr> [n], bytes <addr> [n], poke <addr> <value>, pc [addr], reset, trace on|off, disassemble [addr] [n], quit")
	return false, nil
}

func quit(_ *cmdLine, _ *command.Context) (bool, error) {
	return true, nil
}
