/*
   Trace sink: the pluggable collaborator the step driver reports retired
   instructions to.

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

import (
	"log/slog"

	"github.com/ps2emu/eecore/emu/disassemble"
)

// Event is what Step reports once per retired instruction.
type Event struct {
	PC   uint32
	Word uint32
}

// Sink receives trace events. A Machine with a nil Trace pays nothing for
// tracing; Step checks before calling Emit.
type Sink interface {
	Emit(Event)
}

// SlogSink formats each event through the disassembler and logs it at
// debug level, the default sink main.go installs when tracing is enabled.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) Emit(e Event) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Debug("step", "pc", formatHex(e.PC), "instr", disassemble.Instruction(e.PC, e.Word))
}

func formatHex(v uint32) string {
	const hexDigits = "0123456789abcdef"
	buf := [10]byte{'0', 'x'}
	for i := 0; i < 8; i++ {
		buf[9-i] = hexDigits[(v>>(4*i))&0xF]
	}
	return string(buf[:])
}
