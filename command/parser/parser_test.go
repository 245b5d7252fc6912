/*
   Console command parser tests.

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
	"testing"

	"github.com/ps2emu/eecore/command/command"
	"github.com/ps2emu/eecore/emu/core"
	"github.com/ps2emu/eecore/emu/cpu"
)

func newTestContext(t *testing.T) *command.Context {
	t.Helper()
	mach, err := cpu.New(nil)
	if err != nil {
		t.Fatalf("cpu.New: %v", err)
	}
	return &command.Context{Mach: mach, Run: core.New(mach, 0)}
}

func TestProcessCommandStepAdvancesPC(t *testing.T) {
	ctx := newTestContext(t)
	start := ctx.Mach.CPU.PC

	quit, err := ProcessCommand("step", ctx)
	if err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
	if quit {
		t.Fatal("step command reported quit")
	}
	if ctx.Mach.CPU.PC != start+4 {
		t.Errorf("pc = 0x%08x, want 0x%08x", ctx.Mach.CPU.PC, start+4)
	}
}

func TestProcessCommandUnknownNameErrors(t *testing.T) {
	ctx := newTestContext(t)
	if _, err := ProcessCommand("bogus", ctx); err == nil {
		t.Error("ProcessCommand accepted an unknown command")
	}
}

func TestProcessCommandAmbiguousPrefixErrors(t *testing.T) {
	ctx := newTestContext(t)
	// "st" is long enough to satisfy both step's and stop's minimum
	// unambiguous length, so it matches both.
	if _, err := ProcessCommand("st", ctx); err == nil {
		t.Error("ProcessCommand accepted an ambiguous prefix")
	}
}

func TestProcessCommandQuitReportsQuit(t *testing.T) {
	ctx := newTestContext(t)
	quit, err := ProcessCommand("quit", ctx)
	if err != nil {
		t.Fatalf("ProcessCommand: %v", err)
	}
	if !quit {
		t.Error("quit command did not report quit")
	}
}

func TestCompleteCmdListsPrefixMatches(t *testing.T) {
	matches := CompleteCmd("st")
	if len(matches) != 2 {
		t.Errorf("CompleteCmd(\"st\") = %v, want 2 matches (step, stop)", matches)
	}
}
