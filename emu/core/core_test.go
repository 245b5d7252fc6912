/*
   Step-loop runner tests.

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

package core

import (
	"testing"
	"time"

	"github.com/ps2emu/eecore/emu/cpu"
)

func TestRunnerStepBudgetStopsItself(t *testing.T) {
	mach, err := cpu.New(nil)
	if err != nil {
		t.Fatalf("cpu.New: %v", err)
	}
	r := New(mach, 10)
	r.Start()

	deadline := time.After(time.Second)
	for {
		if r.Retired() >= 10 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("runner did not reach its step budget in time")
		case <-time.After(time.Millisecond):
		}
	}

	// Give the loop a moment to observe the budget and exit on its own
	// before Stop, so Stop exercises the already-stopped path too.
	time.Sleep(10 * time.Millisecond)
	r.Stop()

	if r.Retired() < 10 {
		t.Errorf("Retired() = %d, want at least 10", r.Retired())
	}
}

func TestRunnerStepExecutesExactlyOneInstruction(t *testing.T) {
	mach, err := cpu.New(nil)
	if err != nil {
		t.Fatalf("cpu.New: %v", err)
	}
	r := New(mach, 0)
	start := mach.CPU.PC

	r.Step()

	if mach.CPU.PC != start+4 {
		t.Errorf("pc = 0x%08x, want 0x%08x", mach.CPU.PC, start+4)
	}
	if r.Retired() != 1 {
		t.Errorf("Retired() = %d, want 1", r.Retired())
	}
}
