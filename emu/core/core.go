/*
   Core step-loop runner: hosts the CPU's step loop in one goroutine with a
   start/stop lifecycle.

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

// Package core hosts the Machine's step loop inside one long-lived
// goroutine, the scheduling convenience spec.md §5 allows: only that one
// goroutine ever touches the Machine, so no locking lives in this package
// either.
package core

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ps2emu/eecore/emu/cpu"
)

// Runner owns the goroutine that repeatedly calls cpu.Step. Limit bounds
// the number of instructions it will retire; zero means unlimited.
type Runner struct {
	wg      sync.WaitGroup
	done    chan struct{}
	mach    *cpu.Machine
	limit   uint64
	retired uint64
}

// New builds a Runner over mach. limit, if nonzero, is the step budget the
// boot config or the CLI may impose.
func New(mach *cpu.Machine, limit uint64) *Runner {
	return &Runner{
		mach:  mach,
		limit: limit,
		done:  make(chan struct{}),
	}
}

// Start launches the step loop in a new goroutine and returns immediately.
func (r *Runner) Start() {
	go r.run()
}

func (r *Runner) run() {
	r.wg.Add(1)
	defer r.wg.Done()

	for {
		select {
		case <-r.done:
			slog.Info("core: stopped", "retired", r.retired)
			return
		default:
		}

		if r.limit != 0 && r.retired >= r.limit {
			slog.Info("core: step budget reached", "retired", r.retired)
			return
		}

		cpu.Step(r.mach)
		r.retired++
	}
}

// Stop signals the step loop to exit and waits up to one second for it to
// do so.
func (r *Runner) Stop() {
	close(r.done)

	finished := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		slog.Warn("core: timed out waiting for step loop to finish")
	}
}

// Retired reports how many instructions the loop has executed so far.
func (r *Runner) Retired() uint64 {
	return r.retired
}

// Step executes exactly one instruction, bypassing the goroutine loop.
// The interactive console uses this: it is calling from the only
// goroutine touching the Machine at the time (itself), never concurrently
// with Start.
func (r *Runner) Step() {
	cpu.Step(r.mach)
	r.retired++
}
