/*
   Debugger command context.

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

// Package command holds the shared state the interactive console's parser
// operates on: the Machine it steps and the Runner that hosts it.
package command

import (
	"github.com/ps2emu/eecore/emu/core"
	"github.com/ps2emu/eecore/emu/cpu"
)

// Context bundles everything a console command needs. The console creates
// exactly one and passes it to every command, the same way the teacher's
// parser threads a *core.Core through each command function.
type Context struct {
	Mach  *cpu.Machine
	Run   *core.Runner
	Trace bool
}
