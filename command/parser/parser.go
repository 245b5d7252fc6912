/*
   Debugger command line parser.

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

// Package parser implements the interactive console's command language:
// one verb per line, prefix-matched against a minimum unambiguous length
// the way the teacher's debugger does, dispatching to a small per-command
// handler table.
package parser

import (
	"errors"
	"unicode"

	"github.com/ps2emu/eecore/command/command"
)

type cmdLine struct {
	line string
	pos  int
}

type cmd struct {
	name     string
	min      int // minimum unambiguous prefix length
	process  func(*cmdLine, *command.Context) (bool, error)
	complete func(*cmdLine) []string
}

var cmdList = []cmd{
	{name: "step", min: 1, process: step},
	{name: "continue", min: 1, process: cont},
	{name: "stop", min: 2, process: stop},
	{name: "registers", min: 3, process: regs},
	{name: "cop0", min: 4, process: cop0regs},
	{name: "memory", min: 3, process: mem},
	{name: "bytes", min: 2, process: bytesCmd},
	{name: "poke", min: 2, process: poke},
	{name: "pc", min: 2, process: pcCmd},
	{name: "reset", min: 3, process: resetCmd},
	{name: "trace", min: 2, process: traceCmd},
	{name: "disassemble", min: 3, process: disCmd},
	{name: "help", min: 1, process: help},
	{name: "quit", min: 1, process: quit},
}

// ProcessCommand parses and executes one command line against ctx. It
// returns true when the console should exit.
func ProcessCommand(commandLine string, ctx *command.Context) (bool, error) {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	matches := matchList(name)
	if len(matches) == 0 {
		return false, errors.New("command not found: " + name)
	}
	if len(matches) > 1 {
		return false, errors.New("ambiguous command: " + name)
	}
	return matches[0].process(&line, ctx)
}

// CompleteCmd backs the console's tab completion.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	name := line.getWord()

	if !line.isEOL() && line.pos > 0 && line.line[line.pos-1] == ' ' {
		matches := matchList(name)
		if len(matches) != 1 || matches[0].complete == nil {
			return nil
		}
		return matches[0].complete(&line)
	}

	matches := matchList(name)
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}

func matchCommand(m cmd, name string) bool {
	if len(name) == 0 || len(name) > len(m.name) {
		return false
	}
	if name != m.name[:len(name)] {
		return false
	}
	return len(name) >= m.min
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var matches []cmd
	for _, m := range cmdList {
		if matchCommand(m, name) {
			matches = append(matches, m)
		}
	}
	return matches
}

func (l *cmdLine) skipSpace() {
	for l.pos < len(l.line) && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line) || l.line[l.pos] == '#'
}

// getWord returns the next whitespace-delimited token, lower-cased.
func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return toLower(l.line[start:l.pos])
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
