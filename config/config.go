/*
   Boot config file parser.

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

// Package config parses the line-oriented boot config file: one directive
// per line, '#' starts a comment that runs to end of line, blank lines are
// ignored. Directives are registered by name from init() through
// Register, so adding a new directive never touches the parser itself.
//
// Configuration file format:
//
//	<line> := <directive> <whitespace> <value> | '#' <comment>
//	<directive> := <letter> *(<letter> | <digit>)
//	<value> := *(any non-comment character)
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Handler processes one directive's value. It is called once per matching
// line, in file order.
type Handler func(value string) error

var directives = map[string]Handler{}

// Register should be called from init functions, one per supported
// directive name (case-insensitive).
func Register(name string, fn Handler) {
	directives[strings.ToUpper(name)] = fn
}

// LoadFile reads name line by line and dispatches each directive to its
// registered Handler. An unregistered directive is an error; a blank line
// or a comment-only line is not.
func LoadFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	lineNumber := 0
	for {
		text, readErr := reader.ReadString('\n')
		if len(text) == 0 && readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
		lineNumber++
		if err := parseLine(text); err != nil {
			return fmt.Errorf("config: line %d: %w", lineNumber, err)
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return readErr
		}
	}
}

func parseLine(text string) error {
	if i := strings.IndexByte(text, '#'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	name, value := text, ""
	if i := strings.IndexAny(text, " \t"); i >= 0 {
		name, value = text[:i], text[i+1:]
	}
	name = strings.ToUpper(name)
	value = strings.TrimSpace(value)

	handler, ok := directives[name]
	if !ok {
		return fmt.Errorf("unknown directive %q", name)
	}
	return handler(value)
}
