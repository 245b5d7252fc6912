/*
   Standard boot config directives.

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

package config

import (
	"strconv"
	"strings"
)

// Settings accumulates the directives a loaded boot config has set. main.go
// reads ROMPath and StepBudget after LoadFile returns, and a --rom flag or
// a nonzero --steps flag overrides them. TraceCategories and LogPath are
// recorded here but main.go does not consult them: the log file comes only
// from --log, and tracing only from --trace or the console's trace command.
var Settings struct {
	TraceCategories []string
	StepBudget      uint64
	ROMPath         string
	LogPath         string
}

func init() {
	Register("TRACE", func(value string) error {
		for _, cat := range strings.Fields(value) {
			Settings.TraceCategories = append(Settings.TraceCategories, strings.ToUpper(cat))
		}
		return nil
	})

	Register("STEPS", func(value string) error {
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return err
		}
		Settings.StepBudget = n
		return nil
	})

	Register("ROM", func(value string) error {
		Settings.ROMPath = strings.TrimSpace(value)
		return nil
	})

	Register("LOG", func(value string) error {
		Settings.LogPath = strings.TrimSpace(value)
		return nil
	})
}

// HasTraceCategory reports whether cat was named in a TRACE directive.
func HasTraceCategory(cat string) bool {
	cat = strings.ToUpper(cat)
	for _, c := range Settings.TraceCategories {
		if c == cat {
			return true
		}
	}
	return false
}
