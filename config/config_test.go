/*
   Boot config file parser tests.

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
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boot.cfg")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadFileDispatchesRegisteredDirectives(t *testing.T) {
	Settings = struct {
		TraceCategories []string
		StepBudget      uint64
		ROMPath         string
		LogPath         string
	}{}

	path := writeTempConfig(t, "# boot configuration\nROM boot.bin\nSTEPS 1000\nTRACE cpu mem\n\nLOG out.log\n")

	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if Settings.ROMPath != "boot.bin" {
		t.Errorf("ROMPath = %q, want \"boot.bin\"", Settings.ROMPath)
	}
	if Settings.StepBudget != 1000 {
		t.Errorf("StepBudget = %d, want 1000", Settings.StepBudget)
	}
	if !HasTraceCategory("cpu") || !HasTraceCategory("MEM") {
		t.Error("TRACE directive's categories not recorded case-insensitively")
	}
	if Settings.LogPath != "out.log" {
		t.Errorf("LogPath = %q, want \"out.log\"", Settings.LogPath)
	}
}

func TestLoadFileRejectsUnknownDirective(t *testing.T) {
	path := writeTempConfig(t, "BOGUS value\n")
	if err := LoadFile(path); err == nil {
		t.Error("LoadFile accepted an unregistered directive")
	}
}

func TestLoadFileIgnoresCommentsAndBlankLines(t *testing.T) {
	path := writeTempConfig(t, "\n# nothing but comments\n   \n# done\n")
	if err := LoadFile(path); err != nil {
		t.Errorf("LoadFile: %v", err)
	}
}

func TestLoadFileMissingFileReturnsError(t *testing.T) {
	if err := LoadFile(filepath.Join(t.TempDir(), "missing.cfg")); err == nil {
		t.Error("LoadFile accepted a nonexistent path")
	}
}
