/*
   Flat physical address space tests.

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

package memory

import "testing"

func TestWriteReadRoundTripEERAM(t *testing.T) {
	a, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Write32(0x1000, 0x1122_3344)
	if got := a.Read32(0x1000); got != 0x1122_3344 {
		t.Errorf("Read32 = 0x%08x, want 0x11223344", got)
	}
}

func TestResetVectorReadsFirstROMWord(t *testing.T) {
	rom := []byte{0xEF, 0xBE, 0xAD, 0xDE} // little-endian 0xDEADBEEF
	a, err := New(rom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := a.Read32(0xBFC0_0000); got != 0xDEAD_BEEF {
		t.Errorf("Read32(reset vector) = 0x%08x, want 0xDEADBEEF", got)
	}
}

func TestWritesToROMAreDiscarded(t *testing.T) {
	rom := []byte{0x01, 0x00, 0x00, 0x00}
	a, err := New(rom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a.Write32(ROMBase, 0xFFFF_FFFF)
	if got := a.Read32(ROMBase); got != 1 {
		t.Errorf("ROM word changed by Write32: got 0x%08x, want 1", got)
	}
}

func TestUnmappedReadReturnsSentinel(t *testing.T) {
	a, _ := New(nil)
	if got := a.Read32(0x0999_9999); got != DeadBeef {
		t.Errorf("Read32(unmapped) = 0x%08x, want 0x%08x", got, uint32(DeadBeef))
	}
}

func TestMisalignedReadRoundsDownByDefault(t *testing.T) {
	a, _ := New(nil)
	a.Write32(0x1000, 0xAABB_CCDD)
	if got := a.Read32(0x1003); got != 0xAABB_CCDD {
		t.Errorf("Read32(0x1003) = 0x%08x, want round-down to 0x1000's word", got)
	}
	if !a.Misaligned {
		t.Error("Misaligned flag not set on unaligned access")
	}
}

func TestStrictAlignReturnsSentinelOnMisalignedRead(t *testing.T) {
	a, _ := New(nil)
	a.StrictAlign = true
	a.Write32(0x1000, 0xAABB_CCDD)
	if got := a.Read32(0x1003); got != DeadBeef {
		t.Errorf("Read32(0x1003) under StrictAlign = 0x%08x, want sentinel", got)
	}
}

func TestByteAndHalfwordDeriveFromContainingWord(t *testing.T) {
	a, _ := New(nil)
	a.Write32(0x2000, 0x1122_3344)

	if got := a.Read8(0x2000); got != 0x44 {
		t.Errorf("Read8(0x2000) = 0x%02x, want 0x44", got)
	}
	if got := a.Read8(0x2003); got != 0x11 {
		t.Errorf("Read8(0x2003) = 0x%02x, want 0x11", got)
	}
	if got := a.Read16(0x2000); got != 0x3344 {
		t.Errorf("Read16(0x2000) = 0x%04x, want 0x3344", got)
	}

	a.Write8(0x2000, 0xFF)
	if got := a.Read32(0x2000); got != 0x1122_33FF {
		t.Errorf("Read32 after Write8 = 0x%08x, want 0x112233FF", got)
	}
}

func TestRead64Write64LittleEndianWordOrder(t *testing.T) {
	a, _ := New(nil)
	a.Write64(0x3000, 0x1122_3344_5566_7788)

	if got := a.Read32(0x3000); got != 0x5566_7788 {
		t.Errorf("low word = 0x%08x, want 0x55667788", got)
	}
	if got := a.Read32(0x3004); got != 0x1122_3344 {
		t.Errorf("high word = 0x%08x, want 0x11223344", got)
	}
	if got := a.Read64(0x3000); got != 0x1122_3344_5566_7788 {
		t.Errorf("Read64 = 0x%016x, want 0x1122334455667788", got)
	}
}

func TestROMImageTooLargeIsRejected(t *testing.T) {
	big := make([]byte, ROMSize+1)
	if _, err := New(big); err == nil {
		t.Error("New accepted an oversized ROM image")
	}
}

func TestIOPRAMIsIndependentOfEERAM(t *testing.T) {
	a, _ := New(nil)
	a.Write32(IOPRAMBase, 0xCAFEBABE)
	if got := a.Read32(0); got != 0 {
		t.Errorf("EE RAM word 0 disturbed by IOP RAM write: 0x%08x", got)
	}
	if got := a.Read32(IOPRAMBase); got != 0xCAFEBABE {
		t.Errorf("Read32(IOPRAMBase) = 0x%08x, want 0xCAFEBABE", got)
	}
}
