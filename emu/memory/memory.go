/*
   Flat physical address space for the Emotion Engine boot core.

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

// Package memory models the three fixed regions an Emotion Engine boot sees:
// EE RAM, IOP RAM, and the boot ROM. Callers pass virtual addresses, as the
// CPU does at fetch and load/store time; every accessor masks them down to
// the 29-bit physical range itself before resolving a region.
package memory

import (
	"fmt"
	"log/slog"
)

// Region sizes and physical bases. IOP RAM is not placed by spec.md's
// distillation; this core follows the real PS2 physical map, where IOP RAM
// sits at 0x1C00_0000, well clear of both EE RAM and the boot ROM.
const (
	EERAMSize  = 32 * 1024 * 1024
	IOPRAMSize = 2 * 1024 * 1024
	ROMSize    = 4 * 1024 * 1024

	EERAMBase  = 0x0000_0000
	IOPRAMBase = 0x1C00_0000
	ROMBase    = 0x1FC0_0000

	PhysMask = 0x1FFF_FFFF

	// DeadBeef is returned for any read that lands outside all three
	// mapped regions.
	DeadBeef = 0xDEAD_BEEF
)

// AddressSpace is the Machine's sole view of memory. It owns all three
// backing stores and never shares them; every access arrives through Read*
// and Write*.
type AddressSpace struct {
	eeRAM  []uint32
	iopRAM []uint32
	rom    []uint32

	// StrictAlign selects how a misaligned access is degraded. False (the
	// default) silently rounds down to the containing aligned word, the
	// behavior spec.md §7 describes as the baseline. True instead returns
	// DeadBeef on read and discards on write, standing in for the address
	// error a real MMU would raise; no instruction-level error ever
	// escapes step regardless of which mode is selected.
	StrictAlign bool

	// Misaligned is set whenever Read32 or Write32 (and so each half of
	// Read64/Write64) receives an address that is not 4-byte aligned,
	// strict mode or not, so tests and the debugger can observe the
	// condition without inspecting accessor return values. The byte and
	// half-word accessors never set it, and 64-bit accesses are not checked
	// for 8-byte alignment.
	Misaligned bool
}

// New allocates the three regions and copies romImage into the ROM region.
// The backing stores are allocated exactly once, here, and never resized.
func New(romImage []byte) (*AddressSpace, error) {
	if len(romImage) > ROMSize {
		return nil, fmt.Errorf("memory: ROM image is %d bytes, exceeds %d byte ROM region", len(romImage), ROMSize)
	}

	a := &AddressSpace{
		eeRAM:  make([]uint32, EERAMSize/4),
		iopRAM: make([]uint32, IOPRAMSize/4),
		rom:    make([]uint32, ROMSize/4),
	}

	for i := 0; i+4 <= len(romImage); i += 4 {
		a.rom[i/4] = uint32(romImage[i]) | uint32(romImage[i+1])<<8 |
			uint32(romImage[i+2])<<16 | uint32(romImage[i+3])<<24
	}
	if rem := len(romImage) % 4; rem != 0 {
		base := len(romImage) - rem
		var w uint32
		for i := 0; i < rem; i++ {
			w |= uint32(romImage[base+i]) << (8 * i)
		}
		a.rom[base/4] = w
	}

	return a, nil
}

// locate returns the backing slice and word index for a physical word
// address, or ok=false if the address is unmapped.
func (a *AddressSpace) locate(phys uint32) (slice []uint32, index uint32, writable bool, ok bool) {
	switch {
	case phys < EERAMSize:
		return a.eeRAM, phys / 4, true, true
	case phys >= IOPRAMBase && phys < IOPRAMBase+IOPRAMSize:
		return a.iopRAM, (phys - IOPRAMBase) / 4, true, true
	case phys >= ROMBase && phys < ROMBase+ROMSize:
		return a.rom, (phys - ROMBase) / 4, false, true
	default:
		return nil, 0, false, false
	}
}

// Read32 returns the little-endian word at vaddr, masked to the physical
// range. Misaligned addresses are rounded down to the containing word
// unless StrictAlign is set, in which case DeadBeef is returned instead.
// An unmapped address returns DeadBeef and is logged at debug level.
func (a *AddressSpace) Read32(vaddr uint32) uint32 {
	phys := vaddr & PhysMask
	if phys&3 != 0 {
		a.Misaligned = true
		if a.StrictAlign {
			return DeadBeef
		}
		phys &^= 3
	}
	slice, idx, _, ok := a.locate(phys)
	if !ok {
		slog.Debug("memory: unmapped read", "addr", vaddr)
		return DeadBeef
	}
	return slice[idx]
}

// Write32 stores a little-endian word at vaddr. Writes into the ROM region
// are silently discarded; writes to unmapped addresses are discarded and
// logged at debug level.
func (a *AddressSpace) Write32(vaddr, value uint32) {
	phys := vaddr & PhysMask
	if phys&3 != 0 {
		a.Misaligned = true
		if a.StrictAlign {
			return
		}
		phys &^= 3
	}
	slice, idx, writable, ok := a.locate(phys)
	if !ok {
		slog.Debug("memory: unmapped write", "addr", vaddr)
		return
	}
	if !writable {
		return
	}
	slice[idx] = value
}

// Read64 performs two little-endian word reads, low word first, the way
// the original LD handler assembles a doubleword.
func (a *AddressSpace) Read64(vaddr uint32) uint64 {
	lo := a.Read32(vaddr)
	hi := a.Read32(vaddr + 4)
	return uint64(lo) | uint64(hi)<<32
}

// Write64 performs two little-endian word writes, the SD contract from
// spec.md §4.1.
func (a *AddressSpace) Write64(vaddr uint32, value uint64) {
	a.Write32(vaddr, uint32(value))
	a.Write32(vaddr+4, uint32(value>>32))
}

// Read8 derives a byte from the containing word, little-endian lane order:
// byte 0 of the word is the lowest addressed byte.
func (a *AddressSpace) Read8(vaddr uint32) uint8 {
	word := a.Read32(vaddr &^ 3)
	shift := (vaddr & 3) * 8
	return uint8(word >> shift)
}

// Write8 derives its effect from a read-modify-write of the containing
// word, so it inherits Read32/Write32's region and alignment policy for
// free, including ROM's read-only behavior.
func (a *AddressSpace) Write8(vaddr uint32, value uint8) {
	aligned := vaddr &^ 3
	word := a.Read32(aligned)
	shift := (vaddr & 3) * 8
	word = (word &^ (0xFF << shift)) | uint32(value)<<shift
	a.Write32(aligned, word)
}

// Read16 and Write16 are the half-word analogues of Read8/Write8, used by
// the LH/LHU/SH handlers.
func (a *AddressSpace) Read16(vaddr uint32) uint16 {
	word := a.Read32(vaddr &^ 3)
	shift := (vaddr & 2) * 8
	return uint16(word >> shift)
}

func (a *AddressSpace) Write16(vaddr uint32, value uint16) {
	aligned := vaddr &^ 3
	word := a.Read32(aligned)
	shift := (vaddr & 2) * 8
	word = (word &^ (0xFFFF << shift)) | uint32(value)<<shift
	a.Write32(aligned, word)
}
