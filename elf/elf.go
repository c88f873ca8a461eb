// This file is part of riscv-disasm.
//
// riscv-disasm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// riscv-disasm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with riscv-disasm.  If not, see <https://www.gnu.org/licenses/>.

package elf

import (
	"debug/elf"
	"encoding/binary"
	"io"
	"os"

	"github.com/vitos23/riscv-disasm/curated"
	"github.com/vitos23/riscv-disasm/logger"
)

// Sentinel error patterns.
const (
	NotELF          = "ELF: %v"
	NotRISCV        = "ELF: is not RISC-V"
	Not32Bit        = "ELF: is not 32 bit"
	NotLittleEndian = "ELF: is not little-endian"
	MissingSection  = "ELF: no %s section"
	SectionError    = "ELF: %s: %v"
	SymtabEntrySize = "ELF: unexpected .symtab entry size (%d)"
)

// the size of an ELF32 symbol table entry.
const symtabEntrySize = 16

// Executable is the disassembly relevant contents of an ELF file.
type Executable struct {
	// the contents of the .text section and the address it is loaded at
	Text    []byte
	Address uint64

	// every entry in .symtab, in order
	Symbols []Symbol
}

// Open reads the named file as a RISC-V executable.
func Open(filename string) (*Executable, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(NotELF, err)
	}
	defer f.Close()

	return NewExecutable(f)
}

// NewExecutable reads a RISC-V executable from an io.ReaderAt.
func NewExecutable(r io.ReaderAt) (*Executable, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, curated.Errorf(NotELF, err)
	}
	defer f.Close()

	// sanity checks on ELF data
	if f.FileHeader.Class != elf.ELFCLASS32 {
		return nil, curated.Errorf(Not32Bit)
	}
	if f.FileHeader.ByteOrder != binary.LittleEndian {
		return nil, curated.Errorf(NotLittleEndian)
	}
	if f.FileHeader.Machine != elf.EM_RISCV {
		return nil, curated.Errorf(NotRISCV)
	}

	text := f.Section(".text")
	if text == nil {
		return nil, curated.Errorf(MissingSection, ".text")
	}
	symtab := f.Section(".symtab")
	if symtab == nil {
		return nil, curated.Errorf(MissingSection, ".symtab")
	}
	if f.Section(".strtab") == nil {
		return nil, curated.Errorf(MissingSection, ".strtab")
	}
	if symtab.Entsize != symtabEntrySize {
		return nil, curated.Errorf(SymtabEntrySize, symtab.Entsize)
	}

	ex := &Executable{
		Address: text.Addr,
	}

	ex.Text, err = text.Data()
	if err != nil {
		return nil, curated.Errorf(SectionError, ".text", err)
	}
	logger.Logf(logger.Allow, "ELF", ".text: %08x to %08x (%d bytes)", ex.Address, ex.Address+uint64(len(ex.Text)), len(ex.Text))

	syms, err := f.Symbols()
	if err != nil && err != elf.ErrNoSymbols {
		return nil, curated.Errorf(SectionError, ".symtab", err)
	}

	// the null symbol is not returned by Symbols() but it is part of the
	// symbol table listing
	ex.Symbols = make([]Symbol, 0, len(syms)+1)
	ex.Symbols = append(ex.Symbols, Symbol{})
	for i, s := range syms {
		ex.Symbols = append(ex.Symbols, Symbol{
			Index:   i + 1,
			Name:    s.Name,
			Value:   s.Value,
			Size:    s.Size,
			Info:    s.Info,
			Other:   s.Other,
			Section: uint16(s.Section),
		})
	}
	logger.Logf(logger.Allow, "ELF", ".symtab: %d entries", len(ex.Symbols))

	return ex, nil
}
