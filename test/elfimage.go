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

package test

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// ELFSymbol is an entry in the symbol table of an image created by
// ELFImage(). The fields are the same as the fields of an ELF32 symbol.
type ELFSymbol struct {
	Name  string
	Value uint32
	Size  uint32
	Info  uint8
	Other uint8
	Shndx uint16
}

// the section name string table and the offset of each name in it
const (
	elfShstrtab = "\x00.text\x00.symtab\x00.strtab\x00.shstrtab\x00"

	elfNameText     = 1
	elfNameSymtab   = 7
	elfNameStrtab   = 15
	elfNameShstrtab = 23
)

// Size of the ELF32 section header. The section headers in an image created
// by ELFImage() are null, .text, .symtab, .strtab and .shstrtab in that order.
const ELFSectionHeaderSize = 40

const (
	elfHeaderSize  = 52
	elfNumSections = 5
)

func align4(n int) int {
	return (n + 3) &^ 3
}

// ELFImage creates a minimal little-endian ELF32 RISC-V executable containing
// a .text section loaded at address and a symbol table. The null symbol is
// added automatically. The offset of the section header table is returned so
// that tests can corrupt individual headers.
func ELFImage(text []byte, address uint32, syms []ELFSymbol) ([]byte, int) {
	strtab := []byte{0}
	symtab := &bytes.Buffer{}
	binary.Write(symtab, binary.LittleEndian, elf.Sym32{})
	for _, s := range syms {
		var name uint32
		if s.Name != "" {
			name = uint32(len(strtab))
			strtab = append(strtab, s.Name...)
			strtab = append(strtab, 0)
		}
		binary.Write(symtab, binary.LittleEndian, elf.Sym32{
			Name:  name,
			Value: s.Value,
			Size:  s.Size,
			Info:  s.Info,
			Other: s.Other,
			Shndx: s.Shndx,
		})
	}

	textOff := elfHeaderSize
	symOff := align4(textOff + len(text))
	strOff := symOff + symtab.Len()
	shstrOff := strOff + len(strtab)
	shOff := align4(shstrOff + len(elfShstrtab))

	img := make([]byte, shOff+elfNumSections*ELFSectionHeaderSize)
	copy(img[textOff:], text)
	copy(img[symOff:], symtab.Bytes())
	copy(img[strOff:], strtab)
	copy(img[shstrOff:], elfShstrtab)

	hdr := elf.Header32{
		Ident:     [elf.EI_NIDENT]byte{0x7f, 'E', 'L', 'F', byte(elf.ELFCLASS32), byte(elf.ELFDATA2LSB), byte(elf.EV_CURRENT)},
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_RISCV),
		Version:   uint32(elf.EV_CURRENT),
		Entry:     address,
		Shoff:     uint32(shOff),
		Ehsize:    elfHeaderSize,
		Shentsize: ELFSectionHeaderSize,
		Shnum:     elfNumSections,
		Shstrndx:  4,
	}
	b := &bytes.Buffer{}
	binary.Write(b, binary.LittleEndian, hdr)
	copy(img, b.Bytes())

	sections := []elf.Section32{
		{},
		{
			Name:      elfNameText,
			Type:      uint32(elf.SHT_PROGBITS),
			Flags:     uint32(elf.SHF_ALLOC | elf.SHF_EXECINSTR),
			Addr:      address,
			Off:       uint32(textOff),
			Size:      uint32(len(text)),
			Addralign: 2,
		},
		{
			Name:      elfNameSymtab,
			Type:      uint32(elf.SHT_SYMTAB),
			Off:       uint32(symOff),
			Size:      uint32(symtab.Len()),
			Link:      3,
			Info:      1,
			Addralign: 4,
			Entsize:   elf.Sym32Size,
		},
		{
			Name:      elfNameStrtab,
			Type:      uint32(elf.SHT_STRTAB),
			Off:       uint32(strOff),
			Size:      uint32(len(strtab)),
			Addralign: 1,
		},
		{
			Name:      elfNameShstrtab,
			Type:      uint32(elf.SHT_STRTAB),
			Off:       uint32(shstrOff),
			Size:      uint32(len(elfShstrtab)),
			Addralign: 1,
		},
	}
	b.Reset()
	binary.Write(b, binary.LittleEndian, sections)
	copy(img[shOff:], b.Bytes())

	return img, shOff
}

// ELFFile writes an image created by ELFImage() to a temporary file and
// returns the filename. The file is removed when the test finishes.
func ELFFile(t *testing.T, text []byte, address uint32, syms []ELFSymbol) string {
	t.Helper()

	img, _ := ELFImage(text, address, syms)
	filename := filepath.Join(t.TempDir(), "test.elf")
	if err := os.WriteFile(filename, img, 0o644); err != nil {
		t.Fatalf("cannot write ELF image: %v", err)
	}

	return filename
}
