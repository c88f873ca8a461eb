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
	"bytes"
	"debug/elf"
	"encoding/binary"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/vitos23/riscv-disasm/curated"
	"github.com/vitos23/riscv-disasm/test"
)

var testText = []byte{
	0x13, 0x01, 0x01, 0xff, // addi sp, sp, -16
	0x82, 0x80, // c.jr ra
	0x01, 0x00, // c.nop
}

var testSymbols = []test.ELFSymbol{
	{Name: "main.c", Info: 0x04, Shndx: 0xfff1},
	{Name: "_start", Value: 0x10074, Info: 0x12, Shndx: 1},
	{Name: "helper", Value: 0x10080, Size: 8, Info: 0x12, Other: 2, Shndx: 1},
	{Name: "data", Value: 0x11000, Size: 4, Info: 0x11, Shndx: 2},
	{Name: "zero_fn", Info: 0x12},
	{Value: 0x10090, Info: 0x02, Shndx: 1},
	{Name: "helper2", Value: 0x10080, Info: 0x22, Shndx: 1},
}

var _ = Describe("Executable", func() {
	var (
		img   []byte
		shOff int
	)

	BeforeEach(func() {
		img, shOff = test.ELFImage(testText, 0x10074, testSymbols)
	})

	Context("with a valid image", func() {
		var ex *Executable

		BeforeEach(func() {
			var err error
			ex, err = NewExecutable(bytes.NewReader(img))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should read the text section", func() {
			Expect(ex.Text).To(Equal(testText))
			Expect(ex.Address).To(Equal(uint64(0x10074)))
		})

		It("should include the null symbol", func() {
			Expect(ex.Symbols).To(HaveLen(len(testSymbols) + 1))
			Expect(ex.Symbols[0]).To(Equal(Symbol{}))
			Expect(ex.Symbols[0].String()).To(Equal("[   0] 0x0                   0 NOTYPE   LOCAL    DEFAULT   UNDEF "))
		})

		It("should number the symbols in table order", func() {
			for i, sym := range ex.Symbols {
				Expect(sym.Index).To(Equal(i))
			}
			Expect(ex.Symbols[2].Name).To(Equal("_start"))
			Expect(ex.Symbols[7].Name).To(Equal("helper2"))
		})

		It("should render symbols", func() {
			Expect(ex.Symbols[1].String()).To(Equal("[   1] 0x0                   0 FILE     LOCAL    DEFAULT     ABS main.c"))
			Expect(ex.Symbols[2].String()).To(Equal("[   2] 0x10074               0 FUNC     GLOBAL   DEFAULT       1 _start"))
			Expect(ex.Symbols[3].String()).To(Equal("[   3] 0x10080               8 FUNC     GLOBAL   HIDDEN        1 helper"))
		})

		It("should build a table of function symbols", func() {
			tbl := ex.FunctionSymbols()
			Expect(tbl.Len()).To(Equal(2))

			s, ok := tbl.ReverseSearch(0x10074)
			Expect(ok).To(BeTrue())
			Expect(s).To(Equal("_start"))

			// the later of two symbols at the same address is used
			s, ok = tbl.ReverseSearch(0x10080)
			Expect(ok).To(BeTrue())
			Expect(s).To(Equal("helper2"))

			_, ok = tbl.ReverseSearch(0x11000)
			Expect(ok).To(BeFalse())
			_, ok = tbl.ReverseSearch(0x10090)
			Expect(ok).To(BeFalse())
		})

		It("should write the symbol table listing", func() {
			tw := &test.Writer{}
			ex.WriteSymtab(tw)

			lines := bytes.Split([]byte(tw.String()), []byte("\n"))
			Expect(lines).To(HaveLen(len(ex.Symbols) + 2))
			Expect(string(lines[0])).To(Equal("Symbol Value              Size Type     Bind     Vis       Index Name"))
			Expect(string(lines[3])).To(Equal(ex.Symbols[2].String()))
			Expect(string(lines[len(lines)-1])).To(BeEmpty())
		})
	})

	It("should reject a file that is not ELF", func() {
		img[1] = 'X'
		_, err := NewExecutable(bytes.NewReader(img))
		Expect(curated.Is(err, NotELF)).To(BeTrue())
	})

	It("should reject a machine that is not RISC-V", func() {
		binary.LittleEndian.PutUint16(img[18:], uint16(elf.EM_ARM))
		_, err := NewExecutable(bytes.NewReader(img))
		Expect(curated.Is(err, NotRISCV)).To(BeTrue())
	})

	It("should reject a big-endian file", func() {
		img[elf.EI_DATA] = byte(elf.ELFDATA2MSB)
		_, err := NewExecutable(bytes.NewReader(img))
		Expect(err).To(HaveOccurred())
	})

	It("should reject a missing text section", func() {
		img = bytes.Replace(img, []byte(".text\x00"), []byte(".txet\x00"), 1)
		_, err := NewExecutable(bytes.NewReader(img))
		Expect(curated.Is(err, MissingSection)).To(BeTrue())
		Expect(err.Error()).To(Equal("ELF: no .text section"))
	})

	It("should reject a missing string table", func() {
		img = bytes.Replace(img, []byte("\x00.strtab\x00"), []byte("\x00.strtaX\x00"), 1)
		_, err := NewExecutable(bytes.NewReader(img))
		Expect(curated.Is(err, MissingSection)).To(BeTrue())
	})

	It("should reject an unexpected symbol table entry size", func() {
		binary.LittleEndian.PutUint32(img[shOff+2*test.ELFSectionHeaderSize+36:], 24)
		_, err := NewExecutable(bytes.NewReader(img))
		Expect(curated.Is(err, SymtabEntrySize)).To(BeTrue())
	})

	It("should report a missing file", func() {
		_, err := Open("no_such_file.elf")
		Expect(curated.Is(err, NotELF)).To(BeTrue())
	})
})

var _ = Describe("Symbol", func() {
	It("should name types", func() {
		Expect(Symbol{Info: 0x00}.Type()).To(Equal("NOTYPE"))
		Expect(Symbol{Info: 0x06}.Type()).To(Equal("TLS"))
		Expect(Symbol{Info: 0x07}.Type()).To(Equal(""))
		Expect(Symbol{Info: 0x0d}.Type()).To(Equal("RESERVED"))
	})

	It("should name bindings", func() {
		Expect(Symbol{Info: 0x10}.Bind()).To(Equal("GLOBAL"))
		Expect(Symbol{Info: 0x20}.Bind()).To(Equal("WEAK"))
		Expect(Symbol{Info: 0x30}.Bind()).To(Equal(""))
		Expect(Symbol{Info: 0xd0}.Bind()).To(Equal("RESERVED"))
	})

	It("should name visibility", func() {
		Expect(Symbol{Other: 1}.Visibility()).To(Equal("INTERNAL"))
		Expect(Symbol{Other: 3}.Visibility()).To(Equal("PROTECTED"))
		Expect(Symbol{Other: 4}.Visibility()).To(Equal(""))
	})

	It("should name section indexes", func() {
		Expect(Symbol{Section: 0}.SectionIndex()).To(Equal("UNDEF"))
		Expect(Symbol{Section: 5}.SectionIndex()).To(Equal("5"))
		Expect(Symbol{Section: 0xfff1}.SectionIndex()).To(Equal("ABS"))
		Expect(Symbol{Section: 0xfff2}.SectionIndex()).To(Equal("COMMON"))
		Expect(Symbol{Section: 0xffff}.SectionIndex()).To(Equal("XINDEX"))
		Expect(Symbol{Section: 0xff10}.SectionIndex()).To(Equal("RESERVED"))
	})

	It("should identify functions", func() {
		Expect(Symbol{Name: "f", Value: 4, Info: 0x12}.IsFunction()).To(BeTrue())
		Expect(Symbol{Name: "f", Info: 0x12}.IsFunction()).To(BeFalse())
		Expect(Symbol{Value: 4, Info: 0x12}.IsFunction()).To(BeFalse())
		Expect(Symbol{Name: "f", Value: 4, Info: 0x11}.IsFunction()).To(BeFalse())
	})
})
