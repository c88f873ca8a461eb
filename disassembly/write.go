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

package disassembly

import (
	"io"
	"strings"

	"github.com/vitos23/riscv-disasm/riscv"
	"github.com/vitos23/riscv-disasm/terminal/easyterm/ansi"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// prefix each line with the raw instruction
	ByteCode bool

	// use ANSI colour codes for labels and mnemonics
	Color bool

	// include the symbol table in the output of WriteListing()
	Symtab bool
}

// the width of the label column, not including the colon.
const labelWidth = 20

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	for _, ins := range dsm.Entries {
		dsm.WriteLine(output, attr, ins)
	}
}

// WriteLine writes a single instruction to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, ins *riscv.Instruction) {
	if ins == nil {
		return
	}

	if attr.ByteCode {
		io.WriteString(output, ins.Bytecode())
		io.WriteString(output, " ")
	}

	if !attr.Color {
		io.WriteString(output, ins.String())
		io.WriteString(output, "\n")
		return
	}

	// the coloured line has the same layout as the plain line. padding is
	// applied to the plain label so the ANSI codes do not affect the width
	s := strings.Builder{}
	s.WriteString(ins.Header()[:9])
	if ins.Label == "" {
		s.WriteString(strings.Repeat(" ", labelWidth+1))
	} else {
		if pad := labelWidth - len(ins.Label); pad > 0 {
			s.WriteString(strings.Repeat(" ", pad))
		}
		s.WriteString(ansi.Pens["yellow"])
		s.WriteString(ins.Label)
		s.WriteString(ansi.NormalPen)
		s.WriteString(":")
	}
	s.WriteString(" ")

	if ins.Defn == nil {
		s.WriteString(ansi.DimPens["red"])
	} else if ins.Defn.Category.IsFlow() {
		s.WriteString(ansi.Pens["cyan"])
	} else {
		s.WriteString(ansi.Pens["white"])
	}
	s.WriteString(ins.Mnemonic)
	s.WriteString(ansi.NormalPen)
	s.WriteString(" ")
	s.WriteString(strings.Join(ins.Operands, ", "))
	s.WriteString("\n")

	io.WriteString(output, s.String())
}

// WriteListing writes the disassembly in the layout of the output file: a
// .text heading followed by the disassembly and, if requested and available,
// a .symtab heading followed by the symbol table.
func (dsm *Disassembly) WriteListing(output io.Writer, attr WriteAttr) {
	io.WriteString(output, ".text\n")
	dsm.Write(output, attr)
	io.WriteString(output, "\n")

	if attr.Symtab && dsm.Executable != nil {
		io.WriteString(output, ".symtab\n")
		dsm.Executable.WriteSymtab(output)
	}
}
