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
	"fmt"
	"io"
	"strconv"

	"github.com/vitos23/riscv-disasm/symbols"
)

// Symbol is a single entry in the symbol table.
type Symbol struct {
	// position in the symbol table
	Index int

	Name  string
	Value uint64
	Size  uint64

	// type in the low nibble and binding in the high nibble
	Info uint8

	// visibility
	Other uint8

	// the section the symbol is defined in. some values are reserved
	Section uint16
}

// symbol types as found in the low nibble of Info.
const (
	sttFunc = 2
)

// Type returns the symbol type.
func (sym Symbol) Type() string {
	t := sym.Info & 0x0f
	switch t {
	case 0:
		return "NOTYPE"
	case 1:
		return "OBJECT"
	case sttFunc:
		return "FUNC"
	case 3:
		return "SECTION"
	case 4:
		return "FILE"
	case 5:
		return "COMMON"
	case 6:
		return "TLS"
	}
	if t >= 10 {
		return "RESERVED"
	}
	return ""
}

// Bind returns the symbol binding.
func (sym Symbol) Bind() string {
	b := sym.Info >> 4
	switch b {
	case 0:
		return "LOCAL"
	case 1:
		return "GLOBAL"
	case 2:
		return "WEAK"
	}
	if b >= 10 {
		return "RESERVED"
	}
	return ""
}

// Visibility returns the symbol visibility.
func (sym Symbol) Visibility() string {
	switch sym.Other {
	case 0:
		return "DEFAULT"
	case 1:
		return "INTERNAL"
	case 2:
		return "HIDDEN"
	case 3:
		return "PROTECTED"
	}
	return ""
}

// SectionIndex returns the section index or the name of the reserved index.
func (sym Symbol) SectionIndex() string {
	switch sym.Section {
	case 0x0000:
		return "UNDEF"
	case 0xfff1:
		return "ABS"
	case 0xfff2:
		return "COMMON"
	case 0xffff:
		return "XINDEX"
	}
	if sym.Section >= 0xff00 {
		return "RESERVED"
	}
	return strconv.Itoa(int(sym.Section))
}

// IsFunction returns true if the symbol names a function at a non-zero
// address.
func (sym Symbol) IsFunction() bool {
	return sym.Info&0x0f == sttFunc && sym.Value != 0 && sym.Name != ""
}

func (sym Symbol) String() string {
	return fmt.Sprintf("[%4d] 0x%-15x %5d %-8s %-8s %-8s %6s %s",
		sym.Index, sym.Value, sym.Size, sym.Type(), sym.Bind(), sym.Visibility(), sym.SectionIndex(), sym.Name)
}

// SymtabHeader is the column header of the symbol table listing.
var SymtabHeader = fmt.Sprintf("%s %-15s %7s %-8s %-8s %-8s %6s %s",
	"Symbol", "Value", "Size", "Type", "Bind", "Vis", "Index", "Name")

// FunctionSymbols returns a symbols.Table of the function symbols. If more
// than one symbol has the same address then the last one in the symbol table
// is used.
func (ex *Executable) FunctionSymbols() *symbols.Table {
	tbl := symbols.NewTable()
	for _, sym := range ex.Symbols {
		if sym.IsFunction() {
			tbl.Add(sym.Value, sym.Name)
		}
	}
	return tbl
}

// WriteSymtab writes the symbol table listing to io.Writer. The header is
// followed by one line for every entry.
func (ex *Executable) WriteSymtab(output io.Writer) {
	io.WriteString(output, SymtabHeader)
	io.WriteString(output, "\n")
	for _, sym := range ex.Symbols {
		io.WriteString(output, sym.String())
		io.WriteString(output, "\n")
	}
}
