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

// Package elf reads the parts of a RISC-V ELF32 executable that are needed
// for disassembly: the contents and load address of the .text section and the
// entries of the .symtab section.
//
// The executable is checked before anything is read from it. It must be a
// little-endian ELF32 file for the RISC-V machine type, with .text, .symtab
// and .strtab sections. Errors are curated errors with one of the sentinel
// patterns defined in this package. For example:
//
//	ex, err := elf.Open(filename)
//	if curated.Is(err, elf.NotRISCV) {
//		...
//	}
//
// Symbols are kept in the order they appear in the symbol table, including
// the null entry at index zero. FunctionSymbols() builds a symbols.Table from
// the function symbols.
package elf
