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

// Package disassembly produces the annotated disassembly of a RISC-V program.
// It is built either from an ELF file with FromELF() or from a slice of code
// with FromBytes().
//
// Disassembly happens in two passes. The decode pass decodes every instruction
// in order, starting at the origin address. Each instruction is labelled with
// the symbol at its own address, if there is one. The targets of branches and
// jumps are resolved during this pass and are remembered as references.
//
// The label pass gives a generated location label to every unlabelled
// instruction whose address was referenced during the decode pass. This means
// that forward references are labelled correctly.
//
// Once created, the disassembly can be written to an io.Writer with Write() or
// WriteListing(), or searched with Grep().
package disassembly
