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

package riscv

import (
	"fmt"
	"strings"
)

// Mnemonics used for instructions that cannot be decoded.
const (
	// an encoding that matches no definition
	Unrecognised = "unknown_command"

	// the all-zero 16 bit instruction
	Illegal = "illegal"
)

// Instruction is a single decoded instruction.
type Instruction struct {
	Address uint64

	// Label is the symbol or generated location name for the instruction's
	// address. empty if the address is not labelled. the label is the only
	// field that should be changed after decoding
	Label string

	Mnemonic string
	Operands []string

	// the raw instruction and the number of bytes it occupies (2 or 4). the
	// upper 16 bits of Opcode are zero for a compressed instruction
	Opcode uint32
	Size   int

	// the definition used to decode the instruction. nil if the instruction is
	// Unrecognised or Illegal
	Defn *Definition
}

// Standard returns the standard the instruction belongs to.
func (ins *Instruction) Standard() Standard {
	if ins.Defn == nil {
		return NoStandard
	}
	return ins.Defn.Standard
}

// IsCompressed returns true if the instruction is a 16 bit instruction.
func (ins *Instruction) IsCompressed() bool {
	return ins.Size == 2
}

// Bytecode returns the raw instruction as a hex string of the correct width.
func (ins *Instruction) Bytecode() string {
	if ins.IsCompressed() {
		return fmt.Sprintf("%04x    ", ins.Opcode)
	}
	return fmt.Sprintf("%08x", ins.Opcode)
}

// Header returns the address, label and mnemonic columns of the instruction.
// Note that the result ends with a space even if there are no operands.
func (ins *Instruction) Header() string {
	if ins.Label == "" {
		return fmt.Sprintf("%08x %21s %s ", ins.Address, "", ins.Mnemonic)
	}
	return fmt.Sprintf("%08x %20s: %s ", ins.Address, ins.Label, ins.Mnemonic)
}

// String returns the instruction as a single line of disassembly.
func (ins *Instruction) String() string {
	return ins.Header() + strings.Join(ins.Operands, ", ")
}
