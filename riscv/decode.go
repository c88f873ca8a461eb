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

import "encoding/binary"

// Resolver implementations return the operand string to use for the target
// address of a branch or jump.
type Resolver interface {
	Resolve(address uint64) string
}

// DecodeStandard decodes a 32 bit instruction at the specified address.
// Instructions that do not match any definition are returned with the
// Unrecognised mnemonic and no operands.
func DecodeStandard(word uint32, address uint64, res Resolver) *Instruction {
	ins := &Instruction{
		Address: address,
		Opcode:  word,
		Size:    4,
	}

	ins.Defn = lookupStandard(word)
	if ins.Defn == nil {
		ins.Mnemonic = Unrecognised
		ins.Operands = []string{}
		return ins
	}

	ins.Mnemonic = ins.Defn.Mnemonic
	ins.Operands = ins.Defn.Format.operands(word, address, res)

	return ins
}

// DecodeCompressed decodes a 16 bit instruction at the specified address.
// The all-zero instruction is returned with the Illegal mnemonic. Other
// instructions that do not match any definition are returned with the
// Unrecognised mnemonic. In both cases there are no operands.
func DecodeCompressed(half uint16, address uint64, res Resolver) *Instruction {
	ins := &Instruction{
		Address: address,
		Opcode:  uint32(half),
		Size:    2,
	}

	if half == 0x0000 {
		ins.Mnemonic = Illegal
		ins.Operands = []string{}
		return ins
	}

	ins.Defn = lookupCompressed(half)
	if ins.Defn == nil {
		ins.Mnemonic = Unrecognised
		ins.Operands = []string{}
		return ins
	}

	ins.Mnemonic = ins.Defn.Mnemonic
	ins.Operands = ins.Defn.Format.operands(uint32(half), address, res)

	return ins
}

// Decode decodes the instruction at the start of the byte slice, which is
// read as little-endian. The returned size is the number of bytes the
// instruction occupies, even when b is too short to contain all of it. In
// that case the instruction is nil.
func Decode(b []byte, address uint64, res Resolver) (*Instruction, int) {
	if len(b) == 0 {
		return nil, 0
	}

	sz := InstructionSize(b[0])
	if len(b) < sz {
		return nil, sz
	}

	if sz == 4 {
		return DecodeStandard(binary.LittleEndian.Uint32(b), address, res), sz
	}

	return DecodeCompressed(binary.LittleEndian.Uint16(b), address, res), sz
}
