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

// Package riscv decodes single RV32 machine instructions into an Instruction,
// a mnemonic and a list of rendered operands.
//
// Two decoders are provided. DecodeStandard() handles 32 bit encodings from
// the RV32I and RV32M standards, along with the Zicsr and Zifencei
// instructions. DecodeCompressed() handles the 16 bit encodings of the RV32C
// standard. Which decoder to use is decided by the lowest two bits of the
// instruction:
//
//	if riscv.IsStandard(b[0]) {
//		ins = riscv.DecodeStandard(word, address, resolver)
//	} else {
//		ins = riscv.DecodeCompressed(half, address, resolver)
//	}
//
// Both decoders are data-driven. The instruction definitions are listed as
// match specifications in the format used by the riscv-opcodes project. For
// example:
//
//	6..2=0x18 14..12=0
//
// says that bits 2 to 6 must equal 0x18 and bits 12 to 14 must equal 0. The
// specifications are parsed once, when the package is initialised, and the
// first definition that matches an instruction word is the one that is used.
//
// An encoding that matches no definition is decoded as Unrecognised. An
// all-zero compressed instruction is always decoded as Illegal.
//
// Control transfer targets (branches and jumps) are passed to the Resolver
// which returns the string to use for the operand. A Resolver will normally
// remember the addresses it has been asked to resolve so that a later pass can
// label the instructions at those addresses. See the symbols package.
package riscv
