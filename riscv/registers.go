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

// ABI names of the 32 integer registers, indexed by register number.
var registerNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// the three bit register fields of the compressed instructions address
// registers x8 to x15 only.
var compressedRegisterNames = [8]string{
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
}

// RegisterName returns the ABI name of the register selected by a five bit
// register field. Only the low five bits of n are considered.
func RegisterName(n uint32) string {
	return registerNames[n&0x1f]
}

// CompressedRegisterName returns the ABI name of the register selected by a
// three bit compressed register field. Only the low three bits of n are
// considered.
func CompressedRegisterName(n uint32) string {
	return compressedRegisterNames[n&0x07]
}

// the stack pointer is named explicitly by some operand formats.
const stackPointer = "sp"
