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

// signed applies the sign bit of an instruction to an immediate value that has
// been assembled without it. width is the bit position of the sign in the
// assembled immediate.
func signed(imm uint32, sign uint32, width int) int32 {
	v := int32(imm)
	if sign == 1 {
		v -= 1 << width
	}
	return v
}

// ImmB returns the branch offset of a B-type instruction.
func ImmB(word uint32) int32 {
	imm := ExtractBits(word, 7, 7)<<11 |
		ExtractBits(word, 25, 30)<<5 |
		ExtractBits(word, 8, 11)<<1
	return signed(imm, bit(word, 31), 12)
}

// ImmI returns the immediate of an I-type instruction.
func ImmI(word uint32) int32 {
	return signed(ExtractBits(word, 20, 30), bit(word, 31), 11)
}

// ImmS returns the immediate of an S-type instruction.
func ImmS(word uint32) int32 {
	imm := ExtractBits(word, 25, 30)<<5 |
		ExtractBits(word, 7, 11)
	return signed(imm, bit(word, 31), 11)
}

// ImmJ returns the jump offset of a J-type instruction.
func ImmJ(word uint32) int32 {
	imm := ExtractBits(word, 21, 30)<<1 |
		ExtractBits(word, 20, 20)<<11 |
		ExtractBits(word, 12, 19)<<12
	return signed(imm, bit(word, 31), 20)
}

// ImmU returns the upper immediate of a U-type instruction. The value is
// already shifted into position and wraps naturally in 32 bits.
func ImmU(word uint32) int32 {
	return int32(ExtractBits(word, 12, 31) << 12)
}

// Nzimm6 returns the six bit signed immediate used by many of the CI-format
// compressed instructions.
func Nzimm6(half uint16) int32 {
	w := uint32(half)
	return signed(ExtractBits(w, 2, 6), bit(w, 12), 5)
}

// Imm11 returns the jump offset of the CJ-format instructions.
func Imm11(half uint16) int32 {
	w := uint32(half)
	imm := ExtractBits(w, 8, 8)<<10 |
		ExtractBits(w, 9, 10)<<8 |
		ExtractBits(w, 6, 6)<<7 |
		ExtractBits(w, 7, 7)<<6 |
		ExtractBits(w, 2, 2)<<5 |
		ExtractBits(w, 11, 11)<<4 |
		ExtractBits(w, 3, 5)<<1
	return signed(imm, bit(w, 12), 11)
}

// Imm8 returns the branch offset of the CB-format branch instructions.
func Imm8(half uint16) int32 {
	w := uint32(half)
	imm := ExtractBits(w, 5, 6)<<6 |
		ExtractBits(w, 2, 2)<<5 |
		ExtractBits(w, 10, 11)<<3 |
		ExtractBits(w, 3, 4)<<1
	return signed(imm, bit(w, 12), 8)
}

// Addi16spImm returns the stack pointer adjustment of c.addi16sp.
func Addi16spImm(half uint16) int32 {
	w := uint32(half)
	imm := ExtractBits(w, 3, 4)<<7 |
		ExtractBits(w, 5, 5)<<6 |
		ExtractBits(w, 2, 2)<<5 |
		ExtractBits(w, 6, 6)<<4
	return signed(imm, bit(w, 12), 9)
}

// Addi4spnImm returns the unsigned stack offset of c.addi4spn.
func Addi4spnImm(half uint16) int32 {
	w := uint32(half)
	return int32(ExtractBits(w, 7, 10)<<6 |
		ExtractBits(w, 11, 12)<<4 |
		ExtractBits(w, 5, 5)<<3 |
		ExtractBits(w, 6, 6)<<2)
}

// LwSwImm returns the unsigned offset of c.lw and c.sw.
func LwSwImm(half uint16) int32 {
	w := uint32(half)
	return int32(ExtractBits(w, 5, 5)<<6 |
		ExtractBits(w, 10, 12)<<3 |
		ExtractBits(w, 6, 6)<<2)
}

// LwspImm returns the unsigned stack offset of c.lwsp.
func LwspImm(half uint16) int32 {
	w := uint32(half)
	return int32(ExtractBits(w, 2, 3)<<6 |
		ExtractBits(w, 12, 12)<<5 |
		ExtractBits(w, 4, 6)<<2)
}

// SwspImm returns the unsigned stack offset of c.swsp.
func SwspImm(half uint16) int32 {
	w := uint32(half)
	return int32(ExtractBits(w, 7, 8)<<6 |
		ExtractBits(w, 9, 12)<<2)
}
