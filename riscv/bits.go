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

// ExtractBits returns bits lo to hi (inclusive) of word, shifted so that bit lo
// becomes bit 0. Arguments must satisfy 0 <= lo <= hi <= 31.
func ExtractBits(word uint32, lo, hi int) uint32 {
	// mask is calculated in 64 bits so that a field of width 32 does not
	// overflow the shift
	mask := uint64(1)<<(hi-lo+1) - 1
	return uint32((uint64(word) >> lo) & mask)
}

// bit returns the single bit n of word.
func bit(word uint32, n int) uint32 {
	return (word >> n) & 0x01
}

// IsStandard returns true if the low byte of an instruction indicates a 32 bit
// encoding. Any other value indicates a 16 bit compressed encoding.
func IsStandard(lo uint8) bool {
	return lo&0x03 == 0x03
}

// InstructionSize returns the number of bytes in the instruction that begins
// with the supplied low byte.
func InstructionSize(lo uint8) int {
	if IsStandard(lo) {
		return 4
	}
	return 2
}
