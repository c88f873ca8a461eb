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

import "fmt"

// definitions of the 32 bit instructions. all entries must constrain the major
// opcode field (bits 2 to 6) because the table is indexed by that field.
var standardDefinitions = []Definition{
	// conditional branches
	newDefinition("beq", RV32I, Branch, FormatB, "6..2=0x18 14..12=0"),
	newDefinition("bne", RV32I, Branch, FormatB, "6..2=0x18 14..12=1"),
	newDefinition("blt", RV32I, Branch, FormatB, "6..2=0x18 14..12=4"),
	newDefinition("bge", RV32I, Branch, FormatB, "6..2=0x18 14..12=5"),
	newDefinition("bltu", RV32I, Branch, FormatB, "6..2=0x18 14..12=6"),
	newDefinition("bgeu", RV32I, Branch, FormatB, "6..2=0x18 14..12=7"),

	// jumps
	newDefinition("jalr", RV32I, IndirectJump, FormatI, "6..2=0x19 14..12=0"),
	newDefinition("jal", RV32I, Jump, FormatJ, "6..2=0x1b"),

	// upper immediates
	newDefinition("lui", RV32I, Arithmetic, FormatU, "6..2=0x0d"),
	newDefinition("auipc", RV32I, Arithmetic, FormatU, "6..2=0x05"),

	// register-immediate
	newDefinition("addi", RV32I, Arithmetic, FormatI, "6..2=0x04 14..12=0"),
	newDefinition("slti", RV32I, Arithmetic, FormatI, "6..2=0x04 14..12=2"),
	newDefinition("sltiu", RV32I, Arithmetic, FormatI, "6..2=0x04 14..12=3"),
	newDefinition("xori", RV32I, Arithmetic, FormatI, "6..2=0x04 14..12=4"),
	newDefinition("ori", RV32I, Arithmetic, FormatI, "6..2=0x04 14..12=6"),
	newDefinition("andi", RV32I, Arithmetic, FormatI, "6..2=0x04 14..12=7"),
	newDefinition("slli", RV32I, Arithmetic, FormatShift, "6..2=0x04 14..12=1"),
	newDefinition("srli", RV32I, Arithmetic, FormatShift, "6..2=0x04 14..12=5 30=0"),
	newDefinition("srai", RV32I, Arithmetic, FormatShift, "6..2=0x04 14..12=5 30=1"),

	// register-register
	newDefinition("add", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=0 31..25=0"),
	newDefinition("sub", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=0 31..25=32"),
	newDefinition("sll", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=1 31..25=0"),
	newDefinition("slt", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=2 31..25=0"),
	newDefinition("sltu", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=3 31..25=0"),
	newDefinition("xor", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=4 31..25=0"),
	newDefinition("srl", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=5 31..25=0"),
	newDefinition("sra", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=5 31..25=32"),
	newDefinition("or", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=6 31..25=0"),
	newDefinition("and", RV32I, Arithmetic, FormatR, "6..2=0x0c 14..12=7 31..25=0"),

	// multiply and divide
	newDefinition("mul", RV32M, Arithmetic, FormatR, "6..2=0x0c 14..12=0 31..25=1"),
	newDefinition("mulh", RV32M, Arithmetic, FormatR, "6..2=0x0c 14..12=1 31..25=1"),
	newDefinition("mulhsu", RV32M, Arithmetic, FormatR, "6..2=0x0c 14..12=2 31..25=1"),
	newDefinition("mulhu", RV32M, Arithmetic, FormatR, "6..2=0x0c 14..12=3 31..25=1"),
	newDefinition("div", RV32M, Arithmetic, FormatR, "6..2=0x0c 14..12=4 31..25=1"),
	newDefinition("divu", RV32M, Arithmetic, FormatR, "6..2=0x0c 14..12=5 31..25=1"),
	newDefinition("rem", RV32M, Arithmetic, FormatR, "6..2=0x0c 14..12=6 31..25=1"),
	newDefinition("remu", RV32M, Arithmetic, FormatR, "6..2=0x0c 14..12=7 31..25=1"),

	// loads and stores
	newDefinition("lb", RV32I, Load, FormatLoad, "6..2=0x00 14..12=0"),
	newDefinition("lh", RV32I, Load, FormatLoad, "6..2=0x00 14..12=1"),
	newDefinition("lw", RV32I, Load, FormatLoad, "6..2=0x00 14..12=2"),
	newDefinition("lbu", RV32I, Load, FormatLoad, "6..2=0x00 14..12=4"),
	newDefinition("lhu", RV32I, Load, FormatLoad, "6..2=0x00 14..12=5"),
	newDefinition("sb", RV32I, Store, FormatStore, "6..2=0x08 14..12=0"),
	newDefinition("sh", RV32I, Store, FormatStore, "6..2=0x08 14..12=1"),
	newDefinition("sw", RV32I, Store, FormatStore, "6..2=0x08 14..12=2"),

	// memory ordering
	newDefinition("fence", RV32I, Fence, FormatFence, "6..2=0x03 14..12=0"),
	newDefinition("fence.i", Zifencei, Fence, FormatNone, "6..2=0x03 14..12=1"),

	// system
	newDefinition("ecall", RV32I, System, FormatNone, "6..2=0x1c 14..12=0 31..20=0"),
	newDefinition("ebreak", RV32I, System, FormatNone, "6..2=0x1c 14..12=0 31..20=1"),
	newDefinition("csrrw", Zicsr, System, FormatCSR, "6..2=0x1c 14..12=1"),
	newDefinition("csrrs", Zicsr, System, FormatCSR, "6..2=0x1c 14..12=2"),
	newDefinition("csrrc", Zicsr, System, FormatCSR, "6..2=0x1c 14..12=3"),
	newDefinition("csrrwi", Zicsr, System, FormatCSR, "6..2=0x1c 14..12=5"),
	newDefinition("csrrsi", Zicsr, System, FormatCSR, "6..2=0x1c 14..12=6"),
	newDefinition("csrrci", Zicsr, System, FormatCSR, "6..2=0x1c 14..12=7"),
}

// definitions of the 16 bit instructions. all entries must constrain the op
// field (bits 0 and 1) and the funct3 field (bits 13 to 15) because the table
// is indexed by those fields.
//
// the order of entries is important. the first matching entry is used so more
// specific entries must appear before the less specific entries with the same
// op and funct3 values.
var compressedDefinitions = []Definition{
	// quadrant 0
	newDefinition("c.addi4spn", RV32C, Arithmetic, FormatCIW, "1..0=0 15..13=0"),
	newDefinition("c.lw", RV32C, Load, FormatCL, "1..0=0 15..13=2"),
	newDefinition("c.sw", RV32C, Store, FormatCL, "1..0=0 15..13=6"),

	// quadrant 1
	newDefinition("c.nop", RV32C, Arithmetic, FormatNone, "1..0=1 15..13=0 12..2=0"),
	newDefinition("c.addi", RV32C, Arithmetic, FormatCI, "1..0=1 15..13=0"),
	newDefinition("c.jal", RV32C, Jump, FormatCJ, "1..0=1 15..13=1"),
	newDefinition("c.li", RV32C, Arithmetic, FormatCI, "1..0=1 15..13=2"),
	newDefinition("c.addi16sp", RV32C, Arithmetic, FormatCAddi16sp, "1..0=1 15..13=3 11..7=2"),
	newDefinition("c.lui", RV32C, Arithmetic, FormatCLui, "1..0=1 15..13=3"),
	newDefinition("c.srli", RV32C, Arithmetic, FormatCBImm, "1..0=1 15..13=4 11..10=0"),
	newDefinition("c.srai", RV32C, Arithmetic, FormatCBImm, "1..0=1 15..13=4 11..10=1"),
	newDefinition("c.andi", RV32C, Arithmetic, FormatCBImm, "1..0=1 15..13=4 11..10=2"),
	newDefinition("c.sub", RV32C, Arithmetic, FormatCA, "1..0=1 15..13=4 11..10=3 6..5=0"),
	newDefinition("c.xor", RV32C, Arithmetic, FormatCA, "1..0=1 15..13=4 11..10=3 6..5=1"),
	newDefinition("c.or", RV32C, Arithmetic, FormatCA, "1..0=1 15..13=4 11..10=3 6..5=2"),
	newDefinition("c.and", RV32C, Arithmetic, FormatCA, "1..0=1 15..13=4 11..10=3 6..5=3"),
	newDefinition("c.j", RV32C, Jump, FormatCJ, "1..0=1 15..13=5"),
	newDefinition("c.beqz", RV32C, Branch, FormatCB, "1..0=1 15..13=6"),
	newDefinition("c.bnez", RV32C, Branch, FormatCB, "1..0=1 15..13=7"),

	// quadrant 2
	newDefinition("c.slli", RV32C, Arithmetic, FormatCI, "1..0=2 15..13=0"),
	newDefinition("c.lwsp", RV32C, Load, FormatCLwsp, "1..0=2 15..13=2"),
	newDefinition("c.jr", RV32C, IndirectJump, FormatCJR, "1..0=2 15..13=4 12=0 6..2=0"),
	newDefinition("c.mv", RV32C, Arithmetic, FormatCR, "1..0=2 15..13=4 12=0"),
	newDefinition("c.ebreak", RV32C, System, FormatNone, "1..0=2 15..13=4 12=1 11..7=0 6..2=0"),
	newDefinition("c.jalr", RV32C, IndirectJump, FormatCJR, "1..0=2 15..13=4 12=1 6..2=0"),
	newDefinition("c.add", RV32C, Arithmetic, FormatCR, "1..0=2 15..13=4 12=1"),
	newDefinition("c.swsp", RV32C, Store, FormatCSS, "1..0=2 15..13=6"),
}

// the definition tables indexed by the fields that every entry constrains.
var standardIndex [32][]*Definition
var compressedIndex [32][]*Definition

// index of the major opcode of a 32 bit instruction.
func standardKey(word uint32) uint32 {
	return ExtractBits(word, 2, 6)
}

// index of the op and funct3 fields of a 16 bit instruction.
func compressedKey(word uint32) uint32 {
	return ExtractBits(word, 13, 15)<<2 | ExtractBits(word, 0, 1)
}

func init() {
	for i := range standardDefinitions {
		defn := &standardDefinitions[i]
		if defn.mask&0x0000007c != 0x0000007c {
			panic(fmt.Sprintf("riscv: %s: major opcode is not constrained", defn.Mnemonic))
		}
		k := standardKey(defn.match)
		standardIndex[k] = append(standardIndex[k], defn)
	}

	for i := range compressedDefinitions {
		defn := &compressedDefinitions[i]
		if defn.mask&0x0000e003 != 0x0000e003 {
			panic(fmt.Sprintf("riscv: %s: op and funct3 are not constrained", defn.Mnemonic))
		}
		k := compressedKey(defn.match)
		compressedIndex[k] = append(compressedIndex[k], defn)
	}
}

// lookupStandard returns the first definition that matches the 32 bit
// instruction word. returns nil if there is no match.
func lookupStandard(word uint32) *Definition {
	for _, defn := range standardIndex[standardKey(word)] {
		if defn.Matches(word) {
			return defn
		}
	}
	return nil
}

// lookupCompressed returns the first definition that matches the 16 bit
// instruction word. returns nil if there is no match.
func lookupCompressed(half uint16) *Definition {
	word := uint32(half)
	for _, defn := range compressedIndex[compressedKey(word)] {
		if defn.Matches(word) {
			return defn
		}
	}
	return nil
}

// Definitions returns a copy of the instruction definitions, the 32 bit
// definitions first.
func Definitions() []Definition {
	d := make([]Definition, 0, len(standardDefinitions)+len(compressedDefinitions))
	d = append(d, standardDefinitions...)
	d = append(d, compressedDefinitions...)
	return d
}
