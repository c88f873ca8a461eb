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

package riscv_test

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/vitos23/riscv-disasm/riscv"
	"github.com/vitos23/riscv-disasm/test"
)

// encoders for the six base instruction formats. register numbers and
// immediates are masked to the width of their fields.

func encodeR(opcode, func3, func7, rd, rs1, rs2 uint32) uint32 {
	return func7<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 | func3<<12 | (rd&0x1f)<<7 | opcode
}

func encodeI(opcode, func3, rd, rs1 uint32, imm int32) uint32 {
	return (uint32(imm)&0xfff)<<20 | (rs1&0x1f)<<15 | func3<<12 | (rd&0x1f)<<7 | opcode
}

func encodeS(func3, rs1, rs2 uint32, imm int32) uint32 {
	v := uint32(imm) & 0xfff
	return (v>>5)<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 | func3<<12 | (v&0x1f)<<7 | 0x23
}

func encodeB(func3, rs1, rs2 uint32, imm int32) uint32 {
	v := uint32(imm) & 0x1fff
	return (v>>12&1)<<31 | (v>>5&0x3f)<<25 | (rs2&0x1f)<<20 | (rs1&0x1f)<<15 |
		func3<<12 | (v>>1&0xf)<<8 | (v>>11&1)<<7 | 0x63
}

func encodeU(opcode, rd uint32, imm int32) uint32 {
	return uint32(imm)&0xfffff000 | (rd&0x1f)<<7 | opcode
}

func encodeJ(rd uint32, imm int32) uint32 {
	v := uint32(imm) & 0x1fffff
	return (v>>20&1)<<31 | (v>>1&0x3ff)<<21 | (v>>11&1)<<20 | (v>>12&0xff)<<12 | (rd&0x1f)<<7 | 0x6f
}

func TestEncoder(t *testing.T) {
	// the encoder agrees with the opcodes in the golden decodings
	test.ExpectEquality(t, encodeB(0, 10, 11, 8), uint32(0x00b50463))
	test.ExpectEquality(t, encodeB(1, 5, 0, -4), uint32(0xfe029ee3))
	test.ExpectEquality(t, encodeB(4, 1, 2, -4096), uint32(0x8020c063))
	test.ExpectEquality(t, encodeB(5, 8, 9, 0xffe), uint32(0x7e945fe3))
	test.ExpectEquality(t, encodeJ(1, 0x800), uint32(0x001000ef))
	test.ExpectEquality(t, encodeJ(0, -2), uint32(0xfffff06f))
	test.ExpectEquality(t, encodeJ(0, -(1<<20)), uint32(0x8000006f))
	test.ExpectEquality(t, encodeU(0x37, 5, 0x12345000), uint32(0x123452b7))
	test.ExpectEquality(t, encodeU(0x17, 3, -0x80000000), uint32(0x80000197))
	test.ExpectEquality(t, encodeI(0x13, 0, 2, 2, -16), uint32(0xff010113))
	test.ExpectEquality(t, encodeI(0x67, 0, 0, 1, -12), uint32(0xff408067))
	test.ExpectEquality(t, encodeI(0x03, 0, 10, 2, -4), uint32(0xffc10503))
	test.ExpectEquality(t, encodeI(0x13, 5, 5, 6, 0x407), uint32(0x40735293))
	test.ExpectEquality(t, encodeS(0, 2, 10, -1), uint32(0xfea10fa3))
	test.ExpectEquality(t, encodeS(2, 2, 1, 12), uint32(0x00112623))
	test.ExpectEquality(t, encodeR(0x33, 0, 0x00, 10, 11, 12), uint32(0x00c58533))
	test.ExpectEquality(t, encodeR(0x33, 5, 0x20, 10, 11, 12), uint32(0x40c5d533))
	test.ExpectEquality(t, encodeR(0x33, 7, 0x01, 28, 29, 30), uint32(0x03eefe33))
}

// expectDecoding decodes the word without a resolver and compares the
// mnemonic and operands.
func expectDecoding(t *testing.T, word uint32, mnemonic string, operands ...string) bool {
	t.Helper()
	ins := riscv.DecodeStandard(word, origin, nil)
	ok := test.ExpectEquality(t, ins.Mnemonic, mnemonic, fmt.Sprintf("%08x", word))
	ok = test.ExpectEquality(t, strings.Join(ins.Operands, ", "), strings.Join(operands, ", "), fmt.Sprintf("%08x", word)) && ok
	return ok
}

func targetHex(offset int32) string {
	return fmt.Sprintf("%#x", uint64(origin)+uint64(int64(offset)))
}

func TestEncodedDecodings(t *testing.T) {
	rnd := rand.New(rand.NewSource(0x2b5))
	reg := func() uint32 { return uint32(rnd.Intn(32)) }
	name := func(r uint32) string { return riscv.RegisterName(r) }

	branches := []string{"beq", "bne", "", "", "blt", "bge", "bltu", "bgeu"}
	loads := []string{"lb", "lh", "lw", "", "lbu", "lhu"}
	stores := []string{"sb", "sh", "sw"}
	alu := []string{"addi", "", "slti", "sltiu", "xori", "", "ori", "andi"}
	regs := []string{"add", "sll", "slt", "sltu", "xor", "srl", "or", "and"}
	muls := []string{"mul", "mulh", "mulhsu", "mulhu", "div", "divu", "rem", "remu"}

	for i := 0; i < 200; i++ {
		rd, rs1, rs2 := reg(), reg(), reg()
		imm12 := int32(rnd.Intn(4096)) - 2048

		for f3, m := range branches {
			if m == "" {
				continue
			}
			off := (int32(rnd.Intn(4096)) - 2048) * 2
			if !expectDecoding(t, encodeB(uint32(f3), rs1, rs2, off), m, name(rs1), name(rs2), targetHex(off)) {
				return
			}
		}

		off := (int32(rnd.Intn(1<<20)) - 1<<19) * 2
		if !expectDecoding(t, encodeJ(rd, off), "jal", name(rd), targetHex(off)) {
			return
		}

		if !expectDecoding(t, encodeI(0x67, 0, rd, rs1, imm12), "jalr", name(rd), name(rs1), strconv.Itoa(int(imm12))) {
			return
		}

		upper := int32(rnd.Uint32() & 0xfffff000)
		if !expectDecoding(t, encodeU(0x37, rd, upper), "lui", name(rd), strconv.Itoa(int(upper))) {
			return
		}
		if !expectDecoding(t, encodeU(0x17, rd, upper), "auipc", name(rd), strconv.Itoa(int(upper))) {
			return
		}

		for f3, m := range loads {
			if m == "" {
				continue
			}
			mem := fmt.Sprintf("%d(%s)", imm12, name(rs1))
			if !expectDecoding(t, encodeI(0x03, uint32(f3), rd, rs1, imm12), m, name(rd), mem) {
				return
			}
		}

		for f3, m := range stores {
			mem := fmt.Sprintf("%d(%s)", imm12, name(rs1))
			if !expectDecoding(t, encodeS(uint32(f3), rs1, rs2, imm12), m, name(rs2), mem) {
				return
			}
		}

		for f3, m := range alu {
			if m == "" {
				continue
			}
			if !expectDecoding(t, encodeI(0x13, uint32(f3), rd, rs1, imm12), m, name(rd), name(rs1), strconv.Itoa(int(imm12))) {
				return
			}
		}

		shamt := rnd.Intn(32)
		if !expectDecoding(t, encodeI(0x13, 1, rd, rs1, int32(shamt)), "slli", name(rd), name(rs1), strconv.Itoa(shamt)) {
			return
		}
		if !expectDecoding(t, encodeI(0x13, 5, rd, rs1, int32(shamt)), "srli", name(rd), name(rs1), strconv.Itoa(shamt)) {
			return
		}
		if !expectDecoding(t, encodeI(0x13, 5, rd, rs1, int32(0x400|shamt)), "srai", name(rd), name(rs1), strconv.Itoa(shamt)) {
			return
		}

		for f3, m := range regs {
			if !expectDecoding(t, encodeR(0x33, uint32(f3), 0x00, rd, rs1, rs2), m, name(rd), name(rs1), name(rs2)) {
				return
			}
		}
		if !expectDecoding(t, encodeR(0x33, 0, 0x20, rd, rs1, rs2), "sub", name(rd), name(rs1), name(rs2)) {
			return
		}
		if !expectDecoding(t, encodeR(0x33, 5, 0x20, rd, rs1, rs2), "sra", name(rd), name(rs1), name(rs2)) {
			return
		}
		for f3, m := range muls {
			if !expectDecoding(t, encodeR(0x33, uint32(f3), 0x01, rd, rs1, rs2), m, name(rd), name(rs1), name(rs2)) {
				return
			}
		}
	}
}
