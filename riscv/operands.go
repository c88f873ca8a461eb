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
	"strconv"
	"strings"
)

// Format describes how the operands of an instruction are arranged and
// rendered.
type Format int

// List of operand formats. The comment for each format shows the operands
// that are produced.
const (
	FormatNone Format = iota

	// 32 bit formats
	FormatB     // rs1, rs2, target
	FormatI     // rd, rs1, imm
	FormatJ     // rd, target
	FormatU     // rd, imm
	FormatShift // rd, rs1, shamt
	FormatR     // rd, rs1, rs2
	FormatLoad  // rd, imm(rs1)
	FormatStore // rs2, imm(rs1)
	FormatFence // pred, succ
	FormatCSR   // rd, csr, rs1

	// 16 bit formats. a primed register is from the compressed register set
	FormatCIW       // rd', sp, uimm
	FormatCL        // rd', uimm(rs1')
	FormatCI        // rd, nzimm
	FormatCJ        // target
	FormatCAddi16sp // sp, sp, imm
	FormatCLui      // rd, nzimm << 12
	FormatCBImm     // rd', nzimm
	FormatCA        // rd', rs2'
	FormatCB        // rs1', target
	FormatCLwsp     // rd, uimm(sp)
	FormatCSS       // rs2, uimm(sp)
	FormatCR        // rd, rs2
	FormatCJR       // rs1
)

// target adds a signed offset to an address. the arithmetic is not masked to
// 32 bits.
func target(address uint64, offset int32) uint64 {
	return address + uint64(int64(offset))
}

// resolve passes a control transfer target to the resolver. if there is no
// resolver the target address is rendered in hex.
func resolve(res Resolver, address uint64) string {
	if res == nil {
		return fmt.Sprintf("%#x", address)
	}
	return res.Resolve(address)
}

// memory operand in the form imm(reg).
func memory(offset int32, reg string) string {
	return fmt.Sprintf("%d(%s)", offset, reg)
}

func decimal(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// fenceSet renders the four bit predecessor or successor set of a fence
// instruction.
func fenceSet(v uint32) string {
	s := strings.Builder{}
	if v&0x08 == 0x08 {
		s.WriteString("i")
	}
	if v&0x04 == 0x04 {
		s.WriteString("o")
	}
	if v&0x02 == 0x02 {
		s.WriteString("r")
	}
	if v&0x01 == 0x01 {
		s.WriteString("w")
	}
	return s.String()
}

// operands renders the operands of the instruction word according to the
// format. for 16 bit formats only the low half of word is used.
func (f Format) operands(word uint32, address uint64, res Resolver) []string {
	rd := RegisterName(ExtractBits(word, 7, 11))
	half := uint16(word)

	switch f {
	case FormatB:
		return []string{
			RegisterName(ExtractBits(word, 15, 19)),
			RegisterName(ExtractBits(word, 20, 24)),
			resolve(res, target(address, ImmB(word))),
		}
	case FormatI:
		return []string{
			rd,
			RegisterName(ExtractBits(word, 15, 19)),
			decimal(ImmI(word)),
		}
	case FormatJ:
		return []string{
			rd,
			resolve(res, target(address, ImmJ(word))),
		}
	case FormatU:
		return []string{
			rd,
			decimal(ImmU(word)),
		}
	case FormatShift:
		return []string{
			rd,
			RegisterName(ExtractBits(word, 15, 19)),
			decimal(int32(ExtractBits(word, 20, 24))),
		}
	case FormatR:
		return []string{
			rd,
			RegisterName(ExtractBits(word, 15, 19)),
			RegisterName(ExtractBits(word, 20, 24)),
		}
	case FormatLoad:
		return []string{
			rd,
			memory(ImmI(word), RegisterName(ExtractBits(word, 15, 19))),
		}
	case FormatStore:
		return []string{
			RegisterName(ExtractBits(word, 20, 24)),
			memory(ImmS(word), RegisterName(ExtractBits(word, 15, 19))),
		}
	case FormatFence:
		return []string{
			fenceSet(ExtractBits(word, 24, 27)),
			fenceSet(ExtractBits(word, 20, 23)),
		}
	case FormatCSR:
		// the immediate forms (csrrwi etc.) also render the uimm field as a
		// register name
		return []string{
			rd,
			strconv.FormatUint(uint64(ExtractBits(word, 20, 31)), 10),
			RegisterName(ExtractBits(word, 15, 19)),
		}

	case FormatCIW:
		return []string{
			CompressedRegisterName(ExtractBits(word, 2, 4)),
			stackPointer,
			decimal(Addi4spnImm(half)),
		}
	case FormatCL:
		return []string{
			CompressedRegisterName(ExtractBits(word, 2, 4)),
			memory(LwSwImm(half), CompressedRegisterName(ExtractBits(word, 7, 9))),
		}
	case FormatCI:
		return []string{
			rd,
			decimal(Nzimm6(half)),
		}
	case FormatCJ:
		return []string{
			resolve(res, target(address, Imm11(half))),
		}
	case FormatCAddi16sp:
		return []string{
			stackPointer,
			stackPointer,
			decimal(Addi16spImm(half)),
		}
	case FormatCLui:
		return []string{
			rd,
			decimal(Nzimm6(half) << 12),
		}
	case FormatCBImm:
		return []string{
			CompressedRegisterName(ExtractBits(word, 7, 9)),
			decimal(Nzimm6(half)),
		}
	case FormatCA:
		return []string{
			CompressedRegisterName(ExtractBits(word, 7, 9)),
			CompressedRegisterName(ExtractBits(word, 2, 4)),
		}
	case FormatCB:
		return []string{
			CompressedRegisterName(ExtractBits(word, 7, 9)),
			resolve(res, target(address, Imm8(half))),
		}
	case FormatCLwsp:
		return []string{
			rd,
			memory(LwspImm(half), stackPointer),
		}
	case FormatCSS:
		return []string{
			RegisterName(ExtractBits(word, 2, 6)),
			memory(SwspImm(half), stackPointer),
		}
	case FormatCR:
		return []string{
			rd,
			RegisterName(ExtractBits(word, 2, 6)),
		}
	case FormatCJR:
		return []string{
			rd,
		}
	}

	return []string{}
}
