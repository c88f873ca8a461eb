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
	"strings"
	"testing"

	"github.com/vitos23/riscv-disasm/riscv"
	"github.com/vitos23/riscv-disasm/test"
)

func TestInstructionString(t *testing.T) {
	ins := riscv.DecodeStandard(0xff010113, 0x10074, nil)
	test.ExpectEquality(t, ins.String(), "00010074 "+strings.Repeat(" ", 21)+" addi sp, sp, -16")

	ins.Label = "main"
	test.ExpectEquality(t, ins.String(), "00010074 "+strings.Repeat(" ", 16)+"main: addi sp, sp, -16")

	// labels wider than the column are not truncated
	ins.Label = "a_very_long_function_name"
	test.ExpectEquality(t, ins.String(), "00010074 a_very_long_function_name: addi sp, sp, -16")

	// the header ends with a space even when there are no operands
	ins = riscv.DecodeStandard(0x00000073, 0x10000, nil)
	test.ExpectEquality(t, ins.String(), "00010000 "+strings.Repeat(" ", 21)+" ecall ")

	ins = riscv.DecodeStandard(0xffffffff, 0x10000, nil)
	test.ExpectEquality(t, ins.String(), "00010000 "+strings.Repeat(" ", 21)+" unknown_command ")

	ins = riscv.DecodeCompressed(0x0000, 0x10002, nil)
	test.ExpectEquality(t, ins.String(), "00010002 "+strings.Repeat(" ", 21)+" illegal ")
}

func TestBytecode(t *testing.T) {
	ins := riscv.DecodeStandard(0xff010113, 0x10074, nil)
	test.ExpectEquality(t, ins.Bytecode(), "ff010113")

	ins = riscv.DecodeCompressed(0x8082, 0x10078, nil)
	test.ExpectEquality(t, ins.Bytecode(), "8082    ")
	test.ExpectEquality(t, len(ins.Bytecode()), 8)
}

func TestDefinitionString(t *testing.T) {
	ins := riscv.DecodeStandard(0x00b50463, 0x10000, nil)
	test.ExpectEquality(t, ins.Defn.String(), "beq [RV32I] (6..2=0x18 14..12=0) mask=0000707c match=00000060")

	var defn riscv.Definition
	test.ExpectEquality(t, defn.String(), "undecoded instruction")
}
