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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/vitos23/riscv-disasm/curated"
	"github.com/vitos23/riscv-disasm/elf"
	"github.com/vitos23/riscv-disasm/logger"
	"github.com/vitos23/riscv-disasm/riscv"
	"github.com/vitos23/riscv-disasm/symbols"
)

// Sentinel error patterns.
const (
	TruncatedInstruction = "disassembly: truncated instruction at %08x (%d of %d bytes)"
)

// Disassembly represents the annotated disassembly of a RISC-V program.
type Disassembly struct {
	// symbols used to label instructions and branch targets. may be nil
	Symbols *symbols.Table

	// the executable the disassembly was taken from. nil if the disassembly
	// was created with FromBytes()
	Executable *elf.Executable

	// decoded instructions in address order
	Entries []*riscv.Instruction

	// resolves branch targets and records the referenced addresses
	resolver *symbols.Resolver

	// the number of instructions decoded for each standard. unrecognised
	// instructions are counted under riscv.NoStandard
	counts map[riscv.Standard]int
}

// FromELF reads the named ELF file and returns the disassembly of its .text
// section, labelled with its function symbols.
func FromELF(filename string) (*Disassembly, error) {
	ex, err := elf.Open(filename)
	if err != nil {
		return nil, err
	}

	dsm := &Disassembly{
		Executable: ex,
	}

	// the disassembly is returned even if there is an error
	err = dsm.FromMemory(ex.Text, ex.Address, ex.FunctionSymbols())

	return dsm, err
}

// FromBytes returns the disassembly of the code, which is loaded at the origin
// address. The symbol table can be nil.
//
// If the code ends part way through an instruction then the disassembly of
// the preceding instructions is returned along with the error.
func FromBytes(code []byte, origin uint64, tbl *symbols.Table) (*Disassembly, error) {
	dsm := &Disassembly{}
	err := dsm.FromMemory(code, origin, tbl)
	return dsm, err
}

// FromMemory disassembles the code into an existing instance of Disassembly.
// Any previous disassembly is discarded.
func (dsm *Disassembly) FromMemory(code []byte, origin uint64, tbl *symbols.Table) error {
	dsm.Symbols = tbl
	dsm.Entries = make([]*riscv.Instruction, 0, len(code)/2)
	dsm.resolver = symbols.NewResolver(tbl)

	// decode pass. an error does not prevent the label pass from running on
	// the instructions that were decoded
	err := dsm.decode(code, origin)

	// label pass
	dsm.label()

	dsm.count()
	logger.Log(logger.Allow, "disassembly", dsm.Summary())
	logger.Logf(logger.Allow, "disassembly", "%d branch targets", len(dsm.References()))
	if w := tbl.MaxWidth(); w > labelWidth {
		logger.Logf(logger.Allow, "disassembly", "symbols wider than %d characters will not align (widest is %d)", labelWidth, w)
	}

	return err
}

func (dsm *Disassembly) decode(code []byte, origin uint64) error {
	address := origin

	for len(code) > 0 {
		ins, sz := riscv.Decode(code, address, dsm.resolver)
		if ins == nil {
			return curated.Errorf(TruncatedInstruction, address, len(code), sz)
		}

		// the label for the instruction is taken from the symbol table
		// directly and not through the resolver. an address is not a
		// reference just because it has a symbol
		if s, ok := dsm.Symbols.ReverseSearch(address); ok {
			ins.Label = s
		}

		dsm.Entries = append(dsm.Entries, ins)

		address += uint64(sz)
		code = code[sz:]
	}

	return nil
}

func (dsm *Disassembly) label() {
	for _, ins := range dsm.Entries {
		if ins.Label == "" && dsm.resolver.Tagged(ins.Address) {
			ins.Label = symbols.LocationLabel(ins.Address)
		}
	}
}

func (dsm *Disassembly) count() {
	dsm.counts = make(map[riscv.Standard]int)
	for _, ins := range dsm.Entries {
		dsm.counts[ins.Standard()]++
	}
}

// Count returns the number of instructions decoded for the standard.
// riscv.NoStandard returns the number of instructions that could not be
// decoded.
func (dsm *Disassembly) Count(std riscv.Standard) int {
	return dsm.counts[std]
}

// References returns the addresses that were the target of a branch or jump,
// in ascending order.
func (dsm *Disassembly) References() []uint64 {
	if dsm.resolver == nil {
		return []uint64{}
	}
	return dsm.resolver.References()
}

// Summary returns a single line describing the number of instructions of
// each standard.
func (dsm *Disassembly) Summary() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%d instructions", len(dsm.Entries)))
	for _, std := range []riscv.Standard{riscv.RV32I, riscv.RV32M, riscv.RV32C, riscv.Zicsr, riscv.Zifencei} {
		if n := dsm.Count(std); n > 0 {
			s.WriteString(fmt.Sprintf(", %s: %d", std, n))
		}
	}
	if n := dsm.Count(riscv.NoStandard); n > 0 {
		s.WriteString(fmt.Sprintf(", undecoded: %d", n))
	}
	return s.String()
}
