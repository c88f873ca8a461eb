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

	"github.com/vitos23/riscv-disasm/curated"
)

// Standard identifies the base or extension that an instruction belongs to.
type Standard int

// List of supported standards. NoStandard is used for instructions that
// have not been recognised.
const (
	NoStandard Standard = iota
	RV32I
	RV32M
	RV32C
	Zicsr
	Zifencei
)

func (s Standard) String() string {
	switch s {
	case RV32I:
		return "RV32I"
	case RV32M:
		return "RV32M"
	case RV32C:
		return "RV32C"
	case Zicsr:
		return "Zicsr"
	case Zifencei:
		return "Zifencei"
	}
	return "unknown"
}

// Category describes the effect an instruction has.
type Category int

// List of instruction categories.
const (
	Arithmetic Category = iota
	Load
	Store

	// flow instructions have a control transfer target that is passed to the
	// Resolver. branches are conditional, jumps are not.
	Branch
	Jump

	// jumps through a register. the target is not known at disassembly time
	IndirectJump

	System
	Fence
	Undefined
)

// IsFlow returns true if the instruction has a target that is known at
// disassembly time.
func (c Category) IsFlow() bool {
	return c == Branch || c == Jump
}

// Definition defines each instruction in the instruction set; one per
// mnemonic and operand arrangement.
type Definition struct {
	Mnemonic string
	Standard Standard
	Category Category
	Format   Format

	// the match specification from which mask and match were parsed
	Spec string

	// an instruction word matches the definition if (word & mask) == match
	mask  uint32
	match uint32
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%s [%s] (%s) mask=%08x match=%08x", defn.Mnemonic, defn.Standard, defn.Spec, defn.mask, defn.match)
}

// Matches returns true if the instruction word satisfies the definition.
func (defn *Definition) Matches(word uint32) bool {
	return word&defn.mask == defn.match
}

// sentinal error patterns for parseMatchSpec().
const (
	MalformedSpec = "match spec: %s: %v"
	SpecOverflow  = "match spec: %s: value does not fit in bit range"
)

// parseMatchSpec parses a space separated list of "hi..lo=value" or
// "bit=value" terms and returns the combined match and mask.
func parseMatchSpec(spec string) (match uint32, mask uint32, err error) {
	for _, term := range strings.Fields(spec) {
		rng, want, ok := strings.Cut(term, "=")
		if !ok {
			return 0, 0, curated.Errorf(MalformedSpec, term, "missing value")
		}

		v, err := strconv.ParseUint(want, 0, 32)
		if err != nil {
			return 0, 0, curated.Errorf(MalformedSpec, term, err)
		}

		rawHi, rawLo, ok := strings.Cut(rng, "..")
		if !ok {
			rawLo = rawHi
		}

		hi, err := strconv.ParseUint(rawHi, 10, 8)
		if err != nil {
			return 0, 0, curated.Errorf(MalformedSpec, term, err)
		}
		lo, err := strconv.ParseUint(rawLo, 10, 8)
		if err != nil {
			return 0, 0, curated.Errorf(MalformedSpec, term, err)
		}
		if lo > hi || hi > 31 {
			return 0, 0, curated.Errorf(MalformedSpec, term, "bad bit range")
		}

		m := uint32((uint64(1)<<(hi+1) - 1) &^ (uint64(1)<<lo - 1))
		if (v<<lo)&^uint64(m) != 0 {
			return 0, 0, curated.Errorf(SpecOverflow, term)
		}

		mask |= m
		match |= uint32(v << lo)
	}

	return match, mask, nil
}

// newDefinition creates a Definition from a table row. it panics if the match
// specification cannot be parsed. definitions are only created during package
// initialisation so a malformed specification is a programming error.
func newDefinition(mnemonic string, standard Standard, category Category, format Format, spec string) Definition {
	match, mask, err := parseMatchSpec(spec)
	if err != nil {
		panic(fmt.Sprintf("riscv: %s: %v", mnemonic, err))
	}
	return Definition{
		Mnemonic: mnemonic,
		Standard: standard,
		Category: category,
		Format:   format,
		Spec:     spec,
		mask:     mask,
		match:    match,
	}
}
