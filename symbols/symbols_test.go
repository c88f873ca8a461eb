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

package symbols_test

import (
	"testing"

	"github.com/vitos23/riscv-disasm/riscv"
	"github.com/vitos23/riscv-disasm/symbols"
	"github.com/vitos23/riscv-disasm/test"
)

const expectedTable = `0x00010074 -> main
0x000100a0 -> helper
0x000100c8 -> _start
`

func TestTable(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Add(0x100c8, "_start")
	tbl.Add(0x10074, "main")
	tbl.Add(0x100a0, "helper")

	tw := &test.Writer{}
	tbl.Write(tw)
	test.ExpectEquality(t, tw.String(), expectedTable)
	test.ExpectEquality(t, tbl.Len(), 3)
	test.ExpectEquality(t, tbl.MaxWidth(), 6)

	s, ok := tbl.ReverseSearch(0x100a0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "helper")

	_, ok = tbl.ReverseSearch(0x100a4)
	test.ExpectFailure(t, ok)

	a, ok := tbl.Search("MAIN")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, uint64(0x10074))

	_, ok = tbl.Search("missing")
	test.ExpectFailure(t, ok)

	// later symbols replace earlier symbols at the same address
	tbl.Add(0x10074, "entry")
	s, _ = tbl.ReverseSearch(0x10074)
	test.ExpectEquality(t, s, "entry")
	test.ExpectEquality(t, tbl.Len(), 3)

	addrs := tbl.Addresses()
	test.DemandEquality(t, len(addrs), 3)
	test.ExpectEquality(t, addrs[0], uint64(0x10074))
	test.ExpectEquality(t, addrs[2], uint64(0x100c8))
}

func TestLocationLabel(t *testing.T) {
	test.ExpectEquality(t, symbols.LocationLabel(0x1008), "LOC_01008")
	test.ExpectEquality(t, symbols.LocationLabel(0x10074), "LOC_10074")
	test.ExpectEquality(t, symbols.LocationLabel(0x123456), "LOC_123456")
	test.ExpectEquality(t, symbols.LocationLabel(0), "LOC_00000")
}

func TestResolver(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Add(0x10074, "main")

	res := symbols.NewResolver(tbl)
	test.DemandImplements(t, res, riscv.Resolver(nil))

	test.ExpectEquality(t, res.Resolve(0x10074), "main")
	test.ExpectEquality(t, res.Resolve(0x10080), "LOC_10080")

	// both addresses are tagged, including the one with a symbol
	test.ExpectSuccess(t, res.Tagged(0x10074))
	test.ExpectSuccess(t, res.Tagged(0x10080))
	test.ExpectFailure(t, res.Tagged(0x10078))

	// resolving an address more than once does not duplicate the reference
	res.Resolve(0x10080)
	res.Resolve(0x10000)
	refs := res.References()
	test.DemandEquality(t, len(refs), 3)
	test.ExpectEquality(t, refs[0], uint64(0x10000))
	test.ExpectEquality(t, refs[1], uint64(0x10074))
	test.ExpectEquality(t, refs[2], uint64(0x10080))

	res.Reset()
	test.ExpectEquality(t, len(res.References()), 0)
}

func TestResolverWithoutTable(t *testing.T) {
	res := symbols.NewResolver(nil)
	test.ExpectEquality(t, res.Resolve(0x1008), "LOC_01008")
	test.ExpectSuccess(t, res.Tagged(0x1008))
}
