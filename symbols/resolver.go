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

package symbols

import (
	"fmt"
	"sort"
)

// LocationLabel returns the generated label for an address that has no
// symbol.
func LocationLabel(address uint64) string {
	return fmt.Sprintf("LOC_%05x", address)
}

// Resolver implements the riscv.Resolver interface. Every address passed to
// Resolve() is added to the reference set, whether or not it has a symbol.
type Resolver struct {
	table  *Table
	tagged map[uint64]bool
}

// NewResolver is the preferred method of initialisation for the Resolver
// type. The table may be nil, in which case every address resolves to a
// generated location label.
func NewResolver(table *Table) *Resolver {
	return &Resolver{
		table:  table,
		tagged: make(map[uint64]bool),
	}
}

// Resolve returns the symbol for the address or a generated location label if
// there is no symbol. The address is added to the reference set.
func (r *Resolver) Resolve(address uint64) string {
	r.tagged[address] = true
	if s, ok := r.table.ReverseSearch(address); ok {
		return s
	}
	return LocationLabel(address)
}

// Tagged returns true if the address has been passed to Resolve().
func (r *Resolver) Tagged(address uint64) bool {
	return r.tagged[address]
}

// References returns the reference set in ascending order.
func (r *Resolver) References() []uint64 {
	refs := make([]uint64, 0, len(r.tagged))
	for a := range r.tagged {
		refs = append(refs, a)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}

// Reset empties the reference set.
func (r *Resolver) Reset() {
	clear(r.tagged)
}
