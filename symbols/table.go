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
	"io"
	"sort"
	"strings"
)

// Table maps an address to a symbol. it also keeps track of the widest symbol
// in the Table.
type Table struct {
	// indexed by address
	entries map[uint64]string

	// index of keys in entries. sortable through the sort.Interface
	idx []uint64

	// the longest symbol in the entries map
	maxWidth int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		entries: make(map[uint64]string),
		idx:     make([]uint64, 0),
	}
}

func (t *Table) String() string {
	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("%#08x -> %s\n", a, t.entries[a]))
	}
	return s.String()
}

// Add a symbol to the table. If the address already has a symbol then the
// existing symbol is replaced.
func (t *Table) Add(address uint64, symbol string) {
	if len(symbol) > t.maxWidth {
		t.maxWidth = len(symbol)
	}

	if _, ok := t.entries[address]; ok {
		t.entries[address] = symbol
		return
	}

	t.entries[address] = symbol
	t.idx = append(t.idx, address)
	sort.Sort(t)
}

// ReverseSearch returns the symbol for the specified address.
func (t *Table) ReverseSearch(address uint64) (string, bool) {
	if t == nil {
		return "", false
	}
	s, ok := t.entries[address]
	return s, ok
}

// Search returns the address of the symbol. Matching is case-insensitive. If
// more than one address has a matching symbol then the lowest address is
// returned.
func (t *Table) Search(symbol string) (uint64, bool) {
	if t == nil {
		return 0, false
	}
	symbol = strings.ToUpper(symbol)
	for _, a := range t.idx {
		if strings.ToUpper(t.entries[a]) == symbol {
			return a, true
		}
	}
	return 0, false
}

// MaxWidth returns the length of the longest symbol in the table. Returns
// zero if the table is nil.
func (t *Table) MaxWidth() int {
	if t == nil {
		return 0
	}
	return t.maxWidth
}

// Addresses returns the addresses in the table in ascending order.
func (t *Table) Addresses() []uint64 {
	a := make([]uint64, len(t.idx))
	copy(a, t.idx)
	return a
}

// Write the contents of the table to io.Writer.
func (t *Table) Write(output io.Writer) {
	io.WriteString(output, t.String())
}

// Len implements the sort.Interface.
func (t *Table) Len() int {
	return len(t.idx)
}

// Less implements the sort.Interface.
func (t *Table) Less(i, j int) bool {
	return t.idx[i] < t.idx[j]
}

// Swap implements the sort.Interface.
func (t *Table) Swap(i, j int) {
	t.idx[i], t.idx[j] = t.idx[j], t.idx[i]
}
