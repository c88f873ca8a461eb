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
	"bytes"
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// ParseGrepScope converts a scope name to a GrepScope. Unrecognised names
// return GrepAll.
func ParseGrepScope(s string) GrepScope {
	switch strings.ToUpper(s) {
	case "MNEMONIC":
		return GrepMnemonic
	case "OPERAND":
		return GrepOperand
	}
	return GrepAll
}

// Grep searches the disassembly for the specified search string. Matching
// lines are written to io.Writer in the same form as Write().
func (dsm *Disassembly) Grep(output io.Writer, attr WriteAttr, scope GrepScope, search string, caseSensitive bool) {
	var s, m string

	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	for _, ins := range dsm.Entries {
		// limit scope of grep to the correct instruction field
		switch scope {
		case GrepMnemonic:
			s = ins.Mnemonic
		case GrepOperand:
			s = strings.Join(ins.Operands, ", ")
		case GrepAll:
			s = ins.String()
		}

		if !caseSensitive {
			m = strings.ToUpper(s)
		} else {
			m = s
		}

		if strings.Contains(m, search) {
			line := &bytes.Buffer{}
			dsm.WriteLine(line, attr, ins)
			output.Write(line.Bytes())
		}
	}
}
