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

package easyterm_test

import (
	"os"
	"testing"

	"github.com/vitos23/riscv-disasm/terminal/easyterm"
	"github.com/vitos23/riscv-disasm/test"
)

func TestIsTerminal(t *testing.T) {
	test.ExpectFailure(t, easyterm.IsTerminal(nil))

	// a regular file is never a terminal
	f, err := os.CreateTemp(t.TempDir(), "easyterm")
	test.DemandSuccess(t, err)
	defer f.Close()
	test.ExpectFailure(t, easyterm.IsTerminal(f))

	test.ExpectEquality(t, easyterm.ColorOutput("ALWAYS", f), true)
	test.ExpectEquality(t, easyterm.ColorOutput("NEVER", f), false)
	test.ExpectEquality(t, easyterm.ColorOutput("AUTO", f), false)
}
