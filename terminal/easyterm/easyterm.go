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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It is used
// to decide whether output is going to an interactive terminal and therefore
// whether ANSI colouring is appropriate.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// IsTerminal returns true if the file is connected to a terminal. A file is a
// terminal if the terminal attributes can be read from it.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}

// ColorOutput decides whether to colour the output written to f. The mode
// argument is one of "AUTO", "ALWAYS" or "NEVER". With "AUTO" the output is
// coloured only if f is a terminal. An empty mode is the same as "AUTO".
func ColorOutput(mode string, f *os.File) bool {
	switch mode {
	case "ALWAYS", "always":
		return true
	case "NEVER", "never":
		return false
	}
	return IsTerminal(f)
}
