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

// Package modalflag wraps the flag package in the standard library so that a
// command line can select a mode of operation, with each mode having its own
// set of flags.
//
// Arguments are supplied with NewArgs() and then parsed with Parse(). Before
// parsing, flags and sub-modes can be added:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DISASM", "SYMTAB", "VERSION")
//	p, err := md.Parse()
//
// If the first argument after the flags names one of the sub-modes then that
// mode is selected and the argument is consumed. Otherwise the first sub-mode
// in the list is selected. Sub-mode names are case insensitive and Mode()
// always returns the upper case form.
//
// Once the mode has been decided, NewMode() starts a new layer of parsing for
// the remaining arguments:
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		bytecode := md.AddBool("bytecode", false, "include raw instruction")
//		p, err := md.Parse()
//		...
//	}
//
// Parse() prints help messages to the Output writer when the -help flag is
// seen and returns ParseHelp. The caller should treat ParseHelp as the end of
// processing without printing anything further.
package modalflag
