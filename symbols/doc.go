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

// Package symbols maps program addresses to names. The Table type holds the
// names taken from an executable's symbol table. The Resolver type uses a
// Table to produce operand strings for the targets of branches and jumps and
// remembers every address it has been asked about.
//
// Addresses that are not in the Table are given a generated location label,
// the address in lower-case hex with at least five digits:
//
//	LOC_01008
//
// The set of addresses seen by the Resolver is the reference set. It is used
// by the disassembly package to label instructions that are the target of a
// branch or jump but which have no name in the Table.
package symbols
