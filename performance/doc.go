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

// Package performance measures the speed of the disassembler.
//
// Check() disassembles the same program repeatedly for a fixed duration and
// reports the number of instructions decoded per second. It will optionally
// generate profiling information.
//
// RunProfiler() can be used to generate the profile types on its own. It does
// not limit the amount of time the program runs for.
package performance
