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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test failure but allow the test to
// continue. The Demand*() functions are the same except that a failure is
// fatal to the test. Use the Demand*() functions when the value being tested
// is required by subsequent tests. For example, testing the length of a slice
// before iterating over it.
//
// It is worth describing how the ExpectSuccess() and ExpectFailure()
// functions handle the nil type because it is not obvious. The nil type is
// considered a success and consequently will cause ExpectFailure() to fail
// and ExpectSuccess() to succeed. This may not be how we want to interpret nil
// in all situations but because of how errors usually work (nil to indicate
// no error) we *need* to interpret nil in this way.
//
// The Writer type meanwhile, implements the io.Writer interface and should be
// used to capture output. The Writer.Compare() function can then be used to
// test for equality.
//
// ELFImage() and ELFFile() create small RISC-V executables for tests that
// need an ELF file.
package test
