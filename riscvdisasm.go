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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
	"github.com/tebeka/atexit"

	"github.com/vitos23/riscv-disasm/disassembly"
	"github.com/vitos23/riscv-disasm/elf"
	"github.com/vitos23/riscv-disasm/logger"
	"github.com/vitos23/riscv-disasm/modalflag"
	"github.com/vitos23/riscv-disasm/performance"
	"github.com/vitos23/riscv-disasm/statsview"
	"github.com/vitos23/riscv-disasm/terminal/easyterm"
	"github.com/vitos23/riscv-disasm/version"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	atexit.Exit(launch(md))
}

// launch selects and runs the mode requested by the command line. returns the
// exit value for the program.
func launch(md *modalflag.Modes) int {
	md.AddSubModes("DISASM", "SYMTAB", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(md.Output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "DISASM":
		err = disasm(md)

	case "SYMTAB":
		err = symtab(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(md.Output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// createOutput returns the file that output should be written to. if filename
// is empty then the file is os.Stdout. the file is closed when the program
// exits.
func createOutput(filename string) (*os.File, error) {
	if filename == "" {
		return os.Stdout, nil
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	atexit.Register(func() {
		f.Close()
	})

	return f, nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("usage: [DISASM] [flags] <elf file> [<output file>]")

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	color := md.AddString("color", "AUTO", "colour output: AUTO, ALWAYS, NEVER")
	grep := md.AddString("grep", "", "only output instructions matching the search string")
	grepScope := md.AddString("grepscope", "ALL", "scope of grep search: MNEMONIC, OPERAND, ALL")
	grepCase := md.AddBool("grepcase", false, "grep search is case sensitive")
	noSymtab := md.AddBool("nosymtab", false, "do not write the symbol table after the disassembly")
	dump := md.AddBool("spew", false, "dump decoded instructions instead of the disassembly")
	memvizFile := md.AddString("memviz", "", "write a graphviz representation of the disassembly to file")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var outputFile string

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ELF file required for %s mode", md)
	case 1:
	case 2:
		outputFile = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		echoLog(*color)
	}

	output, err := createOutput(outputFile)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		Color:    easyterm.ColorOutput(strings.ToUpper(*color), output),
		Symtab:   !*noSymtab,
	}

	dsm, err := disassembly.FromELF(md.GetArg(0))
	if err != nil {
		// print what disassembly output we do have
		if dsm != nil {
			dsm.WriteListing(output, attr)
		}
		return err
	}

	if *memvizFile != "" {
		err = writeMemviz(*memvizFile, dsm)
		if err != nil {
			return err
		}
	}

	switch {
	case *dump:
		spew.Fdump(output, dsm.Entries)
	case *grep != "":
		dsm.Grep(output, attr, disassembly.ParseGrepScope(*grepScope), *grep, *grepCase)
	default:
		dsm.WriteListing(output, attr)
	}

	return nil
}

func writeMemviz(filename string, dsm *disassembly.Disassembly) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	memviz.Map(f, dsm)

	return nil
}

// echoLog writes log entries to stderr as they are made.
func echoLog(color string) {
	var w io.Writer = os.Stderr
	if easyterm.ColorOutput(strings.ToUpper(color), os.Stderr) {
		w = logger.NewColorizer(os.Stderr)
	}
	logger.SetEcho(w, true)
}

func symtab(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("usage: SYMTAB [flags] <elf file>")

	functions := md.AddBool("functions", false, "only list the function symbols used to label the disassembly")
	find := md.AddString("find", "", "print the address of the named function symbol")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ELF file required for %s mode", md)
	case 1:
		ex, err := elf.Open(md.GetArg(0))
		if err != nil {
			return err
		}

		switch {
		case *find != "":
			tbl := ex.FunctionSymbols()
			a, ok := tbl.Search(*find)
			if !ok {
				return fmt.Errorf("no function symbol named %s", *find)
			}
			s, _ := tbl.ReverseSearch(a)
			fmt.Fprintf(md.Output, "%#08x -> %s\n", a, s)
		case *functions:
			ex.FunctionSymbols().Write(md.Output)
		default:
			ex.WriteSymtab(md.Output)
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("usage: PERFORMANCE [flags] <elf file>")

	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "NONE", "produce profiling reports: CPU, MEM, ALL, NONE")
	stats := md.AddBool("statsview", false, "launch the statistics server")
	log := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ELF file required for %s mode", md)
	case 1:
		prof, err := performance.ParseProfileString(*profile)
		if err != nil {
			return err
		}

		if *log {
			echoLog("AUTO")
		}

		if *stats {
			statsview.Launch(md.Output)
		}

		ex, err := elf.Open(md.GetArg(0))
		if err != nil {
			return err
		}

		_, err = performance.Check(md.Output, prof, ex.Text, ex.Address, ex.FunctionSymbols(), *duration)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	info := version.Current()
	if *revision {
		fmt.Fprintln(md.Output, info.Revision)
	} else {
		fmt.Fprintln(md.Output, info)
	}

	return nil
}
