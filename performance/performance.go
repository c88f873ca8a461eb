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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/vitos23/riscv-disasm/curated"
	"github.com/vitos23/riscv-disasm/disassembly"
	"github.com/vitos23/riscv-disasm/logger"
	"github.com/vitos23/riscv-disasm/symbols"
)

// the number of disassemblies between checks of the timer.
const performanceBrake = 16

// Result of a call to Check().
type Result struct {
	Passes       int
	Instructions int
	Duration     time.Duration
}

// Rate returns the number of instructions decoded per second.
func (r Result) Rate() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds()
}

func (r Result) String() string {
	return fmt.Sprintf("%.0f instructions/sec (%d passes of %d instructions in %.2f seconds)",
		r.Rate(), r.Passes, r.perPass(), r.Duration.Seconds())
}

func (r Result) perPass() int {
	if r.Passes == 0 {
		return 0
	}
	return r.Instructions / r.Passes
}

// Check the performance of the disassembler by disassembling the code
// repeatedly for the specified duration. Profiles are created as defined by
// the Profile argument.
func Check(output io.Writer, profile Profile, code []byte, origin uint64, tbl *symbols.Table, duration time.Duration) (Result, error) {
	var res Result

	dsm := &disassembly.Disassembly{}

	runner := func() error {
		start := time.Now()

		timesUp := make(chan bool, 1)
		timer := time.AfterFunc(duration, func() {
			timesUp <- true
		})
		defer timer.Stop()

		brake := 0

		for {
			err := dsm.FromMemory(code, origin, tbl)
			if err != nil && !curated.Is(err, disassembly.TruncatedInstruction) {
				return err
			}
			res.Passes++
			res.Instructions += len(dsm.Entries)

			brake++
			if brake >= performanceBrake {
				brake = 0
				select {
				case <-timesUp:
					res.Duration = time.Since(start)
					return nil
				default:
				}
			}
		}
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil {
		return res, curated.Errorf(ProfileError, err)
	}

	logger.Logf(logger.Allow, "performance", "%d passes", res.Passes)
	fmt.Fprintln(output, res.String())

	return res, nil
}
