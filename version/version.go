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

// Package version reports the name and version of the application. The
// version number is set at link time:
//
//	go build -ldflags "-X github.com/vitos23/riscv-disasm/version.number=v1.0.0"
//
// Without a version number the revision recorded by the Go toolchain is used.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "riscv-disasm"

// set with the linker
var number string

// Info describes the build of the application.
type Info struct {
	// the version number or "unreleased" if there is no version number but
	// there is revision information. "local" if there is neither
	Version string

	// vcs revision, suffixed with "+dirty" if the source was modified
	Revision string

	// true if Version is a real version number
	Release bool
}

func (i Info) String() string {
	if i.Release {
		return fmt.Sprintf("%s %s", ApplicationName, i.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, i.Version, i.Revision)
}

// Current returns the Info for the running application.
func Current() Info {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return fromSettings(number, nil)
	}
	return fromSettings(number, bi.Settings)
}

func fromSettings(number string, settings []debug.BuildSetting) Info {
	var vcs, modified bool
	var revision string

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	info := Info{
		Version:  number,
		Revision: revision,
		Release:  number != "",
	}

	if info.Revision == "" {
		info.Revision = "no revision information"
	} else if modified {
		info.Revision = fmt.Sprintf("%s+dirty", info.Revision)
	}

	if !info.Release {
		if vcs {
			info.Version = "unreleased"
		} else {
			info.Version = "local"
		}
	}

	return info
}
