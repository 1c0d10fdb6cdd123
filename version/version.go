// This file is part of FUnit8.
//
// FUnit8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// FUnit8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with FUnit8.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the name of the application and the version
// information available at build time.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "FUnit8"

// set at build time with the -ldflags "-X" option. empty when the project
// has been built outside of the release process
var number string

// Revision contains the vcs revision of the build. If the source had been
// modified but not committed the revision is suffixed with "+dirty".
var Revision string

// Version contains the version string for the build. "unreleased" means the
// project was built manually; "local" means there is no version number and
// no vcs information at all, which can happen with "go run .".
var Version string

func init() {
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		Revision = "no revision information"
	} else {
		Revision = vcsRevision
		if vcsModified {
			Revision += "+dirty"
		}
	}

	if number != "" {
		Version = number
	} else if vcsRevision != "" {
		Version = "unreleased"
	} else {
		Version = "local"
	}
}
