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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which records a formatting pattern and its arguments:
//
//	e := curated.Errorf("funit: undefined operation: %04b", fs)
//
// The pattern doubles as the error's identity. Is() checks whether an error
// is a curated error with a specific pattern; Has() checks whether the
// pattern occurs anywhere in a chain of curated errors; IsAny() checks only
// that the error is curated. Sentinel patterns should be stored as suitably
// named const strings alongside the code that creates them.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts, where parts are separated by the sub-string ": ". Wrapping
// a curated error in the same pattern therefore costs nothing, which
// relieves callers of deciding when in a call chain an error should be
// annotated.
package curated
