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

package funit

import (
	"strings"
)

// Flags is the set of status flags produced by a single evaluation. A flag
// whose validity predicate does not hold for the selector is forced false,
// whatever the raw signal said.
type Flags struct {
	Overflow bool
	Carry    bool
	Negative bool
	Zero     bool
}

// String returns the flags as a bit pattern. Upper-case letters for set
// flags, lower-case for clear flags.
func (fl Flags) String() string {
	s := strings.Builder{}

	if fl.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}
	if fl.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}
	if fl.Negative {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if fl.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}

	return s.String()
}

// Value packs the flags into the low four bits of a byte. Useful for front
// panel style display.
func (fl Flags) Value() uint8 {
	var v uint8

	if fl.Overflow {
		v |= 0x08
	}
	if fl.Carry {
		v |= 0x04
	}
	if fl.Negative {
		v |= 0x02
	}
	if fl.Zero {
		v |= 0x01
	}

	return v
}

// the individual selector bits, named for use in the validity formulas.
func (fs Selector) bits() (fs3 bool, fs2 bool, fs1 bool, fs0 bool) {
	return fs&0x08 == 0x08, fs&0x04 == 0x04, fs&0x02 == 0x02, fs&0x01 == 0x01
}

// OverflowCarryValid reports whether the V and C flags are connected for
// this selector. The formula is per-opcode, not per-block: INC A (0011)
// disconnects V/C even though the adder produces a real carry.
func (fs Selector) OverflowCarryValid() bool {
	fs3, fs2, fs1, fs0 := fs.bits()
	return (!fs3 && !fs1) || (!fs3 && !fs2 && !fs0)
}

// NegativeZeroValid reports whether the N and Z flags are connected for this
// selector. Again per-opcode: NEG A (0101) disconnects N/Z, AND (1000)
// connects them while NOT A and NOT B do not.
func (fs Selector) NegativeZeroValid() bool {
	fs3, fs2, fs1, fs0 := fs.bits()
	return (!fs2 && !fs3) || (!fs1 && !fs0) || (fs1 && fs0)
}

// newFlags gates the raw signals by the validity predicates for the
// selector. raw N and Z come from the selected result; raw C and V come from
// the adder whichever block was selected.
func newFlags(result uint8, carry bool, overflow bool, fs Selector) Flags {
	vc := fs.OverflowCarryValid()
	nz := fs.NegativeZeroValid()

	return Flags{
		Overflow: overflow && vc,
		Carry:    carry && vc,
		Negative: result&0x80 == 0x80 && nz,
		Zero:     result == 0x00 && nz,
	}
}
