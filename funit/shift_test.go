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

package funit_test

import (
	"testing"

	"github.com/hardlyware/funit8/funit"
	"github.com/hardlyware/funit8/test"
)

func TestMod4(t *testing.T) {
	r, err := funit.Evaluate(0x99, 0b00000110, funit.OpMod4)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0b00000010)

	// operand A plays no part in the shift block
	for b := 0; b <= 255; b++ {
		r, err := funit.Evaluate(0x00, uint8(b), funit.OpMod4)
		test.ExpectSuccess(t, err)
		test.Equate(t, r.Value, b%4)

		// N and Z are connected for MOD4. the masked result can never
		// be negative
		test.Equate(t, r.Flags.Negative, false)
		test.Equate(t, r.Flags.Zero, b%4 == 0)
	}
}

func TestLogicalShifts(t *testing.T) {
	// left shift discards bit 7
	r, err := funit.Evaluate(0x99, 0b10000001, funit.OpLsl)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0b00000010)

	// right shift discards bit 0 and clears bit 7
	r, err = funit.Evaluate(0x99, 0b10000001, funit.OpLsr)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0b01000000)

	// LSL and LSR have no connected flags. a zero result does not set Z
	r, err = funit.Evaluate(0x99, 0x80, funit.OpLsl)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0x00)
	test.Equate(t, r.Flags.Zero, false)

	r, err = funit.Evaluate(0x99, 0x01, funit.OpLsr)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0x00)
	test.Equate(t, r.Flags.Zero, false)
	test.Equate(t, r.Flags.Negative, false)
}

func TestArithmeticShift(t *testing.T) {
	// divide by eight with the sign preserved
	r, err := funit.Evaluate(0x99, 0b10000000, funit.OpAsr3)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0b11110000)

	r, err = funit.Evaluate(0x99, 0b00001000, funit.OpAsr3)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0b00000001)

	// equivalent to a signed shift for every input
	for b := 0; b <= 255; b++ {
		r, err := funit.Evaluate(0x00, uint8(b), funit.OpAsr3)
		test.ExpectSuccess(t, err)
		test.Equate(t, r.Value, uint8(int8(uint8(b))>>3))

		// N and Z are connected for ASR3
		test.Equate(t, r.Flags.Negative, b&0x80 == 0x80)
		test.Equate(t, r.Flags.Zero, b>>3 == 0 && b&0x80 == 0x00)
	}
}
