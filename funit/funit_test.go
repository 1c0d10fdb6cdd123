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

	"github.com/hardlyware/funit8/curated"
	"github.com/hardlyware/funit8/funit"
	"github.com/hardlyware/funit8/test"
)

func TestAddScenarios(t *testing.T) {
	// no carry, no overflow. negative result
	r, err := funit.Evaluate(0x0f, 0xf0, funit.OpAdd)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0xff)
	test.Equate(t, r.Flags.Carry, false)
	test.Equate(t, r.Flags.Overflow, false)
	test.Equate(t, r.Flags.Negative, true)
	test.Equate(t, r.Flags.Zero, false)

	// unsigned wraparound. carry but no signed overflow
	r, err = funit.Evaluate(0xff, 0x01, funit.OpAdd)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0x00)
	test.Equate(t, r.Flags.Carry, true)
	test.Equate(t, r.Flags.Overflow, false)
	test.Equate(t, r.Flags.Negative, false)
	test.Equate(t, r.Flags.Zero, true)

	// two positive operands summing to a negative bit pattern. signed
	// overflow but no carry
	r, err = funit.Evaluate(0x7f, 0x01, funit.OpAdd)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.Value, 0x80)
	test.Equate(t, r.Flags.Carry, false)
	test.Equate(t, r.Flags.Overflow, true)
	test.Equate(t, r.Flags.Negative, true)
	test.Equate(t, r.Flags.Zero, false)
}

func TestAddExhaustive(t *testing.T) {
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			r, err := funit.Evaluate(uint8(a), uint8(b), funit.OpAdd)
			test.ExpectSuccess(t, err)
			test.Equate(t, r.Value, (a+b)&0xff)
			test.Equate(t, r.Flags.Carry, a+b > 255)

			signed := int(int8(uint8(a))) + int(int8(uint8(b)))
			test.Equate(t, r.Flags.Overflow, signed < -128 || signed > 127)
			test.Equate(t, r.Flags.Negative, (a+b)&0x80 == 0x80)
			test.Equate(t, r.Flags.Zero, (a+b)&0xff == 0x00)
		}
	}
}

func TestSubExhaustive(t *testing.T) {
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			r, err := funit.Evaluate(uint8(a), uint8(b), funit.OpSub)
			test.ExpectSuccess(t, err)
			test.Equate(t, r.Value, (a-b)&0xff)

			// subtraction is A + ^B + 1 so the carry flag means "no
			// borrow"
			test.Equate(t, r.Flags.Carry, a >= b)

			signed := int(int8(uint8(a))) - int(int8(uint8(b)))
			test.Equate(t, r.Flags.Overflow, signed < -128 || signed > 127)
			test.Equate(t, r.Flags.Negative, (a-b)&0x80 == 0x80)
			test.Equate(t, r.Flags.Zero, a == b)
		}
	}
}

func TestPassAndIncrement(t *testing.T) {
	// PASSA passes operand A through the adder unchanged. the adder never
	// carries or overflows so V and C are clear even though they are
	// connected for this selector
	for a := 0; a <= 255; a++ {
		r, err := funit.Evaluate(uint8(a), 0x99, funit.OpPassA)
		test.ExpectSuccess(t, err)
		test.Equate(t, r.Value, a)
		test.Equate(t, r.Flags.Carry, false)
		test.Equate(t, r.Flags.Overflow, false)
		test.Equate(t, r.Flags.Negative, a&0x80 == 0x80)
		test.Equate(t, r.Flags.Zero, a == 0)
	}

	// INCA disconnects V and C. even at the wraparound points where the
	// adder produces a real carry and a real signed overflow
	for a := 0; a <= 255; a++ {
		r, err := funit.Evaluate(uint8(a), 0x99, funit.OpIncA)
		test.ExpectSuccess(t, err)
		test.Equate(t, r.Value, (a+1)&0xff)
		test.Equate(t, r.Flags.Carry, false)
		test.Equate(t, r.Flags.Overflow, false)
		test.Equate(t, r.Flags.Negative, (a+1)&0x80 == 0x80)
		test.Equate(t, r.Flags.Zero, a == 0xff)
	}
}

func TestNegate(t *testing.T) {
	// NEGB is 0 + ^B + 1. carry out only when B is zero; signed overflow
	// only when B is 0x80 (-128 cannot be negated in 8 bits)
	for b := 0; b <= 255; b++ {
		r, err := funit.Evaluate(0x99, uint8(b), funit.OpNegB)
		test.ExpectSuccess(t, err)
		test.Equate(t, r.Value, (-b)&0xff)
		test.Equate(t, r.Flags.Carry, b == 0)
		test.Equate(t, r.Flags.Overflow, b == 0x80)
		test.Equate(t, r.Flags.Negative, (-b)&0x80 == 0x80)
		test.Equate(t, r.Flags.Zero, b == 0)
	}

	// NEGA keeps V and C but disconnects N and Z
	for a := 0; a <= 255; a++ {
		r, err := funit.Evaluate(uint8(a), 0x99, funit.OpNegA)
		test.ExpectSuccess(t, err)
		test.Equate(t, r.Value, (-a)&0xff)
		test.Equate(t, r.Flags.Carry, a == 0)
		test.Equate(t, r.Flags.Overflow, a == 0x80)
		test.Equate(t, r.Flags.Negative, false)
		test.Equate(t, r.Flags.Zero, false)
	}
}

func TestUndefinedOperation(t *testing.T) {
	for _, fs := range []funit.Selector{0b0110, 0b0111, 0b1011} {
		_, err := funit.Evaluate(0x00, 0x00, fs)
		test.ExpectFailure(t, err)
		test.ExpectSuccess(t, curated.Is(err, funit.UndefinedOperation))
	}

	// selector values wider than four bits are just as undefined
	_, err := funit.Evaluate(0x00, 0x00, 0b10000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, funit.UndefinedOperation))
}

func TestIdempotence(t *testing.T) {
	// the unit is stateless. same inputs, same outputs, every time
	for _, fs := range []funit.Selector{funit.OpAdd, funit.OpSub, funit.OpAnd, funit.OpAsr3} {
		r1, err := funit.Evaluate(0x5a, 0xc3, fs)
		test.ExpectSuccess(t, err)
		r2, err := funit.Evaluate(0x5a, 0xc3, fs)
		test.ExpectSuccess(t, err)
		test.Equate(t, r1.Value, r2.Value)
		test.Equate(t, r1.Flags.String(), r2.Flags.String())
	}
}

func TestResultString(t *testing.T) {
	r, err := funit.Evaluate(0x0f, 0xf0, funit.OpAdd)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.String(), "0xff vcNz")

	r, err = funit.Evaluate(0xff, 0x01, funit.OpAdd)
	test.ExpectSuccess(t, err)
	test.Equate(t, r.String(), "0x00 vCnZ")
}
