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
	"fmt"
)

// Result is the outcome of a single evaluation of the function unit.
type Result struct {
	Value uint8
	Flags Flags
}

func (r Result) String() string {
	return fmt.Sprintf("0x%02x %s", r.Value, r.Flags)
}

// Evaluate runs the function unit once. Operands a and b and the function
// select code fs go in; the 8-bit result and the gated status flags come
// out.
//
// Evaluate is a pure function. Calling it twice with the same inputs gives
// the same outputs and concurrent calls need no coordination.
//
// Selector values that do not name a defined operation return the
// UndefinedOperation error.
func Evaluate(a uint8, b uint8, fs Selector) (Result, error) {
	defn, err := Lookup(fs)
	if err != nil {
		return Result{}, err
	}

	// all three blocks work on every evaluation. the selector only decides
	// which output reaches the result bus
	sum, carry, overflow := arithmetic(a, b, defn)
	lg := logic(a, b, fs)
	sh := shift(b, fs)

	var value uint8
	switch defn.Block {
	case Arithmetic:
		value = sum
	case Logic:
		value = lg
	case Shift:
		value = sh
	}

	return Result{
		Value: value,
		Flags: newFlags(value, carry, overflow, fs),
	}, nil
}
