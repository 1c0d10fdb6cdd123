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

// Package funit simulates a fixed-function 8-bit arithmetic/logic/shift unit.
// The unit takes two 8-bit operands and a 4-bit function select code and
// produces an 8-bit result along with the four status flags V, C, N and Z.
//
// The unit is purely combinational. There is no clock, no memory and no state
// carried between evaluations. The single entry point is the Evaluate()
// function.
//
//	r, err := funit.Evaluate(0x0f, 0xf0, funit.OpAdd)
//	if err != nil {
//		// selector does not name a defined operation
//	}
//	fmt.Println(r)
//
// The top two bits of the select code choose one of three execution blocks:
// arithmetic, logic or shift. All three blocks work on every evaluation, just
// as all three sub-circuits see the operand lines in the real unit. The
// selector only decides which block's output reaches the result bus, and
// which of the status flags are connected.
//
// Of the sixteen select codes only thirteen name an operation. In the
// hardware the remaining codes leave the result lines undriven; there is no
// safe software stand-in for an undriven line so Evaluate() returns an error
// for those codes rather than inventing a value. See the UndefinedOperation
// sentinel.
//
// The flag gating deserves a note. Which operations are allowed to affect
// which flags is decided by the boolean formulas in the flag unit and not by
// the execution block. The results are occasionally surprising: INC A
// suppresses V and C even though the adder produces a real carry, NEG A
// suppresses N and Z, and AND exposes N and Z while NOT A and NOT B do not.
// The formulas are reproduced from the gating circuit exactly and must not be
// "simplified" to a per-block rule.
package funit
