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

// route resolves a Routing control to the value placed on one side of the
// adder.
func route(v uint8, r Routing) uint8 {
	switch r {
	case Direct:
		return v
	case Complement:
		return ^v
	}
	return 0
}

// add is the 8-bit adder at the centre of the arithmetic block. It returns
// the sum of left, right and the carry-in bit, along with the carry out of
// bit 7 and the signed overflow signal.
//
// overflow is the XOR of the carry out of bit 7 with the carry into bit 7.
// the unit detects overflow by comparing the two ends of the carry chain,
// not by comparing operand sign bits, and we do the same here.
func add(left uint8, right uint8, carryIn bool) (sum uint8, carry bool, overflow bool) {
	var cin uint16
	if carryIn {
		cin = 1
	}

	s := uint16(left) + uint16(right) + cin
	sum = uint8(s)
	carry = s > 0xff

	// carry into bit 7 is the carry out of a 7-bit add of the low bits
	carrySign := uint16(left&0x7f)+uint16(right&0x7f)+cin > 0x7f
	overflow = carry != carrySign

	return sum, carry, overflow
}

// arithmetic computes the arithmetic block: both operands pass through their
// input selectors before reaching the adder. The block runs on every
// evaluation whatever the selector; the flag unit decides whether the carry
// and overflow signals are ever seen.
func arithmetic(a uint8, b uint8, defn *Definition) (uint8, bool, bool) {
	return add(route(a, defn.RouteA), route(b, defn.RouteB), defn.CarryIn)
}
