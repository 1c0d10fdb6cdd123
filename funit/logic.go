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

// logic computes the logic block. Bitwise only, no carry chain. The low two
// bits of the selector choose the operation.
func logic(a uint8, b uint8, fs Selector) uint8 {
	switch fs & 0x03 {
	case 0b00:
		return a & b
	case 0b01:
		return ^a
	case 0b10:
		return ^b
	}

	// the 11 sub-code drives nothing. Evaluate() rejects selector 1011
	// before the block output is ever selected.
	return 0
}
