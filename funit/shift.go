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

// shift computes the shift block. The block only ever sees operand B; the A
// lines are not connected to it. The low two bits of the selector choose the
// operation.
func shift(b uint8, fs Selector) uint8 {
	switch fs & 0x03 {
	case 0b00:
		// modulo-4 mask. bits 2 to 7 forced clear
		return b & 0x03
	case 0b01:
		// logical shift left by one. bit 7 discarded
		return b << 1
	case 0b10:
		// logical shift right by one. bit 0 discarded
		return b >> 1
	}

	// arithmetic shift right by three, ie. divide by eight with the sign
	// preserved. the original bit 7 is replicated into the top three bits
	if b&0x80 == 0x80 {
		return b>>3 | 0xe0
	}
	return b >> 3
}
