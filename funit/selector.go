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

	"github.com/hardlyware/funit8/curated"
)

// UndefinedOperation is the sentinel error returned when a selector value
// does not name any defined operation. Use with curated.Is() and
// curated.Has().
const UndefinedOperation = "funit: undefined operation: %04b"

// Block identifies one of the three execution blocks in the function unit.
type Block int

// The three execution blocks. The block is decided by the top two bits of
// the selector.
const (
	Arithmetic Block = iota
	Logic
	Shift
)

func (blk Block) String() string {
	switch blk {
	case Arithmetic:
		return "arithmetic"
	case Logic:
		return "logic"
	case Shift:
		return "shift"
	}
	return "unknown block"
}

// Selector is the 4-bit function select code, FS3 to FS0 with FS3 the most
// significant bit. Only thirteen of the sixteen values name an operation.
type Selector uint8

// Selector values for the defined operations. Any other value causes
// Evaluate() to fail with the UndefinedOperation error.
const (
	OpAdd   Selector = 0b0000 // A + B
	OpSub   Selector = 0b0001 // A - B
	OpPassA Selector = 0b0010 // A
	OpIncA  Selector = 0b0011 // A + 1
	OpNegB  Selector = 0b0100 // -B
	OpNegA  Selector = 0b0101 // -A
	OpAnd   Selector = 0b1000 // A & B
	OpNotA  Selector = 0b1001 // ^A
	OpNotB  Selector = 0b1010 // ^B
	OpMod4  Selector = 0b1100 // B & 0x03
	OpLsl   Selector = 0b1101 // B << 1
	OpLsr   Selector = 0b1110 // B >> 1
	OpAsr3  Selector = 0b1111 // B >> 3, sign extended
)

// Block returns the execution block selected by the top two bits of the
// selector. FS3 clear means arithmetic regardless of FS2.
func (fs Selector) Block() Block {
	if fs&0x08 == 0x00 {
		return Arithmetic
	}
	if fs&0x04 == 0x00 {
		return Logic
	}
	return Shift
}

// Routing describes how an operand is presented to one side of the adder.
type Routing int

// Routing values for the adder input selectors.
const (
	Direct Routing = iota
	Complement
	Zero
)

func (r Routing) String() string {
	switch r {
	case Direct:
		return "direct"
	case Complement:
		return "complement"
	case Zero:
		return "zero"
	}
	return "unknown routing"
}

// Definition describes one defined operation; one per defined selector
// value. For arithmetic operations, RouteA, RouteB and CarryIn reproduce the
// operand routing of the decoder. For logic and shift operations the adder
// still runs with the default routing but its flags are never connected.
type Definition struct {
	Selector Selector
	Mnemonic string
	Block    Block
	RouteA   Routing
	RouteB   Routing
	CarryIn  bool
}

// String returns a single operation definition as a string.
func (defn Definition) String() string {
	if defn.Block == Arithmetic {
		return fmt.Sprintf("%04b %s [%s: a=%s b=%s cin=%t]",
			uint8(defn.Selector), defn.Mnemonic, defn.Block,
			defn.RouteA, defn.RouteB, defn.CarryIn)
	}
	return fmt.Sprintf("%04b %s [%s]", uint8(defn.Selector), defn.Mnemonic, defn.Block)
}

// the decode table, indexed by selector value. nil entries are the selector
// values that drive nothing.
var definitions = [16]*Definition{
	{Selector: OpAdd, Mnemonic: "ADD", Block: Arithmetic, RouteA: Direct, RouteB: Direct, CarryIn: false},
	{Selector: OpSub, Mnemonic: "SUB", Block: Arithmetic, RouteA: Direct, RouteB: Complement, CarryIn: true},
	{Selector: OpPassA, Mnemonic: "PASSA", Block: Arithmetic, RouteA: Direct, RouteB: Zero, CarryIn: false},
	{Selector: OpIncA, Mnemonic: "INCA", Block: Arithmetic, RouteA: Direct, RouteB: Zero, CarryIn: true},
	{Selector: OpNegB, Mnemonic: "NEGB", Block: Arithmetic, RouteA: Zero, RouteB: Complement, CarryIn: true},
	{Selector: OpNegA, Mnemonic: "NEGA", Block: Arithmetic, RouteA: Complement, RouteB: Zero, CarryIn: true},
	nil, // 0110
	nil, // 0111
	{Selector: OpAnd, Mnemonic: "AND", Block: Logic},
	{Selector: OpNotA, Mnemonic: "NOTA", Block: Logic},
	{Selector: OpNotB, Mnemonic: "NOTB", Block: Logic},
	nil, // 1011
	{Selector: OpMod4, Mnemonic: "MOD4", Block: Shift},
	{Selector: OpLsl, Mnemonic: "LSL", Block: Shift},
	{Selector: OpLsr, Mnemonic: "LSR", Block: Shift},
	{Selector: OpAsr3, Mnemonic: "ASR3", Block: Shift},
}

// Lookup returns the Definition for the selector value. Selector values that
// do not name a defined operation, including values wider than four bits,
// return the UndefinedOperation error.
func Lookup(fs Selector) (*Definition, error) {
	if fs > 0x0f {
		return nil, curated.Errorf(UndefinedOperation, uint8(fs))
	}
	defn := definitions[fs]
	if defn == nil {
		return nil, curated.Errorf(UndefinedOperation, uint8(fs))
	}
	return defn, nil
}

// Definitions returns the defined operations in selector order. Useful for
// presentation layers that want to enumerate the operation table.
func Definitions() []Definition {
	l := make([]Definition, 0, 13)
	for _, defn := range definitions {
		if defn != nil {
			l = append(l, *defn)
		}
	}
	return l
}
