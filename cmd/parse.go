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

package cmd

import (
	"strconv"
	"strings"

	"github.com/hardlyware/funit8/curated"
	"github.com/hardlyware/funit8/funit"
)

// sentinel error patterns for command line parsing.
const (
	badOperand  = "not an 8-bit operand: %s"
	badSelector = "not an operation mnemonic or 4-bit select code: %s"
)

// mnemonic to selector mapping, built from the operation table.
var mnemonics map[string]funit.Selector

func init() {
	mnemonics = make(map[string]funit.Selector)
	for _, defn := range funit.Definitions() {
		mnemonics[defn.Mnemonic] = defn.Selector
	}
}

// parseOperand converts a string to an 8-bit operand. Plain decimal along
// with the usual 0x and 0b prefixes are accepted.
func parseOperand(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, curated.Errorf(badOperand, s)
	}
	return uint8(v), nil
}

// parseSelector converts a string to a selector value. An operation mnemonic
// (case insensitive) or a numeric 4-bit code are accepted. The selector is
// not checked against the operation table here; undefined codes are rejected
// by the function unit itself.
func parseSelector(s string) (funit.Selector, error) {
	if fs, ok := mnemonics[strings.ToUpper(s)]; ok {
		return fs, nil
	}

	v, err := strconv.ParseUint(s, 0, 4)
	if err != nil {
		return 0, curated.Errorf(badSelector, s)
	}
	return funit.Selector(v), nil
}

// operandSides reports which operands an operation actually reads. Used by
// the front panel to accept single-operand input for the unary operations.
func operandSides(defn funit.Definition) (useA bool, useB bool) {
	switch defn.Block {
	case funit.Logic:
		switch defn.Selector {
		case funit.OpNotA:
			return true, false
		case funit.OpNotB:
			return false, true
		}
		return true, true

	case funit.Shift:
		return false, true
	}

	// arithmetic. a side routed to zero means the operand is unused
	return defn.RouteA != funit.Zero, defn.RouteB != funit.Zero
}
