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
	"fmt"
	"os"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/hardlyware/funit8/funit"
	"github.com/hardlyware/funit8/logger"
	"github.com/spf13/cobra"
)

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "interactive front panel",
	Long: `An interactive front panel for the function unit. Type an operation
mnemonic followed by its operands:

  fu8> ADD 0x0f 0xf0
  0xff vcNz

Unary operations take a single operand. The "table", "log" and "quit"
commands are also available.`,
	Run: func(ccmd *cobra.Command, args []string) {
		p := prompt.New(panelExecutor, panelCompleter,
			prompt.OptionTitle("funit8 front panel"),
			prompt.OptionPrefix("fu8> "),
		)
		p.Run()
	},
}

func panelExecutor(input string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		os.Exit(0)
	case "table":
		printTable(os.Stdout)
		return
	case "log":
		logger.Tail(os.Stdout, 10)
		return
	}

	fs, err := parseSelector(fields[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	defn, err := funit.Lookup(fs)
	if err != nil {
		fmt.Println(err)
		return
	}

	// unary operations accept a single operand; it is routed to whichever
	// side the operation reads
	useA, useB := operandSides(*defn)

	var a, b uint8
	operands := fields[1:]

	switch {
	case useA && useB:
		if len(operands) != 2 {
			fmt.Printf("%s wants two operands\n", defn.Mnemonic)
			return
		}
		if a, err = parseOperand(operands[0]); err != nil {
			fmt.Println(err)
			return
		}
		if b, err = parseOperand(operands[1]); err != nil {
			fmt.Println(err)
			return
		}

	default:
		if len(operands) != 1 {
			fmt.Printf("%s wants one operand\n", defn.Mnemonic)
			return
		}
		var v uint8
		if v, err = parseOperand(operands[0]); err != nil {
			fmt.Println(err)
			return
		}
		if useA {
			a = v
		} else {
			b = v
		}
	}

	r, err := funit.Evaluate(a, b, fs)
	if err != nil {
		fmt.Println(err)
		return
	}

	logger.Logf("panel", "fs=%04b a=0x%02x b=0x%02x -> %s", uint8(fs), a, b, r)
	fmt.Println(r)
}

func panelCompleter(d prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{
		{Text: "table", Description: "print the operation table"},
		{Text: "log", Description: "print recent log entries"},
		{Text: "quit", Description: "leave the front panel"},
	}
	for _, defn := range funit.Definitions() {
		s = append(s, prompt.Suggest{Text: defn.Mnemonic, Description: defn.String()})
	}
	return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
}
