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

	"github.com/hardlyware/funit8/funit"
	"github.com/hardlyware/funit8/logger"
	"github.com/spf13/cobra"
)

var evalEchoLog bool

var evalCmd = &cobra.Command{
	Use:   "eval <a> <b> <op>",
	Short: "evaluate the function unit once",
	Long: `Evaluate the function unit once. Operands are 8-bit values in decimal, hex
(0x) or binary (0b) form. The operation is a mnemonic (see the table
command) or a 4-bit select code.

  funit8 eval 0x0f 0xf0 ADD
  funit8 eval 15 240 0b0000`,
	Args: cobra.ExactArgs(3),
	RunE: func(ccmd *cobra.Command, args []string) error {
		if evalEchoLog {
			logger.SetEcho(os.Stderr)
		}

		a, err := parseOperand(args[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(args[1])
		if err != nil {
			return err
		}
		fs, err := parseSelector(args[2])
		if err != nil {
			return err
		}

		r, err := funit.Evaluate(a, b, fs)
		if err != nil {
			logger.Logf("eval", "%v", err)
			return err
		}

		logger.Logf("eval", "fs=%04b a=0x%02x b=0x%02x -> %s", uint8(fs), a, b, r)
		fmt.Println(r)
		return nil
	},
}

func init() {
	evalCmd.Flags().BoolVar(&evalEchoLog, "log", false, "echo log entries to stderr")
}
