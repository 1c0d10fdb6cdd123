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

// Package cmd is the command line surface of the simulator. The function
// unit itself lives in the funit package and performs no I/O; everything
// that reads arguments or prints results is here.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "funit8",
	Short: "simulator for a fixed-function 8-bit arithmetic/logic/shift unit",
	Long: `FUnit8 simulates a fixed-function 8-bit arithmetic/logic/shift unit.
Two 8-bit operands and a 4-bit function select code go in; an 8-bit result
and the four status flags V, C, N and Z come out.

Use "eval" for a single evaluation, "table" to see the operation table and
"panel" for an interactive front panel.`,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(panelCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the command named on the command line. Exits non-zero on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
