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
	"io"
	"os"
	"text/tabwriter"

	"github.com/hardlyware/funit8/funit"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "print the operation table",
	Long: `Print the full sixteen-row operation table: mnemonic, execution block,
adder routing and which of the status flags are connected for each select
code. Undefined codes are marked as such.`,
	Run: func(ccmd *cobra.Command, args []string) {
		printTable(os.Stdout)
	},
}

// connected flags rendered in the same style as the Flags type
func flagColumn(fs funit.Selector) string {
	s := []byte("----")
	if fs.OverflowCarryValid() {
		s[0] = 'V'
		s[1] = 'C'
	}
	if fs.NegativeZeroValid() {
		s[2] = 'N'
		s[3] = 'Z'
	}
	return string(s)
}

func printTable(output io.Writer) {
	w := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "code\tmnemonic\tblock\trouting\tcin\tflags")

	for fs := funit.Selector(0); fs <= 0x0f; fs++ {
		defn, err := funit.Lookup(fs)
		if err != nil {
			fmt.Fprintf(w, "%04b\t(undefined)\t\t\t\t\n", uint8(fs))
			continue
		}

		routing := ""
		carryIn := ""
		if defn.Block == funit.Arithmetic {
			routing = fmt.Sprintf("a=%s b=%s", defn.RouteA, defn.RouteB)
			carryIn = fmt.Sprintf("%t", defn.CarryIn)
		}

		fmt.Fprintf(w, "%04b\t%s\t%s\t%s\t%s\t%s\n",
			uint8(fs), defn.Mnemonic, defn.Block, routing, carryIn, flagColumn(fs))
	}
}
