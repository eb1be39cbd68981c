/*
Copyright © 2024 Jonathan Taylor <jonrtaylor12@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	walkDim string
	negward bool
)

// walkCmd represents the walk command
var walkCmd = &cobra.Command{
	Use:   "walk <node>",
	Short: "Rewind from a node along a dimension",
	Long: `Rewind from a node along a dimension, printing every visited node and whether the
walk reached the end of the chain or looped back to the start.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorld()
		if err != nil {
			return err
		}
		n := w.Node(args[0])
		if n == nil {
			return fmt.Errorf("no node named %s", args[0])
		}
		d, err := dimension(w, walkDim)
		if err != nil {
			return err
		}
		p := w.Primary()
		p.Set(n)
		rw := p.RewindPosward(d)
		if negward {
			rw = p.RewindNegward(d)
		}
		out := cmd.OutOrStdout()
		for rw.Next() {
			fmt.Fprintln(out, rw.Node())
		}
		fmt.Fprintln(out, rw.Result())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(walkCmd)
	walkCmd.Flags().StringVarP(&walkDim, "dimension", "d", "", "dimension, e.g. \"codomain,0\" (default primary)")
	walkCmd.Flags().BoolVarP(&negward, "negward", "n", false, "walk negward")
}
