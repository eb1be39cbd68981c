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

	"github.com/jt05610/nelson/marked"
	"github.com/spf13/cobra"
)

var reset bool

// fireCmd represents the fire command
var fireCmd = &cobra.Command{
	Use:   "fire <transition>...",
	Short: "Fire assignment transitions and print the markings",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorld()
		if err != nil {
			return err
		}
		mn := marked.New(w)
		if reset {
			if err := mn.Reset(); err != nil {
				return err
			}
		}
		for _, name := range args {
			t := w.Transition(name)
			if t == nil {
				return fmt.Errorf("no transition named %s", name)
			}
			if err := mn.Fire(t); err != nil {
				return err
			}
		}
		out := cmd.OutOrStdout()
		marking := mn.Marking()
		for _, p := range w.Places() {
			fmt.Fprintf(out, "%s: %v\n", p.Name, marking[p.Name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fireCmd)
	fireCmd.Flags().BoolVarP(&reset, "reset", "r", false, "reset places to their default markings first")
}
