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
	"os"

	gv "github.com/goccy/go-graphviz"
	"github.com/jt05610/nelson/graphviz"
	"github.com/spf13/cobra"
)

var (
	format     string
	outputFile string
	zzMode     bool
)

// vizCmd represents the viz command
var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Create a graphviz figure from a net",
	Long: `Create a graphviz figure from a net. By default the arcs of every transition are
drawn; with --zz the links along the primary and secondary dimensions are drawn instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := loadWorld()
		if err != nil {
			return err
		}
		cfg := &graphviz.Config{
			Font:    graphviz.Font(environment.GraphvizFont),
			RankDir: graphviz.LeftToRight,
			Format:  gv.Format(format),
		}
		if zzMode {
			cfg.Mode = graphviz.ZzMode
		}
		out := cmd.OutOrStdout()
		if outputFile != "" {
			df, err := os.Create(outputFile)
			if err != nil {
				return err
			}
			defer func() {
				_ = df.Close()
			}()
			out = df
			fmt.Fprintf(cmd.ErrOrStderr(), "writing figure for %s to %s\n", inputFile, outputFile)
		}
		return graphviz.New(cfg).Flush(out, w)
	},
}

func init() {
	rootCmd.AddCommand(vizCmd)
	vizCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file")
	vizCmd.Flags().StringVarP(&format, "format", "f", "dot", "output format")
	vizCmd.Flags().BoolVar(&zzMode, "zz", false, "draw zz links instead of arcs")
}
