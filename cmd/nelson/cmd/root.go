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
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jt05610/nelson"
	"github.com/jt05610/nelson/env"
	"github.com/jt05610/nelson/graphviz"
	"github.com/jt05610/nelson/netfile/v1/yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputFile   string
	environment *env.Environment
	logger      *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nelson",
	Short: "Inspect and run Nelson nets",
	Long: `Inspect and run Nelson nets. A net is loaded from a yaml net file or from a
graphviz file written by the viz command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		environment = env.LoadEnv(zap.NewNop())
		var err error
		logger, err = environment.Logger()
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "net file (.yaml or .dot)")
}

// loadWorld builds a world configured from the environment and fills it from the input
// file.
func loadWorld() (*nelson.World, error) {
	w, err := nelson.NewWorld(environment.Options(logger)...)
	if err != nil {
		return nil, err
	}
	if inputFile == "" {
		return w, nil
	}
	df, err := os.Open(inputFile)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = df.Close()
	}()
	switch filepath.Ext(inputFile) {
	case ".dot", ".gv":
		err = graphviz.Loader().Load(df, w)
	case ".yaml", ".yml":
		err = (&yaml.Service{}).Load(context.Background(), df, w)
	default:
		err = fmt.Errorf("unknown net file type %s", inputFile)
	}
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded net",
		zap.String("file", inputFile),
		zap.Int("places", len(w.Places())),
		zap.Int("transitions", len(w.Transitions())),
	)
	return w, nil
}

func dimension(w *nelson.World, s string) (*nelson.Dimension, error) {
	if s == "" {
		return w.PrimaryDimension().Dimension(), nil
	}
	return w.Dimension(env.ParseDimension(s)...)
}
