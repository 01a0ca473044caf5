// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// packgen generates the closed type grid of the packed package: a typed alias
// for every lane type and one named function for every legal widening,
// narrowing and reinterpreting pair.
//
// Usage:
//
//	packgen --output zz_grid_gen.go --package packed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output  string
		pkgName string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:           "packgen",
		Short:         "Generate the typed lane grid for package packed",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := buildGrid()
			src, err := emit(output, pkgName, g)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			if verbose {
				fmt.Printf("Generated %s: %d aliases, %d promotions, %d demotions, %d reinterpretations\n",
					output, len(g.Scalars), len(g.Promotions), len(g.Demotions), len(g.Casts))
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "zz_grid_gen.go", "Output file")
	flags.StringVarP(&pkgName, "package", "p", "packed", "Package name of the generated file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print a summary of what was generated")
	return cmd
}
