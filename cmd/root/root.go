package root

import (
	"github.com/spf13/cobra"

	"github.com/sbva-tools/sbva/cmd/sbva"
	"github.com/sbva-tools/sbva/cmd/version"
)

// NewRootCmd builds the sbva-tools CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "sbva-tools",
		Short:   "sbva-tools transforms CNF formulas with Structured Bounded Variable Addition",
		Version: version.String(),
		Long: `sbva-tools implements Structured Bounded Variable Addition, a CNF
preprocessing transformation that discovers matrix-like redundancy between
literals and clauses and replaces it with fresh auxiliary variables.`,
	}

	// add sub-commands
	rootCmd.AddCommand(sbva.NewSBVACommand())
	rootCmd.AddCommand(version.NewVersionCommand())

	return rootCmd
}
