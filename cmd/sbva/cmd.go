// Package sbva wires the Structured Bounded Variable Addition engine
// to a cobra subcommand: read DIMACS CNF from a file or stdin,
// transform it, and write the result (and optionally a proof) back
// out.
package sbva

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	pkgsbva "github.com/sbva-tools/sbva/pkg/sbva"
)

// NewSBVACommand builds the "sbva" subcommand.
func NewSBVACommand() *cobra.Command {
	var (
		verbosity    int
		proofPath    string
		stepsMillion int64
		maxReplace   int
		normalMode   bool
		clsCutoff    int
		litCutoff    int
		countPreserve bool
	)

	cmd := &cobra.Command{
		Use:   "sbva [input] [output]",
		Short: "Transforms a CNF with Structured Bounded Variable Addition",
		Long: `Transforms a CNF formula given in DIMACS format, discovering
matrix-like redundancy between literals and clauses and replacing it with
fresh auxiliary variables. Input and output default to standard streams.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logrus.New()
			switch {
			case verbosity >= 2:
				log.SetLevel(logrus.DebugLevel)
			case verbosity == 1:
				log.SetLevel(logrus.InfoLevel)
			default:
				log.SetLevel(logrus.WarnLevel)
			}

			in, inClose, err := openInput(args)
			if err != nil {
				return err
			}
			defer inClose()

			formula, err := pkgsbva.FromDIMACS(in)
			if err != nil {
				return err
			}
			formula.SetLogger(logrus.NewEntry(log))

			out, outClose, err := openOutput(args)
			if err != nil {
				return err
			}
			defer outClose()

			cfg := pkgsbva.DefaultConfig()
			if stepsMillion > 0 {
				cfg.Steps = stepsMillion * 1_000_000
			}
			cfg.MaxReplacements = maxReplace
			cfg.ClauseCutoff = clsCutoff
			cfg.LitCutoff = litCutoff
			cfg.PreserveModelCount = countPreserve
			cfg.GenerateProof = proofPath != ""

			tb := pkgsbva.ThreeHop
			if normalMode {
				tb = pkgsbva.None
			}

			replacements, err := formula.Run(cfg, tb)
			if err != nil {
				return fmt.Errorf("sbva: %w", err)
			}
			log.WithField("replacements", replacements).Info("sbva finished")

			if err := formula.EmitCNF(out); err != nil {
				return fmt.Errorf("writing transformed cnf: %w", err)
			}

			if proofPath != "" {
				proofFile, err := os.Create(proofPath)
				if err != nil {
					return fmt.Errorf("creating proof file (%s): %w", proofPath, err)
				}
				defer proofFile.Close()
				if err := formula.EmitProof(proofFile); err != nil {
					return fmt.Errorf("writing proof file (%s): %w", proofPath, err)
				}
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&verbosity, "verb", "v", 0, "verbosity level")
	flags.StringVarP(&proofPath, "proof", "p", "", "enable proof generation, writing to PATH")
	flags.Int64VarP(&stepsMillion, "steps", "s", 0, "step budget in millions (0 = unbounded)")
	flags.IntVarP(&maxReplace, "maxreplace", "m", 0, "replacement budget (0 = unlimited)")
	flags.BoolVarP(&normalMode, "normal", "n", false, "select the None tie-break, reverting to original BVA")
	flags.IntVar(&clsCutoff, "clscutoff", 0, "minimum matched clauses required to trigger a replacement")
	flags.IntVar(&litCutoff, "litscutoff", 0, "minimum matched literals required to trigger a replacement")
	flags.BoolVarP(&countPreserve, "countpreserve", "c", false, "emit the model-count preservation clause")

	return cmd
}

func openInput(args []string) (io.Reader, func(), error) {
	if len(args) >= 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("opening input file (%s): %w", args[0], err)
		}
		return f, func() { f.Close() }, nil
	}
	return os.Stdin, func() {}, nil
}

func openOutput(args []string) (io.Writer, func(), error) {
	if len(args) >= 2 && args[1] != "-" {
		f, err := os.Create(args[1])
		if err != nil {
			return nil, nil, fmt.Errorf("creating output file (%s): %w", args[1], err)
		}
		return f, func() { f.Close() }, nil
	}
	return os.Stdout, func() {}, nil
}
