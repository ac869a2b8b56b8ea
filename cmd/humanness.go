package cmd

import (
	"github.com/HarshaSatyavardhan/ig-gemini/internal/igg"
	"github.com/spf13/cobra"
)

// humannessCmd is for scoring a sequence against the reference human germline.
var humannessCmd = &cobra.Command{
	Use:                        "humanness [seq]",
	Run:                        igg.HumannessCmd,
	Short:                      "Score a sequence's humanness and physicochemical profile",
	SuggestionsMinimumDistance: 2,
	Long: `Compare an amino-acid sequence position-by-position against the human
IGHV3-23 germline and report %-identity, an identity-derived tolerance
score, mean hydropathy and net charge.

Sequences above 85% germline identity are flagged as human-like.`,
	Aliases: []string{"human", "score"},
}

// set flags
func init() {
	humannessCmd.Flags().StringP("in", "i", "", "input file name of the target sequence <FASTA>")
	humannessCmd.Flags().StringP("out", "o", "", "output file name for the JSON report")
	humannessCmd.Flags().BoolP("regions", "r", false, "include a per-region physicochemical breakdown")

	RootCmd.AddCommand(humannessCmd)
}
