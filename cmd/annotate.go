package cmd

import (
	"github.com/HarshaSatyavardhan/ig-gemini/internal/igg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// annotateCmd is for partitioning a sequence into its seven variable-domain regions.
var annotateCmd = &cobra.Command{
	Use:                        "annotate [seq]",
	Run:                        igg.AnnotateCmd,
	Short:                      "Annotate a variable-domain sequence with its FR/CDR regions",
	SuggestionsMinimumDistance: 2,
	Example:                    "  igg annotate -s kabat EVQLVESGGGLVQPGGSLRLSCAAS...",
	Long: `Partition an amino-acid sequence into its seven canonical regions
(FR1, CDR1, FR2, CDR2, FR3, CDR3, FR4) under a numbering scheme.

Boundaries are derived from four conserved landmarks: the two cysteines of
the intradomain disulfide bridge, the conserved FR2 tryptophan and the
J-region [W/F]GxG motif. If any landmark is missing the regions fall back
to proportionally scaled defaults and the confidence score drops.`,
	Aliases: []string{"regions", "number"},
}

// set flags
func init() {
	annotateCmd.Flags().StringP("in", "i", "", "input file name of the target sequence <FASTA>")
	annotateCmd.Flags().StringP("out", "o", "", "output file name for the JSON annotation")
	annotateCmd.Flags().StringP("scheme", "s", "imgt", "numbering scheme: imgt, kabat or chothia")
	annotateCmd.Flags().BoolP("numbering", "n", false, "include the per-residue numbering table")
	viper.BindPFlag("scheme", annotateCmd.Flags().Lookup("scheme"))

	RootCmd.AddCommand(annotateCmd)
}
