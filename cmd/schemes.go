package cmd

import (
	"github.com/HarshaSatyavardhan/ig-gemini/internal/igg"
	"github.com/spf13/cobra"
)

// schemesCmd is for listing the numbering schemes usable with annotate.
// Useful for if the user doesn't know which conventions are available.
var schemesCmd = &cobra.Command{
	Use:                        "schemes",
	Run:                        igg.SchemesCmd,
	Short:                      "List the supported numbering schemes",
	SuggestionsMinimumDistance: 2,
	Long: `List the antibody numbering conventions usable with 'igg annotate'.

'igg annotate --scheme' accepts any of the names logged here.`,
	Aliases: []string{"ls", "list"},
}

// set flags
func init() {
	RootCmd.AddCommand(schemesCmd)
}
