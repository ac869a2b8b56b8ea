// Package cmd is for command line interactions with the igg application
package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "igg",
	Short: `Annotate antibody variable-domain sequences.
Partition a sequence into framework and CDR regions under IMGT, Kabat or
Chothia numbering and score its humanness against a reference germline`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log execution details to stdout")
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}
