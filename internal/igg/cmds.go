// Package igg annotates antibody variable-domain sequences: it partitions
// a raw amino-acid sequence into the seven canonical regions (FR1-FR4,
// CDR1-CDR3) under the IMGT, Kabat or Chothia numbering convention and
// scores sequences for humanness against a reference germline.
package igg

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/HarshaSatyavardhan/ig-gemini/config"
	"github.com/spf13/cobra"
)

// stderr is for logging to the user, bypassing stdout result tables.
var stderr = log.New(os.Stderr, "", 0)

// inputSeq resolves the target name and raw sequence for a command from
// either the first positional argument or the --in FASTA file.
func inputSeq(cmd *cobra.Command, args []string) (name, raw string) {
	if len(args) > 0 {
		return "input", args[0]
	}

	in, _ := cmd.Flags().GetString("in")
	if in == "" {
		cmd.Help()
		stderr.Fatalln("\nno sequence passed.")
	}

	name, raw, err := readFasta(in)
	if err != nil {
		stderr.Fatalln(err)
	}
	return name, raw
}

// AnnotateCmd runs the region annotator against a sequence passed on the
// command line or read from a FASTA file.
func AnnotateCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	scheme, err := ParseScheme(conf.Scheme)
	if err != nil {
		stderr.Fatalln(err)
	}

	target, raw := inputSeq(cmd, args)
	withNumbering, _ := cmd.Flags().GetBool("numbering")
	out, _ := cmd.Flags().GetString("out")

	start := time.Now()
	ann := Annotate(raw, scheme)
	elapsed := time.Since(start)

	if out != "" {
		o := &Output{
			Target:     target,
			Seq:        ann.Seq,
			Scheme:     scheme.String(),
			Time:       time.Now().Format("2006-01-02 15:04:05"),
			Execution:  elapsed.Seconds(),
			Confidence: ann.Confidence,
			Reasoning:  ann.Reasoning,
			Regions:    ann.Regions,
		}
		if withNumbering {
			o.Numbering = ann.Numbering
		}
		if err := writeJSON(out, o); err != nil {
			stderr.Fatalln(err)
		}
		return
	}

	writeRegionTable(os.Stdout, ann)
	if withNumbering {
		fmt.Println()
		writeNumberingTable(os.Stdout, ann)
	}

	if conf.Verbose {
		fmt.Printf("\n%s\n", elapsed)
	}
}

// HumannessCmd runs the humanness analyzer against a sequence passed on
// the command line or read from a FASTA file.
func HumannessCmd(cmd *cobra.Command, args []string) {
	conf := config.New()

	target, raw := inputSeq(cmd, args)
	withRegions, _ := cmd.Flags().GetBool("regions")
	out, _ := cmd.Flags().GetString("out")

	h := ScoreHumanness(raw)
	var regions []RegionMetrics
	if withRegions {
		regions = ScoreHumannessByRegion(raw)
	}

	if out != "" {
		o := &HumannessOutput{
			Target:    target,
			Seq:       cleanSequence(raw),
			Time:      time.Now().Format("2006-01-02 15:04:05"),
			Humanness: h,
			Regions:   regions,
		}
		if err := writeJSON(out, o); err != nil {
			stderr.Fatalln(err)
		}
		return
	}

	writeHumannessTable(os.Stdout, h, regions)

	if conf.Verbose && !h.IsHuman {
		stderr.Printf("identity %.1f%% is below the %.0f%% human-likeness threshold\n", h.Identity, humanIdentityThreshold)
	}
}

// SchemesCmd lists the supported numbering schemes.
func SchemesCmd(cmd *cobra.Command, args []string) {
	writeSchemeTable(os.Stdout)
}
