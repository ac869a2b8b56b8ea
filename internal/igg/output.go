package igg

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"text/tabwriter"
)

// Output is the annotation payload written as JSON by the annotate
// command.
type Output struct {
	// Target's name. In >example_VH FASTA its "example_VH"
	Target string `json:"target"`

	// Target's cleaned sequence
	Seq string `json:"seq"`

	Scheme string `json:"scheme"`

	// Time, ex: "2018-01-01 20:41:00"
	Time string `json:"time"`

	// Execution is the number of seconds it took to execute the command
	Execution float64 `json:"execution"`

	Confidence float64  `json:"confidence"`
	Reasoning  []string `json:"reasoning"`

	Regions []Region `json:"regions"`

	// Numbering is included with the --numbering flag
	Numbering []NumberingEntry `json:"numbering,omitempty"`
}

// HumannessOutput is the humanness payload written as JSON by the
// humanness command.
type HumannessOutput struct {
	Target string `json:"target"`
	Seq    string `json:"seq"`
	Time   string `json:"time"`

	Humanness

	// Regions is included with the --regions flag
	Regions []RegionMetrics `json:"regions,omitempty"`
}

// writeJSON marshals a result payload and writes it to the filename
// requested.
func writeJSON(filename string, out interface{}) error {
	output, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize output: %v", err)
	}

	if err := ioutil.WriteFile(filename, output, 0666); err != nil {
		return fmt.Errorf("failed to write output to %s: %v", filename, err)
	}

	return nil
}

// writeRegionTable logs an annotation's regions, confidence and
// reasoning to the writer as a table.
func writeRegionTable(w io.Writer, ann *Annotation) {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "region\tstart\tend\tlength\tsequence\t\n")
	for _, r := range ann.Regions {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n", r.Type, r.Start+1, r.End, r.End-r.Start, r.Seq)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nscheme: %s\nconfidence: %.2f\n", ann.Scheme, ann.Confidence)
	for _, reason := range ann.Reasoning {
		fmt.Fprintf(w, "  - %s\n", reason)
	}
}

// writeNumberingTable logs the per-residue numbering table.
func writeNumberingTable(w io.Writer, ann *Annotation) {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "position\tresidue\tregion\t\n")
	for _, n := range ann.Numbering {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", n.Position, n.Residue, n.Region)
	}
	tw.Flush()
}

// writeHumannessTable logs a humanness report, and the per-region
// breakdown when one was computed.
func writeHumannessTable(w io.Writer, h Humanness, regions []RegionMetrics) {
	human := "no"
	if h.IsHuman {
		human = "yes"
	}
	fmt.Fprintf(w, "germline identity: %.1f%%\n", h.Identity)
	fmt.Fprintf(w, "tolerance: %.2f\n", h.Tolerance)
	fmt.Fprintf(w, "mean hydropathy: %.2f\n", h.MeanHydropathy)
	fmt.Fprintf(w, "net charge: %+.1f\n", h.NetCharge)
	fmt.Fprintf(w, "human-like: %s\n", human)

	if len(regions) == 0 {
		return
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "region\tlength\thydropathy\tcharge\tsequence\t\n")
	for _, m := range regions {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%+.1f\t%s\n", m.Region, len(m.Seq), m.MeanHydropathy, m.NetCharge, m.Seq)
	}
	tw.Flush()
}

// writeSchemeTable logs the supported numbering schemes.
func writeSchemeTable(w io.Writer) {
	notes := map[Scheme]string{
		SchemeIMGT:    "unified numbering across species and chain types; widest CDR2",
		SchemeKabat:   "sequence-variability derived boundaries; longest CDR1",
		SchemeChothia: "structural loop boundaries; shortest CDR1",
	}

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "scheme\tname\tnotes\t\n")
	for _, s := range Schemes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", strings.ToLower(string(s)), s, notes[s])
	}
	tw.Flush()
}
