package igg

import (
	"path"
	"testing"
)

// reading a FASTA fixture and annotating it end to end should anchor
// all four landmarks and call FR4 at the J-region motif
func TestReadFastaAnnotate(t *testing.T) {
	name, raw, err := readFasta(path.Join("..", "..", "test", "input", "example_VH.fa"))
	if err != nil {
		t.Fatal(err)
	}

	if name != "example_VH" {
		t.Errorf("name = %q, want example_VH", name)
	}

	ann := Annotate(raw, SchemeIMGT)
	if len(ann.Seq) != 120 {
		t.Fatalf("cleaned sequence has %d residues, want 120", len(ann.Seq))
	}
	if ann.Confidence != 0.95 {
		t.Errorf("confidence = %v, want 0.95", ann.Confidence)
	}

	last := ann.Regions[len(ann.Regions)-1]
	if last.Type != FR4 || last.Seq != "WGQGTLVTVSS" {
		t.Errorf("FR4 = %+v, want WGQGTLVTVSS", last)
	}
}

func TestReadFastaMissing(t *testing.T) {
	if _, _, err := readFasta(path.Join("..", "..", "test", "input", "nope.fa")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
