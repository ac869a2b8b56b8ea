package igg

import (
	"fmt"
	"strings"
)

// Scheme is an antibody residue-numbering convention. The three schemes
// share the same four anchors but place the CDR/FR boundaries around them
// differently.
type Scheme string

const (
	SchemeIMGT    Scheme = "imgt"
	SchemeKabat   Scheme = "kabat"
	SchemeChothia Scheme = "chothia"
)

// Schemes are the supported numbering conventions, in display order.
var Schemes = []Scheme{SchemeIMGT, SchemeKabat, SchemeChothia}

// ParseScheme matches a scheme by name, case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	switch Scheme(strings.ToLower(name)) {
	case SchemeIMGT:
		return SchemeIMGT, nil
	case SchemeKabat:
		return SchemeKabat, nil
	case SchemeChothia:
		return SchemeChothia, nil
	}
	return "", fmt.Errorf("unknown numbering scheme %q (options: imgt, kabat, chothia)", name)
}

// String returns the conventional capitalization of the scheme name.
func (s Scheme) String() string {
	switch s {
	case SchemeIMGT:
		return "IMGT"
	case SchemeKabat:
		return "Kabat"
	case SchemeChothia:
		return "Chothia"
	}
	return string(s)
}

// boundarySet holds the six cut points that split a variable domain into
// its seven regions. Each boundary is a half-open interval end; FR4 runs
// from cdr3End to the end of the sequence.
type boundarySet struct {
	fr1End  int
	cdr1End int
	fr2End  int
	cdr2End int
	fr3End  int
	cdr3End int
}

// Confidence scores for the two boundary branches. Anchored boundaries
// are near-certain; proportional fallback boundaries are a guess.
const (
	anchoredConfidence = 0.95
	fallbackConfidence = 0.4
)

// fallbackBase are archetypal boundaries for a 120-residue variable
// domain, scaled linearly to the actual length. cdr3End is not scaled:
// the last 11 residues are reserved for FR4 whatever the length.
var fallbackBase = [5]int{26, 38, 55, 65, 104}

// computeBoundaries derives the region cut points from the anchors. With
// all four anchors present the boundaries are fixed per-scheme offsets
// from the anchor positions; otherwise they are proportionally scaled
// defaults. The returned reasoning strings record, for a human reader,
// what the boundaries were based on.
func computeBoundaries(anchors anchorSet, length int, scheme Scheme) (boundarySet, float64, []string) {
	if !anchors.complete() {
		reasoning := []string{
			"conserved anchors ambiguous or absent; using proportional boundaries scaled from a 120-residue archetype",
		}

		scale := float64(length) / 120.0
		b := boundarySet{
			fr1End:  int(float64(fallbackBase[0]) * scale),
			cdr1End: int(float64(fallbackBase[1]) * scale),
			fr2End:  int(float64(fallbackBase[2]) * scale),
			cdr2End: int(float64(fallbackBase[3]) * scale),
			fr3End:  int(float64(fallbackBase[4]) * scale),
			cdr3End: length - 11,
		}
		return clampBoundaries(b, length), fallbackConfidence, reasoning
	}

	reasoning := []string{
		fmt.Sprintf("first conserved cysteine at position %d", anchors.cys1+1),
		fmt.Sprintf("conserved FR2 tryptophan at position %d", anchors.trp41+1),
		fmt.Sprintf("second conserved cysteine at position %d", anchors.cys104+1),
		fmt.Sprintf("J-region motif %s at position %d", anchors.fr4Motif, anchors.fr4+1),
	}

	var b boundarySet
	switch scheme {
	case SchemeKabat:
		b = boundarySet{
			fr1End:  anchors.cys1 + 7,
			cdr1End: anchors.trp41 - 4,
			fr2End:  anchors.trp41 + 9,
			cdr2End: anchors.trp41 + 24,
			fr3End:  anchors.cys104 + 3,
			cdr3End: anchors.fr4,
		}
	case SchemeChothia:
		b = boundarySet{
			fr1End:  anchors.cys1 + 4,
			cdr1End: anchors.trp41 - 6,
			fr2End:  anchors.trp41 + 11,
			cdr2End: anchors.trp41 + 17,
			fr3End:  anchors.cys104 + 3,
			cdr3End: anchors.fr4,
		}
	default: // IMGT
		b = boundarySet{
			fr1End:  anchors.cys1 + 4,
			cdr1End: anchors.trp41 - 2,
			fr2End:  anchors.trp41 + 14,
			fr3End:  anchors.cys104 + 1,
			cdr3End: anchors.fr4,
		}
		b.cdr2End = b.fr2End + 10
	}
	return clampBoundaries(b, length), anchoredConfidence, reasoning
}

// clampBoundaries forces every cut point into [0, length]. Ordering is
// not enforced here; the segmenter walks left to right and re-clamps, so
// even pathological offset math on very short sequences can't produce
// overlapping regions.
func clampBoundaries(b boundarySet, length int) boundarySet {
	b.fr1End = clamp(b.fr1End, length)
	b.cdr1End = clamp(b.cdr1End, length)
	b.fr2End = clamp(b.fr2End, length)
	b.cdr2End = clamp(b.cdr2End, length)
	b.fr3End = clamp(b.fr3End, length)
	b.cdr3End = clamp(b.cdr3End, length)
	return b
}

func clamp(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
