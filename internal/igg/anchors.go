package igg

import "strings"

// anchorNone marks an anchor that wasn't found in the sequence.
const anchorNone = -1

// cdr3MaxLength bounds the backward search for the second conserved
// cysteine from the FR4 motif.
const cdr3MaxLength = 25

// anchorSet holds the positions of the four conserved landmarks of a
// variable domain: the two cysteines of the intradomain disulfide bridge,
// the conserved FR2 tryptophan and the start of the J-region [WF]GxG
// motif. Each position is anchorNone when the landmark wasn't found.
type anchorSet struct {
	cys1     int
	trp41    int
	cys104   int
	fr4      int
	fr4Motif string
}

// complete reports whether all four anchors were found, which is what
// separates the high-confidence boundary branch from the fallback.
func (a anchorSet) complete() bool {
	return a.cys1 != anchorNone &&
		a.trp41 != anchorNone &&
		a.cys104 != anchorNone &&
		a.fr4 != anchorNone
}

// detectAnchors scans a cleaned sequence for the four landmarks.
//
// The FR4 motif is one of W/F followed by G, any residue, G. Only matches
// starting in the last 30% of the sequence qualify, and the last
// qualifying match wins: the motif also shows up spuriously in long CDR3
// loops, so the rightmost hit is the J-region one.
func detectAnchors(seq string) anchorSet {
	anchors := anchorSet{
		cys1:   anchorNone,
		trp41:  anchorNone,
		cys104: anchorNone,
		fr4:    anchorNone,
	}

	// matches don't overlap: the scan resumes past each motif it finds
	for i := 0; i+4 <= len(seq); i++ {
		if seq[i] != 'W' && seq[i] != 'F' {
			continue
		}
		if seq[i+1] != 'G' || seq[i+3] != 'G' {
			continue
		}
		if float64(i) > 0.7*float64(len(seq)) {
			anchors.fr4 = i
			anchors.fr4Motif = seq[i : i+4]
		}
		i += 3
	}

	// The second cysteine sits just upstream of CDR3, so search backward
	// from the FR4 motif within the maximum CDR3 span.
	if anchors.fr4 != anchorNone {
		for i := anchors.fr4 - 1; i >= 0 && i >= anchors.fr4-cdr3MaxLength; i-- {
			if seq[i] == 'C' {
				anchors.cys104 = i
				break
			}
		}
	}

	// The first cysteine is near the end of FR1; a first 'C' deep into
	// the sequence is not the conserved one.
	if i := strings.IndexByte(seq, 'C'); i >= 0 && i <= 30 {
		anchors.cys1 = i
	}

	if anchors.cys1 != anchorNone {
		for i := anchors.cys1 + 10; i < anchors.cys1+25 && i < len(seq); i++ {
			if seq[i] == 'W' {
				anchors.trp41 = i
				break
			}
		}
	}

	return anchors
}
