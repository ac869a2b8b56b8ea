package igg

// RegionType tags one of the seven canonical variable-domain regions.
type RegionType string

const (
	FR1  RegionType = "FR1"
	CDR1 RegionType = "CDR1"
	FR2  RegionType = "FR2"
	CDR2 RegionType = "CDR2"
	FR3  RegionType = "FR3"
	CDR3 RegionType = "CDR3"
	FR4  RegionType = "FR4"
)

// regionOrder is the fixed left-to-right order regions appear in a
// variable domain.
var regionOrder = [7]RegionType{FR1, CDR1, FR2, CDR2, FR3, CDR3, FR4}

// regionNames maps a region tag to its display name.
var regionNames = map[RegionType]string{
	FR1:  "Framework Region 1",
	CDR1: "Complementarity-Determining Region 1",
	FR2:  "Framework Region 2",
	CDR2: "Complementarity-Determining Region 2",
	FR3:  "Framework Region 3",
	CDR3: "Complementarity-Determining Region 3",
	FR4:  "Framework Region 4",
}

// Region is one annotated stretch of the input sequence. Start/End are
// 0-based half-open offsets into the cleaned sequence.
type Region struct {
	Type  RegionType `json:"type"`
	Name  string     `json:"name"`
	Start int        `json:"start"`
	End   int        `json:"end"`
	Seq   string     `json:"seq"`
}

// NumberingEntry assigns one residue its 1-based position and owning
// region. The numbering table always covers the whole cleaned sequence.
type NumberingEntry struct {
	Position int        `json:"position"`
	Residue  string     `json:"residue"`
	Region   RegionType `json:"region"`
}

// Annotation is the full result of annotating one sequence under one
// numbering scheme. It is a pure function of its inputs and is never
// mutated after creation.
type Annotation struct {
	Seq        string           `json:"seq"`
	Scheme     Scheme           `json:"scheme"`
	Regions    []Region         `json:"regions"`
	Numbering  []NumberingEntry `json:"numbering"`
	Confidence float64          `json:"confidence"`
	Reasoning  []string         `json:"reasoning"`
}

// segment slices the sequence at the computed cut points into the seven
// regions and builds the per-residue numbering table.
//
// The walk is strictly left to right: each region starts where the
// previous one ended, so the output covers the sequence with no gaps or
// overlaps even when short-sequence clamping made the raw cut points
// non-monotonic. A region whose start is already past the end of the
// sequence is skipped; a region whose clamped end falls at or before its
// start is emitted with an empty substring.
func segment(seq string, b boundarySet, scheme Scheme, confidence float64, reasoning []string) *Annotation {
	ends := [7]int{b.fr1End, b.cdr1End, b.fr2End, b.cdr2End, b.fr3End, b.cdr3End, len(seq)}

	regions := make([]Region, 0, len(regionOrder))
	numbering := make([]NumberingEntry, 0, len(seq))

	current := 0
	for i, typ := range regionOrder {
		start := current
		if start >= len(seq) {
			continue
		}

		end := ends[i]
		if end > len(seq) {
			end = len(seq)
		}
		if end < start {
			end = start
		}

		regions = append(regions, Region{
			Type:  typ,
			Name:  regionNames[typ],
			Start: start,
			End:   end,
			Seq:   seq[start:end],
		})
		for p := start; p < end; p++ {
			numbering = append(numbering, NumberingEntry{
				Position: p + 1,
				Residue:  string(seq[p]),
				Region:   typ,
			})
		}

		current = end
	}

	return &Annotation{
		Seq:        seq,
		Scheme:     scheme,
		Regions:    regions,
		Numbering:  numbering,
		Confidence: confidence,
		Reasoning:  reasoning,
	}
}

// Annotate cleans a raw sequence and partitions it into the seven
// canonical regions under the requested numbering scheme. It never
// fails: missing anchors degrade to proportional boundaries with a
// lowered confidence score, and degenerate input produces empty regions.
func Annotate(raw string, scheme Scheme) *Annotation {
	seq := cleanSequence(raw)
	anchors := detectAnchors(seq)
	boundaries, confidence, reasoning := computeBoundaries(anchors, len(seq), scheme)
	return segment(seq, boundaries, scheme, confidence, reasoning)
}
