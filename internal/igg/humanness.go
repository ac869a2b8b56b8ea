package igg

import (
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// refGermlineVH is the translated human IGHV3-23*01 germline, the most
// common human heavy-chain framework. It is the fixed baseline for the
// identity comparison.
const refGermlineVH = "EVQLLESGGGLVQPGGSLRLSCAASGFTFSSYAMSWVRQAPGKGLEWVSAISGSGGSTYYADSVKGRFTISRDNSKNTLYLQMNSLRAEDTAVYYCAK"

// humanIdentityThreshold is the germline %-identity above which a
// sequence is flagged as human-like.
const humanIdentityThreshold = 85.0

// Humanness is the physicochemical and germline-similarity report for
// one sequence.
type Humanness struct {
	// Identity is the %-identity against the reference germline,
	// compared position by position over the shorter of the two.
	Identity float64 `json:"identity"`

	// Tolerance rescales identity around the human threshold:
	// (identity - 85) / 10. Informational; not clamped to any range.
	Tolerance float64 `json:"tolerance"`

	// MeanHydropathy is the average Kyte-Doolittle value per residue.
	MeanHydropathy float64 `json:"meanHydropathy"`

	// NetCharge is the summed residue charge at neutral pH.
	NetCharge float64 `json:"netCharge"`

	IsHuman bool `json:"isHuman"`
}

// ScoreHumanness cleans a raw sequence and scores it against the
// reference germline. Unknown residue letters contribute zero
// hydropathy and charge rather than aborting.
func ScoreHumanness(raw string) Humanness {
	seq := cleanSequence(raw)

	n := len(seq)
	if len(refGermlineVH) < n {
		n = len(refGermlineVH)
	}
	matches := 0
	for i := 0; i < n; i++ {
		if seq[i] == refGermlineVH[i] {
			matches++
		}
	}

	identity := 0.0
	if n > 0 {
		identity = float64(matches) / float64(n) * 100
	}

	h := Humanness{
		Identity:  identity,
		Tolerance: (identity - humanIdentityThreshold) / 10,
		IsHuman:   identity > humanIdentityThreshold,
	}
	if len(seq) > 0 {
		hydro, charge := propertyVectors(seq)
		h.MeanHydropathy = stat.Mean(hydro, nil)
		h.NetCharge = floats.Sum(charge)
	}
	return h
}

// propertyVectors expands a sequence into parallel per-residue
// hydropathy and charge slices.
func propertyVectors(seq string) (hydro, charge []float64) {
	hydro = make([]float64, len(seq))
	charge = make([]float64, len(seq))
	for i := 0; i < len(seq); i++ {
		p := props(seq[i])
		hydro[i] = p.Hydropathy
		charge[i] = p.Charge
	}
	return hydro, charge
}

// splitFallback are absolute cut points used when the cysteine landmarks
// are absent or out of order.
var splitFallback = [6]int{25, 33, 50, 58, 95, 105}

// splitRegions carves a sequence into the seven regions using a simpler
// anchor-free heuristic than the scheme-aware calculator: fixed widths
// around the first cysteine, the last cysteine and the last "WG". The
// humanness report is the only caller; it has no scheme and no anchor
// set, so the two strategies stay separate.
func splitRegions(seq string) boundarySet {
	firstC := strings.IndexByte(seq, 'C')
	lastC := strings.LastIndexByte(seq, 'C')
	wg := strings.LastIndex(seq, "WG")

	if firstC < 0 || lastC <= firstC {
		b := boundarySet{
			fr1End:  splitFallback[0],
			cdr1End: splitFallback[1],
			fr2End:  splitFallback[2],
			cdr2End: splitFallback[3],
			fr3End:  splitFallback[4],
			cdr3End: splitFallback[5],
		}
		return clampBoundaries(b, len(seq))
	}

	b := boundarySet{
		fr1End:  firstC + 3,
		cdr1End: firstC + 11,
		fr2End:  firstC + 28,
		cdr2End: firstC + 36,
		fr3End:  lastC + 1,
	}
	if wg > b.fr3End {
		b.cdr3End = wg
	} else {
		b.cdr3End = b.fr3End + 9
	}
	return clampBoundaries(b, len(seq))
}

// RegionMetrics is the per-region physicochemical breakdown produced by
// the humanness module's own splitter.
type RegionMetrics struct {
	Region         RegionType `json:"region"`
	Seq            string     `json:"seq"`
	MeanHydropathy float64    `json:"meanHydropathy"`
	NetCharge      float64    `json:"netCharge"`
}

// ScoreHumannessByRegion splits a cleaned sequence with the anchor-free
// heuristic and reports hydropathy and charge per region. Regions that
// fall past the end of a short sequence are omitted.
func ScoreHumannessByRegion(raw string) []RegionMetrics {
	seq := cleanSequence(raw)
	b := splitRegions(seq)
	ends := [7]int{b.fr1End, b.cdr1End, b.fr2End, b.cdr2End, b.fr3End, b.cdr3End, len(seq)}

	metrics := make([]RegionMetrics, 0, len(regionOrder))
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

		m := RegionMetrics{Region: typ, Seq: seq[start:end]}
		if end > start {
			hydro, charge := propertyVectors(seq[start:end])
			m.MeanHydropathy = stat.Mean(hydro, nil)
			m.NetCharge = floats.Sum(charge)
		}
		metrics = append(metrics, m)

		current = end
	}
	return metrics
}
