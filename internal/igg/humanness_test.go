package igg

import (
	"math"
	"strings"
	"testing"
)

// The reference germline scored against itself is 100% identical and
// flagged human.
func TestScoreHumannessReference(t *testing.T) {
	h := ScoreHumanness(refGermlineVH)

	if h.Identity != 100.0 {
		t.Errorf("identity = %v, want 100.0", h.Identity)
	}
	if !h.IsHuman {
		t.Error("reference germline not flagged human")
	}
	if math.Abs(h.Tolerance-1.5) > 1e-9 {
		t.Errorf("tolerance = %v, want 1.5", h.Tolerance)
	}
}

// Identity is compared over the shorter of the two sequences; extra
// residues on either side are neither penalized nor rewarded.
func TestScoreHumannessLengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{
			"prefix of the reference",
			refGermlineVH[:10],
			100.0,
		},
		{
			"longer than the reference",
			refGermlineVH + "WGQGTLVTVSS",
			100.0,
		},
		{
			"no matches",
			"PPPPPPPPPP",
			0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScoreHumanness(tt.seq).Identity; got != tt.want {
				t.Errorf("identity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreHumannessCharge(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		want float64
	}{
		{"balanced", "KKDD", 0},
		{"basic", "KRK", 3},
		{"acidic", "DEDE", -4},
		{"histidine partial", "HH", 0.2},
		{"unknown letters are neutral", "XXBB", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreHumanness(tt.seq).NetCharge
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("net charge of %s = %v, want %v", tt.seq, got, tt.want)
			}
		})
	}
}

func TestScoreHumannessHydropathy(t *testing.T) {
	// I and V sit at 4.5 and 4.2 on the Kyte-Doolittle scale
	got := ScoreHumanness("IV").MeanHydropathy
	if math.Abs(got-4.35) > 1e-9 {
		t.Errorf("mean hydropathy = %v, want 4.35", got)
	}

	// unknown letters contribute zero, they don't abort scoring
	got = ScoreHumanness("XX").MeanHydropathy
	if got != 0 {
		t.Errorf("mean hydropathy of XX = %v, want 0", got)
	}
}

// Degenerate input must not divide by zero.
func TestScoreHumannessEmpty(t *testing.T) {
	h := ScoreHumanness("")
	if h.Identity != 0 || h.IsHuman {
		t.Errorf("empty sequence scored %+v, want zero identity and not human", h)
	}
	if h.MeanHydropathy != 0 || h.NetCharge != 0 {
		t.Errorf("empty sequence has non-zero physicochemical values: %+v", h)
	}
}

// The anchor-free splitter carves around the cysteines and the last
// "WG"; its regions must still tile the sequence in order.
func TestScoreHumannessByRegion(t *testing.T) {
	metrics := ScoreHumannessByRegion(vhSeq)

	if len(metrics) != 7 {
		t.Fatalf("got %d regions, want 7", len(metrics))
	}

	var rebuilt strings.Builder
	for _, m := range metrics {
		rebuilt.WriteString(m.Seq)
	}
	if rebuilt.String() != vhSeq {
		t.Errorf("regions rebuild %q, want the input sequence", rebuilt.String())
	}

	if metrics[5].Region != CDR3 || metrics[5].Seq != "ARDYYGSSWYFDV" {
		t.Errorf("CDR3 = %+v, want ARDYYGSSWYFDV", metrics[5])
	}
	if metrics[6].Region != FR4 || metrics[6].Seq != "WGQGTLVTVSS" {
		t.Errorf("FR4 = %+v, want WGQGTLVTVSS", metrics[6])
	}
}

// Without usable cysteines the splitter falls back to absolute offsets.
func Test_splitRegionsFallback(t *testing.T) {
	seq := strings.Repeat("A", 120)
	b := splitRegions(seq)

	want := boundarySet{25, 33, 50, 58, 95, 105}
	if b != want {
		t.Errorf("splitRegions() = %+v, want %+v", b, want)
	}

	// short sequences clamp the absolute offsets
	short := splitRegions("AGAGAGAGAG")
	if short.fr1End != 10 || short.cdr3End != 10 {
		t.Errorf("short fallback = %+v, want everything clamped to 10", short)
	}
}

// A misordered cysteine pair (first == last) is treated as absent.
func Test_splitRegionsMisorderedCysteines(t *testing.T) {
	seq := strings.Repeat("A", 60) + "C" + strings.Repeat("A", 59)
	b := splitRegions(seq)

	want := boundarySet{25, 33, 50, 58, 95, 105}
	if b != want {
		t.Errorf("splitRegions() = %+v, want the absolute fallback %+v", b, want)
	}
}
