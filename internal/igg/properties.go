package igg

// residueProps are the per-residue physicochemical values used by the
// humanness report: Kyte-Doolittle hydropathy, charge at neutral pH and
// the free amino acid molecular weight (g/mol).
type residueProps struct {
	Hydropathy float64
	Charge     float64
	Mass       float64
}

// properties spans the 20 standard amino acids. Non-standard codes that
// survive cleaning ('X', 'B', 'Z', ...) are scored as zero everywhere
// rather than rejected.
var properties = map[byte]residueProps{
	'A': {1.8, 0, 89.09},
	'R': {-4.5, 1, 174.20},
	'N': {-3.5, 0, 132.12},
	'D': {-3.5, -1, 133.10},
	'C': {2.5, 0, 121.16},
	'Q': {-3.5, 0, 146.15},
	'E': {-3.5, -1, 147.13},
	'G': {-0.4, 0, 75.07},
	'H': {-3.2, 0.1, 155.16},
	'I': {4.5, 0, 131.17},
	'L': {3.8, 0, 131.17},
	'K': {-3.9, 1, 146.19},
	'M': {1.9, 0, 149.21},
	'F': {2.8, 0, 165.19},
	'P': {-1.6, 0, 115.13},
	'S': {-0.8, 0, 105.09},
	'T': {-0.7, 0, 119.12},
	'W': {-0.9, 0, 204.23},
	'Y': {-1.3, 0, 181.19},
	'V': {4.2, 0, 117.15},
}

// props returns the property row for a residue letter. Unknown letters
// get the zero row so scoring degrades silently instead of aborting.
func props(r byte) residueProps {
	return properties[r]
}
