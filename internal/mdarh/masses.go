package mdarh

// defaultAminoacidMasses maps single letter residue codes to residue
// masses in Dalton. Ambiguity and placeholder codes (B, J, O, U, X, Z)
// resolve to zero mass rather than erroring out; callers can override
// any entry per prediction. The map itself is never mutated.
var defaultAminoacidMasses = map[byte]float64{
	'A': 71.08,
	'C': 103.14,
	'D': 115.09,
	'E': 129.12,
	'F': 147.18,
	'G': 57.06,
	'H': 137.15,
	'I': 113.17,
	'K': 128.18,
	'L': 113.17,
	'M': 131.21,
	'N': 114.11,
	'P': 97.12,
	'Q': 128.41,
	'R': 156.2,
	'S': 87.08,
	'T': 101.11,
	'V': 99.14,
	'W': 186.21,
	'Y': 163.18,
	'Z': 0,
	'O': 0,
	'U': 0,
	'J': 0,
	'X': 0,
	'B': 0,
}

// DefaultAminoacidMasses returns a copy of the built-in residue mass
// table, keyed by single letter code.
func DefaultAminoacidMasses() map[string]float64 {
	masses := make(map[string]float64, len(defaultAminoacidMasses))
	for code, mass := range defaultAminoacidMasses {
		masses[string(code)] = mass
	}
	return masses
}

// residueMass resolves one residue code against the per-call override
// map, falling back to the built-in table. Unknown residues weigh
// nothing.
func residueMass(code byte, overrides map[string]float64) float64 {
	if overrides != nil {
		if mass, ok := overrides[string(code)]; ok {
			return mass
		}
	}
	return defaultAminoacidMasses[code]
}
