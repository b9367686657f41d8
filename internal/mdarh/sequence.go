// Package mdarh predicts the hydrodynamic radius of an intrinsically
// disordered protein from its annotated sequence using the minimum
// dissipation approximation (MDA).
//
// A sequence like "MGSS[HHHHHH]SSGLVPR" is coarse-grained into a bead
// chain: one bead per linker residue, one bead per bracketed domain.
// Conformations of that chain are sampled, the MDA is evaluated on each
// one, and the per-conformation estimates are averaged with a bootstrap
// error bar.
package mdarh

import (
	"fmt"
	"strings"
)

// segmentKind tags a run of residues as disordered linker or folded domain.
type segmentKind int

const (
	linkerSegment segmentKind = iota
	domainSegment
)

// segment is a contiguous run of residues sharing one kind. Segments
// cover the input sequence exactly, in order.
type segment struct {
	kind     segmentKind
	residues string
}

// parseAnnotated splits a bracket-annotated sequence into ordered
// segments. Residues outside brackets form linker segments, each
// bracket pair forms exactly one domain segment. Adjacent unbracketed
// runs merge; adjacent bracket pairs stay separate domains, since each
// represents a separately folded module. Input is case-insensitive.
func parseAnnotated(sequence string) ([]segment, error) {
	sequence = strings.ToUpper(sequence)

	var segments []segment
	var run strings.Builder // residues of the segment being scanned
	inDomain := false

	flushLinker := func() {
		if run.Len() > 0 {
			segments = append(segments, segment{linkerSegment, run.String()})
			run.Reset()
		}
	}

	for i := 0; i < len(sequence); i++ {
		c := sequence[i]
		switch {
		case c == '[':
			if inDomain {
				return nil, &MalformedSequenceError{Reason: fmt.Sprintf("nested bracket at position %d", i)}
			}
			flushLinker()
			inDomain = true
		case c == ']':
			if !inDomain {
				return nil, &MalformedSequenceError{Reason: fmt.Sprintf("unmatched closing bracket at position %d", i)}
			}
			if run.Len() == 0 {
				return nil, &MalformedSequenceError{Reason: fmt.Sprintf("empty domain at position %d", i)}
			}
			segments = append(segments, segment{domainSegment, run.String()})
			run.Reset()
			inDomain = false
		case c >= 'A' && c <= 'Z':
			run.WriteByte(c)
		default:
			return nil, &MalformedSequenceError{Reason: fmt.Sprintf("invalid character %q at position %d", c, i)}
		}
	}

	if inDomain {
		return nil, &MalformedSequenceError{Reason: "unclosed bracket"}
	}
	flushLinker()

	if len(segments) == 0 {
		return nil, &MalformedSequenceError{Reason: "empty sequence"}
	}

	return segments, nil
}
