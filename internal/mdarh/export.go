package mdarh

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/spatial/r3"
)

// WritePQR writes one sampled conformation as a PQR file, one ATOM
// record per bead, for handoff to visualization tools (PyMOL, VMD,
// APBS). The occupancy column carries zero charge and the radius
// column carries the bead's hydrodynamic radius. Linker beads are
// named LNK, domain beads DOM.
func WritePQR(w io.Writer, beads []Bead, points []r3.Vec) error {
	if len(beads) != len(points) {
		return &ConformationGenerationError{
			Reason: fmt.Sprintf("%d beads but %d centers", len(beads), len(points)),
		}
	}

	for i, b := range beads {
		resName := "LNK"
		if b.Kind == DomainBead {
			resName = "DOM"
		}
		_, err := fmt.Fprintf(w, "ATOM  %5d %-4s %-4s %4d    %8.3f%8.3f%8.3f %7.4f %7.4f\n",
			i+1, "B", resName, i+1,
			points[i].X, points[i].Y, points[i].Z,
			0.0, b.HydrodynamicRadius)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "END")
	return err
}
