package mdarh

// MalformedSequenceError is returned when an annotated sequence has
// unbalanced or nested brackets, an empty domain, or a character that
// is not a letter or bracket.
type MalformedSequenceError struct {
	Reason string
}

func (e *MalformedSequenceError) Error() string {
	return "malformed sequence: " + e.Reason
}

// InvalidPhysicalParameterError is returned when a model parameter or a
// derived physical quantity is non-positive: a zero-mass domain, a
// negative radius, density, or thickness.
type InvalidPhysicalParameterError struct {
	Reason string
}

func (e *InvalidPhysicalParameterError) Error() string {
	return "invalid physical parameter: " + e.Reason
}

// ConformationGenerationError is returned when the chain generator
// fails or returns a conformation whose bead count does not match the
// model.
type ConformationGenerationError struct {
	Reason string
}

func (e *ConformationGenerationError) Error() string {
	return "conformation generation: " + e.Reason
}
