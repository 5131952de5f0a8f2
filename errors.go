package identikit

import "fmt"

// InvalidInputError reports an identikit field that failed validation at
// construction time. It identifies the offending field so callers can
// surface actionable messages; the input must be corrected before retrying.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// UnsupportedAlgorithmError reports a requested digest algorithm outside
// the supported set. See SupportedAlgorithms for the valid choices.
type UnsupportedAlgorithmError struct {
	Algorithm HashAlgorithm
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported hash algorithm: %q", string(e.Algorithm))
}
