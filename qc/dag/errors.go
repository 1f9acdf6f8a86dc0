package dag

import "fmt"

// Public error helpers so callers can assert specific failures.
var (
	ErrBadQubit  = fmt.Errorf("dag: qubit index out of range")
	ErrSpan      = fmt.Errorf("dag: gate spans invalid qubit range")
	ErrBuild     = fmt.Errorf("dag: cannot build due to previous error")
	ErrValidated = fmt.Errorf("dag: already validated, no further mutation")
)
