// errors.go
package sparkline

import (
	"errors"
	"fmt"
)

// ErrNoValueColumns is returned when a request names no value column at all.
var ErrNoValueColumns = errors.New("at least one value column is required")

// MissingColumnError reports a referenced column that is absent from the
// dataset. It is raised before any derivation work and names the first
// offending column in declaration order.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in dataset", e.Column)
}

// ShapeMismatchError reports a per-series parameter whose length, after
// broadcasting, does not match the number of value columns.
type ShapeMismatchError struct {
	Param string
	Got   int
	Want  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("parameter %q has %d entries, want %d (one per value column)", e.Param, e.Got, e.Want)
}
