// Package feeder resolves the ordered identifier sequence a run tests
// against. Exactly one of three mutually exclusive sources supplies the
// sequence, in priority order: an explicit inline list, an identifier file,
// or a synthetically generated sequence.
package feeder

import (
	"errors"

	"github.com/jaguzmanb1/meliload/internal/meliid"
)

// ErrNoSource is returned when no configured source yields any identifier.
var ErrNoSource = errors.New("no identifier source configured")

// Source describes the candidate identifier sources for a run.
type Source struct {
	// Inline identifiers are used verbatim, in order.
	Inline []string
	// FilePath points at a newline-delimited text file, or a .json file
	// holding an array of identifiers (or of objects with an "id" field)
	// or an object keyed by identifier.
	FilePath string
	// Synthetic is the number of generated sequential identifiers.
	Synthetic int
}

// Resolve returns the identifier sequence from the highest-priority
// configured source. It fails if the winning source yields no identifiers,
// or with ErrNoSource if nothing is configured.
func Resolve(src Source) ([]string, error) {
	switch {
	case len(src.Inline) > 0:
		return src.Inline, nil
	case src.FilePath != "":
		return loadFile(src.FilePath)
	case src.Synthetic > 0:
		return meliid.Sequence(src.Synthetic), nil
	}
	return nil, ErrNoSource
}
