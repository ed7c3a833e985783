// Package namecheck gives advice about a label of a new parent node.
// It never rejects a label, it only finds labels that do not look like
// scientific names of the declared rank.
// This is a pure package - parsing is computation, not I/O.
package namecheck

import (
	"fmt"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/gnames/kgraft/pkg/ent/rank"
)

// Checker compares a label with the rank of its node.
type Checker interface {
	// Check returns warnings about the label, or nil if the label looks
	// like a scientific name of the given rank.
	Check(label, rank string) []string
}

type checker struct {
	parser gnparser.GNparser
}

// New creates a Checker. Botanical code is used to avoid treating names
// like "Aus (Bus)" as subgenera.
func New() Checker {
	pCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	return &checker{parser: gnparser.New(pCfg)}
}

// Check implements Checker interface.
func (c *checker) Check(label, r string) []string {
	if label == "" {
		return nil
	}

	p := c.parser.ParseName(label)
	if p.Virus {
		return nil
	}
	if !p.Parsed {
		return []string{
			fmt.Sprintf("'%s' does not look like a scientific name", label),
		}
	}

	var res []string
	want := Cardinality(r)
	if want > 0 && p.Cardinality != want {
		res = append(res, fmt.Sprintf(
			"'%s' has %d element(s), names of rank '%s' usually have %d",
			label, p.Cardinality, r, want,
		))
	}
	if p.Canonical != nil && p.Canonical.Simple != label {
		res = append(res, fmt.Sprintf(
			"'%s' differs from its canonical form '%s'",
			label, p.Canonical.Simple,
		))
	}
	return res
}

// Cardinality returns the number of name elements expected for a rank:
// uninomials down to genus, binomials for species and trinomials for
// subspecies. It returns 0 for ranks outside of the hierarchy.
func Cardinality(r string) int {
	switch {
	case r == "species":
		return 2
	case r == "subspecies":
		return 3
	case rank.IsKnown(r):
		return 1
	default:
		return 0
	}
}
