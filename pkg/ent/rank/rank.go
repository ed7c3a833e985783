// Package rank provides the fixed Linnean hierarchy used for new nodes.
// This is a pure package without I/O.
package rank

import "slices"

// Hierarchy lists ranks available for grafted nodes from the most general to
// the most specific. A new node always gets the rank right below its parent.
var Hierarchy = []string{
	"kingdom",
	"phylum",
	"class",
	"order",
	"family",
	"genus",
	"species",
	"subspecies",
}

// Terminal is the most specific rank, nothing can be grafted below it.
var Terminal = Hierarchy[len(Hierarchy)-1]

// Index returns position of a rank in Hierarchy, or -1 for ranks outside of
// it (for example "no rank" or "clade").
func Index(r string) int {
	return slices.Index(Hierarchy, r)
}

// IsKnown returns true if the rank belongs to Hierarchy.
func IsKnown(r string) bool {
	return Index(r) >= 0
}

// IsTerminal returns true for the most specific rank.
func IsTerminal(r string) bool {
	return r == Terminal
}

// IsAbove returns true if both ranks are known and rank a is more general
// than rank b.
func IsAbove(a, b string) bool {
	ia, ib := Index(a), Index(b)
	if ia < 0 || ib < 0 {
		return false
	}
	return ia < ib
}

// Below returns the rank one level more specific than r.
// It fails if r is unknown or if r is already the terminal rank.
func Below(r string) (string, error) {
	idx := Index(r)
	if idx < 0 {
		return "", UnknownRankError(r)
	}
	if idx == len(Hierarchy)-1 {
		return "", RankExhaustedError(r)
	}
	return Hierarchy[idx+1], nil
}
