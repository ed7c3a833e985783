package graft

import (
	"github.com/gnames/kgraft/pkg/ent/fasta"
	"github.com/gnames/kgraft/pkg/ent/taxdump"
)

// MaxID returns the largest taxon ID among nodes, or 0 for an empty
// collection. The order of nodes does not matter.
func MaxID(nodes []taxdump.Node) int {
	var res int
	for _, v := range nodes {
		res = max(res, v.ID)
	}
	return res
}

// AllocateIdentifiers reserves taxon IDs above every existing one. A new
// parent gets the first free ID, count sequences get consecutive IDs after
// it.
func AllocateIdentifiers(
	nodes []taxdump.Node,
	wantsNewParent bool,
	count int,
) Allocation {
	var res Allocation
	free := MaxID(nodes) + 1
	if wantsNewParent {
		res.ParentID = free
		free++
	}
	res.FirstChildID = free
	res.LastChildID = free + max(count, 0) - 1
	return res
}

// BuildNodes returns a copy of existing nodes extended by new ones.
func BuildNodes(
	existing []taxdump.Node,
	entries []NodeEntry,
) []taxdump.Node {
	res := make([]taxdump.Node, len(existing), len(existing)+len(entries))
	copy(res, existing)
	for _, v := range entries {
		res = append(res, taxdump.NewNode(v.ID, v.ParentID, v.Rank))
	}
	return res
}

// BuildNames returns a copy of existing names extended by new ones.
func BuildNames(
	existing []taxdump.Name,
	entries []NameEntry,
) []taxdump.Name {
	res := make([]taxdump.Name, len(existing), len(existing)+len(entries))
	copy(res, existing)
	for _, v := range entries {
		res = append(res, taxdump.NewName(v.ID, v.Label))
	}
	return res
}

// Rename gives records Kraken headers with consecutive taxon IDs starting
// at firstID. It returns renamed records together with assigned IDs and
// original sequence IDs, all in input order.
func Rename(
	recs []fasta.Record,
	firstID int,
) ([]fasta.Record, []int, []string) {
	renamed := make([]fasta.Record, 0, len(recs))
	ids := make([]int, 0, len(recs))
	labels := make([]string, 0, len(recs))
	id := firstID
	for _, v := range recs {
		renamed = append(renamed, fasta.Record{
			ID:       fasta.KrakenHeader(v.ID, id),
			Sequence: v.Sequence,
		})
		ids = append(ids, id)
		labels = append(labels, v.ID)
		id++
	}
	return renamed, ids, labels
}
