package graft

import (
	"log/slog"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/kgraft/pkg/config"
	"github.com/gnames/kgraft/pkg/ent/fasta"
	"github.com/gnames/kgraft/pkg/ent/rank"
	"github.com/gnames/kgraft/pkg/ent/taxdump"
)

type grafter struct {
	rootID     int
	parentName string
	parentRank string
}

// New creates a Grafter that uses the attachment point and the optional
// new parent from the configuration.
func New(cfg *config.Config) Grafter {
	return &grafter{
		rootID:     cfg.Graft.RootID,
		parentName: cfg.Graft.ParentName,
		parentRank: cfg.Graft.ParentRank,
	}
}

// Graft implements the Grafter interface.
func (g *grafter) Graft(in Input) (*Output, error) {
	err := ValidateParent(g.parentName, g.parentRank)
	if err != nil {
		return nil, err
	}

	wantsNewParent := g.parentName != ""
	parentRank := g.parentRank
	if !wantsNewParent && parentRank != "" {
		gn.Warn(
			"Rank <em>%s</em> is ignored, there is no new parent name",
			parentRank,
		)
		parentRank = ""
	}

	if err = ValidateRecords(in.Records); err != nil {
		return nil, err
	}

	leafRank, err := ResolveAttachmentRank(in.Nodes, g.rootID, parentRank)
	if err != nil {
		return nil, err
	}
	slog.Info("Resolved rank of new sequences",
		"root_id", g.rootID, "rank", leafRank)

	if wantsNewParent {
		g.checkParentPlacement(in.Nodes)
	}

	if len(in.Records) == 0 {
		gn.Warn("FASTA input has no sequences")
	}

	alloc := AllocateIdentifiers(in.Nodes, wantsNewParent, len(in.Records))
	slog.Info("Allocated taxon IDs",
		"parent_id", alloc.ParentID,
		"first_child_id", alloc.FirstChildID,
		"last_child_id", alloc.LastChildID,
	)

	renamed, ids, labels := Rename(in.Records, alloc.FirstChildID)

	leafParent := g.rootID
	var nodeEntries []NodeEntry
	var nameEntries []NameEntry
	if wantsNewParent {
		leafParent = alloc.ParentID
		nodeEntries = append(nodeEntries, NodeEntry{
			ID:       alloc.ParentID,
			ParentID: g.rootID,
			Rank:     parentRank,
		})
		nameEntries = append(nameEntries, NameEntry{
			ID:    alloc.ParentID,
			Label: g.parentName,
		})
	}

	leaves := make([]taxdump.Node, 0, len(ids))
	for i, id := range ids {
		ne := NodeEntry{ID: id, ParentID: leafParent, Rank: leafRank}
		nodeEntries = append(nodeEntries, ne)
		nameEntries = append(nameEntries, NameEntry{ID: id, Label: labels[i]})
		leaves = append(leaves, taxdump.NewNode(ne.ID, ne.ParentID, ne.Rank))
	}

	res := &Output{
		Nodes:    BuildNodes(in.Nodes, nodeEntries),
		Names:    BuildNames(in.Names, nameEntries),
		Records:  renamed,
		Leaves:   leaves,
		Labels:   labels,
		LeafRank: leafRank,
	}
	if wantsNewParent {
		p := taxdump.NewNode(alloc.ParentID, g.rootID, parentRank)
		res.Parent = &p
	}
	return res, nil
}

// checkParentPlacement warns when a new parent is not more specific than
// the root. Such placement is allowed, the rank of the new parent is only
// checked against the hierarchy.
func (g *grafter) checkParentPlacement(nodes []taxdump.Node) {
	root, ok := FindNode(nodes, g.rootID)
	if !ok || !rank.IsKnown(root.Rank) {
		return
	}
	if !rank.IsAbove(root.Rank, g.parentRank) {
		gn.Warn(
			"New parent rank <em>%s</em> is not below root rank <em>%s</em>",
			g.parentRank, root.Rank,
		)
	}
}

// FindNode returns the node with the given taxon ID.
func FindNode(nodes []taxdump.Node, id int) (taxdump.Node, bool) {
	for _, v := range nodes {
		if v.ID == id {
			return v, true
		}
	}
	return taxdump.Node{}, false
}

// ResolveAttachmentRank returns the rank for new sequence nodes. The root
// node must exist. If parentRank is given, sequences go one level below it,
// otherwise one level below the root.
func ResolveAttachmentRank(
	nodes []taxdump.Node,
	rootID int,
	parentRank string,
) (string, error) {
	root, ok := FindNode(nodes, rootID)
	if !ok {
		return "", RootNotFoundError(rootID)
	}
	if parentRank != "" {
		return rank.Below(parentRank)
	}
	return rank.Below(root.Rank)
}

// ValidateParent checks the combination of a new parent name and rank.
// A terminal rank is rejected even without a name.
func ValidateParent(name, parentRank string) error {
	if name != "" && parentRank == "" {
		return MissingRequiredArgumentError("parent-rank", "parent-name")
	}
	if rank.IsTerminal(parentRank) {
		return InvalidParentRankError(parentRank)
	}
	if parentRank != "" && !rank.IsKnown(parentRank) {
		return InvalidParentRankError(parentRank)
	}
	if strings.ContainsAny(name, "\t|\n\r") {
		return InvalidLabelError(name)
	}
	return nil
}

// ValidateRecords checks that sequence IDs can be used as names and Kraken
// headers, and that they are unique.
func ValidateRecords(recs []fasta.Record) error {
	seen := make(map[string]struct{}, len(recs))
	for _, v := range recs {
		if !fasta.IsValidID(v.ID) {
			return InvalidSequenceIDError(v.ID)
		}
		if _, ok := seen[v.ID]; ok {
			return DuplicateSequenceIDError(v.ID)
		}
		seen[v.ID] = struct{}{}
	}
	return nil
}
