// Package graft attaches FASTA sequences to a Kraken taxonomy dump.
//
// Every sequence becomes a new leaf node with a fresh taxon ID. Leaves are
// attached either directly to an existing root node, or to a new
// intermediate parent node created under the root. All functions are pure:
// they never modify their inputs and return new collections instead.
package graft

import (
	"github.com/gnames/kgraft/pkg/ent/fasta"
	"github.com/gnames/kgraft/pkg/ent/taxdump"
)

// Grafter extends a taxonomy dump with new sequences.
type Grafter interface {
	// Graft validates the input, allocates taxon IDs and returns extended
	// copies of the nodes, names and renamed sequence records. No output is
	// produced if any precondition fails.
	Graft(in Input) (*Output, error)
}

// Input contains parsed content of the three input files.
type Input struct {
	Nodes   []taxdump.Node
	Names   []taxdump.Name
	Records []fasta.Record
}

// Output contains the extended collections and details about new taxa.
type Output struct {
	// Nodes are the input nodes followed by grafted ones.
	Nodes []taxdump.Node
	// Names are the input names followed by grafted ones.
	Names []taxdump.Name
	// Records are input records with Kraken headers.
	Records []fasta.Record

	// Parent is the new intermediate node, nil in direct-attach mode.
	Parent *taxdump.Node
	// Leaves are the nodes created for sequences, in input order.
	Leaves []taxdump.Node
	// Labels are the original sequence IDs, parallel to Leaves.
	Labels []string
	// LeafRank is the rank given to all leaves.
	LeafRank string
}

// NewNodesNum returns the number of created nodes.
func (o *Output) NewNodesNum() int {
	res := len(o.Leaves)
	if o.Parent != nil {
		res++
	}
	return res
}

// NodeEntry describes a node to append to a nodes collection.
type NodeEntry struct {
	ID       int
	ParentID int
	Rank     string
}

// NameEntry describes a name to append to a names collection.
type NameEntry struct {
	ID    int
	Label string
}

// Allocation keeps taxon IDs reserved for a graft.
type Allocation struct {
	// ParentID is the ID of a new intermediate node, 0 if none requested.
	ParentID int
	// FirstChildID is the ID of the first sequence node, the rest follow
	// consecutively.
	FirstChildID int
	// LastChildID is the ID of the last sequence node. It is smaller than
	// FirstChildID when there are no sequences.
	LastChildID int
}
