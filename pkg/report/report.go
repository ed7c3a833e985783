// Package report summarizes a graft as a JSON document that maps sequence
// IDs to their new taxon IDs.
package report

import (
	"github.com/gnames/gnfmt"
	"github.com/gnames/kgraft/pkg/graft"
)

// Report describes taxa created by a graft.
type Report struct {
	// Version of kgraft that created the graft.
	Version string `json:"version"`
	// RootID is the taxon ID of the attachment point.
	RootID int `json:"rootId"`
	// Parent is the new intermediate node, if any.
	Parent *Taxon `json:"parent,omitempty"`
	// Sequences lists one node per sequence, in input order.
	Sequences []Taxon `json:"sequences"`
}

// Taxon is a grafted node together with its name.
type Taxon struct {
	TaxID    int    `json:"taxId"`
	ParentID int    `json:"parentId"`
	Rank     string `json:"rank"`
	Name     string `json:"name"`
}

// New creates a report from the result of a graft.
func New(version string, rootID int, parentName string, out *graft.Output) Report {
	res := Report{
		Version:   version,
		RootID:    rootID,
		Sequences: make([]Taxon, len(out.Leaves)),
	}
	if out.Parent != nil {
		res.Parent = &Taxon{
			TaxID:    out.Parent.ID,
			ParentID: out.Parent.ParentID,
			Rank:     out.Parent.Rank,
			Name:     parentName,
		}
	}
	for i, v := range out.Leaves {
		res.Sequences[i] = Taxon{
			TaxID:    v.ID,
			ParentID: v.ParentID,
			Rank:     v.Rank,
			Name:     out.Labels[i],
		}
	}
	return res
}

// Encode converts the report to pretty-printed JSON.
func (r Report) Encode() ([]byte, error) {
	enc := gnfmt.GNjson{Pretty: true}
	return enc.Encode(r)
}
