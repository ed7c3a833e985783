// Package taxdump describes records of NCBI taxonomy dump files used by
// Kraken (nodes.dmp and names.dmp) and converts them from and to text lines.
//
// Fields of a dump line are separated by "\t|\t" and a line ends with "\t|".
// This is a pure package without I/O.
package taxdump

import (
	"strconv"
	"strings"
)

const (
	// FieldSep separates fields of a dump line.
	FieldSep = "\t|\t"
	// LineEnd terminates every dump line.
	LineEnd = "\t|"
	// ScientificName is the name class of grafted names.
	ScientificName = "scientific name"
	// GeneticCode is the genetic code ID given to grafted nodes
	// (bacterial, archaeal and plant plastid code).
	GeneticCode = "11"
)

// Node is a record of nodes.dmp.
type Node struct {
	// ID is the taxon ID of the node.
	ID int
	// ParentID is the taxon ID of the parent node.
	ParentID int
	// Rank is the taxonomic rank of the node.
	Rank string
	// Extra keeps the rest of the fields (EMBL code, division, genetic
	// codes, flags and comments) verbatim.
	Extra []string
}

// Name is a record of names.dmp.
type Name struct {
	// ID is the taxon ID the name belongs to.
	ID int
	// Label is the name itself.
	Label string
	// Unique is a unique variant of the name, often empty.
	Unique string
	// Class is the name class, for example "scientific name".
	Class string
}

// NewNode creates a grafted node, placeholder fields are filled with
// values expected by Kraken.
func NewNode(id, parentID int, rank string) Node {
	return Node{
		ID:       id,
		ParentID: parentID,
		Rank:     rank,
		Extra: []string{
			"",          // EMBL code
			"0",         // division ID
			"0",         // inherited division flag
			GeneticCode, // genetic code ID
			"0",         // inherited genetic code flag
			"0",         // mitochondrial genetic code ID
			"0",         // inherited mitochondrial genetic code flag
			"0",         // GenBank hidden flag
			"0",         // hidden subtree root flag
			"",          // comments
		},
	}
}

// NewName creates a scientific name for a grafted node.
func NewName(id int, label string) Name {
	return Name{
		ID:    id,
		Label: label,
		Class: ScientificName,
	}
}

// Line converts a node to a nodes.dmp line without the line break.
func (n Node) Line() string {
	fields := make([]string, 0, len(n.Extra)+3)
	fields = append(fields,
		strconv.Itoa(n.ID),
		strconv.Itoa(n.ParentID),
		n.Rank,
	)
	fields = append(fields, n.Extra...)
	return strings.Join(fields, FieldSep) + LineEnd
}

// Line converts a name to a names.dmp line without the line break.
func (n Name) Line() string {
	fields := []string{strconv.Itoa(n.ID), n.Label, n.Unique, n.Class}
	return strings.Join(fields, FieldSep) + LineEnd
}

// ParseNode converts a nodes.dmp line to a Node.
func ParseNode(line string) (Node, error) {
	var res Node
	fields := splitLine(line)
	if len(fields) < 3 {
		return res, ParseNodeError(line, errTooFewFields)
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return res, ParseNodeError(line, err)
	}
	parentID, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return res, ParseNodeError(line, err)
	}

	res = Node{
		ID:       id,
		ParentID: parentID,
		Rank:     fields[2],
		Extra:    fields[3:],
	}
	return res, nil
}

// ParseName converts a names.dmp line to a Name.
func ParseName(line string) (Name, error) {
	var res Name
	fields := splitLine(line)
	if len(fields) < 4 {
		return res, ParseNameError(line, errTooFewFields)
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return res, ParseNameError(line, err)
	}

	res = Name{
		ID:     id,
		Label:  fields[1],
		Unique: fields[2],
		Class:  fields[3],
	}
	return res, nil
}

// ParseNodes converts nodes.dmp lines to nodes, skipping blank lines.
func ParseNodes(lines []string) ([]Node, error) {
	res := make([]Node, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n, err := ParseNode(l)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

// ParseNames converts names.dmp lines to names, skipping blank lines.
func ParseNames(lines []string) ([]Name, error) {
	res := make([]Name, 0, len(lines))
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n, err := ParseName(l)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, nil
}

func splitLine(line string) []string {
	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimSuffix(line, LineEnd)
	return strings.Split(line, FieldSep)
}
