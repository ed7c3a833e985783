// Package fasta parses FASTA sequences and renders them with Kraken
// taxonomy headers.
package fasta

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const (
	// HeaderMark starts every header line.
	HeaderMark = ">"
	// KrakenMark separates a sequence ID from the taxon ID in a header
	// understood by kraken2-build.
	KrakenMark = "|kraken:taxid|"
)

// Record represents a single FASTA record.
type Record struct {
	// ID is the header text after '>'.
	ID string
	// Sequence is the sequence data with line breaks and whitespace
	// removed.
	Sequence string
}

// Normalize converts lines of a FASTA file into records. Sequence lines
// are trimmed and concatenated, so folded and single-line inputs give the
// same result. Lines that precede the first header do not belong to any
// record and are ignored.
func Normalize(lines []string) []Record {
	var res []Record
	var current *Record
	var seq strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		current.Sequence = seq.String()
		res = append(res, *current)
		seq.Reset()
	}

	for _, line := range lines {
		if strings.HasPrefix(line, HeaderMark) {
			flush()
			id := strings.TrimRight(line[len(HeaderMark):], " \t\r")
			current = &Record{ID: id}
			continue
		}
		if current == nil {
			continue
		}
		seq.WriteString(strings.TrimSpace(line))
	}
	flush()

	return res
}

// Parse reads FASTA records from r.
func Parse(r io.Reader) ([]Record, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Normalize(lines), nil
}

// IsValidID returns true if the ID is not empty and has neither whitespace
// nor '|' characters. Such characters would break Kraken headers and
// names.dmp fields.
func IsValidID(id string) bool {
	if id == "" {
		return false
	}
	return !strings.ContainsAny(id, " \t\r\n\v\f|")
}

// KrakenHeader creates a header that embeds the taxon ID in a form
// recognized by kraken2-build, keeping the original ID as a description.
func KrakenHeader(id string, taxID int) string {
	return id + KrakenMark + strconv.Itoa(taxID) + "  " + id
}

// TaxID extracts a taxon ID from a Kraken header. It returns false if the
// header has no Kraken mark.
func TaxID(header string) (int, bool) {
	_, rest, ok := strings.Cut(header, KrakenMark)
	if !ok {
		return 0, false
	}
	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		rest = rest[:idx]
	}
	res, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return res, true
}

// Fold splits a sequence into lines of the given width. Width that is not
// positive keeps the sequence on a single line.
func Fold(seq string, width int) []string {
	if width <= 0 || len(seq) <= width {
		return []string{seq}
	}
	res := make([]string, 0, len(seq)/width+1)
	for len(seq) > width {
		res = append(res, seq[:width])
		seq = seq[width:]
	}
	if seq != "" {
		res = append(res, seq)
	}
	return res
}

// Lines renders records as FASTA lines without line breaks.
func Lines(recs []Record, width int) []string {
	res := make([]string, 0, 2*len(recs))
	for _, v := range recs {
		res = append(res, HeaderMark+v.ID)
		res = append(res, Fold(v.Sequence, width)...)
	}
	return res
}
