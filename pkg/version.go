// Package kgraft grafts sequences from a FASTA file onto a Kraken taxonomy
// dump (nodes.dmp and names.dmp).
package kgraft

var (
	// Version of kgraft, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
