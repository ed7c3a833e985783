/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/kgraft/pkg/config"
	"github.com/spf13/cobra"
)

// flagOpt converts a flag set by user to a config option.
type flagOpt func(cmd *cobra.Command) config.Option

func setFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringP("nodes", "n", "",
		`input nodes.dmp file (default "nodes.dmp")`)
	fs.StringP("names", "m", "",
		`input names.dmp file (default "names.dmp")`)
	fs.StringP("fasta", "f", "",
		"input FASTA file, no whitespace or '|' in sequence IDs (required)")
	fs.IntP("root", "r", 0,
		`taxon ID of the node that receives new sequences (default 32630, "synthetic construct")`)
	fs.StringP("parent-name", "p", "",
		"name of a new node grafted beneath the root node")
	fs.StringP("parent-rank", "k", "",
		`rank of the new parent node, required with --parent-name, cannot be "subspecies"`)
	fs.String("out-nodes", "",
		`output nodes.dmp file (default "new_nodes.dmp")`)
	fs.String("out-names", "",
		`output names.dmp file (default "new_names.dmp")`)
	fs.String("out-fasta", "",
		`output FASTA file (default "K2.fasta")`)
	fs.IntP("line-width", "w", 0,
		"fold output sequences to lines of this width, 0 keeps one line")
	fs.String("report", "",
		"write a JSON report about created taxa to this file")
	fs.BoolP("quiet", "q", false,
		"do not print the summary")
}

// flagOptions collects options from flags explicitly set by user, so
// values from config.yaml stay intact for the rest.
func flagOptions(cmd *cobra.Command) []config.Option {
	fns := map[string]flagOpt{
		"nodes": stringOpt(config.OptInputNodesPath, "nodes"),
		"names": stringOpt(config.OptInputNamesPath, "names"),
		"fasta": stringOpt(config.OptInputFastaPath, "fasta"),
		"root": func(cmd *cobra.Command) config.Option {
			i, _ := cmd.Flags().GetInt("root")
			return config.OptGraftRootID(i)
		},
		"parent-name": stringOpt(config.OptGraftParentName, "parent-name"),
		"parent-rank": stringOpt(config.OptGraftParentRank, "parent-rank"),
		"out-nodes":   stringOpt(config.OptOutputNodesPath, "out-nodes"),
		"out-names":   stringOpt(config.OptOutputNamesPath, "out-names"),
		"out-fasta":   stringOpt(config.OptOutputFastaPath, "out-fasta"),
		"line-width": func(cmd *cobra.Command) config.Option {
			i, _ := cmd.Flags().GetInt("line-width")
			return config.OptOutputLineWidth(i)
		},
		"report": stringOpt(config.OptReportPath, "report"),
		"quiet": func(cmd *cobra.Command) config.Option {
			b, _ := cmd.Flags().GetBool("quiet")
			return config.OptQuiet(b)
		},
	}

	var res []config.Option
	for _, name := range flagNames {
		if !cmd.Flags().Changed(name) {
			continue
		}
		res = append(res, fns[name](cmd))
	}
	return res
}

// flagNames keeps options in a stable order.
var flagNames = []string{
	"nodes", "names", "fasta", "root", "parent-name", "parent-rank",
	"out-nodes", "out-names", "out-fasta", "line-width", "report", "quiet",
}

func stringOpt(fn func(string) config.Option, name string) flagOpt {
	return func(cmd *cobra.Command) config.Option {
		s, _ := cmd.Flags().GetString(name)
		return fn(s)
	}
}
