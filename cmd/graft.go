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
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/kgraft/internal/iofs"
	kgraft "github.com/gnames/kgraft/pkg"
	"github.com/gnames/kgraft/pkg/graft"
	"github.com/gnames/kgraft/pkg/namecheck"
	"github.com/gnames/kgraft/pkg/report"
	"github.com/spf13/cobra"
)

func runRoot(cmd *cobra.Command, _ []string) error {
	cfg.Update(flagOptions(cmd))

	err := runGraft()
	if err != nil {
		gn.PrintErrorMessage(err)
	}
	return err
}

func runGraft() error {
	// Argument checks go first, so nothing is read in vain.
	if cfg.Input.FastaPath == "" {
		return requiredFlagError("fasta")
	}
	err := graft.ValidateParent(cfg.Graft.ParentName, cfg.Graft.ParentRank)
	if err != nil {
		return err
	}

	if err = iofs.CheckDestinations(iofs.OutputPaths(cfg)...); err != nil {
		return err
	}

	in, err := iofs.ReadInput(cfg)
	if err != nil {
		return err
	}

	out, err := graft.New(cfg).Graft(in)
	if err != nil {
		return err
	}

	for _, v := range labelAdvice(out) {
		gn.Warn("%s", v)
	}

	var extra []iofs.TextFile
	if cfg.ReportPath != "" {
		r := report.New(
			kgraft.Version, cfg.Graft.RootID, cfg.Graft.ParentName, out,
		)
		data, err := r.Encode()
		if err != nil {
			return iofs.WriteFileError(cfg.ReportPath, err)
		}
		extra = append(extra, iofs.TextFile{
			Path:  cfg.ReportPath,
			Lines: []string{string(data)},
		})
	}

	if err = iofs.WriteOutput(cfg, out, extra...); err != nil {
		return err
	}

	if !cfg.Quiet {
		summary(len(in.Nodes), len(in.Names), out)
	}
	return nil
}

// labelAdvice checks the name of a new parent created by a successful
// graft. There is nothing to check in direct-attach mode.
func labelAdvice(out *graft.Output) []string {
	if out == nil || out.Parent == nil {
		return nil
	}
	return namecheck.New().Check(cfg.Graft.ParentName, out.Parent.Rank)
}

func summary(nodesNum, namesNum int, out *graft.Output) {
	seqNum := int64(len(out.Leaves))
	gn.Info("kgraft version: <em>%s</em>", kgraft.Version)
	gn.Info("Added <em>%s</em> to nodes and names", cfg.Input.FastaPath)
	gn.Info("New sequences are inserted at rank <em>%s</em>", out.LeafRank)
	if out.Parent != nil {
		gn.Info("Expecting 1 (new parent taxon) + %s = %s new lines",
			humanize.Comma(seqNum), humanize.Comma(seqNum+1))
	} else {
		gn.Info("Expecting %s new lines", humanize.Comma(seqNum))
	}
	gn.Info("Added: <em>%s</em> new nodes",
		humanize.Comma(int64(len(out.Nodes)-nodesNum)))
	gn.Info("Added: <em>%s</em> new names",
		humanize.Comma(int64(len(out.Names)-namesNum)))
	gn.Info("Saved <em>%s</em>, <em>%s</em>, <em>%s</em>",
		cfg.Output.NodesPath, cfg.Output.NamesPath, cfg.Output.FastaPath)
}
