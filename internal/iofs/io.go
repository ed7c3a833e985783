package iofs

import (
	"bufio"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/kgraft/pkg/config"
	"github.com/gnames/kgraft/pkg/ent/fasta"
	"github.com/gnames/kgraft/pkg/ent/taxdump"
	"github.com/gnames/kgraft/pkg/graft"
)

// TextFile is a text file content ready to be written.
type TextFile struct {
	Path  string
	Lines []string
}

// ReadLines reads the whole file at path into memory line by line.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	defer f.Close()

	var res []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	for scanner.Scan() {
		res = append(res, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

// ReadInput reads and parses nodes, names and FASTA files given in the
// configuration.
func ReadInput(cfg *config.Config) (graft.Input, error) {
	var res graft.Input

	lines, err := ReadLines(cfg.Input.NodesPath)
	if err != nil {
		return res, err
	}
	if res.Nodes, err = taxdump.ParseNodes(lines); err != nil {
		return res, err
	}

	if lines, err = ReadLines(cfg.Input.NamesPath); err != nil {
		return res, err
	}
	if res.Names, err = taxdump.ParseNames(lines); err != nil {
		return res, err
	}

	if lines, err = ReadLines(cfg.Input.FastaPath); err != nil {
		return res, err
	}
	res.Records = fasta.Normalize(lines)

	slog.Info("Input is loaded",
		"nodes", len(res.Nodes),
		"names", len(res.Names),
		"sequences", len(res.Records),
	)
	return res, nil
}

// WriteOutput saves extended nodes, names and renamed FASTA records to the
// output locations from the configuration. Extra files are written together
// with them, following the same all-or-nothing rule.
func WriteOutput(
	cfg *config.Config,
	out *graft.Output,
	extra ...TextFile,
) error {
	nodes := make([]string, len(out.Nodes))
	for i, v := range out.Nodes {
		nodes[i] = v.Line()
	}
	names := make([]string, len(out.Names))
	for i, v := range out.Names {
		names[i] = v.Line()
	}

	files := []TextFile{
		{Path: cfg.Output.NodesPath, Lines: nodes},
		{Path: cfg.Output.NamesPath, Lines: names},
		{
			Path:  cfg.Output.FastaPath,
			Lines: fasta.Lines(out.Records, cfg.Output.LineWidth),
		},
	}
	return WriteFiles(append(files, extra...)...)
}

// rename is replaced in tests to simulate failures of the final step.
var rename = os.Rename

var errIsDir = errors.New("destination is a directory")

// OutputPaths returns destinations of all files a run writes.
func OutputPaths(cfg *config.Config) []string {
	res := []string{
		cfg.Output.NodesPath,
		cfg.Output.NamesPath,
		cfg.Output.FastaPath,
	}
	if cfg.ReportPath != "" {
		res = append(res, cfg.ReportPath)
	}
	return res
}

// CheckDestinations makes sure that paths point to different locations
// and that none of them is an existing directory.
func CheckDestinations(paths ...string) error {
	seen := make(map[string]struct{}, len(paths))
	for _, v := range paths {
		key, err := filepath.Abs(v)
		if err != nil {
			key = filepath.Clean(v)
		}
		if _, ok := seen[key]; ok {
			return DuplicateOutputError(v)
		}
		seen[key] = struct{}{}

		info, err := os.Lstat(v)
		if err == nil && info.IsDir() {
			return WriteFileError(v, errIsDir)
		}
	}
	return nil
}

// WriteFiles writes all files or none of them. Content goes to temporary
// files next to the destinations first. Then existing destinations are
// moved aside and replaced. If any replacement fails, destinations that
// were already replaced get their previous content back.
func WriteFiles(files ...TextFile) error {
	paths := make([]string, len(files))
	for i, v := range files {
		paths[i] = v.Path
	}
	if err := CheckDestinations(paths...); err != nil {
		return err
	}

	tmps := make([]string, 0, len(files))
	cleanup := func() {
		for _, v := range tmps {
			_ = os.Remove(v)
		}
	}

	for _, v := range files {
		tmp, err := writeTemp(v)
		if err != nil {
			cleanup()
			return err
		}
		tmps = append(tmps, tmp)
	}

	// backups[i] is empty if files[i] did not exist before.
	backups := make([]string, len(files))
	var done int
	rollback := func() {
		for i := done - 1; i >= 0; i-- {
			if backups[i] == "" {
				_ = os.Remove(files[i].Path)
				continue
			}
			_ = rename(backups[i], files[i].Path)
		}
		if done < len(files) && backups[done] != "" {
			_ = rename(backups[done], files[done].Path)
		}
		cleanup()
	}

	for i, v := range files {
		if _, err := os.Lstat(v.Path); err == nil {
			bak := tmps[i] + ".bak"
			if err = rename(v.Path, bak); err != nil {
				rollback()
				return WriteFileError(v.Path, err)
			}
			backups[i] = bak
		}
		if err := rename(tmps[i], v.Path); err != nil {
			rollback()
			return WriteFileError(v.Path, err)
		}
		done++
	}

	for i, v := range files {
		if backups[i] != "" {
			_ = os.Remove(backups[i])
		}
		slog.Info("File is saved", "path", v.Path, "lines", len(v.Lines))
	}
	return nil
}

func writeTemp(tf TextFile) (string, error) {
	dir, base := filepath.Split(tf.Path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return "", WriteFileError(tf.Path, err)
	}
	path := f.Name()

	w := bufio.NewWriter(f)
	for _, l := range tf.Lines {
		if _, err = w.WriteString(l + "\n"); err != nil {
			break
		}
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(path, 0644)
	}
	if err != nil {
		_ = os.Remove(path)
		return "", WriteFileError(tf.Path, err)
	}
	return path, nil
}
