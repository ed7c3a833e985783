package iofs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/kgraft/pkg/config"
	"github.com/gnames/kgraft/pkg/ent/fasta"
	"github.com/gnames/kgraft/pkg/errcode"
	"github.com/gnames/kgraft/pkg/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	nodesDmp = "1\t|\t1\t|\tno rank\t|\t\t|\t8\t|\t0\t|\t1\t|\t0\t|\t0\t|\t0\t|\t0\t|\t0\t|\t\t|\n" +
		"32630\t|\t1\t|\tspecies\t|\t\t|\t10\t|\t0\t|\t11\t|\t0\t|\t0\t|\t0\t|\t0\t|\t0\t|\t\t|\n"
	namesDmp = "1\t|\troot\t|\t\t|\tscientific name\t|\n" +
		"32630\t|\tsynthetic construct\t|\t\t|\tscientific name\t|\n"
	seqFasta = ">HSVd_1\nACGTACGT\nAC\n>HSVd_2\nTTTT\n"
)

func writeInput(t *testing.T, dir string) *config.Config {
	t.Helper()
	files := map[string]string{
		"nodes.dmp": nodesDmp,
		"names.dmp": namesDmp,
		"in.fasta":  seqFasta,
	}
	for k, v := range files {
		path := filepath.Join(dir, k)
		require.NoError(t, os.WriteFile(path, []byte(v), 0644))
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptInputNodesPath(filepath.Join(dir, "nodes.dmp")),
		config.OptInputNamesPath(filepath.Join(dir, "names.dmp")),
		config.OptInputFastaPath(filepath.Join(dir, "in.fasta")),
		config.OptOutputNodesPath(filepath.Join(dir, "new_nodes.dmp")),
		config.OptOutputNamesPath(filepath.Join(dir, "new_names.dmp")),
		config.OptOutputFastaPath(filepath.Join(dir, "K2.fasta")),
	})
	return cfg
}

func TestReadInput(t *testing.T) {
	cfg := writeInput(t, t.TempDir())

	in, err := ReadInput(cfg)
	require.NoError(t, err)
	require.Len(t, in.Nodes, 2)
	require.Len(t, in.Names, 2)
	require.Len(t, in.Records, 2)
	assert.Equal(t, "species", in.Nodes[1].Rank)
	assert.Equal(t, "synthetic construct", in.Names[1].Label)
	assert.Equal(t, "ACGTACGTAC", in.Records[0].Sequence)
}

func TestReadInput_MissingFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInput(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "in.fasta")))

	_, err := ReadInput(cfg)
	require.Error(t, err)
	assert.Equal(t, errcode.ReadFileError, errcode.Of(err))
}

func TestReadInput_BadNodes(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInput(t, dir)
	path := filepath.Join(dir, "nodes.dmp")
	require.NoError(t, os.WriteFile(path, []byte("abc\t|\t1\t|\tgenus\t|\n"), 0644))

	_, err := ReadInput(cfg)
	require.Error(t, err)
	assert.Equal(t, errcode.ParseNodeError, errcode.Of(err))
}

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInput(t, dir)

	in, err := ReadInput(cfg)
	require.NoError(t, err)
	out, err := graft.New(cfg).Graft(in)
	require.NoError(t, err)

	require.NoError(t, WriteOutput(cfg, out))

	nodes, err := os.ReadFile(cfg.Output.NodesPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(nodes), nodesDmp),
		"existing lines are kept verbatim")
	assert.Contains(t, string(nodes),
		"32631\t|\t32630\t|\tsubspecies\t|\t\t|\t0\t|\t0\t|\t11\t|")

	names, err := os.ReadFile(cfg.Output.NamesPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(names), namesDmp))
	assert.Contains(t, string(names),
		"32632\t|\tHSVd_2\t|\t\t|\tscientific name\t|\n")

	lines, err := ReadLines(cfg.Output.FastaPath)
	require.NoError(t, err)
	assert.Equal(t, []string{
		">HSVd_1|kraken:taxid|32631  HSVd_1",
		"ACGTACGTAC",
		">HSVd_2|kraken:taxid|32632  HSVd_2",
		"TTTT",
	}, lines)

	// sequence data survives the round trip
	recs := fasta.Normalize(lines)
	for i, v := range recs {
		assert.Equal(t, in.Records[i].Sequence, v.Sequence)
	}

	// no temporary files are left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, v := range entries {
		assert.False(t, strings.HasSuffix(v.Name(), ".tmp"), v.Name())
	}
}

func TestWriteOutput_Folded(t *testing.T) {
	dir := t.TempDir()
	cfg := writeInput(t, dir)
	cfg.Update([]config.Option{config.OptOutputLineWidth(4)})

	in, err := ReadInput(cfg)
	require.NoError(t, err)
	out, err := graft.New(cfg).Graft(in)
	require.NoError(t, err)
	require.NoError(t, WriteOutput(cfg, out))

	lines, err := ReadLines(cfg.Output.FastaPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT", "ACGT", "AC"}, lines[1:4])
}

func TestWriteFiles_AllOrNothing(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "missing", "bad.txt")

	err := WriteFiles(
		TextFile{Path: good, Lines: []string{"a"}},
		TextFile{Path: bad, Lines: []string{"b"}},
	)
	require.Error(t, err)
	assert.Equal(t, errcode.WriteFileError, errcode.Of(err))

	_, err = os.Stat(good)
	assert.True(t, os.IsNotExist(err), "no partial output")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFiles_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nodes.dmp")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0644))

	require.NoError(t, WriteFiles(TextFile{Path: path, Lines: []string{"new"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temporary or backup files")
}

func TestWriteFiles_DirectoryDestination(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("old\n"), 0644))
	adir := filepath.Join(dir, "adir")
	require.NoError(t, os.MkdirAll(adir, 0755))
	inner := filepath.Join(adir, "keep.txt")
	require.NoError(t, os.WriteFile(inner, []byte("keep\n"), 0644))

	err := WriteFiles(
		TextFile{Path: good, Lines: []string{"new"}},
		TextFile{Path: adir, Lines: []string{"b"}},
	)
	require.Error(t, err)
	assert.Equal(t, errcode.WriteFileError, errcode.Of(err))

	data, err := os.ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(data), "first file is untouched")

	data, err = os.ReadFile(inner)
	require.NoError(t, err)
	assert.Equal(t, "keep\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteFiles_DuplicatePaths(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	sameA := filepath.Join(dir, "sub", "..", "a.txt")

	err := WriteFiles(
		TextFile{Path: a, Lines: []string{"1"}},
		TextFile{Path: sameA, Lines: []string{"2"}},
	)
	require.Error(t, err)
	assert.Equal(t, errcode.DuplicateOutputError, errcode.Of(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteFiles_RenameFailureRestores(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	c := filepath.Join(dir, "c.txt")
	require.NoError(t, os.WriteFile(a, []byte("old a\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("old b\n"), 0644))

	// the new content of c.txt cannot be moved into place
	rename = func(oldpath, newpath string) error {
		if newpath == c && strings.HasSuffix(oldpath, ".tmp") {
			return os.ErrPermission
		}
		return os.Rename(oldpath, newpath)
	}
	t.Cleanup(func() { rename = os.Rename })

	err := WriteFiles(
		TextFile{Path: a, Lines: []string{"new a"}},
		TextFile{Path: b, Lines: []string{"new b"}},
		TextFile{Path: c, Lines: []string{"new c"}},
	)
	require.Error(t, err)
	assert.Equal(t, errcode.WriteFileError, errcode.Of(err))

	for path, content := range map[string]string{a: "old a\n", b: "old b\n"} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(data), path)
	}
	_, err = os.Stat(c)
	assert.True(t, os.IsNotExist(err), "new file is not left behind")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary or backup files")
}

func TestCheckDestinations(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptOutputNodesPath(filepath.Join(dir, "out.dmp")),
		config.OptOutputNamesPath(filepath.Join(dir, "out.dmp")),
	})
	err := CheckDestinations(OutputPaths(cfg)...)
	assert.Equal(t, errcode.DuplicateOutputError, errcode.Of(err))

	cfg = config.New()
	cfg.Update([]config.Option{config.OptReportPath("K2.fasta")})
	err = CheckDestinations(OutputPaths(cfg)...)
	assert.Equal(t, errcode.DuplicateOutputError, errcode.Of(err))

	assert.NoError(t, CheckDestinations(OutputPaths(config.New())...))
}
