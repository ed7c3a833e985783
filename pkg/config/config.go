// Package config provides configuration management for kgraft.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Input: nodes_path, names_path
//   - Output: nodes_path, names_path, fasta_path, line_width
//   - Graft: root_id
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Input.FastaPath
//   - Graft.ParentName, Graft.ParentRank
//   - Quiet, ReportPath
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use KGRAFT_ prefix with underscores for nesting:
//
//	KGRAFT_INPUT_NODES_PATH=/data/taxonomy/nodes.dmp
//	KGRAFT_GRAFT_ROOT_ID=32630
//	KGRAFT_LOG_LEVEL=info
package config

// Config represents the complete kgraft configuration.
type Config struct {
	// Input contains locations of the files to read.
	Input InputConfig `mapstructure:"input" yaml:"input"`

	// Output contains locations and layout of the files to write.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Graft describes where new sequences are attached in the taxonomy.
	Graft GraftConfig `mapstructure:"graft" yaml:"graft"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Quiet suppresses the summary printed after a successful graft.
	Quiet bool `mapstructure:"-" yaml:"-"`

	// ReportPath is an optional location of a JSON report that lists
	// every node created by the graft. Empty means no report.
	ReportPath string `mapstructure:"-" yaml:"-"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// InputConfig contains paths to the taxonomy dump and the FASTA file.
type InputConfig struct {
	// NodesPath is the nodes.dmp file to extend.
	NodesPath string `mapstructure:"nodes_path" yaml:"nodes_path"`

	// NamesPath is the names.dmp file to extend.
	NamesPath string `mapstructure:"names_path" yaml:"names_path"`

	// FastaPath is the FASTA file with sequences to graft.
	// It has no default and must be given on the command line.
	FastaPath string `mapstructure:"-" yaml:"-"`
}

// OutputConfig contains paths of the three generated files.
type OutputConfig struct {
	NodesPath string `mapstructure:"nodes_path" yaml:"nodes_path"`
	NamesPath string `mapstructure:"names_path" yaml:"names_path"`
	FastaPath string `mapstructure:"fasta_path" yaml:"fasta_path"`

	// LineWidth folds sequence data of the output FASTA file to lines of
	// the given length. Zero keeps every sequence on a single line.
	LineWidth int `mapstructure:"line_width" yaml:"line_width"`
}

// GraftConfig determines the attachment point of new sequences.
type GraftConfig struct {
	// RootID is the taxon ID of an existing node under which new material
	// is inserted. Default is 32630, NCBI's "synthetic construct".
	RootID int `mapstructure:"root_id" yaml:"root_id"`

	// ParentName is an optional label of a new intermediate node created
	// under RootID. Empty means sequences are attached directly to RootID.
	ParentName string `mapstructure:"-" yaml:"-"`

	// ParentRank is the rank of the new intermediate node. It is required
	// when ParentName is given and cannot be the most specific rank.
	ParentRank string `mapstructure:"-" yaml:"-"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Input: InputConfig{
			NodesPath: "nodes.dmp",
			NamesPath: "names.dmp",
		},
		Output: OutputConfig{
			NodesPath: "new_nodes.dmp",
			NamesPath: "new_names.dmp",
			FastaPath: "K2.fasta",
		},
		Graft: GraftConfig{
			RootID: SyntheticConstructID,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
