package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptInputNodesPath sets the nodes.dmp file to read.
func OptInputNodesPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Nodes Path", s) {
			c.Input.NodesPath = s
		}
	}
}

// OptInputNamesPath sets the names.dmp file to read.
func OptInputNamesPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input Names Path", s) {
			c.Input.NamesPath = s
		}
	}
}

// OptInputFastaPath sets the FASTA file with sequences to graft.
// Runtime-only field - not in ToOptions().
func OptInputFastaPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Input FASTA Path", s) {
			c.Input.FastaPath = s
		}
	}
}

// OptOutputNodesPath sets the location of the extended nodes.dmp.
func OptOutputNodesPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Nodes Path", s) {
			c.Output.NodesPath = s
		}
	}
}

// OptOutputNamesPath sets the location of the extended names.dmp.
func OptOutputNamesPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Names Path", s) {
			c.Output.NamesPath = s
		}
	}
}

// OptOutputFastaPath sets the location of the FASTA file with Kraken
// headers.
func OptOutputFastaPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output FASTA Path", s) {
			c.Output.FastaPath = s
		}
	}
}

// OptOutputLineWidth sets the width of sequence lines in the output FASTA.
// Zero means no folding.
func OptOutputLineWidth(i int) Option {
	return func(c *Config) {
		if isValidNonNegative("Output Line Width", i) {
			c.Output.LineWidth = i
		}
	}
}

// OptGraftRootID sets the taxon ID of the attachment point.
func OptGraftRootID(i int) Option {
	return func(c *Config) {
		if isValidInt("Graft Root ID", i) {
			c.Graft.RootID = i
		}
	}
}

// OptGraftParentName sets the label of a new intermediate node.
// Empty value keeps direct-attach mode.
// Runtime-only field - not in ToOptions().
func OptGraftParentName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		c.Graft.ParentName = s
	}
}

// OptGraftParentRank sets the rank of a new intermediate node.
// The rank is validated by the grafter, not here, because an unusable rank
// must stop the run instead of being ignored.
// Runtime-only field - not in ToOptions().
func OptGraftParentRank(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		c.Graft.ParentRank = s
	}
}

// OptQuiet disables the summary printed after a successful graft.
// Runtime-only field - not in ToOptions().
func OptQuiet(b bool) Option {
	return func(c *Config) {
		c.Quiet = b
	}
}

// OptReportPath sets the location of a JSON report about created nodes.
// Runtime-only field - not in ToOptions().
func OptReportPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report Path", s) {
			c.ReportPath = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
