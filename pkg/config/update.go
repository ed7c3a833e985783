package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (FastaPath, ParentName, ParentRank, Quiet,
// ReportPath, HomeDir).
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	s = c.Input.NodesPath
	if s != "" {
		res = append(res, OptInputNodesPath(s))
	}
	s = c.Input.NamesPath
	if s != "" {
		res = append(res, OptInputNamesPath(s))
	}

	s = c.Output.NodesPath
	if s != "" {
		res = append(res, OptOutputNodesPath(s))
	}
	s = c.Output.NamesPath
	if s != "" {
		res = append(res, OptOutputNamesPath(s))
	}
	s = c.Output.FastaPath
	if s != "" {
		res = append(res, OptOutputFastaPath(s))
	}
	i = c.Output.LineWidth
	if i > 0 {
		res = append(res, OptOutputLineWidth(i))
	}

	i = c.Graft.RootID
	if i > 0 {
		res = append(res, OptGraftRootID(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidNonNegative(name string, i int) bool {
	res := i >= 0
	if !res {
		gn.Warn("<em>%s</em> cannot be negative, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	} else {
		gn.Warn(
			"<em>%s</em> does not support '%s' as a value. "+
				"Valid values are: \n%s\nIgnoring...",
			name, val, strings.Join(lines, "\n"),
		)
		return false
	}
}
