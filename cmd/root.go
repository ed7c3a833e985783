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
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/kgraft/internal/iofs"
	"github.com/gnames/kgraft/internal/iologger"
	kgraft "github.com/gnames/kgraft/pkg"
	"github.com/gnames/kgraft/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command. Grafting is the only job of
// kgraft, so the root command runs it directly.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s",
			kgraft.Version, kgraft.Build),
		Use:   "kgraft",
		Short: "Grafts FASTA sequences onto a Kraken taxonomy",
		Long: `kgraft adds sequences from a FASTA file to nodes.dmp and names.dmp
files used by Kraken2, creating a new branch of the taxonomy tree. The
results can be used with 'kraken2-build --add-to-library', so custom
sequences become part of a Kraken2 database.

Every sequence gets a new unique taxon ID and is attached either:
  1. directly beneath the root node (--root), or
  2. beneath a new parent node created under the root
     (--parent-name together with --parent-rank).

Sequence IDs must contain no whitespace and no '|' characters.
New nodes use ranks kingdom, phylum, class, order, family, genus,
species, subspecies; each new node is one rank below its parent.

Three files are created: extended nodes and names files, and a FASTA
file with '|kraken:taxid|' headers. Nothing is written if any check
fails.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (KGRAFT_*)
  3. Config file (~/.config/kgraft/config.yaml)
  4. Built-in defaults

Examples:
  kgraft -n nodes.dmp -m names.dmp -f input.fasta -r 32630
  kgraft -f input.fasta -p new_genus -k genus
  kgraft -f input.fasta --report report.json -w 60`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "kgraft version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for kgraft")

	setFlags(rootCmd)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("KGRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Input configuration
	v.BindEnv("input.nodes_path", "KGRAFT_INPUT_NODES_PATH")
	v.BindEnv("input.names_path", "KGRAFT_INPUT_NAMES_PATH")

	// Output configuration
	v.BindEnv("output.nodes_path", "KGRAFT_OUTPUT_NODES_PATH")
	v.BindEnv("output.names_path", "KGRAFT_OUTPUT_NAMES_PATH")
	v.BindEnv("output.fasta_path", "KGRAFT_OUTPUT_FASTA_PATH")
	v.BindEnv("output.line_width", "KGRAFT_OUTPUT_LINE_WIDTH")

	// Graft configuration
	v.BindEnv("graft.root_id", "KGRAFT_GRAFT_ROOT_ID")

	// Log configuration
	v.BindEnv("log.level", "KGRAFT_LOG_LEVEL")
	v.BindEnv("log.format", "KGRAFT_LOG_FORMAT")
	v.BindEnv("log.destination", "KGRAFT_LOG_DESTINATION")

	v.AutomaticEnv()
}
