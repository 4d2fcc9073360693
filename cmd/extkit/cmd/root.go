// File: root.go
// Title: Root Command
// Description: Builds the extkit command tree, loads the typed settings from
//              an optional configuration file and prepares the logger shared
//              by all subcommands.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/msto63/extkit/core/config"
	exterr "github.com/msto63/extkit/core/error"
	"github.com/msto63/extkit/core/log"
)

// options is the state shared by the root command and its subcommands
type options struct {
	cfgFile  string
	verbose  bool
	settings config.Settings
	logger   *log.Logger
}

// NewRootCmd returns a fresh command tree
func NewRootCmd() *cobra.Command {
	opts := &options{
		settings: config.DefaultSettings(),
		logger:   log.Discard(),
	}

	root := &cobra.Command{
		Use:   "extkit",
		Short: "String, byte and template helpers from the shell",
		Long: `extkit exposes the most useful helpers of the extkit packages on the
command line.

Commands:
  like     - wildcard match of a single value
  find     - print lines matching a wildcard pattern
  format   - fill a positional template
  extract  - recover the arguments of a filled template
  encrypt  - encrypt text with a passphrase
  decrypt  - decrypt a token produced by encrypt
  chunk    - split input into fixed-size blocks
  files    - delete, copy or move many files at once`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML or YAML)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newLikeCmd(opts),
		newFindCmd(opts),
		newFormatCmd(opts),
		newExtractCmd(opts),
		newEncryptCmd(opts),
		newDecryptCmd(opts),
		newChunkCmd(opts),
		newFilesCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree against the process arguments
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// load resolves the settings and builds the logger. Without --config the
// defaults apply; with it, EXTKIT_* variables override file values.
func (o *options) load(stderr io.Writer) error {
	var cfg *config.Config
	if o.cfgFile != "" {
		c, err := config.LoadWithOptions(o.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.DefaultEnvPrefix,
		})
		if err != nil {
			return err
		}
		cfg = c
	}

	settings, err := config.SettingsFrom(cfg)
	if err != nil {
		return err
	}
	if o.verbose {
		settings.LogLevel = log.LevelDebug
	}
	o.settings = settings
	o.logger = settings.Logger(log.Config{Output: stderr, Name: "extkit"})

	if cfg != nil {
		o.logger.Debug("configuration loaded", log.Fields{"path": o.cfgFile})
	}
	return nil
}

// readInput returns the first argument or, when absent, all of stdin
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// passphrase takes the flag value or falls back to EXTKIT_PASSPHRASE
func passphrase(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(config.DefaultEnvPrefix + "_PASSPHRASE"); env != "" {
		return env, nil
	}
	return "", exterr.New("no passphrase: use --passphrase or " + config.DefaultEnvPrefix + "_PASSPHRASE").
		WithCode(exterr.CodeMissingConfig).
		WithOperation("cmd.passphrase")
}

func printError(w io.Writer, err error) {
	st := newStyles(w)
	fmt.Fprintf(w, "%s %v\n", st.err.Render("error:"), err)
}
