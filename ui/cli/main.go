// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, shared flags and the configuration
// bootstrap every subcommand runs through.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/atotto/clipboard"
	"github.com/bkearan/passwordclarity/buildvars"
	"github.com/bkearan/passwordclarity/internal/config"
	"github.com/bkearan/passwordclarity/internal/i18n"
	"github.com/bkearan/passwordclarity/internal/logging"
	"github.com/bkearan/passwordclarity/internal/passphrase"
	"github.com/bkearan/passwordclarity/internal/refdata"
	"github.com/bkearan/passwordclarity/internal/state"
	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/bkearan/passwordclarity/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const modulePath = "github.com/bkearan/passwordclarity"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// app carries what the commands share: resolved configuration, reference
// data and the terminal hooks tests replace.
type app struct {
	cfgFile       string
	verbose       bool
	printPassword bool

	cfg      config.Config
	cfgUsed  string
	ref      *refdata.Set
	analyzer *strength.Analyzer

	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
	copy         func(string) error
	runTUI       func(tui.Options) error
}

func newApp() *app {
	return &app{
		cfg:          config.Default(),
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
		copy:         clipboard.WriteAll,
		runTUI:       tui.Run,
	}
}

// setup resolves configuration and builds the analyzer. It runs before every
// command except version.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logging.SetDebug(a.verbose)

	var path *string
	if a.cfgFile != "" {
		if _, err := os.Stat(a.cfgFile); err != nil {
			return fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		path = &a.cfgFile
	}

	cfg, used, err := config.LoadConfigWithSource[config.Config](cmd, config.Defaults(), path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.cfgUsed = used

	i18n.Init(cfg.Language)

	ref, err := refdata.Load(cfg.Reference)
	if err != nil {
		return fmt.Errorf("error loading reference data: %w", err)
	}
	a.ref = ref
	a.analyzer = strength.NewAnalyzer(ref, cfg.Scoring.Profile, strength.WithMessages(i18n.FindingMessage))

	logging.Debugf("language=%s profile=%s max_warnings=%d", cfg.Language, cfg.Scoring.Profile, cfg.Display.MaxWarnings)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command.
// Every call builds a fresh command tree, so tests can run it in isolation.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passwordclarity",
		Short: "PasswordClarity shows why a password is weak while you type it.",
		Long: `PasswordClarity classifies every character of a password, looks for
common weaknesses (keyboard walks, sequences, dictionary words, dates)
and turns it all into a score from 0 to 100. It can also suggest
memorable passphrases.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runRoot,
	}
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Display language ("en", "de")`)
	cmd.PersistentFlags().Var(newProfileValue(strength.DefaultProfile), "profile", "Scoring profile (strict, lenient)")
	cmd.PersistentFlags().String("words", "", "Replace the built-in word list with this file")
	cmd.PersistentFlags().String("symbols", "", "Replace the built-in symbol alphabet with this file")
	cmd.Flags().BoolVar(&a.printPassword, "print", false, "Print the accepted password on exit")

	cmd.AddCommand(
		newCheckCmd(a),
		newGenerateCmd(a),
		newProfilesCmd(a),
		newConfigCmd(a),
		newDebugCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// runRoot launches the TUI and reports what the user accepted.
func (a *app) runRoot(cmd *cobra.Command, _ []string) error {
	err := a.runTUI(tui.Options{
		Analyzer:    a.analyzer,
		Generator:   passphrase.New(a.ref, nil),
		MaxWarnings: a.cfg.Display.MaxWarnings,
		Mask:        a.cfg.Display.Mask,
		Copy:        a.copy,
	})
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	secret, ok := state.PasswordCache.Take()
	if !a.printPassword {
		secret.Zero()
		return nil
	}
	if !ok {
		fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.no_password"))
		return nil
	}
	defer secret.Zero()
	return secret.Use(func(b []byte) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.entered", string(b)))
		return err
	})
}

// errNoPassword is returned when check finds nothing to evaluate.
var errNoPassword = errors.New("no password entered")

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out = out + " (" + c + ")"
	}
	if d != "" {
		out = out + " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our module among the dependencies.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort show the commit to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
