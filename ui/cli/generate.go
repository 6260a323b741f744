// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/bkearan/passwordclarity/internal/i18n"
	"github.com/bkearan/passwordclarity/internal/logging"
	"github.com/bkearan/passwordclarity/internal/passphrase"
	"github.com/spf13/cobra"
)

// ErrVerifyFailed is returned when a generated passphrase does not parse back
// into the template it was built from.
var ErrVerifyFailed = errors.New("generated passphrase failed verification")

func newGenerateCmd(a *app) *cobra.Command {
	var (
		count       int
		seed        uint64
		toClipboard bool
		verify      bool
		showPattern bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Suggest memorable passphrases",
		Long: `Builds passphrases from three dictionary words, two two-digit numbers
and two symbols, laid out by one of three templates. The middle word is
upper-cased. --seed makes the output reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 {
				return fmt.Errorf("-n must be at least 1, got %d", count)
			}

			var src rand.Source
			if cmd.Flags().Changed("seed") {
				src = rand.NewPCG(seed, seed)
			}
			gen := passphrase.New(a.ref, src)

			out := cmd.OutOrStdout()
			phrases := make([]string, 0, count)
			for i := 0; i < count; i++ {
				pp, err := gen.Generate()
				if err != nil {
					return err
				}
				phrases = append(phrases, pp.Text)
				fmt.Fprintln(out, pp.Text)

				if showPattern {
					fmt.Fprintln(out, "  "+i18n.T("cli.pattern", pp.Template, pp.Template.Pattern()))
				}
				if verify {
					tpl, _, err := passphrase.Parse(pp.Text, a.ref)
					if err != nil || tpl != pp.Template {
						return fmt.Errorf("%w: %q (%v)", ErrVerifyFailed, pp.Text, err)
					}
					res := a.analyzer.Evaluate(pp.Text)
					fmt.Fprintln(out, "  "+i18n.T("cli.verified", tpl)+", "+
						i18n.T("cli.score", res.Score, i18n.T("band."+res.Band().String())))
				}
			}

			if toClipboard {
				if err := a.copy(strings.Join(phrases, "\n")); err != nil {
					logging.Debugf("clipboard write failed: %v", err)
					return errors.New(i18n.T("tui.copy_failed", err))
				}
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("tui.copied"))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of passphrases to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy the passphrases to the clipboard")
	cmd.Flags().BoolVar(&verify, "verify", false, "Parse each passphrase back and score it")
	cmd.Flags().BoolVar(&showPattern, "show-pattern", false, "Show the template each passphrase follows")
	return cmd
}
