// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bkearan/passwordclarity/internal/i18n"
	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/spf13/cobra"
)

// ErrBelowThreshold is returned by check when --fail-under is not met.
var ErrBelowThreshold = errors.New("password below required strength")

// checkReport is the JSON form of a check. The password itself is never
// part of it.
type checkReport struct {
	Score    int              `json:"score"`
	Band     strength.Band    `json:"band"`
	Profile  strength.Profile `json:"profile"`
	Counts   strength.Counts  `json:"counts"`
	Findings []findingReport  `json:"findings"`
}

type findingReport struct {
	strength.Finding
	Penalty int `json:"penalty"`
}

func newCheckCmd(a *app) *cobra.Command {
	var asJSON bool
	var failUnder int

	cmd := &cobra.Command{
		Use:   "check [password]",
		Short: "Score a password and list its weaknesses",
		Long: `Scores a password from 0 to 100 and lists everything that weakened it.
The password is taken from the argument, or read from stdin. On a terminal
it is prompted for without echo, which keeps it out of the shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := a.readCheckInput(cmd, args)
			if err != nil {
				return err
			}

			res := a.analyzer.Evaluate(pw)
			if asJSON {
				if err := writeJSONReport(cmd.OutOrStdout(), res, a.analyzer.Profile()); err != nil {
					return err
				}
			} else {
				writeTextReport(cmd.OutOrStdout(), res)
			}

			if failUnder > 0 && res.Score < failUnder {
				return fmt.Errorf("%w: %s", ErrBelowThreshold, i18n.T("cli.below_threshold", res.Score, failUnder))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	cmd.Flags().IntVar(&failUnder, "fail-under", 0, "Exit non-zero when the score is below this value")
	return cmd
}

// readCheckInput takes the password from args, a no-echo terminal prompt, or
// the first line of stdin, in that order.
func (a *app) readCheckInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && a.isTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), i18n.T("cli.password_prompt"))
		b, err := a.readPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("could not read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("could not read password: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", fmt.Errorf("%w: %s", errNoPassword, i18n.T("cli.no_password"))
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func writeTextReport(w io.Writer, res strength.Result) {
	fmt.Fprintln(w, i18n.T("cli.score", res.Score, i18n.T("band."+res.Band().String())))
	c := res.Counts
	fmt.Fprintln(w, i18n.T("cli.counts", c.Capitals, c.Lowers, c.Numbers, c.Symbols))
	if len(res.Findings) == 0 {
		fmt.Fprintln(w, i18n.T("cli.no_findings"))
		return
	}
	for _, f := range res.Findings {
		fmt.Fprintln(w, i18n.RenderFinding(f))
	}
}

func writeJSONReport(w io.Writer, res strength.Result, p strength.Profile) error {
	findings := make([]findingReport, 0, len(res.Findings))
	for _, f := range res.Findings {
		findings = append(findings, findingReport{Finding: f, Penalty: strength.Penalty(f.Kind)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(checkReport{
		Score:    res.Score,
		Band:     res.Band(),
		Profile:  p,
		Counts:   res.Counts,
		Findings: findings,
	})
}
