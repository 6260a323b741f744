// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bkearan/passwordclarity/internal/config"
	"github.com/bkearan/passwordclarity/internal/i18n"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const envPrefix = "PASSWORDCLARITY_"

func newDebugCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: "Dump debug information about config, env, flags and reference data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- PASSWORDCLARITY DEBUG ---")

			used := a.cfgUsed
			if used == "" {
				used = "(none)"
			}
			fmt.Fprintf(out, "Config file used: %s\n", used)
			for _, system := range []bool{false, true} {
				if p, err := config.GetConfigPath(system); err == nil {
					fmt.Fprintf(out, "Config search path: %s\n", p)
				}
			}

			b, err := json.MarshalIndent(a.cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("could not marshal settings: %w", err)
			}
			fmt.Fprintln(out, "-- settings --")
			fmt.Fprintln(out, string(b))

			fmt.Fprintln(out, "-- reference data --")
			fmt.Fprintf(out, "words = %d\n", len(a.ref.Words))
			fmt.Fprintf(out, "common_passwords = %d\n", len(a.ref.CommonPasswords))
			fmt.Fprintf(out, "keyboard_patterns = %d\n", len(a.ref.KeyboardPatterns))
			fmt.Fprintf(out, "symbols = %s\n", strings.Join(a.ref.Symbols, " "))
			fmt.Fprintf(out, "locales = %s\n", strings.Join(i18n.AvailableLocales(), ", "))

			fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			fmt.Fprintf(out, "-- environment (%s*) --\n", envPrefix)
			var env []string
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, envPrefix) {
					env = append(env, e)
				}
			}
			sort.Strings(env)
			for _, e := range env {
				fmt.Fprintln(out, e)
			}

			fmt.Fprintln(out, "--- END DEBUG ---")
			return nil
		},
	}
}
