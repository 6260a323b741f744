// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/bkearan/passwordclarity/internal/config"
	"github.com/bkearan/passwordclarity/internal/i18n"
	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/spf13/cobra"
)

func newProfilesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the scoring profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			active := a.analyzer.Profile().Name
			for _, name := range strength.ProfileNames() {
				p, err := strength.ProfileByName(name)
				if err != nil {
					return err
				}
				label := name
				if name == active {
					label = i18n.T("cli.profile_default", name)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s length x%d (cap %d), +%d per category\n",
					label, p.LengthWeight, p.LengthCap, p.DiversityBonus)
			}
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var system, force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the current settings to a config file",
		Long: `Writes the resolved settings (defaults, environment and flags) to
passwordclarity.yaml in the user config directory, or the system one
with --system. An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			if !force && fileExists(path) {
				return fmt.Errorf("%s already exists, use --force to replace it", path)
			}
			c := a.cfg
			if path, err = config.WriteConfigFile(&c, system); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide config instead of the user one")
	initCmd.Flags().BoolVar(&force, "force", false, "Replace an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}
