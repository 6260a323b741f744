// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for PasswordClarity.
//
// Usage:
//
//	go run . [flags]
//	./passwordclarity [flags]
//
// Without a subcommand this launches the interactive analyzer. See --help
// for the other commands.
package main

import (
	"os"

	"github.com/bkearan/passwordclarity/internal/logging"
	"github.com/bkearan/passwordclarity/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
