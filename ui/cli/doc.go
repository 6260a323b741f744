// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for PasswordClarity using
// Cobra. It resolves configuration, loads reference data and hands the
// actual work to the strength and passphrase packages. CLI code should stay
// thin.
package cli
