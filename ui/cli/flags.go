// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/spf13/pflag"
)

// profileValue is a pflag.Value that only accepts registered profile names,
// so typos fail at flag parsing instead of after config resolution.
type profileValue struct {
	name string
}

var _ pflag.Value = (*profileValue)(nil)

func newProfileValue(def strength.Profile) *profileValue {
	return &profileValue{name: def.Name}
}

func (p *profileValue) String() string { return p.name }

func (p *profileValue) Set(s string) error {
	prof, err := strength.ProfileByName(s)
	if err != nil {
		return err
	}
	p.name = prof.Name
	return nil
}

func (p *profileValue) Type() string { return "profile" }
