// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package state holds the one piece of mutable, process-wide state: the
// password the user accepted in the TUI, handed back to the CLI once the
// program exits.
package state

import (
	"sync"

	"github.com/bkearan/passwordclarity/internal/security"
)

// PasswordCache is a concurrency-safe, in-memory mailbox for the accepted
// password. It stores bytes so the value can be wiped after use.
var PasswordCache = &passwordMailbox{}

type passwordMailbox struct {
	value []byte
	set   bool
	mu    sync.RWMutex
}

// Set stores a copy of the password, overwriting (and wiping) any previous value.
func (p *passwordMailbox) Set(pass []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wipe(p.value)
	p.value = nil
	p.set = pass != nil
	if pass == nil {
		return
	}
	p.value = make([]byte, len(pass))
	copy(p.value, pass)
}

// Get retrieves a copy of the password. The caller should zero it after use.
func (p *passwordMailbox) Get() []byte {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.set {
		return nil
	}
	out := make([]byte, len(p.value))
	copy(out, p.value)
	return out
}

// Take returns the stored password as a Secret and clears the mailbox. ok is
// false when nothing was accepted, which is distinct from an accepted empty
// password.
func (p *passwordMailbox) Take() (s security.Secret, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.set {
		return nil, false
	}
	s = security.FromBytes(p.value)
	wipe(p.value)
	p.value, p.set = nil, false
	return s, true
}

// Clear wipes the password from memory.
func (p *passwordMailbox) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	wipe(p.value)
	p.value, p.set = nil, false
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
