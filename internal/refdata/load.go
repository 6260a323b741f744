// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package refdata

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bkearan/passwordclarity/internal/logging"
	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// Sources names optional files that replace the built-in lists. An empty
// field keeps the embedded list.
type Sources struct {
	Words            string `mapstructure:"words" yaml:"words" json:"words"`
	CommonPasswords  string `mapstructure:"common_passwords" yaml:"common_passwords" json:"common_passwords"`
	KeyboardPatterns string `mapstructure:"keyboard_patterns" yaml:"keyboard_patterns" json:"keyboard_patterns"`
	Symbols          string `mapstructure:"symbols" yaml:"symbols" json:"symbols"`
}

// IsZero reports whether no overrides are configured.
func (s Sources) IsZero() bool {
	return s == Sources{}
}

// Load builds a Set from the embedded lists, replacing each one for which
// src names a file. Files may be plain newline lists, zstd-compressed lists
// (".zst") or YAML string sequences (".yaml"/".yml").
func Load(src Sources) (*Set, error) {
	base := Default()
	if src.IsZero() {
		return base, nil
	}

	set := &Set{
		Words:            base.Words,
		CommonPasswords:  base.CommonPasswords,
		KeyboardPatterns: base.KeyboardPatterns,
		Symbols:          base.Symbols,
	}

	if src.Words != "" {
		words, err := readList(src.Words)
		if err != nil {
			return nil, err
		}
		set.Words = normalizeWords(words)
		if len(set.Words) == 0 {
			return nil, fmt.Errorf("word list %s: %w", src.Words, ErrEmptyList)
		}
		if dropped := len(words) - len(set.Words); dropped > 0 {
			logging.Warnf("word list %s: skipped %d duplicate or short (<%d) entries", src.Words, dropped, MinWordLen)
		}
	}
	if src.CommonPasswords != "" {
		common, err := readList(src.CommonPasswords)
		if err != nil {
			return nil, err
		}
		set.CommonPasswords = toSet(common)
	}
	if src.KeyboardPatterns != "" {
		kb, err := readList(src.KeyboardPatterns)
		if err != nil {
			return nil, err
		}
		set.KeyboardPatterns = lowerAll(kb)
	}
	if src.Symbols != "" {
		syms, err := readList(src.Symbols)
		if err != nil {
			return nil, err
		}
		set.Symbols = dedupe(syms)
		if len(set.Symbols) == 0 {
			return nil, fmt.Errorf("symbol list %s: %w", src.Symbols, ErrEmptyList)
		}
	}

	logging.Debugf("reference data: %d words, %d common passwords, %d keyboard patterns, %d symbols",
		len(set.Words), len(set.CommonPasswords), len(set.KeyboardPatterns), len(set.Symbols))
	return set, nil
}

// readList reads one list file, decompressing and decoding as the extension
// dictates.
func readList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open reference list: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".zst") {
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader for %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
		name = strings.TrimSuffix(name, ".zst")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read reference list %s: %w", path, err)
	}

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		var items []string
		if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&items); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, fmt.Errorf("could not decode yaml list %s: %w", path, err)
		}
		return items, nil
	default:
		return parseList(string(data)), nil
	}
}
