// Package profile holds the per-language punctuation tables used by the
// sentence boundary resolver.
//
// Each supported language has exactly one Profile naming the characters that
// end a sentence (external punctuation), the characters that only separate
// clauses (internal punctuation), and the model artifact trained for it.
package profile

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrUnsupportedLanguage indicates there is no profile for the language.
var ErrUnsupportedLanguage = errors.New("profile: unsupported language")

// Language identifies a supported language.
type Language string

// Languages with a shipped pretrained boundary model.
const (
	Greek Language = "greek"
	Latin Language = "latin"
)

// Profile is the punctuation configuration for one language.
// The zero value is not usable; obtain profiles with Lookup.
type Profile struct {
	language Language
	external []rune
	internal []rune
	artifact string
}

var registry = map[Language]Profile{
	Greek: {
		language: Greek,
		external: []rune{'.', ';'},
		internal: []rune{',', '·'},
		artifact: "greek.json",
	},
	Latin: {
		language: Latin,
		external: []rune{'.', '?', ':'},
		internal: []rune{',', ';'},
		artifact: "latin.json",
	},
}

// Lookup returns the profile for name. Matching ignores case and
// surrounding whitespace.
func Lookup(name string) (Profile, error) {
	lang := Language(strings.ToLower(strings.TrimSpace(name)))
	p, ok := registry[lang]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, name)
	}
	return p, nil
}

// Languages returns the supported languages in sorted order.
func Languages() []Language {
	langs := make([]Language, 0, len(registry))
	for l := range registry {
		langs = append(langs, l)
	}
	slices.Sort(langs)
	return langs
}

// Language returns the profile's language.
func (p Profile) Language() Language { return p.language }

// Artifact returns the file name of the language's boundary model.
func (p Profile) Artifact() string { return p.artifact }

// External returns a copy of the sentence-final characters.
func (p Profile) External() []rune { return slices.Clone(p.external) }

// Internal returns a copy of the clause-level characters.
func (p Profile) Internal() []rune { return slices.Clone(p.internal) }

// IsExternal reports whether r ends a sentence absent other context.
func (p Profile) IsExternal(r rune) bool {
	return slices.Contains(p.external, canonical(r))
}

// IsInternal reports whether r is clause-level punctuation.
func (p Profile) IsInternal(r rune) bool {
	return slices.Contains(p.internal, canonical(r))
}

// Validate checks that the profile is populated and that no character is
// both external and internal.
func (p Profile) Validate() error {
	if p.language == "" || p.artifact == "" {
		return fmt.Errorf("profile: incomplete profile %q", p.language)
	}
	if len(p.external) == 0 {
		return fmt.Errorf("profile: %s has no external punctuation", p.language)
	}
	for _, r := range p.internal {
		if slices.Contains(p.external, r) {
			return fmt.Errorf("profile: %s lists %q as both external and internal", p.language, r)
		}
	}
	return nil
}

// String returns the language name.
func (p Profile) String() string { return string(p.language) }

// canonical maps r to its NFC form when that form is a single rune, so that
// U+0387 GREEK ANO TELEIA compares equal to U+00B7 MIDDLE DOT and U+037E
// GREEK QUESTION MARK to the semicolon.
func canonical(r rune) rune {
	if r < 0x80 {
		return r
	}
	s := norm.NFC.String(string(r))
	c := []rune(s)
	if len(c) == 1 {
		return c[0]
	}
	return r
}
