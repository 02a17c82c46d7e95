package punkt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RealignPolicy selects which closing characters that immediately follow a
// boundary are moved into the sentence they close.
type RealignPolicy uint8

// Realignment policies.
const (
	RealignNone     RealignPolicy = 0
	RealignQuotes   RealignPolicy = 1 << 0
	RealignBrackets RealignPolicy = 1 << 1
	RealignAll                    = RealignQuotes | RealignBrackets
)

const (
	closingQuotes   = `"'”’»›`
	closingBrackets = ")]}⟩〉"
)

// ParseRealignPolicy parses "none", "quotes", "brackets" or "all".
func ParseRealignPolicy(s string) (RealignPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return RealignNone, nil
	case "quotes":
		return RealignQuotes, nil
	case "brackets":
		return RealignBrackets, nil
	case "all", "":
		return RealignAll, nil
	default:
		return RealignNone, fmt.Errorf("unknown realignment policy %q", s)
	}
}

// Policies lists every policy, for comparisons.
func Policies() []RealignPolicy {
	return []RealignPolicy{RealignNone, RealignQuotes, RealignBrackets, RealignAll}
}

func (p RealignPolicy) String() string {
	switch p {
	case RealignNone:
		return "none"
	case RealignQuotes:
		return "quotes"
	case RealignBrackets:
		return "brackets"
	case RealignAll:
		return "all"
	default:
		return fmt.Sprintf("RealignPolicy(%d)", uint8(p))
	}
}

// Closes reports whether the policy reattaches r.
func (p RealignPolicy) Closes(r rune) bool {
	return p&RealignQuotes != 0 && strings.ContainsRune(closingQuotes, r) ||
		p&RealignBrackets != 0 && strings.ContainsRune(closingBrackets, r)
}

// Extend moves the boundary at end past a run of closing characters, but
// only when the run is followed by whitespace, "--" or the end of text.
func (p RealignPolicy) Extend(text string, end int) int {
	if p == RealignNone {
		return end
	}

	i := end
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !p.Closes(r) {
			break
		}
		i += size
	}
	if i == end {
		return end
	}

	rest := text[i:]
	if rest == "" || strings.HasPrefix(rest, "--") {
		return i
	}
	if r, _ := utf8.DecodeRuneInString(rest); unicode.IsSpace(r) {
		return i
	}
	return end
}
