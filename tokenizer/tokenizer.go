// Package tokenizer splits text into word and punctuation tokens with byte
// offsets, in the shape the Punkt boundary annotator expects.
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Punctuation classifies characters for one language.
// profile.Profile satisfies it.
type Punctuation interface {
	IsExternal(r rune) bool
	IsInternal(r rune) bool
}

// Kind categorizes a token.
type Kind uint8

const (
	// Word is a run of word material. A trailing period stays attached.
	Word Kind = iota
	// Punct is a single punctuation character.
	Punct
	// Ellipsis is a run of two or more periods, or U+2026.
	Ellipsis
	// Dash is a run of two or more hyphens.
	Dash
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Punct:
		return "punct"
	case Ellipsis:
		return "ellipsis"
	case Dash:
		return "dash"
	default:
		return "unknown"
	}
}

// TokenInfo represents a token with its position in the original text.
type TokenInfo struct {
	Text  string
	Kind  Kind
	Start int // byte offset in original text
	End   int // byte offset in original text
}

// Characters that always stand alone, whatever the language.
const (
	nonWordChars   = `)";}]*:@'({[!?“”‘’«»‹›⟨⟩`
	nonStartChars  = "(\"`{[:;&#*@)}]-,"
	horizontalDots = '…'
)

// Tokenizer splits text according to a language's punctuation.
// It holds no mutable state and is safe for concurrent use.
type Tokenizer struct {
	punct Punctuation
}

// New returns a Tokenizer for the given punctuation classes.
func New(p Punctuation) *Tokenizer {
	return &Tokenizer{punct: p}
}

// Encode tokenizes text, returning tokens in order of appearance.
// Whitespace is never part of a token.
func (t *Tokenizer) Encode(text string) []TokenInfo {
	if text == "" {
		return nil
	}

	var tokens []TokenInfo
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		if n, kind := multiChar(text[i:]); n > 0 {
			tokens = append(tokens, TokenInfo{Text: text[i : i+n], Kind: kind, Start: i, End: i + n})
			i += n
			continue
		}

		if t.IsNonWord(r) || t.isNonStart(r) {
			tokens = append(tokens, TokenInfo{Text: text[i : i+size], Kind: Punct, Start: i, End: i + size})
			i += size
			continue
		}

		end := t.wordEnd(text, i)
		tokens = append(tokens, TokenInfo{Text: text[i:end], Kind: Word, Start: i, End: end})
		i = end
	}

	return tokens
}

// IsNonWord reports whether r always terminates a word. Sentence-final
// characters other than the period belong here; the period stays attached
// to its word so abbreviations can be recognized.
func (t *Tokenizer) IsNonWord(r rune) bool {
	if strings.ContainsRune(nonWordChars, r) {
		return true
	}
	return r != '.' && t.punct.IsExternal(r)
}

func (t *Tokenizer) isNonStart(r rune) bool {
	return strings.ContainsRune(nonStartChars, r) || t.punct.IsInternal(r)
}

// wordEnd returns the end offset of the word starting at start.
// Internal punctuation ends a word only when a word boundary follows it,
// so "1,000" stays whole while "φίλε·" splits.
func (t *Tokenizer) wordEnd(text string, start int) int {
	i := start
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if i > start {
			if unicode.IsSpace(r) || t.IsNonWord(r) {
				break
			}
			if n, _ := multiChar(text[i:]); n > 0 {
				break
			}
		}
		if r == ',' || t.punct.IsInternal(r) {
			next := i + size
			if next >= len(text) || t.atBoundary(text[next:]) {
				if i == start {
					i = next
				}
				break
			}
		}
		i += size
	}
	return i
}

func (t *Tokenizer) atBoundary(rest string) bool {
	r, _ := utf8.DecodeRuneInString(rest)
	if unicode.IsSpace(r) || t.IsNonWord(r) {
		return true
	}
	n, _ := multiChar(rest)
	return n > 0
}

// multiChar returns the byte length and kind of a multi-character token at
// the start of s, or 0 if there is none.
func multiChar(s string) (int, Kind) {
	if strings.HasPrefix(s, "..") {
		return len(s) - len(strings.TrimLeft(s, ".")), Ellipsis
	}
	if strings.HasPrefix(s, "--") {
		return len(s) - len(strings.TrimLeft(s, "-")), Dash
	}
	if r, size := utf8.DecodeRuneInString(s); r == horizontalDots {
		return size, Ellipsis
	}
	return 0, Word
}
