package punkt

import (
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-sentsplit/model"
	"github.com/jamesainslie/go-sentsplit/tokenizer"
)

// Span is a sentence as byte offsets into the segmented text.
type Span struct {
	Start int
	End   int
}

// Segmenter turns text into sentence spans. It is immutable and safe for
// concurrent use.
type Segmenter struct {
	tok     *tokenizer.Tokenizer
	ann     *Annotator
	punct   tokenizer.Punctuation
	realign RealignPolicy
}

// NewSegmenter binds a model and a language's punctuation.
func NewSegmenter(m model.Model, p tokenizer.Punctuation, realign RealignPolicy) *Segmenter {
	return &Segmenter{
		tok:     tokenizer.New(p),
		ann:     NewAnnotator(m, p),
		punct:   p,
		realign: realign,
	}
}

// Annotate tokenizes and annotates text.
func (s *Segmenter) Annotate(text string) []Token {
	return s.ann.Annotate(s.tok.Encode(text))
}

// Spans returns the sentences of text, trimmed of surrounding whitespace,
// in order of appearance.
func (s *Segmenter) Spans(text string) []Span {
	if text == "" {
		return nil
	}

	var spans []Span
	start := 0
	for _, end := range s.boundaries(text, s.Annotate(text)) {
		spans = appendTrimmed(spans, text, start, end)
		start = end
	}
	return appendTrimmed(spans, text, start, len(text))
}

// Decisions reports the resolution of every candidate boundary.
func (s *Segmenter) Decisions(text string) []Decision {
	var out []Decision
	for _, tok := range s.Annotate(text) {
		if tok.Reason == ReasonNone {
			continue
		}
		out = append(out, Decision{
			Token:  tok.Text,
			Start:  tok.Start,
			End:    tok.End,
			Break:  tok.SentBreak && s.realizable(text, tok.End),
			Reason: tok.Reason,
		})
	}
	return out
}

// EndsSentence reports whether text ends on a sentence boundary, ignoring
// trailing closing characters the realignment policy would reattach.
func (s *Segmenter) EndsSentence(text string) bool {
	tokens := s.Annotate(text)
	for i := len(tokens) - 1; i >= 0; i-- {
		tok := &tokens[i]
		if tok.Kind == tokenizer.Punct && s.realign.Closes(tok.firstRune()) {
			continue
		}
		return tok.SentBreak
	}
	return false
}

// boundaries returns realigned end offsets of confirmed breaks.
func (s *Segmenter) boundaries(text string, tokens []Token) []int {
	var out []int
	last := 0
	for i := range tokens {
		tok := &tokens[i]
		if !tok.SentBreak || tok.End <= last || !s.realizable(text, tok.End) {
			continue
		}
		end := s.realign.Extend(text, tok.End)
		out = append(out, end)
		last = end
	}
	return out
}

// realizable reports whether a break after offset end can stand: it must be
// followed by whitespace, the end of text, or punctuation that is not itself
// sentence-final.
func (s *Segmenter) realizable(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	switch {
	case unicode.IsSpace(r):
		return true
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return false
	case s.punct.IsExternal(r):
		return false
	}
	return true
}

func appendTrimmed(spans []Span, text string, start, end int) []Span {
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	if start == end {
		return spans
	}
	return append(spans, Span{Start: start, End: end})
}
