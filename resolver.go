package sentsplit

import (
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/jamesainslie/go-sentsplit/internal/punkt"
	"github.com/jamesainslie/go-sentsplit/model"
	"github.com/jamesainslie/go-sentsplit/profile"
)

// Span is one sentence of the input. Text equals input[Start:End].
type Span struct {
	Text  string
	Start int
	End   int
}

// Decision describes how one candidate boundary was resolved.
type Decision struct {
	Token  string
	Start  int
	End    int
	Break  bool
	Reason string
}

// Resolver splits text in one language into sentences.
// It is immutable and safe for concurrent use.
type Resolver struct {
	profile profile.Profile
	model   model.Model
	seg     *punkt.Segmenter
	realign RealignPolicy
	logger  *slog.Logger
}

// New creates a Resolver for language ("greek" or "latin"). The language is
// checked before any model artifact is touched.
func New(language string, opts ...Option) (*Resolver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p, err := profile.Lookup(language)
	if err != nil {
		return nil, err
	}

	m := cfg.model
	if m == nil {
		m, err = cfg.modelLoader().Load(p)
		if err != nil {
			return nil, err
		}
	}

	cfg.logger.Debug("resolver ready",
		"language", p.Language(),
		"realign", cfg.realign,
	)

	return &Resolver{
		profile: p,
		model:   m,
		seg:     punkt.NewSegmenter(m, p, cfg.realign),
		realign: cfg.realign,
		logger:  cfg.logger,
	}, nil
}

// Language returns the resolver's language.
func (r *Resolver) Language() profile.Language {
	return r.profile.Language()
}

// Profile returns the punctuation profile in use.
func (r *Resolver) Profile() profile.Profile {
	return r.profile
}

// Model returns the boundary model in use.
func (r *Resolver) Model() model.Model {
	return r.model
}

// Realign returns the realignment policy in use.
func (r *Resolver) Realign() RealignPolicy {
	return r.realign
}

// Tokenize splits text into sentences, trimmed of surrounding whitespace.
func (r *Resolver) Tokenize(text string) ([]string, error) {
	spans, err := r.TokenizeSpans(text)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return nil, nil
	}

	sentences := make([]string, len(spans))
	for i, sp := range spans {
		sentences[i] = sp.Text
	}
	return sentences, nil
}

// TokenizeSpans splits text into sentences and returns their byte offsets.
// Only whitespace lies between consecutive spans.
func (r *Resolver) TokenizeSpans(text string) ([]Span, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	raw := r.seg.Spans(text)
	if len(raw) == 0 {
		return nil, nil
	}

	spans := make([]Span, len(raw))
	for i, sp := range raw {
		spans[i] = Span{Text: text[sp.Start:sp.End], Start: sp.Start, End: sp.End}
	}
	return spans, nil
}

// IsComplete reports whether text ends on a sentence boundary. Closing
// quotes and brackets after the final punctuation are ignored according to
// the realignment policy.
func (r *Resolver) IsComplete(text string) (bool, error) {
	if err := checkText(text); err != nil {
		return false, err
	}
	if text == "" {
		return false, nil
	}
	return r.seg.EndsSentence(text), nil
}

// Explain reports every candidate boundary in text and the rule that
// resolved it.
func (r *Resolver) Explain(text string) ([]Decision, error) {
	if err := checkText(text); err != nil {
		return nil, err
	}

	var out []Decision
	for _, d := range r.seg.Decisions(text) {
		out = append(out, Decision{
			Token:  d.Token,
			Start:  d.Start,
			End:    d.End,
			Break:  d.Break,
			Reason: string(d.Reason),
		})
	}
	return out, nil
}

func checkText(text string) error {
	if utf8.ValidString(text) {
		return nil
	}
	return fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidInput, firstInvalid(text))
}

func firstInvalid(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return i
			}
		}
	}
	return len(s)
}
