// Package model defines the read-only contract of a pretrained sentence
// boundary model and loads serialized models from a resource store.
//
// A model is the output of unsupervised Punkt training on a reference corpus:
// abbreviation types, collocations, sentence-starter words and the
// orthographic context observed for each word type. It is never mutated after
// load and is safe for concurrent use.
package model

import (
	"cmp"
	"slices"

	"github.com/jamesainslie/go-sentsplit/tokenizer"
)

// Model answers the lookups the boundary resolver needs.
// Types are word types without a trailing period; lookups are case and
// normalization insensitive.
type Model interface {
	IsAbbreviation(typ string) bool
	IsCollocation(typ, next string) bool
	IsSentenceStarter(typ string) bool
	Orthography(typ string) Ortho
}

// Ortho is a bit set describing where and in which case a word type was
// seen during training.
type Ortho int

// Orthographic context flags, bit-compatible with Punkt training data.
const (
	OrthoBegUC Ortho = 1 << 1 // upper case, sentence initial
	OrthoMidUC Ortho = 1 << 2 // upper case, sentence internal
	OrthoUnkUC Ortho = 1 << 3 // upper case, unknown position
	OrthoBegLC Ortho = 1 << 4 // lower case, sentence initial
	OrthoMidLC Ortho = 1 << 5 // lower case, sentence internal
	OrthoUnkLC Ortho = 1 << 6 // lower case, unknown position

	OrthoUC = OrthoBegUC | OrthoMidUC | OrthoUnkUC
	OrthoLC = OrthoBegLC | OrthoMidLC | OrthoUnkLC
)

// Has reports whether any of flags is set.
func (o Ortho) Has(flags Ortho) bool { return o&flags != 0 }

// Collocation is an ordered pair of word types that co-occur across a
// period, e.g. an abbreviated praenomen followed by a nomen.
type Collocation struct {
	First  string
	Second string
}

// Params is the in-memory Model. Build it with NewParams or a decoder.
type Params struct {
	abbrevs      map[string]struct{}
	collocations map[Collocation]struct{}
	starters     map[string]struct{}
	ortho        map[string]Ortho
}

var _ Model = (*Params)(nil)

// NewParams builds a model from raw training tables. All keys are folded.
func NewParams(abbrevs, starters []string, collocations []Collocation, ortho map[string]Ortho) *Params {
	p := &Params{
		abbrevs:      make(map[string]struct{}, len(abbrevs)),
		collocations: make(map[Collocation]struct{}, len(collocations)),
		starters:     make(map[string]struct{}, len(starters)),
		ortho:        make(map[string]Ortho, len(ortho)),
	}
	for _, a := range abbrevs {
		p.abbrevs[tokenizer.Fold(a)] = struct{}{}
	}
	for _, s := range starters {
		p.starters[tokenizer.Fold(s)] = struct{}{}
	}
	for _, c := range collocations {
		p.collocations[Collocation{tokenizer.Fold(c.First), tokenizer.Fold(c.Second)}] = struct{}{}
	}
	for typ, flags := range ortho {
		// Folding can merge keys; merge their flags too.
		p.ortho[tokenizer.Fold(typ)] |= flags
	}
	return p
}

// IsAbbreviation reports whether typ is a known abbreviation.
func (p *Params) IsAbbreviation(typ string) bool {
	_, ok := p.abbrevs[typ]
	if !ok {
		_, ok = p.abbrevs[tokenizer.Fold(typ)]
	}
	return ok
}

// IsCollocation reports whether typ followed by next is a known collocation.
func (p *Params) IsCollocation(typ, next string) bool {
	_, ok := p.collocations[Collocation{typ, next}]
	if !ok {
		_, ok = p.collocations[Collocation{tokenizer.Fold(typ), tokenizer.Fold(next)}]
	}
	return ok
}

// IsSentenceStarter reports whether typ frequently begins a sentence.
func (p *Params) IsSentenceStarter(typ string) bool {
	_, ok := p.starters[typ]
	if !ok {
		_, ok = p.starters[tokenizer.Fold(typ)]
	}
	return ok
}

// Orthography returns the orthographic context flags of typ.
func (p *Params) Orthography(typ string) Ortho {
	if o, ok := p.ortho[typ]; ok {
		return o
	}
	return p.ortho[tokenizer.Fold(typ)]
}

// Abbreviations returns the abbreviation types in sorted order.
func (p *Params) Abbreviations() []string { return sortedKeys(p.abbrevs) }

// SentenceStarters returns the sentence-starter types in sorted order.
func (p *Params) SentenceStarters() []string { return sortedKeys(p.starters) }

// Collocations returns the collocations in sorted order.
func (p *Params) Collocations() []Collocation {
	out := make([]Collocation, 0, len(p.collocations))
	for c := range p.collocations {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Collocation) int {
		return cmp.Or(cmp.Compare(a.First, b.First), cmp.Compare(a.Second, b.Second))
	})
	return out
}

// OrthoContexts returns a copy of the orthographic context table.
func (p *Params) OrthoContexts() map[string]Ortho {
	out := make(map[string]Ortho, len(p.ortho))
	for k, v := range p.ortho {
		out[k] = v
	}
	return out
}

// Stats summarizes the size of each table.
type Stats struct {
	Abbreviations    int
	Collocations     int
	SentenceStarters int
	OrthoContexts    int
}

// Stats returns table sizes, for logging and the CLI.
func (p *Params) Stats() Stats {
	return Stats{
		Abbreviations:    len(p.abbrevs),
		Collocations:     len(p.collocations),
		SentenceStarters: len(p.starters),
		OrthoContexts:    len(p.ortho),
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
