// Package punkt resolves sentence boundaries with the unsupervised Punkt
// method: every sentence-final character is a candidate, and a pretrained
// model of abbreviations, collocations, sentence starters and orthographic
// context decides which candidates end a sentence.
package punkt

import (
	"strings"

	"github.com/jamesainslie/go-sentsplit/model"
	"github.com/jamesainslie/go-sentsplit/tokenizer"
)

// heuristic is the tri-state result of the orthographic test.
type heuristic uint8

const (
	unknown heuristic = iota
	likelyStarter
	unlikelyStarter
)

// Annotator marks tokens as sentence breaks, abbreviations or ellipses.
// It holds no mutable state.
type Annotator struct {
	model model.Model
	punct tokenizer.Punctuation
}

// NewAnnotator returns an Annotator consulting m, with terminal characters
// taken from p rather than from any default set.
func NewAnnotator(m model.Model, p tokenizer.Punctuation) *Annotator {
	return &Annotator{model: m, punct: p}
}

// Annotate applies both annotation passes to infos.
func (a *Annotator) Annotate(infos []tokenizer.TokenInfo) []Token {
	tokens := make([]Token, len(infos))
	for i, info := range infos {
		tokens[i] = newToken(info)
		a.firstPass(&tokens[i])
	}
	for i := 0; i+1 < len(tokens); i++ {
		a.secondPass(&tokens[i], &tokens[i+1])
	}
	return tokens
}

// firstPass decides each token in isolation.
func (a *Annotator) firstPass(tok *Token) {
	switch {
	case a.isTerminal(tok):
		tok.SentBreak = true
		tok.Reason = ReasonTerminal

	case tok.Kind == tokenizer.Ellipsis:
		tok.Ellipsis = true
		tok.Reason = ReasonEllipsis

	case tok.Kind == tokenizer.Word && a.punct.IsExternal('.') &&
		strings.HasSuffix(tok.Text, ".") && !strings.HasSuffix(tok.Text, ".."):
		base := tok.typeNoPeriod()
		if a.isAbbreviation(base) {
			tok.Abbr = true
			tok.Reason = ReasonAbbreviation
		} else {
			tok.SentBreak = true
			tok.Reason = ReasonDefaultPeriod
		}
	}
}

// isTerminal reports whether tok is a lone sentence-final character other
// than the period. Internal punctuation never qualifies.
func (a *Annotator) isTerminal(tok *Token) bool {
	if tok.Kind != tokenizer.Punct {
		return false
	}
	r := tok.firstRune()
	return r != '.' && a.punct.IsExternal(r) && !a.punct.IsInternal(r)
}

func (a *Annotator) isAbbreviation(typ string) bool {
	if typ == "" || typ == "." {
		return false
	}
	if a.model.IsAbbreviation(typ) {
		return true
	}
	if i := strings.LastIndexByte(typ, '-'); i >= 0 && i+1 < len(typ) {
		return a.model.IsAbbreviation(typ[i+1:])
	}
	return false
}

// secondPass revisits a period-final token in the light of the token that
// follows it.
func (a *Annotator) secondPass(tok, next *Token) {
	if !tok.periodFinal() {
		return
	}

	typ := tok.typeNoPeriod()
	nextTyp := next.typeNoSentPeriod()
	initial := tok.isInitial()

	if a.model.IsCollocation(typ, nextTyp) {
		tok.SentBreak = false
		tok.Abbr = true
		tok.Reason = ReasonCollocation
		return
	}

	if (tok.Abbr || tok.Ellipsis) && !initial {
		if a.orthoHeuristic(next) == likelyStarter {
			tok.SentBreak = true
			tok.Reason = ReasonAbbrevOrthographic
			return
		}
		if next.firstUpper() && a.model.IsSentenceStarter(nextTyp) {
			tok.SentBreak = true
			tok.Reason = ReasonAbbrevStarter
			return
		}
	}

	if initial || typ == numberType {
		h := a.orthoHeuristic(next)
		if h == unlikelyStarter {
			tok.SentBreak = false
			tok.Abbr = true
			if initial {
				tok.Reason = ReasonInitialOrthographic
			} else {
				tok.Reason = ReasonNumberOrthographic
			}
			return
		}
		if h == unknown && initial && next.firstUpper() &&
			!a.model.Orthography(nextTyp).Has(model.OrthoLC) {
			tok.SentBreak = false
			tok.Abbr = true
			tok.Reason = ReasonInitialSpecial
		}
	}
}

// orthoHeuristic decides from orthographic context whether tok is likely to
// start a sentence.
func (a *Annotator) orthoHeuristic(tok *Token) heuristic {
	if tok.Kind == tokenizer.Punct || tok.Text == "." {
		r := tok.firstRune()
		if strings.ContainsRune(";:,.!?", r) || a.punct.IsExternal(r) || a.punct.IsInternal(r) {
			return unlikelyStarter
		}
	}

	ortho := a.model.Orthography(tok.typeNoSentPeriod())
	if tok.firstUpper() && ortho.Has(model.OrthoLC) && !ortho.Has(model.OrthoMidUC) {
		return likelyStarter
	}
	if tok.firstLower() && (ortho.Has(model.OrthoUC) || !ortho.Has(model.OrthoBegLC)) {
		return unlikelyStarter
	}
	return unknown
}
