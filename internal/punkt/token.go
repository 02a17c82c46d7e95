package punkt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jamesainslie/go-sentsplit/tokenizer"
)

// numberType is the type shared by all numeric tokens, so that ordinals
// such as "3." are treated alike.
const numberType = "##number##"

var numberRE = regexp.MustCompile(`^-?[\.,]?\d[\d,\.-]*\.?$`)

// Token is a tokenizer token annotated with boundary decisions.
type Token struct {
	tokenizer.TokenInfo

	// Type is the folded lookup form of the token text.
	Type string

	SentBreak bool
	Abbr      bool
	Ellipsis  bool
	Reason    Reason
}

func newToken(info tokenizer.TokenInfo) Token {
	typ := tokenizer.Fold(info.Text)
	if numberRE.MatchString(typ) {
		typ = numberType
	}
	return Token{TokenInfo: info, Type: typ}
}

func (t *Token) periodFinal() bool {
	return t.Kind == tokenizer.Ellipsis && strings.HasSuffix(t.Text, ".") ||
		t.Kind == tokenizer.Word && strings.HasSuffix(t.Text, ".")
}

func (t *Token) typeNoPeriod() string {
	if len(t.Type) > 1 && strings.HasSuffix(t.Type, ".") {
		return t.Type[:len(t.Type)-1]
	}
	return t.Type
}

func (t *Token) typeNoSentPeriod() string {
	if t.SentBreak {
		return t.typeNoPeriod()
	}
	return t.Type
}

func (t *Token) firstRune() rune {
	r, _ := utf8.DecodeRuneInString(t.Text)
	return r
}

func (t *Token) firstUpper() bool { return unicode.IsUpper(t.firstRune()) }

func (t *Token) firstLower() bool { return unicode.IsLower(t.firstRune()) }

// isInitial reports whether the token is a single letter followed by a
// period, such as "M.".
func (t *Token) isInitial() bool {
	if t.Kind != tokenizer.Word {
		return false
	}
	r, size := utf8.DecodeRuneInString(t.Text)
	return unicode.IsLetter(r) && t.Text[size:] == "."
}
