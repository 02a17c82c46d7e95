package sentsplit

import (
	"errors"

	"github.com/jamesainslie/go-sentsplit/model"
	"github.com/jamesainslie/go-sentsplit/profile"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrUnsupportedLanguage indicates the language has no punctuation profile.
	ErrUnsupportedLanguage = profile.ErrUnsupportedLanguage

	// ErrMissingResource indicates the model artifact is absent or unreadable.
	ErrMissingResource = model.ErrMissingResource

	// ErrCorruptModel indicates the model artifact exists but is malformed.
	ErrCorruptModel = model.ErrCorruptModel

	// ErrInvalidInput indicates the text is not valid UTF-8.
	ErrInvalidInput = errors.New("sentsplit: input is not valid UTF-8")
)
