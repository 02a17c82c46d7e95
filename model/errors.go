package model

import (
	"errors"
	"fmt"

	"github.com/jamesainslie/go-sentsplit/profile"
)

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrMissingResource indicates the model artifact is absent or cannot be read.
	ErrMissingResource = errors.New("model: artifact not found")

	// ErrCorruptModel indicates the artifact exists but cannot be decoded.
	ErrCorruptModel = errors.New("model: corrupt model artifact")
)

// ResourceError carries the language and path of a failed load.
// It wraps ErrMissingResource or ErrCorruptModel.
type ResourceError struct {
	Language profile.Language
	Path     string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("loading %s model from %s: %v", e.Language, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }
