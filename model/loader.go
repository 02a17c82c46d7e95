package model

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/jamesainslie/go-sentsplit/profile"
)

// DataEnv names the environment variable that overrides DefaultRoot.
const DataEnv = "SENTSPLIT_DATA"

// Loader locates and deserializes the boundary model for a profile.
type Loader interface {
	Load(p profile.Profile) (Model, error)
}

// DefaultRoot returns $SENTSPLIT_DATA, or ~/sentsplit_data when unset.
func DefaultRoot() string {
	if dir := os.Getenv(DataEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sentsplit_data"
	}
	return filepath.Join(home, "sentsplit_data")
}

// FileLoader reads artifacts laid out as <root>/<language>/<artifact>.
// It does not cache; each Load performs one read.
type FileLoader struct {
	fsys   fs.FS
	root   string
	logger *slog.Logger
}

// NewFileLoader returns a loader rooted at the directory root.
func NewFileLoader(root string) *FileLoader {
	return &FileLoader{fsys: os.DirFS(root), root: root, logger: slog.Default()}
}

// NewFSLoader returns a loader reading from fsys, e.g. an embed.FS.
func NewFSLoader(fsys fs.FS) *FileLoader {
	return &FileLoader{fsys: fsys, logger: slog.Default()}
}

// WithLogger returns a copy of the loader that logs to l.
func (l *FileLoader) WithLogger(lg *slog.Logger) *FileLoader {
	c := *l
	if lg != nil {
		c.logger = lg
	}
	return &c
}

// Path returns the location of the profile's artifact, for diagnostics.
func (l *FileLoader) Path(p profile.Profile) string {
	name := artifactName(p)
	if l.root == "" {
		return name
	}
	return filepath.Join(l.root, filepath.FromSlash(name))
}

// Load reads and decodes the artifact for p. Failures are *ResourceError
// values wrapping ErrMissingResource or ErrCorruptModel.
func (l *FileLoader) Load(p profile.Profile) (Model, error) {
	name := artifactName(p)
	loc := l.Path(p)

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("model artifact unreadable", "language", p.Language(), "path", loc, "error", err)
		}
		return nil, &ResourceError{
			Language: p.Language(),
			Path:     loc,
			Err:      fmt.Errorf("%w: %w", ErrMissingResource, err),
		}
	}

	params, err := Decode(name, data)
	if err != nil {
		return nil, &ResourceError{Language: p.Language(), Path: loc, Err: err}
	}

	st := params.Stats()
	l.logger.Debug("loaded boundary model",
		"language", p.Language(),
		"path", loc,
		"abbreviations", st.Abbreviations,
		"collocations", st.Collocations,
		"sentence_starters", st.SentenceStarters,
	)
	return params, nil
}

func artifactName(p profile.Profile) string {
	return path.Join(string(p.Language()), p.Artifact())
}

// Decode deserializes an artifact, choosing the format by the extension of
// name: ".json" for Punkt JSON, ".pb" for the protobuf encoding. Errors wrap
// ErrCorruptModel.
func Decode(name string, data []byte) (*Params, error) {
	var (
		p   *Params
		err error
	)
	switch ext := path.Ext(name); ext {
	case ".json":
		p, err = DecodeJSON(data)
	case ".pb":
		p, err = DecodeProto(data)
	default:
		err = fmt.Errorf("unsupported artifact format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptModel, err)
	}
	return p, nil
}

// Encode serializes p in the format implied by the extension of name.
func Encode(name string, p *Params) ([]byte, error) {
	switch ext := path.Ext(name); ext {
	case ".json":
		return EncodeJSON(p)
	case ".pb":
		return EncodeProto(p), nil
	default:
		return nil, fmt.Errorf("model: unsupported artifact format %q", ext)
	}
}
