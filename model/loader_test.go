package model

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-sentsplit/profile"
)

const testRoot = "../testdata"

func lookup(t *testing.T, lang string) profile.Profile {
	t.Helper()
	p, err := profile.Lookup(lang)
	require.NoError(t, err)
	return p
}

func TestFileLoader_Load(t *testing.T) {
	loader := NewFileLoader(testRoot)

	m, err := loader.Load(lookup(t, "latin"))
	require.NoError(t, err)
	assert.True(t, m.IsAbbreviation("cn"))
	assert.True(t, m.IsAbbreviation("s.c"))
	assert.True(t, m.IsCollocation("m", "tullius"))
	assert.True(t, m.IsSentenceStarter("itaque"))
	assert.Equal(t, OrthoMidLC, m.Orthography("filius"))

	g, err := loader.Load(lookup(t, "greek"))
	require.NoError(t, err)
	assert.True(t, g.IsAbbreviation("κεφ"))
}

func TestFileLoader_Path(t *testing.T) {
	loader := NewFileLoader("/data")
	assert.Equal(t, filepath.Join("/data", "latin", "latin.json"), loader.Path(lookup(t, "latin")))

	fsLoader := NewFSLoader(fstest.MapFS{})
	assert.Equal(t, "greek/greek.json", fsLoader.Path(lookup(t, "greek")))
}

func TestFileLoader_MissingResource(t *testing.T) {
	dir := t.TempDir()
	loader := NewFileLoader(dir)

	_, err := loader.Load(lookup(t, "latin"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingResource)
	assert.NotErrorIs(t, err, ErrCorruptModel)

	var rerr *ResourceError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, profile.Latin, rerr.Language)
	assert.Equal(t, filepath.Join(dir, "latin", "latin.json"), rerr.Path)
}

func TestFileLoader_CorruptModel(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "\x00\x01 not json"},
		{"wrong shape", `["a", "b"]`},
		{"malformed collocation", `{"Collocations": {"cn pompeius": 1}}`},
		{"truncated", `{"AbbrevTypes": {"cn": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"latin/latin.json": &fstest.MapFile{Data: []byte(tt.data)},
			}
			_, err := NewFSLoader(fsys).Load(lookup(t, "latin"))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorruptModel)
			assert.NotErrorIs(t, err, ErrMissingResource)

			var rerr *ResourceError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, "latin/latin.json", rerr.Path)
		})
	}
}

func TestFileLoader_EmptyModel(t *testing.T) {
	fsys := fstest.MapFS{
		"greek/greek.json": &fstest.MapFile{Data: []byte(`{}`)},
	}
	m, err := NewFSLoader(fsys).Load(lookup(t, "greek"))
	require.NoError(t, err)
	assert.False(t, m.IsAbbreviation("κεφ"))
}

func TestFileLoader_Unreadable(t *testing.T) {
	dir := t.TempDir()
	// A directory where the artifact should be cannot be read as a file.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "latin", "latin.json"), 0o755))

	_, err := NewFileLoader(dir).Load(lookup(t, "latin"))
	assert.ErrorIs(t, err, ErrMissingResource)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	_, err := Decode("latin.pickle", []byte("data"))
	assert.ErrorIs(t, err, ErrCorruptModel)

	_, err = Encode("latin.pickle", NewParams(nil, nil, nil, nil))
	assert.Error(t, err)
}

func TestDefaultRoot(t *testing.T) {
	t.Setenv(DataEnv, "/srv/models")
	assert.Equal(t, "/srv/models", DefaultRoot())

	t.Setenv(DataEnv, "")
	assert.Equal(t, "sentsplit_data", filepath.Base(DefaultRoot()))
}
