package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/model"
)

var testData = filepath.Join("..", "..", "testdata")

// run executes the CLI with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSplit(t *testing.T) {
	out, err := run(t, "", "--data", testData, "split", "--lang", "latin",
		"Cn. filius venit. Caesar venit: hostes fugerunt.")
	require.NoError(t, err)
	assert.Equal(t, "Cn. filius venit.\nCaesar venit:\nhostes fugerunt.\n", out)
}

func TestSplit_Stdin(t *testing.T) {
	out, err := run(t, "τί λέγεις; οὐδὲν\nλέγω.", "--data", testData, "-l", "greek", "split", "-")
	require.NoError(t, err)
	assert.Equal(t, "τί λέγεις;\nοὐδὲν λέγω.\n", out)
}

func TestSplit_Spans(t *testing.T) {
	out, err := run(t, "", "--data", testData, "--lang", "latin", "split", "--spans", "Veni: vidi.")
	require.NoError(t, err)
	assert.Equal(t, "0\t5\tVeni:\n6\t11\tvidi.\n", out)
}

func TestSplit_Explain(t *testing.T) {
	out, err := run(t, "", "--data", testData, "--lang", "latin", "split", "--explain", "Cn. filius venit.")
	require.NoError(t, err)
	assert.Contains(t, out, "REASON")
	assert.Contains(t, out, "known abbreviation")
	assert.Contains(t, out, "default period")
}

func TestSplit_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unsupported language",
			args:    []string{"--data", testData, "--lang", "klingon", "split", "text"},
			wantErr: sentsplit.ErrUnsupportedLanguage,
		},
		{
			name:    "missing model",
			args:    []string{"--data", t.TempDir(), "--lang", "latin", "split", "text"},
			wantErr: sentsplit.ErrMissingResource,
		},
		{
			name:    "no language",
			args:    []string{"--data", testData, "split", "text"},
			wantMsg: "no language given",
		},
		{
			name:    "bad realign policy",
			args:    []string{"--data", testData, "--lang", "latin", "--realign", "sideways", "split", "text"},
			wantMsg: "unknown realignment policy",
		},
		{
			name:    "bad log level",
			args:    []string{"--log-level", "loud", "languages"},
			wantMsg: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SENTSPLIT_LANG", "")
			_, err := run(t, "", tt.args...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "--data", testData, "--lang", "latin", "check", "Caesar venit:")
	require.NoError(t, err)
	assert.Contains(t, out, "Complete: true")

	out, err = run(t, "", "--data", testData, "--lang", "greek", "check", "ὦ φίλε·")
	require.NoError(t, err)
	assert.Contains(t, out, "Complete: false")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("SENTSPLIT_DATA", testData)
	t.Setenv("SENTSPLIT_LANG", "latin")
	t.Setenv("SENTSPLIT_REALIGN", "none")

	out, err := run(t, "", "split", `Dixit "veni." Tum abiit.`)
	require.NoError(t, err)
	assert.Equal(t, "Dixit \"veni.\n\" Tum abiit.\n", out)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	data, err := filepath.Abs(testData)
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, "sentsplit.yaml")
	content := "data: " + data + "\nlang: greek\nlog-level: error\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	out, err := run(t, "", "--config", cfgPath, "split", "ὁ ἄνθρωπος ἔρχεται. ἡ γυνὴ μένει.")
	require.NoError(t, err)
	assert.Equal(t, "ὁ ἄνθρωπος ἔρχεται.\nἡ γυνὴ μένει.\n", out)

	// Flags take precedence over the file.
	out, err = run(t, "", "--config", cfgPath, "--lang", "latin", "split", "Veni: vidi.")
	require.NoError(t, err)
	assert.Equal(t, "Veni:\nvidi.\n", out)
}

func TestConfigFile_Missing(t *testing.T) {
	_, err := run(t, "", "--config", filepath.Join(t.TempDir(), "absent.yaml"), "languages")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLanguages(t *testing.T) {
	out, err := run(t, "", "--data", testData, "languages")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "LANGUAGE")
	assert.True(t, strings.HasPrefix(lines[1], "greek"))
	assert.Contains(t, lines[1], "greek.json")
	assert.True(t, strings.HasPrefix(lines[2], "latin"))
	assert.Contains(t, lines[2], ". ? :")
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(testData, "latin", "latin.json")
	pb := filepath.Join(dir, "latin.pb")
	back := filepath.Join(dir, "latin.json")

	out, err := run(t, "", "convert", in, pb)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+pb)

	_, err = run(t, "", "convert", pb, back)
	require.NoError(t, err)

	orig, err := os.ReadFile(in)
	require.NoError(t, err)
	want, err := model.Decode(in, orig)
	require.NoError(t, err)

	roundTrip, err := os.ReadFile(back)
	require.NoError(t, err)
	got, err := model.Decode(back, roundTrip)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestConvert_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "", "convert", filepath.Join(dir, "absent.json"), filepath.Join(dir, "out.pb"))
	assert.ErrorIs(t, err, model.ErrMissingResource)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[]"), 0o600))
	_, err = run(t, "", "convert", bad, filepath.Join(dir, "out.pb"))
	assert.ErrorIs(t, err, model.ErrCorruptModel)

	_, err = run(t, "", "convert", filepath.Join(testData, "latin", "latin.json"), filepath.Join(dir, "out.txt"))
	assert.Error(t, err)
}

func TestBench(t *testing.T) {
	corpus := filepath.Join(testData, "corpus", "latin")

	out, err := run(t, "", "--data", testData, "--lang", "latin", "bench", "--corpus", corpus)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 2 documents")
	assert.Contains(t, out, "Precision:")

	out, err = run(t, "", "--data", testData, "--lang", "latin", "bench", "--corpus", corpus, "--compare")
	require.NoError(t, err)
	assert.Contains(t, out, "Realignment Comparison")
	for _, p := range sentsplit.RealignPolicies() {
		assert.Contains(t, out, p.String())
	}
}

func TestBench_NoDocuments(t *testing.T) {
	_, err := run(t, "", "--data", testData, "--lang", "greek", "bench", "--corpus", filepath.Join(testData, "corpus", "latin"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no greek documents")
}
