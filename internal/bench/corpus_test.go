package bench

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Header
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid header",
			input: `# Source: Caesar, De Bello Gallico 1.1
# Language: Latin
# Title: Gallia

Gallia est omnis divisa in partes tres:`,
			want: Header{
				Source:   "Caesar, De Bello Gallico 1.1",
				Language: "latin",
				Title:    "Gallia",
			},
			wantBody: "Gallia est omnis divisa in partes tres:",
		},
		{
			name: "header only",
			input: `# Source: empty
# Language: greek
`,
			want:     Header{Source: "empty", Language: "greek"},
			wantBody: "",
		},
		{
			name: "missing source",
			input: `# Language: latin
# Title: Gallia

Gallia.`,
			wantErr: true,
		},
		{
			name: "missing language",
			input: `# Source: somewhere

Gallia.`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, body, err := ParseHeader(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseHeader() header = %+v, want %+v", got, tt.want)
			}
			if body != tt.wantBody {
				t.Errorf("ParseHeader() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseSentences(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRaw string
		want    []Sentence
	}{
		{
			name:    "one per line",
			input:   "Caesar venit.\nHostes fugerunt.",
			wantRaw: "Caesar venit. Hostes fugerunt.",
			want: []Sentence{
				{Text: "Caesar venit.", Start: 0, End: 13},
				{Text: "Hostes fugerunt.", Start: 14, End: 30},
			},
		},
		{
			name:    "blank lines and padding",
			input:   "\n  Veni:\n\n vidi: \nvici.\n",
			wantRaw: "Veni: vidi: vici.",
			want: []Sentence{
				{Text: "Veni:", Start: 0, End: 5},
				{Text: "vidi:", Start: 6, End: 11},
				{Text: "vici.", Start: 12, End: 17},
			},
		},
		{
			name:    "greek",
			input:   "τί λέγεις;\nοὐδὲν.",
			wantRaw: "τί λέγεις; οὐδὲν.",
			want: []Sentence{
				{Text: "τί λέγεις;", Start: 0, End: len("τί λέγεις;")},
				{Text: "οὐδὲν.", Start: len("τί λέγεις; "), End: len("τί λέγεις; οὐδὲν.")},
			},
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, got := ParseSentences(tt.input)
			if raw != tt.wantRaw {
				t.Errorf("ParseSentences() raw = %q, want %q", raw, tt.wantRaw)
			}
			if len(got) != len(tt.want) {
				t.Errorf("ParseSentences() got %d sentences, want %d", len(got), len(tt.want))
				for i, s := range got {
					t.Logf("  got[%d]: %+v", i, s)
				}
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
				if raw[got[i].Start:got[i].End] != got[i].Text {
					t.Errorf("sentence[%d] offsets do not address its text", i)
				}
			}
		})
	}
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bellum.txt")
	content := `# Source: constructed
# Language: latin
# Title: Bellum

Caesar venit.
Hostes fugerunt.`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument() error = %v", err)
	}

	if doc.ID != "bellum" {
		t.Errorf("ID = %q, want %q", doc.ID, "bellum")
	}
	if doc.Language != "latin" {
		t.Errorf("Language = %q, want %q", doc.Language, "latin")
	}
	if doc.RawText != "Caesar venit. Hostes fugerunt." {
		t.Errorf("RawText = %q", doc.RawText)
	}
	if got := doc.Boundaries(); len(got) != 2 || got[0] != 13 || got[1] != 30 {
		t.Errorf("Boundaries() = %v, want [13 30]", got)
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"latin1.txt": "# Source: a\n# Language: latin\n\nVeni.",
		"latin2.txt": "# Source: b\n# Language: latin\n\nVidi.",
		"greek1.txt": "# Source: c\n# Language: greek\n\nοὐδέν.",
		"README.md":  "# Readme",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	all, err := LoadCorpus(dir, "")
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("got %d documents, want 3", len(all))
	}

	latin, err := LoadCorpus(dir, "Latin")
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}
	if len(latin) != 2 {
		t.Errorf("got %d latin documents, want 2", len(latin))
	}
}

func TestLoadCorpus_BadFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.txt"), []byte("no header"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCorpus(dir, ""); err == nil {
		t.Error("expected error for file without header")
	}
}
