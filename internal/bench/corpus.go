// Package bench evaluates sentence splitting against gold-segmented corpora.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Header contains metadata parsed from a gold file's header comments.
type Header struct {
	Source   string
	Language string
	Title    string
}

// ParseHeader extracts metadata from header comments.
// Returns the header, remaining text after header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}
		bodyStart = lineEnd

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Language:"); ok {
			h.Language = strings.ToLower(strings.TrimSpace(value))
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}
	if h.Language == "" {
		return Header{}, "", errors.New("missing Language in header")
	}

	body := strings.TrimSpace(text[min(bodyStart, len(text)):])
	return h, body, nil
}

// Sentence is a gold sentence with byte offsets into the document's RawText.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// ParseSentences reads one gold sentence per non-blank line and returns the
// raw text, the sentences joined by single spaces, along with the sentence
// offsets into it.
func ParseSentences(body string) (string, []Sentence) {
	var (
		b         strings.Builder
		sentences []Sentence
	)
	for line := range strings.Lines(body) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		start := b.Len()
		b.WriteString(line)
		sentences = append(sentences, Sentence{Text: line, Start: start, End: b.Len()})
	}
	return b.String(), sentences
}

// Document represents a loaded gold file.
type Document struct {
	ID        string // filename without extension
	Source    string
	Language  string
	Title     string
	RawText   string // sentences joined by single spaces
	Sentences []Sentence
}

// Boundaries returns the gold sentence end offsets.
func (d *Document) Boundaries() []int {
	ends := make([]int, len(d.Sentences))
	for i, s := range d.Sentences {
		ends[i] = s.End
	}
	return ends
}

// LoadDocument loads and parses a gold file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))
	raw, sentences := ParseSentences(body)

	return &Document{
		ID:        id,
		Source:    header.Source,
		Language:  header.Language,
		Title:     header.Title,
		RawText:   raw,
		Sentences: sentences,
	}, nil
}

// LoadCorpus loads all .txt gold files from a directory. If language is not
// empty, documents in other languages are skipped.
func LoadCorpus(dir, language string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		doc, err := LoadDocument(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		if language != "" && doc.Language != strings.ToLower(language) {
			continue
		}
		docs = append(docs, doc)
	}

	return docs, nil
}
