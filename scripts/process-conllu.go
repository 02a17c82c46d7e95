//go:build ignore

// Process Universal Dependencies CoNLL-U treebanks into gold corpus files:
// a "# Source / # Language / # Title" header followed by one sentence per
// line. A new file starts at every "# newdoc" marker, or every -size
// sentences when the treebank has none.
// Usage: go run ./scripts/process-conllu.go -lang latin -out testdata/corpus/latin la_proiel-ud-test.conllu
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// document is one run of sentences destined for a single gold file.
type document struct {
	ID        string
	Sentences []string
}

var unsafeID = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

func main() {
	lang := flag.String("lang", "", "language header value (greek or latin)")
	outDir := flag.String("out", "", "output directory")
	size := flag.Int("size", 200, "sentences per file when the treebank has no document markers")
	flag.Parse()

	if *lang == "" || *outDir == "" || flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: process-conllu -lang LANG -out DIR FILE.conllu...")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", *outDir, err)
		os.Exit(1)
	}

	for _, inFile := range flag.Args() {
		fmt.Printf("Processing %s...\n", inFile)
		docs, err := processCoNLLU(inFile, *size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		for _, doc := range docs {
			outFile := filepath.Join(*outDir, doc.ID+".txt")
			if err := writeDocument(outFile, inFile, *lang, doc); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
				continue
			}
			fmt.Printf("  -> %s (%d sentences)\n", outFile, len(doc.Sentences))
		}
	}
}

func processCoNLLU(path string, size int) ([]document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var (
		docs       []document
		current    document
		currentTxt string
		markers    bool
	)

	flush := func() {
		if len(current.Sentences) > 0 {
			docs = append(docs, current)
		}
		current = document{}
	}
	nextID := func(id string) string {
		if id == "" {
			id = fmt.Sprintf("%s-%03d", base, len(docs)+1)
		}
		return unsafeID.ReplaceAllString(id, "_")
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()

		// Document boundary
		if value, ok := strings.CutPrefix(line, "# newdoc"); ok {
			markers = true
			flush()
			_, id, _ := strings.Cut(value, "=")
			current.ID = nextID(strings.TrimSpace(id))
			continue
		}

		// Metadata line with sentence text
		if value, ok := strings.CutPrefix(line, "# text = "); ok {
			currentTxt = strings.Join(strings.Fields(value), " ")
			continue
		}

		// Blank line = end of sentence
		if line == "" && currentTxt != "" {
			if current.ID == "" {
				current.ID = nextID("")
			}
			current.Sentences = append(current.Sentences, currentTxt)
			currentTxt = ""
			if !markers && len(current.Sentences) >= size {
				flush()
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	// Don't forget last sentence if no trailing blank
	if currentTxt != "" {
		if current.ID == "" {
			current.ID = nextID("")
		}
		current.Sentences = append(current.Sentences, currentTxt)
	}
	flush()

	return docs, nil
}

func writeDocument(path, source, lang string, doc document) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# Source: %s\n", filepath.Base(source))
	fmt.Fprintf(w, "# Language: %s\n", lang)
	fmt.Fprintf(w, "# Title: %s\n\n", doc.ID)
	for _, s := range doc.Sentences {
		fmt.Fprintln(w, s)
	}

	if err := w.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
