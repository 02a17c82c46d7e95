package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
)

// DecodeJSON parses Punkt training data in the JSON layout used by
// github.com/neurosnap/sentences: four string-keyed tables, with
// collocations keyed "first,second".
func DecodeJSON(data []byte) (*Params, error) {
	storage, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("parsing punkt json: %w", err)
	}

	collocations := make([]Collocation, 0, len(storage.Collocations))
	for key, v := range storage.Collocations {
		if v == 0 {
			continue
		}
		first, second, ok := strings.Cut(key, ",")
		if !ok || first == "" || second == "" {
			return nil, fmt.Errorf("malformed collocation %q", key)
		}
		collocations = append(collocations, Collocation{First: first, Second: second})
	}

	ortho := make(map[string]Ortho, len(storage.OrthoContext))
	for typ, flags := range storage.OrthoContext {
		if flags < 0 {
			return nil, fmt.Errorf("negative orthographic context for %q", typ)
		}
		ortho[typ] = Ortho(flags)
	}

	return NewParams(members(storage.AbbrevTypes), members(storage.SentStarters), collocations, ortho), nil
}

// EncodeJSON serializes p as Punkt JSON training data.
func EncodeJSON(p *Params) ([]byte, error) {
	storage := &sentences.Storage{
		AbbrevTypes:  sentences.SetString{},
		Collocations: sentences.SetString{},
		SentStarters: sentences.SetString{},
		OrthoContext: sentences.SetString{},
	}
	for _, a := range p.Abbreviations() {
		storage.AbbrevTypes[a] = 1
	}
	for _, c := range p.Collocations() {
		storage.Collocations[c.First+","+c.Second] = 1
	}
	for _, s := range p.SentenceStarters() {
		storage.SentStarters[s] = 1
	}
	for typ, flags := range p.OrthoContexts() {
		storage.OrthoContext[typ] = int(flags)
	}

	data, err := json.Marshal(storage)
	if err != nil {
		return nil, fmt.Errorf("model: encoding punkt json: %w", err)
	}
	return data, nil
}

// members returns the keys of a set table whose value is non-zero.
func members(set map[string]int) []string {
	out := make([]string, 0, len(set))
	for k, v := range set {
		if v != 0 {
			out = append(out, k)
		}
	}
	return out
}
