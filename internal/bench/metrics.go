package bench

import (
	"fmt"

	sentsplit "github.com/jamesainslie/go-sentsplit"
)

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // byte match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       3,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Evaluate compares predicted boundaries against ground truth.
// Uses greedy left-to-right matching within tolerance.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			diff := p - t
			if diff < 0 {
				diff = -diff
			}
			if diff <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return score(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

// Sum aggregates the counts of several evaluations and rescores them.
func Sum(ms []Metrics, cfg Config) Metrics {
	var tp, fp, fn int
	for _, m := range ms {
		tp += m.TruePositives
		fp += m.FalsePositives
		fn += m.FalseNegatives
	}
	return score(tp, fp, fn, cfg)
}

func score(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}

	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}

	return m
}

// EvaluateDocument splits the document's raw text with r and scores the
// predicted sentence ends against the gold ones.
func EvaluateDocument(r *sentsplit.Resolver, doc *Document, cfg Config) (Metrics, error) {
	spans, err := r.TokenizeSpans(doc.RawText)
	if err != nil {
		return Metrics{}, fmt.Errorf("splitting %s: %w", doc.ID, err)
	}

	predicted := make([]int, len(spans))
	for i, sp := range spans {
		predicted[i] = sp.End
	}
	return Evaluate(predicted, doc.Boundaries(), cfg), nil
}

// EvaluateCorpus scores every document and returns the aggregate.
func EvaluateCorpus(r *sentsplit.Resolver, docs []*Document, cfg Config) (Metrics, error) {
	ms := make([]Metrics, 0, len(docs))
	for _, doc := range docs {
		m, err := EvaluateDocument(r, doc, cfg)
		if err != nil {
			return Metrics{}, err
		}
		ms = append(ms, m)
	}
	return Sum(ms, cfg), nil
}
