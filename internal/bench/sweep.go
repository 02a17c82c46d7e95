package bench

import (
	"sort"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/model"
)

// CompareResult holds metrics for one realignment policy.
type CompareResult struct {
	Policy  sentsplit.RealignPolicy
	Metrics Metrics
}

// Compare evaluates the corpus once per realignment policy, sharing one
// loaded model, and returns results sorted by weighted score.
func Compare(language string, m model.Model, docs []*Document, cfg Config, policies []sentsplit.RealignPolicy) ([]CompareResult, error) {
	var results []CompareResult

	for _, policy := range policies {
		r, err := sentsplit.New(language, sentsplit.WithModel(m), sentsplit.WithRealign(policy))
		if err != nil {
			return nil, err
		}

		agg, err := EvaluateCorpus(r, docs, cfg)
		if err != nil {
			return nil, err
		}

		results = append(results, CompareResult{
			Policy:  policy,
			Metrics: agg,
		})
	}

	// Sort by weighted score descending; ties keep policy order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
