package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/internal/bench"
	"github.com/jamesainslie/go-sentsplit/model"
	"github.com/jamesainslie/go-sentsplit/profile"
)

func newLoader(a *app) *model.FileLoader {
	return model.NewFileLoader(a.dataRoot()).WithLogger(a.logger)
}

func newBenchCmd(a *app) *cobra.Command {
	var (
		corpusDir string
		compare   bool
		cfg       = bench.DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Evaluate sentence splitting against a gold corpus",
		Long: `Evaluate against gold files: .txt files with "# Source:" and "# Language:"
header lines followed by one sentence per line. With --compare, every
realignment policy is scored and ranked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lang, err := a.language()
			if err != nil {
				return err
			}
			p, err := profile.Lookup(lang)
			if err != nil {
				return err
			}

			docs, err := bench.LoadCorpus(corpusDir, string(p.Language()))
			if err != nil {
				return fmt.Errorf("loading corpus: %w", err)
			}
			if len(docs) == 0 {
				return fmt.Errorf("no %s documents in %s", p.Language(), corpusDir)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loaded %d documents from %s\n\n", len(docs), corpusDir)

			m, err := newLoader(a).Load(p)
			if err != nil {
				return err
			}

			if compare {
				return runCompare(out, string(p.Language()), m, docs, cfg)
			}

			policy, err := a.realign()
			if err != nil {
				return err
			}
			r, err := sentsplit.New(lang, sentsplit.WithModel(m), sentsplit.WithRealign(policy), sentsplit.WithLogger(a.logger))
			if err != nil {
				return err
			}
			return runSingle(out, r, docs, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&corpusDir, "corpus", "testdata/corpus/latin", "directory containing gold files")
	f.IntVar(&cfg.Tolerance, "tolerance", cfg.Tolerance, "byte tolerance for boundary matching")
	f.Float64Var(&cfg.PrecisionWeight, "wp", cfg.PrecisionWeight, "precision weight")
	f.Float64Var(&cfg.RecallWeight, "wr", cfg.RecallWeight, "recall weight")
	f.BoolVar(&compare, "compare", false, "rank all realignment policies")
	return cmd
}

func runSingle(out io.Writer, r *sentsplit.Resolver, docs []*bench.Document, cfg bench.Config) error {
	m, err := bench.EvaluateCorpus(r, docs, cfg)
	if err != nil {
		return err
	}
	printMetrics(out, m)
	return nil
}

func runCompare(out io.Writer, lang string, m model.Model, docs []*bench.Document, cfg bench.Config) error {
	results, err := bench.Compare(lang, m, docs, cfg, sentsplit.RealignPolicies())
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Realignment Comparison (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Fprintln(out, strings.Repeat("-", 50))
	fmt.Fprintf(out, "%-10s %-8s %-8s %-8s %-8s\n", "Policy", "Prec", "Rec", "F1", "Weighted")
	for _, r := range results {
		fmt.Fprintf(out, "%-10s %-8.2f %-8.2f %-8.2f %-8.2f\n",
			r.Policy, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, r.Metrics.WeightedScore)
	}
	fmt.Fprintln(out, strings.Repeat("-", 50))
	if len(results) > 0 {
		fmt.Fprintf(out, "Best: %s (Weighted: %.2f)\n", results[0].Policy, results[0].Metrics.WeightedScore)
	}
	return nil
}

func printMetrics(out io.Writer, m bench.Metrics) {
	fmt.Fprintf(out, "Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Fprintf(out, "(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)
}
