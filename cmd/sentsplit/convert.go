package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-sentsplit/model"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a model artifact between Punkt JSON (.json) and protobuf (.pb)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			data, err := os.ReadFile(in)
			if err != nil {
				return fmt.Errorf("%w: %w", model.ErrMissingResource, err)
			}
			params, err := model.Decode(in, data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", in, err)
			}
			encoded, err := model.Encode(out, params)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, encoded, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}

			st := params.Stats()
			a.logger.Info("model converted", "in", in, "out", out, "bytes", len(encoded))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d abbreviations, %d collocations, %d sentence starters, %d orthographic contexts)\n",
				out, st.Abbreviations, st.Collocations, st.SentenceStarters, st.OrthoContexts)
			return nil
		},
	}
}
