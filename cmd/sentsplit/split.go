package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSplitCmd(a *app) *cobra.Command {
	var (
		spans   bool
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "split [TEXT|-]",
		Short: "Print the sentences of TEXT, one per line",
		Long: `Split TEXT into sentences and print one per line. With no argument or "-",
the text is read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if explain {
				decisions, err := r.Explain(text)
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "START\tEND\tTOKEN\tBREAK\tREASON")
				for _, d := range decisions {
					fmt.Fprintf(w, "%d\t%d\t%s\t%v\t%s\n", d.Start, d.End, d.Token, d.Break, d.Reason)
				}
				return w.Flush()
			}

			if spans {
				result, err := r.TokenizeSpans(text)
				if err != nil {
					return err
				}
				for _, sp := range result {
					fmt.Fprintf(out, "%d\t%d\t%s\n", sp.Start, sp.End, oneLine(sp.Text))
				}
				return nil
			}

			sentences, err := r.Tokenize(text)
			if err != nil {
				return err
			}
			for _, s := range sentences {
				fmt.Fprintln(out, oneLine(s))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&spans, "spans", false, "print byte offsets with each sentence")
	cmd.Flags().BoolVar(&explain, "explain", false, "print every candidate boundary and the rule that decided it")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [TEXT|-]",
		Short: "Report whether TEXT ends at a sentence boundary",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.resolver()
			if err != nil {
				return err
			}
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			complete, err := r.IsComplete(text)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Text: %q\n", text)
			fmt.Fprintf(cmd.OutOrStdout(), "Complete: %v\n", complete)
			return nil
		},
	}
}

// readText joins args, or reads stdin when args are empty or "-".
func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

// oneLine folds line breaks inside a sentence so output stays one per line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
