package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-sentsplit/profile"
)

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and their punctuation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader := newLoader(a)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LANGUAGE\tEXTERNAL\tINTERNAL\tMODEL")
			for _, lang := range profile.Languages() {
				p, err := profile.Lookup(string(lang))
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", lang, runeList(p.External()), runeList(p.Internal()), loader.Path(p))
			}
			return w.Flush()
		},
	}
}

func languageList() string {
	names := make([]string, 0, 2)
	for _, lang := range profile.Languages() {
		names = append(names, string(lang))
	}
	return strings.Join(names, ", ")
}

func runeList(rs []rune) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
