package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-optimizer/internal/prompts"
)

var nichesJSON bool

var nichesCmd = &cobra.Command{
	Use:   "niches",
	Short: "List the supported target niches",
	RunE: func(cmd *cobra.Command, _ []string) error {
		niches := prompts.Niches()
		if nichesJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(niches)
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tNAME\tFOCUS")
		for _, n := range niches {
			fmt.Fprintf(w, "%s\t%s\t%s\n", n.Key, n.Name, n.Focus)
		}
		return w.Flush()
	},
}

func init() {
	nichesCmd.Flags().BoolVar(&nichesJSON, "json", false, "Output JSON")
	rootCmd.AddCommand(nichesCmd)
}
