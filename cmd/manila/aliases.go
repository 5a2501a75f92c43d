package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"manila/internal/alias"
)

func newAliasesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "aliases",
		Short: "List the folder names recognized as aliases for each category",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := alias.Default()
			rows := make([][]string, 0)
			for _, category := range registry.Categories() {
				aliases := registry.Aliases(category)
				if len(aliases) == 0 {
					continue
				}
				rows = append(rows, []string{category, strings.Join(aliases, ", ")})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"Category", "Aliases"},
				rows,
				[]columnAlignment{alignLeft, alignLeft}))
			return nil
		},
	}
}
