package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"manila/internal/classify"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known categories and their file extensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := classify.Default()
			rows := make([][]string, 0)
			for _, category := range table.Categories() {
				exts := table.Extensions(category)
				rows = append(rows, []string{
					category,
					strconv.Itoa(len(exts)),
					strings.Join(exts, ", "),
				})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"Category", "Count", "Extensions"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft}))
			return nil
		},
	}
}
