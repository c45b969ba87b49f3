package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the question catalog",
	Run: func(cmd *cobra.Command, args []string) {
		phase := ""
		for _, q := range catalog.All() {
			if q.Phase != phase {
				phase = q.Phase
				fmt.Printf("\n== %s ==\n\n", phase)
			}
			fmt.Printf("%2d. %s  [%s]\n", q.ID, q.Prompt, q.Category)
			for _, opt := range q.Options {
				fmt.Printf("      %s\n", opt)
			}
		}
	},
}
