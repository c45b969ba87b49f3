package cmd

import (
	"github.com/spf13/cobra"

	"github.com/krishanraja/mindmaker-for-leaders-sub000/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Take the assessment in the terminal",
	Long:  "Interactive walkthrough of the assessment with a scored summary at the end. Runs entirely offline.",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	return tui.Run()
}
