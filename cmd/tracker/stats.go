package main

import "github.com/spf13/cobra"

// statsCmd implements 'tracker stats'.
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show summary statistics",
		Run: func(_ *cobra.Command, _ []string) {
			s, err := openStore()
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatStats(s.Stats()))
		},
	}
}
