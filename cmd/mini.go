package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/vidshelf/vidshelf/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)
}

// miniCmd launches the application in a lightweight, minimalist terminal interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the application in a lightweight, minimalist terminal interface",
	Long:  `Browse, search and play videos through a sequence of simple prompts instead of the full-screen interface.`,
	Run: func(cmd *cobra.Command, args []string) {
		checkPlayer()

		options := mini.OptionsFromConfig()
		handleErr(mini.Run(context.Background(), &options))
	},
}
