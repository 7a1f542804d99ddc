package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/color"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/loader"
	"github.com/vidshelf/vidshelf/style"
	"github.com/vidshelf/vidshelf/util"
	"github.com/vidshelf/vidshelf/video"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for inspecting video metadata sources.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Inspect the configured video metadata sources",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)

	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays the configured sources in merge order.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the configured sources in the order their videos are merged",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("raw")) {
			cmd.Println(style.New().Foreground(color.HiBlue).Bold(true).Render("Sources:"))
		}

		for _, location := range viper.GetStringSlice(key.SourcesPaths) {
			cmd.Println(location)
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesCheckCmd)
	sourcesCheckCmd.SetOut(os.Stdout)
}

// sourcesCheckCmd fetches every source and reports how many records it holds.
var sourcesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch every configured source and report how many videos it holds",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			ctx    = context.Background()
			l      = loader.New()
			failed int
		)

		for _, location := range viper.GetStringSlice(key.SourcesPaths) {
			erase := util.PrintErasable(cmd.OutOrStdout(), fmt.Sprintf("%s Checking %s...", icon.Get(icon.Progress), location))
			count, err := countRecords(ctx, l, location)
			erase()

			if err != nil {
				failed++
				cmd.Printf("%s %s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), location, style.Faint(err.Error()))
				continue
			}

			cmd.Printf("%s %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), location, style.Fg(color.Yellow)(util.Quantify(count, "video", "videos")))
		}

		if failed > 0 {
			handleErr(fmt.Errorf("%s unavailable", util.Quantify(failed, "source is", "sources are")))
		}
	},
}

func countRecords(ctx context.Context, l *loader.Loader, location string) (int, error) {
	body, err := l.Open(ctx, location)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	raws, err := video.Decode(body)
	if err != nil {
		return 0, err
	}

	return len(raws), nil
}
