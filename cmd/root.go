// Package cmd implements the command-line interface for vidshelf.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/color"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/log"
	"github.com/vidshelf/vidshelf/style"
	"github.com/vidshelf/vidshelf/tui"
	"github.com/vidshelf/vidshelf/util"
	"github.com/vidshelf/vidshelf/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("source", "S", []string{}, "Video metadata documents to load, in merge order (paths, http(s):// or s3:// URLs)")
	lo.Must0(viper.BindPFlag(key.SourcesPaths, rootCmd.PersistentFlags().Lookup("source")))

	rootCmd.PersistentFlags().IntP("page-size", "p", 0, "Number of videos shown per page")
	lo.Must0(viper.BindPFlag(key.GalleryPageSize, rootCmd.PersistentFlags().Lookup("page-size")))

	rootCmd.PersistentFlags().Bool("no-cache", false, "Fetch the sources even when a cached video list exists")

	rootCmd.Flags().BoolP("infinite", "i", false, "Append pages while scrolling instead of paging")
	lo.Must0(viper.BindPFlag(key.GalleryInfiniteScroll, rootCmd.Flags().Lookup("infinite")))

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the vidshelf application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "A terminal gallery for browsing, searching and playing generated videos",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A terminal gallery for browsing, searching and playing generated videos"),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("no-cache")) {
			viper.Set(key.GalleryUseCache, false)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		checkPlayer()
		handleErr(tui.Run(tui.OptionsFromConfig()))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
