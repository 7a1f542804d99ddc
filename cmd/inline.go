package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vidshelf/vidshelf/filesystem"
	"github.com/vidshelf/vidshelf/inline"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/query"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Only keep videos whose prompt contains this term")
	inlineCmd.Flags().StringP("pages", "P", "", "Pages to print: first, last, all, a page number or a from-to range")
	inlineCmd.Flags().StringP("video", "V", "", "Pick a single video from the printed pages: first, last or an index starting from 0")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("pages", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"first", "last", "all"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Execute the application in non-interactive, scriptable inline mode",
	Long: `Load the gallery, apply a search and print one or more pages without any interaction.

Page selectors:
  first - first page
  last - last page
  all - every page
  [number] - a single page (starting from 1)
  [from]-[to] - a range of pages

Video selectors:
  first - first video of the printed pages
  last - last video of the printed pages
  [number] - select video by index (starting from 0)

Without the json flag one media URL is printed per line.`,
	Example: "  vidshelf inline --query cat --pages all --json",
	Run: func(cmd *cobra.Command, args []string) {
		output := lo.Must(cmd.Flags().GetString("output"))
		var writer io.Writer = os.Stdout
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		pages := mo.None[inline.PageSelector]()
		if flag := lo.Must(cmd.Flags().GetString("pages")); flag != "" {
			fn, err := inline.ParsePages(flag)
			handleErr(err)
			pages = mo.Some(fn)
		}

		picker := mo.None[inline.Picker]()
		if flag := lo.Must(cmd.Flags().GetString("video")); flag != "" {
			fn, err := inline.ParsePicker(flag)
			handleErr(err)
			picker = mo.Some(fn)
		}

		libraryOptions := library.OptionsFromConfig()
		libraryOptions.RememberPage = false

		options := &inline.Options{
			Out:     writer,
			Library: libraryOptions,
			Json:    lo.Must(cmd.Flags().GetBool("json")),
			Query:   lo.Must(cmd.Flags().GetString("query")),
			Pages:   pages,
			Picker:  picker,
		}

		handleErr(inline.Run(context.Background(), options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
}

// inlineSchemaCmd generates the JSON schema for structured inline mode output.
var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate the JSON schema for structured inline mode output",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(json.NewEncoder(os.Stdout).Encode(inline.Schema()))
	},
}
