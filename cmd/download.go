package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vidshelf/vidshelf/color"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/inline"
	"github.com/vidshelf/vidshelf/library"
	"github.com/vidshelf/vidshelf/media"
	"github.com/vidshelf/vidshelf/style"
	"github.com/vidshelf/vidshelf/util"
	"github.com/vidshelf/vidshelf/video"
	"github.com/vidshelf/vidshelf/where"
)

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringP("query", "q", "", "Download every video whose prompt contains this term")
	downloadCmd.Flags().StringP("video", "V", "", "Only download one of the matches: first, last or an index starting from 0")
	downloadCmd.Flags().StringP("dir", "d", "", "Directory to save the videos to instead of the configured downloads path")
	downloadCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation before downloading several videos")
}

// downloadCmd saves videos to disk by id or by search term.
var downloadCmd = &cobra.Command{
	Use:   "download [id...]",
	Short: "Download videos by id or by search term",
	Example: "  vidshelf download 1f3e 9ab2\n" +
		"  vidshelf download --query sunset --video first",
	Run: func(cmd *cobra.Command, args []string) {
		term := lo.Must(cmd.Flags().GetString("query"))
		if len(args) == 0 && term == "" {
			handleErr(errors.New("pass video ids or --query"))
		}

		ctx := context.Background()
		options := library.OptionsFromConfig()
		options.RememberPage = false

		erase := util.PrintErasable(cmd.OutOrStdout(), icon.Get(icon.Progress)+" Loading videos...")
		session, err := library.Open(ctx, options)
		erase()
		handleErr(err)
		defer func() { _ = session.Close(ctx) }()

		var records []video.Record
		if len(args) > 0 {
			byID := lo.KeyBy(session.State.Records(), func(r video.Record) string { return r.ID })
			for _, id := range args {
				record, ok := byID[id]
				if !ok {
					handleErr(fmt.Errorf("no video with id %s", id))
				}
				records = append(records, record)
			}
		} else {
			session.State.SetSearchTerm(term)
			records = session.State.Filtered()
		}

		if flag := lo.Must(cmd.Flags().GetString("video")); flag != "" {
			picker, err := inline.ParsePicker(flag)
			handleErr(err)
			picked, ok := picker(records).Get()
			records = nil
			if ok {
				records = []video.Record{picked}
			}
		}

		if len(records) == 0 {
			cmd.Println(style.Fg(color.Yellow)(icon.Get(icon.Search) + " No videos found"))
			return
		}

		if len(records) > 1 && !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: fmt.Sprintf("Download %s?", util.Quantify(len(records), "video", "videos")),
				Default: true,
			}, &confirmed))
			if !confirmed {
				return
			}
		}

		dir := lo.Must(cmd.Flags().GetString("dir"))
		if dir == "" {
			dir = where.Downloads()
		}

		var failed int
		for _, record := range records {
			erase := util.PrintErasable(cmd.OutOrStdout(), fmt.Sprintf("%s Downloading %s...", icon.Get(icon.Download), record.ID))
			path, err := media.Download(ctx, record, dir)
			erase()

			if err != nil {
				failed++
				cmd.Println(style.Fg(color.Red)(fmt.Sprintf("%s %s: %s", icon.Get(icon.Fail), record.ID, err)))
				continue
			}
			cmd.Println(style.Fg(color.Green)(icon.Get(icon.Success)) + " " + path)
		}

		if failed > 0 {
			handleErr(fmt.Errorf("%s failed", util.Quantify(failed, "download", "downloads")))
		}
	},
}
