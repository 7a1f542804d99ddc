package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/vidshelf/vidshelf/constant"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/query"
	"github.com/vidshelf/vidshelf/store"
	"github.com/vidshelf/vidshelf/util"
	"github.com/vidshelf/vidshelf/where"
)

// clearTarget defines a resource eligible for cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

// deletePath removes the artifact at location, which may already be gone.
func deletePath(location func() string) func() error {
	return func() error {
		if err := util.Delete(location()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
}

// clearStore removes the cached video list and the saved page from the configured store backend.
func clearStore() error {
	ctx := context.Background()
	s, err := store.Open(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	return errors.Join(
		s.Delete(ctx, constant.RecordsCacheKey),
		s.Delete(ctx, constant.PageKey),
	)
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cached videos and saved page", "store", mo.Some("s"), clearStore},
	{"queries history", "queries", mo.Some("q"), func() error {
		query.Unload()
		return deletePath(where.Queries)()
	}},
	{"downloaded videos", "downloads", mo.Some("d"), deletePath(where.Downloads)},
	{"cache directory", "cache", mo.Some("c"), deletePath(where.Cache)},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd manages the cleanup of cached and downloaded application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached and downloaded application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			e := util.PrintErasable(cmd.OutOrStdout(), fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			e()
			handleErr(err)
			cmd.Printf("%s Cleared %s\n", icon.Get(icon.Success), target.name)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
