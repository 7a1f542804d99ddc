package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/color"
	"github.com/vidshelf/vidshelf/config"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/style"
	"golang.org/x/exp/slices"
)

func completionConfigKeys(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	keys := lo.Keys(config.Default)
	slices.Sort(keys)
	return keys, cobra.ShellCompDirectiveNoFileComp
}

// configKey takes the key from the first argument or the --key flag and checks it is registered.
func configKey(cmd *cobra.Command, args []string) config.Field {
	k := lo.Must(cmd.Flags().GetString("key"))
	if len(args) > 0 {
		k = args[0]
	}
	if k == "" {
		handleErr(errors.New("key is required as an argument or --key flag"))
	}

	field, err := config.Lookup(k)
	var unknown *config.UnknownKeyError
	if errors.As(err, &unknown) {
		handleErr(fmt.Errorf(
			"unknown key %s, did you mean %s?",
			style.Fg(color.Red)(unknown.Key),
			style.Fg(color.Yellow)(unknown.Closest),
		))
	}
	return field
}

func done(format string, a ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, a...))
}

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
}

func init() {
	configCmd.AddCommand(configInfoCmd)
	configInfoCmd.Flags().StringSliceP("key", "k", nil, "Only describe these keys")
	configInfoCmd.Flags().BoolP("json", "j", false, "Print the fields as JSON")
	_ = configInfoCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Describe settings with their current and default values",
	Run: func(cmd *cobra.Command, args []string) {
		keys := lo.Must(cmd.Flags().GetStringSlice("key"))
		if len(keys) == 0 {
			keys = lo.Keys(config.Default)
		}
		slices.Sort(keys)

		fields := lo.Map(keys, func(k string, _ int) config.Field {
			f, err := config.Lookup(k)
			handleErr(err)
			return f
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(fields))
			return
		}

		for i := range fields {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(fields[i].Pretty())
		}
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configGetCmd.Flags().StringP("key", "k", "", "Key to read")
	_ = configGetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configGetCmd = &cobra.Command{
	Use:               "get [key]",
	Short:             "Print the current value of a setting",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := configKey(cmd, args)
		fmt.Println(viper.Get(field.Key))
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configSetCmd.Flags().StringP("key", "k", "", "Key to change")
	configSetCmd.Flags().StringSliceP("value", "v", nil, "New value, repeat for list settings")
	_ = configSetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configSetCmd = &cobra.Command{
	Use:               "set [key] [value...]",
	Short:             "Change a setting and write it to the config file",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		field := configKey(cmd, args)

		raw := lo.Must(cmd.Flags().GetStringSlice("value"))
		if len(args) > 1 {
			raw = args[1:]
		}

		value, err := field.Parse(raw)
		handleErr(err)

		viper.Set(field.Key, value)
		handleErr(config.Save())
		done("set %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(value)))
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
	configResetCmd.Flags().StringP("key", "k", "", "Key to restore")
	configResetCmd.Flags().BoolP("all", "a", false, "Restore every setting")
	configResetCmd.MarkFlagsMutuallyExclusive("key", "all")
	_ = configResetCmd.RegisterFlagCompletionFunc("key", completionConfigKeys)
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Restore settings to their defaults",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("all")) {
			for k, field := range config.Default {
				viper.Set(k, field.Value)
			}
			handleErr(config.Save())
			done("reset all settings")
			return
		}

		field := configKey(cmd, args)
		viper.Set(field.Key, field.Value)
		handleErr(config.Save())
		done("reset %s to %s", style.Fg(color.Purple)(field.Key), style.Fg(color.Yellow)(fmt.Sprint(field.Value)))
	},
}

func init() {
	configCmd.AddCommand(configWriteCmd)
	configWriteCmd.Flags().BoolP("force", "f", false, "Replace an existing config file")
}

var configWriteCmd = &cobra.Command{
	Use:   "write",
	Short: "Write the active settings to a new config file",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("force")) {
			handleErr(deletePath(config.Path)())
		}

		handleErr(viper.SafeWriteConfig())
		done("wrote config to %s", config.Path())
	},
}

func init() {
	configCmd.AddCommand(configDeleteCmd)
}

var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Aliases: []string{"remove"},
	Short:   "Delete the config file",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(config.Remove())
		done("deleted config")
	},
}
