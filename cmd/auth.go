package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/auth"
	"github.com/vidshelf/vidshelf/icon"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/store"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd groups credential management for external services.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage credentials for external services",
}

func init() {
	authCmd.AddCommand(authRedisCmd)

	authRedisCmd.Flags().BoolP("delete", "D", false, "Remove the stored password")
}

// authRedisCmd stores the password of the redis store backend in the system keyring.
var authRedisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Save the redis store password in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("delete")) {
			handleErr(auth.DeleteRedisPassword())
			fmt.Printf("%s Redis password removed\n", icon.Get(icon.Success))
			return
		}

		if viper.GetString(key.StoreBackend) != store.BackendRedis {
			confirm := survey.Confirm{
				Message: "The redis store backend is disabled. Enable?",
				Default: false,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if response {
				viper.Set(key.StoreBackend, store.BackendRedis)
				switch err := viper.WriteConfig(); err.(type) {
				case viper.ConfigFileNotFoundError:
					handleErr(viper.SafeWriteConfig())
				default:
					handleErr(err)
				}
			}
		}

		input := survey.Password{
			Message: fmt.Sprintf("Password for redis at %s:", viper.GetString(key.StoreRedisAddr)),
		}
		var password string
		handleErr(survey.AskOne(&input, &password))

		if password == "" {
			handleErr(errors.New("password is empty, nothing saved"))
		}

		handleErr(auth.SetRedisPassword(password))
		fmt.Printf("%s Redis password saved to the system keyring\n", icon.Get(icon.Success))
	},
}
