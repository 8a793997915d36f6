package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var errNoSettingsService = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the stored defaults used by every command.

Settings are stored in ~/.topica/config.toml. Command-line flags and
request fields override them for a single run.`,
	RunE: runSettingsList,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every setting with its effective value",
	Args:  cobra.NoArgs,
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print the effective value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a setting",
	Long: `Store a setting.

Examples:
  topica settings set model.topics 8
  topica settings set model.estimator gibbs
  topica settings set cleaning.stopwords_file ~/lists/custom.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset KEY",
	Short: "Restore the default value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	out := cmd.OutOrStdout()
	for _, key := range settingsService.Keys() {
		if err := printSetting(out, key); err != nil {
			return err
		}
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	v, err := settingsService.Lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	return printSetting(cmd.OutOrStdout(), args[0])
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNoSettingsService
	}

	if err := settingsService.Reset(args[0]); err != nil {
		return err
	}
	return printSetting(cmd.OutOrStdout(), args[0])
}

func printSetting(w io.Writer, key string) error {
	v, err := settingsService.Lookup(key)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s = %s\n", key, v)
	return nil
}
