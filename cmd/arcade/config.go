package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-classics/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default settings",
	Long: `Prints the default settings of a game as YAML. Save the output as
<game>.yaml in ~/.arcade/configs, ./configs or --config-dir and edit it.

With --check the settings file that would be used is validated instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the settings file that would be used")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	out := cmd.OutOrStdout()

	if flagCheck {
		if err := config.Check(gameID, appCfg.ConfigDir); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s settings are valid\n", gameID)
		fmt.Fprintln(out, "searched:")
		for _, p := range config.SearchPaths(gameID, appCfg.ConfigDir) {
			fmt.Fprintf(out, "  %s\n", p)
		}
		return nil
	}

	data, err := config.DefaultYAML(gameID)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
