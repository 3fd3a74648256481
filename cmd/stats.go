package cmd

import (
	"fmt"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/spf13/cobra"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"statistics"},
	Short:   "Show task statistics",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, _, err := GetStore()
		if err != nil {
			return err
		}
		st := taskStore.Statistics()
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), st)
		}
		ui.RenderStatistics(cmd.OutOrStdout(), st)
		return nil
	},
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "todolist version %s\n", GetVersion())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
