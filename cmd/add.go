package cmd

import (
	"fmt"

	"github.com/akeleontechnologies/taam-app/internal/workspace"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Import dataset files into the workspace",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		for _, file := range args {
			d, err := ws.AddDataset(file)
			if err != nil {
				return fmt.Errorf("add %s: %w", file, err)
			}
			kind := "tabular"
			if d.IsSurvey {
				kind = "survey"
			}
			fmt.Printf("✓ Added %s [%s]: %d rows, %d columns (%s)\n",
				d.Name, workspace.ShortID(d.ID), d.Rows, d.Columns, kind)
		}
		return ws.Save()
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
