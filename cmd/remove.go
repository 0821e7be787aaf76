package cmd

import (
	"fmt"

	"github.com/akeleontechnologies/taam-app/internal/workspace"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <dataset>",
	Short: "Remove a dataset from the workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		d, err := ws.Remove(args[0])
		if err != nil {
			return err
		}
		if err := ws.Save(); err != nil {
			return err
		}
		fmt.Printf("✓ Removed %s [%s]\n", d.Name, workspace.ShortID(d.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
