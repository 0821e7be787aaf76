package cmd

import (
	"fmt"

	"github.com/akeleontechnologies/taam-app/internal/utils"
	"github.com/akeleontechnologies/taam-app/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	listJSON bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List datasets in the workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := openWorkspace()
		if err != nil {
			return err
		}
		if listJSON {
			b, err := utils.PrettyJSON(ws.Datasets)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		if len(ws.Datasets) == 0 {
			fmt.Println("(no datasets)")
			return nil
		}
		fmt.Printf("%-10s %-24s %6s %5s %-8s %s\n", "ID", "NAME", "ROWS", "COLS", "TYPE", "ADDED")
		for _, d := range ws.Datasets {
			kind := "tabular"
			if d.IsSurvey {
				kind = "survey"
			}
			fmt.Printf("%-10s %-24s %6d %5d %-8s %s\n",
				workspace.ShortID(d.ID), d.Name, d.Rows, d.Columns, kind,
				d.AddedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output dataset metadata as JSON")
}
