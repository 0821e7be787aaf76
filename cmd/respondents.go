package cmd

import (
	"fmt"

	"github.com/akeleontechnologies/taam-app/internal/charts"
	"github.com/akeleontechnologies/taam-app/internal/utils"
	"github.com/spf13/cobra"
)

var (
	respPage     int
	respPageSize int
	respIndex    int
)

var respondentsCmd = &cobra.Command{
	Use:   "respondents <dataset>",
	Short: "Generate per-respondent radar chart specs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, datasetID, err := resolveTable(args[0])
		if err != nil {
			return err
		}
		opt := charts.Options{
			Workers:   workers(),
			OwnerID:   defaultOwner(),
			DatasetID: datasetID,
		}

		if cmd.Flags().Changed("index") {
			spec, ok := charts.RespondentChart(t, respIndex, opt)
			if !ok {
				return fmt.Errorf("respondent index %d out of range (0-%d)", respIndex, len(t.Rows)-1)
			}
			b, err := utils.PrettyJSON(spec)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		pageSize := respPageSize
		if pageSize <= 0 {
			pageSize = defaultPageSize()
		}
		page := charts.RespondentCharts(t, respPage, pageSize, opt)
		b, err := utils.PrettyJSON(page)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(respondentsCmd)
	respondentsCmd.Flags().IntVar(&respPage, "page", 1, "1-based page number")
	respondentsCmd.Flags().IntVar(&respPageSize, "page-size", 0, "respondents per page (default from config)")
	respondentsCmd.Flags().IntVar(&respIndex, "index", 0, "emit a single respondent chart by 0-based index")
}
