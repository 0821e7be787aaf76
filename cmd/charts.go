package cmd

import (
	"fmt"

	"github.com/akeleontechnologies/taam-app/internal/charts"
	"github.com/akeleontechnologies/taam-app/internal/tabular"
	"github.com/akeleontechnologies/taam-app/internal/utils"
	"github.com/spf13/cobra"
)

var (
	chartsObserved  bool
	chartsOwner     string
	chartsDatasetID string
	chartsOutput    string
)

var chartsCmd = &cobra.Command{
	Use:   "charts <dataset>",
	Short: "Generate chart specs for a dataset",
	Example: `  taam charts survey.csv
  taam charts wave1 --observed --output specs.json
  taam charts wave1 --owner report-service --dataset-id prod-42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, datasetID, err := resolveTable(args[0])
		if err != nil {
			return err
		}
		opt := charts.Options{
			Workers:         workers(),
			OwnerID:         defaultOwner(),
			DatasetID:       datasetID,
			IncludeObserved: chartsObserved,
		}
		if chartsOwner != "" {
			opt.OwnerID = chartsOwner
		}
		if chartsDatasetID != "" {
			opt.DatasetID = chartsDatasetID
		}

		var specs []charts.ChartSpec
		if tabular.IsSurvey(t.Columns) {
			specs = charts.SurveySpecs(t, opt)
		} else {
			specs = charts.GenericSpecs(t, opt)
		}
		b, err := utils.PrettyJSON(specs)
		if err != nil {
			return err
		}
		if chartsOutput != "" {
			if err := utils.SafeWriteFile(chartsOutput, b); err != nil {
				return err
			}
			fmt.Printf("✓ Wrote %d chart specs to %s\n", len(specs), chartsOutput)
			return nil
		}
		fmt.Println(string(b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	chartsCmd.Flags().BoolVar(&chartsObserved, "observed", false, "include a heatmap of observed persona averages")
	chartsCmd.Flags().StringVar(&chartsOwner, "owner", "", "owner id stamped into specs (default from config)")
	chartsCmd.Flags().StringVar(&chartsDatasetID, "dataset-id", "", "dataset id stamped into specs")
	chartsCmd.Flags().StringVarP(&chartsOutput, "output", "o", "", "write specs JSON to a file instead of stdout")
}
