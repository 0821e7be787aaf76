package cmd

import (
	"fmt"

	"github.com/akeleontechnologies/taam-app/internal/charts"
	"github.com/akeleontechnologies/taam-app/internal/utils"
	"github.com/spf13/cobra"
)

var (
	filterAge     string
	filterGender  string
	filterEmirate string
	filterOptions bool
)

var filterCmd = &cobra.Command{
	Use:   "filter <dataset>",
	Short: "Compute a persona distribution over a demographic subset",
	Example: `  taam filter wave1 --age "18-24" --gender Female
  taam filter wave1 --emirate Dubai
  taam filter wave1 --options`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := resolveTable(args[0])
		if err != nil {
			return err
		}
		if filterOptions {
			b, err := utils.PrettyJSON(charts.ListFilterOptions(t))
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		opt := charts.Options{Workers: workers(), OwnerID: defaultOwner()}
		fd := charts.FilterDistribution(t, charts.Filters{
			Age:     filterAge,
			Gender:  filterGender,
			Emirate: filterEmirate,
		}, opt)
		b, err := utils.PrettyJSON(fd)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
	filterCmd.Flags().StringVar(&filterAge, "age", "", "age group to match exactly")
	filterCmd.Flags().StringVar(&filterGender, "gender", "", "gender to match exactly")
	filterCmd.Flags().StringVar(&filterEmirate, "emirate", "", "emirate to match exactly")
	filterCmd.Flags().BoolVar(&filterOptions, "options", false, "list distinct demographic values instead")
}
