package cmd

import (
	"fmt"

	"github.com/akeleontechnologies/taam-app/internal/charts"
	"github.com/akeleontechnologies/taam-app/internal/utils"
	"github.com/spf13/cobra"
)

var (
	clsRespondents bool
	clsJSON        bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify <dataset>",
	Short: "Classify respondents into TAAM personas",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, _, err := resolveTable(args[0])
		if err != nil {
			return err
		}
		results := charts.ClassifyAll(t.Records(), workers())
		dist := charts.Distribution(results)

		if clsJSON {
			b, err := utils.PrettyJSON(dist)
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		anchors := 0
		for _, r := range results {
			if r.FromAnchor() {
				anchors++
			}
		}
		fmt.Printf("✓ Classified %s: %d rows, %d resolved, %d unknown (%d via anchor)\n",
			t.Name, len(results), dist.TotalRespondents, len(results)-dist.TotalRespondents, anchors)
		fmt.Println()
		fmt.Printf("%-4s %-22s %6s %8s\n", "CODE", "PERSONA", "COUNT", "PERCENT")
		for _, e := range dist.Distribution {
			fmt.Printf("%-4s %-22s %6d %7.2f%%\n", e.PersonaCode, e.Persona, e.Count, e.Percent)
		}

		if clsRespondents {
			fmt.Println()
			for i, r := range results {
				code := r.Code
				if code == "" {
					code = "-"
				}
				// index matches --index on the respondents command
				fmt.Printf("[%d] %s %s (%s)\n", i, code, r.Name, r.Source)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVar(&clsRespondents, "respondents", false, "list per-respondent classifications")
	classifyCmd.Flags().BoolVar(&clsJSON, "json", false, "output the distribution as JSON")
}
