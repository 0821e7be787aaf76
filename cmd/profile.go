package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/akeleontechnologies/taam-app/internal/tabular"
	"github.com/akeleontechnologies/taam-app/internal/utils"
	"github.com/spf13/cobra"
)

var (
	profJSON   bool
	profOutput string
	profQuiet  bool
)

var profileCmd = &cobra.Command{
	Use:   "profile <file>...",
	Short: "Profile tabular files: schema, types, and sample values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var files []string
		seen := map[string]struct{}{}
		for _, arg := range args {
			matches, _ := filepath.Glob(arg)
			if len(matches) == 0 {
				// treat as literal path if exists
				if _, err := os.Stat(arg); err == nil {
					matches = []string{arg}
				}
			}
			for _, m := range matches {
				if _, ok := seen[m]; ok {
					continue
				}
				seen[m] = struct{}{}
				files = append(files, m)
			}
		}
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		sort.Strings(files)
		if profOutput != "" && len(files) > 1 {
			return fmt.Errorf("--output requires a single input file, got %d", len(files))
		}

		total := len(files)
		for i, path := range files {
			if total > 1 && !profQuiet {
				fmt.Printf("[%d/%d] Profiling %s...\n", i+1, total, filepath.Base(path))
			}
			t, err := tabular.Load(path)
			if err != nil {
				return err
			}
			p := t.Profile()

			var out []byte
			if profJSON {
				out, err = utils.PrettyJSON(p)
				if err != nil {
					return err
				}
			} else {
				out = []byte(p.Markdown(t.Name))
			}
			if profOutput != "" {
				if err := utils.SafeWriteFile(profOutput, out); err != nil {
					return err
				}
				fmt.Printf("✓ Wrote profile to %s\n", profOutput)
				continue
			}
			fmt.Println(string(out))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().BoolVar(&profJSON, "json", false, "output the profile as JSON")
	profileCmd.Flags().StringVarP(&profOutput, "output", "o", "", "write the profile to a file (single input only)")
	profileCmd.Flags().BoolVar(&profQuiet, "quiet", false, "suppress progress output")
}
