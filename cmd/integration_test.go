package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/akeleontechnologies/taam-app/internal/charts"
	"github.com/akeleontechnologies/taam-app/internal/workspace"
)

const surveyCSV = "Q8,Q9,Q10,Q11,Q12,Q13,Q14,Q15,Q16,Q17,Q18,Q19,Q20,Age,Gender,Emirate\n" +
	"5,4,5,4,5,4,3,2,4,5,5,4,e,18-24,Female,Dubai\n" +
	"1,2,1,2,2,1,2,1,2,1,3,2,,25-34,Male,Dubai\n" +
	"3,3,3,3,3,3,3,3,3,3,3,3,not sure,18-24,Female,Sharjah\n"

const genericCSV = "city,population\nDubai,100\nAbu Dhabi,50\n"

// resetFlags clears sticky flag values and Changed state that persist
// across invocations of the shared root command.
func resetFlags() {
	sticky := []struct {
		fs   *pflag.FlagSet
		name string
		def  string
	}{
		{classifyCmd.Flags(), "respondents", "false"},
		{classifyCmd.Flags(), "json", "false"},
		{chartsCmd.Flags(), "observed", "false"},
		{chartsCmd.Flags(), "owner", ""},
		{chartsCmd.Flags(), "dataset-id", ""},
		{chartsCmd.Flags(), "output", ""},
		{respondentsCmd.Flags(), "page", "1"},
		{respondentsCmd.Flags(), "page-size", "0"},
		{respondentsCmd.Flags(), "index", "0"},
		{filterCmd.Flags(), "age", ""},
		{filterCmd.Flags(), "gender", ""},
		{filterCmd.Flags(), "emirate", ""},
		{filterCmd.Flags(), "options", "false"},
		{profileCmd.Flags(), "json", "false"},
		{profileCmd.Flags(), "output", ""},
		{profileCmd.Flags(), "quiet", "false"},
		{listCmd.Flags(), "json", "false"},
		{initCmd.Flags(), "name", ""},
	}
	for _, s := range sticky {
		if fl := s.fs.Lookup(s.name); fl != nil {
			_ = fl.Value.Set(s.def)
			fl.Changed = false
		}
	}
}

// runCmd is a helper to execute the root command with args.
func runCmd(t *testing.T, args ...string) {
	t.Helper()
	resetFlags()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestCLI_InitAddClassifyChartsRemove(t *testing.T) {
	tdir := t.TempDir()
	chdir(t, tdir)
	if err := os.WriteFile(filepath.Join(tdir, "survey.csv"), []byte(surveyCSV), 0o644); err != nil {
		t.Fatalf("write survey: %v", err)
	}

	runCmd(t, "init")
	// a second init must refuse to overwrite the workspace
	resetFlags()
	rootCmd.SetArgs([]string{"init"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error on double init")
	}

	runCmd(t, "add", "survey.csv")
	ws, err := workspace.Load(tdir)
	if err != nil {
		t.Fatalf("load workspace: %v", err)
	}
	if len(ws.Datasets) != 1 || !ws.Datasets[0].IsSurvey {
		t.Fatalf("datasets = %+v", ws.Datasets)
	}

	runCmd(t, "list")
	runCmd(t, "list", "--json")
	runCmd(t, "classify", "survey")
	runCmd(t, "classify", "survey", "--json")
	runCmd(t, "classify", "survey", "--respondents")

	specPath := filepath.Join(tdir, "specs.json")
	runCmd(t, "charts", "survey", "--output", specPath)
	var specs []charts.ChartSpec
	b, err := os.ReadFile(specPath)
	if err != nil {
		t.Fatalf("read specs: %v", err)
	}
	if err := json.Unmarshal(b, &specs); err != nil {
		t.Fatalf("parse specs: %v", err)
	}
	if len(specs) != 2 || specs[0].ChartType != "persona_distribution" || specs[1].ChartType != "heatmap_canonical" {
		t.Fatalf("spec bundle = %+v", specs)
	}
	if got := specs[0].DerivedMetrics["total_respondents"]; got != float64(3) {
		t.Fatalf("total_respondents = %v, want 3", got)
	}
	if specs[0].DatasetID != ws.Datasets[0].ID {
		t.Fatalf("dataset id = %s, want %s", specs[0].DatasetID, ws.Datasets[0].ID)
	}

	runCmd(t, "charts", "survey", "--observed", "--output", specPath)
	b, err = os.ReadFile(specPath)
	if err != nil {
		t.Fatalf("read specs: %v", err)
	}
	specs = nil
	if err := json.Unmarshal(b, &specs); err != nil {
		t.Fatalf("parse specs: %v", err)
	}
	if len(specs) != 3 || specs[2].ChartType != "heatmap_observed" {
		t.Fatalf("observed bundle = %+v", specs)
	}

	runCmd(t, "respondents", "survey", "--page", "1", "--page-size", "2")
	runCmd(t, "respondents", "survey", "--index", "0")
	resetFlags()
	rootCmd.SetArgs([]string{"respondents", "survey", "--index", "99"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for out-of-range index")
	}

	runCmd(t, "filter", "survey", "--age", "18-24")
	runCmd(t, "filter", "survey", "--options")

	runCmd(t, "remove", "survey")
	ws, err = workspace.Load(tdir)
	if err != nil {
		t.Fatalf("reload workspace: %v", err)
	}
	if len(ws.Datasets) != 0 {
		t.Fatalf("datasets after remove = %+v", ws.Datasets)
	}
}

func TestCLI_GenericChartsFromFilePath(t *testing.T) {
	tdir := t.TempDir()
	chdir(t, tdir)
	if err := os.WriteFile(filepath.Join(tdir, "cities.csv"), []byte(genericCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}

	specPath := filepath.Join(tdir, "generic.json")
	runCmd(t, "charts", "cities.csv", "--output", specPath, "--owner", "svc", "--dataset-id", "d1")
	b, err := os.ReadFile(specPath)
	if err != nil {
		t.Fatalf("read specs: %v", err)
	}
	var specs []charts.ChartSpec
	if err := json.Unmarshal(b, &specs); err != nil {
		t.Fatalf("parse specs: %v", err)
	}
	if len(specs) != 1 || specs[0].ChartType != "bar" {
		t.Fatalf("generic specs = %+v", specs)
	}
	if specs[0].OwnerID != "svc" || specs[0].DatasetID != "d1" {
		t.Fatalf("identifiers = %s/%s", specs[0].OwnerID, specs[0].DatasetID)
	}
}

func TestCLI_ProfileGlobAndOutput(t *testing.T) {
	tdir := t.TempDir()
	chdir(t, tdir)
	for _, name := range []string{"a.csv", "b.csv"} {
		if err := os.WriteFile(filepath.Join(tdir, name), []byte(genericCSV), 0o644); err != nil {
			t.Fatalf("write csv: %v", err)
		}
	}
	runCmd(t, "profile", "*.csv", "--quiet")

	outPath := filepath.Join(tdir, "prof.md")
	runCmd(t, "profile", "a.csv", "--output", outPath)
	b, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read profile: %v", err)
	}
	if !strings.Contains(string(b), "[DATASET SUMMARY]") {
		t.Fatalf("profile output missing summary section: %s", b)
	}

	// --output with multiple matched files must refuse
	resetFlags()
	rootCmd.SetArgs([]string{"profile", "*.csv", "--output", outPath})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for --output with multiple files")
	}
}

func TestCLI_ConfigSetShow(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)
	t.Cleanup(func() { cfg = nil })

	runCmd(t, "config", "set", "workers", "8")
	if cfg == nil || cfg.Workers != 8 {
		t.Fatalf("cfg after set = %+v", cfg)
	}
	if _, err := os.Stat(filepath.Join(home, ".taam", "config.yaml")); err != nil {
		t.Fatalf("config file: %v", err)
	}
	runCmd(t, "config", "show")

	resetFlags()
	rootCmd.SetArgs([]string{"config", "set", "bogus", "1"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestCLI_MissingDataset(t *testing.T) {
	tdir := t.TempDir()
	chdir(t, tdir)
	runCmd(t, "init")

	resetFlags()
	rootCmd.SetArgs([]string{"classify", "nope"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for unknown dataset")
	}
}
