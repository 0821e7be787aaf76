package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/akeleontechnologies/taam-app/internal/tabular"
	"github.com/akeleontechnologies/taam-app/internal/utils"
	"github.com/akeleontechnologies/taam-app/internal/workspace"
	"github.com/spf13/cobra"
)

var (
	initName string
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Initialize a TAAM workspace",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return fmt.Errorf("resolve directory: %w", err)
		}
		// Refuse to overwrite an existing workspace.
		if _, err := os.Stat(filepath.Join(abs, "workspace.json")); err == nil {
			return fmt.Errorf("workspace already exists at %s", abs)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat workspace: %w", err)
		}
		name := initName
		if name == "" {
			name = filepath.Base(abs)
		}
		ws := workspace.New(name, abs)
		if err := ws.Save(); err != nil {
			return err
		}
		fmt.Printf("✓ Workspace initialized: %s\n", abs)
		return nil
	},
}

// openWorkspace loads the workspace enclosing the current directory.
func openWorkspace() (*workspace.Workspace, error) {
	root, err := utils.FindWorkspaceRoot("")
	if err != nil {
		return nil, err
	}
	return workspace.Load(root)
}

// resolveTable resolves a dataset argument: an existing file path wins,
// otherwise the reference is looked up in the enclosing workspace. The
// second return is the dataset ID when one resolved.
func resolveTable(ref string) (*tabular.Table, string, error) {
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		debugf("resolving %q as file path\n", ref)
		t, err := tabular.Load(ref)
		return t, "", err
	}
	ws, err := openWorkspace()
	if err != nil {
		return nil, "", err
	}
	d, err := ws.Get(ref)
	if err != nil {
		return nil, "", err
	}
	debugf("resolving %q as dataset %s\n", ref, workspace.ShortID(d.ID))
	t, err := tabular.Load(ws.DatasetPath(d))
	if err != nil {
		return nil, "", err
	}
	t.Name = d.Name
	return t, d.ID, nil
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "workspace name (default: directory name)")
}
