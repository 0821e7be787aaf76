package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akeleontechnologies/taam-app/internal/tabular"
	"github.com/akeleontechnologies/taam-app/internal/utils"
)

const (
	workspaceFileName = "workspace.json"
	dataDirName       = "data"
)

// Workspace tracks the survey datasets imported into one directory.
type Workspace struct {
	Name      string     `json:"name"`
	Datasets  []*Dataset `json:"datasets"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Not serialized: on-disk location of the workspace.json
	rootDir string `json:"-"`
}

// New constructs an in-memory workspace. Call Save() to persist.
func New(name, rootDir string) *Workspace {
	return &Workspace{
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		rootDir:   rootDir,
	}
}

// Load reads a workspace.json from the provided directory.
func Load(dir string) (*Workspace, error) {
	path := filepath.Join(dir, workspaceFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("workspace not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read workspace: %w", err)
	}
	var w Workspace
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, fmt.Errorf("parse workspace: %w", err)
	}
	w.rootDir = dir
	return &w, nil
}

// RootDir returns the on-disk workspace directory path.
func (w *Workspace) RootDir() string { return w.rootDir }

// DataDir returns the directory holding imported dataset copies.
func (w *Workspace) DataDir() string { return filepath.Join(w.rootDir, dataDirName) }

// Save writes workspace.json using atomic write.
func (w *Workspace) Save() error {
	if w.rootDir == "" {
		return errors.New("workspace root directory not set")
	}
	if err := utils.EnsureDir(w.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	w.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(w)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(w.rootDir, workspaceFileName), data)
}

// AddDataset validates a dataset file, copies it into the data
// directory under a fresh ID, and records its metadata. The dataset
// name is the file name without its extension.
func (w *Workspace) AddDataset(path string) (*Dataset, error) {
	t, err := tabular.Load(path)
	if err != nil {
		return nil, err
	}
	if err := utils.EnsureDir(w.DataDir()); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	id := uuid.NewString()
	stored := id + ext
	if err := utils.CopyFile(path, filepath.Join(w.DataDir(), stored)); err != nil {
		return nil, err
	}
	base := filepath.Base(path)
	d := &Dataset{
		ID:           id,
		Name:         strings.TrimSuffix(base, filepath.Ext(base)),
		OriginalName: base,
		StoredAs:     stored,
		Format:       strings.TrimPrefix(ext, "."),
		Rows:         len(t.Rows),
		Columns:      len(t.Columns),
		IsSurvey:     tabular.IsSurvey(t.Columns),
		AddedAt:      time.Now(),
	}
	w.Datasets = append(w.Datasets, d)
	w.UpdatedAt = time.Now()
	return d, nil
}

// Get resolves a dataset reference: exact name match first, then unique
// ID prefix. Ambiguous references return an error naming alternatives.
func (w *Workspace) Get(ref string) (*Dataset, error) {
	if ref == "" {
		return nil, errors.New("dataset reference required")
	}
	var byName []*Dataset
	for _, d := range w.Datasets {
		if d.Name == ref {
			byName = append(byName, d)
		}
	}
	if len(byName) == 1 {
		return byName[0], nil
	}
	if len(byName) > 1 {
		ids := make([]string, len(byName))
		for i, d := range byName {
			ids[i] = ShortID(d.ID)
		}
		return nil, fmt.Errorf("dataset name %q is ambiguous, use an id: %s", ref, strings.Join(ids, ", "))
	}
	var byID []*Dataset
	for _, d := range w.Datasets {
		if strings.HasPrefix(d.ID, ref) {
			byID = append(byID, d)
		}
	}
	if len(byID) == 1 {
		return byID[0], nil
	}
	if len(byID) > 1 {
		return nil, fmt.Errorf("dataset id prefix %q is ambiguous", ref)
	}
	return nil, fmt.Errorf("dataset %q not found", ref)
}

// Remove drops a dataset from the workspace and deletes its stored
// copy. The reference resolves the same way as Get.
func (w *Workspace) Remove(ref string) (*Dataset, error) {
	d, err := w.Get(ref)
	if err != nil {
		return nil, err
	}
	if err := os.Remove(w.DatasetPath(d)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("remove stored file: %w", err)
	}
	kept := w.Datasets[:0]
	for _, other := range w.Datasets {
		if other.ID != d.ID {
			kept = append(kept, other)
		}
	}
	w.Datasets = kept
	w.UpdatedAt = time.Now()
	return d, nil
}

// DatasetPath returns the on-disk path of a dataset's stored copy.
func (w *Workspace) DatasetPath(d *Dataset) string {
	return filepath.Join(w.DataDir(), d.StoredAs)
}

// ShortID abbreviates a dataset ID for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
