package workspace

import "time"

// Dataset holds metadata for one imported survey file. The original
// file is copied into the workspace data directory under its ID so
// later commands do not depend on the import path staying valid.
type Dataset struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	OriginalName string    `json:"original_name"`
	StoredAs     string    `json:"stored_as"`
	Format       string    `json:"format"`
	Rows         int       `json:"rows"`
	Columns      int       `json:"columns"`
	IsSurvey     bool      `json:"is_taam"`
	AddedAt      time.Time `json:"added_at"`
}
