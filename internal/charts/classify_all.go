// Package charts turns classified survey tables into renderer-agnostic
// chart specs: persona distributions, prototype heatmaps, and
// per-respondent radar charts.
package charts

import (
	"golang.org/x/sync/errgroup"

	"github.com/akeleontechnologies/taam-app/internal/taam"
)

// ClassifyAll classifies every record, fanning rows out over worker
// goroutines in contiguous shards. Results keep row order regardless of
// worker count; workers below 1 are clamped to 1.
func ClassifyAll(records []map[string]string, workers int) []taam.Result {
	results := make([]taam.Result, len(records))
	if len(records) == 0 {
		return results
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (len(records) + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < len(records); start += chunk {
		end := start + chunk
		if end > len(records) {
			end = len(records)
		}
		g.Go(func() error {
			// each shard writes a disjoint slice range
			for i := start; i < end; i++ {
				results[i] = taam.Classify(records[i])
			}
			return nil
		})
	}
	_ = g.Wait() // shards never return errors
	return results
}
