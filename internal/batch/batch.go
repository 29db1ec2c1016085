package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/partmatch-mcp/internal/classifier"
	"github.com/dshills/partmatch-mcp/pkg/types"
)

// Item is one BOM line.
type Item struct {
	MPN       string `json:"mpn"`
	Reference string `json:"reference,omitempty"` // designator, e.g. "R12"
	Quantity  int    `json:"quantity,omitempty"`
}

// Result pairs a BOM line with its classification. Err is set for items the
// classifier rejected (malformed MPN); an unrecognized but well-formed MPN is
// not an error, it classifies as Unknown.
type Result struct {
	Item Item
	Part types.ResolvedPart
	Err  error
}

// Stats summarizes a classification run.
type Stats struct {
	Total      int `json:"total"`
	Classified int `json:"classified"`
	Unknown    int `json:"unknown"`
	Failed     int `json:"failed"`
}

// Runner classifies BOM items over a bounded worker pool.
type Runner struct {
	classifier *classifier.Classifier
	workers    int
}

// New creates a Runner. workers <= 0 means runtime.NumCPU().
func New(c *classifier.Classifier, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{classifier: c, workers: workers}
}

// Classify resolves every item concurrently. The returned slice matches the
// input order. Only context cancellation returns an error; per-item failures
// land in Result.Err.
func (r *Runner) Classify(ctx context.Context, items []Item) ([]Result, error) {
	results := make([]Result, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, item := range items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Each goroutine owns its slot; no shared state to guard.
			results[i].Item = item
			results[i].Part, results[i].Err = r.classifier.Classify(item.MPN)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Summarize tallies a result set.
func Summarize(results []Result) Stats {
	stats := Stats{Total: len(results)}
	for _, res := range results {
		switch {
		case res.Err != nil:
			stats.Failed++
		case res.Part.IsUnknown():
			stats.Unknown++
		default:
			stats.Classified++
		}
	}
	return stats
}
