package recommender

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc/pool"

	"movie-similarity-service/internal/tmdb"
)

// fetchWorkers bounds how many detail fetches are in flight at once.
const fetchWorkers = 10

// DetailedCandidate pairs a candidate's full detail record with the
// discovery sources that nominated it.
type DetailedCandidate struct {
	Detail  *tmdb.MovieDetail
	Sources SourceSet
}

// FetchDetails resolves the full detail record for every candidate using a
// bounded worker pool. A failed fetch drops only that candidate; the call
// returns once every fetch has completed. Result order is unspecified.
func (c *Collector) FetchDetails(ctx context.Context, cands *Candidates) []DetailedCandidate {
	results := make([]DetailedCandidate, 0, cands.Len())
	var mu sync.Mutex

	workers := pool.New().WithMaxGoroutines(fetchWorkers)
	for id, sources := range cands.entries {
		workers.Go(func() {
			detail, err := c.client.GetMovieDetail(ctx, id)
			if err != nil {
				slog.Warn("dropping candidate, detail fetch failed", "movie_id", id, "error", err)
				return
			}
			mu.Lock()
			results = append(results, DetailedCandidate{Detail: detail, Sources: sources})
			mu.Unlock()
		})
	}
	workers.Wait()

	return results
}
