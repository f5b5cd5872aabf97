package recommender

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-similarity-service/internal/tmdb"
)

func TestFetchDetailsIsolatesFailures(t *testing.T) {
	client := &stubMetadataClient{
		details:    make(map[int]*tmdb.MovieDetail),
		detailErrs: map[int]error{5: fmt.Errorf("connection reset")},
	}
	cands := NewCandidates(0)
	for id := 1; id <= 10; id++ {
		client.details[id] = &tmdb.MovieDetail{ID: id}
		cands.Add(id, SourceSimilar)
	}

	results := NewCollector(client).FetchDetails(context.Background(), cands)

	// One failed fetch drops only that candidate.
	require.Len(t, results, 9)
	assert.Equal(t, 10, client.detailCalls)
	for _, r := range results {
		assert.NotEqual(t, 5, r.Detail.ID)
		assert.True(t, r.Sources.Has(SourceSimilar))
	}
}

func TestFetchDetailsBoundedConcurrency(t *testing.T) {
	client := &stubMetadataClient{
		details:     make(map[int]*tmdb.MovieDetail),
		detailDelay: 10 * time.Millisecond,
	}
	cands := NewCandidates(0)
	for id := 1; id <= 40; id++ {
		client.details[id] = &tmdb.MovieDetail{ID: id}
		cands.Add(id, SourceRecommendations)
	}

	results := NewCollector(client).FetchDetails(context.Background(), cands)

	require.Len(t, results, 40)
	assert.LessOrEqual(t, client.maxInFlight, fetchWorkers)
}

func TestFetchDetailsPreservesSourceSets(t *testing.T) {
	client := &stubMetadataClient{
		details: map[int]*tmdb.MovieDetail{7: {ID: 7}},
	}
	cands := NewCandidates(0)
	cands.Add(7, SourceCollection)
	cands.Add(7, SourceKeywordDiscovery)

	results := NewCollector(client).FetchDetails(context.Background(), cands)

	require.Len(t, results, 1)
	assert.True(t, results[0].Sources.Has(SourceCollection))
	assert.True(t, results[0].Sources.Has(SourceKeywordDiscovery))
}

func TestFetchDetailsEmptyPool(t *testing.T) {
	client := &stubMetadataClient{}

	results := NewCollector(client).FetchDetails(context.Background(), NewCandidates(0))

	assert.Empty(t, results)
	assert.Zero(t, client.detailCalls)
}
