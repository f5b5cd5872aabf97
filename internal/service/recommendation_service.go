package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"movie-similarity-service/internal/models"
	"movie-similarity-service/internal/recommender"
	"movie-similarity-service/internal/tmdb"
)

// Sentinel errors handlers map to HTTP statuses.
var (
	// ErrTitleRequired means the caller supplied no movie title.
	ErrTitleRequired = errors.New("movie title is required")
	// ErrMovieNotFound means the title search returned zero results.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrUpstreamUnavailable means a pipeline-critical TMDB call failed.
	ErrUpstreamUnavailable = errors.New("movie data service unavailable")
)

// MetadataClient is the full TMDB surface the services depend on.
type MetadataClient interface {
	recommender.MetadataClient
	SearchMovies(ctx context.Context, query string) (*tmdb.MoviePage, error)
}

// RecommendationService runs the similarity-ranking pipeline: resolve the
// base movie, gather candidates, fetch their details concurrently, then
// score, filter and rank them.
type RecommendationService struct {
	client    MetadataClient
	collector *recommender.Collector
	ranker    *recommender.Ranker
	now       func() time.Time
}

// NewRecommendationService creates a RecommendationService.
func NewRecommendationService(client MetadataClient) *RecommendationService {
	return &RecommendationService{
		client:    client,
		collector: recommender.NewCollector(client),
		ranker:    recommender.NewRanker(recommender.NewScorer()),
		now:       time.Now,
	}
}

// Recommend returns movies similar to the given title, best match first.
// Only the initial search and the base detail fetch are fatal; every
// per-candidate failure degrades to a smaller pool.
func (s *RecommendationService) Recommend(ctx context.Context, title string) ([]models.RankedMovie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	page, err := s.client.SearchMovies(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if len(page.Results) == 0 {
		return nil, ErrMovieNotFound
	}
	baseID := page.Results[0].ID

	base, err := s.client.GetMovieDetail(ctx, baseID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	started := time.Now()
	candidates := s.collector.Collect(ctx, base)
	detailed := s.collector.FetchDetails(ctx, candidates)
	ranked := s.ranker.Rank(base, detailed, s.now())

	slog.Info("similarity ranking completed",
		"title", base.Title,
		"candidates", candidates.Len(),
		"detailed", len(detailed),
		"ranked", len(ranked),
		"duration", time.Since(started))

	return ranked, nil
}
