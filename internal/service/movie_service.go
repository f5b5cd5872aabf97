package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"movie-similarity-service/internal/models"
	"movie-similarity-service/internal/tmdb"
)

const (
	movieDetailCacheTTL = 30 * time.Minute

	detailCastLimit   = 10
	detailCrewLimit   = 5
	detailReviewLimit = 5
)

// keyCrewJobs are the crew roles surfaced on the detail view.
var keyCrewJobs = map[string]bool{
	"Director":        true,
	"Writer":          true,
	"Producer":        true,
	"Cinematographer": true,
}

// MovieService assembles movie detail views from live TMDB data. Views are
// cached in Redis; the service runs without caching when Redis is absent.
type MovieService struct {
	client MetadataClient
	redis  *redis.Client
}

// NewMovieService creates a new MovieService.
func NewMovieService(client MetadataClient, rdb *redis.Client) *MovieService {
	return &MovieService{client: client, redis: rdb}
}

// GetMovieDetail returns the detail view for a TMDB movie id.
func (s *MovieService) GetMovieDetail(ctx context.Context, tmdbID int) (*models.MovieDetailView, error) {
	cacheKey := fmt.Sprintf("movie:detail:%d", tmdbID)

	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		var view models.MovieDetailView
		if json.Unmarshal([]byte(cached), &view) == nil {
			slog.Debug("cache hit", "key", cacheKey)
			return &view, nil
		}
	}

	detail, err := s.client.GetMovieDetail(ctx, tmdbID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}

	view := buildDetailView(detail)

	if detail.BelongsToCollection != nil {
		collection, err := s.client.GetCollection(ctx, detail.BelongsToCollection.ID)
		if err != nil {
			slog.Warn("collection unavailable for detail view",
				"collection_id", detail.BelongsToCollection.ID, "error", err)
		} else {
			view.Collection = buildCollectionView(collection)
		}
	}

	if data, err := json.Marshal(view); err == nil {
		s.setCache(ctx, cacheKey, string(data), movieDetailCacheTTL)
	}

	return view, nil
}

func buildDetailView(detail *tmdb.MovieDetail) *models.MovieDetailView {
	view := &models.MovieDetailView{
		ID:          detail.ID,
		Title:       detail.Title,
		Overview:    detail.Overview,
		ReleaseDate: detail.ReleaseDate,
		Runtime:     detail.Runtime,
		Rating:      detail.VoteAverage,
		Director:    "Unknown",
		Genres:      make([]string, 0, len(detail.Genres)),
		Cast:        make([]models.CastEntry, 0, detailCastLimit),
		KeyCrew:     make([]models.CrewEntry, 0, detailCrewLimit),
		Reviews:     make([]models.DetailReview, 0, detailReviewLimit),
	}
	if detail.PosterPath != "" {
		view.PosterURL = models.TMDBImageBaseW500 + detail.PosterPath
	}
	if detail.BackdropPath != "" {
		view.BackdropURL = models.TMDBImageBaseW780 + detail.BackdropPath
	}

	for _, g := range detail.Genres {
		view.Genres = append(view.Genres, g.Name)
	}

	for i, member := range detail.Credits.Cast {
		if i == detailCastLimit {
			break
		}
		view.Cast = append(view.Cast, models.CastEntry{
			ID:          member.ID,
			Name:        member.Name,
			Character:   member.Character,
			ProfilePath: member.ProfilePath,
		})
	}

	for _, member := range detail.Credits.Crew {
		if member.Job == "Director" && view.Director == "Unknown" {
			view.Director = member.Name
		}
		if keyCrewJobs[member.Job] && len(view.KeyCrew) < detailCrewLimit {
			view.KeyCrew = append(view.KeyCrew, models.CrewEntry{
				ID:   member.ID,
				Name: member.Name,
				Job:  member.Job,
			})
		}
	}

	for i, review := range detail.Reviews.Results {
		if i == detailReviewLimit {
			break
		}
		author := review.Author
		if author == "" {
			author = "Anonymous"
		}
		view.Reviews = append(view.Reviews, models.DetailReview{
			Author:  author,
			Content: review.Content,
			Rating:  review.AuthorDetails.Rating,
			Date:    reviewDate(review.CreatedAt),
		})
	}

	return view
}

func buildCollectionView(collection *tmdb.Collection) *models.CollectionView {
	movies := make([]models.CollectionMovie, 0, len(collection.Parts))
	for _, m := range collection.Parts {
		movies = append(movies, models.CollectionMovie{
			ID:          m.ID,
			Title:       m.Title,
			ReleaseDate: m.ReleaseDate,
			PosterPath:  m.PosterPath,
		})
	}
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].ReleaseDate < movies[j].ReleaseDate
	})
	return &models.CollectionView{
		Name:   collection.Name,
		Movies: movies,
	}
}

// reviewDate keeps only the date part of a RFC 3339 timestamp.
func reviewDate(createdAt string) string {
	date, _, _ := strings.Cut(createdAt, "T")
	return date
}

// ---- Redis Helpers ----

func (s *MovieService) getFromCache(ctx context.Context, key string) (string, error) {
	if s.redis == nil {
		return "", fmt.Errorf("redis not available")
	}
	return s.redis.Get(ctx, key).Result()
}

func (s *MovieService) setCache(ctx context.Context, key, value string, ttl time.Duration) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Set(ctx, key, value, ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}
