package recommender

import (
	"math"
	"sort"
	"time"

	"movie-similarity-service/internal/models"
	"movie-similarity-service/internal/tmdb"
)

const (
	// scoreThreshold is the minimum similarity score for a candidate to
	// appear in results.
	scoreThreshold = 30.0
	// maxResults caps the ranked output length.
	maxResults = 20
	// reviewLimit is how many review snippets each result carries.
	reviewLimit = 3
	// reviewSnippetLen is how many characters of review content survive.
	reviewSnippetLen = 200

	unknownDirector = "Unknown"
)

// Ranker filters, scores and orders detailed candidates against a base movie.
type Ranker struct {
	scorer *Scorer
}

// NewRanker creates a Ranker using the given scorer.
func NewRanker(scorer *Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank applies the inclusion filters, scores every surviving candidate and
// returns at most maxResults entries ordered by descending similarity.
// Candidates released after now are excluded; candidates with no genre
// overlap with the base are excluded unless they came from the base
// movie's own collection.
func (r *Ranker) Rank(base *tmdb.MovieDetail, candidates []DetailedCandidate, now time.Time) []models.RankedMovie {
	baseGenres := genreIDSet(base.Genres)

	results := make([]models.RankedMovie, 0, len(candidates))
	for _, candidate := range candidates {
		movie := candidate.Detail

		if released, ok := parseReleaseDate(movie.ReleaseDate); ok && released.After(now) {
			continue
		}
		if !candidate.Sources.Has(SourceCollection) && !genresOverlap(baseGenres, movie.Genres) {
			continue
		}

		score := r.scorer.Score(base, movie)
		if score < scoreThreshold {
			continue
		}
		results = append(results, projectRanked(movie, score))
	}

	// Equal scores order by ascending TMDB id: the fan-out completes in
	// arbitrary order, so the ranking needs its own deterministic key.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].SimilarityScore != results[j].SimilarityScore {
			return results[i].SimilarityScore > results[j].SimilarityScore
		}
		return results[i].ID < results[j].ID
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// projectRanked shapes a scored movie into the response record.
func projectRanked(movie *tmdb.MovieDetail, score float64) models.RankedMovie {
	var year *int
	if y, ok := releaseYear(movie.ReleaseDate); ok {
		year = &y
	}

	genres := make([]string, len(movie.Genres))
	for i, g := range movie.Genres {
		genres[i] = g.Name
	}

	directorName := unknownDirector
	if director, ok := findDirector(movie.Credits.Crew); ok {
		directorName = director.Name
	}

	return models.RankedMovie{
		ID:              movie.ID,
		Title:           movie.Title,
		Year:            year,
		SimilarityScore: score,
		Genres:          genres,
		Director:        directorName,
		Rating:          math.Round(movie.VoteAverage*10) / 10,
		Reviews:         snippetReviews(movie.Reviews.Results),
		PosterPath:      movie.PosterPath,
		Overview:        movie.Overview,
	}
}

// snippetReviews trims the first few reviews down to short excerpts.
func snippetReviews(reviews []tmdb.Review) []models.ReviewSnippet {
	snippets := make([]models.ReviewSnippet, 0, reviewLimit)
	for i, review := range reviews {
		if i == reviewLimit {
			break
		}
		var rating float64
		if review.AuthorDetails.Rating != nil {
			rating = *review.AuthorDetails.Rating
		}
		snippets = append(snippets, models.ReviewSnippet{
			Text:   truncate(review.Content, reviewSnippetLen) + "...",
			Rating: rating,
		})
	}
	return snippets
}

// truncate cuts s to at most n characters without splitting a rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func genresOverlap(baseGenres map[int]struct{}, genres []tmdb.Genre) bool {
	for _, g := range genres {
		if _, ok := baseGenres[g.ID]; ok {
			return true
		}
	}
	return false
}

// parseReleaseDate parses an ISO YYYY-MM-DD release date.
func parseReleaseDate(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
