package recommender

import (
	"math"
	"time"

	"movie-similarity-service/internal/tmdb"
)

// Weights assigns the relative importance of each similarity criterion.
// The fields must sum to 1.0 for scores to land in [0, 100].
type Weights struct {
	Genre      float64
	Director   float64
	Cast       float64
	Keywords   float64
	Rating     float64
	Era        float64
	Popularity float64
}

// DefaultWeights returns the production weighting: genre defines the pool,
// the remaining features define the rank.
func DefaultWeights() Weights {
	return Weights{
		Genre:      0.30,
		Director:   0.15,
		Cast:       0.15,
		Keywords:   0.15,
		Rating:     0.10,
		Era:        0.10,
		Popularity: 0.05,
	}
}

// DefaultDefiningGenres lists TMDB genre ids that strongly characterize a
// movie's identity. Sharing one earns a flat boost on top of the Jaccard
// genre score. Reference data tied to the TMDB taxonomy, not logic.
var DefaultDefiningGenres = map[int]struct{}{
	16:    {}, // Animation
	10402: {}, // Music
	37:    {}, // Western
	27:    {}, // Horror
	878:   {}, // Science Fiction
	14:    {}, // Fantasy
	10749: {}, // Romance
}

// DefaultDefiningKeywords lists TMDB keyword ids whose presence signals
// thematic identity (a musical, a heist movie). Sharing one is worth a flat
// bonus; a base movie carrying one that the candidate entirely lacks takes
// a flat penalty. Reference data tied to the TMDB taxonomy, not logic.
var DefaultDefiningKeywords = map[int]struct{}{
	4344:   {}, // musical
	9715:   {}, // superhero
	3799:   {}, // heist
	10714:  {}, // serial killer
	9882:   {}, // space
	207317: {}, // christmas
	276:    {}, // sport
	155:    {}, // spy
	12990:  {}, // singing
}

const (
	// definingGenreBoost is added to the genre Jaccard value (capped at 1)
	// when both movies share a defining genre.
	definingGenreBoost = 0.3
	// definingKeywordAdjustment is the flat score bonus/penalty applied for
	// defining keywords, outside the weighted keyword contribution.
	definingKeywordAdjustment = 25.0
	// sharedKeywordsForFullScore is how many shared keywords earn the full
	// weighted keyword contribution.
	sharedKeywordsForFullScore = 3.0
	// ratingDiffForZero is the vote-average gap at which the rating
	// contribution bottoms out.
	ratingDiffForZero = 4.0
	// topBilledCast is how many leading cast members are compared.
	topBilledCast = 5
)

// Scorer computes the similarity score between two detailed movie records.
// It is pure: no I/O, no shared state beyond its reference tables.
type Scorer struct {
	weights          Weights
	definingGenres   map[int]struct{}
	definingKeywords map[int]struct{}
}

// NewScorer creates a Scorer with the default weights and reference tables.
func NewScorer() *Scorer {
	return NewScorerWith(DefaultWeights(), DefaultDefiningGenres, DefaultDefiningKeywords)
}

// NewScorerWith creates a Scorer with explicit weights and reference tables.
func NewScorerWith(weights Weights, definingGenres, definingKeywords map[int]struct{}) *Scorer {
	return &Scorer{
		weights:          weights,
		definingGenres:   definingGenres,
		definingKeywords: definingKeywords,
	}
}

// Score returns a similarity score in [0, 100] between the base movie and a
// candidate. Each criterion contributes independently and contributes zero
// when its inputs are missing on either side.
func (s *Scorer) Score(base, candidate *tmdb.MovieDetail) float64 {
	score := s.genreScore(base, candidate) +
		s.directorScore(base, candidate) +
		s.castScore(base, candidate) +
		s.keywordScore(base, candidate) +
		s.ratingScore(base, candidate) +
		s.eraScore(base, candidate) +
		s.popularityScore(base, candidate)

	return math.Min(100, math.Max(0, score))
}

// genreScore is the Jaccard similarity of genre id sets, boosted when both
// sides share a defining genre.
func (s *Scorer) genreScore(base, candidate *tmdb.MovieDetail) float64 {
	g1 := genreIDSet(base.Genres)
	g2 := genreIDSet(candidate.Genres)
	if len(g1) == 0 || len(g2) == 0 {
		return 0
	}

	shared := 0
	sharedDefining := false
	for id := range g1 {
		if _, ok := g2[id]; !ok {
			continue
		}
		shared++
		if _, ok := s.definingGenres[id]; ok {
			sharedDefining = true
		}
	}
	union := len(g1) + len(g2) - shared

	jaccard := float64(shared) / float64(union)
	if sharedDefining {
		jaccard = math.Min(1, jaccard+definingGenreBoost)
	}
	return s.weights.Genre * jaccard * 100
}

// directorScore awards the full weight when both movies share a director.
func (s *Scorer) directorScore(base, candidate *tmdb.MovieDetail) float64 {
	d1, ok1 := findDirector(base.Credits.Crew)
	d2, ok2 := findDirector(candidate.Credits.Crew)
	if ok1 && ok2 && d1.ID == d2.ID {
		return s.weights.Director * 100
	}
	return 0
}

// castScore measures overlap between the top-billed cast of each movie.
func (s *Scorer) castScore(base, candidate *tmdb.MovieDetail) float64 {
	c1 := topCastIDSet(base.Credits.Cast)
	c2 := topCastIDSet(candidate.Credits.Cast)
	if len(c1) == 0 || len(c2) == 0 {
		return 0
	}

	shared := 0
	for id := range c1 {
		if _, ok := c2[id]; ok {
			shared++
		}
	}
	return s.weights.Cast * (float64(shared) / topBilledCast) * 100
}

// keywordScore combines a weighted shared-keyword contribution with flat
// defining-keyword adjustments. The weighted part needs keywords on both
// sides; the adjustments apply regardless, so a base movie with a defining
// keyword penalizes candidates that lack it even when they carry no
// keywords at all.
func (s *Scorer) keywordScore(base, candidate *tmdb.MovieDetail) float64 {
	kw1 := keywordIDSet(base.Keywords.Keywords)
	kw2 := keywordIDSet(candidate.Keywords.Keywords)

	var score float64
	if len(kw1) > 0 && len(kw2) > 0 {
		shared := 0
		for id := range kw1 {
			if _, ok := kw2[id]; ok {
				shared++
			}
		}
		score = s.weights.Keywords * math.Min(1, float64(shared)/sharedKeywordsForFullScore) * 100
	}

	baseDefining := false
	sharedDefining := false
	candidateDefining := false
	for id := range s.definingKeywords {
		_, inBase := kw1[id]
		_, inCandidate := kw2[id]
		baseDefining = baseDefining || inBase
		candidateDefining = candidateDefining || inCandidate
		sharedDefining = sharedDefining || (inBase && inCandidate)
	}

	switch {
	case sharedDefining:
		score += definingKeywordAdjustment
	case baseDefining && !candidateDefining:
		score -= definingKeywordAdjustment
	}
	return score
}

// ratingScore rewards candidates whose vote average sits close to the base.
func (s *Scorer) ratingScore(base, candidate *tmdb.MovieDetail) float64 {
	if base.VoteAverage == 0 || candidate.VoteAverage == 0 {
		return 0
	}
	diff := math.Abs(base.VoteAverage - candidate.VoteAverage)
	return s.weights.Rating * math.Max(0, 1-diff/ratingDiffForZero) * 100
}

// eraScore rewards candidates from the same or an adjacent decade.
func (s *Scorer) eraScore(base, candidate *tmdb.MovieDetail) float64 {
	y1, ok1 := releaseYear(base.ReleaseDate)
	y2, ok2 := releaseYear(candidate.ReleaseDate)
	if !ok1 || !ok2 {
		return 0
	}

	var era float64
	switch gap := abs(y1/10 - y2/10); {
	case gap == 0:
		era = 1.0
	case gap == 1:
		era = 0.6
	default:
		era = 0.3
	}
	return s.weights.Era * era * 100
}

// popularityScore compares popularity on a log scale, so a blockbuster and
// an indie film of the same tier still match.
func (s *Scorer) popularityScore(base, candidate *tmdb.MovieDetail) float64 {
	if base.Popularity == 0 || candidate.Popularity == 0 {
		return 0
	}
	diff := math.Abs(math.Log10(math.Max(1, base.Popularity)) - math.Log10(math.Max(1, candidate.Popularity)))
	return s.weights.Popularity * math.Max(0, 1-diff/2) * 100
}

func genreIDSet(genres []tmdb.Genre) map[int]struct{} {
	set := make(map[int]struct{}, len(genres))
	for _, g := range genres {
		set[g.ID] = struct{}{}
	}
	return set
}

func keywordIDSet(keywords []tmdb.Keyword) map[int]struct{} {
	set := make(map[int]struct{}, len(keywords))
	for _, k := range keywords {
		set[k.ID] = struct{}{}
	}
	return set
}

func topCastIDSet(cast []tmdb.CastMember) map[int]struct{} {
	set := make(map[int]struct{}, topBilledCast)
	for i, member := range cast {
		if i == topBilledCast {
			break
		}
		set[member.ID] = struct{}{}
	}
	return set
}

// releaseYear parses the year out of an ISO YYYY-MM-DD release date.
// TMDB guarantees the format; anything else counts as no date.
func releaseYear(date string) (int, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
