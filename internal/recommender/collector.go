package recommender

import (
	"context"
	"log/slog"
	"sort"

	"movie-similarity-service/internal/tmdb"
)

const (
	// jobDirector is the TMDB crew job title identifying a director.
	jobDirector = "Director"

	// directorTopN caps how many of a director's movies are nominated, so a
	// prolific director does not dominate the pool.
	directorTopN = 2
	// embeddedLimit caps nominations from the embedded similar and
	// recommendations pages.
	embeddedLimit = 15
	// keywordSeedCount is how many of the base movie's keywords seed the
	// discovery query.
	keywordSeedCount = 5
	// discoverLimit caps nominations from keyword discovery.
	discoverLimit = 15
)

// MetadataClient is the subset of the TMDB client the engine depends on.
type MetadataClient interface {
	GetMovieDetail(ctx context.Context, movieID int) (*tmdb.MovieDetail, error)
	GetCollection(ctx context.Context, collectionID int) (*tmdb.Collection, error)
	GetPersonMovieCredits(ctx context.Context, personID int) (*tmdb.PersonCredits, error)
	DiscoverByKeywords(ctx context.Context, keywordIDs []int) ([]tmdb.Movie, error)
}

// Collector assembles the candidate pool for a base movie from five
// discovery strategies. Every strategy degrades to zero nominations on
// missing data or upstream failure; none of them can fail the pipeline.
type Collector struct {
	client MetadataClient
}

// NewCollector creates a Collector backed by the given metadata client.
func NewCollector(client MetadataClient) *Collector {
	return &Collector{client: client}
}

// Collect runs all discovery strategies against the base movie.
func (c *Collector) Collect(ctx context.Context, base *tmdb.MovieDetail) *Candidates {
	cands := NewCandidates(base.ID)

	c.collectCollection(ctx, base, cands)
	c.collectDirector(ctx, base, cands)
	collectEmbedded(base.Similar.Results, SourceSimilar, cands)
	collectEmbedded(base.Recommendations.Results, SourceRecommendations, cands)
	c.collectKeywordDiscovery(ctx, base, cands)

	return cands
}

// collectCollection nominates every member of the base movie's franchise.
func (c *Collector) collectCollection(ctx context.Context, base *tmdb.MovieDetail, cands *Candidates) {
	if base.BelongsToCollection == nil {
		return
	}
	collection, err := c.client.GetCollection(ctx, base.BelongsToCollection.ID)
	if err != nil {
		slog.Warn("skipping collection strategy", "collection_id", base.BelongsToCollection.ID, "error", err)
		return
	}
	for _, m := range collection.Parts {
		cands.Add(m.ID, SourceCollection)
	}
}

// collectDirector nominates the base director's best-rated directing credits.
func (c *Collector) collectDirector(ctx context.Context, base *tmdb.MovieDetail, cands *Candidates) {
	director, ok := findDirector(base.Credits.Crew)
	if !ok {
		return
	}
	credits, err := c.client.GetPersonMovieCredits(ctx, director.ID)
	if err != nil {
		slog.Warn("skipping director strategy", "person_id", director.ID, "error", err)
		return
	}

	directed := make([]tmdb.PersonCrewCredit, 0, len(credits.Crew))
	for _, credit := range credits.Crew {
		if credit.Job == jobDirector && credit.VoteAverage != nil {
			directed = append(directed, credit)
		}
	}
	sort.SliceStable(directed, func(i, j int) bool {
		return *directed[i].VoteAverage > *directed[j].VoteAverage
	})

	for i, credit := range directed {
		if i == directorTopN {
			break
		}
		cands.Add(credit.ID, SourceDirector)
	}
}

// collectEmbedded nominates from a result page embedded in the base detail.
func collectEmbedded(movies []tmdb.Movie, src Source, cands *Candidates) {
	for i, m := range movies {
		if i == embeddedLimit {
			break
		}
		cands.Add(m.ID, src)
	}
}

// collectKeywordDiscovery nominates well-known movies sharing the base
// movie's leading keywords. This catches thematic matches the similar and
// recommendations pages miss.
func (c *Collector) collectKeywordDiscovery(ctx context.Context, base *tmdb.MovieDetail, cands *Candidates) {
	keywords := base.Keywords.Keywords
	if len(keywords) == 0 {
		return
	}
	if len(keywords) > keywordSeedCount {
		keywords = keywords[:keywordSeedCount]
	}
	seed := make([]int, len(keywords))
	for i, k := range keywords {
		seed[i] = k.ID
	}

	movies, err := c.client.DiscoverByKeywords(ctx, seed)
	if err != nil {
		slog.Warn("skipping keyword discovery strategy", "keywords", seed, "error", err)
		return
	}
	for i, m := range movies {
		if i == discoverLimit {
			break
		}
		cands.Add(m.ID, SourceKeywordDiscovery)
	}
}

// findDirector returns the first crew entry credited as Director.
func findDirector(crew []tmdb.CrewMember) (tmdb.CrewMember, bool) {
	for _, member := range crew {
		if member.Job == jobDirector {
			return member, true
		}
	}
	return tmdb.CrewMember{}, false
}
