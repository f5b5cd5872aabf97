package recommender

// Source labels the discovery strategy that nominated a candidate.
type Source string

const (
	SourceCollection       Source = "collection"
	SourceDirector         Source = "director"
	SourceSimilar          Source = "similar"
	SourceRecommendations  Source = "recommendations"
	SourceKeywordDiscovery Source = "keyword_discovery"
)

// SourceSet is the set of strategies that nominated a candidate.
type SourceSet map[Source]struct{}

// Add inserts a source into the set.
func (s SourceSet) Add(src Source) {
	s[src] = struct{}{}
}

// Has reports whether the set contains the given source.
func (s SourceSet) Has(src Source) bool {
	_, ok := s[src]
	return ok
}

// Candidates accumulates nominated movie ids keyed by TMDB id. Adding an
// id that is already present unions the new source into its existing set.
// The base movie id is never admitted.
type Candidates struct {
	baseID  int
	entries map[int]SourceSet
}

// NewCandidates creates an empty candidate pool anchored to the base movie.
func NewCandidates(baseID int) *Candidates {
	return &Candidates{
		baseID:  baseID,
		entries: make(map[int]SourceSet),
	}
}

// Add nominates a movie id from the given source.
func (c *Candidates) Add(movieID int, src Source) {
	if movieID == c.baseID {
		return
	}
	set, ok := c.entries[movieID]
	if !ok {
		set = make(SourceSet)
		c.entries[movieID] = set
	}
	set.Add(src)
}

// Sources returns the source set for a candidate id, or nil if absent.
func (c *Candidates) Sources(movieID int) SourceSet {
	return c.entries[movieID]
}

// Len returns the number of distinct candidates.
func (c *Candidates) Len() int {
	return len(c.entries)
}

// IDs returns the candidate ids in unspecified order.
func (c *Candidates) IDs() []int {
	ids := make([]int, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	return ids
}
