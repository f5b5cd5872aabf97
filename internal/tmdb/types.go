package tmdb

// Movie is the summary record returned by search, discover and the
// embedded similar/recommendations pages.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Popularity  float64 `json:"popularity"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	PosterPath  string  `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
}

// MoviePage is a paged list of movie summaries.
type MoviePage struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is a genre id/name pair.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CollectionRef is the belongs_to_collection reference on a movie detail.
type CollectionRef struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	PosterPath string `json:"poster_path"`
}

// CastMember is an ordered cast entry.
type CastMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path"`
}

// CrewMember is a crew entry with its job title.
type CrewMember struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

// Credits holds the cast and crew lists appended to a movie detail.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// Keyword is a keyword id/name pair.
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// KeywordList wraps the appended keywords response.
type KeywordList struct {
	Keywords []Keyword `json:"keywords"`
}

// ReviewerDetails carries the optional numeric rating of a reviewer.
type ReviewerDetails struct {
	Rating *float64 `json:"rating"`
}

// Review is a user review of a movie.
type Review struct {
	Author        string          `json:"author"`
	Content       string          `json:"content"`
	AuthorDetails ReviewerDetails `json:"author_details"`
	CreatedAt     string          `json:"created_at"`
}

// ReviewPage wraps the appended reviews response.
type ReviewPage struct {
	Results []Review `json:"results"`
}

// MovieDetail is the full movie record with all appended responses.
type MovieDetail struct {
	ID                  int            `json:"id"`
	Title               string         `json:"title"`
	Overview            string         `json:"overview"`
	ReleaseDate         string         `json:"release_date"`
	Popularity          float64        `json:"popularity"`
	VoteAverage         float64        `json:"vote_average"`
	VoteCount           int            `json:"vote_count"`
	PosterPath          string         `json:"poster_path"`
	BackdropPath        string         `json:"backdrop_path"`
	Runtime             int            `json:"runtime"`
	Genres              []Genre        `json:"genres"`
	BelongsToCollection *CollectionRef `json:"belongs_to_collection"`
	Credits             Credits        `json:"credits"`
	Keywords            KeywordList    `json:"keywords"`
	Reviews             ReviewPage     `json:"reviews"`
	Similar             MoviePage      `json:"similar"`
	Recommendations     MoviePage      `json:"recommendations"`
}

// Collection is a movie collection (franchise) with its member movies.
type Collection struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Parts []Movie `json:"parts"`
}

// PersonCrewCredit is one crew credit in a person's movie history.
// VoteAverage is a pointer so an absent rating is distinguishable from 0.
type PersonCrewCredit struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Job         string   `json:"job"`
	VoteAverage *float64 `json:"vote_average"`
	ReleaseDate string   `json:"release_date"`
	PosterPath  string   `json:"poster_path"`
}

// PersonCredits is the movie credit history of a person.
type PersonCredits struct {
	ID   int                `json:"id"`
	Crew []PersonCrewCredit `json:"crew"`
}
