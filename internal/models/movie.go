package models

import "time"

// ReviewSnippet is a trimmed review attached to a ranked result.
type ReviewSnippet struct {
	Text   string  `json:"text"`
	Rating float64 `json:"rating"`
}

// RankedMovie is one entry of the similarity ranking response.
type RankedMovie struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Year            *int            `json:"year"`
	SimilarityScore float64         `json:"similarity_score"`
	Genres          []string        `json:"genre"`
	Director        string          `json:"director"`
	Rating          float64         `json:"rating"`
	Reviews         []ReviewSnippet `json:"reviews"`
	PosterPath      string          `json:"poster_path"`
	Overview        string          `json:"overview"`
}

// CastEntry is a cast member in the movie detail view.
type CastEntry struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
}

// CrewEntry is a key crew member in the movie detail view.
type CrewEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Job  string `json:"job"`
}

// DetailReview is a full review in the movie detail view.
type DetailReview struct {
	Author  string   `json:"author"`
	Content string   `json:"content"`
	Rating  *float64 `json:"rating"`
	Date    string   `json:"date"`
}

// CollectionMovie is a collection member in the movie detail view.
type CollectionMovie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	PosterPath  string `json:"poster_path"`
}

// CollectionView is the collection block of the movie detail view.
type CollectionView struct {
	Name   string            `json:"name"`
	Movies []CollectionMovie `json:"movies"`
}

// MovieDetailView is the response shape for the movie detail endpoint.
type MovieDetailView struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Overview    string          `json:"overview"`
	ReleaseDate string          `json:"release_date"`
	Runtime     int             `json:"runtime"`
	Rating      float64         `json:"rating"`
	Genres      []string        `json:"genres"`
	PosterURL   string          `json:"poster_url"`
	BackdropURL string          `json:"backdrop_url"`
	Director    string          `json:"director"`
	Cast        []CastEntry     `json:"cast"`
	KeyCrew     []CrewEntry     `json:"key_crew"`
	Reviews     []DetailReview  `json:"reviews"`
	Collection  *CollectionView `json:"collection,omitempty"`
}

// Favorite is a favorited movie stored in our database.
type Favorite struct {
	ID          int       `json:"id"`
	TMDBId      int       `json:"tmdb_id"`
	Title       string    `json:"title"`
	PosterPath  string    `json:"poster_path"`
	ReleaseDate string    `json:"release_date"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	TMDBImageBaseW500 = "https://image.tmdb.org/t/p/w500"
	TMDBImageBaseW780 = "https://image.tmdb.org/t/p/w780"
)
