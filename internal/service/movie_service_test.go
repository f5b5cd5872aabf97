package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-similarity-service/internal/tmdb"
)

func TestGetMovieDetailViewAssembly(t *testing.T) {
	nine := 9.0
	detail := &tmdb.MovieDetail{
		ID:                  603,
		Title:               "The Matrix",
		Overview:            "A hacker learns the truth.",
		ReleaseDate:         "1999-03-31",
		Runtime:             136,
		VoteAverage:         8.2,
		PosterPath:          "/matrix.jpg",
		BackdropPath:        "/matrix-backdrop.jpg",
		Genres:              []tmdb.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		BelongsToCollection: &tmdb.CollectionRef{ID: 2344, Name: "The Matrix Collection"},
		Credits: tmdb.Credits{
			Cast: func() []tmdb.CastMember {
				var cast []tmdb.CastMember
				for i := 0; i < 12; i++ {
					cast = append(cast, tmdb.CastMember{ID: i, Name: fmt.Sprintf("Actor %d", i)})
				}
				return cast
			}(),
			Crew: []tmdb.CrewMember{
				{ID: 1, Name: "Lana Wachowski", Job: "Director"},
				{ID: 2, Name: "Lilly Wachowski", Job: "Director"},
				{ID: 3, Name: "Joel Silver", Job: "Producer"},
				{ID: 4, Name: "Bill Pope", Job: "Cinematographer"},
				{ID: 5, Name: "Don Davis", Job: "Original Music Composer"},
				{ID: 6, Name: "Lana Wachowski", Job: "Writer"},
				{ID: 7, Name: "Someone Else", Job: "Producer"},
			},
		},
		Reviews: tmdb.ReviewPage{Results: func() []tmdb.Review {
			var reviews []tmdb.Review
			for i := 0; i < 7; i++ {
				reviews = append(reviews, tmdb.Review{
					Author:        fmt.Sprintf("reviewer %d", i),
					Content:       "great",
					AuthorDetails: tmdb.ReviewerDetails{Rating: &nine},
					CreatedAt:     "2020-01-02T15:04:05.000Z",
				})
			}
			reviews[0].Author = ""
			return reviews
		}()},
	}

	client := &stubClient{
		details: map[int]*tmdb.MovieDetail{603: detail},
		collection: &tmdb.Collection{
			ID:   2344,
			Name: "The Matrix Collection",
			Parts: []tmdb.Movie{
				{ID: 605, Title: "Reloaded", ReleaseDate: "2003-05-15"},
				{ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-31"},
				{ID: 606, Title: "Revolutions", ReleaseDate: "2003-11-05"},
			},
		},
	}
	svc := NewMovieService(client, nil)

	view, err := svc.GetMovieDetail(context.Background(), 603)
	require.NoError(t, err)

	assert.Equal(t, 603, view.ID)
	assert.Equal(t, []string{"Action", "Science Fiction"}, view.Genres)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/matrix.jpg", view.PosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w780/matrix-backdrop.jpg", view.BackdropURL)

	// Cast capped at ten.
	assert.Len(t, view.Cast, 10)
	assert.Equal(t, "Actor 0", view.Cast[0].Name)

	// First credited director wins; key crew keeps only curated jobs,
	// capped at five.
	assert.Equal(t, "Lana Wachowski", view.Director)
	require.Len(t, view.KeyCrew, 5)
	for _, member := range view.KeyCrew {
		assert.NotEqual(t, "Original Music Composer", member.Job)
	}

	// Reviews capped at five, anonymous author defaulted, timestamp
	// reduced to its date part.
	require.Len(t, view.Reviews, 5)
	assert.Equal(t, "Anonymous", view.Reviews[0].Author)
	assert.Equal(t, "2020-01-02", view.Reviews[0].Date)
	require.NotNil(t, view.Reviews[1].Rating)
	assert.Equal(t, 9.0, *view.Reviews[1].Rating)

	// Collection members sorted by release date.
	require.NotNil(t, view.Collection)
	require.Len(t, view.Collection.Movies, 3)
	assert.Equal(t, []int{603, 605, 606}, []int{
		view.Collection.Movies[0].ID,
		view.Collection.Movies[1].ID,
		view.Collection.Movies[2].ID,
	})
}

func TestGetMovieDetailUpstreamFailure(t *testing.T) {
	client := &stubClient{detailErrs: map[int]error{603: fmt.Errorf("dial timeout")}}
	svc := NewMovieService(client, nil)

	_, err := svc.GetMovieDetail(context.Background(), 603)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestGetMovieDetailCollectionFailureDegrades(t *testing.T) {
	detail := &tmdb.MovieDetail{
		ID:                  603,
		Title:               "The Matrix",
		BelongsToCollection: &tmdb.CollectionRef{ID: 2344},
	}
	client := &stubClient{
		details:       map[int]*tmdb.MovieDetail{603: detail},
		collectionErr: fmt.Errorf("boom"),
	}
	svc := NewMovieService(client, nil)

	view, err := svc.GetMovieDetail(context.Background(), 603)
	require.NoError(t, err)
	assert.Nil(t, view.Collection)
}
