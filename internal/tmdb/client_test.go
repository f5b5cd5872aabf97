package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMovies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "The Matrix", q.Get("query"))
		assert.Equal(t, "false", q.Get("include_adult"))
		assert.Equal(t, "en-US", q.Get("language"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "test-key", q.Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":603,"title":"The Matrix","release_date":"1999-03-31","vote_average":8.2}],"total_pages":1,"total_results":1}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", "", srv.URL)
	page, err := client.SearchMovies(context.Background(), "The Matrix")
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 603, page.Results[0].ID)
	assert.Equal(t, 8.2, page.Results[0].VoteAverage)
}

func TestGetMovieDetailAppendsResponses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		assert.Equal(t,
			"credits,keywords,reviews,recommendations,similar",
			r.URL.Query().Get("append_to_response"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id":603,"title":"The Matrix","release_date":"1999-03-31",
			"belongs_to_collection":{"id":2344,"name":"The Matrix Collection"},
			"genres":[{"id":28,"name":"Action"}],
			"credits":{"cast":[{"id":6384,"name":"Keanu Reeves","order":0}],"crew":[{"id":9340,"name":"Lana Wachowski","job":"Director"}]},
			"keywords":{"keywords":[{"id":312,"name":"man vs machine"}]},
			"reviews":{"results":[{"author":"x","content":"great","author_details":{"rating":9.0}}]},
			"similar":{"results":[{"id":604}]},
			"recommendations":{"results":[{"id":605}]}
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", "", srv.URL)
	detail, err := client.GetMovieDetail(context.Background(), 603)
	require.NoError(t, err)

	require.NotNil(t, detail.BelongsToCollection)
	assert.Equal(t, 2344, detail.BelongsToCollection.ID)
	require.Len(t, detail.Credits.Crew, 1)
	assert.Equal(t, "Director", detail.Credits.Crew[0].Job)
	require.Len(t, detail.Reviews.Results, 1)
	require.NotNil(t, detail.Reviews.Results[0].AuthorDetails.Rating)
	assert.Equal(t, 9.0, *detail.Reviews.Results[0].AuthorDetails.Rating)
	assert.Equal(t, 604, detail.Similar.Results[0].ID)
	assert.Equal(t, 605, detail.Recommendations.Results[0].ID)
}

func TestDiscoverByKeywordsUsesTopThree(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "1|2|3", q.Get("with_keywords"))
		assert.Equal(t, "vote_count.desc", q.Get("sort_by"))
		assert.Equal(t, "500", q.Get("vote_count.gte"))
		assert.Equal(t, "1", q.Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":11},{"id":22}]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", "", srv.URL)
	movies, err := client.DiscoverByKeywords(context.Background(), []int{1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Len(t, movies, 2)
}

func TestDiscoverByKeywordsEmptySeed(t *testing.T) {
	client := NewClient("test-key", "", "http://unreachable.invalid")
	movies, err := client.DiscoverByKeywords(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestBearerTokenAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		// The api_key fallback must not leak alongside the bearer token.
		assert.Empty(t, r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"parts":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", "test-token", srv.URL)
	_, err := client.GetCollection(context.Background(), 1)
	require.NoError(t, err)
}

func TestServerErrorsAreRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":9,"crew":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", "", srv.URL)
	credits, err := client.GetPersonMovieCredits(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, 9, credits.ID)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient("test-key", "", srv.URL)
	_, err := client.GetMovieDetail(context.Background(), 999999)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
