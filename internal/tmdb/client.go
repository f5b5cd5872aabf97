package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	// discoverKeywordCount is how many keyword ids are pipe-joined into a
	// single discover query.
	discoverKeywordCount = 3
	// discoverMinVoteCount keeps keyword discovery to well-known movies.
	discoverMinVoteCount = 500

	requestAttempts = 3
	requestDelay    = 200 * time.Millisecond
)

// Client is the TMDB API client. Authentication uses the v4 bearer token
// when configured, otherwise the v3 api_key query parameter.
type Client struct {
	apiKey      string
	accessToken string
	baseURL     string
	http        *http.Client
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey, accessToken, baseURL string) *Client {
	return &Client{
		apiKey:      apiKey,
		accessToken: accessToken,
		baseURL:     strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SearchMovies searches for movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string) (*MoviePage, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("include_adult", "false")
	q.Set("language", "en-US")
	q.Set("page", "1")

	slog.Debug("fetching TMDB search", "query", query)
	var result MoviePage
	if err := c.getJSON(ctx, "/search/movie", q, &result); err != nil {
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}
	return &result, nil
}

// GetMovieDetail fetches a movie with credits, keywords, reviews,
// recommendations and similar movies appended in a single call.
func (c *Client) GetMovieDetail(ctx context.Context, movieID int) (*MovieDetail, error) {
	q := url.Values{}
	q.Set("append_to_response", "credits,keywords,reviews,recommendations,similar")

	slog.Debug("fetching TMDB movie detail", "movie_id", movieID)
	var result MovieDetail
	if err := c.getJSON(ctx, fmt.Sprintf("/movie/%d", movieID), q, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch movie %d: %w", movieID, err)
	}
	return &result, nil
}

// GetCollection fetches a movie collection (franchise) and its member movies.
func (c *Client) GetCollection(ctx context.Context, collectionID int) (*Collection, error) {
	slog.Debug("fetching TMDB collection", "collection_id", collectionID)
	var result Collection
	if err := c.getJSON(ctx, fmt.Sprintf("/collection/%d", collectionID), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch collection %d: %w", collectionID, err)
	}
	return &result, nil
}

// GetPersonMovieCredits fetches the movie credit history of a person.
func (c *Client) GetPersonMovieCredits(ctx context.Context, personID int) (*PersonCredits, error) {
	slog.Debug("fetching TMDB person credits", "person_id", personID)
	var result PersonCredits
	if err := c.getJSON(ctx, fmt.Sprintf("/person/%d/movie_credits", personID), nil, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch person credits %d: %w", personID, err)
	}
	return &result, nil
}

// DiscoverByKeywords finds well-known movies sharing the given keywords,
// most-voted first. Only the first three keyword ids are used.
func (c *Client) DiscoverByKeywords(ctx context.Context, keywordIDs []int) ([]Movie, error) {
	if len(keywordIDs) == 0 {
		return nil, nil
	}
	if len(keywordIDs) > discoverKeywordCount {
		keywordIDs = keywordIDs[:discoverKeywordCount]
	}
	parts := make([]string, len(keywordIDs))
	for i, id := range keywordIDs {
		parts[i] = strconv.Itoa(id)
	}

	q := url.Values{}
	q.Set("with_keywords", strings.Join(parts, "|"))
	q.Set("sort_by", "vote_count.desc")
	q.Set("vote_count.gte", strconv.Itoa(discoverMinVoteCount))
	q.Set("page", "1")

	slog.Debug("fetching TMDB keyword discovery", "keywords", parts)
	var result MoviePage
	if err := c.getJSON(ctx, "/discover/movie", q, &result); err != nil {
		return nil, fmt.Errorf("failed to discover movies by keywords: %w", err)
	}
	return result.Results, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	if c.accessToken == "" && c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	reqURL := c.baseURL + path
	if enc := q.Encode(); enc != "" {
		reqURL += "?" + enc
	}

	body, err := c.doGet(ctx, reqURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) doGet(ctx context.Context, reqURL string) ([]byte, error) {
	var body []byte
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			req.Header.Set("Accept", "application/json")
			if c.accessToken != "" {
				req.Header.Set("Authorization", "Bearer "+c.accessToken)
			}

			resp, err := c.http.Do(req)
			if err != nil {
				return fmt.Errorf("HTTP request failed: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				b, _ := io.ReadAll(resp.Body)
				err := fmt.Errorf("TMDB API returned status %d: %s", resp.StatusCode, string(b))
				if resp.StatusCode >= 400 && resp.StatusCode < 500 {
					// Client errors will not heal on retry.
					return retry.Unrecoverable(err)
				}
				return err
			}

			body, err = io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("failed to read response body: %w", err)
			}
			return nil
		},
		retry.Attempts(requestAttempts),
		retry.Delay(requestDelay),
		retry.MaxDelay(time.Second),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}
