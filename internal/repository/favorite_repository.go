package repository

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"movie-similarity-service/internal/models"
)

// FavoriteRepository handles database operations for favorited movies.
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new FavoriteRepository.
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// List returns all favorites, most recently added first.
func (r *FavoriteRepository) List() ([]models.Favorite, error) {
	rows, err := r.db.Query(`
		SELECT id, tmdb_id, title,
			COALESCE(poster_path, '') as poster_path,
			COALESCE(TO_CHAR(release_date, 'YYYY-MM-DD'), '') as release_date,
			rating, created_at
		FROM favorites
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.TMDBId, &f.Title, &f.PosterPath, &f.ReleaseDate, &f.Rating, &f.CreatedAt); err != nil {
			slog.Error("failed to scan favorite row", "error", err)
			continue
		}
		favorites = append(favorites, f)
	}
	return favorites, nil
}

// Add inserts or updates a favorite keyed by TMDB id.
func (r *FavoriteRepository) Add(f *models.Favorite) (int, error) {
	var id int
	err := r.db.QueryRow(`
		INSERT INTO favorites (tmdb_id, title, poster_path, release_date, rating, created_at)
		VALUES ($1, $2, $3, $4::date, $5, $6)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			title = EXCLUDED.title,
			poster_path = EXCLUDED.poster_path,
			release_date = EXCLUDED.release_date,
			rating = EXCLUDED.rating
		RETURNING id
	`, f.TMDBId, f.Title, f.PosterPath, nullableDate(f.ReleaseDate), f.Rating, time.Now()).Scan(&id)
	return id, err
}

// Remove deletes a favorite by TMDB id and reports whether it existed.
func (r *FavoriteRepository) Remove(tmdbID int) (bool, error) {
	res, err := r.db.Exec(`DELETE FROM favorites WHERE tmdb_id = $1`, tmdbID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func nullableDate(dateStr string) interface{} {
	if dateStr == "" {
		return nil
	}
	return dateStr
}
