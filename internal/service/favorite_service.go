package service

import (
	"errors"
	"fmt"

	"movie-similarity-service/internal/models"
	"movie-similarity-service/internal/repository"
)

// ErrInvalidFavorite means the favorite payload is missing required fields.
var ErrInvalidFavorite = errors.New("invalid favorite payload")

// FavoriteService handles business logic for favorited movies.
type FavoriteService struct {
	repo *repository.FavoriteRepository
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(repo *repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

// List returns all favorited movies, most recently added first.
func (s *FavoriteService) List() ([]models.Favorite, error) {
	return s.repo.List()
}

// Add favorites a movie. Favoriting an already-favorited movie refreshes
// its stored metadata.
func (s *FavoriteService) Add(f *models.Favorite) error {
	if f.TMDBId <= 0 {
		return fmt.Errorf("%w: a TMDB movie id is required", ErrInvalidFavorite)
	}
	if f.Title == "" {
		return fmt.Errorf("%w: a movie title is required", ErrInvalidFavorite)
	}
	id, err := s.repo.Add(f)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	f.ID = id
	return nil
}

// Remove unfavorites a movie by TMDB id.
func (s *FavoriteService) Remove(tmdbID int) error {
	found, err := s.repo.Remove(tmdbID)
	if err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	if !found {
		return ErrMovieNotFound
	}
	return nil
}
