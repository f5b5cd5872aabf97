package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-similarity-service/internal/models"
	"movie-similarity-service/internal/service"
)

// FavoriteHandler handles HTTP requests for favorited movies.
type FavoriteHandler struct {
	svc *service.FavoriteService
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{svc: svc}
}

// AddFavoriteRequest is the favorite creation request body.
type AddFavoriteRequest struct {
	TMDBId      int     `json:"tmdb_id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	Rating      float64 `json:"rating"`
}

// List returns all favorited movies.
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {array} models.Favorite
// @Failure 500 {object} ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c fiber.Ctx) error {
	favorites, err := h.svc.List()
	if err != nil {
		slog.Error("failed to list favorites", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve favorites",
		})
	}
	return c.JSON(favorites)
}

// Add favorites a movie.
// @Summary Add favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body AddFavoriteRequest true "Movie to favorite"
// @Success 201 {object} models.Favorite
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c fiber.Ctx) error {
	var req AddFavoriteRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}

	favorite := &models.Favorite{
		TMDBId:      req.TMDBId,
		Title:       req.Title,
		PosterPath:  req.PosterPath,
		ReleaseDate: req.ReleaseDate,
		Rating:      req.Rating,
	}
	if err := h.svc.Add(favorite); err != nil {
		if errors.Is(err, service.ErrInvalidFavorite) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: err.Error(),
			})
		}
		slog.Error("failed to add favorite", "tmdb_id", req.TMDBId, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to add favorite",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// Remove unfavorites a movie by TMDB id.
// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Param tmdb_id path int true "TMDB movie ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /favorites/{tmdb_id} [delete]
func (h *FavoriteHandler) Remove(c fiber.Ctx) error {
	tmdbID, err := strconv.Atoi(c.Params("tmdb_id"))
	if err != nil || tmdbID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid TMDB movie ID",
		})
	}

	if err := h.svc.Remove(tmdbID); err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "favorite not found",
			})
		}
		slog.Error("failed to remove favorite", "tmdb_id", tmdbID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to remove favorite",
		})
	}

	return c.JSON(fiber.Map{"message": "favorite removed"})
}
