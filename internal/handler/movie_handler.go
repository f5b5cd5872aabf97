package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"movie-similarity-service/internal/service"
)

// MovieHandler handles HTTP requests for movie detail views.
type MovieHandler struct {
	svc *service.MovieService
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(svc *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// GetMovieDetail returns the detail view for a TMDB movie id.
// @Summary Get movie detail
// @Tags movies
// @Produce json
// @Param id path int true "TMDB movie ID"
// @Success 200 {object} models.MovieDetailView
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieDetail(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid movie ID",
		})
	}

	view, err := h.svc.GetMovieDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrUpstreamUnavailable) {
			slog.Error("upstream failure fetching movie detail", "id", id, "error", err)
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Error: "movie data service unavailable",
			})
		}
		slog.Error("failed to get movie detail", "id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to retrieve movie details",
		})
	}

	return c.JSON(view)
}
