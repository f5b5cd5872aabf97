package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"movie-similarity-service/internal/service"
)

// RecommendationHandler handles HTTP requests for similarity rankings.
type RecommendationHandler struct {
	svc *service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(svc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SearchRequest is the similarity search request body.
type SearchRequest struct {
	Title string `json:"title"`
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *RecommendationHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "movie-similarity-service",
	})
}

// Search returns movies similar to the given title, ranked by similarity.
// @Summary Search similar movies
// @Tags search
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Movie title to rank against"
// @Success 200 {array} models.RankedMovie
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /search [post]
func (h *RecommendationHandler) Search(c fiber.Ctx) error {
	var req SearchRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}

	ranked, err := h.svc.Recommend(c.Context(), req.Title)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "movie title is required",
			})
		case errors.Is(err, service.ErrMovieNotFound):
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Error: "movie not found",
			})
		case errors.Is(err, service.ErrUpstreamUnavailable):
			slog.Error("upstream failure during similarity search", "title", req.Title, "error", err)
			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Error: "movie data service unavailable",
			})
		default:
			slog.Error("similarity search failed", "title", req.Title, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
				Error: "failed to rank similar movies",
			})
		}
	}

	return c.JSON(ranked)
}
