package api

import (
	"net/http"
	"time"

	"github.com/codeswap/backend/internal/domain/rating"
)

// ── Request / Response types ────────────────────────────────────────────────

type RateRequest struct {
	RaterID string `json:"raterId" example:"3f2b9c0e7d1a4e5f8a6b2c4d9e0f1a2b"`
	Stars   int    `json:"stars" example:"5"`
	Comment string `json:"comment" example:"Great study partner"`
}

type RatingResponse struct {
	RaterID   string    `json:"raterId"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatingsResponse struct {
	Ratings []RatingResponse `json:"ratings"`
	Average *string          `json:"average" example:"4.50"`
	Count   int              `json:"count" example:"2"`
}

type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// rateUser records the rater's star rating of a user.
// @Summary      Rate a user
// @Description  One rating per rater: rating the same user again replaces the earlier rating.
// @Tags         Ratings
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Rated user ID"
// @Param        body  body      RateRequest  true  "Rating"
// @Success      200   {object}  SuccessResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /users/{id}/rate [post]
func (h *Handler) rateUser(w http.ResponseWriter, r *http.Request) {
	var req RateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rt, err := rating.New(r.PathValue("id"), req.RaterID, req.Stars, req.Comment)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid data")
		return
	}

	if err := h.store.SaveRating(r.Context(), rt); err != nil {
		h.logger.Error("failed to save rating", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to save rating")
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// userRatings returns a user's ratings with their average.
// @Summary      Get a user's ratings
// @Description  average is the mean star count with two decimals, or null when the user has no ratings.
// @Tags         Ratings
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  RatingsResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /users/{id}/ratings [get]
func (h *Handler) userRatings(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.store.ListRatings(r.Context(), r.PathValue("id"))
	if err != nil {
		h.logger.Error("failed to load ratings", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load ratings")
		return
	}

	summary := rating.Summarize(ratings)
	resp := RatingsResponse{
		Ratings: make([]RatingResponse, 0, len(summary.Ratings)),
		Average: summary.Average,
		Count:   summary.Count,
	}
	for _, rt := range summary.Ratings {
		resp.Ratings = append(resp.Ratings, RatingResponse{
			RaterID:   rt.RaterID,
			Stars:     rt.Stars,
			Comment:   rt.Comment,
			CreatedAt: rt.CreatedAt,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}
