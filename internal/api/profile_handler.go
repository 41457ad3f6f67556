package api

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/codeswap/backend/internal/domain/profile"
	"github.com/codeswap/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SaveInformationResponse struct {
	Message string  `json:"message" example:"User data saved"`
	Avatar  *string `json:"avatar,omitempty" example:"http://localhost:3000/avatars/3f2b9c0e.jpg"`
}

type ProfileResponse struct {
	ID                string     `json:"id" example:"3f2b9c0e7d1a4e5f8a6b2c4d9e0f1a2b"`
	Email             string     `json:"email" example:"ada@example.com"`
	FullName          string     `json:"fullName" example:"Ada Lovelace"`
	CreatedAt         time.Time  `json:"createdAt"`
	Bio               string     `json:"bio" example:"Backend dev learning Rust"`
	LanguagesKnown    []string   `json:"languagesKnown"`
	LanguagesLearning []string   `json:"languagesLearning"`
	LearningStyle     string     `json:"learningStyle" example:"pair programming"`
	Availability      string     `json:"availability" example:"weekday evenings"`
	Avatar            *string    `json:"avatar"`
	LastLogin         *time.Time `json:"lastLogin"`
	Streak            int        `json:"streak" example:"4"`
}

type GetInformationResponse struct {
	Message string          `json:"message" example:"Data received"`
	Data    ProfileResponse `json:"data"`
}

type SwipeCardResponse struct {
	ID                string   `json:"id"`
	FullName          string   `json:"fullName" example:"Ada Lovelace"`
	Avatar            *string  `json:"avatar"`
	Bio               string   `json:"bio"`
	LearningStyle     string   `json:"learningStyle"`
	LanguagesKnown    []string `json:"languagesKnown"`
	LanguagesLearning []string `json:"languagesLearning"`
	Availability      string   `json:"availability"`
}

func toProfileResponse(p *profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                p.UserID,
		Email:             p.Email,
		FullName:          p.FullName,
		CreatedAt:         p.CreatedAt,
		Bio:               p.Bio,
		LanguagesKnown:    orEmpty(p.LanguagesKnown),
		LanguagesLearning: orEmpty(p.LanguagesLearning),
		LearningStyle:     p.LearningStyle,
		Availability:      p.Availability,
		Avatar:            p.AvatarURL,
		LastLogin:         p.LastLogin,
		Streak:            p.Streak,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// ── Handlers ────────────────────────────────────────────────────────────────

// multipartOverhead is the room left for form fields next to the avatar.
const multipartOverhead = 1 << 20

// addInformation updates the caller's profile and avatar.
// @Summary      Save profile information
// @Description  Multipart form. Verifies email/password, stores the optional avatar (max 5 MiB) and merges bio, languagesKnown, languagesLearning, learningStyle and availability from the userData JSON. Other userData keys are ignored.
// @Tags         Profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        email     formData  string  true   "Account email"
// @Param        password  formData  string  true   "Account password"
// @Param        userData  formData  string  false  "Profile fields as a JSON object"
// @Param        avatar    formData  file    false  "Avatar image"
// @Success      200  {object}  SaveInformationResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /add_information [post]
func (h *Handler) addInformation(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, service.MaxAvatarSize+multipartOverhead)
	if err := r.ParseMultipartForm(multipartOverhead); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "Avatar must be 5 MiB or smaller")
			return
		}
		respondError(w, http.StatusBadRequest, "invalid form")
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	var avatar []byte
	file, _, err := r.FormFile("avatar")
	switch {
	case err == nil:
		defer file.Close()
		avatar, err = io.ReadAll(io.LimitReader(file, service.MaxAvatarSize+1))
		if err != nil {
			respondError(w, http.StatusBadRequest, "failed to read avatar")
			return
		}
	case !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart):
		respondError(w, http.StatusBadRequest, "invalid avatar upload")
		return
	}

	var userData []byte
	if v := r.FormValue("userData"); v != "" {
		userData = []byte(v)
	}

	url, err := h.profiles.SaveInformation(r.Context(), r.FormValue("email"), r.FormValue("password"), userData, avatar)
	if errors.Is(err, service.ErrAvatarTooLarge) {
		respondError(w, http.StatusRequestEntityTooLarge, "Avatar must be 5 MiB or smaller")
		return
	}
	if h.handleServiceError(w, err, "user") {
		return
	}

	respondJSON(w, http.StatusOK, SaveInformationResponse{Message: "User data saved", Avatar: url})
}

// getInformation returns the caller's profile.
// @Summary      Get profile information
// @Tags         Profiles
// @Accept       json
// @Produce      json
// @Param        body  body      CredentialsRequest  true  "Credentials"
// @Success      200   {object}  GetInformationResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /get_information [post]
func (h *Handler) getInformation(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p, err := h.profiles.GetInformation(r.Context(), req.Email, req.Password)
	if h.handleServiceError(w, err, "user") {
		return
	}

	respondJSON(w, http.StatusOK, GetInformationResponse{
		Message: "Data received",
		Data:    toProfileResponse(p),
	})
}

// swipeDeck lists other users with a filled-in profile.
// @Summary      Swipe deck
// @Description  Every user except excludeEmail whose profile has a bio, languages, learning style or availability.
// @Tags         Profiles
// @Produce      json
// @Param        excludeEmail  query     string  false  "Email of the requesting user"
// @Success      200           {array}   SwipeCardResponse
// @Failure      500           {object}  ErrorResponse
// @Router       /users/swipe [get]
func (h *Handler) swipeDeck(w http.ResponseWriter, r *http.Request) {
	deck, err := h.profiles.SwipeDeck(r.Context(), r.URL.Query().Get("excludeEmail"))
	if err != nil {
		h.logger.Error("failed to load swipe deck", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load users for swipe.")
		return
	}

	cards := make([]SwipeCardResponse, 0, len(deck))
	for _, p := range deck {
		cards = append(cards, SwipeCardResponse{
			ID:                p.UserID,
			FullName:          p.FullName,
			Avatar:            p.AvatarURL,
			Bio:               p.Bio,
			LearningStyle:     p.LearningStyle,
			LanguagesKnown:    orEmpty(p.LanguagesKnown),
			LanguagesLearning: orEmpty(p.LanguagesLearning),
			Availability:      p.Availability,
		})
	}
	respondJSON(w, http.StatusOK, cards)
}
