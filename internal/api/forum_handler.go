package api

import (
	"net/http"
	"time"

	"github.com/codeswap/backend/internal/domain/forum"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateTopicRequest struct {
	Title        string  `json:"title" example:"Anyone pairing on Go generics?"`
	AuthorID     string  `json:"authorId" example:"3f2b9c0e7d1a4e5f8a6b2c4d9e0f1a2b"`
	AuthorName   string  `json:"authorName" example:"Ada Lovelace"`
	AuthorAvatar *string `json:"authorAvatar"`
}

type CreateCommentRequest struct {
	AuthorID     string  `json:"authorId" example:"3f2b9c0e7d1a4e5f8a6b2c4d9e0f1a2b"`
	AuthorName   string  `json:"authorName" example:"Linus"`
	AuthorAvatar *string `json:"authorAvatar"`
	Text         string  `json:"text" example:"Count me in"`
}

type TopicResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar *string   `json:"authorAvatar"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CommentResponse struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	AuthorAvatar *string   `json:"authorAvatar"`
	Text         string    `json:"text"`
	CreatedAt    time.Time `json:"createdAt"`
}

type TopicWithCommentsResponse struct {
	Topic    TopicResponse     `json:"topic"`
	Comments []CommentResponse `json:"comments"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

func toTopicResponse(t *forum.Topic) TopicResponse {
	return TopicResponse{
		ID:           t.ID,
		Title:        t.Title,
		AuthorID:     t.AuthorID,
		AuthorName:   t.AuthorName,
		AuthorAvatar: t.AuthorAvatar,
		CreatedAt:    t.CreatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listTopics returns all forum topics.
// @Summary      List topics
// @Description  All topics, newest first.
// @Tags         Forum
// @Produce      json
// @Success      200  {array}   TopicResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /forum/topics [get]
func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.store.ListTopics(r.Context())
	if err != nil {
		h.logger.Error("failed to load topics", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to load topics.")
		return
	}

	resp := make([]TopicResponse, 0, len(topics))
	for _, t := range topics {
		resp = append(resp, toTopicResponse(t))
	}
	respondJSON(w, http.StatusOK, resp)
}

// createTopic opens a new topic.
// @Summary      Create a topic
// @Tags         Forum
// @Accept       json
// @Produce      json
// @Param        body  body      CreateTopicRequest  true  "Topic to create"
// @Success      200   {object}  CreatedResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /forum/topics [post]
func (h *Handler) createTopic(w http.ResponseWriter, r *http.Request) {
	var req CreateTopicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	topic, err := forum.NewTopic(req.Title, req.AuthorID, req.AuthorName, req.AuthorAvatar)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	if err := h.store.SaveTopic(r.Context(), topic); err != nil {
		h.logger.Error("failed to save topic", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to create topic")
		return
	}

	respondJSON(w, http.StatusOK, CreatedResponse{ID: topic.ID})
}

// getTopic returns a topic with its comments.
// @Summary      Get a topic
// @Description  The topic and its comments, oldest comment first.
// @Tags         Forum
// @Produce      json
// @Param        id   path      string  true  "Topic ID"
// @Success      200  {object}  TopicWithCommentsResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /forum/topics/{id} [get]
func (h *Handler) getTopic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	topic, err := h.store.GetTopic(ctx, id)
	if h.handleStoreError(w, err, "Topic") {
		return
	}

	comments, err := h.store.ListComments(ctx, id)
	if h.handleStoreError(w, err, "comments") {
		return
	}

	resp := TopicWithCommentsResponse{
		Topic:    toTopicResponse(topic),
		Comments: make([]CommentResponse, 0, len(comments)),
	}
	for _, c := range comments {
		resp.Comments = append(resp.Comments, CommentResponse{
			ID:           c.ID,
			AuthorID:     c.AuthorID,
			AuthorName:   c.AuthorName,
			AuthorAvatar: c.AuthorAvatar,
			Text:         c.Text,
			CreatedAt:    c.CreatedAt,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}

// addComment appends a comment to a topic.
// @Summary      Comment on a topic
// @Tags         Forum
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Topic ID"
// @Param        body  body      CreateCommentRequest  true  "Comment"
// @Success      200   {object}  MessageResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /forum/topics/{id}/comments [post]
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := forum.NewComment(r.PathValue("id"), req.AuthorID, req.AuthorName, req.AuthorAvatar, req.Text)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	err = h.store.SaveComment(r.Context(), comment)
	if h.handleStoreError(w, err, "Topic") {
		return
	}

	respondJSON(w, http.StatusOK, MessageResponse{Message: "Comment added"})
}
