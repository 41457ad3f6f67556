package forum

import (
	"errors"
	"strings"
	"time"

	"github.com/codeswap/backend/internal/id"
)

var ErrMissingFields = errors.New("missing fields")

// Topic is a forum thread. Comments are stored separately and listed
// oldest first under their topic.
type Topic struct {
	ID           string
	Title        string
	AuthorID     string
	AuthorName   string
	AuthorAvatar *string
	CreatedAt    time.Time
}

type Comment struct {
	ID           string
	TopicID      string
	AuthorID     string
	AuthorName   string
	AuthorAvatar *string
	Text         string
	CreatedAt    time.Time
}

// NewTopic creates a topic with a generated ID and the current time.
// Title and author ID are required.
func NewTopic(title, authorID, authorName string, authorAvatar *string) (*Topic, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(authorID) == "" {
		return nil, ErrMissingFields
	}
	return &Topic{
		ID:           id.GenerateID(),
		Title:        title,
		AuthorID:     authorID,
		AuthorName:   authorName,
		AuthorAvatar: emptyToNil(authorAvatar),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func NewComment(topicID, authorID, authorName string, authorAvatar *string, text string) (*Comment, error) {
	if strings.TrimSpace(authorID) == "" || strings.TrimSpace(text) == "" {
		return nil, ErrMissingFields
	}
	return &Comment{
		ID:           id.GenerateID(),
		TopicID:      topicID,
		AuthorID:     authorID,
		AuthorName:   authorName,
		AuthorAvatar: emptyToNil(authorAvatar),
		Text:         text,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
