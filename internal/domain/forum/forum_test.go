package forum_test

import (
	"errors"
	"testing"

	"github.com/codeswap/backend/internal/domain/forum"
)

func TestNewTopic(t *testing.T) {
	avatar := ""
	topic, err := forum.NewTopic("Pairing on Go generics?", "u1", "Ada", &avatar)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if topic.ID == "" {
		t.Error("expected non-empty ID")
	}
	if topic.Title != "Pairing on Go generics?" {
		t.Errorf("expected title %q, got %q", "Pairing on Go generics?", topic.Title)
	}
	if topic.AuthorAvatar != nil {
		t.Errorf("expected empty avatar to be stored as nil, got %q", *topic.AuthorAvatar)
	}
	if topic.CreatedAt.IsZero() {
		t.Error("expected server-assigned timestamp")
	}
}

func TestNewTopic_MissingFields(t *testing.T) {
	if _, err := forum.NewTopic("", "u1", "Ada", nil); !errors.Is(err, forum.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields for empty title, got %v", err)
	}
	if _, err := forum.NewTopic("Title", "  ", "Ada", nil); !errors.Is(err, forum.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields for empty author, got %v", err)
	}
}

func TestNewComment(t *testing.T) {
	avatar := "http://localhost:3000/avatars/u2.jpg"
	c, err := forum.NewComment("t1", "u2", "Linus", &avatar, "I'm in")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.TopicID != "t1" || c.Text != "I'm in" {
		t.Errorf("unexpected comment: %+v", c)
	}
	if c.AuthorAvatar == nil || *c.AuthorAvatar != avatar {
		t.Errorf("expected avatar to be kept")
	}

	if _, err := forum.NewComment("t1", "u2", "Linus", nil, ""); !errors.Is(err, forum.ErrMissingFields) {
		t.Errorf("expected ErrMissingFields for empty text, got %v", err)
	}
}
