package profile_test

import (
	"errors"
	"testing"
	"time"

	"github.com/codeswap/backend/internal/domain/profile"
)

func TestParseUpdate_Whitelist(t *testing.T) {
	raw := []byte(`{"bio":"Gopher","languagesKnown":["Go","Rust"],"streak":99,"email":"evil@example.com","avatar":"x"}`)

	u, err := profile.ParseUpdate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Bio == nil || *u.Bio != "Gopher" {
		t.Errorf("expected bio to be parsed")
	}
	if u.LanguagesKnown == nil || len(*u.LanguagesKnown) != 2 {
		t.Errorf("expected languagesKnown to be parsed")
	}
	if u.AvatarURL != nil {
		t.Errorf("expected avatar to be ignored from client JSON")
	}

	p := profile.New("u1", "a@example.com", "Ada", time.Now())
	p.Streak = 3
	p.Apply(u)
	if p.Email != "a@example.com" || p.Streak != 3 {
		t.Errorf("non-whitelisted fields must not change: %+v", p)
	}
	if p.Bio != "Gopher" {
		t.Errorf("expected bio %q, got %q", "Gopher", p.Bio)
	}
}

func TestParseUpdate_InvalidJSON(t *testing.T) {
	for _, raw := range []string{`{bio:`, `[1,2]`, `{"bio":5}`} {
		if _, err := profile.ParseUpdate([]byte(raw)); !errors.Is(err, profile.ErrInvalidUpdate) {
			t.Errorf("%s: expected ErrInvalidUpdate, got %v", raw, err)
		}
	}
}

func TestApply_LeavesUnsetFields(t *testing.T) {
	p := profile.New("u1", "a@example.com", "Ada", time.Now())
	p.Bio = "old"
	p.LearningStyle = "visual"

	style := "pairing"
	p.Apply(profile.Update{LearningStyle: &style})

	if p.Bio != "old" {
		t.Errorf("expected bio to stay %q, got %q", "old", p.Bio)
	}
	if p.LearningStyle != "pairing" {
		t.Errorf("expected learning style %q, got %q", "pairing", p.LearningStyle)
	}
}

func TestSwipeable(t *testing.T) {
	p := profile.New("u1", "a@example.com", "Ada", time.Now())
	if p.Swipeable() {
		t.Error("empty profile should not be swipeable")
	}

	p.LanguagesLearning = []string{"Haskell"}
	if !p.Swipeable() {
		t.Error("profile with languages should be swipeable")
	}
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ago := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}

	tests := []struct {
		name       string
		prev       *time.Time
		prevStreak int
		want       int
	}{
		{"first login", nil, 0, 1},
		{"same day", ago(3 * time.Hour), 4, 4},
		{"next day", ago(30 * time.Hour), 4, 5},
		{"missed a day", ago(50 * time.Hour), 4, 1},
		{"missing previous streak", ago(25 * time.Hour), 0, 2},
		{"clock skew", ago(-time.Hour), 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := profile.NextStreak(tt.prev, tt.prevStreak, now); got != tt.want {
				t.Errorf("expected streak %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRecordLogin(t *testing.T) {
	p := profile.New("u1", "a@example.com", "Ada", time.Now())
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	p.RecordLogin(now)
	if p.Streak != 1 || p.LastLogin == nil || !p.LastLogin.Equal(now) {
		t.Fatalf("unexpected state after first login: %+v", p)
	}

	p.RecordLogin(now.Add(24 * time.Hour))
	if p.Streak != 2 {
		t.Errorf("expected streak 2, got %d", p.Streak)
	}
}
