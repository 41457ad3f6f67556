package rating

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MinStars = 1
	MaxStars = 5
)

var ErrInvalid = errors.New("invalid rating")

// Rating is one user's star rating of another. There is at most one rating
// per (UserID, RaterID); rating again replaces the previous one.
type Rating struct {
	UserID    string
	RaterID   string
	Stars     int
	Comment   string
	CreatedAt time.Time
}

func New(userID, raterID string, stars int, comment string) (*Rating, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(raterID) == "" {
		return nil, ErrInvalid
	}
	if stars < MinStars || stars > MaxStars {
		return nil, fmt.Errorf("%w: stars must be between %d and %d", ErrInvalid, MinStars, MaxStars)
	}
	return &Rating{
		UserID:    userID,
		RaterID:   raterID,
		Stars:     stars,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Summary aggregates a user's ratings. Average is nil when there are none,
// otherwise the mean formatted with two decimals ("4.50").
type Summary struct {
	Ratings []Rating
	Average *string
	Count   int
}

func Summarize(ratings []Rating) Summary {
	s := Summary{Ratings: ratings, Count: len(ratings)}
	if len(ratings) == 0 {
		return s
	}

	total := 0
	for _, r := range ratings {
		total += r.Stars
	}
	avg := fmt.Sprintf("%.2f", float64(total)/float64(len(ratings)))
	s.Average = &avg
	return s
}
