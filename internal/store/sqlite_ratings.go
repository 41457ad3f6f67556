package store

import (
	"context"

	"github.com/codeswap/backend/internal/domain/rating"
)

// ============================================================================
// Ratings
// ============================================================================

// SaveRating stores r, replacing any earlier rating by the same rater.
func (s *SQLiteStore) SaveRating(ctx context.Context, r *rating.Rating) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ratings (user_id, rater_id, stars, comment, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, rater_id) DO UPDATE SET
		    stars = excluded.stars,
		    comment = excluded.comment,
		    created_at = excluded.created_at`,
		r.UserID, r.RaterID, r.Stars, r.Comment, formatTime(r.CreatedAt),
	)
	return err
}

func (s *SQLiteStore) ListRatings(ctx context.Context, userID string) ([]rating.Rating, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT user_id, rater_id, stars, comment, created_at FROM ratings WHERE user_id = ? ORDER BY created_at",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []rating.Rating{}
	for rows.Next() {
		var r rating.Rating
		var createdAt string
		if err := rows.Scan(&r.UserID, &r.RaterID, &r.Stars, &r.Comment, &createdAt); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, r)
	}
	return ratings, rows.Err()
}
