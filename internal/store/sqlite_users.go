package store

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/codeswap/backend/internal/domain/profile"
	"github.com/codeswap/backend/internal/domain/user"
)

// ============================================================================
// Users
// ============================================================================

// CreateUser inserts the account and its empty profile in one transaction.
func (s *SQLiteStore) CreateUser(ctx context.Context, u *user.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO users (id, email, full_name, password_hash, created_at) VALUES (?, ?, ?, ?, ?)",
		u.ID, u.Email, u.FullName, u.PasswordHash, formatTime(u.CreatedAt),
	)
	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "INSERT INTO profiles (user_id) VALUES (?)", u.ID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	var createdAt string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, full_name, password_hash, created_at FROM users WHERE email = ?",
		user.NormalizeEmail(email),
	).Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &createdAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if u.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// ============================================================================
// Profiles
// ============================================================================

const profileColumns = `
    u.id, u.email, u.full_name, u.created_at,
    p.bio, p.languages_known, p.languages_learning, p.learning_style,
    p.availability, p.avatar_url, p.last_login, p.streak`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*profile.Profile, error) {
	var (
		p                 profile.Profile
		createdAt         string
		known, learning   string
		avatar, lastLogin sql.NullString
	)
	err := row.Scan(
		&p.UserID, &p.Email, &p.FullName, &createdAt,
		&p.Bio, &known, &learning, &p.LearningStyle,
		&p.Availability, &avatar, &lastLogin, &p.Streak,
	)
	if err != nil {
		return nil, err
	}

	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(known), &p.LanguagesKnown); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(learning), &p.LanguagesLearning); err != nil {
		return nil, err
	}
	p.AvatarURL = stringPtr(avatar)
	if lastLogin.Valid {
		t, err := parseTime(lastLogin.String)
		if err != nil {
			return nil, err
		}
		p.LastLogin = &t
	}
	return &p, nil
}

func (s *SQLiteStore) GetProfile(ctx context.Context, userID string) (*profile.Profile, error) {
	p, err := scanProfile(s.db.QueryRowContext(ctx,
		"SELECT"+profileColumns+" FROM users u JOIN profiles p ON p.user_id = u.id WHERE u.id = ?",
		userID,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return p, err
}

// ListProfiles returns every profile ordered by registration time.
func (s *SQLiteStore) ListProfiles(ctx context.Context) ([]*profile.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT"+profileColumns+" FROM users u JOIN profiles p ON p.user_id = u.id ORDER BY u.created_at",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*profile.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// SaveProfile writes the editable profile fields and login bookkeeping.
// Email and full name belong to the user row and are not touched.
func (s *SQLiteStore) SaveProfile(ctx context.Context, p *profile.Profile) error {
	known, err := json.Marshal(nonNilSlice(p.LanguagesKnown))
	if err != nil {
		return err
	}
	learning, err := json.Marshal(nonNilSlice(p.LanguagesLearning))
	if err != nil {
		return err
	}

	var lastLogin sql.NullString
	if p.LastLogin != nil {
		lastLogin = sql.NullString{String: formatTime(*p.LastLogin), Valid: true}
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE profiles SET
		    bio = ?, languages_known = ?, languages_learning = ?,
		    learning_style = ?, availability = ?, avatar_url = ?,
		    last_login = ?, streak = ?
		WHERE user_id = ?`,
		p.Bio, string(known), string(learning),
		p.LearningStyle, p.Availability, nullString(p.AvatarURL),
		lastLogin, p.Streak,
		p.UserID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func nonNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
