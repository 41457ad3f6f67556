package store

import (
	"context"
	"database/sql"

	"github.com/codeswap/backend/internal/domain/forum"
)

// ============================================================================
// Topics
// ============================================================================

func (s *SQLiteStore) SaveTopic(ctx context.Context, t *forum.Topic) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO topics (id, title, author_id, author_name, author_avatar, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		t.ID, t.Title, t.AuthorID, t.AuthorName, nullString(t.AuthorAvatar), formatTime(t.CreatedAt),
	)
	return err
}

func (s *SQLiteStore) GetTopic(ctx context.Context, id string) (*forum.Topic, error) {
	t, err := scanTopic(s.db.QueryRowContext(ctx,
		"SELECT id, title, author_id, author_name, author_avatar, created_at FROM topics WHERE id = ?", id,
	))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return t, err
}

// ListTopics returns all topics, newest first.
func (s *SQLiteStore) ListTopics(ctx context.Context) ([]*forum.Topic, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, author_id, author_name, author_avatar, created_at FROM topics ORDER BY created_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics := []*forum.Topic{}
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func scanTopic(row rowScanner) (*forum.Topic, error) {
	var t forum.Topic
	var avatar sql.NullString
	var createdAt string
	if err := row.Scan(&t.ID, &t.Title, &t.AuthorID, &t.AuthorName, &avatar, &createdAt); err != nil {
		return nil, err
	}
	t.AuthorAvatar = stringPtr(avatar)

	var err error
	if t.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// ============================================================================
// Comments
// ============================================================================

// SaveComment adds a comment to an existing topic. It returns ErrNotFound
// when the topic does not exist.
func (s *SQLiteStore) SaveComment(ctx context.Context, c *forum.Comment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM topics WHERE id = ?", c.TopicID).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO comments (id, topic_id, author_id, author_name, author_avatar, text, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		c.ID, c.TopicID, c.AuthorID, c.AuthorName, nullString(c.AuthorAvatar), c.Text, formatTime(c.CreatedAt),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ListComments returns the comments of a topic, oldest first.
func (s *SQLiteStore) ListComments(ctx context.Context, topicID string) ([]*forum.Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, topic_id, author_id, author_name, author_avatar, text, created_at
		FROM comments
		WHERE topic_id = ?
		ORDER BY created_at ASC, rowid ASC`,
		topicID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*forum.Comment{}
	for rows.Next() {
		var c forum.Comment
		var avatar sql.NullString
		var createdAt string
		if err := rows.Scan(&c.ID, &c.TopicID, &c.AuthorID, &c.AuthorName, &avatar, &c.Text, &createdAt); err != nil {
			return nil, err
		}
		c.AuthorAvatar = stringPtr(avatar)
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}
