package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/codeswap/backend/internal/domain/profile"
	"github.com/codeswap/backend/internal/domain/user"
	"github.com/codeswap/backend/internal/store"
)

// memStore is an in-memory ProfileStore.
type memStore struct {
	mu       sync.Mutex
	users    map[string]*user.User
	profiles map[string]profile.Profile
	order    []string
	saveErr  error
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[string]*user.User),
		profiles: make(map[string]profile.Profile),
	}
}

func (m *memStore) CreateUser(_ context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[u.Email]; ok {
		return store.ErrEmailTaken
	}
	m.users[u.Email] = u
	m.profiles[u.ID] = *profile.New(u.ID, u.Email, u.FullName, u.CreatedAt)
	m.order = append(m.order, u.ID)
	return nil
}

func (m *memStore) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[user.NormalizeEmail(email)]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (m *memStore) GetProfile(_ context.Context, userID string) (*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &p, nil
}

func (m *memStore) SaveProfile(_ context.Context, p *profile.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, ok := m.profiles[p.UserID]; !ok {
		return store.ErrNotFound
	}
	m.profiles[p.UserID] = *p
	return nil
}

func (m *memStore) ListProfiles(_ context.Context) ([]*profile.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*profile.Profile, 0, len(m.order))
	for _, id := range m.order {
		p := m.profiles[id]
		out = append(out, &p)
	}
	return out, nil
}

func newTestAccounts(t *testing.T) (*AccountService, *memStore) {
	t.Helper()
	s := newMemStore()
	svc := NewAccountService(s, discardLogger())
	svc.cost = bcrypt.MinCost
	return svc, s
}

func TestRegister(t *testing.T) {
	svc, s := newTestAccounts(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Ada@Example.com", "password123", "Ada")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.NotEqual(t, []byte("password123"), u.PasswordHash)

	_, err = s.GetProfile(ctx, u.ID)
	assert.NoError(t, err, "registration creates the profile")

	_, err = svc.Register(ctx, "ada@example.com", "password456", "Other Ada")
	assert.ErrorIs(t, err, store.ErrEmailTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	svc, _ := newTestAccounts(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "short", "Ada")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.ErrorIs(t, err, user.ErrWeakPassword)

	_, err = svc.Register(ctx, "", "password123", "Ada")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestVerify(t *testing.T) {
	svc, _ := newTestAccounts(t)
	ctx := context.Background()
	u, err := svc.Register(ctx, "ada@example.com", "password123", "Ada")
	require.NoError(t, err)

	id, err := svc.Verify(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)

	_, err = svc.Verify(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Verify(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Verify(ctx, "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Streak(t *testing.T) {
	svc, _ := newTestAccounts(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, "ada@example.com", "password123", "Ada")
	require.NoError(t, err)

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	_, streak, err := svc.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, streak, "first login")

	now = now.Add(2 * time.Hour)
	_, streak, err = svc.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, streak, "same day")

	now = now.Add(25 * time.Hour)
	_, streak, err = svc.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 2, streak, "next day")

	now = now.Add(72 * time.Hour)
	_, streak, err = svc.Login(ctx, "ada@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, streak, "gap resets")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _ := newTestAccounts(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
