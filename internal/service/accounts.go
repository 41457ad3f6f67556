package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/codeswap/backend/internal/domain/profile"
	"github.com/codeswap/backend/internal/domain/user"
	"github.com/codeswap/backend/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
)

// AccountStore is the persistence AccountService and ProfileService need.
type AccountStore interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetProfile(ctx context.Context, userID string) (*profile.Profile, error)
	SaveProfile(ctx context.Context, p *profile.Profile) error
}

type AccountService struct {
	store  AccountStore
	logger *slog.Logger
	cost   int
	now    func() time.Time
}

func NewAccountService(s AccountStore, logger *slog.Logger) *AccountService {
	return &AccountService{
		store:  s,
		logger: logger,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

// Register creates the account and its empty profile. It returns
// store.ErrEmailTaken when the email is already registered and an
// ErrInvalidInput-wrapped error for missing fields or a short password.
func (s *AccountService) Register(ctx context.Context, email, password, fullName string) (*user.User, error) {
	u, err := user.New(email, password, fullName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", u.ID)
	return u, nil
}

// Verify checks credentials and returns the user's ID.
func (s *AccountService) Verify(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	u, err := s.store.GetUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return u.ID, nil
}

// Login verifies credentials and records the login, returning the updated
// daily streak.
func (s *AccountService) Login(ctx context.Context, email, password string) (userID string, streak int, err error) {
	userID, err = s.Verify(ctx, email, password)
	if err != nil {
		return "", 0, err
	}

	p, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return "", 0, fmt.Errorf("load profile: %w", err)
	}

	p.RecordLogin(s.now().UTC())
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return "", 0, fmt.Errorf("save profile: %w", err)
	}

	s.logger.Info("user logged in", "user_id", userID, "streak", p.Streak)
	return userID, p.Streak, nil
}
