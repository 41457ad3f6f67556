package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/codeswap/backend/internal/domain/profile"
	"github.com/codeswap/backend/internal/domain/user"
)

// MaxAvatarSize is the largest accepted avatar upload.
const MaxAvatarSize = 5 << 20

var ErrAvatarTooLarge = errors.New("avatar exceeds 5 MiB")

type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
	Delete(ctx context.Context, key string) error
}

type ProfileStore interface {
	AccountStore
	ListProfiles(ctx context.Context) ([]*profile.Profile, error)
}

type ProfileService struct {
	accounts *AccountService
	store    ProfileStore
	objects  ObjectStore
	logger   *slog.Logger
}

func NewProfileService(accounts *AccountService, s ProfileStore, objects ObjectStore, logger *slog.Logger) *ProfileService {
	return &ProfileService{
		accounts: accounts,
		store:    s,
		objects:  objects,
		logger:   logger,
	}
}

// SaveInformation verifies the credentials, uploads the avatar if one is
// given and merges the whitelisted fields of userData into the profile.
// It returns the avatar URL when an avatar was uploaded.
func (s *ProfileService) SaveInformation(ctx context.Context, email, password string, userData []byte, avatar []byte) (*string, error) {
	userID, err := s.accounts.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	var update profile.Update
	if len(userData) > 0 {
		update, err = profile.ParseUpdate(userData)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
	}

	if len(avatar) > MaxAvatarSize {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, ErrAvatarTooLarge)
	}
	if update.IsEmpty() && avatar == nil {
		return nil, nil
	}

	p, err := s.store.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	hadAvatar := p.AvatarURL != nil

	if avatar != nil {
		url, err := s.objects.Put(ctx, avatarKey(userID), avatar)
		if err != nil {
			return nil, fmt.Errorf("upload avatar: %w", err)
		}
		update.AvatarURL = &url
	}

	p.Apply(update)
	if err := s.store.SaveProfile(ctx, p); err != nil {
		// A replaced avatar is still referenced by the stored profile.
		if update.AvatarURL != nil && !hadAvatar {
			s.removeAvatar(ctx, userID)
		}
		return nil, err
	}

	s.logger.Info("profile updated", "user_id", userID, "avatar", update.AvatarURL != nil)
	return update.AvatarURL, nil
}

// GetInformation verifies the credentials and returns the caller's profile.
func (s *ProfileService) GetInformation(ctx context.Context, email, password string) (*profile.Profile, error) {
	userID, err := s.accounts.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.store.GetProfile(ctx, userID)
}

// SwipeDeck lists the profiles worth showing on the swipe screen: everyone
// except excludeEmail whose profile has some content.
func (s *ProfileService) SwipeDeck(ctx context.Context, excludeEmail string) ([]*profile.Profile, error) {
	all, err := s.store.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	exclude := user.NormalizeEmail(excludeEmail)
	deck := make([]*profile.Profile, 0, len(all))
	for _, p := range all {
		if exclude != "" && p.Email == exclude {
			continue
		}
		if p.Swipeable() {
			deck = append(deck, p)
		}
	}
	return deck, nil
}

func (s *ProfileService) removeAvatar(ctx context.Context, userID string) {
	if err := s.objects.Delete(context.WithoutCancel(ctx), avatarKey(userID)); err != nil {
		s.logger.Warn("failed to remove orphaned avatar", "user_id", userID, "error", err)
	}
}

func avatarKey(userID string) string {
	return userID + ".jpg"
}
