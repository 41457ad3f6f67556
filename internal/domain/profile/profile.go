package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidUpdate = errors.New("invalid profile update")

// Profile is the per-user document shown on the profile screen and in the
// swipe deck. It is created empty at registration and filled in later.
type Profile struct {
	UserID            string
	Email             string
	FullName          string
	Bio               string
	LanguagesKnown    []string
	LanguagesLearning []string
	LearningStyle     string
	Availability      string
	AvatarURL         *string
	CreatedAt         time.Time
	LastLogin         *time.Time
	Streak            int
}

func New(userID, email, fullName string, createdAt time.Time) *Profile {
	return &Profile{
		UserID:            userID,
		Email:             email,
		FullName:          fullName,
		LanguagesKnown:    []string{},
		LanguagesLearning: []string{},
		CreatedAt:         createdAt,
	}
}

// Update is a partial profile change. Nil fields are left untouched.
type Update struct {
	Bio               *string   `json:"bio"`
	LanguagesKnown    *[]string `json:"languagesKnown"`
	LanguagesLearning *[]string `json:"languagesLearning"`
	LearningStyle     *string   `json:"learningStyle"`
	Availability      *string   `json:"availability"`

	// AvatarURL is set by the upload path, never from client JSON.
	AvatarURL *string `json:"-"`
}

// ParseUpdate decodes the client's userData JSON object. Only bio,
// languagesKnown, languagesLearning, learningStyle and availability are
// read; any other key is dropped.
func ParseUpdate(raw []byte) (Update, error) {
	var u Update
	if err := json.Unmarshal(raw, &u); err != nil {
		return Update{}, fmt.Errorf("%w: %v", ErrInvalidUpdate, err)
	}
	return u, nil
}

func (u Update) IsEmpty() bool {
	return u.Bio == nil && u.LanguagesKnown == nil && u.LanguagesLearning == nil &&
		u.LearningStyle == nil && u.Availability == nil && u.AvatarURL == nil
}

// Apply merges u into p.
func (p *Profile) Apply(u Update) {
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.LanguagesKnown != nil {
		p.LanguagesKnown = nonNil(*u.LanguagesKnown)
	}
	if u.LanguagesLearning != nil {
		p.LanguagesLearning = nonNil(*u.LanguagesLearning)
	}
	if u.LearningStyle != nil {
		p.LearningStyle = *u.LearningStyle
	}
	if u.Availability != nil {
		p.Availability = *u.Availability
	}
	if u.AvatarURL != nil {
		p.AvatarURL = u.AvatarURL
	}
}

// Swipeable reports whether the profile has enough content to be shown in
// another user's swipe deck.
func (p *Profile) Swipeable() bool {
	return p.Bio != "" ||
		len(p.LanguagesKnown) > 0 ||
		len(p.LanguagesLearning) > 0 ||
		p.LearningStyle != "" ||
		p.Availability != ""
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
