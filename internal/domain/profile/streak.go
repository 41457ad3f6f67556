package profile

import "time"

const day = 24 * time.Hour

// NextStreak computes the login streak after a login at now.
//
// Whole days since the previous login decide the result: one day extends
// the streak, the same day keeps it, anything else restarts it at 1.
func NextStreak(prevLogin *time.Time, prevStreak int, now time.Time) int {
	if prevStreak < 1 {
		prevStreak = 1
	}
	if prevLogin == nil {
		return 1
	}

	elapsed := now.Sub(*prevLogin)
	if elapsed < 0 {
		return 1
	}

	switch int(elapsed / day) {
	case 0:
		return prevStreak
	case 1:
		return prevStreak + 1
	default:
		return 1
	}
}

// RecordLogin updates the streak and last login time for a login at now.
func (p *Profile) RecordLogin(now time.Time) {
	p.Streak = NextStreak(p.LastLogin, p.Streak, now)
	p.LastLogin = &now
}
