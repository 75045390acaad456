package rewards

import (
	"time"

	"github.com/limbo/snackcheck/pkg/entity"
)

const (
	BadgeHealthyStart = "healthy_start"
	BadgeWeekWarrior  = "week_warrior"
	BadgePointMaster  = "point_master"
	BadgeAIExpert     = "ai_expert"

	healthyScore     = 7
	weekStreakDays   = 7
	pointMasterTotal = 500
)

type Engine struct {
	policy PointsPolicy
}

func NewEngine(policy PointsPolicy) *Engine {
	if policy != PolicyRawScore {
		policy = PolicyBanded
	}
	return &Engine{policy: policy}
}

func (e *Engine) Policy() PointsPolicy {
	return e.policy
}

func (e *Engine) PointsFor(score int) int {
	if e.policy == PolicyRawScore {
		return RawScorePoints(score)
	}
	return PointsForScore(score)
}

// EntryOutcome is the new progress snapshot after one food entry.
type EntryOutcome struct {
	Progress     entity.UserProgress
	PointsEarned int
	NewBadges    []string
}

// ApplyEntry folds one food entry into the user's progress. The input is
// not modified.
func (e *Engine) ApplyEntry(progress entity.UserProgress, c entity.Classification, imageSubmitted bool, today time.Time) EntryOutcome {
	earned := e.PointsFor(c.Score)
	next := copyProgress(progress)
	next.Points = nonNegative(progress.Points) + earned
	next.Level = LevelFor(next.Points)

	streak, last := NextStreak(progress.StreakDays, progress.LastEntryDate, today)
	next.StreakDays = streak
	next.LastEntryDate = &last

	candidates := []struct {
		badge string
		ok    bool
	}{
		{BadgeHealthyStart, c.Score >= healthyScore},
		{BadgeWeekWarrior, next.StreakDays >= weekStreakDays},
		{BadgePointMaster, next.Points >= pointMasterTotal},
		{BadgeAIExpert, imageSubmitted},
	}
	var awarded []string
	for _, cand := range candidates {
		if cand.ok && !next.HasBadge(cand.badge) {
			next.Badges = append(next.Badges, cand.badge)
			awarded = append(awarded, cand.badge)
		}
	}
	return EntryOutcome{
		Progress:     next,
		PointsEarned: earned,
		NewBadges:    awarded,
	}
}

// ApplyQuizReward adds a fixed reward. Streak and badges are left alone.
func (e *Engine) ApplyQuizReward(progress entity.UserProgress, reward int) entity.UserProgress {
	next := copyProgress(progress)
	next.Points = nonNegative(progress.Points) + nonNegative(reward)
	next.Level = LevelFor(next.Points)
	return next
}

// Reset returns progress as it is for a brand new user.
func Reset() entity.UserProgress {
	return entity.UserProgress{
		Points: 0,
		Level:  1,
		Badges: []string{},
	}
}

func copyProgress(p entity.UserProgress) entity.UserProgress {
	next := p
	next.Badges = make([]string, len(p.Badges), len(p.Badges)+4)
	copy(next.Badges, p.Badges)
	if p.LastEntryDate != nil {
		d := *p.LastEntryDate
		next.LastEntryDate = &d
	}
	return next
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
