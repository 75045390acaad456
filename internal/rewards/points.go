package rewards

import (
	"errors"
	"strings"
)

const pointsPerLevel = 100

type PointsPolicy string

const (
	// PolicyBanded awards points by score band. It is the default.
	PolicyBanded PointsPolicy = "banded"
	// PolicyRawScore awards the healthiness score itself. Kept for
	// deployments that still run the old point scale.
	PolicyRawScore PointsPolicy = "raw"
)

func ParsePointsPolicy(s string) (PointsPolicy, error) {
	switch PointsPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyBanded:
		return PolicyBanded, nil
	case PolicyRawScore:
		return PolicyRawScore, nil
	}
	return "", errors.New("unknown points policy: " + s)
}

// PointsForScore is a step function: [8,∞) 15, [6,8) 10, [4,6) 7, below 3.
func PointsForScore(score int) int {
	switch {
	case score >= 8:
		return 15
	case score >= 6:
		return 10
	case score >= 4:
		return 7
	default:
		return 3
	}
}

func RawScorePoints(score int) int {
	if score < 0 {
		return 0
	}
	return score
}

// LevelFor derives the level from a points total.
func LevelFor(points int) int {
	if points < 0 {
		points = 0
	}
	return points/pointsPerLevel + 1
}
