package scoring

import (
	"math"
	"sort"

	"quiz-iq-backend/internal/models"
)

// Level name that earns the difficulty bonus in the IQ formula.
const LevelSulit = "sulit"

// Points badges, highest tier first.
const (
	BadgeDiamond  = "Diamond"
	BadgePlatinum = "Platinum"
	BadgeGold     = "Gold"
	BadgeSilver   = "Silver"
	BadgeBronze   = "Bronze"
)

// IQ badges.
const (
	IQBadgeGenius       = "Genius"
	IQBadgeSangatCerdas = "Sangat Cerdas"
	IQBadgeCerdas       = "Cerdas"
	IQBadgeRataRata     = "Rata-rata"
)

// LeaderboardEntry is one ranked row of the leaderboard response.
type LeaderboardEntry struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Score        int    `json:"score"`
	AvgScore     int    `json:"avgScore"`
	TotalQuizzes int    `json:"totalQuizzes"`
	Level        int    `json:"level"`
	Points       int    `json:"points"`
	Badge        string `json:"badge"`
	IQ           int    `json:"iq"`
	IQBadge      string `json:"iq_badge"`
	Rank         int    `json:"rank"`

	userID uint
}

// CalculateIQ derives the synthetic IQ score from a user's accumulated
// results. With no results the baseline is 100; otherwise the score is
// 80 plus the average quiz score weighted by the difficulty bonus and
// divided once more by the quiz count, minus half a point per wrong
// answer, clamped at 80.
//
// The second division by the quiz count is intentional: the badge
// thresholds are calibrated against this exact curve.
func CalculateIQ(results []models.QuizResult) int {
	if len(results) == 0 {
		return 100
	}

	totalScore := 0
	totalWrong := 0
	levelBonus := 0.0
	for _, r := range results {
		totalScore += r.Score
		totalWrong += r.Wrong
		if r.Level == LevelSulit {
			levelBonus += 1.2
		} else {
			levelBonus += 1.0
		}
	}

	totalQuiz := float64(len(results))
	averageScore := float64(totalScore) / totalQuiz
	penalty := 0.5 * float64(totalWrong)
	raw := 80 + (averageScore*levelBonus)/totalQuiz - penalty

	iq := int(raw)
	if iq < 80 {
		return 80
	}
	return iq
}

// PointsBadge maps accumulated leaderboard points to a tier label.
func PointsBadge(points int) string {
	switch {
	case points >= 1000:
		return BadgeDiamond
	case points >= 700:
		return BadgePlatinum
	case points >= 400:
		return BadgeGold
	case points >= 200:
		return BadgeSilver
	default:
		return BadgeBronze
	}
}

// IQBadge maps an IQ score to a tier label.
func IQBadge(iq int) string {
	switch {
	case iq >= 150:
		return IQBadgeGenius
	case iq >= 130:
		return IQBadgeSangatCerdas
	case iq >= 110:
		return IQBadgeCerdas
	default:
		return IQBadgeRataRata
	}
}

// BuildLeaderboard recomputes the full leaderboard from scratch. Users
// without a single result are left out entirely. Entries are ordered by
// best single-quiz score, with total points and then user id breaking
// ties, and carry a 1-based rank.
func BuildLeaderboard(users []models.User, resultsByUser map[uint][]models.QuizResult) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(users))

	for _, u := range users {
		results := resultsByUser[u.ID]
		if len(results) == 0 {
			continue
		}

		totalQuiz := len(results)
		totalScore := 0
		topScore := results[0].Score
		for _, r := range results {
			totalScore += r.Score
			if r.Score > topScore {
				topScore = r.Score
			}
		}

		avgScore := roundDiv(totalScore, totalQuiz)
		totalPoints := totalScore + totalQuiz*10
		iq := CalculateIQ(results)

		entries = append(entries, LeaderboardEntry{
			Name:         u.Name,
			Email:        u.Email,
			Score:        topScore,
			AvgScore:     avgScore,
			TotalQuizzes: totalQuiz,
			Level:        totalPoints / 100,
			Points:       totalPoints,
			Badge:        PointsBadge(totalPoints),
			IQ:           iq,
			IQBadge:      IQBadge(iq),
			userID:       u.ID,
		})
	}

	sort.Slice(entries, func(a, b int) bool {
		if entries[a].Score != entries[b].Score {
			return entries[a].Score > entries[b].Score
		}
		if entries[a].Points != entries[b].Points {
			return entries[a].Points > entries[b].Points
		}
		return entries[a].userID < entries[b].userID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// roundDiv divides and rounds half away from zero.
func roundDiv(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
