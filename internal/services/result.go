package services

import (
	"quiz-iq-backend/internal/models"
	"quiz-iq-backend/internal/repository"
	"quiz-iq-backend/internal/scoring"
)

type ResultService struct {
	store repository.Store
}

func NewResultService(store repository.Store) *ResultService {
	return &ResultService{store: store}
}

type ResultInput struct {
	Topic   string
	Level   string
	Score   int
	Correct int
	Wrong   int
	Total   int
}

// Submit persists one quiz attempt and refreshes the submitter's cached
// IQ score. The two writes are not transactional; the cached IQ is
// rederivable and catches up on the next submission.
func (s *ResultService) Submit(user *models.User, input ResultInput) (int, error) {
	result := models.QuizResult{
		UserID:  user.ID,
		Topic:   input.Topic,
		Level:   input.Level,
		Score:   input.Score,
		Correct: input.Correct,
		Wrong:   input.Wrong,
		Total:   input.Total,
	}
	if err := s.store.InsertResult(&result); err != nil {
		return 0, err
	}

	results, err := s.store.ListResultsByUser(user.ID)
	if err != nil {
		return 0, err
	}
	iq := scoring.CalculateIQ(results)
	if err := s.store.UpdateUserIQ(user.ID, iq); err != nil {
		return 0, err
	}
	return iq, nil
}

// Leaderboard rebuilds the ranked leaderboard from all stored results.
func (s *ResultService) Leaderboard() ([]scoring.LeaderboardEntry, error) {
	users, err := s.store.ListAllUsers()
	if err != nil {
		return nil, err
	}

	resultsByUser := make(map[uint][]models.QuizResult, len(users))
	for _, u := range users {
		results, err := s.store.ListResultsByUser(u.ID)
		if err != nil {
			return nil, err
		}
		if len(results) > 0 {
			resultsByUser[u.ID] = results
		}
	}

	return scoring.BuildLeaderboard(users, resultsByUser), nil
}

type Stats struct {
	UserCount  int64 `json:"userCount"`
	QuizCount  int64 `json:"quizCount"`
	TotalScore int64 `json:"totalScore"`
}

// Stats returns the public aggregate counters.
func (s *ResultService) Stats() (*Stats, error) {
	userCount, err := s.store.CountUsers()
	if err != nil {
		return nil, err
	}
	quizCount, err := s.store.CountResults()
	if err != nil {
		return nil, err
	}
	totalScore, err := s.store.SumScores()
	if err != nil {
		return nil, err
	}
	return &Stats{UserCount: userCount, QuizCount: quizCount, TotalScore: totalScore}, nil
}
