package repository

import (
	"sync"

	"quiz-iq-backend/internal/models"
)

// MemoryStore is a mutex-guarded in-memory Store used by unit tests.
type MemoryStore struct {
	mu         sync.RWMutex
	users      []models.User
	results    []models.QuizResult
	nextUser   uint
	nextResult uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextUser: 1, nextResult: 1}
}

func (s *MemoryStore) FindUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindUserByToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Token == token {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) InsertUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.nextUser
	s.nextUser++
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) UpdateUserToken(userID uint, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].Token = token
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) UpdateUserIQ(userID uint, iq int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == userID {
			s.users[i].IQScore = iq
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) InsertResult(result *models.QuizResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result.ID = s.nextResult
	s.nextResult++
	s.results = append(s.results, *result)
	return nil
}

func (s *MemoryStore) ListResultsByUser(userID uint) ([]models.QuizResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.QuizResult
	for _, r := range s.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListAllUsers() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) CountUsers() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

func (s *MemoryStore) CountResults() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.results)), nil
}

func (s *MemoryStore) SumScores() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, r := range s.results {
		total += int64(r.Score)
	}
	return total, nil
}
