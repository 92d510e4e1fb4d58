package repository

import (
	"errors"

	"quiz-iq-backend/internal/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// Store is the persistence handle shared by services and middleware.
// Two implementations exist: GormStore over postgres and MemoryStore
// for tests.
type Store interface {
	FindUserByEmail(email string) (*models.User, error)
	FindUserByToken(token string) (*models.User, error)
	InsertUser(user *models.User) error
	UpdateUserToken(userID uint, token string) error
	UpdateUserIQ(userID uint, iq int) error

	InsertResult(result *models.QuizResult) error
	ListResultsByUser(userID uint) ([]models.QuizResult, error)
	ListAllUsers() ([]models.User, error)

	CountUsers() (int64, error)
	CountResults() (int64, error)
	SumScores() (int64, error)
}
