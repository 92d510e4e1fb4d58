package repository

import (
	"errors"

	"quiz-iq-backend/internal/models"

	"gorm.io/gorm"
)

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FindUserByToken(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	var user models.User
	if err := s.db.Where("token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) InsertUser(user *models.User) error {
	return s.db.Create(user).Error
}

func (s *GormStore) UpdateUserToken(userID uint, token string) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).Update("token", token).Error
}

func (s *GormStore) UpdateUserIQ(userID uint, iq int) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).Update("iq_score", iq).Error
}

func (s *GormStore) InsertResult(result *models.QuizResult) error {
	return s.db.Create(result).Error
}

func (s *GormStore) ListResultsByUser(userID uint) ([]models.QuizResult, error) {
	var results []models.QuizResult
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (s *GormStore) ListAllUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) CountUsers() (int64, error) {
	var n int64
	err := s.db.Model(&models.User{}).Count(&n).Error
	return n, err
}

func (s *GormStore) CountResults() (int64, error) {
	var n int64
	err := s.db.Model(&models.QuizResult{}).Count(&n).Error
	return n, err
}

func (s *GormStore) SumScores() (int64, error) {
	var total int64
	err := s.db.Model(&models.QuizResult{}).
		Select("COALESCE(SUM(score), 0)").
		Scan(&total).Error
	return total, err
}
