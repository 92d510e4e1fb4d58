package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"quiz-iq-backend/internal/models"
	"quiz-iq-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	store repository.Store
}

func NewAuthService(store repository.Store) *AuthService {
	return &AuthService{store: store}
}

// Register creates a user with a hashed password and a fresh session
// token, and returns the new user's id.
func (s *AuthService) Register(name, email, password string) (uint, error) {
	if _, err := s.store.FindUserByEmail(email); err == nil {
		return 0, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, err
	}

	token, err := newToken()
	if err != nil {
		return 0, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		JoinDate: time.Now().Format("2006-01-02"),
		IQScore:  100,
		Token:    token,
	}
	if err := s.store.InsertUser(&user); err != nil {
		return 0, err
	}
	return user.ID, nil
}

// Login checks the credentials and rotates the user's token. The
// returned user carries the new token.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.store.FindUserByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdateUserToken(user.ID, token); err != nil {
		return nil, err
	}

	user.Token = token
	return user, nil
}

// newToken returns 32 random bytes hex-encoded, the opaque bearer
// credential stored on the user row.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
