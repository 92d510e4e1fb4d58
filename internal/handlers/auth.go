package handlers

import (
	"errors"
	"log"
	"net/http"

	"quiz-iq-backend/internal/models"
	"quiz-iq-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Budi"`
	Email    string `json:"email" binding:"required,email,max=120" example:"budi@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
}

type RegisterResponse struct {
	Message string `json:"message" example:"Berhasil daftar"`
	UserID  uint   `json:"user_id" example:"1"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"budi@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type UserProfile struct {
	ID       uint   `json:"id" example:"1"`
	Name     string `json:"name" example:"Budi"`
	Email    string `json:"email" example:"budi@example.com"`
	JoinDate string `json:"join_date" example:"2025-01-15"`
	IQScore  int    `json:"iq_score" example:"100"`
}

type LoginResponse struct {
	Message string      `json:"message" example:"Berhasil login"`
	Token   string      `json:"token" example:"9f8a6c..."`
	User    UserProfile `json:"user"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Create an account; the password is stored as a bcrypt hash
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      200 {object} RegisterResponse
// @Failure      400 {object} ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := h.authService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("register: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, RegisterResponse{Message: "Berhasil daftar", UserID: userID})
}

// Login godoc
// @Summary      Login with email and password
// @Description  Authenticate and rotate the user's bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} LoginResponse
// @Failure      401 {object} ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
			return
		}
		log.Printf("login: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Berhasil login",
		Token:   user.Token,
		User:    profileOf(user),
	})
}

func profileOf(user *models.User) UserProfile {
	return UserProfile{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		JoinDate: user.JoinDate,
		IQScore:  user.IQScore,
	}
}
