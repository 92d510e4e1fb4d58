package handlers

import (
	"log"
	"net/http"

	"quiz-iq-backend/internal/middleware"
	"quiz-iq-backend/internal/services"
	"quiz-iq-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	generateService *services.GenerateService
	resultService   *services.ResultService
	hub             *ws.Hub
}

func NewQuizHandler(generateService *services.GenerateService, resultService *services.ResultService, hub *ws.Hub) *QuizHandler {
	return &QuizHandler{
		generateService: generateService,
		resultService:   resultService,
		hub:             hub,
	}
}

type GenerateQuizRequest struct {
	Topic string `json:"topic" binding:"required" example:"sejarah indonesia"`
	Level string `json:"level" binding:"required" example:"sulit"`
	Count int    `json:"count" binding:"omitempty,min=1,max=20" example:"5"`
}

type GenerateQuizResponse struct {
	Questions []services.Question `json:"questions"`
}

type SubmitResultRequest struct {
	Topic   string `json:"topic" binding:"required" example:"sejarah indonesia"`
	Level   string `json:"level" binding:"required" example:"sulit"`
	Score   int    `json:"score" binding:"gte=0" example:"80"`
	Correct int    `json:"correct" binding:"gte=0" example:"4"`
	Wrong   int    `json:"wrong" binding:"gte=0" example:"1"`
	Total   int    `json:"total" binding:"required,gt=0" example:"5"`
}

// GenerateQuiz godoc
// @Summary      Generate quiz questions
// @Description  Ask the language model for multiple-choice questions; an upstream failure yields an empty list, not an error
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateQuizRequest true "Topic, level and question count"
// @Success      200 {object} GenerateQuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /generate-quiz [post]
func (h *QuizHandler) GenerateQuiz(c *gin.Context) {
	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	count := req.Count
	if count <= 0 {
		count = 5
	}

	questions := h.generateService.GenerateQuestions(req.Topic, req.Level, count)
	c.JSON(http.StatusOK, GenerateQuizResponse{Questions: questions})
}

// SubmitResult godoc
// @Summary      Submit a quiz result
// @Description  Record one attempt and refresh the submitter's cached IQ score
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SubmitResultRequest true "Attempt outcome"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /submit-result [post]
func (h *QuizHandler) SubmitResult(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req SubmitResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	_, err := h.resultService.Submit(user, services.ResultInput{
		Topic:   req.Topic,
		Level:   req.Level,
		Score:   req.Score,
		Correct: req.Correct,
		Wrong:   req.Wrong,
		Total:   req.Total,
	})
	if err != nil {
		log.Printf("submit result: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	h.hub.Broadcast(ws.WSMessage{Type: "leaderboard_updated"})

	c.JSON(http.StatusOK, MessageResponse{Message: "Hasil kuis disimpan"})
}
