package handlers

import (
	"log"
	"net/http"

	"quiz-iq-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	resultService *services.ResultService
}

func NewLeaderboardHandler(resultService *services.ResultService) *LeaderboardHandler {
	return &LeaderboardHandler{resultService: resultService}
}

// GetLeaderboard godoc
// @Summary      Ranked leaderboard
// @Description  All users with at least one result, ranked by best quiz score
// @Tags         leaderboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} LeaderboardEntry
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.resultService.Leaderboard()
	if err != nil {
		log.Printf("leaderboard: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// GetStats godoc
// @Summary      Public aggregate stats
// @Description  User, quiz and total-score counters
// @Tags         stats
// @Produce      json
// @Success      200 {object} services.Stats
// @Failure      500 {object} ErrorResponse
// @Router       /api/stats [get]
func (h *LeaderboardHandler) GetStats(c *gin.Context) {
	stats, err := h.resultService.Stats()
	if err != nil {
		log.Printf("stats: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
