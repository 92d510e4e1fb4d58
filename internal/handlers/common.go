package handlers

import "quiz-iq-backend/internal/scoring"

// Alias so swag can resolve the scoring type in annotations.
type LeaderboardEntry = scoring.LeaderboardEntry

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}
