package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"quiz-iq-backend/internal/handlers"
	"quiz-iq-backend/internal/middleware"
	"quiz-iq-backend/internal/repository"
	"quiz-iq-backend/internal/services"
	"quiz-iq-backend/internal/ws"

	"github.com/gin-gonic/gin"
)

func newTestRouter(store repository.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	hub := ws.NewHub()
	authService := services.NewAuthService(store)
	resultService := services.NewResultService(store)
	generateService := services.NewGenerateService("", "http://unused", "test-model")

	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(generateService, resultService, hub)
	leaderboardHandler := handlers.NewLeaderboardHandler(resultService)

	r := gin.New()
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	authed := r.Group("/", middleware.TokenAuth(store))
	{
		authed.POST("/generate-quiz", quizHandler.GenerateQuiz)
		authed.POST("/submit-result", quizHandler.SubmitResult)
		authed.GET("/api/leaderboard", leaderboardHandler.GetLeaderboard)
	}

	r.GET("/api/stats", leaderboardHandler.GetStats)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode payload: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, r *gin.Engine, name, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"name": name, "email": email, "password": "rahasia123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email": email, "password": "rahasia123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login returned no token")
	}
	return resp.Token
}

func TestRegisterReturnsUserID(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"name": "Budi", "email": "budi@example.com", "password": "rahasia123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		UserID  uint   `json:"user_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.UserID == 0 {
		t.Fatal("expected a non-zero user_id")
	}
	if resp.Message == "" {
		t.Fatal("expected a message")
	}
}

func TestRegisterDuplicateEmailReturns400(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())
	payload := gin.H{"name": "Budi", "email": "budi@example.com", "password": "rahasia123"}

	if w := doJSON(t, r, http.MethodPost, "/register", "", payload); w.Code != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodPost, "/register", "", payload); w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", w.Code)
	}
}

func TestRegisterMissingFieldsReturns400(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())

	w := doJSON(t, r, http.MethodPost, "/register", "", gin.H{"name": "Budi"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}
}

func TestLoginBadCredentialsReturns401(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())
	registerAndLogin(t, r, "Budi", "budi@example.com")

	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email": "budi@example.com", "password": "salah",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginResponseShape(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())
	registerAndLogin(t, r, "Budi", "budi@example.com")

	w := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email": "budi@example.com", "password": "rahasia123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	user, ok := resp["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected a user object, got %v", resp["user"])
	}
	for _, field := range []string{"id", "name", "email", "join_date", "iq_score"} {
		if _, ok := user[field]; !ok {
			t.Errorf("user object missing field %q", field)
		}
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/generate-quiz"},
		{http.MethodPost, "/submit-result"},
		{http.MethodGet, "/api/leaderboard"},
	}
	for _, route := range routes {
		w := doJSON(t, r, route.method, route.path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", route.method, route.path, w.Code)
		}
		var resp map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp["error"] != "Unauthorized" {
			t.Errorf("%s %s: expected Unauthorized body, got %q", route.method, route.path, resp["error"])
		}
	}
}

func TestTokenAcceptedWithAndWithoutBearerPrefix(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())
	token := registerAndLogin(t, r, "Budi", "budi@example.com")

	payload := gin.H{"topic": "t", "level": "mudah", "score": 50, "correct": 3, "wrong": 2, "total": 5}
	if w := doJSON(t, r, http.MethodPost, "/submit-result", token, payload); w.Code != http.StatusOK {
		t.Fatalf("bare token: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, "/submit-result", "Bearer "+token, payload); w.Code != http.StatusOK {
		t.Fatalf("Bearer token: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGenerateQuizWithoutUpstreamReturnsEmptyList(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())
	token := registerAndLogin(t, r, "Budi", "budi@example.com")

	w := doJSON(t, r, http.MethodPost, "/generate-quiz", token, gin.H{
		"topic": "sejarah", "level": "sulit", "count": 5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Questions []services.Question `json:"questions"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Questions) != 0 {
		t.Fatalf("expected empty question list, got %d", len(resp.Questions))
	}
}

func TestSubmitResultAndLeaderboard(t *testing.T) {
	store := repository.NewMemoryStore()
	r := newTestRouter(store)

	aliceToken := registerAndLogin(t, r, "Alice", "alice@example.com")
	bobToken := registerAndLogin(t, r, "Bob", "bob@example.com")
	registerAndLogin(t, r, "Cindy", "cindy@example.com") // never submits

	w := doJSON(t, r, http.MethodPost, "/submit-result", aliceToken, gin.H{
		"topic": "t", "level": "mudah", "score": 40, "correct": 2, "wrong": 3, "total": 5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPost, "/submit-result", bobToken, gin.H{
		"topic": "t", "level": "sulit", "score": 90, "correct": 4, "wrong": 1, "total": 5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/leaderboard", aliceToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("leaderboard: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var entries []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("decode leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0]["email"] != "bob@example.com" || entries[0]["rank"] != float64(1) {
		t.Fatalf("expected bob ranked first, got %+v", entries[0])
	}
	for _, field := range []string{"name", "email", "score", "avgScore", "totalQuizzes", "level", "points", "badge", "iq", "iq_badge", "rank"} {
		if _, ok := entries[0][field]; !ok {
			t.Errorf("leaderboard entry missing field %q", field)
		}
	}
}

func TestSubmitResultValidation(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())
	token := registerAndLogin(t, r, "Budi", "budi@example.com")

	// Missing topic/level/total.
	w := doJSON(t, r, http.MethodPost, "/submit-result", token, gin.H{"score": 80})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}

	// Zero score is a legal outcome.
	w = doJSON(t, r, http.MethodPost, "/submit-result", token, gin.H{
		"topic": "t", "level": "mudah", "score": 0, "correct": 0, "wrong": 5, "total": 5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for zero score, got %d: %s", w.Code, w.Body.String())
	}
}

func TestStatsIsPublic(t *testing.T) {
	r := newTestRouter(repository.NewMemoryStore())
	token := registerAndLogin(t, r, "Budi", "budi@example.com")

	w := doJSON(t, r, http.MethodPost, "/submit-result", token, gin.H{
		"topic": "t", "level": "mudah", "score": 75, "correct": 3, "wrong": 1, "total": 4,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/stats", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: expected 200, got %d", w.Code)
	}

	var stats struct {
		UserCount  int64 `json:"userCount"`
		QuizCount  int64 `json:"quizCount"`
		TotalScore int64 `json:"totalScore"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.UserCount != 1 || stats.QuizCount != 1 || stats.TotalScore != 75 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
