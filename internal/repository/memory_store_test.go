package repository_test

import (
	"errors"
	"testing"

	"quiz-iq-backend/internal/models"
	"quiz-iq-backend/internal/repository"
)

func TestMemoryStoreAssignsIDs(t *testing.T) {
	store := repository.NewMemoryStore()

	a := models.User{Name: "A", Email: "a@example.com", Token: "ta"}
	b := models.User{Name: "B", Email: "b@example.com", Token: "tb"}
	if err := store.InsertUser(&a); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.InsertUser(&b); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("expected sequential ids, got %d and %d", a.ID, b.ID)
	}
}

func TestMemoryStoreEmptyTokenNeverResolves(t *testing.T) {
	store := repository.NewMemoryStore()

	// A user whose token was never set must not be matched by an empty
	// Authorization header.
	if err := store.InsertUser(&models.User{Name: "A", Email: "a@example.com"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := store.FindUserByToken(""); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty token, got %v", err)
	}
}

func TestMemoryStoreResultsAreScopedToUser(t *testing.T) {
	store := repository.NewMemoryStore()

	a := models.User{Name: "A", Email: "a@example.com", Token: "ta"}
	b := models.User{Name: "B", Email: "b@example.com", Token: "tb"}
	store.InsertUser(&a)
	store.InsertUser(&b)

	store.InsertResult(&models.QuizResult{UserID: a.ID, Score: 10})
	store.InsertResult(&models.QuizResult{UserID: b.ID, Score: 20})
	store.InsertResult(&models.QuizResult{UserID: a.ID, Score: 30})

	results, err := store.ListResultsByUser(a.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results for user a, got %d", len(results))
	}
	for _, r := range results {
		if r.UserID != a.ID {
			t.Fatalf("foreign result leaked into listing: %+v", r)
		}
	}

	sum, err := store.SumScores()
	if err != nil {
		t.Fatalf("sum: %v", err)
	}
	if sum != 60 {
		t.Fatalf("expected total score 60, got %d", sum)
	}
}
