// backend/src/handlers/assistant_handler_test.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/username/finassist/backend/src/assistant"
	"github.com/username/finassist/backend/src/config"
	"github.com/username/finassist/backend/src/models"
	"github.com/username/finassist/backend/src/store"
)

func init() {
	config.Cfg = &config.AppConfig{
		MaxQuestionLength: 500,
		QueryHistoryLimit: 50,
	}
}

func newTestHandler(s store.Store) *AssistantHandler {
	orchestrator := assistant.NewOrchestrator(
		s,
		assistant.NewIntentClassifier(assistant.DefaultRuleSet(), "en"),
		assistant.NewDispatcher(s),
		assistant.NewComposer("ILS"),
		assistant.NewFallbackRouter(nil),
		nil,
		0.3,
		"ILS",
		time.UTC,
	)
	return NewAssistantHandler(orchestrator, s)
}

func authedRequest(method, target, body string, userID int64) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), userIDContextKey, userID)
	return r.WithContext(ctx)
}

func TestHandleQuery(t *testing.T) {
	s := store.NewMemoryStore()
	now := time.Now().UTC()
	s.Transactions = []models.Transaction{
		{ID: 1, UserID: 1, Date: now.Format("2006-01-02"), BillingAmount: 850},
	}
	h := newTestHandler(s)

	w := httptest.NewRecorder()
	h.HandleQuery(w, authedRequest(http.MethodPost, "/api/assistant/query", `{"question":"How much did I spend this month?"}`, 1))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var msg models.ConversationMessage
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if msg.Role != "assistant" || !strings.Contains(msg.Text, "₪850") {
		t.Errorf("message = %+v, want an assistant spending answer", msg)
	}
}

func TestHandleQueryRejectsBadRequests(t *testing.T) {
	h := newTestHandler(store.NewMemoryStore())

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"invalid json", `{"question":`, http.StatusBadRequest},
		{"empty question", `{"question":"   "}`, http.StatusBadRequest},
		{"too long", `{"question":"` + strings.Repeat("a", 501) + `"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.HandleQuery(w, authedRequest(http.MethodPost, "/api/assistant/query", tt.body, 1))
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandleQueryRequiresAuth(t *testing.T) {
	h := newTestHandler(store.NewMemoryStore())

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/api/assistant/query", strings.NewReader(`{"question":"hi"}`))
	h.HandleQuery(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestHandleQuerySanitizesQuestion(t *testing.T) {
	h := newTestHandler(store.NewMemoryStore())

	w := httptest.NewRecorder()
	h.HandleQuery(w, authedRequest(http.MethodPost, "/api/assistant/query",
		`{"question":"<script>alert(1)</script>how much did I spend"}`, 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}

	messages := h.orchestrator.Conversation(1)
	if len(messages) == 0 {
		t.Fatal("conversation is empty, want the sanitized question recorded")
	}
	if strings.Contains(messages[0].Text, "<script>") {
		t.Errorf("recorded question = %q, want HTML stripped", messages[0].Text)
	}
}

func TestHandleGetConversation(t *testing.T) {
	h := newTestHandler(store.NewMemoryStore())

	w := httptest.NewRecorder()
	h.HandleQuery(w, authedRequest(http.MethodPost, "/api/assistant/query", `{"question":"zzz qqq"}`, 1))

	w = httptest.NewRecorder()
	h.HandleGetConversation(w, authedRequest(http.MethodGet, "/api/assistant/conversation", "", 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp ConversationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Messages) != 2 {
		t.Errorf("conversation has %d messages, want 2", len(resp.Messages))
	}
	if resp.IsProcessing {
		t.Error("IsProcessing = true, want false")
	}

	// A fresh user gets an empty list, not null.
	w = httptest.NewRecorder()
	h.HandleGetConversation(w, authedRequest(http.MethodGet, "/api/assistant/conversation", "", 99))
	if body := strings.TrimSpace(w.Body.String()); strings.Contains(body, `"messages":null`) {
		t.Errorf("body = %s, want an empty array for messages", body)
	}
}

func TestHandleGetHistory(t *testing.T) {
	s := store.NewMemoryStore()
	s.QueryRecords = []models.QueryRecord{
		{ID: "r1", UserID: 1, Question: "q", Answer: "a", QueryType: "spending_analysis"},
	}
	h := newTestHandler(s)

	w := httptest.NewRecorder()
	h.HandleGetHistory(w, authedRequest(http.MethodGet, "/api/assistant/history", "", 1))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var records []models.QueryRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(records) != 1 || records[0].ID != "r1" {
		t.Errorf("records = %v, want the seeded record", records)
	}
}
