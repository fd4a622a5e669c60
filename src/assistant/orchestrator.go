// backend/src/assistant/orchestrator.go
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/username/finassist/backend/src/cache"
	"github.com/username/finassist/backend/src/logger"
	"github.com/username/finassist/backend/src/models"
	"github.com/username/finassist/backend/src/store"
)

// Orchestrator errors surfaced to the caller. Everything else ends in a
// well-formed textual answer.
var (
	ErrBusy          = errors.New("a previous question is still being processed")
	ErrEmptyQuestion = errors.New("question must not be empty")
)

// Orchestrator glues classification, dispatch, composition and fallback
// into one request/response cycle per submitted question. At most one
// question per user is in flight at any time; a submission arriving
// while another is running is rejected, not queued.
type Orchestrator struct {
	store      store.Store
	classifier *IntentClassifier
	dispatcher *Dispatcher
	composer   *Composer
	fallback   *FallbackRouter
	answers    *cache.AnswerCache
	threshold  float64
	currency   string
	location   *time.Location

	mu            sync.Mutex
	processing    map[int64]bool
	conversations map[int64][]models.ConversationMessage
}

// NewOrchestrator wires the engine together. answers may be nil to
// disable answer caching.
func NewOrchestrator(
	s store.Store,
	classifier *IntentClassifier,
	dispatcher *Dispatcher,
	composer *Composer,
	fallback *FallbackRouter,
	answers *cache.AnswerCache,
	threshold float64,
	currency string,
	location *time.Location,
) *Orchestrator {
	if location == nil {
		location = time.UTC
	}
	return &Orchestrator{
		store:         s,
		classifier:    classifier,
		dispatcher:    dispatcher,
		composer:      composer,
		fallback:      fallback,
		answers:       answers,
		threshold:     threshold,
		currency:      currency,
		location:      location,
		processing:    make(map[int64]bool),
		conversations: make(map[int64][]models.ConversationMessage),
	}
}

// Submit runs one full question/answer cycle and returns the assistant
// message appended to the conversation. It returns ErrBusy when a
// question is already in flight for this user and ErrEmptyQuestion for
// blank input; every other outcome, including data store and LLM
// failures, is expressed as answer text.
func (o *Orchestrator) Submit(ctx context.Context, userID int64, question string) (models.ConversationMessage, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.ConversationMessage{}, ErrEmptyQuestion
	}

	o.mu.Lock()
	if o.processing[userID] {
		o.mu.Unlock()
		return models.ConversationMessage{}, ErrBusy
	}
	o.processing[userID] = true
	o.conversations[userID] = append(o.conversations[userID], models.ConversationMessage{
		ID:        uuid.NewString(),
		Role:      "user",
		Text:      question,
		Timestamp: time.Now(),
	})
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		delete(o.processing, userID)
		o.mu.Unlock()
	}()

	start := time.Now()
	classification := o.classifier.Classify(question, o.loadVocabulary(ctx, userID))
	logger.FromContext(ctx).Info("Question classified",
		"userID", userID,
		"intent", classification.Intent,
		"confidence", classification.Confidence,
		"timeframe", classification.Timeframe,
		"language", classification.Language,
	)

	var answer string
	var success bool
	if classification.Confidence <= o.threshold {
		answer, success = o.fallback.Route(ctx, question, classification.Language)
	} else {
		answer, success = o.answerDeterministic(ctx, userID, classification)
	}

	message := models.ConversationMessage{
		ID:         uuid.NewString(),
		Role:       "assistant",
		Text:       answer,
		Timestamp:  time.Now(),
		Intent:     classification.Intent,
		Confidence: classification.Confidence,
	}
	o.mu.Lock()
	o.conversations[userID] = append(o.conversations[userID], message)
	o.mu.Unlock()

	if success {
		o.persistQueryRecord(ctx, userID, question, answer, classification, time.Since(start))
	}
	return message, nil
}

// answerDeterministic runs the confident path: answer cache, dispatch,
// composition. success is false when the dispatcher returned the error
// sentinel, so failed lookups are neither cached nor logged as history.
func (o *Orchestrator) answerDeterministic(ctx context.Context, userID int64, classification models.ClassificationResult) (string, bool) {
	key := cache.BuildKey(userID, classification.Intent, classification.Timeframe, classification.Language, o.currency)
	if cached, found := o.answers.Get(key); found {
		logger.FromContext(ctx).Debug("Answer cache hit", "userID", userID, "key", key)
		return cached, true
	}

	now := time.Now().In(o.location)
	result := o.dispatcher.Dispatch(ctx, userID, classification, now)
	answer := o.composer.Compose(result, classification.Intent, classification.Language)
	if result.IsError() {
		return answer, false
	}
	o.answers.Set(key, answer)
	return answer, true
}

// loadVocabulary fetches the entity vocabulary for classification.
// Failures degrade to an empty vocabulary; classification itself never
// fails.
func (o *Orchestrator) loadVocabulary(ctx context.Context, userID int64) Vocabulary {
	vocab := Vocabulary{}
	categories, err := o.store.ListCategories(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("Could not load categories for entity extraction", "userID", userID, "error", err)
	} else {
		for _, c := range categories {
			vocab.Categories = append(vocab.Categories, c.Name)
		}
	}
	businesses, err := o.store.ListBusinessNames(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("Could not load business names for entity extraction", "userID", userID, "error", err)
	} else {
		vocab.Businesses = businesses
	}
	return vocab
}

// persistQueryRecord appends the answered question to the query history.
// Persistence is best-effort: failures are logged and otherwise ignored.
func (o *Orchestrator) persistQueryRecord(ctx context.Context, userID int64, question, answer string, classification models.ClassificationResult, elapsed time.Duration) {
	dataContext, err := json.Marshal(map[string]interface{}{
		"confidence": classification.Confidence,
		"timeframe":  classification.Timeframe,
		"entities":   classification.Entities,
	})
	if err != nil {
		dataContext = []byte("{}")
	}
	record := &models.QueryRecord{
		ID:             uuid.NewString(),
		UserID:         userID,
		Question:       question,
		Answer:         answer,
		QueryType:      string(classification.Intent),
		DataContext:    string(dataContext),
		ResponseTimeMS: elapsed.Milliseconds(),
		CreatedAt:      time.Now(),
	}
	if err := o.store.CreateQueryRecord(ctx, record); err != nil {
		logger.FromContext(ctx).Warn("Failed to persist query record", "userID", userID, "error", err)
	}
}

// Conversation returns a copy of the user's conversation so far.
func (o *Orchestrator) Conversation(userID int64) []models.ConversationMessage {
	o.mu.Lock()
	defer o.mu.Unlock()
	messages := o.conversations[userID]
	out := make([]models.ConversationMessage, len(messages))
	copy(out, messages)
	return out
}

// IsProcessing reports whether a question is currently in flight for the
// user.
func (o *Orchestrator) IsProcessing(userID int64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.processing[userID]
}
