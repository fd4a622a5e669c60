// backend/src/assistant/classifier.go
package assistant

import (
	"strings"

	"github.com/username/finassist/backend/src/models"
)

// Vocabulary is the per-user entity vocabulary the classifier scans for.
// Both lists come from the data store at submission time; the classifier
// itself holds no user data.
type Vocabulary struct {
	Categories []string
	Businesses []string
}

// IntentClassifier turns a free-text question into a ClassificationResult.
// It is a total function: any input, in any language, yields a well-formed
// result with a confidence in [0,1].
type IntentClassifier struct {
	rules           RuleSet
	defaultLanguage string
}

// NewIntentClassifier creates a classifier over the given rule table.
func NewIntentClassifier(rules RuleSet, defaultLanguage string) *IntentClassifier {
	return &IntentClassifier{rules: rules, defaultLanguage: defaultLanguage}
}

// Classify scores the question against every intent rule, resolves the
// timeframe token and extracts entities.
//
// Intent selection is best-match: score = matched triggers / defined
// triggers, ties going to the earlier rule. Timeframe resolution is
// first-match over the ordered timeframe table. The two deliberately
// differ: a question mentioning two periods still gets a deterministic
// timeframe, while intents compete on vocabulary coverage.
func (c *IntentClassifier) Classify(question string, vocab Vocabulary) models.ClassificationResult {
	// ToLower is effectively a no-op for Hebrew and Arabic script.
	text := strings.ToLower(question)

	bestIntent := models.IntentGeneralInfo
	bestScore := 0.0
	for _, rule := range c.rules.Intents {
		if len(rule.Triggers) == 0 {
			continue
		}
		matched := 0
		for _, trigger := range rule.Triggers {
			if strings.Contains(text, strings.ToLower(trigger)) {
				matched++
			}
		}
		score := float64(matched) / float64(len(rule.Triggers))
		if score > bestScore {
			bestScore = score
			bestIntent = rule.Intent
		}
	}

	timeframe := models.TimeframeNone
	for _, rule := range c.rules.Timeframes {
		found := false
		for _, trigger := range rule.Triggers {
			if strings.Contains(text, strings.ToLower(trigger)) {
				found = true
				break
			}
		}
		if found {
			timeframe = rule.Token
			break
		}
	}

	var entities []models.Entity
	for _, name := range vocab.Categories {
		if name != "" && strings.Contains(text, strings.ToLower(name)) {
			entities = append(entities, models.Entity{Type: models.EntityCategory, Value: name})
		}
	}
	for _, name := range vocab.Businesses {
		if name != "" && strings.Contains(text, strings.ToLower(name)) {
			entities = append(entities, models.Entity{Type: models.EntityBusiness, Value: name})
		}
	}

	return models.ClassificationResult{
		Intent:     bestIntent,
		Confidence: bestScore,
		Timeframe:  timeframe,
		Entities:   entities,
		Language:   DetectLanguage(question, c.defaultLanguage),
	}
}
