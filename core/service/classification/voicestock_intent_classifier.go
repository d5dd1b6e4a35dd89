// Package classification maps raw utterance text to an intent.
package classification

import (
	"context"
	"strings"

	"voicestock_server/core/domain"
	"voicestock_server/core/port/out"
	"voicestock_server/pkg/logger"
)

// IntentClassifier decides which of the five intents an utterance carries.
// It never fails outward: any collaborator fault or unexpected label token
// degrades to the supply intent, favoring inventory additions over lost
// data.
type IntentClassifier struct {
	nlu out.NLUClient
}

func NewIntentClassifier(nlu out.NLUClient) *IntentClassifier {
	return &IntentClassifier{nlu: nlu}
}

// Classify returns the intent for text, defaulting to supply on any
// internal failure.
func (c *IntentClassifier) Classify(ctx context.Context, text string) domain.Intent {
	label, err := c.nlu.ClassifyIntent(ctx, text)
	if err != nil {
		logger.WithError(err).Warn("intent classification failed, defaulting to supply")
		return domain.IntentSupply
	}

	intent, ok := domain.ParseIntent(strings.ToLower(strings.TrimSpace(label)))
	if !ok {
		logger.WithField("label", label).Warn("unexpected intent label, defaulting to supply")
		return domain.IntentSupply
	}

	logger.WithField("intent", intent.String()).Debug("utterance classified")
	return intent
}
