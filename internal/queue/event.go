// Package queue defines the practice event exchanged over RabbitMQ together
// with its publisher and consumer.
package queue

import "time"

// PracticeEvent is published after every non-empty tutor exchange.  It
// carries no learner text, only what an activity dashboard needs.
type PracticeEvent struct {
	Level           string    `json:"level"`
	Corrected       bool      `json:"corrected"`
	SuggestionCount int       `json:"suggestion_count"`
	Prompt          string    `json:"prompt"`
	OccurredAt      time.Time `json:"occurred_at"`
}
