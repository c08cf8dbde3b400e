package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zphs-kuchanpally/ai-buddy/internal/model"
	"github.com/zphs-kuchanpally/ai-buddy/internal/queue"
	"github.com/zphs-kuchanpally/ai-buddy/internal/tutor"
)

// EventPublisher receives one event per non-empty tutor exchange.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.PracticeEvent) error
}

// TutorHandler serves POST /api/tutor.  Events may be nil.
type TutorHandler struct {
	Coach          *tutor.Tutor
	Events         EventPublisher
	PublishTimeout time.Duration
}

func NewTutorHandler(t *tutor.Tutor, events EventPublisher, publishTimeout time.Duration) *TutorHandler {
	if publishTimeout <= 0 {
		publishTimeout = 2 * time.Second
	}
	return &TutorHandler{Coach: t, Events: events, PublishTimeout: publishTimeout}
}

// Tutor improves the learner's message and answers with a reply, tips and
// a practice prompt.  A missing "level" means beginner.
func (h *TutorHandler) Tutor(c echo.Context) error {
	level := tutor.LevelBeginner
	req := model.TutorRequest{Level: &level}
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	r := h.Coach.Compose(*req.Message, req.Level)
	if strings.TrimSpace(*req.Message) != "" {
		h.publish(c, req.Level, r)
	}

	prompt := r.Prompt
	return c.JSON(http.StatusOK, model.TutorResponse{
		Reply:       r.Text,
		Suggestions: r.Suggestions,
		Prompt:      &prompt,
	})
}

// publish sends the practice event in the background so a slow broker
// never delays the reply.
func (h *TutorHandler) publish(c echo.Context, level *string, r tutor.Reply) {
	if h.Events == nil {
		return
	}
	ev := queue.PracticeEvent{
		Corrected:       r.Corrected,
		SuggestionCount: len(r.Suggestions),
		Prompt:          r.Prompt,
		OccurredAt:      time.Now().UTC(),
	}
	if level != nil {
		ev.Level = *level
	}
	logger := c.Logger()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), h.PublishTimeout)
		defer cancel()
		if err := h.Events.Publish(ctx, ev); err != nil {
			logger.Warnf("[events] publish practice event failed: %v", err)
		}
	}()
}
