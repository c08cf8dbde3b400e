package tutor

import (
	"math/rand/v2"
	"strings"
)

// Learner levels recognised by Compose.  Anything else gets the neutral
// reply.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// Prompts are the follow-up exercises offered after every non-empty
// message.
var Prompts = []string{
	"Tell me about your day in three sentences.",
	"Describe your favorite teacher and why you like them.",
	"What is your hobby? Explain it like you are teaching a friend.",
	"Make a short plan for tomorrow using future tense.",
}

const (
	silenceReply  = "I didn't hear anything. Try saying a simple sentence about your day."
	silencePrompt = "Say: 'Today I woke up early and ...'"
	fallbackTip   = "Great effort! Add one more sentence to continue."
)

var silenceTips = []string{"Speak slowly and clearly.", "Start with: 'Today I ...'"}

// Picker chooses an index in [0, n).
type Picker interface {
	Pick(n int) int
}

// RandomPicker draws uniformly from math/rand/v2's global source.
type RandomPicker struct{}

func (RandomPicker) Pick(n int) int { return rand.IntN(n) }

// Reply is the composed answer for one learner message.  Improved and
// Corrected are for callers that report on the exchange; they are not
// part of the HTTP payload.
type Reply struct {
	Text        string
	Suggestions []string
	Prompt      string
	Improved    string
	Corrected   bool
}

// Tutor composes replies.  The zero value is not usable; call New.
type Tutor struct {
	picker Picker
}

// New returns a Tutor drawing prompts with p.  A nil p means RandomPicker.
func New(p Picker) *Tutor {
	if p == nil {
		p = RandomPicker{}
	}
	return &Tutor{picker: p}
}

// Compose builds the reply for message at the given level.  A nil level
// means the client sent an explicit null and falls through to the neutral
// template.
func (t *Tutor) Compose(message string, level *string) Reply {
	text := strings.TrimSpace(message)
	if text == "" {
		return Reply{
			Text:        silenceReply,
			Suggestions: append([]string(nil), silenceTips...),
			Prompt:      silencePrompt,
		}
	}

	improved, tips := Improve(text)

	lvl := ""
	if level != nil {
		lvl = *level
	}
	var reply string
	switch lvl {
	case LevelBeginner:
		reply = "You said: '" + text + "'. Here is a clearer version: '" + improved + "'. " +
			"Well done! Try to use full sentences and simple tenses."
	case LevelAdvanced:
		reply = "Your idea is good. A more natural phrasing is: '" + improved + "'. " +
			"Consider adding specific details and varied vocabulary."
	default:
		reply = "Nice! You can say: '" + improved + "'. " +
			"Keep practicing your rhythm and pronunciation."
	}

	corrected := improved != text
	if len(tips) == 0 {
		tips = []string{fallbackTip}
	}

	return Reply{
		Text:        reply,
		Suggestions: tips,
		Prompt:      Prompts[t.picker.Pick(len(Prompts))],
		Improved:    improved,
		Corrected:   corrected,
	}
}
