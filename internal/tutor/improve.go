// Package tutor holds the rule-based sentence improver and the reply
// composition used by the /api/tutor endpoint.  Nothing in here touches
// the network or keeps state between calls.
package tutor

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// correction is one dictionary rule.  Wrong is matched as a plain
// substring of the lowercased sentence, not as a whole word.
type correction struct {
	Wrong string
	Right string
}

// corrections is applied top to bottom.  Order matters: each rule sees the
// text produced by the rules above it, so "i" runs before "i has" and the
// latter never matches.
var corrections = []correction{
	{"i am", "I am"},
	{"i", "I"},
	{"dont", "don't"},
	{"doesnt", "doesn't"},
	{"cant", "can't"},
	{"wont", "won't"},
	{"im", "I'm"},
	{"u", "you"},
	{"ur", "your"},
	{"r", "are"},
	{"there english", "their English"},
	{"there are", "there are"},
	{"they is", "they are"},
	{"he have", "he has"},
	{"she have", "she has"},
	{"i has", "I have"},
}

// questionLeads are lowercase prefixes that mark a sentence as a question.
// Short auxiliaries carry a trailing space so "island" is not a question.
var questionLeads = []string{
	"what", "why", "how", "where", "when", "who", "which",
	"do ", "does ", "is ", "are ", "can ", "could ", "would ",
}

// EncouragementTip is added when Improve leaves the sentence untouched.
const EncouragementTip = "Great job! Your sentence looks good. Try to add more detail."

// Improve returns a cleaned-up version of text and the tips explaining what
// changed.  The returned slice is never nil.
func Improve(text string) (string, []string) {
	original := strings.TrimSpace(text)
	suggestions := []string{}
	if original == "" {
		return "", suggestions
	}
	improved := strings.ToLower(original)

	for _, c := range corrections {
		if strings.Contains(improved, c.Wrong) {
			improved = strings.ReplaceAll(improved, c.Wrong, c.Right)
			suggestions = append(suggestions, correctionTip(c))
		}
	}

	improved = upperFirst(improved)
	if !strings.ContainsAny(improved[len(improved)-1:], ".?!") {
		improved += "."
	}

	if isQuestion(improved) && strings.HasSuffix(improved, ".") {
		improved = strings.TrimSuffix(improved, ".") + "?"
	}

	if improved == original {
		suggestions = append(suggestions, EncouragementTip)
	}
	return improved, suggestions
}

func correctionTip(c correction) string {
	return "Consider using '" + c.Right + "' instead of '" + c.Wrong + "'."
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func isQuestion(s string) bool {
	lower := strings.ToLower(s)
	for _, q := range questionLeads {
		if strings.HasPrefix(lower, q) {
			return true
		}
	}
	return false
}
