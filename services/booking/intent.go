package booking

import "strings"

// Intent is the coarse classification of one incoming message.
type Intent int

const (
	// IntentOrdinary routes the message to the chat fallback.
	IntentOrdinary Intent = iota
	// IntentTrigger starts a booking flow when no booking is active.
	IntentTrigger
	// IntentTerminate ends the session and clears all of its state.
	IntentTerminate
)

// terminatePhrase ends a session outright.
const terminatePhrase = "bye"

// Classifier decides whether a message terminates the session, starts a
// booking flow, or is ordinary chat. It is pure over its vocabulary.
type Classifier struct {
	triggers []string
}

// NewClassifier builds a classifier over the given trigger vocabulary.
func NewClassifier(triggers []string) *Classifier {
	return &Classifier{triggers: triggers}
}

// Normalize trims surrounding whitespace and lowercases a message.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Classify normalizes the message and matches it against the vocabulary.
// Trigger matching is substring based, not whole-word: very short entries
// like "ok" and "book" fire on any message containing them. Imprecise, but
// it is the contract callers rely on.
func (c *Classifier) Classify(raw string) Intent {
	msg := Normalize(raw)
	if msg == terminatePhrase {
		return IntentTerminate
	}
	for _, trigger := range c.triggers {
		if strings.Contains(msg, trigger) {
			return IntentTrigger
		}
	}
	return IntentOrdinary
}
