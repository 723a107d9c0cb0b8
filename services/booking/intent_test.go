package booking

import (
	"testing"

	"apptly/config"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	c := NewClassifier(config.DefaultBookingTriggers)

	t.Run("booking trigger", func(t *testing.T) {
		assert.Equal(t, IntentTrigger, c.Classify("I want to book a call tomorrow"))
		assert.Equal(t, IntentTrigger, c.Classify("BOOK APPOINTMENT"))
		assert.Equal(t, IntentTrigger, c.Classify("  schedule a call  "))
	})

	t.Run("terminate", func(t *testing.T) {
		assert.Equal(t, IntentTerminate, c.Classify("bye"))
		assert.Equal(t, IntentTerminate, c.Classify("  Bye "))
	})

	t.Run("ordinary chat", func(t *testing.T) {
		assert.Equal(t, IntentOrdinary, c.Classify("what's the weather"))
		assert.Equal(t, IntentOrdinary, c.Classify("tell me about your services"))
	})

	// Matching is substring based, not whole-word: short vocabulary entries
	// fire inside unrelated words. This is the documented contract.
	t.Run("substring semantics", func(t *testing.T) {
		assert.Equal(t, IntentTrigger, c.Classify("that looks okay to me"))       // contains "ok"
		assert.Equal(t, IntentTrigger, c.Classify("I read a good book lately"))   // contains "book"
		assert.Equal(t, IntentTrigger, c.Classify("my schedule is full, sorry")) // contains "schedule"
	})

	t.Run("custom vocabulary", func(t *testing.T) {
		custom := NewClassifier([]string{"rendezvous"})
		assert.Equal(t, IntentTrigger, custom.Classify("set up a rendezvous"))
		assert.Equal(t, IntentOrdinary, custom.Classify("book appointment"))
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("  Hello World \n"))
}
