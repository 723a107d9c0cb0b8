package booking

import (
	"testing"
	"time"

	"apptly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is a Tuesday, 10:00 local time.
var fixedNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func TestValidateEmail(t *testing.T) {
	t.Run("accepts valid addresses", func(t *testing.T) {
		for _, input := range []string{"alice@example.com", "a.b+c@sub.domain.org", " padded@example.io "} {
			res := ValidateEmail(input)
			assert.True(t, res.OK, input)
		}
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, input := range []string{"not-an-email", "a b@example.com", "alice@", "alice@example."} {
			res := ValidateEmail(input)
			assert.False(t, res.OK, input)
			assert.NotEmpty(t, res.Prompt)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		first := ValidateEmail("alice@example.com")
		second := ValidateEmail(first.Value)
		assert.Equal(t, first.Value, second.Value)
	})
}

func TestValidatePhone(t *testing.T) {
	t.Run("accepts plausible numbers", func(t *testing.T) {
		for _, input := range []string{"+977 9812345678", "061-234-5678", "98123456789"} {
			assert.True(t, ValidatePhone(input).OK, input)
		}
	})

	t.Run("rejects short or non-numeric input", func(t *testing.T) {
		for _, input := range []string{"12ab34", "call me", "+12 34"} {
			assert.False(t, ValidatePhone(input).OK, input)
		}
	})
}

func TestValidateDate(t *testing.T) {
	t.Run("today is accepted", func(t *testing.T) {
		res := ValidateDate("today", fixedNow)
		require.True(t, res.OK)
		assert.Equal(t, "2026-03-10", res.Value)
	})

	t.Run("yesterday is rejected", func(t *testing.T) {
		res := ValidateDate("yesterday", fixedNow)
		assert.False(t, res.OK)
		assert.Contains(t, res.Prompt, "2026-03-11") // prompt suggests tomorrow
	})

	t.Run("non-date text is rejected", func(t *testing.T) {
		res := ValidateDate("gibberish", fixedNow)
		assert.False(t, res.OK)
	})

	t.Run("normalized form is accepted and idempotent", func(t *testing.T) {
		first := ValidateDate("2026-03-15", fixedNow)
		require.True(t, first.OK)
		assert.Equal(t, "2026-03-15", first.Value)

		second := ValidateDate(first.Value, fixedNow)
		require.True(t, second.OK)
		assert.Equal(t, first.Value, second.Value)
	})

	t.Run("past calendar date is rejected", func(t *testing.T) {
		assert.False(t, ValidateDate("2026-03-09", fixedNow).OK)
	})
}

func TestValidateTime(t *testing.T) {
	const futureDate = "2026-03-15"
	today := fixedNow.Format("2006-01-02")

	t.Run("requires the date first", func(t *testing.T) {
		res := ValidateTime("10:30", "", fixedNow)
		assert.False(t, res.OK)
		assert.Contains(t, res.Prompt, "date before")
	})

	t.Run("business window boundaries", func(t *testing.T) {
		assert.False(t, ValidateTime("08:59", futureDate, fixedNow).OK)
		assert.True(t, ValidateTime("09:00", futureDate, fixedNow).OK)
		assert.True(t, ValidateTime("17:00", futureDate, fixedNow).OK)
		assert.False(t, ValidateTime("17:01", futureDate, fixedNow).OK)
	})

	t.Run("same-day slots must be in the future", func(t *testing.T) {
		assert.False(t, ValidateTime("09:59", today, fixedNow).OK) // one minute ago
		assert.False(t, ValidateTime("10:00", today, fixedNow).OK) // not strictly later
		assert.True(t, ValidateTime("10:01", today, fixedNow).OK)  // one minute ahead
	})

	t.Run("unparsable input is rejected", func(t *testing.T) {
		for _, input := range []string{"2pm", "25:00", "ten thirty"} {
			assert.False(t, ValidateTime(input, futureDate, fixedNow).OK, input)
		}
	})

	t.Run("normalizes single-digit hours", func(t *testing.T) {
		res := ValidateTime("9:30", futureDate, fixedNow)
		require.True(t, res.OK)
		assert.Equal(t, "09:30", res.Value)
	})
}

func TestValidateField(t *testing.T) {
	state := &models.BookingState{Started: true, Date: "2026-03-15"}

	t.Run("name accepted trimmed", func(t *testing.T) {
		res := ValidateField(models.FieldName, "  Alice  ", state, fixedNow)
		require.True(t, res.OK)
		assert.Equal(t, "Alice", res.Value)
	})

	t.Run("blank name keeps the field open", func(t *testing.T) {
		res := ValidateField(models.FieldName, "   ", state, fixedNow)
		assert.False(t, res.OK)
		assert.Equal(t, "What's your name?", res.Prompt)
	})

	t.Run("time reads the stored date", func(t *testing.T) {
		res := ValidateField(models.FieldTime, "14:30", state, fixedNow)
		assert.True(t, res.OK)

		blank := &models.BookingState{Started: true}
		res = ValidateField(models.FieldTime, "14:30", blank, fixedNow)
		assert.False(t, res.OK)
	})
}
