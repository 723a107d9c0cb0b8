package booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"apptly/models"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// Business-hour window, inclusive on both ends.
const (
	businessOpen  = 9 * 60  // 09:00 in minutes from midnight
	businessClose = 17 * 60 // 17:00 in minutes from midnight
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[a-zA-Z0-9]+$`)
	phoneRegex = regexp.MustCompile(`^\+?\d[\d\-\s]{7,}$`) // allows +, -, spaces
)

// nlDate parses natural-language dates ("tomorrow", "next monday", ...).
var nlDate = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ValidationResult is the outcome of validating one field's raw input.
// When OK is false, Prompt restates the constraint for the user and the
// booking state stays unchanged.
type ValidationResult struct {
	Value  string
	OK     bool
	Prompt string
}

func accept(value string) ValidationResult {
	return ValidationResult{Value: value, OK: true}
}

func reject(prompt string) ValidationResult {
	return ValidationResult{Prompt: prompt}
}

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(raw string) ValidationResult {
	input := strings.TrimSpace(raw)
	if !emailRegex.MatchString(input) {
		return reject("That doesn't look like a valid email. Please enter a valid email address.")
	}
	return accept(input)
}

// ValidatePhone checks for an optional leading +, a digit, and at least
// seven more digits, hyphens or spaces.
func ValidatePhone(raw string) ValidationResult {
	input := strings.TrimSpace(raw)
	if !phoneRegex.MatchString(input) {
		return reject("That doesn't look like a valid phone number. Please enter a valid phone number.")
	}
	return accept(input)
}

// ValidateDate parses free-form date text and requires it to be today or
// later. Accepted dates normalize to YYYY-MM-DD, so re-validating an
// already-normalized value is a no-op.
func ValidateDate(raw string, now time.Time) ValidationResult {
	input := strings.TrimSpace(raw)

	parsed, err := time.ParseInLocation(dateLayout, input, now.Location())
	if err != nil {
		r, perr := nlDate.Parse(input, now)
		if perr != nil || r == nil {
			return reject(datePrompt(now))
		}
		parsed = r.Time
	}

	if dayOf(parsed).Before(dayOf(now)) {
		return reject(datePrompt(now))
	}
	return accept(parsed.Format(dateLayout))
}

func datePrompt(now time.Time) string {
	tomorrow := now.AddDate(0, 0, 1).Format(dateLayout)
	return fmt.Sprintf("Please provide a valid future date (e.g., 'next Monday' or %s).", tomorrow)
}

// dayOf strips the time-of-day component in the value's own location.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateTime parses 24-hour HH:MM, enforces the business window and, when
// the booked date is today, requires the slot to be strictly later than now.
// It needs the date to be collected first; without it the caller gets a
// corrective prompt rather than a validation attempt.
func ValidateTime(raw, bookingDate string, now time.Time) ValidationResult {
	if bookingDate == "" {
		return reject("Please provide the date before specifying the time.")
	}

	parsed, err := time.Parse(timeLayout, strings.TrimSpace(raw))
	if err != nil {
		return reject(timePrompt(now))
	}

	minutes := parsed.Hour()*60 + parsed.Minute()
	if minutes < businessOpen || minutes > businessClose {
		return reject(timePrompt(now))
	}

	if bookingDate == now.Format(dateLayout) {
		nowMinutes := now.Hour()*60 + now.Minute()
		if minutes <= nowMinutes {
			return reject(timePrompt(now))
		}
	}
	return accept(parsed.Format(timeLayout))
}

func timePrompt(now time.Time) string {
	return fmt.Sprintf(
		"Please provide a valid time between 09:00 and 17:00, and if it's today, choose a time later than now %s.",
		now.Format(timeLayout),
	)
}

// ValidateField dispatches to the field's validator. Name and message carry
// no structure; they are trimmed and accepted, except that blank input keeps
// the field open.
func ValidateField(f models.Field, raw string, state *models.BookingState, now time.Time) ValidationResult {
	switch f {
	case models.FieldEmail:
		return ValidateEmail(raw)
	case models.FieldPhone:
		return ValidatePhone(raw)
	case models.FieldDate:
		return ValidateDate(raw, now)
	case models.FieldTime:
		return ValidateTime(raw, state.Get(models.FieldDate), now)
	default:
		input := strings.TrimSpace(raw)
		if input == "" {
			return reject(fieldPrompts[f])
		}
		return accept(input)
	}
}
