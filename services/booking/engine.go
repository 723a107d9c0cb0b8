package booking

import (
	"context"
	"fmt"
	"time"

	"apptly/models"

	"go.uber.org/zap"
)

// Responder produces the conversational answer when no booking flow applies.
type Responder interface {
	Answer(ctx context.Context, question string, history []models.ChatTurn) (string, error)
}

// Notifier delivers one formatted message to one recipient.
type Notifier interface {
	Send(recipient, subject, body string) error
}

// Embedder computes the semantic embedding of a text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Indexer upserts an embedded record into the searchable vector store.
type Indexer interface {
	Upsert(ctx context.Context, id string, vector []float32, metadata map[string]string) error
}

// RecordStore persists finalized appointment records.
type RecordStore interface {
	Create(ctx context.Context, record models.AppointmentRecord) (string, error)
}

// ReminderScheduler enqueues the pre-appointment reminder email.
type ReminderScheduler interface {
	Schedule(payload models.ReminderPayload, at time.Time) error
}

// fieldPrompts are the fixed prompts shown when a field becomes current.
var fieldPrompts = map[models.Field]string{
	models.FieldName:    "What's your name?",
	models.FieldEmail:   "What's your email address?",
	models.FieldPhone:   "What's your phone number?",
	models.FieldDate:    "What date should I book?",
	models.FieldTime:    "What time do you prefer? Please provide in 24-hour format (e.g., 14:30).",
	models.FieldMessage: "Any message you'd like to include?",
}

const (
	goodbyeMessage      = "Goodbye! Your session has ended."
	startBookingMessage = "Sure! What's your name?"
)

// Engine orchestrates one chat turn: session termination, the field-by-field
// booking flow, finalization, and delegation to the chat fallback. All
// collaborators are injected; the engine holds no global state.
type Engine struct {
	States     StateStore
	History    HistoryStore
	Classifier *Classifier
	Responder  Responder
	Notifier   Notifier
	Embedder   Embedder
	Indexer    Indexer
	Records    RecordStore
	Reminders  ReminderScheduler

	AdminEmail   string
	Location     *time.Location
	FieldOrder   []models.Field
	ReminderLead time.Duration

	// Now is the clock used for date/time validation. Overridable in tests.
	Now func() time.Time

	Logger *zap.Logger
}

// ProcessTurn handles one incoming message for a session and returns the
// answer to send back. Each turn is a self-contained request/response unit:
// state is flushed to the store before the turn ends.
func (e *Engine) ProcessTurn(ctx context.Context, sessionID, question string) (string, error) {
	if e.Classifier.Classify(question) == IntentTerminate {
		if err := e.History.Clear(ctx, sessionID); err != nil {
			e.logger().Warn("failed to clear conversation history", zap.String("session", sessionID), zap.Error(err))
		}
		if err := e.States.Clear(ctx, sessionID); err != nil {
			return "", fmt.Errorf("clear booking state: %w", err)
		}
		return goodbyeMessage, nil
	}

	state, err := e.States.Get(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("load booking state: %w", err)
	}

	// An active flow consumes the message as field input; booking triggers
	// are only honored when idle.
	if state.Started {
		return e.continueFlow(ctx, sessionID, question, &state)
	}

	if e.Classifier.Classify(question) == IntentTrigger {
		if err := e.States.Start(ctx, sessionID); err != nil {
			return "", fmt.Errorf("start booking state: %w", err)
		}
		return startBookingMessage, nil
	}

	return e.fallback(ctx, sessionID, question)
}

// continueFlow validates the message as input for the next unfilled field
// and either re-prompts, asks for the following field, or finalizes.
func (e *Engine) continueFlow(ctx context.Context, sessionID, question string, state *models.BookingState) (string, error) {
	field, missing := state.NextField(e.order())
	if !missing {
		// State was already complete (e.g. an earlier finalization was cut
		// short before the clear); finish it now.
		return e.finalize(ctx, sessionID, state)
	}

	result := ValidateField(field, question, state, e.localNow())
	if !result.OK {
		return result.Prompt, nil
	}

	if err := e.States.SetField(ctx, sessionID, field, result.Value); err != nil {
		return "", fmt.Errorf("persist field %s: %w", field, err)
	}
	state.Set(field, result.Value)

	if next, open := state.NextField(e.order()); open {
		return fieldPrompts[next], nil
	}
	return e.finalize(ctx, sessionID, state)
}

// fallback delegates to the LLM responder and records the exchange.
func (e *Engine) fallback(ctx context.Context, sessionID, question string) (string, error) {
	history, err := e.History.Load(ctx, sessionID)
	if err != nil {
		e.logger().Warn("failed to load conversation history", zap.String("session", sessionID), zap.Error(err))
		history = nil
	}

	answer, err := e.Responder.Answer(ctx, question, history)
	if err != nil {
		return "", fmt.Errorf("chat fallback: %w", err)
	}

	if err := e.History.Append(ctx, sessionID, models.ChatTurn{Question: question, Answer: answer}); err != nil {
		e.logger().Warn("failed to append conversation history", zap.String("session", sessionID), zap.Error(err))
	}
	return answer, nil
}

func (e *Engine) order() []models.Field {
	if len(e.FieldOrder) == 0 {
		return models.DefaultFieldOrder
	}
	return e.FieldOrder
}

func (e *Engine) localNow() time.Time {
	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}
	if e.Location != nil {
		now = now.In(e.Location)
	}
	return now
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
