package booking

import (
	"context"
	"encoding/json"

	"apptly/models"

	"github.com/go-redis/redis/v8"
)

const (
	bookingKeyPrefix = "booking_state:"
	historyKeyPrefix = "chat_history:"
)

// StateStore persists per-session booking state as a flat string map.
// Keys isolate sessions from each other; concurrent turns on the same
// session are not coordinated, last write wins.
type StateStore interface {
	Get(ctx context.Context, sessionID string) (models.BookingState, error)
	Start(ctx context.Context, sessionID string) error
	SetField(ctx context.Context, sessionID string, f models.Field, value string) error
	Clear(ctx context.Context, sessionID string) error
}

// HistoryStore persists the append-only conversation history consumed by
// the chat fallback.
type HistoryStore interface {
	Load(ctx context.Context, sessionID string) ([]models.ChatTurn, error)
	Append(ctx context.Context, sessionID string, turn models.ChatTurn) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisStateStore keeps booking state in one Redis hash per session.
type RedisStateStore struct {
	client *redis.Client
}

func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{client: client}
}

func (s *RedisStateStore) Get(ctx context.Context, sessionID string) (models.BookingState, error) {
	raw, err := s.client.HGetAll(ctx, bookingKeyPrefix+sessionID).Result()
	if err != nil {
		return models.BookingState{}, err
	}
	return models.StateFromMap(raw), nil
}

func (s *RedisStateStore) Start(ctx context.Context, sessionID string) error {
	state := models.BookingState{Started: true}
	return s.client.HSet(ctx, bookingKeyPrefix+sessionID, mapToArgs(state.ToMap())...).Err()
}

func (s *RedisStateStore) SetField(ctx context.Context, sessionID string, f models.Field, value string) error {
	return s.client.HSet(ctx, bookingKeyPrefix+sessionID, string(f), value).Err()
}

func (s *RedisStateStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, bookingKeyPrefix+sessionID).Err()
}

func mapToArgs(m map[string]string) []interface{} {
	args := make([]interface{}, 0, len(m)*2)
	for k, v := range m {
		args = append(args, k, v)
	}
	return args
}

// RedisHistoryStore keeps conversation history in one Redis list per
// session, each entry a JSON-encoded turn.
type RedisHistoryStore struct {
	client *redis.Client
}

func NewRedisHistoryStore(client *redis.Client) *RedisHistoryStore {
	return &RedisHistoryStore{client: client}
}

func (s *RedisHistoryStore) Load(ctx context.Context, sessionID string) ([]models.ChatTurn, error) {
	entries, err := s.client.LRange(ctx, historyKeyPrefix+sessionID, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	turns := make([]models.ChatTurn, 0, len(entries))
	for _, entry := range entries {
		var turn models.ChatTurn
		if err := json.Unmarshal([]byte(entry), &turn); err != nil {
			// Skip entries we can no longer decode rather than fail the turn.
			continue
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (s *RedisHistoryStore) Append(ctx context.Context, sessionID string, turn models.ChatTurn) error {
	b, err := json.Marshal(turn)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, historyKeyPrefix+sessionID, b).Err()
}

func (s *RedisHistoryStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, historyKeyPrefix+sessionID).Err()
}
