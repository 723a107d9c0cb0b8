package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"apptly/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockProcessor struct {
	processFn func(sessionID, question string) (string, error)
	sessions  []string
}

func (m *mockProcessor) ProcessTurn(_ context.Context, sessionID, question string) (string, error) {
	m.sessions = append(m.sessions, sessionID)
	if m.processFn != nil {
		return m.processFn(sessionID, question)
	}
	return "hello", nil
}

func newChatRouter(proc *mockProcessor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", NewChatHandler(proc, zap.NewNop()).HandleChat)
	return r
}

func postChat(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleChat(t *testing.T) {
	t.Run("existing session is passed through", func(t *testing.T) {
		proc := &mockProcessor{}
		w := postChat(t, newChatRouter(proc), `{"session_id":"s1","question":"hi"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, proc.sessions, 1)
		assert.Equal(t, "s1", proc.sessions[0])

		var resp models.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "hello", resp.Answer)
		assert.Empty(t, resp.SessionID, "no session is echoed when the client supplied one")
	})

	t.Run("missing session gets a generated one", func(t *testing.T) {
		proc := &mockProcessor{}
		w := postChat(t, newChatRouter(proc), `{"question":"hi"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp models.ChatResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.SessionID)
		require.Len(t, proc.sessions, 1)
		assert.Equal(t, resp.SessionID, proc.sessions[0])
	})

	t.Run("missing question fails validation", func(t *testing.T) {
		proc := &mockProcessor{}
		w := postChat(t, newChatRouter(proc), `{"session_id":"s1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, proc.sessions)
	})

	t.Run("engine failure maps to 500", func(t *testing.T) {
		proc := &mockProcessor{processFn: func(string, string) (string, error) {
			return "", fmt.Errorf("redis down")
		}}
		w := postChat(t, newChatRouter(proc), `{"session_id":"s1","question":"hi"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
