package models

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question" binding:"required"`
}

// ChatResponse is what the chat handler returns to the frontend. SessionID
// is set only when the server generated a fresh session for the caller.
type ChatResponse struct {
	Answer    string `json:"answer"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatTurn is one prior question/answer exchange in a session. History is
// consumed only by the chat fallback; the booking flow never reads it.
type ChatTurn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
