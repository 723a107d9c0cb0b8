package handlers

import (
	"context"
	"net/http"
	"time"

	"apptly/models"
	"apptly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// turnTimeout bounds one chat turn including collaborator calls.
const turnTimeout = 30 * time.Second

// TurnProcessor handles one conversational turn for a session.
type TurnProcessor interface {
	ProcessTurn(ctx context.Context, sessionID, question string) (string, error)
}

// ChatHandler serves the conversational endpoint.
type ChatHandler struct {
	engine TurnProcessor
	logger *zap.Logger
}

func NewChatHandler(engine TurnProcessor, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{engine: engine, logger: logger}
}

// HandleChat processes one chat turn. A missing session_id starts a fresh
// session; the generated ID is echoed back so the client can continue it.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	generated := false
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
		generated = true
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), turnTimeout)
	defer cancel()

	answer, err := h.engine.ProcessTurn(ctx, req.SessionID, req.Question)
	if err != nil {
		h.logger.Error("chat turn failed", zap.String("session", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}

	resp := models.ChatResponse{Answer: answer}
	if generated {
		resp.SessionID = req.SessionID
	}
	c.JSON(http.StatusOK, resp)
}
