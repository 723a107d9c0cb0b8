// File: services/intelligence/gemini.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"apptly/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const assistantSystemPrompt = "You are a professional personal assistant. " +
	"Your main duties are to:\n" +
	"1. Help clients get in touch and answer their questions.\n" +
	"2. Book appointments by collecting the following details step-by-step: " +
	"name, email, phone number, preferred date, time, and any message.\n" +
	"3. Keep your responses short, polite, and focused on helping the user.\n" +
	"4. If the user says 'bye', respond politely and end the session.\n" +
	"Always remember: you are acting as the assistant, never as the client."

// GeminiClient wraps the Gemini API for the chat fallback and embeddings.
type GeminiClient struct {
	model      *genai.GenerativeModel
	embedder *genai.EmbeddingModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(assistantSystemPrompt)},
	}

	return &GeminiClient{
		model:      model,
		embedder: client.EmbeddingModel("text-embedding-004"),
	}, nil
}

// Answer generates a conversational reply to the question, replaying the
// session's prior turns so the model keeps context.
func (g *GeminiClient) Answer(ctx context.Context, question string, history []models.ChatTurn) (string, error) {
	cs := g.model.StartChat()
	for _, turn := range history {
		cs.History = append(cs.History,
			&genai.Content{Role: "user", Parts: []genai.Part{genai.Text(turn.Question)}},
			&genai.Content{Role: "model", Parts: []genai.Part{genai.Text(turn.Answer)}},
		)
	}

	resp, err := cs.SendMessage(ctx, genai.Text(question))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

// Embed computes the semantic embedding of a text.
func (g *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	res, err := g.embedder.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("gemini embed error: %w", err)
	}
	if res.Embedding == nil {
		return nil, fmt.Errorf("gemini returned no embedding")
	}
	return res.Embedding.Values, nil
}
