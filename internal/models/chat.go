package models

import "time"

// Transcript role labels. The stored labels match what the dashboard renders.
const (
	TranscriptRoleUser    = "User"
	TranscriptRoleChatbot = "Chatbot"
)

// TranscriptEntry is one message in the append-only conversation log.
type TranscriptEntry struct {
	ID        string    `db:"id" json:"id"`
	Role      string    `db:"role" json:"role"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// ChatRequest is the inbound question payload.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the sanitized answer text.
type ChatResponse struct {
	Response string `json:"response"`
}
