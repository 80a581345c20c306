package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campushub/student-assist-api/internal/models"
	appErrors "github.com/campushub/student-assist-api/pkg/errors"
	"github.com/campushub/student-assist-api/pkg/export"
)

// ChatOrchestrator is the consumer-side contract for the query pipeline.
type ChatOrchestrator interface {
	Ask(ctx context.Context, principal models.Principal, question string) (string, error)
	Memory(ctx context.Context) ([]models.TranscriptEntry, error)
	Clear(ctx context.Context) error
}

// ChatHandler exposes the question pipeline and the transcript endpoints.
// These endpoints keep the raw JSON shapes the dashboard frontend already
// speaks ({response}, {memory}, {status}) instead of the envelope.
type ChatHandler struct {
	service ChatOrchestrator
}

// NewChatHandler creates a new handler.
func NewChatHandler(svc ChatOrchestrator) *ChatHandler {
	return &ChatHandler{service: svc}
}

// Chat godoc
// @Summary Ask a question about visible student records
// @Description Answers a free-text question scoped to the caller's role
// @Tags Chat
// @Accept json
// @Produce json
// @Param payload body models.ChatRequest true "Question payload"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No message provided"})
		return
	}

	claims := claimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	answer, err := h.service.Ask(c.Request.Context(), claims.Principal(), req.Message)
	if err != nil {
		appErr := appErrors.FromError(err)
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: answer})
}

// Memory godoc
// @Summary View the conversation transcript
// @Tags Chat
// @Produce json
// @Success 200 {object} map[string][][]string
// @Router /chat/memory [get]
func (h *ChatHandler) Memory(c *gin.Context) {
	entries, err := h.service.Memory(c.Request.Context())
	if err != nil {
		appErr := appErrors.FromError(err)
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	memory := make([][]string, 0, len(entries))
	for _, entry := range entries {
		memory = append(memory, []string{entry.Role, entry.Content})
	}

	c.JSON(http.StatusOK, gin.H{"memory": memory})
}

// Clear godoc
// @Summary Clear the conversation transcript
// @Tags Chat
// @Produce json
// @Success 200 {object} map[string]string
// @Router /chat/clear [post]
func (h *ChatHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context()); err != nil {
		appErr := appErrors.FromError(err)
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Memory cleared"})
}

// Export godoc
// @Summary Download the transcript as a PDF or CSV attachment
// @Tags Chat
// @Produce application/pdf
// @Param format query string false "pdf (default) or csv"
// @Success 200 {file} binary
// @Router /chat/export [get]
func (h *ChatHandler) Export(c *gin.Context) {
	entries, err := h.service.Memory(c.Request.Context())
	if err != nil {
		appErr := appErrors.FromError(err)
		c.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	if c.Query("format") == "csv" {
		payload, err := export.TranscriptCSV(entries)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render transcript"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="transcript.csv"`)
		c.Data(http.StatusOK, "text/csv", payload)
		return
	}

	payload, err := export.TranscriptPDF(entries)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render transcript"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="transcript.pdf"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}
