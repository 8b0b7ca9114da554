package v1

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUC domain.ChatUsecase
}

// ChatRequest is the chat relay payload: the just-typed message plus the full
// prior conversation, oldest first, including that message as its last entry.
type ChatRequest struct {
	Message string            `json:"message"`
	History []domain.ChatTurn `json:"history"`
}

// NewChatHandler registers the chat route (public, no auth required)
func NewChatHandler(api *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{
		chatUC: chatUC,
	}

	api.POST("/chat", handler.RelayChat)
}

// RelayChat godoc
// @Summary      Chat With The Site Assistant
// @Description  Relay one chat message with its conversation history to the language model and return the reply.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        chat  body      ChatRequest  true  "Message And History"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/chat [post]
func (h *ChatHandler) RelayChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	reply, err := h.chatUC.RelayChat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": validationErr.Error()})
			return
		}

		var configErr *domain.ConfigurationError
		if errors.As(err, &configErr) {
			logger.Log.Error("chat configuration error", "setting", configErr.Setting)
			c.JSON(http.StatusInternalServerError, gin.H{"message": configErr.Message})
			return
		}

		// Provider failures are already logged inside the workflow; callers
		// only get the safe fallback text.
		c.JSON(http.StatusInternalServerError, gin.H{"message": domain.ChatFallbackMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": reply})
}
