package handlers

import (
	"net/http"

	"coursemarket/internal/application/usecase"

	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	uc *usecase.AssistantUseCase
}

func NewAssistantHandler(uc *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{uc: uc}
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.uc.Chat(c, req.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant is unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
