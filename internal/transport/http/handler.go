package handlers

import (
	"errors"
	"net/http"

	"coursemarket/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// currentUserID достает userId, положенный AuthMiddleware.
// Возвращает uuid.Nil и false, если его нет или он битый (тогда ответ уже отправлен).
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("userId")
	if raw == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError мапит доменные ошибки на HTTP-статусы (таксономия из internal/domain/errors.go)
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrAlreadyInCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrCartItemNotFound),
		errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrNotEnrolled):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidPaymentDetails),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
