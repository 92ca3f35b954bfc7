package handlers

import (
	"net/http"

	"coursemarket/internal/application/usecase"
	"coursemarket/internal/domain"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	uc *usecase.CheckoutUseCase
}

func NewPaymentHandler(uc *usecase.CheckoutUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Checkout: реквизиты валидируются до записи, сам коммит — одна транзакция.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		PaymentMethod string                `json:"payment_method" binding:"required"`
		Details       domain.PaymentDetails `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	purchase, err := h.uc.Checkout(c, userID, req.PaymentMethod, req.Details)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

func (h *PaymentHandler) ListPurchases(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	purchases, err := h.uc.ListPurchases(c, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchases"})
		return
	}
	c.JSON(http.StatusOK, purchases)
}
