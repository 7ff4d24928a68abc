package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/service"

	"github.com/gin-gonic/gin"
)

type CreatePaymentMethodRequest struct {
	Type      models.PaymentType `json:"type" binding:"required,oneof=card upi netbanking"`
	LastFour  string             `json:"last_four" binding:"required,len=4"`
	IsDefault bool               `json:"is_default"`
}

type UpdatePaymentMethodRequest struct {
	Type      *models.PaymentType `json:"type" binding:"omitempty,oneof=card upi netbanking"`
	LastFour  *string             `json:"last_four" binding:"omitempty,len=4"`
	IsDefault *bool               `json:"is_default"`
}

// ListPaymentMethods returns the caller's saved payment methods
func (h *Handler) ListPaymentMethods(c *gin.Context) {
	user := middleware.CurrentUser(c)
	methods, err := h.payments.List(user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(methods), "payment_methods": methods})
}

// CreatePaymentMethod saves a new payment method for the caller
func (h *Handler) CreatePaymentMethod(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	method, err := h.payments.Create(user, service.PaymentMethodInput{
		Type:      &req.Type,
		LastFour:  &req.LastFour,
		IsDefault: &req.IsDefault,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payment_method": method})
}

// UpdatePaymentMethod modifies one of the caller's payment methods
func (h *Handler) UpdatePaymentMethod(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method id"})
		return
	}
	var req UpdatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	method, err := h.payments.Update(user, uint(id), service.PaymentMethodInput{
		Type:      req.Type,
		LastFour:  req.LastFour,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment_method": method})
}

// DeletePaymentMethod removes one of the caller's payment methods
func (h *Handler) DeletePaymentMethod(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method id"})
		return
	}
	if err := h.payments.Delete(user, uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
}
