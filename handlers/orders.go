package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/middleware"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

type AddToCartRequest struct {
	MenuItemID uint `json:"menu_item_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// GetCart returns the caller's cart, creating an empty one on first use
func (h *Handler) GetCart(c *gin.Context) {
	user := middleware.CurrentUser(c)
	cart, err := h.orders.GetOrCreateCart(user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": cart})
}

// AddToCart adds a menu item to the caller's cart
func (h *Handler) AddToCart(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cart, err := h.orders.AddItem(user, req.MenuItemID, req.Quantity)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": cart})
}

// RemoveFromCart deletes a line item from the caller's cart
func (h *Handler) RemoveFromCart(c *gin.Context) {
	user := middleware.CurrentUser(c)
	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}
	cart, err := h.orders.RemoveItem(user, uint(itemID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": cart})
}

// Checkout places the caller's cart
func (h *Handler) Checkout(c *gin.Context) {
	user := middleware.CurrentUser(c)
	order, err := h.orders.Checkout(user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": order})
}

// ListOrders returns placed orders visible to the caller
func (h *Handler) ListOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)
	orders, err := h.orders.ListOrders(user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// CancelOrder cancels a placed or completed order
func (h *Handler) CancelOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	order, err := h.orders.CancelOrder(user, uint(orderID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order": order})
}

// CompleteOrder marks a placed order completed (fulfillment callback)
func (h *Handler) CompleteOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	order, err := h.orders.CompleteOrder(user, uint(orderID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order completed", "order": order})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	var info []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		info = append(info, gin.H{"from": t.From, "to": t.To, "event": t.Event})
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine": info,
		"description":   "Order Lifecycle State Machine",
	})
}
