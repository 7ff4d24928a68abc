package handlers

import (
	"net/http"
	"strconv"

	"food-ordering-api/middleware"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns the restaurants visible in the caller's region
func (h *Handler) ListRestaurants(c *gin.Context) {
	user := middleware.CurrentUser(c)
	restaurants, err := h.restaurants.List(user)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu
func (h *Handler) GetRestaurant(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id"})
		return
	}
	restaurant, err := h.restaurants.Get(user, uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}
