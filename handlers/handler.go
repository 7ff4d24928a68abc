package handlers

import (
	"errors"
	"net/http"

	"food-ordering-api/service"

	"github.com/gin-gonic/gin"
)

// Handler groups the HTTP endpoints over the service layer. It does no
// business logic of its own: bind input, call a service, map the error
// kind to a status code.
type Handler struct {
	auth        *service.AuthService
	orders      *service.OrderService
	restaurants *service.RestaurantService
	payments    *service.PaymentService
	jwtSecret   []byte
}

func New(auth *service.AuthService, orders *service.OrderService, restaurants *service.RestaurantService, payments *service.PaymentService, jwtSecret []byte) *Handler {
	return &Handler{
		auth:        auth,
		orders:      orders,
		restaurants: restaurants,
		payments:    payments,
		jwtSecret:   jwtSecret,
	}
}

// fail writes the transport status for a service error kind.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrInvalidState):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
