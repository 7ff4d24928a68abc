package service

import (
	"errors"
	"fmt"

	"food-ordering-api/models"
	"food-ordering-api/policy"
	"food-ordering-api/statemachine"

	"gorm.io/gorm"
)

// OrderService owns the cart/order lifecycle. Every mutation runs inside
// a single transaction so the cart-lookup-or-create step and the total
// recomputation are atomic relative to each other for a given order.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// cartFor returns the user's cart, creating it lazily on first access.
// The created cart is stamped with the user's current region; the stamp
// never changes afterwards. FirstOrCreate inside the caller's
// transaction closes the check-then-insert race between two concurrent
// requests from the same user.
func cartFor(tx *gorm.DB, user models.User) (*models.Order, error) {
	var cart models.Order
	err := tx.Where("user_id = ? AND status = ?", user.ID, models.StatusCart).
		Attrs(models.Order{UserID: user.ID, Status: models.StatusCart, Region: user.Region}).
		FirstOrCreate(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// recomputeTotal re-sums price*quantity over the order's current items
// and persists the result. Reading the items fresh inside the same
// transaction guarantees a just-removed line is never counted.
func recomputeTotal(tx *gorm.DB, orderID uint) error {
	var items []models.OrderItem
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return err
	}
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return tx.Model(&models.Order{}).Where("id = ?", orderID).
		Update("total_amount", total).Error
}

func (s *OrderService) loadOrder(orderID uint) (*models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items.MenuItem").First(&order, orderID).Error; err != nil {
		return nil, fmt.Errorf("%w: order", ErrNotFound)
	}
	return &order, nil
}

// GetOrCreateCart returns the user's single cart-status order, creating
// an empty one if none exists yet.
func (s *OrderService) GetOrCreateCart(user models.User) (*models.Order, error) {
	var cartID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		cart, err := cartFor(tx, user)
		if err != nil {
			return err
		}
		cartID = cart.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.loadOrder(cartID)
}

// AddItem puts qty units of a menu item into the user's cart. If the
// cart already holds a line for that menu item the quantity is
// incremented instead of a duplicate line being created. The line price
// is snapshotted from the menu item and never revised afterwards.
func (s *OrderService) AddItem(user models.User, menuItemID uint, qty int) (*models.Order, error) {
	if qty < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	var cartID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var menuItem models.MenuItem
		if err := tx.First(&menuItem, menuItemID).Error; err != nil {
			return fmt.Errorf("%w: menu item", ErrNotFound)
		}

		cart, err := cartFor(tx, user)
		if err != nil {
			return err
		}
		cartID = cart.ID

		var line models.OrderItem
		err = tx.Where("order_id = ? AND menu_item_id = ?", cart.ID, menuItemID).First(&line).Error
		switch {
		case err == nil:
			line.Quantity += qty
			if err := tx.Save(&line).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = models.OrderItem{
				OrderID:    cart.ID,
				MenuItemID: menuItem.ID,
				Quantity:   qty,
				Price:      menuItem.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return recomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.loadOrder(cartID)
}

// RemoveItem deletes a line from the user's cart by order-item ID.
// Removing an item that does not exist, or that belongs to another
// user's cart, is a not-found error.
func (s *OrderService) RemoveItem(user models.User, itemID uint) (*models.Order, error) {
	var cartID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Order
		err := tx.Where("user_id = ? AND status = ?", user.ID, models.StatusCart).First(&cart).Error
		if err != nil {
			return fmt.Errorf("%w: cart", ErrNotFound)
		}
		cartID = cart.ID

		var line models.OrderItem
		if err := tx.Where("id = ? AND order_id = ?", itemID, cart.ID).First(&line).Error; err != nil {
			return fmt.Errorf("%w: item not in cart", ErrNotFound)
		}
		if err := tx.Delete(&line).Error; err != nil {
			return err
		}

		return recomputeTotal(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.loadOrder(cartID)
}

// Checkout flips the user's cart to placed. Requires checkout
// eligibility and a non-empty cart; the total is frozen as-is, not
// recomputed at transition.
func (s *OrderService) Checkout(user models.User) (*models.Order, error) {
	if !policy.Allows(user.Role, policy.ActionCheckout) {
		return nil, fmt.Errorf("%w: role %q cannot check out", ErrForbidden, user.Role)
	}

	var orderID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Order
		err := tx.Preload("Items").
			Where("user_id = ? AND status = ?", user.ID, models.StatusCart).
			First(&cart).Error
		if err != nil || len(cart.Items) == 0 {
			return fmt.Errorf("%w: cart is empty", ErrInvalidState)
		}
		if err := statemachine.CanTransition(cart.Status, models.StatusPlaced, "checkout"); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		orderID = cart.ID
		return tx.Model(&cart).Update("status", models.StatusPlaced).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadOrder(orderID)
}

// ListOrders returns placed/completed/cancelled orders, newest first.
// Cart-status orders are never listed. Administrators see every order;
// everyone else sees only their own, within their region scope.
func (s *OrderService) ListOrders(user models.User) ([]models.Order, error) {
	query := s.db.Preload("Items.MenuItem").
		Where("status <> ?", models.StatusCart)

	if !policy.Allows(user.Role, policy.ActionListAllOrders) {
		if region, ok := policy.RegionScope(user); ok {
			query = query.Where("region = ?", region)
		}
		query = query.Where("user_id = ?", user.ID)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// CancelOrder cancels a placed or completed order. Managers may cancel
// any order regardless of region or ownership; that breadth is
// deliberate. Cancelling twice is a conflict, cancelling a cart is
// rejected explicitly (remove its items instead).
func (s *OrderService) CancelOrder(user models.User, orderID uint) (*models.Order, error) {
	if !policy.Allows(user.Role, policy.ActionCancelOrder) {
		return nil, fmt.Errorf("%w: role %q cannot cancel orders", ErrForbidden, user.Role)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return fmt.Errorf("%w: order", ErrNotFound)
		}
		switch order.Status {
		case models.StatusCancelled:
			return fmt.Errorf("%w: order is already cancelled", ErrConflict)
		case models.StatusCart:
			return fmt.Errorf("%w: cannot cancel a cart", ErrInvalidState)
		}
		if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "cancel"); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		return tx.Model(&order).Update("status", models.StatusCancelled).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadOrder(orderID)
}

// CompleteOrder marks a placed order completed on behalf of the
// fulfillment collaborator. Beyond role eligibility the only checks are
// lifecycle ones: an already-terminal order is a conflict, a cart was
// never placed and cannot complete.
func (s *OrderService) CompleteOrder(user models.User, orderID uint) (*models.Order, error) {
	if !policy.Allows(user.Role, policy.ActionCompleteOrder) {
		return nil, fmt.Errorf("%w: role %q cannot complete orders", ErrForbidden, user.Role)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return fmt.Errorf("%w: order", ErrNotFound)
		}
		switch order.Status {
		case models.StatusCancelled, models.StatusCompleted:
			return fmt.Errorf("%w: order is already %s", ErrConflict, order.Status)
		case models.StatusCart:
			return fmt.Errorf("%w: order has not been placed", ErrInvalidState)
		}
		if err := statemachine.CanTransition(order.Status, models.StatusCompleted, "complete"); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidState, err)
		}
		return tx.Model(&order).Update("status", models.StatusCompleted).Error
	})
	if err != nil {
		return nil, err
	}
	return s.loadOrder(orderID)
}
