package models

import "time"

// OrderStatus represents all possible states of an order's lifecycle
type OrderStatus string

const (
	StatusCart      OrderStatus = "cart"
	StatusPlaced    OrderStatus = "placed"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	UserID      uint        `json:"user_id" gorm:"not null;index"`
	User        User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'cart';index"`
	TotalAmount float64     `json:"total_amount" gorm:"default:0"`
	// Region is copied from the owning user when the cart is created and
	// never changes afterwards, so listings stay stable even if the user moves.
	Region    Region      `json:"region" gorm:"not null;index"`
	Items     []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	OrderID    uint     `json:"order_id" gorm:"not null;index"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null;default:1"`
	Price      float64  `json:"price" gorm:"not null"` // snapshot price at the time the item was added
}
