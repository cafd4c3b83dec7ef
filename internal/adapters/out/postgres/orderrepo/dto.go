// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. Reading an order is a full reconstruction: the stored
// restaurant name, client username and optional deliveryman username are
// resolved into their entities and the food lines are loaded alongside.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order headers.
// The column names are the wire contract shared with other tools and must
// not change. The nullable columns carry the state-specific knowledge: an
// accepted row has an acceptance time and a deliveryman, a delivered row
// also a delivery time, a cancelled row whatever was known at cancellation.
type OrderDTO struct {
	ID                  int             `gorm:"column:id;primaryKey;autoIncrement"`
	RestaurantName      string          `gorm:"column:restaurant_name"`
	Datetime            time.Time       `gorm:"column:datetime"`
	State               string          `gorm:"column:state"`
	ShippingRate        decimal.Decimal `gorm:"column:shipping_rate;type:numeric"`
	ClientUsername      string          `gorm:"column:client_username"`
	AcceptanceTime      *time.Time      `gorm:"column:acceptance_time"`
	DeliverymanUsername *string         `gorm:"column:deliveryman_username"`
	DeliveryTime        *time.Time      `gorm:"column:delivery_time"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO represents one (food, quantity) line of an order.
// The table has no surrogate key; the (food_id, order_id) pair identifies
// the row.
type OrderDetailDTO struct {
	FoodID   int `gorm:"column:food_id"`
	OrderID  int `gorm:"column:order_id"`
	Quantity int `gorm:"column:quantity"`
}

// TableName specifies the database table name for order line entities.
func (OrderDetailDTO) TableName() string {
	return "order_details"
}
