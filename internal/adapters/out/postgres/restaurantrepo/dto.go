// Package restaurantrepo provides read-only lookup of restaurants. The
// catalog is managed by external tooling; this package only reconstructs the
// restaurant an order or a food references.
package restaurantrepo

import (
	"time"

	"ristorante/internal/core/domain/model/restaurant"
	"ristorante/internal/core/domain/model/user"
)

// RestaurantDTO represents the database structure for restaurants.
// The column names are the wire contract and must not change.
type RestaurantDTO struct {
	Username    string    `gorm:"column:username"`
	Name        string    `gorm:"column:name;primaryKey"`
	VatID       string    `gorm:"column:vat_id"`
	OpeningTime time.Time `gorm:"column:opening_time"`
	ClosingTime time.Time `gorm:"column:closing_time"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// toDomain converts a database row plus its resolved owner to a Restaurant.
func toDomain(dto RestaurantDTO, owner user.User) (restaurant.Restaurant, error) {
	return restaurant.NewRestaurant(owner, dto.Name, dto.VatID, dto.OpeningTime, dto.ClosingTime)
}
