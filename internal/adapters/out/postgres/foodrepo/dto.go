// Package foodrepo provides read-only lookup of catalog foods.
package foodrepo

import (
	"github.com/shopspring/decimal"

	"ristorante/internal/core/domain/model/food"
)

// FoodDTO represents the database structure for catalog foods.
// The column names are the wire contract and must not change.
type FoodDTO struct {
	ID             int             `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string          `gorm:"column:name"`
	RestaurantName string          `gorm:"column:restaurant_name"`
	Price          decimal.Decimal `gorm:"column:price;type:numeric"`
	FoodType       string          `gorm:"column:food_type"`
}

// TableName specifies the database table name for food entities.
func (FoodDTO) TableName() string {
	return "foods"
}

// toDomain converts a database row to a Food entity.
func toDomain(dto FoodDTO) (food.Food, error) {
	return food.NewFood(dto.ID, dto.Name, dto.RestaurantName, dto.Price, dto.FoodType)
}
