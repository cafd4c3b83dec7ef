// Package userrepo provides data transfer objects and mapping functions for
// user persistence. One users table stores all four roles; the role column is
// the discriminant deciding which variant a row reconstructs into.
package userrepo

import (
	"github.com/shopspring/decimal"

	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/optional"
)

// UserDTO represents the database structure for persisting user accounts.
// The column names are the wire contract shared with other tools and must
// not change.
type UserDTO struct {
	Name        string           `gorm:"column:name"`
	Surname     string           `gorm:"column:surname"`
	Username    string           `gorm:"column:username;primaryKey"`
	Password    string           `gorm:"column:password"`
	Phone       string           `gorm:"column:phone"`
	Email       string           `gorm:"column:email"`
	City        string           `gorm:"column:city"`
	Street      string           `gorm:"column:street"`
	HouseNumber string           `gorm:"column:house_number"`
	Credit      *decimal.Decimal `gorm:"column:credit;type:numeric"`
	Role        string           `gorm:"column:role"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain entity to its database representation.
func fromDomain(u user.User) UserDTO {
	return UserDTO{
		Name:        u.Name(),
		Surname:     u.Surname(),
		Username:    u.Username(),
		Password:    u.Password(),
		Phone:       u.Phone(),
		Email:       u.Email(),
		City:        u.City(),
		Street:      u.Street(),
		HouseNumber: u.HouseNumber(),
		Credit:      u.Credit().ToPtr(),
		Role:        u.Role().SQLToken(),
	}
}

// toDomain converts a database row to the matching user variant.
//
// An unparseable role token is a recoverable error. A valid role whose credit
// shape is impossible makes NewUser panic, which is the intended signal for
// corrupted rows.
func toDomain(dto UserDTO) (user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return user.User{}, err
	}

	return user.NewUser(
		dto.Name, dto.Surname, dto.Username, dto.Password, dto.Phone, dto.Email,
		dto.City, dto.Street, dto.HouseNumber,
		role, optional.FromPtr(dto.Credit),
	)
}
