package http

import (
	"time"

	"github.com/shopspring/decimal"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/core/domain/model/user"
)

// Error is the uniform error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterUserRequest is the payload of POST /api/v1/users.
type RegisterUserRequest struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	City        string `json:"city"`
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Role        string `json:"role"`
}

// UserResponse describes an account. The password never leaves the server.
type UserResponse struct {
	Name        string           `json:"name"`
	Surname     string           `json:"surname"`
	Username    string           `json:"username"`
	Phone       string           `json:"phone"`
	Email       string           `json:"email"`
	City        string           `json:"city"`
	Street      string           `json:"street"`
	HouseNumber string           `json:"houseNumber"`
	Role        string           `json:"role"`
	Credit      *decimal.Decimal `json:"credit,omitempty"`
}

// PlaceOrderRequest is the payload of POST /api/v1/orders.
// Foods maps food ids to requested quantities.
type PlaceOrderRequest struct {
	ClientUsername string          `json:"clientUsername"`
	RestaurantName string          `json:"restaurantName"`
	ShippingRate   decimal.Decimal `json:"shippingRate"`
	Foods          map[int]int     `json:"foods"`
}

// AcceptOrderRequest is the payload of POST /api/v1/orders/:id/accept.
type AcceptOrderRequest struct {
	DeliverymanUsername string `json:"deliverymanUsername"`
}

// OrderLineResponse describes one food line of an order.
type OrderLineResponse struct {
	FoodID   int             `json:"foodId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// OrderResponse describes an order with its lifecycle data. The acceptance
// and delivery fields appear only once the corresponding transition happened.
type OrderResponse struct {
	ID             int                 `json:"id"`
	RestaurantName string              `json:"restaurantName"`
	ClientUsername string              `json:"clientUsername"`
	CreatedAt      time.Time           `json:"createdAt"`
	ShippingRate   decimal.Decimal     `json:"shippingRate"`
	State          string              `json:"state"`
	Foods          []OrderLineResponse `json:"foods"`
	AcceptanceTime *time.Time          `json:"acceptanceTime,omitempty"`
	Deliveryman    *string             `json:"deliveryman,omitempty"`
	DeliveryTime   *time.Time          `json:"deliveryTime,omitempty"`
}

func toUserResponse(u user.User) UserResponse {
	return UserResponse{
		Name:        u.Name(),
		Surname:     u.Surname(),
		Username:    u.Username(),
		Phone:       u.Phone(),
		Email:       u.Email(),
		City:        u.City(),
		Street:      u.Street(),
		HouseNumber: u.HouseNumber(),
		Role:        u.Role().String(),
		Credit:      u.Credit().ToPtr(),
	}
}

func toOrderResponse(o *order.Order) OrderResponse {
	foods := make([]OrderLineResponse, 0, len(o.FoodRequested()))
	for id, line := range o.FoodRequested() {
		foods = append(foods, OrderLineResponse{
			FoodID:   id,
			Name:     line.Food.Name(),
			Price:    line.Food.Price(),
			Quantity: line.Quantity,
		})
	}

	resp := OrderResponse{
		ID:             o.ID(),
		RestaurantName: o.Restaurant().Name(),
		ClientUsername: o.Client().Username(),
		CreatedAt:      o.CreatedAt(),
		ShippingRate:   o.ShippingRate(),
		State:          o.Status().String(),
		Foods:          foods,
		AcceptanceTime: o.AcceptanceTime().ToPtr(),
		DeliveryTime:   o.DeliveryTime().ToPtr(),
	}

	if dm, ok := o.Deliveryman().Get(); ok {
		username := dm.Username()
		resp.Deliveryman = &username
	}

	return resp
}
