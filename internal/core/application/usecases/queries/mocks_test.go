package queries_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"ristorante/internal/core/domain/model/food"
	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/core/domain/model/restaurant"
	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Find(
	ctx context.Context, id int,
) result.Result[optional.Optional[*order.Order]] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[optional.Optional[*order.Order]])
}

func (m *MockOrderRepository) Insert(
	ctx context.Context,
	rest restaurant.Restaurant,
	createdAt time.Time,
	shippingRate decimal.Decimal,
	client user.User,
	foodRequested map[int]order.Line,
) result.Result[*order.Order] {
	args := m.Called(ctx, rest, createdAt, shippingRate, client, foodRequested)
	return args.Get(0).(result.Result[*order.Order])
}

func (m *MockOrderRepository) ListByState(
	ctx context.Context, status order.Status,
) result.Result[[]*order.Order] {
	args := m.Called(ctx, status)
	return args.Get(0).(result.Result[[]*order.Order])
}

func (m *MockOrderRepository) MarkReady(
	ctx context.Context, o *order.Order,
) result.Result[*order.Order] {
	args := m.Called(ctx, o)
	return args.Get(0).(result.Result[*order.Order])
}

func (m *MockOrderRepository) Accept(
	ctx context.Context, o *order.Order, acceptanceTime time.Time, deliveryman user.User,
) result.Result[*order.Order] {
	args := m.Called(ctx, o, acceptanceTime, deliveryman)
	return args.Get(0).(result.Result[*order.Order])
}

func (m *MockOrderRepository) Deliver(
	ctx context.Context, o *order.Order, deliveryTime time.Time,
) result.Result[*order.Order] {
	args := m.Called(ctx, o, deliveryTime)
	return args.Get(0).(result.Result[*order.Order])
}

func (m *MockOrderRepository) Cancel(
	ctx context.Context, o *order.Order,
) result.Result[*order.Order] {
	args := m.Called(ctx, o)
	return args.Get(0).(result.Result[*order.Order])
}

func (m *MockOrderRepository) InsertFoodRequested(
	ctx context.Context, orderID int, foodRequested map[int]order.Line,
) result.Result[map[int]order.Line] {
	args := m.Called(ctx, orderID, foodRequested)
	return args.Get(0).(result.Result[map[int]order.Line])
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Find(
	ctx context.Context, username string,
) result.Result[optional.Optional[user.User]] {
	args := m.Called(ctx, username)
	return args.Get(0).(result.Result[optional.Optional[user.User]])
}

func (m *MockUserRepository) Insert(
	ctx context.Context,
	name, surname, username, password, phone, email, city, street, houseNumber string,
	role user.Role,
) result.Result[user.User] {
	args := m.Called(ctx, name, surname, username, password, phone, email, city, street, houseNumber, role)
	return args.Get(0).(result.Result[user.User])
}

func (m *MockUserRepository) UpdateCredit(
	ctx context.Context, u user.User, credit decimal.Decimal,
) result.Result[user.User] {
	args := m.Called(ctx, u, credit)
	return args.Get(0).(result.Result[user.User])
}

func fixtureClient() user.User {
	u, err := user.NewUser(
		"Mario", "Rossi", "mario.rossi", "hash", "3331234567",
		"mario.rossi@example.com", "Pisa", "Via Roma", "12",
		user.Client, optional.Some(decimal.NewFromInt(20)))
	if err != nil {
		panic(err)
	}
	return u
}

func fixtureWaitingOrder() *order.Order {
	owner, err := user.NewUser(
		"Luigi", "Verdi", "luigi.verdi", "hash", "0501234567",
		"luigi.verdi@example.com", "Pisa", "Lungarno Pacinotti", "24",
		user.RestaurantOwner, optional.None[decimal.Decimal]())
	if err != nil {
		panic(err)
	}
	rest, err := restaurant.NewRestaurant(
		owner, "Da Luigi", "IT01234567890",
		time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}
	margherita, err := food.NewFood(3, "Margherita", "Da Luigi", decimal.NewFromFloat(6.50), "pizza")
	if err != nil {
		panic(err)
	}
	o, err := order.NewWaitingOrder(
		7, rest,
		time.Date(2024, 3, 15, 19, 30, 0, 0, time.UTC),
		decimal.NewFromFloat(2.50), fixtureClient(),
		map[int]order.Line{3: {Food: margherita, Quantity: 2}})
	if err != nil {
		panic(err)
	}
	return o
}
