package commands_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"ristorante/internal/core/application/usecases/commands"
	"ristorante/internal/core/domain/model/food"
	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/core/domain/model/restaurant"
	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/core/ports"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

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

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) FindByName(
	ctx context.Context, name string,
) result.Result[optional.Optional[restaurant.Restaurant]] {
	args := m.Called(ctx, name)
	return args.Get(0).(result.Result[optional.Optional[restaurant.Restaurant]])
}

func (m *MockRestaurantRepository) FindByUsername(
	ctx context.Context, username string,
) result.Result[optional.Optional[restaurant.Restaurant]] {
	args := m.Called(ctx, username)
	return args.Get(0).(result.Result[optional.Optional[restaurant.Restaurant]])
}

type MockFoodRepository struct{ mock.Mock }

func (m *MockFoodRepository) FindByID(
	ctx context.Context, id int,
) result.Result[optional.Optional[food.Food]] {
	args := m.Called(ctx, id)
	return args.Get(0).(result.Result[optional.Optional[food.Food]])
}

// MockUnitOfWork satisfies every unit of work flavour the handlers accept.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

func (m *MockUnitOfWork) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// Shared fixtures. Every helper panics on construction failure because a
// broken fixture is a broken test, not a condition to assert on.

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

func fixtureDeliveryman() user.User {
	u, err := user.NewUser(
		"Luca", "Bianchi", "luca.bianchi", "hash", "3477654321",
		"luca.bianchi@example.com", "Pisa", "Via Garibaldi", "3",
		user.Deliveryman, optional.Some(decimal.Zero))
	if err != nil {
		panic(err)
	}
	return u
}

func fixtureRestaurant() restaurant.Restaurant {
	owner, err := user.NewUser(
		"Luigi", "Verdi", "luigi.verdi", "hash", "0501234567",
		"luigi.verdi@example.com", "Pisa", "Lungarno Pacinotti", "24",
		user.RestaurantOwner, optional.None[decimal.Decimal]())
	if err != nil {
		panic(err)
	}
	r, err := restaurant.NewRestaurant(
		owner, "Da Luigi", "IT01234567890",
		time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}
	return r
}

func fixtureFood() food.Food {
	f, err := food.NewFood(3, "Margherita", "Da Luigi", decimal.NewFromFloat(6.50), "pizza")
	if err != nil {
		panic(err)
	}
	return f
}

func fixtureLines() map[int]order.Line {
	return map[int]order.Line{3: {Food: fixtureFood(), Quantity: 2}}
}

func fixtureWaitingOrder() *order.Order {
	o, err := order.NewWaitingOrder(
		7, fixtureRestaurant(),
		time.Date(2024, 3, 15, 19, 30, 0, 0, time.UTC),
		decimal.NewFromFloat(2.50), fixtureClient(), fixtureLines())
	if err != nil {
		panic(err)
	}
	return o
}

func fixtureReadyOrder() *order.Order {
	ready, err := fixtureWaitingOrder().MarkReady()
	if err != nil {
		panic(err)
	}
	return ready
}

func fixtureAcceptedOrder() *order.Order {
	accepted, err := fixtureReadyOrder().Accept(
		time.Date(2024, 3, 15, 19, 45, 0, 0, time.UTC), fixtureDeliveryman())
	if err != nil {
		panic(err)
	}
	return accepted
}
