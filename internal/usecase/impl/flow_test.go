package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"restro/config"
	"restro/internal/domain/entity"
	domainerrors "restro/internal/domain/errors"
	"restro/internal/domain/repository"
	"restro/internal/infra/auth"
	mockRepo "restro/internal/mocks/repository"
	"restro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserRepo is an in-memory UserRepository honoring the same contract as
// the postgres implementation: IDs minted at insert, duplicate usernames
// rejected with ErrUsernameExists.
type memUserRepo struct {
	mu     sync.Mutex
	byID   map[uuid.UUID]*entity.User
	byName map[string]uuid.UUID
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:   make(map[uuid.UUID]*entity.User),
		byName: make(map[string]uuid.UUID),
	}
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byName[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *r.byID[id]

	return &copied, nil
}

func (r *memUserRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.byID[id]

	return ok, nil
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[user.Username]; taken {
		return repository.ErrUsernameExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	copied := *user
	r.byID[user.ID] = &copied
	r.byName[user.Username] = user.ID

	return nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings []*entity.Booking
}

func (r *memBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	copied := *booking
	r.bookings = append(r.bookings, &copied)

	return nil
}

type memOrderRepo struct {
	mu     sync.Mutex
	orders []*entity.Order
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	copied := *order
	r.orders = append(r.orders, &copied)

	return nil
}

type flowFixtures struct {
	accounts usecase.AccountUsecase
	bookings usecase.BookingUsecase
	orders   usecase.OrderUsecase
	userRepo *memUserRepo
	orderDB  *memOrderRepo
}

// createFlowFixtures wires the real services against in-memory stores with
// the real bcrypt hasher and JWT service, at the cheapest bcrypt cost.
func createFlowFixtures(t *testing.T) flowFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userRepo := newMemUserRepo()
	bookingRepo := &memBookingRepo{}
	orderRepo := &memOrderRepo{}
	txManager := &mockRepo.PassthroughTransactionManager{
		Factory: &mockRepo.StaticRepositoryFactory{
			Users:    userRepo,
			Bookings: bookingRepo,
			Orders:   orderRepo,
		},
	}

	cfg := &config.Config{}
	cfg.SecretKey.Access = "flow-test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	hasher := auth.NewBcryptHasher(cfg)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return flowFixtures{
		accounts: NewAccountService(AccountServiceParams{
			TxManager:    txManager,
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       logger,
		}),
		bookings: NewBookingService(BookingServiceParams{
			UserRepo:    userRepo,
			BookingRepo: bookingRepo,
			Logger:      logger,
		}),
		orders: NewOrderService(OrderServiceParams{
			UserRepo:  userRepo,
			OrderRepo: orderRepo,
			Logger:    logger,
		}),
		userRepo: userRepo,
		orderDB:  orderRepo,
	}
}

// TestFlow_RegisterLoginOrder walks the whole customer journey through the
// real services: register an account, log in with the same credentials,
// book a table and place an order under the returned userid.
func TestFlow_RegisterLoginOrder(t *testing.T) {
	f := createFlowFixtures(t)
	ctx := context.Background()

	registered, err := f.accounts.Register(ctx, &usecase.RegisterInput{
		FirstName:   "Grace",
		LastName:    "Hopper",
		Address:     "1 Harbor Way",
		PhoneNumber: "0987654321",
		Username:    "grace",
		Password:    "c0mp1ler",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, registered.UserID)

	// The stored hash must be salted, never the raw password.
	stored, err := f.userRepo.FindByUsername(ctx, "grace")
	require.NoError(t, err)
	assert.NotEqual(t, "c0mp1ler", stored.PasswordHash)

	loggedIn, err := f.accounts.Login(ctx, &usecase.LoginInput{
		Username: "grace",
		Password: "c0mp1ler",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.UserID, loggedIn.UserID)
	assert.NotEmpty(t, loggedIn.AccessToken)

	booking, err := f.bookings.CreateBooking(ctx, &usecase.CreateBookingInput{
		UserID:             registered.UserID,
		PeopleCount:        2,
		SpecialRequirement: "near the window",
		BookingTime:        "2025-06-01T19:30:00",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, booking.BookingID)

	order, err := f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:        registered.UserID,
		ItemName:      "Margherita Pizza",
		Price:         12.5,
		Address:       "1 Harbor Way",
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.OrderID)
	require.Len(t, f.orderDB.orders, 1)
	assert.Equal(t, registered.UserID, f.orderDB.orders[0].UserID)
}

// TestFlow_DuplicateRegistrationAndWrongPassword covers the two credential
// failure paths end to end against the real bcrypt hasher.
func TestFlow_DuplicateRegistrationAndWrongPassword(t *testing.T) {
	f := createFlowFixtures(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		FirstName:   "Grace",
		LastName:    "Hopper",
		Address:     "1 Harbor Way",
		PhoneNumber: "0987654321",
		Username:    "grace",
		Password:    "c0mp1ler",
	}
	_, err := f.accounts.Register(ctx, input)
	require.NoError(t, err)

	_, err = f.accounts.Register(ctx, input)
	require.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	_, err = f.accounts.Login(ctx, &usecase.LoginInput{Username: "grace", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidPassword)

	_, err = f.accounts.Login(ctx, &usecase.LoginInput{Username: "nobody", Password: "c0mp1ler"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidUsername)
}

// TestFlow_UnknownUserRejectedEverywhere checks that bookings and orders
// against an unregistered userid both fail with the invalid-userid error.
func TestFlow_UnknownUserRejectedEverywhere(t *testing.T) {
	f := createFlowFixtures(t)
	ctx := context.Background()
	ghost := uuid.New()

	_, err := f.bookings.CreateBooking(ctx, &usecase.CreateBookingInput{
		UserID:             ghost,
		PeopleCount:        2,
		SpecialRequirement: "none",
		BookingTime:        "2025-06-01T19:30:00",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = f.orders.PlaceOrder(ctx, &usecase.PlaceOrderInput{
		UserID:        ghost,
		ItemName:      "Margherita Pizza",
		Price:         12.5,
		Address:       "1 Harbor Way",
		PaymentMethod: "card",
	})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
