// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"

	"restro/internal/domain/entity"
	domainrepo "restro/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks domain repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)

	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockBookingRepository mocks domain repository.BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	args := m.Called(ctx, booking)

	return args.Error(0)
}

// MockOrderRepository mocks domain repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

// MockRepositoryFactory mocks domain repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) UserRepo() domainrepo.UserRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.UserRepository)
}

func (m *MockRepositoryFactory) BookingRepo() domainrepo.BookingRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.BookingRepository)
}

func (m *MockRepositoryFactory) OrderRepo() domainrepo.OrderRepository {
	args := m.Called()

	return args.Get(0).(domainrepo.OrderRepository)
}

// MockTransactionManager mocks domain repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repoFactory domainrepo.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// PassthroughTransactionManager runs the callback directly against a fixed
// factory. Tests use it where transactional boundaries are not under test.
type PassthroughTransactionManager struct {
	Factory domainrepo.RepositoryFactory
}

func (m *PassthroughTransactionManager) Execute(_ context.Context, fn func(repoFactory domainrepo.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// StaticRepositoryFactory hands out fixed repository instances.
type StaticRepositoryFactory struct {
	Users    domainrepo.UserRepository
	Bookings domainrepo.BookingRepository
	Orders   domainrepo.OrderRepository
}

func (f *StaticRepositoryFactory) UserRepo() domainrepo.UserRepository {
	return f.Users
}

func (f *StaticRepositoryFactory) BookingRepo() domainrepo.BookingRepository {
	return f.Bookings
}

func (f *StaticRepositoryFactory) OrderRepo() domainrepo.OrderRepository {
	return f.Orders
}
