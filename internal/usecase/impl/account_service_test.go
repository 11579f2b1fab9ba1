package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"restro/internal/domain/entity"
	domainerrors "restro/internal/domain/errors"
	"restro/internal/domain/repository"
	mockRepo "restro/internal/mocks/repository"
	mockSvc "restro/internal/mocks/service"
	"restro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockSvc.MockPasswordHasher{}
	tokenService := &mockSvc.MockTokenService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Registration runs inside a transaction; the passthrough manager hands
	// the same mocked user repository to the transactional callback.
	txManager := &mockRepo.PassthroughTransactionManager{
		Factory: &mockRepo.StaticRepositoryFactory{Users: userRepo},
	}

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		FirstName:   "Alice",
		LastName:    "Smith",
		Address:     "1 Main St",
		PhoneNumber: "0123456789",
		Username:    "alice",
		Password:    "secret123",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	input := validRegisterInput()
	generatedID := uuid.New()

	fixtures.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fixtures.userRepo.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fixtures.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			assert.NotEqual(t, input.Password, user.PasswordHash)
			user.ID = generatedID
		}).
		Return(nil)

	output, err := fixtures.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, generatedID, output.UserID)
	fixtures.userRepo.AssertExpectations(t)
	fixtures.hasher.AssertExpectations(t)
}

func TestAccountService_Register_MissingField(t *testing.T) {
	fixtures := createTestAccountService(t)

	input := validRegisterInput()
	input.PhoneNumber = ""

	_, err := fixtures.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fixtures.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_DuplicateUsername(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	input := validRegisterInput()

	fixtures.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fixtures.userRepo.On("FindByUsername", ctx, input.Username).
		Return(&entity.User{ID: uuid.New(), Username: input.Username}, nil)

	_, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	fixtures.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAccountService_Register_LosesInsertRace(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	input := validRegisterInput()

	// The pre-check sees no user but the insert hits the unique constraint:
	// a concurrent registration won the race. Still a duplicate-username error.
	fixtures.hasher.On("Hash", input.Password).Return("hashed_password", nil)
	fixtures.userRepo.On("FindByUsername", ctx, input.Username).Return(nil, repository.ErrUserNotFound)
	fixtures.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrUsernameExists)

	_, err := fixtures.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
}

func TestAccountService_Login_Success(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	registered := &entity.User{
		ID:           userID,
		Username:     "alice",
		PasswordHash: "stored_hash",
	}

	fixtures.userRepo.On("FindByUsername", ctx, "alice").Return(registered, nil)
	fixtures.hasher.On("Check", "secret123", "stored_hash").Return(true)
	fixtures.tokenService.On("GenerateAccessToken", userID).Return("access_token", nil)

	output, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.UserID)
	assert.Equal(t, "access_token", output.AccessToken)
}

func TestAccountService_Login_ReturnsSameUserID(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	registered := &entity.User{ID: userID, Username: "alice", PasswordHash: "stored_hash"}

	fixtures.userRepo.On("FindByUsername", ctx, "alice").Return(registered, nil)
	fixtures.hasher.On("Check", "secret123", "stored_hash").Return(true)
	fixtures.tokenService.On("GenerateAccessToken", userID).Return("access_token", nil)

	first, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	second, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)
}

func TestAccountService_Login_UnknownUsername(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	fixtures.userRepo.On("FindByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidUsername))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()

	registered := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "stored_hash"}

	fixtures.userRepo.On("FindByUsername", ctx, "alice").Return(registered, nil)
	fixtures.hasher.On("Check", "wrong", "stored_hash").Return(false)

	_, err := fixtures.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPassword))
	fixtures.tokenService.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
}

func TestAccountService_Login_MissingCredentials(t *testing.T) {
	fixtures := createTestAccountService(t)

	_, err := fixtures.service.Login(context.Background(), &usecase.LoginInput{Username: "", Password: ""})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_GetProfile_UnknownUser(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fixtures.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_GetProfile_Success(t *testing.T) {
	fixtures := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := &entity.User{ID: userID, Username: "alice", FirstName: "Alice"}
	fixtures.userRepo.On("FindByID", ctx, userID).Return(stored, nil)

	user, err := fixtures.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}
