package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/condoledger-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of AccountRepository for testing
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	args := m.Called(ctx, id, balance)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAccountRepository) ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*domain.Account, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

// MockMovementRepository is a mock implementation of MovementRepository for testing
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Create(ctx context.Context, movement *domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Movement, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

// MockTransferRepository is a mock implementation of TransferRepository for testing
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) Create(ctx context.Context, transfer *domain.Transfer, debit, credit *domain.Movement) error {
	args := m.Called(ctx, transfer, debit, credit)
	return args.Error(0)
}

func (m *MockTransferRepository) CountByAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockTransferRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Transfer, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Transfer), args.Error(1)
}

// MockCategoryRepository is a mock implementation of CategoryRepository for testing
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByCondominium(ctx context.Context, condominiumID uuid.UUID) ([]*domain.Category, error) {
	args := m.Called(ctx, condominiumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func newTestAccount(balance string) *domain.Account {
	return &domain.Account{
		ID:             uuid.New(),
		CondominiumID:  uuid.New(),
		Code:           "CC",
		Kind:           domain.AccountKindChecking,
		InitialBalance: decimal.RequireFromString(balance),
		CurrentBalance: decimal.RequireFromString(balance),
	}
}

func newService() (*LedgerService, *MockAccountRepository, *MockMovementRepository, *MockTransferRepository, *MockCategoryRepository) {
	accountRepo := new(MockAccountRepository)
	movementRepo := new(MockMovementRepository)
	transferRepo := new(MockTransferRepository)
	categoryRepo := new(MockCategoryRepository)
	service := NewLedgerService(accountRepo, movementRepo, transferRepo, categoryRepo)
	return service, accountRepo, movementRepo, transferRepo, categoryRepo
}

func TestTransfer_Success(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, _, transferRepo, _ := newService()

	source := newTestAccount("100.00")
	destination := newTestAccount("0.00")
	amount := decimal.RequireFromString("50.00")

	accountRepo.On("GetByID", ctx, source.ID).Return(source, nil)
	accountRepo.On("GetByID", ctx, destination.ID).Return(destination, nil)

	transferRepo.On("Create", ctx, mock.AnythingOfType("*domain.Transfer"),
		mock.AnythingOfType("*domain.Movement"), mock.AnythingOfType("*domain.Movement")).
		Run(func(args mock.Arguments) {
			transfer := args.Get(1).(*domain.Transfer)
			debit := args.Get(2).(*domain.Movement)
			credit := args.Get(3).(*domain.Movement)

			assert.Equal(t, source.ID, transfer.SourceAccountID)
			assert.Equal(t, destination.ID, transfer.DestinationAccountID)
			assert.True(t, transfer.Amount.Equal(amount))

			// Matched pair: equal magnitude, opposite sign, right accounts
			assert.Equal(t, source.ID, debit.AccountID)
			assert.Equal(t, destination.ID, credit.AccountID)
			assert.True(t, debit.Amount.Equal(amount.Neg()))
			assert.True(t, credit.Amount.Equal(amount))
			assert.True(t, debit.Amount.Add(credit.Amount).IsZero())
		}).
		Return(nil)

	transfer, err := service.Transfer(ctx, TransferInput{
		SourceAccountID:      source.ID,
		DestinationAccountID: destination.ID,
		Amount:               amount,
		Description:          "monthly reserve allocation",
	})

	assert.NoError(t, err)
	assert.NotNil(t, transfer)
	transferRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestTransfer_SameAccount(t *testing.T) {
	ctx := context.Background()
	service, _, _, transferRepo, _ := newService()

	accountID := uuid.New()

	transfer, err := service.Transfer(ctx, TransferInput{
		SourceAccountID:      accountID,
		DestinationAccountID: accountID,
		Amount:               decimal.RequireFromString("10.00"),
	})

	assert.Nil(t, transfer)
	assert.ErrorIs(t, err, domain.ErrInvalidTransfer)
	transferRepo.AssertNotCalled(t, "Create")
}

func TestTransfer_NonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	service, _, _, transferRepo, _ := newService()

	for _, amount := range []string{"0", "-5.00"} {
		transfer, err := service.Transfer(ctx, TransferInput{
			SourceAccountID:      uuid.New(),
			DestinationAccountID: uuid.New(),
			Amount:               decimal.RequireFromString(amount),
		})

		assert.Nil(t, transfer)
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	}

	transferRepo.AssertNotCalled(t, "Create")
}

func TestTransfer_SourceAccountMissing(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, _, transferRepo, _ := newService()

	sourceID := uuid.New()
	destinationID := uuid.New()

	accountRepo.On("GetByID", ctx, sourceID).Return(nil, domain.ErrAccountNotFound)

	transfer, err := service.Transfer(ctx, TransferInput{
		SourceAccountID:      sourceID,
		DestinationAccountID: destinationID,
		Amount:               decimal.RequireFromString("10.00"),
	})

	assert.Nil(t, transfer)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	transferRepo.AssertNotCalled(t, "Create")
}

func TestTransfer_StoreFailure(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, _, transferRepo, _ := newService()

	source := newTestAccount("100.00")
	destination := newTestAccount("0.00")

	accountRepo.On("GetByID", ctx, source.ID).Return(source, nil)
	accountRepo.On("GetByID", ctx, destination.ID).Return(destination, nil)
	transferRepo.On("Create", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrStoreUnavailable)

	transfer, err := service.Transfer(ctx, TransferInput{
		SourceAccountID:      source.ID,
		DestinationAccountID: destination.ID,
		Amount:               decimal.RequireFromString("10.00"),
	})

	// The failure is surfaced, never swallowed; the repository scope
	// guarantees no partial leg was written
	assert.Nil(t, transfer)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestPostMovement_Success(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, movementRepo, _, _ := newService()

	account := newTestAccount("100.00")

	accountRepo.On("GetByID", ctx, account.ID).Return(account, nil)
	movementRepo.On("Create", ctx, mock.AnythingOfType("*domain.Movement")).Return(nil)

	movement, err := service.PostMovement(ctx, PostMovementInput{
		AccountID:   account.ID,
		Amount:      decimal.RequireFromString("-30.00"),
		Description: "elevator maintenance",
	})

	assert.NoError(t, err)
	assert.NotNil(t, movement)
	assert.Equal(t, account.ID, movement.AccountID)
	assert.True(t, movement.Amount.Equal(decimal.RequireFromString("-30.00")))
	assert.False(t, movement.OccurredAt.IsZero())
	movementRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestPostMovement_ZeroAmount(t *testing.T) {
	ctx := context.Background()
	service, _, movementRepo, _, _ := newService()

	movement, err := service.PostMovement(ctx, PostMovementInput{
		AccountID: uuid.New(),
		Amount:    decimal.Zero,
	})

	assert.Nil(t, movement)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	movementRepo.AssertNotCalled(t, "Create")
}

func TestPostMovement_AccountMissing(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, movementRepo, _, _ := newService()

	accountID := uuid.New()
	accountRepo.On("GetByID", ctx, accountID).Return(nil, domain.ErrAccountNotFound)

	movement, err := service.PostMovement(ctx, PostMovementInput{
		AccountID: accountID,
		Amount:    decimal.RequireFromString("10.00"),
	})

	assert.Nil(t, movement)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	movementRepo.AssertNotCalled(t, "Create")
}

func TestPostMovement_UnknownCategory(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, movementRepo, _, categoryRepo := newService()

	account := newTestAccount("0.00")
	categoryID := uuid.New()

	accountRepo.On("GetByID", ctx, account.ID).Return(account, nil)
	categoryRepo.On("GetByID", ctx, categoryID).Return(nil, domain.ErrCategoryNotFound)

	movement, err := service.PostMovement(ctx, PostMovementInput{
		AccountID:  account.ID,
		Amount:     decimal.RequireFromString("10.00"),
		CategoryID: &categoryID,
	})

	assert.Nil(t, movement)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	movementRepo.AssertNotCalled(t, "Create")
}

func TestListMovements_OrderedPassthrough(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, movementRepo, _, _ := newService()

	account := newTestAccount("0.00")
	now := time.Now()
	ledger := []*domain.Movement{
		{ID: uuid.New(), AccountID: account.ID, Amount: decimal.RequireFromString("10.00"), OccurredAt: now.Add(-time.Hour)},
		{ID: uuid.New(), AccountID: account.ID, Amount: decimal.RequireFromString("-4.00"), OccurredAt: now},
	}

	accountRepo.On("GetByID", ctx, account.ID).Return(account, nil)
	movementRepo.On("ListByAccount", ctx, account.ID).Return(ledger, nil)

	movements, err := service.ListMovements(ctx, account.ID)

	assert.NoError(t, err)
	assert.Equal(t, ledger, movements)
}

func TestListMovements_AccountMissing(t *testing.T) {
	ctx := context.Background()
	service, accountRepo, movementRepo, _, _ := newService()

	accountID := uuid.New()
	accountRepo.On("GetByID", ctx, accountID).Return(nil, domain.ErrAccountNotFound)

	movements, err := service.ListMovements(ctx, accountID)

	assert.Nil(t, movements)
	assert.True(t, errors.Is(err, domain.ErrAccountNotFound))
	movementRepo.AssertNotCalled(t, "ListByAccount")
}
