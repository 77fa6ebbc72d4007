// Command migrate bootstraps the condoledger database: it applies the
// schema and, when SEED_DEMO=true, creates a demo condominium with
// sample accounts, units and charges to explore the library against.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/simaogato/condoledger-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/condoledger-backend/internal/config"
	"github.com/simaogato/condoledger-backend/internal/domain"
	"github.com/simaogato/condoledger-backend/internal/usecase/account"
	"github.com/simaogato/condoledger-backend/internal/usecase/balance"
	"github.com/simaogato/condoledger-backend/internal/usecase/billing"
	"github.com/simaogato/condoledger-backend/internal/usecase/ledger"
	"github.com/simaogato/condoledger-backend/internal/usecase/registry"
	"github.com/simaogato/condoledger-backend/internal/usecase/seeder"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	ctx := context.Background()

	db, err := postgres.NewDB(cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("schema up to date", "env", cfg.Env)

	if !cfg.SeedDemo {
		return
	}

	if err := seedDemo(ctx, db); err != nil {
		slog.Error("demo seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("demo condominium seeded")
}

// seedDemo walks the whole library surface once: registry, residents,
// accounts, charges, a settlement and a transfer between accounts.
func seedDemo(ctx context.Context, db *postgres.DB) error {
	condominiumRepo := postgres.NewCondominiumRepository(db)
	blockRepo := postgres.NewBlockRepository(db)
	unitRepo := postgres.NewUnitRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	accountRepo := postgres.NewAccountRepository(db)
	movementRepo := postgres.NewMovementRepository(db)
	transferRepo := postgres.NewTransferRepository(db)
	chargeRepo := postgres.NewChargeRepository(db)
	personRepo := postgres.NewPersonRepository(db)

	registryService := registry.NewRegistryService(
		condominiumRepo, blockRepo, unitRepo, categoryRepo, personRepo,
		seeder.NewCategorySeeder(categoryRepo),
	)
	accountService := account.NewAccountService(accountRepo, movementRepo, transferRepo, condominiumRepo)
	ledgerService := ledger.NewLedgerService(accountRepo, movementRepo, transferRepo, categoryRepo)
	billingService := billing.NewBillingService(chargeRepo, unitRepo, accountRepo)
	balanceService := balance.NewBalanceService(accountRepo, movementRepo)

	condominium, err := registryService.CreateCondominium(ctx, "Residencial Aurora", "Rua das Flores 120")
	if err != nil {
		return err
	}

	block, err := registryService.CreateBlock(ctx, condominium.ID, "A", "Tower A")
	if err != nil {
		return err
	}

	unit, err := registryService.CreateUnit(ctx, registry.CreateUnitInput{
		BlockID:       block.ID,
		Code:          "101",
		Kind:          domain.UnitKindApartment,
		Area:          74.5,
		IdealFraction: 0.025,
		Spaces:        1,
	})
	if err != nil {
		return err
	}

	if _, err := registryService.RegisterPerson(ctx, registry.RegisterPersonInput{
		UnitID: unit.ID,
		Name:   "Maria Souza",
		Email:  "maria@example.com",
		Phone:  "+55 11 91234-5678",
	}); err != nil {
		return err
	}

	checking, err := accountService.Create(ctx, account.CreateAccountInput{
		CondominiumID:  condominium.ID,
		Code:           "CC",
		Description:    "Checking account",
		Kind:           domain.AccountKindChecking,
		InitialBalance: decimal.RequireFromString("1000.00"),
	})
	if err != nil {
		return err
	}

	reserve, err := accountService.Create(ctx, account.CreateAccountInput{
		CondominiumID:  condominium.ID,
		Code:           "RF",
		Description:    "Reserve fund",
		Kind:           domain.AccountKindFund,
		InitialBalance: decimal.Zero,
	})
	if err != nil {
		return err
	}

	charges, err := billingService.IssueCharges(ctx, billing.IssueChargesInput{
		UnitID:       unit.ID,
		Number:       1,
		Installments: 12,
		Amount:       decimal.RequireFromString("350.00"),
		FirstDueDate: time.Now().AddDate(0, 0, 10),
	})
	if err != nil {
		return err
	}

	if _, err := billingService.SettleCharge(ctx, charges[0].ID, checking.ID); err != nil {
		return err
	}

	if _, err := ledgerService.Transfer(ctx, ledger.TransferInput{
		SourceAccountID:      checking.ID,
		DestinationAccountID: reserve.ID,
		Amount:               decimal.RequireFromString("200.00"),
		Description:          "monthly reserve allocation",
	}); err != nil {
		return err
	}

	for _, acc := range []*domain.Account{checking, reserve} {
		current, err := balanceService.CurrentBalance(ctx, acc.ID)
		if err != nil {
			return err
		}
		slog.Info("account seeded", "code", acc.Code, "balance", current.String())
	}

	return nil
}
