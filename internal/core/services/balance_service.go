package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
	"github.com/wiradata/treasury_app/internal/middleware"
)

// balanceService exposes bank account reads and the full-recompute balance
// repair. The posting engine recomputes inside its own atomic unit; this
// service is the out-of-band path used to self-heal after a missed trigger.
type balanceService struct {
	bankAccountRepo portsrepo.BankAccountRepositoryFacade
}

// NewBalanceService creates the balance recalculation service.
func NewBalanceService(bankAccountRepo portsrepo.BankAccountRepositoryFacade) portssvc.BalanceSvcFacade {
	return &balanceService{bankAccountRepo: bankAccountRepo}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) GetBankAccount(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	bankAccount, err := s.bankAccountRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find bank account %s: %w", bankAccountID, err)
	}
	return bankAccount, nil
}

func (s *balanceService) RecomputeBalance(ctx context.Context, bankAccountID string, actorID string) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balance, err := s.bankAccountRepo.RecalculateBalance(ctx, bankAccountID, actorID, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to recompute bank balance", slog.String("bank_account_id", bankAccountID), slog.String("error", err.Error()))
		return decimal.Zero, fmt.Errorf("failed to recompute balance for bank account %s: %w", bankAccountID, err)
	}

	logger.Info("Bank balance recomputed", slog.String("bank_account_id", bankAccountID), slog.String("running_balance", balance.String()))
	return balance, nil
}
