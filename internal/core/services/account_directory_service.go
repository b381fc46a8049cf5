package services

import (
	"context"
	"fmt"

	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
)

// accountDirectoryService is the read-only chart-of-accounts lookup.
type accountDirectoryService struct {
	accountRepo portsrepo.AccountReader
}

// NewAccountDirectory creates the Account Directory collaborator.
func NewAccountDirectory(accountRepo portsrepo.AccountReader) portssvc.AccountDirectory {
	return &accountDirectoryService{accountRepo: accountRepo}
}

var _ portssvc.AccountDirectory = (*accountDirectoryService)(nil)

func (s *accountDirectoryService) Lookup(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account %s: %w", accountID, err)
	}
	return account, nil
}

func (s *accountDirectoryService) ListActive(ctx context.Context, typeFilter *domain.AccountType) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list active accounts: %w", err)
	}
	return accounts, nil
}
