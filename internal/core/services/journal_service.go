package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
	"github.com/wiradata/treasury_app/internal/middleware"
)

// journalService provides read access to journals produced by posting.
// Journals are immutable once written; corrections happen through reversing
// entries, never edits.
type journalService struct {
	journalRepo portsrepo.JournalReader
}

// NewJournalService creates a read-only journal service.
func NewJournalService(journalRepo portsrepo.JournalReader) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// GetJournalByID retrieves a journal with its lines.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal by ID", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, fmt.Errorf("failed to find journal %s: %w", journalID, err)
	}

	lines, err := s.journalRepo.FindLinesByJournalID(ctx, journalID)
	if err != nil {
		logger.Error("Failed to fetch lines for journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to retrieve lines for journal %s: %w", journalID, apperrors.ErrInternal)
	}
	journal.Lines = lines

	return journal, nil
}
