package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	portsrepo "github.com/wiradata/treasury_app/internal/core/ports/repositories"
	portssvc "github.com/wiradata/treasury_app/internal/core/ports/services"
)

var (
	ErrPeriodClosed           = errors.New("accounting period is closed for posting")
	ErrRevisionReasonRequired = errors.New("revision reason required for soft-closed period")
)

// periodGuardService answers whether a date is postable, backed by the
// accounting_periods table. Months without a period row are open.
type periodGuardService struct {
	periodRepo portsrepo.PeriodRepository
}

// NewPeriodGuard creates the Period Guard used before create/post/edit/delete.
func NewPeriodGuard(periodRepo portsrepo.PeriodRepository) portssvc.PeriodGuard {
	return &periodGuardService{periodRepo: periodRepo}
}

var _ portssvc.PeriodGuard = (*periodGuardService)(nil)

func (s *periodGuardService) CheckPostable(ctx context.Context, date time.Time) (domain.PeriodCheck, error) {
	period, err := s.periodRepo.FindPeriodForDate(ctx, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.PeriodCheck{
				State:      domain.PeriodOpen,
				PeriodName: fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month())),
			}, nil
		}
		return domain.PeriodCheck{}, fmt.Errorf("failed to resolve accounting period: %w", err)
	}

	return domain.PeriodCheck{
		State:          period.State,
		PeriodName:     period.Name,
		RequiresReason: period.State == domain.PeriodSoftClosed,
	}, nil
}

// checkPeriodPostable consults the guard and enforces the revision-reason rule
// for soft-closed periods. Hard-closed periods always block.
func checkPeriodPostable(ctx context.Context, guard portssvc.PeriodGuard, date time.Time, revisionReason string, minReasonLen int) error {
	check, err := guard.CheckPostable(ctx, date)
	if err != nil {
		return err
	}

	switch check.State {
	case domain.PeriodHardClosed:
		return fmt.Errorf("%w: period %s", ErrPeriodClosed, check.PeriodName)
	case domain.PeriodSoftClosed:
		if check.RequiresReason && len(strings.TrimSpace(revisionReason)) < minReasonLen {
			return fmt.Errorf("%w: period %s needs a reason of at least %d characters", ErrRevisionReasonRequired, check.PeriodName, minReasonLen)
		}
	}
	return nil
}
