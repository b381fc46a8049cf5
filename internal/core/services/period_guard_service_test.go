package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiradata/treasury_app/internal/apperrors"
	"github.com/wiradata/treasury_app/internal/core/domain"
	"github.com/wiradata/treasury_app/internal/core/services"
)

func TestPeriodGuard_NoPeriodRowMeansOpen(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)

	mockRepo := new(MockPeriodRepository)
	mockRepo.On("FindPeriodForDate", ctx, date).Return(nil, apperrors.ErrNotFound).Once()

	guard := services.NewPeriodGuard(mockRepo)
	check, err := guard.CheckPostable(ctx, date)

	require.NoError(t, err)
	assert.Equal(t, domain.PeriodOpen, check.State)
	assert.Equal(t, "2024-05", check.PeriodName)
	assert.False(t, check.RequiresReason)
}

func TestPeriodGuard_SoftClosedRequiresReason(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	mockRepo := new(MockPeriodRepository)
	mockRepo.On("FindPeriodForDate", ctx, date).Return(&domain.Period{
		Year:  2024,
		Month: time.March,
		Name:  "2024-03",
		State: domain.PeriodSoftClosed,
	}, nil).Once()

	guard := services.NewPeriodGuard(mockRepo)
	check, err := guard.CheckPostable(ctx, date)

	require.NoError(t, err)
	assert.Equal(t, domain.PeriodSoftClosed, check.State)
	assert.True(t, check.RequiresReason)
}

func TestPeriodGuard_HardClosed(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	mockRepo := new(MockPeriodRepository)
	mockRepo.On("FindPeriodForDate", ctx, date).Return(&domain.Period{
		Year:  2023,
		Month: time.December,
		Name:  "2023-12",
		State: domain.PeriodHardClosed,
	}, nil).Once()

	guard := services.NewPeriodGuard(mockRepo)
	check, err := guard.CheckPostable(ctx, date)

	require.NoError(t, err)
	assert.Equal(t, domain.PeriodHardClosed, check.State)
	assert.False(t, check.RequiresReason)
}
