package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bagpresto/internal/core/apperr"
	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
	"bagpresto/internal/core/port/mocks"
)

func TestStatisticsCurrent(t *testing.T) {
	repo := mocks.NewMockStatisticsRepository(t)
	repo.EXPECT().CurrentStatistics(mock.Anything).Return(&domain.Statistics{TotalPartners: 12}, nil).Once()
	repo.EXPECT().CurrentStatistics(mock.Anything).Return(nil, port.ErrNotFound).Once()
	repo.EXPECT().CurrentStatistics(mock.Anything).Return(nil, errors.New("down")).Once()

	uc := NewStatisticsUseCase(repo)

	stats, err := uc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalPartners)

	stats, err = uc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Statistics{}, stats)

	_, err = uc.Current(context.Background())
	assert.Equal(t, apperr.CodeRemote, apperr.CodeOf(err))
}
