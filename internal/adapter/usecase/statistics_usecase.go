package usecase

import (
	"context"
	"errors"

	"bagpresto/internal/core/domain"
	"bagpresto/internal/core/port"
)

// StatisticsUseCase implements port.StatisticsUseCase.
type StatisticsUseCase struct {
	repo port.StatisticsRepository
}

// NewStatisticsUseCase wires the statistics service.
func NewStatisticsUseCase(repo port.StatisticsRepository) *StatisticsUseCase {
	return &StatisticsUseCase{repo: repo}
}

// Current returns the latest counters; zero counters when none were
// recorded yet.
func (u *StatisticsUseCase) Current(ctx context.Context) (domain.Statistics, error) {
	stats, err := u.repo.CurrentStatistics(ctx)
	if errors.Is(err, port.ErrNotFound) {
		return domain.Statistics{}, nil
	}
	if err != nil {
		return domain.Statistics{}, remote(err)
	}
	return *stats, nil
}
