package service

import (
	"context"
	"fmt"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
)

// StatsService aggregates counts across the whole dataset.
type StatsService struct {
	repo repository.Repository
}

func NewStatsService(repo repository.Repository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) GetStats(ctx context.Context) (*dto.StatsDTO, error) {
	totalParticipants, err := s.repo.CountParticipants(ctx)
	if err != nil {
		return nil, NewInternalError(err)
	}
	totalExperiments, err := s.repo.CountExperiments(ctx)
	if err != nil {
		return nil, NewInternalError(err)
	}
	totalTrials, err := s.repo.CountTrials(ctx)
	if err != nil {
		return nil, NewInternalError(err)
	}
	correctTrials, err := s.repo.CountCorrectTrials(ctx)
	if err != nil {
		return nil, NewInternalError(err)
	}

	accuracy := "0%"
	if totalTrials > 0 {
		accuracy = fmt.Sprintf("%.2f%%", float64(correctTrials)/float64(totalTrials)*100)
	}

	return &dto.StatsDTO{
		TotalParticipants: totalParticipants,
		TotalExperiments:  totalExperiments,
		TotalTrials:       totalTrials,
		AverageAccuracy:   accuracy,
	}, nil
}
