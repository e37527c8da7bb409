package service

import (
	"context"
	"testing"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
)

func TestGetStatsEmpty(t *testing.T) {
	svc := NewStatsService(repository.NewMemoryRepository())

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalParticipants != 0 || stats.TotalExperiments != 0 || stats.TotalTrials != 0 {
		t.Fatalf("expected zero totals, got %+v", stats)
	}
	if stats.AverageAccuracy != "0%" {
		t.Fatalf("accuracy = %q, want \"0%%\"", stats.AverageAccuracy)
	}
}

func TestGetStatsAccuracy(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	ingest := NewIngestionService(repo)
	svc := NewStatsService(repo)

	trials := make([]dto.TrialRecord, 0, 10)
	for i := 1; i <= 10; i++ {
		trials = append(trials, trial(i, i <= 7))
	}
	if _, err := ingest.SubmitResults(ctx, resultsRequest("P1", dto.ResultsParticipant{}, trials...), "1.2.3.4"); err != nil {
		t.Fatalf("SubmitResults: %v", err)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalParticipants != 1 || stats.TotalExperiments != 1 || stats.TotalTrials != 10 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.AverageAccuracy != "70.00%" {
		t.Fatalf("accuracy = %q, want \"70.00%%\"", stats.AverageAccuracy)
	}
}
