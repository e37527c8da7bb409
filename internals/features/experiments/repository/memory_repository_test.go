package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
)

func strPtr(s string) *string { return &s }

func TestMemoryRepositoryNestedOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	p := &model.ParticipantModel{ParticipantExternalID: "P1"}
	if err := repo.CreateParticipant(ctx, p); err != nil {
		t.Fatalf("CreateParticipant: %v", err)
	}

	var experimentIDs []string
	for i := 0; i < 2; i++ {
		e := &model.ExperimentModel{ExperimentParticipantID: p.ParticipantID}
		if err := repo.CreateExperiment(ctx, e); err != nil {
			t.Fatalf("CreateExperiment: %v", err)
		}
		experimentIDs = append(experimentIDs, e.ExperimentID)
	}
	// trials submitted out of order on the first experiment
	trials := []model.TrialModel{
		{TrialExperimentID: experimentIDs[0], TrialNumber: 1},
		{TrialExperimentID: experimentIDs[0], TrialNumber: 3},
		{TrialExperimentID: experimentIDs[0], TrialNumber: 2},
	}
	if err := repo.CreateTrials(ctx, trials); err != nil {
		t.Fatalf("CreateTrials: %v", err)
	}

	got, err := repo.FindParticipantWithExperiments(ctx, "P1")
	if err != nil {
		t.Fatalf("FindParticipantWithExperiments: %v", err)
	}
	if got == nil || len(got.Experiments) != 2 {
		t.Fatalf("expected 2 experiments, got %+v", got)
	}
	// newest experiment first
	if got.Experiments[0].ExperimentID != experimentIDs[1] {
		t.Fatalf("experiments not ordered newest-first")
	}
	nums := []int{}
	for _, tr := range got.Experiments[1].Trials {
		nums = append(nums, tr.TrialNumber)
	}
	if len(nums) != 3 || nums[0] != 1 || nums[1] != 2 || nums[2] != 3 {
		t.Fatalf("trials not ordered by trial number, got %v", nums)
	}
}

func TestMemoryRepositoryListFiltersAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for i := 1; i <= 6; i++ {
		lang := "french"
		if i%2 == 0 {
			lang = "portuguese"
		}
		p := &model.ParticipantModel{
			ParticipantExternalID:     fmt.Sprintf("P%02d", i),
			ParticipantNativeLanguage: strPtr(lang),
		}
		if err := repo.CreateParticipant(ctx, p); err != nil {
			t.Fatalf("CreateParticipant: %v", err)
		}
	}

	rows, total, err := repo.ListParticipants(ctx, ParticipantFilter{NativeLanguage: strPtr("french")}, 0, 10)
	if err != nil {
		t.Fatalf("ListParticipants: %v", err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("expected 3 french participants, got total=%d len=%d", total, len(rows))
	}
	// creation-descending: P05, P03, P01
	if rows[0].ParticipantExternalID != "P05" || rows[2].ParticipantExternalID != "P01" {
		t.Fatalf("unexpected ordering: %s .. %s", rows[0].ParticipantExternalID, rows[2].ParticipantExternalID)
	}

	rows, total, err = repo.ListParticipants(ctx, ParticipantFilter{}, 2, 2)
	if err != nil {
		t.Fatalf("ListParticipants: %v", err)
	}
	if total != 6 || len(rows) != 2 {
		t.Fatalf("expected page of 2 from 6, got total=%d len=%d", total, len(rows))
	}
	if rows[0].ParticipantExternalID != "P04" || rows[1].ParticipantExternalID != "P03" {
		t.Fatalf("unexpected page content: %s, %s", rows[0].ParticipantExternalID, rows[1].ParticipantExternalID)
	}
}

func TestMemoryRepositoryDuplicateExternalID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	if err := repo.CreateParticipant(ctx, &model.ParticipantModel{ParticipantExternalID: "P1"}); err != nil {
		t.Fatalf("CreateParticipant: %v", err)
	}
	if err := repo.CreateParticipant(ctx, &model.ParticipantModel{ParticipantExternalID: "P1"}); err == nil {
		t.Fatalf("expected duplicate external id to be rejected")
	}
}
