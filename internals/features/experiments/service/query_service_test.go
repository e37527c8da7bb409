package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
)

func seedParticipants(t *testing.T, repo repository.Repository, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= n; i++ {
		lang := "french"
		if i%2 == 0 {
			lang = "portuguese"
		}
		err := repo.CreateParticipant(ctx, &model.ParticipantModel{
			ParticipantExternalID:     fmt.Sprintf("P%03d", i),
			ParticipantNativeLanguage: &lang,
		})
		if err != nil {
			t.Fatalf("seed participant %d: %v", i, err)
		}
	}
}

func TestListParticipantsPagination(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewQueryService(repo)
	seedParticipants(t, repo, 25)

	page, err := svc.ListParticipants(ctx, ListParticipantsQuery{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("ListParticipants: %v", err)
	}
	if len(page) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(page))
	}
	// creation-descending: page 2 starts at the 15th-created participant
	if page[0].ParticipantID != "P015" || page[9].ParticipantID != "P006" {
		t.Fatalf("unexpected page window: %s .. %s", page[0].ParticipantID, page[9].ParticipantID)
	}
}

func TestListParticipantsLimitClamp(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewQueryService(repo)
	seedParticipants(t, repo, 101)

	page, err := svc.ListParticipants(ctx, ListParticipantsQuery{Page: 1, Limit: 500})
	if err != nil {
		t.Fatalf("ListParticipants: %v", err)
	}
	if len(page) != 100 {
		t.Fatalf("limit not clamped to 100, got %d rows", len(page))
	}
}

func TestListParticipantsFilters(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	svc := NewQueryService(repo)
	seedParticipants(t, repo, 6)

	page, err := svc.ListParticipants(ctx, ListParticipantsQuery{NativeLanguage: "french"})
	if err != nil {
		t.Fatalf("ListParticipants: %v", err)
	}
	if len(page) != 3 {
		t.Fatalf("expected 3 french participants, got %d", len(page))
	}
	for _, p := range page {
		if p.NativeLanguage == nil || *p.NativeLanguage != "french" {
			t.Fatalf("filter leaked participant %s", p.ParticipantID)
		}
	}

	// out-of-enum value is ignored, not an error
	page, err = svc.ListParticipants(ctx, ListParticipantsQuery{NativeLanguage: "klingon"})
	if err != nil {
		t.Fatalf("ListParticipants with bogus filter: %v", err)
	}
	if len(page) != 6 {
		t.Fatalf("bogus filter should be ignored, got %d rows", len(page))
	}
}

func TestGetByParticipantIDNotFound(t *testing.T) {
	svc := NewQueryService(repository.NewMemoryRepository())
	_, err := svc.GetByParticipantID(context.Background(), "missing")
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestProcessParticipants(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryRepository()
	ingest := NewIngestionService(repo)
	svc := NewQueryService(repo)

	if _, err := ingest.SubmitResults(ctx, resultsRequest("P1", dto.ResultsParticipant{}, trial(1, true)), "1.2.3.4"); err != nil {
		t.Fatalf("SubmitResults: %v", err)
	}

	// one of two ids exists: partial hit is a success
	resp, err := svc.ProcessParticipants(ctx, &dto.ProcessParticipantsRequest{ParticipantIDs: []string{"P1", "P404"}})
	if err != nil {
		t.Fatalf("ProcessParticipants: %v", err)
	}
	if resp.Count != 1 || len(resp.Data) != 1 || resp.Data[0].ParticipantID != "P1" {
		t.Fatalf("unexpected batch result: %+v", resp)
	}
	if len(resp.Data[0].Experiments) != 1 || len(resp.Data[0].Experiments[0].Trials) != 1 {
		t.Fatalf("nested data missing: %+v", resp.Data[0])
	}

	// no hits at all is not found
	_, err = svc.ProcessParticipants(ctx, &dto.ProcessParticipantsRequest{ParticipantIDs: []string{"P404"}})
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}

	// empty list fails validation before touching the repository
	_, err = svc.ProcessParticipants(ctx, &dto.ProcessParticipantsRequest{ParticipantIDs: []string{}})
	se, ok = AsServiceError(err)
	if !ok || se.Code != ErrorInvalid {
		t.Fatalf("expected validation error, got %v", err)
	}
}
