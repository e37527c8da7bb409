package service

import (
	"context"
	"testing"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
)

func newQuestionnaireFixture(t *testing.T) (*QuestionnaireService, repository.Repository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	if err := repo.CreateParticipant(context.Background(), &model.ParticipantModel{ParticipantExternalID: "P1"}); err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	return NewQuestionnaireService(repo), repo
}

func TestSubmitQuestionnairePartialFill(t *testing.T) {
	ctx := context.Background()
	svc, repo := newQuestionnaireFixture(t)

	resp, err := svc.SubmitQuestionnaire(ctx, "P1", &dto.SubmitQuestionnaireRequest{Age: intPtr(30)})
	if err != nil {
		t.Fatalf("SubmitQuestionnaire: %v", err)
	}
	if !resp.Success || resp.Data.Age == nil || *resp.Data.Age != 30 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Data.Gender != nil || resp.Data.Feeling != nil {
		t.Fatalf("absent fields must stay null: %+v", resp.Data)
	}
	if resp.Data.SubmittedAt == nil {
		t.Fatalf("submittedAt not stamped")
	}

	stored, _ := repo.FindParticipantByExternalID(ctx, "P1")
	if stored.ParticipantAge == nil || *stored.ParticipantAge != 30 {
		t.Fatalf("age not persisted: %+v", stored.ParticipantAge)
	}
	if stored.ParticipantQuestionnaireSubmittedAt == nil {
		t.Fatalf("submission timestamp not persisted")
	}
}

func TestSubmitQuestionnaireValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newQuestionnaireFixture(t)

	cases := []struct {
		name string
		req  dto.SubmitQuestionnaireRequest
		want string
	}{
		{"bad gender", dto.SubmitQuestionnaireRequest{Gender: strPtr("alien")}, "invalid gender value"},
		{"age too high", dto.SubmitQuestionnaireRequest{Age: intPtr(200)}, "invalid age value"},
		{"bad feeling", dto.SubmitQuestionnaireRequest{Feeling: strPtr("ecstatic")}, "invalid feeling value"},
		{"bad education", dto.SubmitQuestionnaireRequest{EducationLevel: strPtr("phd")}, "invalid educationLevel value"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitQuestionnaire(ctx, "P1", &tc.req)
			se, ok := AsServiceError(err)
			if !ok || se.Code != ErrorInvalid {
				t.Fatalf("expected validation error, got %v", err)
			}
			if se.Message != tc.want {
				t.Fatalf("message = %q, want %q", se.Message, tc.want)
			}
		})
	}
}

func TestSubmitQuestionnaireUnknownParticipant(t *testing.T) {
	svc, _ := newQuestionnaireFixture(t)
	_, err := svc.SubmitQuestionnaire(context.Background(), "P404", &dto.SubmitQuestionnaireRequest{Age: intPtr(30)})
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSubmitQuestionnaireResubmissionOverwrites(t *testing.T) {
	ctx := context.Background()
	svc, repo := newQuestionnaireFixture(t)

	if _, err := svc.SubmitQuestionnaire(ctx, "P1", &dto.SubmitQuestionnaireRequest{
		Age:    intPtr(30),
		Gender: strPtr("female"),
	}); err != nil {
		t.Fatalf("first SubmitQuestionnaire: %v", err)
	}

	// a second submission is authoritative: it overwrites, nulls included
	if _, err := svc.SubmitQuestionnaire(ctx, "P1", &dto.SubmitQuestionnaireRequest{
		Age: intPtr(31),
	}); err != nil {
		t.Fatalf("second SubmitQuestionnaire: %v", err)
	}

	stored, _ := repo.FindParticipantByExternalID(ctx, "P1")
	if stored.ParticipantAge == nil || *stored.ParticipantAge != 31 {
		t.Fatalf("age not overwritten: %+v", stored.ParticipantAge)
	}
	if stored.ParticipantGender != nil {
		t.Fatalf("gender should have been cleared by the full overwrite")
	}
}
