package service

import (
	"context"
	"time"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
)

// QuestionnaireService merges the optional demographic questionnaire into
// an existing participant. One submission is authoritative: all six fields
// are written, nulls included. Re-submission overwrites silently.
type QuestionnaireService struct {
	repo repository.Repository
	now  func() time.Time
}

func NewQuestionnaireService(repo repository.Repository) *QuestionnaireService {
	return &QuestionnaireService{repo: repo, now: time.Now}
}

func (s *QuestionnaireService) SubmitQuestionnaire(ctx context.Context, externalID string, req *dto.SubmitQuestionnaireRequest) (*dto.QuestionnaireResponse, error) {
	if req == nil {
		return nil, NewInvalidError("invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return nil, invalidFieldError(err)
	}

	participant, err := s.repo.FindParticipantByExternalID(ctx, externalID)
	if err != nil {
		return nil, NewInternalError(err)
	}
	if participant == nil {
		return nil, NewNotFoundError("participant not found")
	}

	submittedAt := s.now()
	updated, err := s.repo.UpdateParticipant(ctx, participant.ParticipantID, map[string]any{
		"participant_age":                        req.Age,
		"participant_gender":                     req.Gender,
		"participant_learning_duration":          req.LearningDuration,
		"participant_feeling":                    req.Feeling,
		"participant_education_level":            req.EducationLevel,
		"participant_german_usage_frequency":     req.GermanUsageFrequency,
		"participant_questionnaire_submitted_at": &submittedAt,
	})
	if err != nil {
		return nil, NewInternalError(err)
	}

	return &dto.QuestionnaireResponse{
		Success: true,
		Message: "questionnaire saved",
		Data:    dto.ToQuestionnaireData(*updated),
	}, nil
}
