package service

import (
	"context"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

var (
	validNativeLanguages = map[string]bool{"french": true, "portuguese": true}
	validGermanLevels    = map[string]bool{"A1": true, "A2": true, "B1": true, "B2": true, "C1": true, "C2": true}
)

// QueryService serves every read path over participants.
type QueryService struct {
	repo repository.Repository
}

func NewQueryService(repo repository.Repository) *QueryService {
	return &QueryService{repo: repo}
}

// GetByParticipantID returns the raw nested record for one participant:
// experiments newest-first, trials ordered by trial number.
func (s *QueryService) GetByParticipantID(ctx context.Context, externalID string) (*dto.ParticipantResultsDTO, error) {
	p, err := s.repo.FindParticipantWithExperiments(ctx, externalID)
	if err != nil {
		return nil, NewInternalError(err)
	}
	if p == nil {
		return nil, NewNotFoundError("participant not found")
	}
	out := dto.ToParticipantResultsDTO(*p)
	return &out, nil
}

// ListParticipantsQuery carries the raw query-string values; normalization
// and filter whitelisting happen here, not in the controller.
type ListParticipantsQuery struct {
	Page           int
	Limit          int
	NativeLanguage string
	GermanLevel    string
}

// ListParticipants returns one page of participant summaries ordered by
// creation time descending. Out-of-enum filter values are ignored, not
// rejected.
func (s *QueryService) ListParticipants(ctx context.Context, q ListParticipantsQuery) ([]dto.ParticipantDTO, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	filter := repository.ParticipantFilter{}
	if validNativeLanguages[q.NativeLanguage] {
		lang := q.NativeLanguage
		filter.NativeLanguage = &lang
	}
	if validGermanLevels[q.GermanLevel] {
		level := q.GermanLevel
		filter.GermanLevel = &level
	}

	rows, _, err := s.repo.ListParticipants(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		return nil, NewInternalError(err)
	}

	out := make([]dto.ParticipantDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.ToParticipantDTO(row.ParticipantModel, row.ExperimentCount))
	}
	return out, nil
}

// GetParticipantDetail returns the frontend-shaped record for one
// participant, experiments and trials included.
func (s *QueryService) GetParticipantDetail(ctx context.Context, externalID string) (*dto.ParticipantDTO, error) {
	p, err := s.repo.FindParticipantWithExperiments(ctx, externalID)
	if err != nil {
		return nil, NewInternalError(err)
	}
	if p == nil {
		return nil, NewNotFoundError("participant not found")
	}
	out := dto.ToParticipantDTO(*p, int64(len(p.Experiments)))
	return &out, nil
}

// ProcessParticipants batch-fetches full nested data for the given external
// ids. Missing ids are skipped; only a fully empty result is an error.
func (s *QueryService) ProcessParticipants(ctx context.Context, req *dto.ProcessParticipantsRequest) (*dto.ProcessParticipantsResponse, error) {
	if req == nil {
		return nil, NewInvalidError("invalid payload: participantIds must be a non-empty list")
	}
	if err := validate.Struct(req); err != nil {
		return nil, NewInvalidError("invalid payload: participantIds must be a non-empty list")
	}

	participants, err := s.repo.FindParticipantsByExternalIDs(ctx, req.ParticipantIDs)
	if err != nil {
		return nil, NewInternalError(err)
	}
	if len(participants) == 0 {
		return nil, NewNotFoundError("no participants found")
	}

	data := make([]dto.ParticipantDTO, 0, len(participants))
	for _, p := range participants {
		data = append(data, dto.ToParticipantDTO(p, int64(len(p.Experiments))))
	}
	return &dto.ProcessParticipantsResponse{
		Success: true,
		Count:   len(data),
		Data:    data,
	}, nil
}
