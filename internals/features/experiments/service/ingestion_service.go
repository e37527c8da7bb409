package service

import (
	"context"
	"log"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/dto"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/repository"
)

// IngestionService records one results submission: it upserts the
// participant, then creates the experiment and its trials in one
// transaction.
type IngestionService struct {
	repo repository.Repository
}

func NewIngestionService(repo repository.Repository) *IngestionService {
	return &IngestionService{repo: repo}
}

// backfillRule describes one participant field that a later submission may
// fill in, but never overwrite. Adding a backfillable field means adding a
// row here, nothing else.
type backfillRule struct {
	column string
	isSet  func(p *model.ParticipantModel) bool
	value  func(in *dto.ResultsParticipant, clientIP string) (any, bool)
}

var backfillRules = []backfillRule{
	{
		column: "participant_ip_address",
		isSet: func(p *model.ParticipantModel) bool {
			return p.ParticipantIPAddress != nil && *p.ParticipantIPAddress != ""
		},
		value: func(in *dto.ResultsParticipant, clientIP string) (any, bool) {
			if clientIP == "" {
				return nil, false
			}
			return &clientIP, true
		},
	},
	{
		column: "participant_german_level",
		isSet:  func(p *model.ParticipantModel) bool { return p.ParticipantGermanLevel != nil },
		value: func(in *dto.ResultsParticipant, _ string) (any, bool) {
			return in.GermanLevel, in.GermanLevel != nil
		},
	},
	{
		column: "participant_native_language",
		isSet:  func(p *model.ParticipantModel) bool { return p.ParticipantNativeLanguage != nil },
		value: func(in *dto.ResultsParticipant, _ string) (any, bool) {
			return in.NativeLanguage, in.NativeLanguage != nil
		},
	},
	{
		column: "participant_not_bilingual",
		isSet:  func(p *model.ParticipantModel) bool { return p.ParticipantNotBilingual != nil },
		value: func(in *dto.ResultsParticipant, _ string) (any, bool) {
			return in.NotBilingual, in.NotBilingual != nil
		},
	},
}

func backfillUpdates(stored *model.ParticipantModel, in *dto.ResultsParticipant, clientIP string) map[string]any {
	updates := map[string]any{}
	for _, rule := range backfillRules {
		if rule.isSet(stored) {
			continue
		}
		if v, ok := rule.value(in, clientIP); ok {
			updates[rule.column] = v
		}
	}
	return updates
}

// SubmitResults validates the payload, upserts the participant
// (first-writer-wins on ip/level/language/notBilingual), then stores the
// experiment with all its trials. Trial numbers are taken from the payload
// as-is.
func (s *IngestionService) SubmitResults(ctx context.Context, req *dto.SubmitResultsRequest, clientIP string) (*dto.SubmitResultsResponse, error) {
	if req == nil || req.Participant == nil || req.Experiment == nil {
		return nil, NewInvalidError("invalid payload: participant and experiment are required")
	}
	if err := validate.Struct(req); err != nil {
		return nil, invalidFieldError(err)
	}

	participant, err := s.repo.FindParticipantByExternalID(ctx, req.Participant.ID)
	if err != nil {
		return nil, NewInternalError(err)
	}

	if participant == nil {
		participant = &model.ParticipantModel{
			ParticipantExternalID:     req.Participant.ID,
			ParticipantGermanLevel:    req.Participant.GermanLevel,
			ParticipantNativeLanguage: req.Participant.NativeLanguage,
			ParticipantNotBilingual:   req.Participant.NotBilingual,
			ParticipantIPAddress:      &clientIP,
			ParticipantStartTime:      req.Participant.StartTime,
		}
		if err := s.repo.CreateParticipant(ctx, participant); err != nil {
			return nil, NewInternalError(err)
		}
	} else if updates := backfillUpdates(participant, req.Participant, clientIP); len(updates) > 0 {
		participant, err = s.repo.UpdateParticipant(ctx, participant.ParticipantID, updates)
		if err != nil {
			return nil, NewInternalError(err)
		}
	}

	experiment := &model.ExperimentModel{
		ExperimentParticipantID:       participant.ParticipantID,
		ExperimentPracticeTrials:      req.Experiment.Config.PracticeTrials,
		ExperimentTotalTrials:         req.Experiment.Config.TotalTrials,
		ExperimentPauseAfterTrials:    req.Experiment.Config.PauseAfterTrials,
		ExperimentSentenceDisplayTime: req.Experiment.Config.SentenceDisplayTime,
		ExperimentFeedbackTime:        req.Experiment.Config.FeedbackTime,
		ExperimentStartTime:           req.Participant.StartTime,
		ExperimentEndTime:             req.Experiment.EndTime,
	}

	err = s.repo.WithTx(ctx, func(r repository.Repository) error {
		if err := r.CreateExperiment(ctx, experiment); err != nil {
			return err
		}
		trials := make([]model.TrialModel, 0, len(req.Experiment.Data))
		for _, t := range req.Experiment.Data {
			trials = append(trials, model.TrialModel{
				TrialExperimentID: experiment.ExperimentID,
				TrialNumber:       t.Trial,
				TrialSentence:     t.Sentence,
				TrialCondition:    t.Condition,
				TrialExpected:     t.Expected,
				TrialResponse:     t.Response,
				TrialResponseTime: t.ResponseTime,
				TrialCorrect:      t.Correct,
				TrialTimestamp:    t.Timestamp,
			})
		}
		return r.CreateTrials(ctx, trials)
	})
	if err != nil {
		return nil, NewInternalError(err)
	}

	log.Printf("[INGEST] participant=%s experiment=%s trials=%d ip=%s",
		req.Participant.ID, experiment.ExperimentID, len(req.Experiment.Data), clientIP)

	return &dto.SubmitResultsResponse{
		Success:       true,
		Message:       "results saved",
		ParticipantID: participant.ParticipantID,
		ExperimentID:  experiment.ExperimentID,
		TrialsCount:   len(req.Experiment.Data),
		IPAddress:     clientIP,
	}, nil
}
