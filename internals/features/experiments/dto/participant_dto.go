package dto

import (
	"time"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
)

// ============================
// Frontend-facing participant view
// The dashboard expects the external id under "id" and trial fields
// under their short names.
// ============================

type ParticipantDTO struct {
	ID                       string          `json:"id"` // external id, as the frontend expects
	ParticipantID            string          `json:"participantId"`
	NativeLanguage           *string         `json:"nativeLanguage"`
	GermanLevel              *string         `json:"germanLevel"`
	NotBilingual             *bool           `json:"notBilingual"`
	StartTime                time.Time       `json:"startTime"`
	IPAddress                *string         `json:"ipAddress"`
	Age                      *int            `json:"age"`
	Gender                   *string         `json:"gender"`
	LearningDuration         *string         `json:"learningDuration"`
	Feeling                  *string         `json:"feeling"`
	EducationLevel           *string         `json:"educationLevel"`
	GermanUsageFrequency     *string         `json:"germanUsageFrequency"`
	QuestionnaireSubmittedAt *time.Time      `json:"questionnaireSubmittedAt"`
	ExperimentsCount         int64           `json:"experimentsCount"`
	Experiments              []ExperimentDTO `json:"experiments"`
}

type ExperimentDTO struct {
	ID      string           `json:"id"`
	Config  ExperimentConfig `json:"config"`
	EndTime *time.Time       `json:"endTime"`
	Trials  []TrialDTO       `json:"trials"`
}

type TrialDTO struct {
	Trial        int     `json:"trial"`
	Sentence     string  `json:"sentence"`
	Condition    string  `json:"condition"`
	Expected     string  `json:"expected"`
	Response     string  `json:"response"`
	ResponseTime float64 `json:"responseTime"`
	Correct      bool    `json:"correct"`
}

// ============================
// Batch fetch (POST /api/participants/process)
// ============================

type ProcessParticipantsRequest struct {
	ParticipantIDs []string `json:"participantIds" validate:"required,min=1,dive,required"`
}

type ProcessParticipantsResponse struct {
	Success bool             `json:"success"`
	Count   int              `json:"count"`
	Data    []ParticipantDTO `json:"data"`
}

// ============================
// Converters
// ============================

func ToParticipantDTO(m model.ParticipantModel, experimentsCount int64) ParticipantDTO {
	experiments := make([]ExperimentDTO, 0, len(m.Experiments))
	for _, e := range m.Experiments {
		experiments = append(experiments, ToExperimentDTO(e))
	}
	return ParticipantDTO{
		ID:                       m.ParticipantExternalID,
		ParticipantID:            m.ParticipantExternalID,
		NativeLanguage:           m.ParticipantNativeLanguage,
		GermanLevel:              m.ParticipantGermanLevel,
		NotBilingual:             m.ParticipantNotBilingual,
		StartTime:                m.ParticipantStartTime,
		IPAddress:                m.ParticipantIPAddress,
		Age:                      m.ParticipantAge,
		Gender:                   m.ParticipantGender,
		LearningDuration:         m.ParticipantLearningDuration,
		Feeling:                  m.ParticipantFeeling,
		EducationLevel:           m.ParticipantEducationLevel,
		GermanUsageFrequency:     m.ParticipantGermanUsageFrequency,
		QuestionnaireSubmittedAt: m.ParticipantQuestionnaireSubmittedAt,
		ExperimentsCount:         experimentsCount,
		Experiments:              experiments,
	}
}

func ToExperimentDTO(m model.ExperimentModel) ExperimentDTO {
	trials := make([]TrialDTO, 0, len(m.Trials))
	for _, t := range m.Trials {
		trials = append(trials, TrialDTO{
			Trial:        t.TrialNumber,
			Sentence:     t.TrialSentence,
			Condition:    t.TrialCondition,
			Expected:     t.TrialExpected,
			Response:     t.TrialResponse,
			ResponseTime: t.TrialResponseTime,
			Correct:      t.TrialCorrect,
		})
	}
	return ExperimentDTO{
		ID: m.ExperimentID,
		Config: ExperimentConfig{
			PracticeTrials:      m.ExperimentPracticeTrials,
			TotalTrials:         m.ExperimentTotalTrials,
			PauseAfterTrials:    m.ExperimentPauseAfterTrials,
			SentenceDisplayTime: m.ExperimentSentenceDisplayTime,
			FeedbackTime:        m.ExperimentFeedbackTime,
		},
		EndTime: m.ExperimentEndTime,
		Trials:  trials,
	}
}
