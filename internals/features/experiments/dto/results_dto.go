package dto

import (
	"time"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
)

// ============================
// Submit Request DTO
// ============================

type SubmitResultsRequest struct {
	Participant *ResultsParticipant `json:"participant" validate:"required"`
	Experiment  *ResultsExperiment  `json:"experiment" validate:"required"`
}

type ResultsParticipant struct {
	ID             string    `json:"id" validate:"required"`
	GermanLevel    *string   `json:"germanLevel" validate:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	NativeLanguage *string   `json:"nativeLanguage" validate:"omitempty,oneof=french portuguese"`
	NotBilingual   *bool     `json:"notBilingual"`
	StartTime      time.Time `json:"startTime" validate:"required"`
}

type ResultsExperiment struct {
	Config  ExperimentConfig `json:"config"`
	EndTime *time.Time       `json:"endTime"`
	Data    []TrialRecord    `json:"data" validate:"dive"`
}

type ExperimentConfig struct {
	PracticeTrials      int `json:"practiceTrials" validate:"min=0"`
	TotalTrials         int `json:"totalTrials" validate:"min=0"`
	PauseAfterTrials    int `json:"pauseAfterTrials" validate:"min=0"`
	SentenceDisplayTime int `json:"sentenceDisplayTime" validate:"min=0"`
	FeedbackTime        int `json:"feedbackTime" validate:"min=0"`
}

type TrialRecord struct {
	Trial        int       `json:"trial" validate:"min=0"`
	Sentence     string    `json:"sentence"`
	Condition    string    `json:"condition"`
	Expected     string    `json:"expected"`
	Response     string    `json:"response"`
	ResponseTime float64   `json:"responseTime" validate:"min=0"`
	Correct      bool      `json:"correct"`
	Timestamp    time.Time `json:"timestamp"`
}

// ============================
// Submit Response DTO
// ============================

type SubmitResultsResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ParticipantID string `json:"participantId"` // internal id
	ExperimentID  string `json:"experimentId"`
	TrialsCount   int    `json:"trialsCount"`
	IPAddress     string `json:"ipAddress"`
}

// ============================
// Raw results view (GET /api/results/:participantId)
// Mirrors the stored rows: internal ids, full fields, timestamps.
// ============================

type ParticipantResultsDTO struct {
	ID                       string                 `json:"id"`
	ParticipantID            string                 `json:"participantId"` // external id
	NativeLanguage           *string                `json:"nativeLanguage"`
	GermanLevel              *string                `json:"germanLevel"`
	NotBilingual             *bool                  `json:"notBilingual"`
	IPAddress                *string                `json:"ipAddress"`
	StartTime                time.Time              `json:"startTime"`
	Age                      *int                   `json:"age"`
	Gender                   *string                `json:"gender"`
	LearningDuration         *string                `json:"learningDuration"`
	Feeling                  *string                `json:"feeling"`
	EducationLevel           *string                `json:"educationLevel"`
	GermanUsageFrequency     *string                `json:"germanUsageFrequency"`
	QuestionnaireSubmittedAt *time.Time             `json:"questionnaireSubmittedAt"`
	CreatedAt                time.Time              `json:"createdAt"`
	Experiments              []ExperimentResultsDTO `json:"experiments"`
}

type ExperimentResultsDTO struct {
	ID                  string            `json:"id"`
	ParticipantID       string            `json:"participantId"` // internal fk
	PracticeTrials      int               `json:"practiceTrials"`
	TotalTrials         int               `json:"totalTrials"`
	PauseAfterTrials    int               `json:"pauseAfterTrials"`
	SentenceDisplayTime int               `json:"sentenceDisplayTime"`
	FeedbackTime        int               `json:"feedbackTime"`
	StartTime           time.Time         `json:"startTime"`
	EndTime             *time.Time        `json:"endTime"`
	CreatedAt           time.Time         `json:"createdAt"`
	Trials              []TrialResultsDTO `json:"trials"`
}

type TrialResultsDTO struct {
	ID           string    `json:"id"`
	ExperimentID string    `json:"experimentId"`
	TrialNumber  int       `json:"trialNumber"`
	Sentence     string    `json:"sentence"`
	Condition    string    `json:"condition"`
	Expected     string    `json:"expected"`
	Response     string    `json:"response"`
	ResponseTime float64   `json:"responseTime"`
	Correct      bool      `json:"correct"`
	Timestamp    time.Time `json:"timestamp"`
}

// ============================
// Converter
// ============================

func ToParticipantResultsDTO(m model.ParticipantModel) ParticipantResultsDTO {
	experiments := make([]ExperimentResultsDTO, 0, len(m.Experiments))
	for _, e := range m.Experiments {
		experiments = append(experiments, ToExperimentResultsDTO(e))
	}
	return ParticipantResultsDTO{
		ID:                       m.ParticipantID,
		ParticipantID:            m.ParticipantExternalID,
		NativeLanguage:           m.ParticipantNativeLanguage,
		GermanLevel:              m.ParticipantGermanLevel,
		NotBilingual:             m.ParticipantNotBilingual,
		IPAddress:                m.ParticipantIPAddress,
		StartTime:                m.ParticipantStartTime,
		Age:                      m.ParticipantAge,
		Gender:                   m.ParticipantGender,
		LearningDuration:         m.ParticipantLearningDuration,
		Feeling:                  m.ParticipantFeeling,
		EducationLevel:           m.ParticipantEducationLevel,
		GermanUsageFrequency:     m.ParticipantGermanUsageFrequency,
		QuestionnaireSubmittedAt: m.ParticipantQuestionnaireSubmittedAt,
		CreatedAt:                m.ParticipantCreatedAt,
		Experiments:              experiments,
	}
}

func ToExperimentResultsDTO(m model.ExperimentModel) ExperimentResultsDTO {
	trials := make([]TrialResultsDTO, 0, len(m.Trials))
	for _, t := range m.Trials {
		trials = append(trials, TrialResultsDTO{
			ID:           t.TrialID,
			ExperimentID: t.TrialExperimentID,
			TrialNumber:  t.TrialNumber,
			Sentence:     t.TrialSentence,
			Condition:    t.TrialCondition,
			Expected:     t.TrialExpected,
			Response:     t.TrialResponse,
			ResponseTime: t.TrialResponseTime,
			Correct:      t.TrialCorrect,
			Timestamp:    t.TrialTimestamp,
		})
	}
	return ExperimentResultsDTO{
		ID:                  m.ExperimentID,
		ParticipantID:       m.ExperimentParticipantID,
		PracticeTrials:      m.ExperimentPracticeTrials,
		TotalTrials:         m.ExperimentTotalTrials,
		PauseAfterTrials:    m.ExperimentPauseAfterTrials,
		SentenceDisplayTime: m.ExperimentSentenceDisplayTime,
		FeedbackTime:        m.ExperimentFeedbackTime,
		StartTime:           m.ExperimentStartTime,
		EndTime:             m.ExperimentEndTime,
		CreatedAt:           m.ExperimentCreatedAt,
		Trials:              trials,
	}
}
