package dto

import (
	"time"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
)

// ============================
// Questionnaire Request DTO
// Every field is optional; one submission overwrites all six.
// ============================

type SubmitQuestionnaireRequest struct {
	Age                  *int    `json:"age" validate:"omitempty,min=0,max=150"`
	Gender               *string `json:"gender" validate:"omitempty,oneof=male female other prefer_not_to_say"`
	LearningDuration     *string `json:"learningDuration" validate:"omitempty,oneof=less_than_1_year 1_to_2_years 2_to_5_years 5_to_10_years more_than_10_years"`
	Feeling              *string `json:"feeling" validate:"omitempty,oneof=like fear dislike indifferent"`
	EducationLevel       *string `json:"educationLevel" validate:"omitempty,oneof=lycee bac bac_plus_2 licence master doctorat"`
	GermanUsageFrequency *string `json:"germanUsageFrequency" validate:"omitempty,oneof=everyday several_times_week rarely"`
}

// ============================
// Questionnaire Response DTO
// ============================

type QuestionnaireResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    QuestionnaireData `json:"data"`
}

type QuestionnaireData struct {
	ParticipantID        string     `json:"participantId"` // external id
	Age                  *int       `json:"age"`
	Gender               *string    `json:"gender"`
	LearningDuration     *string    `json:"learningDuration"`
	Feeling              *string    `json:"feeling"`
	EducationLevel       *string    `json:"educationLevel"`
	GermanUsageFrequency *string    `json:"germanUsageFrequency"`
	SubmittedAt          *time.Time `json:"submittedAt"`
}

// ============================
// Converter
// ============================

func ToQuestionnaireData(m model.ParticipantModel) QuestionnaireData {
	return QuestionnaireData{
		ParticipantID:        m.ParticipantExternalID,
		Age:                  m.ParticipantAge,
		Gender:               m.ParticipantGender,
		LearningDuration:     m.ParticipantLearningDuration,
		Feeling:              m.ParticipantFeeling,
		EducationLevel:       m.ParticipantEducationLevel,
		GermanUsageFrequency: m.ParticipantGermanUsageFrequency,
		SubmittedAt:          m.ParticipantQuestionnaireSubmittedAt,
	}
}
