package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantModel struct {
	ParticipantID             string    `gorm:"column:participant_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"participant_id"`
	ParticipantExternalID     string    `gorm:"column:participant_external_id;type:text;not null;uniqueIndex:uq_participant_external_id" json:"participant_external_id"`
	ParticipantNativeLanguage *string   `gorm:"column:participant_native_language;type:varchar(20)" json:"participant_native_language"` // french | portuguese
	ParticipantGermanLevel    *string   `gorm:"column:participant_german_level;type:varchar(2)" json:"participant_german_level"`        // A1..C2
	ParticipantNotBilingual   *bool     `gorm:"column:participant_not_bilingual" json:"participant_not_bilingual"`
	ParticipantIPAddress      *string   `gorm:"column:participant_ip_address;type:varchar(45)" json:"participant_ip_address"`
	ParticipantStartTime      time.Time `gorm:"column:participant_start_time;not null" json:"participant_start_time"`

	// Optional questionnaire answers, filled by a later submission
	ParticipantAge                      *int       `gorm:"column:participant_age" json:"participant_age"`
	ParticipantGender                   *string    `gorm:"column:participant_gender;type:varchar(20)" json:"participant_gender"`
	ParticipantLearningDuration         *string    `gorm:"column:participant_learning_duration;type:varchar(30)" json:"participant_learning_duration"`
	ParticipantFeeling                  *string    `gorm:"column:participant_feeling;type:varchar(20)" json:"participant_feeling"`
	ParticipantEducationLevel           *string    `gorm:"column:participant_education_level;type:varchar(20)" json:"participant_education_level"`
	ParticipantGermanUsageFrequency     *string    `gorm:"column:participant_german_usage_frequency;type:varchar(30)" json:"participant_german_usage_frequency"`
	ParticipantQuestionnaireSubmittedAt *time.Time `gorm:"column:participant_questionnaire_submitted_at" json:"participant_questionnaire_submitted_at"`

	ParticipantCreatedAt time.Time `gorm:"column:participant_created_at;autoCreateTime" json:"participant_created_at"`

	Experiments []ExperimentModel `gorm:"foreignKey:ExperimentParticipantID;references:ParticipantID" json:"experiments,omitempty"`
}

// TableName sets the name of the table
func (ParticipantModel) TableName() string {
	return "participants"
}

func (m *ParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParticipantID == "" {
		m.ParticipantID = uuid.NewString()
	}
	return nil
}
