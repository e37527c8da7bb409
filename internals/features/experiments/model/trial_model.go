package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrialModel struct {
	TrialID           string `gorm:"column:trial_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"trial_id"`
	TrialExperimentID string `gorm:"column:trial_experiment_id;type:uuid;not null;index;uniqueIndex:uq_trial_experiment_number" json:"trial_experiment_id"`
	TrialNumber       int    `gorm:"column:trial_number;not null;uniqueIndex:uq_trial_experiment_number" json:"trial_number"`

	TrialSentence     string  `gorm:"column:trial_sentence;type:text;not null" json:"trial_sentence"`
	TrialCondition    string  `gorm:"column:trial_condition;type:varchar(50);not null" json:"trial_condition"`
	TrialExpected     string  `gorm:"column:trial_expected;type:varchar(50);not null" json:"trial_expected"`
	TrialResponse     string  `gorm:"column:trial_response;type:varchar(50);not null" json:"trial_response"`
	TrialResponseTime float64 `gorm:"column:trial_response_time;not null" json:"trial_response_time"` // milliseconds
	TrialCorrect      bool    `gorm:"column:trial_correct;not null" json:"trial_correct"`

	TrialTimestamp time.Time `gorm:"column:trial_timestamp;not null" json:"trial_timestamp"`
	TrialCreatedAt time.Time `gorm:"column:trial_created_at;autoCreateTime" json:"trial_created_at"`
}

// TableName sets the name of the table
func (TrialModel) TableName() string {
	return "trials"
}

func (m *TrialModel) BeforeCreate(tx *gorm.DB) error {
	if m.TrialID == "" {
		m.TrialID = uuid.NewString()
	}
	return nil
}
