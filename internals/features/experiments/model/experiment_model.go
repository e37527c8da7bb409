package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExperimentModel struct {
	ExperimentID            string `gorm:"column:experiment_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"experiment_id"`
	ExperimentParticipantID string `gorm:"column:experiment_participant_id;type:uuid;not null;index" json:"experiment_participant_id"`

	// Runner configuration submitted with the results
	ExperimentPracticeTrials      int `gorm:"column:experiment_practice_trials;not null" json:"experiment_practice_trials"`
	ExperimentTotalTrials         int `gorm:"column:experiment_total_trials;not null" json:"experiment_total_trials"`
	ExperimentPauseAfterTrials    int `gorm:"column:experiment_pause_after_trials;not null" json:"experiment_pause_after_trials"`
	ExperimentSentenceDisplayTime int `gorm:"column:experiment_sentence_display_time;not null" json:"experiment_sentence_display_time"`
	ExperimentFeedbackTime        int `gorm:"column:experiment_feedback_time;not null" json:"experiment_feedback_time"`

	ExperimentStartTime time.Time  `gorm:"column:experiment_start_time;not null" json:"experiment_start_time"`
	ExperimentEndTime   *time.Time `gorm:"column:experiment_end_time" json:"experiment_end_time"`

	ExperimentCreatedAt time.Time `gorm:"column:experiment_created_at;autoCreateTime" json:"experiment_created_at"`

	Trials []TrialModel `gorm:"foreignKey:TrialExperimentID;references:ExperimentID" json:"trials,omitempty"`
}

// TableName sets the name of the table
func (ExperimentModel) TableName() string {
	return "experiments"
}

func (m *ExperimentModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExperimentID == "" {
		m.ExperimentID = uuid.NewString()
	}
	return nil
}
