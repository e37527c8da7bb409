package repository

import (
	"context"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
)

// ParticipantFilter narrows a participant listing. Both criteria are ANDed.
type ParticipantFilter struct {
	NativeLanguage *string
	GermanLevel    *string
}

// ParticipantSummary is one row of a participant listing, annotated with
// how many experiments the participant has submitted.
type ParticipantSummary struct {
	model.ParticipantModel `gorm:"embedded"`
	ExperimentCount        int64 `gorm:"column:experiment_count"`
}

// Repository is the storage boundary of the experiment backend. Services
// receive it at construction time; they never touch a DB handle directly.
//
// Find* methods return (nil, nil) when no row matches.
type Repository interface {
	FindParticipantByExternalID(ctx context.Context, externalID string) (*model.ParticipantModel, error)
	CreateParticipant(ctx context.Context, p *model.ParticipantModel) error
	UpdateParticipant(ctx context.Context, internalID string, updates map[string]any) (*model.ParticipantModel, error)

	CreateExperiment(ctx context.Context, e *model.ExperimentModel) error
	CreateTrials(ctx context.Context, trials []model.TrialModel) error

	// WithTx runs fn against a repository whose writes commit or roll back
	// together, so trials never outlive a failed experiment insert.
	WithTx(ctx context.Context, fn func(Repository) error) error

	// FindParticipantWithExperiments loads the participant with experiments
	// ordered by creation time descending, each with trials ordered by
	// trial number ascending.
	FindParticipantWithExperiments(ctx context.Context, externalID string) (*model.ParticipantModel, error)
	ListParticipants(ctx context.Context, filter ParticipantFilter, offset, limit int) ([]ParticipantSummary, int64, error)
	FindParticipantsByExternalIDs(ctx context.Context, externalIDs []string) ([]model.ParticipantModel, error)

	CountParticipants(ctx context.Context) (int64, error)
	CountExperiments(ctx context.Context) (int64, error)
	CountTrials(ctx context.Context) (int64, error)
	CountCorrectTrials(ctx context.Context) (int64, error)

	Close() error
}
