package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
)

type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository wraps a connected GORM handle. The caller owns the
// handle's lifecycle until Close is called.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) FindParticipantByExternalID(ctx context.Context, externalID string) (*model.ParticipantModel, error) {
	var p model.ParticipantModel
	err := r.db.WithContext(ctx).
		Where("participant_external_id = ?", externalID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) CreateParticipant(ctx context.Context, p *model.ParticipantModel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *gormRepository) UpdateParticipant(ctx context.Context, internalID string, updates map[string]any) (*model.ParticipantModel, error) {
	if err := r.db.WithContext(ctx).
		Model(&model.ParticipantModel{}).
		Where("participant_id = ?", internalID).
		Updates(updates).Error; err != nil {
		return nil, err
	}
	var p model.ParticipantModel
	if err := r.db.WithContext(ctx).
		Where("participant_id = ?", internalID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) CreateExperiment(ctx context.Context, e *model.ExperimentModel) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *gormRepository) CreateTrials(ctx context.Context, trials []model.TrialModel) error {
	if len(trials) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&trials).Error
}

func (r *gormRepository) WithTx(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepository{db: tx})
	})
}

func (r *gormRepository) FindParticipantWithExperiments(ctx context.Context, externalID string) (*model.ParticipantModel, error) {
	var p model.ParticipantModel
	err := r.db.WithContext(ctx).
		Preload("Experiments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("experiment_created_at DESC")
		}).
		Preload("Experiments.Trials", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("trial_number ASC")
		}).
		Where("participant_external_id = ?", externalID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) ListParticipants(ctx context.Context, filter ParticipantFilter, offset, limit int) ([]ParticipantSummary, int64, error) {
	base := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&model.ParticipantModel{})
		if filter.NativeLanguage != nil {
			q = q.Where("participant_native_language = ?", *filter.NativeLanguage)
		}
		if filter.GermanLevel != nil {
			q = q.Where("participant_german_level = ?", *filter.GermanLevel)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []ParticipantSummary
	if err := base().
		Select("participants.*, (SELECT COUNT(*) FROM experiments WHERE experiments.experiment_participant_id = participants.participant_id) AS experiment_count").
		Order("participant_created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *gormRepository) FindParticipantsByExternalIDs(ctx context.Context, externalIDs []string) ([]model.ParticipantModel, error) {
	var participants []model.ParticipantModel
	err := r.db.WithContext(ctx).
		Preload("Experiments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("experiment_created_at DESC")
		}).
		Preload("Experiments.Trials", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("trial_number ASC")
		}).
		Where("participant_external_id IN ?", externalIDs).
		Find(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *gormRepository) CountParticipants(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ParticipantModel{}).Count(&n).Error
	return n, err
}

func (r *gormRepository) CountExperiments(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ExperimentModel{}).Count(&n).Error
	return n, err
}

func (r *gormRepository) CountTrials(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.TrialModel{}).Count(&n).Error
	return n, err
}

func (r *gormRepository) CountCorrectTrials(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.TrialModel{}).
		Where("trial_correct = ?", true).
		Count(&n).Error
	return n, err
}

func (r *gormRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
