package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sthiefaine/psycholinguistique-back/internals/features/experiments/model"
)

// memoryRepository keeps everything in process memory. It backs the test
// suite and the DB-less dev mode (DB_DRIVER=memory); ordering guarantees
// match the GORM implementation.
type memoryRepository struct {
	mu sync.Mutex

	participants []*model.ParticipantModel // insertion order == creation order
	experiments  []*model.ExperimentModel
	trials       []*model.TrialModel
}

func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) FindParticipantByExternalID(ctx context.Context, externalID string) (*model.ParticipantModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.findByExternalID(externalID); p != nil {
		cp := *p
		cp.Experiments = nil
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryRepository) CreateParticipant(ctx context.Context, p *model.ParticipantModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findByExternalID(p.ParticipantExternalID) != nil {
		return fmt.Errorf("participant %q already exists", p.ParticipantExternalID)
	}
	if p.ParticipantID == "" {
		p.ParticipantID = uuid.NewString()
	}
	p.ParticipantCreatedAt = time.Now()
	cp := *p
	r.participants = append(r.participants, &cp)
	return nil
}

func (r *memoryRepository) UpdateParticipant(ctx context.Context, internalID string, updates map[string]any) (*model.ParticipantModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.participants {
		if p.ParticipantID == internalID {
			if err := applyParticipantUpdates(p, updates); err != nil {
				return nil, err
			}
			cp := *p
			cp.Experiments = nil
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("participant %s not found", internalID)
}

func (r *memoryRepository) CreateExperiment(ctx context.Context, e *model.ExperimentModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ExperimentID == "" {
		e.ExperimentID = uuid.NewString()
	}
	e.ExperimentCreatedAt = time.Now()
	cp := *e
	r.experiments = append(r.experiments, &cp)
	return nil
}

func (r *memoryRepository) CreateTrials(ctx context.Context, trials []model.TrialModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range trials {
		if trials[i].TrialID == "" {
			trials[i].TrialID = uuid.NewString()
		}
		trials[i].TrialCreatedAt = time.Now()
		cp := trials[i]
		r.trials = append(r.trials, &cp)
	}
	return nil
}

// WithTx degrades to sequential writes; there is nothing to roll back in
// a process-local store.
func (r *memoryRepository) WithTx(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *memoryRepository) FindParticipantWithExperiments(ctx context.Context, externalID string) (*model.ParticipantModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.findByExternalID(externalID)
	if p == nil {
		return nil, nil
	}
	cp := r.nested(p)
	return &cp, nil
}

func (r *memoryRepository) ListParticipants(ctx context.Context, filter ParticipantFilter, offset, limit int) ([]ParticipantSummary, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := make([]*model.ParticipantModel, 0, len(r.participants))
	for _, p := range r.participants {
		if filter.NativeLanguage != nil &&
			(p.ParticipantNativeLanguage == nil || *p.ParticipantNativeLanguage != *filter.NativeLanguage) {
			continue
		}
		if filter.GermanLevel != nil &&
			(p.ParticipantGermanLevel == nil || *p.ParticipantGermanLevel != *filter.GermanLevel) {
			continue
		}
		matched = append(matched, p)
	}
	total := int64(len(matched))

	// creation order descending
	rows := make([]ParticipantSummary, 0, limit)
	for i := len(matched) - 1 - offset; i >= 0 && len(rows) < limit; i-- {
		p := matched[i]
		cp := *p
		cp.Experiments = nil
		rows = append(rows, ParticipantSummary{
			ParticipantModel: cp,
			ExperimentCount:  r.countExperimentsOf(p.ParticipantID),
		})
	}
	return rows, total, nil
}

func (r *memoryRepository) FindParticipantsByExternalIDs(ctx context.Context, externalIDs []string) ([]model.ParticipantModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	wanted := make(map[string]bool, len(externalIDs))
	for _, id := range externalIDs {
		wanted[id] = true
	}
	var out []model.ParticipantModel
	for _, p := range r.participants {
		if wanted[p.ParticipantExternalID] {
			out = append(out, r.nested(p))
		}
	}
	return out, nil
}

func (r *memoryRepository) CountParticipants(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.participants)), nil
}

func (r *memoryRepository) CountExperiments(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.experiments)), nil
}

func (r *memoryRepository) CountTrials(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.trials)), nil
}

func (r *memoryRepository) CountCorrectTrials(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, t := range r.trials {
		if t.TrialCorrect {
			n++
		}
	}
	return n, nil
}

func (r *memoryRepository) Close() error { return nil }

// ----- internals (caller holds the lock) -----

func (r *memoryRepository) findByExternalID(externalID string) *model.ParticipantModel {
	for _, p := range r.participants {
		if p.ParticipantExternalID == externalID {
			return p
		}
	}
	return nil
}

func (r *memoryRepository) countExperimentsOf(participantID string) int64 {
	var n int64
	for _, e := range r.experiments {
		if e.ExperimentParticipantID == participantID {
			n++
		}
	}
	return n
}

// nested copies the participant with experiments newest-first, each with
// trials ordered by trial number.
func (r *memoryRepository) nested(p *model.ParticipantModel) model.ParticipantModel {
	cp := *p
	cp.Experiments = nil
	for i := len(r.experiments) - 1; i >= 0; i-- {
		e := r.experiments[i]
		if e.ExperimentParticipantID != p.ParticipantID {
			continue
		}
		ecp := *e
		ecp.Trials = nil
		for _, t := range r.trials {
			if t.TrialExperimentID == e.ExperimentID {
				ecp.Trials = append(ecp.Trials, *t)
			}
		}
		sort.Slice(ecp.Trials, func(a, b int) bool {
			return ecp.Trials[a].TrialNumber < ecp.Trials[b].TrialNumber
		})
		cp.Experiments = append(cp.Experiments, ecp)
	}
	return cp
}

func applyParticipantUpdates(p *model.ParticipantModel, updates map[string]any) error {
	for column, value := range updates {
		switch column {
		case "participant_ip_address":
			p.ParticipantIPAddress = asStringPtr(value)
		case "participant_german_level":
			p.ParticipantGermanLevel = asStringPtr(value)
		case "participant_native_language":
			p.ParticipantNativeLanguage = asStringPtr(value)
		case "participant_not_bilingual":
			if v, ok := value.(*bool); ok {
				p.ParticipantNotBilingual = clonePtr(v)
			}
		case "participant_age":
			if v, ok := value.(*int); ok {
				p.ParticipantAge = clonePtr(v)
			}
		case "participant_gender":
			p.ParticipantGender = asStringPtr(value)
		case "participant_learning_duration":
			p.ParticipantLearningDuration = asStringPtr(value)
		case "participant_feeling":
			p.ParticipantFeeling = asStringPtr(value)
		case "participant_education_level":
			p.ParticipantEducationLevel = asStringPtr(value)
		case "participant_german_usage_frequency":
			p.ParticipantGermanUsageFrequency = asStringPtr(value)
		case "participant_questionnaire_submitted_at":
			if v, ok := value.(*time.Time); ok {
				p.ParticipantQuestionnaireSubmittedAt = clonePtr(v)
			}
		default:
			return fmt.Errorf("unknown participant column %q", column)
		}
	}
	return nil
}

func asStringPtr(value any) *string {
	switch v := value.(type) {
	case *string:
		return clonePtr(v)
	case string:
		return &v
	default:
		return nil
	}
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	cp := *v
	return &cp
}
