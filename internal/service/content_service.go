package service

import (
	"context"
	"errors"
	"time"

	"github.com/creatorlab/creator-backend/internal/common"
	"github.com/creatorlab/creator-backend/internal/domain"
	"github.com/creatorlab/creator-backend/internal/repository"
	"gorm.io/gorm"
)

// Generator produces text from a prompt via the upstream model API.
// The output is non-deterministic: identical prompts yield different
// text across calls.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ContentService implements the uniform operation set shared by every
// content type: list, get, create, generate, update, remove. Which
// type it operates on is decided per call via the registry entry.
type ContentService struct {
	repo      repository.ContentRepository
	generator Generator
}

// NewContentService creates a new ContentService
func NewContentService(repo repository.ContentRepository, generator Generator) *ContentService {
	return &ContentService{repo: repo, generator: generator}
}

// CreateInput carries the fields of a create request. Params are
// filtered to the type's declared fields before insert.
type CreateInput struct {
	Params      map[string]interface{}
	AIOutput    string
	Status      string
	ScheduledAt *time.Time
}

// UpdateInput carries a partial update. Nil pointer means "leave
// unchanged"; ScheduledAtSet distinguishes clearing the timestamp
// from omitting it.
type UpdateInput struct {
	Params         map[string]interface{}
	AIOutput       *string
	Status         *string
	ScheduledAt    *time.Time
	ScheduledAtSet bool
}

// List returns all records owned by userID, newest first. A filter
// value outside the known statuses is silently ignored: the full list
// comes back with no error.
func (s *ContentService) List(ct *domain.ContentType, userID uint64, statusFilter string) ([]*domain.ContentRecord, error) {
	status := domain.Status(statusFilter)
	if !status.Valid() {
		status = ""
	}
	return s.repo.ListByOwner(ct.Table, userID, status)
}

// Get returns the record iff it exists and belongs to userID. A
// missing record and someone else's record both come back as
// ErrNotFound.
func (s *ContentService) Get(ct *domain.ContentType, userID, id uint64) (*domain.ContentRecord, error) {
	rec, err := s.repo.FindByOwnerAndID(ct.Table, userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

// Create inserts a new record for userID. Status defaults to draft
// and scheduledAt to null when absent. Note the store does not tie
// the two together: scheduled with a null timestamp is accepted.
func (s *ContentService) Create(ct *domain.ContentType, userID uint64, in CreateInput) (*domain.ContentRecord, error) {
	status := domain.Status(in.Status)
	if status == "" {
		status = domain.StatusDraft
	}

	rec := &domain.ContentRecord{
		UserID:      userID,
		Params:      ct.FilterParams(in.Params),
		AIOutput:    in.AIOutput,
		Status:      status,
		ScheduledAt: in.ScheduledAt,
	}
	if err := s.repo.Create(ct.Table, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Generate builds the type's prompt from params and calls the
// upstream model. Nothing is persisted; the caller decides whether to
// save the text via Create or Update. Params the template references
// but the caller omitted interpolate as empty strings.
func (s *ContentService) Generate(ctx context.Context, ct *domain.ContentType, params map[string]interface{}) (string, error) {
	prompt := ct.Prompt(ct.FilterParams(params))
	return s.generator.Generate(ctx, prompt)
}

// Update confirms ownership, then applies a partial merge: supplied
// params overwrite per key, pointer fields overwrite when non-nil.
// The owner never changes.
func (s *ContentService) Update(ct *domain.ContentType, userID, id uint64, in UpdateInput) (*domain.ContentRecord, error) {
	rec, err := s.Get(ct, userID, id)
	if err != nil {
		return nil, err
	}

	if len(in.Params) > 0 {
		if rec.Params == nil {
			rec.Params = domain.Params{}
		}
		for k, v := range ct.FilterParams(in.Params) {
			rec.Params[k] = v
		}
	}
	if in.AIOutput != nil {
		rec.AIOutput = *in.AIOutput
	}
	if in.Status != nil {
		rec.Status = domain.Status(*in.Status)
	}
	if in.ScheduledAtSet {
		rec.ScheduledAt = in.ScheduledAt
	}

	if err := s.repo.Save(ct.Table, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Remove confirms ownership, then deletes the record.
func (s *ContentService) Remove(ct *domain.ContentType, userID, id uint64) error {
	if _, err := s.Get(ct, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ct.Table, userID, id)
}
