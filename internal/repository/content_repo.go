package repository

import (
	"github.com/creatorlab/creator-backend/internal/domain"
	"gorm.io/gorm"
)

// ContentRepository is the generic data access layer behind every
// content type. The table argument comes from the content-type
// registry; all queries are owner-scoped and single-row. The owner
// column is set on insert and never touched again.
type ContentRepository interface {
	ListByOwner(table string, userID uint64, status domain.Status) ([]*domain.ContentRecord, error)
	FindByOwnerAndID(table string, userID, id uint64) (*domain.ContentRecord, error)
	CountByOwner(table string, userID uint64) (int64, error)
	Create(table string, rec *domain.ContentRecord) error
	Save(table string, rec *domain.ContentRecord) error
	Delete(table string, userID, id uint64) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) ListByOwner(table string, userID uint64, status domain.Status) ([]*domain.ContentRecord, error) {
	q := r.db.Table(table).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	recs := make([]*domain.ContentRecord, 0)
	err := q.Order("created_at DESC").Find(&recs).Error
	return recs, err
}

func (r *contentRepository) FindByOwnerAndID(table string, userID, id uint64) (*domain.ContentRecord, error) {
	var rec domain.ContentRecord
	err := r.db.Table(table).Where("id = ? AND user_id = ?", id, userID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *contentRepository) CountByOwner(table string, userID uint64) (int64, error) {
	var count int64
	err := r.db.Table(table).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *contentRepository) Create(table string, rec *domain.ContentRecord) error {
	return r.db.Table(table).Create(rec).Error
}

func (r *contentRepository) Save(table string, rec *domain.ContentRecord) error {
	return r.db.Table(table).Save(rec).Error
}

func (r *contentRepository) Delete(table string, userID, id uint64) error {
	return r.db.Table(table).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.ContentRecord{}).Error
}
