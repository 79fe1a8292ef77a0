package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/creatorlab/creator-backend/internal/domain"
	"github.com/creatorlab/creator-backend/internal/repository"
	"github.com/creatorlab/creator-backend/pkg/cache"
	"github.com/creatorlab/creator-backend/pkg/logger"
)

// DashboardService aggregates across all content types for one user.
// Failures are isolated per type: a failed count shows up as zero
// instead of failing the whole view.
type DashboardService struct {
	repo  repository.ContentRepository
	cache cache.Service
}

// NewDashboardService creates a new DashboardService. cacheService
// may be nil when Redis is unavailable.
func NewDashboardService(repo repository.ContentRepository, cacheService cache.Service) *DashboardService {
	return &DashboardService{repo: repo, cache: cacheService}
}

// TypeCount is one per-type entry of the stats view.
type TypeCount struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// Stats returns record counts per content type for userID, cached in
// Redis for a short TTL when available.
func (s *DashboardService) Stats(ctx context.Context, userID uint64) ([]TypeCount, error) {
	key := strconv.FormatUint(userID, 10)

	if s.cache != nil && s.cache.IsAvailable() {
		var cached []TypeCount
		if err := s.cache.GetStats(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	counts := make([]TypeCount, 0, len(domain.Registry()))
	for _, ct := range domain.Registry() {
		count, err := s.repo.CountByOwner(ct.Table, userID)
		if err != nil {
			logger.GetLogger().Warn().
				Err(err).
				Str("type", ct.Slug).
				Msg("stats count failed, reporting zero")
			count = 0
		}
		counts = append(counts, TypeCount{Slug: ct.Slug, Name: ct.Name, Count: count})
	}

	if s.cache != nil && s.cache.IsAvailable() {
		if err := s.cache.SetStats(ctx, key, counts); err != nil {
			logger.GetLogger().Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return counts, nil
}

// ScheduleItem is one scheduled record annotated with its type.
type ScheduleItem struct {
	Type   string                `json:"type"`
	Record *domain.ContentRecord `json:"record"`
}

// Schedule returns the user's scheduled records across every content
// type, ordered by scheduledAt ascending. Records whose scheduledAt
// is null sort last (the store accepts that combination). A failed
// list for one type contributes nothing rather than failing the view.
func (s *DashboardService) Schedule(userID uint64) ([]ScheduleItem, error) {
	var items []ScheduleItem
	for _, ct := range domain.Registry() {
		recs, err := s.repo.ListByOwner(ct.Table, userID, domain.StatusScheduled)
		if err != nil {
			logger.GetLogger().Warn().
				Err(err).
				Str("type", ct.Slug).
				Msg("schedule fetch failed, skipping type")
			continue
		}
		for _, rec := range recs {
			items = append(items, ScheduleItem{Type: ct.Slug, Record: rec})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Record.ScheduledAt, items[j].Record.ScheduledAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return items, nil
}
