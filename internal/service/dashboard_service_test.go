package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/creatorlab/creator-backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStats_CountsEveryRegisteredType(t *testing.T) {
	repo := new(mockContentRepo)
	svc := NewDashboardService(repo, nil)

	for _, ct := range domain.Registry() {
		repo.On("CountByOwner", ct.Table, uint64(1)).Return(int64(2), nil)
	}

	counts, err := svc.Stats(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, counts, len(domain.Registry()))
	for _, tc := range counts {
		assert.Equal(t, int64(2), tc.Count)
	}
}

func TestStats_FailedTypeReportsZeroNotError(t *testing.T) {
	repo := new(mockContentRepo)
	svc := NewDashboardService(repo, nil)

	for _, ct := range domain.Registry() {
		if ct.Slug == "titles" {
			repo.On("CountByOwner", ct.Table, uint64(1)).Return(int64(0), errors.New("table gone"))
			continue
		}
		repo.On("CountByOwner", ct.Table, uint64(1)).Return(int64(3), nil)
	}

	counts, err := svc.Stats(context.Background(), 1)
	assert.NoError(t, err)
	for _, tc := range counts {
		if tc.Slug == "titles" {
			assert.Equal(t, int64(0), tc.Count)
		} else {
			assert.Equal(t, int64(3), tc.Count)
		}
	}
}

func TestSchedule_SortsByScheduledAtWithNullsLast(t *testing.T) {
	repo := new(mockContentRepo)
	svc := NewDashboardService(repo, nil)

	early := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	late := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)

	for _, ct := range domain.Registry() {
		switch ct.Slug {
		case "titles":
			repo.On("ListByOwner", ct.Table, uint64(1), domain.StatusScheduled).
				Return([]*domain.ContentRecord{
					{ID: 1, UserID: 1, ScheduledAt: &late},
					{ID: 2, UserID: 1, ScheduledAt: nil},
				}, nil)
		case "scripts":
			repo.On("ListByOwner", ct.Table, uint64(1), domain.StatusScheduled).
				Return([]*domain.ContentRecord{
					{ID: 3, UserID: 1, ScheduledAt: &early},
				}, nil)
		default:
			repo.On("ListByOwner", ct.Table, uint64(1), domain.StatusScheduled).
				Return([]*domain.ContentRecord{}, nil)
		}
	}

	items, err := svc.Schedule(1)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, uint64(3), items[0].Record.ID) // earliest first
	assert.Equal(t, uint64(1), items[1].Record.ID)
	assert.Nil(t, items[2].Record.ScheduledAt) // null timestamp sorts last
}

func TestSchedule_FailedTypeSkipped(t *testing.T) {
	repo := new(mockContentRepo)
	svc := NewDashboardService(repo, nil)

	ts := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	for _, ct := range domain.Registry() {
		if ct.Slug == "hooks" {
			repo.On("ListByOwner", ct.Table, uint64(1), domain.StatusScheduled).
				Return(nil, errors.New("table gone"))
			continue
		}
		if ct.Slug == "titles" {
			repo.On("ListByOwner", ct.Table, uint64(1), domain.StatusScheduled).
				Return([]*domain.ContentRecord{{ID: 1, UserID: 1, ScheduledAt: &ts}}, nil)
			continue
		}
		repo.On("ListByOwner", ct.Table, uint64(1), domain.StatusScheduled).
			Return([]*domain.ContentRecord{}, nil)
	}

	items, err := svc.Schedule(1)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "titles", items[0].Type)
}
