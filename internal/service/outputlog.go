package service

import (
	"context"
	"errors"
	"time"

	"opencog_dashboard/internal/models"
	"opencog_dashboard/internal/repository"
)

// OutputFilter narrows the output history by time range.
type OutputFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
}

type OutputLogService struct {
	repo repository.OutputRepo
}

func NewOutputLogService(repo repository.OutputRepo) *OutputLogService {
	return &OutputLogService{repo: repo}
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func normalizeAndValidateFilter(f OutputFilter) (time.Time, time.Time, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, errInvalidTimeRange
	}
	return from, to, nil
}

func (s *OutputLogService) List(ctx context.Context, f OutputFilter) ([]models.OutputLogEntry, error) {
	from, to, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, from, to)
}
