package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOutputLogService_List(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	from := time.Date(2025, 1, 1, 15, 0, 0, 0, loc)
	to := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		filter   OutputFilter
		wantErr  error
		wantFrom time.Time
		wantTo   time.Time
	}{
		{name: "no bounds"},
		{name: "normalized to utc", filter: OutputFilter{From: from, To: to}, wantFrom: from.UTC(), wantTo: to},
		{name: "open ended", filter: OutputFilter{From: from}, wantFrom: from.UTC()},
		{name: "inverted", filter: OutputFilter{From: to, To: from}, wantErr: errInvalidTimeRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &memOutputRepo{}
			svc := NewOutputLogService(repo)
			_, err := svc.List(context.Background(), tc.filter)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err=%v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if !repo.gotFrom.Equal(tc.wantFrom) || !repo.gotTo.Equal(tc.wantTo) {
				t.Fatalf("repo got [%v, %v], want [%v, %v]", repo.gotFrom, repo.gotTo, tc.wantFrom, tc.wantTo)
			}
			if !repo.gotFrom.IsZero() && repo.gotFrom.Location() != time.UTC {
				t.Fatalf("from not in UTC: %v", repo.gotFrom.Location())
			}
		})
	}
}

func TestOutputLogService_ListFiltersEntries(t *testing.T) {
	repo := &memOutputRepo{}
	c := NewDashboardController(&fakeBackend{}, repo, Options{
		DefaultServerURL: testServerURL,
		Now: func() time.Time {
			return time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		},
	})
	t.Cleanup(c.Close)
	_ = c.Disconnect(context.Background())

	svc := NewOutputLogService(repo)
	all, err := svc.List(context.Background(), OutputFilter{})
	if err != nil || len(all) != 1 {
		t.Fatalf("all=%v err=%v", all, err)
	}
	later, err := svc.List(context.Background(), OutputFilter{From: time.Date(2025, 1, 1, 11, 0, 0, 0, time.UTC)})
	if err != nil || len(later) != 0 {
		t.Fatalf("later=%v err=%v", later, err)
	}
}
