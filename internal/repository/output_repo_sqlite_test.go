package repository

import (
	"testing"
	"time"

	"opencog_dashboard/internal/models"
	"opencog_dashboard/internal/repository/db"
)

func TestOutputSQLite_InMemoryRoundTrip(t *testing.T) {
	conn, err := db.InitDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	repo := NewRepository(conn).OutputRepo
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	msgs := []string{"first", "second", "third"}
	for i, m := range msgs {
		if _, err := repo.Append(ctx(t), models.OutputLogEntry{OccurredAt: base.Add(time.Duration(i) * time.Minute), Message: m}); err != nil {
			t.Fatalf("Append %q: %v", m, err)
		}
	}

	all, err := repo.List(ctx(t), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("want 3 entries, got %d", len(all))
	}
	for i, e := range all {
		if e.Message != msgs[i] {
			t.Fatalf("entry %d = %q, want %q", i, e.Message, msgs[i])
		}
		if i > 0 && e.Seq <= all[i-1].Seq {
			t.Fatalf("sequence not increasing: %+v", all)
		}
	}

	window, err := repo.List(ctx(t), base.Add(time.Minute), base.Add(time.Minute))
	if err != nil {
		t.Fatalf("List window: %v", err)
	}
	if len(window) != 1 || window[0].Message != "second" {
		t.Fatalf("unexpected window: %+v", window)
	}

	if err := repo.Clear(ctx(t)); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	all, err = repo.List(ctx(t), time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("List after clear: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty log after clear, got %d", len(all))
	}
}
