package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"opencog_dashboard/internal/models"
)

// memOutputRepo is an in-memory repository.OutputRepo.
type memOutputRepo struct {
	mu        sync.Mutex
	entries   []models.OutputLogEntry
	seq       int64
	appendErr error
	listErr   error
	clearErr  error

	gotFrom time.Time
	gotTo   time.Time
}

func (r *memOutputRepo) Append(ctx context.Context, e models.OutputLogEntry) (models.OutputLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return models.OutputLogEntry{}, r.appendErr
	}
	r.seq++
	e.Seq = r.seq
	r.entries = append(r.entries, e)
	return e, nil
}

func (r *memOutputRepo) List(ctx context.Context, from, to time.Time) ([]models.OutputLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gotFrom, r.gotTo = from, to
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.OutputLogEntry, 0, len(r.entries))
	for _, e := range r.entries {
		if !from.IsZero() && e.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *memOutputRepo) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.clearErr != nil {
		return r.clearErr
	}
	r.entries = nil
	return nil
}

func (r *memOutputRepo) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Message
	}
	return out
}

// fakeBackend counts calls and can be told to fail, panic or block.
type fakeBackend struct {
	mu sync.Mutex

	connectGate chan struct{}
	connectErr  error
	evalErr     error
	evalPanic   bool
	fetchErr    error
	clearErr    error

	connects int
	evals    int
	fetches  int
	clears   int
	commands []string
}

func (b *fakeBackend) Connect(ctx context.Context, url string) (ServerInfo, error) {
	b.mu.Lock()
	b.connects++
	gate := b.connectGate
	err := b.connectErr
	b.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return ServerInfo{}, ctx.Err()
		}
	}
	if err != nil {
		return ServerInfo{}, err
	}
	return ServerInfo{Version: SimulatedVersion}, nil
}

func (b *fakeBackend) Evaluate(ctx context.Context, command string) (string, error) {
	b.mu.Lock()
	b.evals++
	b.commands = append(b.commands, command)
	err, panics := b.evalErr, b.evalPanic
	b.mu.Unlock()
	if panics {
		panic("evaluator exploded")
	}
	if err != nil {
		return "", err
	}
	return evaluateRules(command), nil
}

func (b *fakeBackend) FetchAtoms(ctx context.Context) ([]models.Atom, error) {
	b.mu.Lock()
	b.fetches++
	err := b.fetchErr
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return FixedSnapshot(), nil
}

func (b *fakeBackend) ClearAtoms(ctx context.Context) error {
	b.mu.Lock()
	b.clears++
	err := b.clearErr
	b.mu.Unlock()
	return err
}

func (b *fakeBackend) counts() (connects, evals, fetches, clears int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.connects, b.evals, b.fetches, b.clears
}

const testServerURL = "http://localhost:17020"

func newTestController(t *testing.T, b Backend) (*DashboardController, *memOutputRepo) {
	t.Helper()
	repo := &memOutputRepo{}
	c := NewDashboardController(b, repo, Options{
		AllowList:            []string{"localhost:8080", "localhost:17020", "opencog-dashboard.local"},
		DefaultServerURL:     testServerURL,
		MutationRefreshDelay: 5 * time.Millisecond,
	})
	t.Cleanup(c.Close)
	return c, repo
}

// connected returns a controller that finished connecting and its first refresh.
func connected(t *testing.T, b *fakeBackend) (*DashboardController, *memOutputRepo) {
	t.Helper()
	c, repo := newTestController(t, b)
	if err := c.Connect(context.Background(), ""); err != nil {
		t.Fatalf("connect: %v", err)
	}
	c.Wait()
	return c, repo
}

func eventually(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("condition not met in time")
}

func snapshot(t *testing.T, c *DashboardController) models.DashboardView {
	t.Helper()
	v, err := c.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	return v
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
