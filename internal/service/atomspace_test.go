package service

import (
	"context"
	"errors"
	"testing"

	"opencog_dashboard/internal/models"
)

func TestRefreshAtomSpace_NoopWhenDisconnected(t *testing.T) {
	b := &fakeBackend{}
	c, _ := newTestController(t, b)
	if err := c.RefreshAtomSpace(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, _, fetches, _ := b.counts(); fetches != 0 {
		t.Fatalf("fetches=%d", fetches)
	}
	if v := snapshot(t, c); v.AtomPanel.Kind != models.PanelPlaceholder {
		t.Fatalf("panel=%+v", v.AtomPanel)
	}
}

func TestRefreshAtomSpace_RendersSnapshotAndSummary(t *testing.T) {
	b := &fakeBackend{}
	c, _ := connected(t, b)
	if err := c.RefreshAtomSpace(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	p := snapshot(t, c).AtomPanel
	if p.Kind != models.PanelAtoms {
		t.Fatalf("panel=%+v", p)
	}
	want := models.AtomSummary{Total: 3, Nodes: 2, Links: 1}
	if p.Summary != want {
		t.Fatalf("summary=%+v, want %+v", p.Summary, want)
	}
	labels := make([]string, len(p.Atoms))
	for i, a := range p.Atoms {
		labels[i] = a.Type + " " + a.Label() + " " + a.TV.String()
	}
	wantLabels := []string{
		`ConceptNode "cat" [1.0, 0.9]`,
		`ConceptNode "animal" [1.0, 0.8]`,
		`InheritanceLink cat → animal [0.9, 0.95]`,
	}
	if !equalStrings(labels, wantLabels) {
		t.Fatalf("atoms=%q, want %q", labels, wantLabels)
	}
}

func TestRefreshAtomSpace_ErrorRendersInPanel(t *testing.T) {
	b := &fakeBackend{}
	c, repo := connected(t, b)
	b.mu.Lock()
	b.fetchErr = errors.New("boom")
	b.mu.Unlock()
	before := len(repo.messages())

	if err := c.RefreshAtomSpace(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	p := snapshot(t, c).AtomPanel
	if p.Kind != models.PanelError || p.Error != "Error loading AtomSpace: boom" {
		t.Fatalf("panel=%+v", p)
	}
	if len(repo.messages()) != before {
		t.Fatalf("refresh errors go to the panel, not the output log")
	}
}

func TestClearAtomSpace_Declined(t *testing.T) {
	b := &fakeBackend{}
	c, repo := connected(t, b)
	before := snapshot(t, c)
	beforeLog := repo.messages()

	var asked string
	confirm := ConfirmFunc(func(_ context.Context, msg string) bool {
		asked = msg
		return false
	})
	if err := c.ClearAtomSpace(context.Background(), confirm); !errors.Is(err, ErrClearDeclined) {
		t.Fatalf("expected ErrClearDeclined, got %v", err)
	}
	if asked != "Are you sure you want to clear the AtomSpace? This action cannot be undone." {
		t.Fatalf("prompt=%q", asked)
	}
	if _, _, _, clears := b.counts(); clears != 0 {
		t.Fatalf("clears=%d", clears)
	}
	if !equalStrings(repo.messages(), beforeLog) {
		t.Fatalf("log changed on decline")
	}
	if after := snapshot(t, c); after.AtomPanel.Kind != before.AtomPanel.Kind {
		t.Fatalf("panel changed on decline")
	}

	if err := c.ClearAtomSpace(context.Background(), nil); !errors.Is(err, ErrClearDeclined) {
		t.Fatalf("nil confirmer must decline, got %v", err)
	}
}

func TestClearAtomSpace_ConfirmedThenRefreshRestores(t *testing.T) {
	b := &fakeBackend{}
	c, repo := connected(t, b)
	before := len(repo.messages())

	if err := c.ClearAtomSpace(context.Background(), AlwaysConfirm); err != nil {
		t.Fatalf("clear: %v", err)
	}
	msgs := repo.messages()[before:]
	if !equalStrings(msgs, []string{"🗑️ Clearing AtomSpace...", "✅ AtomSpace cleared"}) {
		t.Fatalf("log=%q", msgs)
	}
	if p := snapshot(t, c).AtomPanel; p.Kind != models.PanelEmpty {
		t.Fatalf("panel=%+v", p)
	}

	if err := c.RefreshAtomSpace(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if p := snapshot(t, c).AtomPanel; p.Kind != models.PanelAtoms || p.Summary.Total != 3 {
		t.Fatalf("snapshot must survive a clear, got %+v", p)
	}
}

func TestClearAtomSpace_NoopWhenDisconnected(t *testing.T) {
	b := &fakeBackend{}
	c, repo := newTestController(t, b)
	called := false
	confirm := ConfirmFunc(func(context.Context, string) bool {
		called = true
		return true
	})
	if err := c.ClearAtomSpace(context.Background(), confirm); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if called || len(repo.messages()) != 0 {
		t.Fatalf("disconnected clear must not prompt or log")
	}
}

func TestClearAtomSpace_BackendError(t *testing.T) {
	b := &fakeBackend{}
	c, repo := connected(t, b)
	b.mu.Lock()
	b.clearErr = errors.New("read only")
	b.mu.Unlock()

	if err := c.ClearAtomSpace(context.Background(), AlwaysConfirm); err == nil {
		t.Fatalf("expected error")
	}
	msgs := repo.messages()
	if msgs[len(msgs)-1] != "❌ Error clearing AtomSpace: read only" {
		t.Fatalf("log=%q", msgs)
	}
	if p := snapshot(t, c).AtomPanel; p.Kind != models.PanelAtoms {
		t.Fatalf("panel should keep the atoms on failure, got %+v", p)
	}
}

func TestRefreshAtomSpace_SupersededByDisconnect(t *testing.T) {
	b := &fakeBackend{}
	c, _ := connected(t, b)

	// Disconnect between the loading placeholder and the completion.
	c.backend = &backendFunc{fakeBackend: b, fetch: func(ctx context.Context) ([]models.Atom, error) {
		_ = c.Disconnect(ctx)
		return FixedSnapshot(), nil
	}}
	if err := c.RefreshAtomSpace(context.Background()); !errors.Is(err, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded, got %v", err)
	}
	if p := snapshot(t, c).AtomPanel; p.Kind != models.PanelPlaceholder {
		t.Fatalf("stale refresh overwrote the panel: %+v", p)
	}
}

// backendFunc overrides FetchAtoms on top of the fake.
type backendFunc struct {
	*fakeBackend
	fetch func(ctx context.Context) ([]models.Atom, error)
}

func (b *backendFunc) FetchAtoms(ctx context.Context) ([]models.Atom, error) {
	return b.fetch(ctx)
}
