package service

import (
	"context"
	"fmt"

	"opencog_dashboard/internal/models"
)

const clearPrompt = "Are you sure you want to clear the AtomSpace? This action cannot be undone."

// Confirmer answers a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(ctx context.Context, message string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, message string) bool { return f(ctx, message) }

// Fixed answers.
var (
	AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) bool { return true })
	NeverConfirm  Confirmer = ConfirmFunc(func(context.Context, string) bool { return false })
)

// RefreshAtomSpace reloads the atom panel. No-op when not connected.
func (c *DashboardController) RefreshAtomSpace(ctx context.Context) error {
	c.mu.Lock()
	if c.state != models.Connected {
		c.mu.Unlock()
		return nil
	}
	c.panelGen++
	gen := c.panelGen
	c.panel = models.AtomPanel{Kind: models.PanelLoading}
	c.mu.Unlock()
	c.notify()

	atoms, err := c.fetchAtoms(ctx)

	c.mu.Lock()
	if gen != c.panelGen {
		c.mu.Unlock()
		return ErrSuperseded
	}
	if err != nil {
		c.panel = models.AtomPanel{Kind: models.PanelError, Error: fmt.Sprintf(msgLoadError, err)}
	} else {
		c.panel = models.AtomPanel{Kind: models.PanelAtoms, Atoms: atoms, Summary: models.Summarize(atoms)}
	}
	c.mu.Unlock()
	c.notify()

	if err != nil {
		c.log.Errorw("atomspace_refresh_failed", "err", err)
		return fmt.Errorf("refresh atomspace: %w", err)
	}
	return nil
}

// ClearAtomSpace asks confirm first; a declined prompt changes nothing.
// The backend snapshot is not modified, so the next refresh shows the same
// atoms again.
func (c *DashboardController) ClearAtomSpace(ctx context.Context, confirm Confirmer) error {
	if !c.isConnected() {
		return nil
	}
	if confirm == nil || !confirm.Confirm(ctx, clearPrompt) {
		return ErrClearDeclined
	}

	c.addOutput(ctx, msgClearing)

	c.mu.Lock()
	c.panelGen++
	gen := c.panelGen
	c.mu.Unlock()

	if err := c.clearAtoms(ctx); err != nil {
		c.log.Errorw("atomspace_clear_failed", "err", err)
		c.addOutput(ctx, fmt.Sprintf(msgClearError, err))
		return fmt.Errorf("clear atomspace: %w", err)
	}

	c.addOutput(ctx, msgCleared)

	c.mu.Lock()
	if gen != c.panelGen {
		c.mu.Unlock()
		return ErrSuperseded
	}
	c.panel = models.AtomPanel{Kind: models.PanelEmpty}
	c.mu.Unlock()
	c.notify()
	return nil
}

func (c *DashboardController) fetchAtoms(ctx context.Context) (atoms []models.Atom, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panic: %v", r)
		}
	}()
	return c.backend.FetchAtoms(ctx)
}

func (c *DashboardController) clearAtoms(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend panic: %v", r)
		}
	}()
	return c.backend.ClearAtoms(ctx)
}
