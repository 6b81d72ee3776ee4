package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"opencog_dashboard/internal/models"

	"github.com/agnivade/levenshtein"
)

// Registry identity of the shim.
const (
	RegistryKey = "OpenCogAsk"
	ShimName    = "OpenCog"
	ShimURL     = "http://localhost:8080"
)

// Asker is anything a host application can keep in its automation registry.
type Asker interface {
	Name() string
	URL() string
}

// Registry is the host-provided automation registry. The dashboard never creates
// one for itself; it only joins a registry handed to it.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Asker
}

// NewRegistry builds a registry pre-populated with the host's entries.
func NewRegistry(initial map[string]Asker) *Registry {
	entries := make(map[string]Asker, len(initial)+1)
	for k, v := range initial {
		entries[k] = v
	}
	return &Registry{entries: entries}
}

// Lookup returns the entry registered under key.
func (r *Registry) Lookup(key string) (Asker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.entries[key]
	return a, ok
}

// Keys lists registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r *Registry) set(key string, a Asker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = a
}

// Register merges shim into reg under RegistryKey, keeping other keys.
// With no registry nothing is installed and false is returned.
func Register(reg *Registry, shim *Shim) bool {
	if reg == nil || shim == nil {
		return false
	}
	reg.set(RegistryKey, shim)
	return true
}

// Controllable is the part of the dashboard the shim drives.
type Controllable interface {
	SetField(ctx context.Context, field models.FieldID, value string) error
	Focus(field models.FieldID) error
	ControlEnabled(id models.ControlID) bool
	SetControlEnabled(id models.ControlID, enabled bool) error
	Click(ctx context.Context, id models.ControlID, confirm Confirmer) error
}

// Shim lets an external controller drive the dashboard as a user would.
type Shim struct {
	target Controllable
}

func NewShim(target Controllable) *Shim {
	return &Shim{target: target}
}

func (s *Shim) Name() string { return ShimName }
func (s *Shim) URL() string  { return ShimURL }

// TypeAndNotify focuses the command field, sets its value and raises the
// input notification.
func (s *Shim) TypeAndNotify(ctx context.Context, text string) error {
	return s.ForceInputAndNotify(ctx, models.FieldCommand, text)
}

// SubmitIfEnabled clicks execute only when it is enabled. submitted is false
// for the silent no-op.
func (s *Shim) SubmitIfEnabled(ctx context.Context) (submitted bool, err error) {
	if !s.target.ControlEnabled(models.ControlExecute) {
		return false, nil
	}
	return true, s.target.Click(ctx, models.ControlExecute, nil)
}

// FocusInput moves focus to the command field.
func (s *Shim) FocusInput() error {
	return s.target.Focus(models.FieldCommand)
}

// ForceInputAndNotify focuses field, sets it to text and notifies listeners.
func (s *Shim) ForceInputAndNotify(ctx context.Context, field models.FieldID, text string) error {
	if err := s.target.Focus(field); err != nil {
		return err
	}
	return s.target.SetField(ctx, field, text)
}

// ForceEnableAndClick enables id and clicks it, bypassing the connection
// guard that normally keeps it disabled. This is the automation escape hatch.
func (s *Shim) ForceEnableAndClick(ctx context.Context, id models.ControlID, confirm Confirmer) error {
	if err := s.target.SetControlEnabled(id, true); err != nil {
		return err
	}
	return s.target.Click(ctx, id, confirm)
}

var controlAliases = map[string]models.ControlID{
	"connect":    models.ControlConnect,
	"disconnect": models.ControlDisconnect,
	"execute":    models.ControlExecute,
	"refresh":    models.ControlRefresh,
	"clear":      models.ControlClear,
}

var fieldAliases = map[string]models.FieldID{
	"url":     models.FieldServerURL,
	"command": models.FieldCommand,
}

// ParseControlID accepts an element id ("connect-btn") or a short name
// ("connect"). Unknown names get a did-you-mean hint.
func ParseControlID(name string) (models.ControlID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	candidates := make([]string, 0, 2*len(controlAliases))
	for alias, id := range controlAliases {
		if name == alias || name == string(id) {
			return id, nil
		}
		candidates = append(candidates, alias)
	}
	return "", fmt.Errorf("%w: %q%s", ErrUnknownControl, name, suggest(name, candidates))
}

// ParseFieldID accepts an element id ("scheme-command") or a short name
// ("command").
func ParseFieldID(name string) (models.FieldID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	candidates := make([]string, 0, 2*len(fieldAliases))
	for alias, id := range fieldAliases {
		if name == alias || name == string(id) {
			return id, nil
		}
		candidates = append(candidates, alias)
	}
	return "", fmt.Errorf("%w: %q%s", ErrUnknownField, name, suggest(name, candidates))
}

// maxSuggestDistance bounds how different a typo may be and still get a hint.
const maxSuggestDistance = 3

func suggest(name string, candidates []string) string {
	sort.Strings(candidates)
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
