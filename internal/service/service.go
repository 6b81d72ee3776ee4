package service

import (
	"context"

	"opencog_dashboard/internal/models"
	"opencog_dashboard/internal/repository"
)

// View exposes activation and the rendered dashboard state.
type View interface {
	ShouldActivate(locationURL string) bool
	Active() bool
	Activate(ctx context.Context) error
	Snapshot(ctx context.Context) (models.DashboardView, error)
	Subscribe() (<-chan struct{}, func())
}

// Connection drives the (simulated) server link.
type Connection interface {
	Connect(ctx context.Context, url string) error
	Disconnect(ctx context.Context) error
}

// Commands covers the command box.
type Commands interface {
	ExecuteCommand(ctx context.Context, text string) (string, error)
	SubmitCommand(ctx context.Context) (string, error)
	SetField(ctx context.Context, field models.FieldID, value string) error
	HandleKey(ctx context.Context, ctrl bool, key string) (bool, error)
}

// AtomSpace covers the AtomSpace panel.
type AtomSpace interface {
	RefreshAtomSpace(ctx context.Context) error
	ClearAtomSpace(ctx context.Context, confirm Confirmer) error
}

// Buttons presses dashboard buttons the way a user would.
type Buttons interface {
	ControlEnabled(id models.ControlID) bool
	Click(ctx context.Context, id models.ControlID, confirm Confirmer) error
}

// OutputLog exposes the output panel history with filtering.
type OutputLog interface {
	List(ctx context.Context, f OutputFilter) ([]models.OutputLogEntry, error)
}

// Automation is the OpenCogAsk surface for external controllers.
type Automation interface {
	Name() string
	URL() string
	TypeAndNotify(ctx context.Context, text string) error
	SubmitIfEnabled(ctx context.Context) (bool, error)
	FocusInput() error
	ForceInputAndNotify(ctx context.Context, field models.FieldID, text string) error
	ForceEnableAndClick(ctx context.Context, id models.ControlID, confirm Confirmer) error
}

// Service aggregates every sub-service the HTTP layer needs.
type Service struct {
	View       View
	Connection Connection
	Commands   Commands
	AtomSpace  AtomSpace
	Buttons    Buttons
	OutputLog  OutputLog
	Automation Automation
	// Registry is nil unless the host provided one.
	Registry *Registry

	dashboard *DashboardController
}

// Deps are the collaborators NewService wires together.
type Deps struct {
	Repos    *repository.Repository
	Backend  Backend
	Options  Options
	Registry *Registry
}

// NewService wires the repository layer and backend into concrete services.
func NewService(d Deps) *Service {
	dash := NewDashboardController(d.Backend, d.Repos.OutputRepo, d.Options)
	shim := NewShim(dash)
	if Register(d.Registry, shim) {
		dash.log.Infow("automation_registered", "key", RegistryKey)
	}
	return &Service{
		View:       dash,
		Connection: dash,
		Commands:   dash,
		AtomSpace:  dash,
		Buttons:    dash,
		OutputLog:  NewOutputLogService(d.Repos.OutputRepo),
		Automation: shim,
		Registry:   d.Registry,
		dashboard:  dash,
	}
}

// Close stops background work of the dashboard.
func (s *Service) Close() {
	if s.dashboard != nil {
		s.dashboard.Close()
	}
}
