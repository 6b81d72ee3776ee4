package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"opencog_dashboard/internal/config"
	"opencog_dashboard/internal/models"
	"opencog_dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

// mockDashboard implements every dashboard-facing service interface.
type mockDashboard struct {
	mu sync.Mutex

	active        bool
	activateCalls int
	activateErr   error
	lastLocation  string

	view      models.DashboardView
	snapErr   error
	snapCalls int
	subs      []chan struct{}

	connectErr      error
	connectCalls    int
	lastConnectURL  string
	disconnectCalls int

	execResult  string
	execErr     error
	execCalls   int
	lastExec    string
	submitCalls int

	setFieldErr error
	lastField   models.FieldID
	lastValue   string

	keyHandled bool
	keyErr     error
	lastCtrl   bool
	lastKey    string

	refreshErr   error
	refreshCalls int
	clearErr     error
	clearCalls   int
	lastConfirm  bool

	clickErr  error
	lastClick models.ControlID
	enabled   map[models.ControlID]bool

	output     *mockOutputLog
	automation *mockAutomation
}

func newMockDashboard() *mockDashboard {
	return &mockDashboard{
		view: models.DashboardView{
			Active:    true,
			Status:    models.StatusIndicator{Class: models.IndicatorOffline, Text: "Disconnected"},
			Controls:  models.DisconnectedControls(),
			Fields:    models.Fields{ServerURL: config.DefaultServerURL},
			AtomPanel: models.AtomPanel{Kind: models.PanelPlaceholder},
		},
		enabled:    map[models.ControlID]bool{},
		output:     &mockOutputLog{},
		automation: &mockAutomation{},
	}
}

func (m *mockDashboard) service() *service.Service {
	return &service.Service{
		View:       m,
		Connection: m,
		Commands:   m,
		AtomSpace:  m,
		Buttons:    m,
		OutputLog:  m.output,
		Automation: m.automation,
	}
}

func (m *mockDashboard) ShouldActivate(locationURL string) bool {
	m.mu.Lock()
	m.lastLocation = locationURL
	m.mu.Unlock()
	return service.ShouldActivate(locationURL, config.DefaultAllowList)
}

func (m *mockDashboard) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *mockDashboard) Activate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activateCalls++
	m.active = true
	return m.activateErr
}

func (m *mockDashboard) Snapshot(ctx context.Context) (models.DashboardView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapCalls++
	return m.view, m.snapErr
}

func (m *mockDashboard) snapshots() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapCalls
}

func (m *mockDashboard) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch, func() {}
}

// setView replaces the snapshot and signals subscribers.
func (m *mockDashboard) setView(v models.DashboardView) {
	m.mu.Lock()
	m.view = v
	subs := append([]chan struct{}(nil), m.subs...)
	m.mu.Unlock()
	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (m *mockDashboard) subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

func (m *mockDashboard) Connect(ctx context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectCalls++
	m.lastConnectURL = url
	return m.connectErr
}

func (m *mockDashboard) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disconnectCalls++
	return nil
}

func (m *mockDashboard) ExecuteCommand(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.execCalls++
	m.lastExec = text
	return m.execResult, m.execErr
}

func (m *mockDashboard) SubmitCommand(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submitCalls++
	return m.execResult, m.execErr
}

func (m *mockDashboard) SetField(ctx context.Context, field models.FieldID, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastField = field
	m.lastValue = value
	return m.setFieldErr
}

func (m *mockDashboard) HandleKey(ctx context.Context, ctrl bool, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastCtrl = ctrl
	m.lastKey = key
	return m.keyHandled, m.keyErr
}

func (m *mockDashboard) RefreshAtomSpace(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCalls++
	return m.refreshErr
}

func (m *mockDashboard) ClearAtomSpace(ctx context.Context, confirm service.Confirmer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearCalls++
	m.lastConfirm = confirm != nil && confirm.Confirm(ctx, "")
	if m.clearErr != nil {
		return m.clearErr
	}
	if !m.lastConfirm {
		return service.ErrClearDeclined
	}
	return nil
}

func (m *mockDashboard) ControlEnabled(id models.ControlID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled[id]
}

func (m *mockDashboard) Click(ctx context.Context, id models.ControlID, confirm service.Confirmer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastClick = id
	m.lastConfirm = confirm != nil && confirm.Confirm(ctx, "")
	return m.clickErr
}

type mockOutputLog struct {
	resp   []models.OutputLogEntry
	err    error
	last   service.OutputFilter
	called int
}

func (m *mockOutputLog) List(ctx context.Context, f service.OutputFilter) ([]models.OutputLogEntry, error) {
	m.called++
	m.last = f
	return m.resp, m.err
}

type mockAutomation struct {
	typeErr   error
	lastType  string
	submitted bool
	submitErr error
	focusErr  error
	focused   int

	forceInputErr error
	lastField     models.FieldID
	lastText      string

	forceClickErr error
	lastControl   models.ControlID
	lastConfirm   bool
}

func (m *mockAutomation) Name() string { return service.ShimName }
func (m *mockAutomation) URL() string  { return service.ShimURL }

func (m *mockAutomation) TypeAndNotify(ctx context.Context, text string) error {
	m.lastType = text
	return m.typeErr
}

func (m *mockAutomation) SubmitIfEnabled(ctx context.Context) (bool, error) {
	return m.submitted, m.submitErr
}

func (m *mockAutomation) FocusInput() error {
	m.focused++
	return m.focusErr
}

func (m *mockAutomation) ForceInputAndNotify(ctx context.Context, field models.FieldID, text string) error {
	m.lastField = field
	m.lastText = text
	return m.forceInputErr
}

func (m *mockAutomation) ForceEnableAndClick(ctx context.Context, id models.ControlID, confirm service.Confirmer) error {
	m.lastControl = id
	m.lastConfirm = confirm != nil && confirm.Confirm(ctx, "")
	return m.forceClickErr
}

// ---- Shared Test Helpers ----

const testHost = "localhost:8080"

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// doRequest sends a request addressed to an allow-listed host.
func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Host = testHost
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
