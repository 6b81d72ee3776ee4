package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"opencog_dashboard/internal/logger"
	"opencog_dashboard/internal/models"
	"opencog_dashboard/internal/repository"
)

// Domain errors reported by the dashboard. Every one of them is also written
// to the output panel, so callers may treat them as informational.
var (
	ErrNotConnected    = errors.New("not connected to OpenCog server")
	ErrEmptyCommand    = errors.New("please enter a command")
	ErrClearDeclined   = errors.New("clear declined")
	ErrSuperseded      = errors.New("superseded by a newer operation")
	ErrControlDisabled = errors.New("control is disabled")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownControl  = errors.New("unknown control")
)

// Output panel messages.
const (
	msgAttempting    = "Attempting to connect to %s..."
	msgConnected     = "✅ Connected to OpenCog server at %s"
	msgServerInfo    = "Server info: OpenCog version %s (simulated)"
	msgConnectFailed = "❌ Connection failed: %v"
	msgDisconnected  = "📴 Disconnected from OpenCog server"
	msgNotConnected  = "❌ Not connected to OpenCog server"
	msgEmptyCommand  = "❌ Please enter a command"
	msgCommandEcho   = "> %s"
	msgCommandError  = "❌ Error: %v"
	msgClearing      = "🗑️ Clearing AtomSpace..."
	msgCleared       = "✅ AtomSpace cleared"
	msgClearError    = "❌ Error clearing AtomSpace: %v"
	msgLoadError     = "Error loading AtomSpace: %v"
)

// Header status texts.
const (
	statusDisconnected     = "Disconnected"
	statusConnecting       = "Connecting..."
	statusConnected        = "Connected"
	statusConnectionFailed = "Connection Failed"
)

// Options tunes a DashboardController.
type Options struct {
	AllowList            []string
	DefaultServerURL     string
	MutationRefreshDelay time.Duration
	Logger               *logger.Logger
	Now                  func() time.Time
}

// DashboardController owns the whole dashboard state. All fields below mu are
// guarded by it; backend calls and output appends happen outside the lock.
//
// Connect/disconnect and atom panel updates carry generation tokens: a
// completion whose token is no longer current is dropped.
type DashboardController struct {
	backend Backend
	output  repository.OutputRepo
	log     *logger.Logger
	opts    Options

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu       sync.Mutex
	active   bool
	state    models.ConnectionState
	endpoint string
	status   models.StatusIndicator
	controls models.Controls
	fields   models.Fields
	focus    models.FieldID
	panel    models.AtomPanel
	connGen  uint64
	panelGen uint64

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

func NewDashboardController(backend Backend, output repository.OutputRepo, opts Options) *DashboardController {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	ctx, cancel := context.WithCancel(context.Background())
	c := &DashboardController{
		backend: backend,
		output:  output,
		log:     opts.Logger,
		opts:    opts,
		baseCtx: ctx,
		cancel:  cancel,
		subs:    make(map[int]chan struct{}),
	}
	c.resetViewLocked()
	return c
}

// resetViewLocked puts the rendered view back to the initial markup.
func (c *DashboardController) resetViewLocked() {
	c.status = models.StatusIndicator{Class: models.IndicatorOffline, Text: statusDisconnected}
	c.controls = models.DisconnectedControls()
	c.fields = models.Fields{ServerURL: c.opts.DefaultServerURL}
	c.focus = ""
	c.panel = models.AtomPanel{Kind: models.PanelPlaceholder}
	c.panelGen++
}

// ShouldActivate reports whether locationURL is one of the dashboard pages.
func (c *DashboardController) ShouldActivate(locationURL string) bool {
	return ShouldActivate(locationURL, c.opts.AllowList)
}

// Active reports whether Activate has run.
func (c *DashboardController) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Activate replaces the view with the initial dashboard and empties the
// output panel. It does not touch the connection: activating twice while
// connected leaves a connected controller behind a freshly reset view.
func (c *DashboardController) Activate(ctx context.Context) error {
	c.mu.Lock()
	c.active = true
	c.resetViewLocked()
	c.mu.Unlock()

	err := c.output.Clear(ctx)
	c.notify()
	if err != nil {
		return fmt.Errorf("reset output: %w", err)
	}
	c.log.Infow("dashboard_activated")
	return nil
}

// Snapshot returns the current view including the whole output log.
func (c *DashboardController) Snapshot(ctx context.Context) (models.DashboardView, error) {
	c.mu.Lock()
	v := models.DashboardView{
		Active:    c.active,
		State:     c.state,
		Endpoint:  c.endpoint,
		Status:    c.status,
		Controls:  c.controls,
		Fields:    c.fields,
		Focus:     c.focus,
		AtomPanel: c.panel,
	}
	c.mu.Unlock()

	out, err := c.output.List(ctx, time.Time{}, time.Time{})
	if err != nil {
		return models.DashboardView{}, fmt.Errorf("load output: %w", err)
	}
	v.Output = out
	return v, nil
}

// State returns the connection state and endpoint.
func (c *DashboardController) State() (models.ConnectionState, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.endpoint
}

// Connect starts a (simulated) connection. An empty url falls back to the
// server URL field and then to the configured default. Calling it again
// while a connect is pending restarts the sequence; the older one is dropped.
func (c *DashboardController) Connect(ctx context.Context, url string) error {
	c.mu.Lock()
	if url == "" {
		url = c.fields.ServerURL
	}
	if url == "" {
		url = c.opts.DefaultServerURL
	}
	c.connGen++
	c.panelGen++
	gen := c.connGen
	c.state = models.Connecting
	c.endpoint = url
	c.fields.ServerURL = url
	c.status = models.StatusIndicator{Class: models.IndicatorConnecting, Text: statusConnecting}
	// Connect stays clickable so a new attempt can restart the sequence.
	c.controls = models.DisconnectedControls()
	c.panel = models.AtomPanel{Kind: models.PanelPlaceholder}
	c.mu.Unlock()
	c.notify()

	c.addOutput(ctx, fmt.Sprintf(msgAttempting, url))

	info, err := c.backend.Connect(ctx, url)

	c.mu.Lock()
	if gen != c.connGen {
		c.mu.Unlock()
		c.log.Debugw("connect_superseded", "url", url)
		return ErrSuperseded
	}
	if err != nil {
		c.state = models.Failed
		c.endpoint = ""
		c.status = models.StatusIndicator{Class: models.IndicatorOffline, Text: statusConnectionFailed}
		c.controls = models.DisconnectedControls()
		c.panel = models.AtomPanel{Kind: models.PanelPlaceholder}
		c.mu.Unlock()
		c.notify()
		c.log.Errorw("connect_failed", "url", url, "err", err)
		c.addOutput(ctx, fmt.Sprintf(msgConnectFailed, err))
		return fmt.Errorf("connect %s: %w", url, err)
	}
	c.state = models.Connected
	c.endpoint = url
	c.status = models.StatusIndicator{Class: models.IndicatorOnline, Text: statusConnected}
	c.controls = models.ConnectedControls()
	c.mu.Unlock()
	c.notify()

	c.log.Infow("connected", "url", url, "version", info.Version)
	c.addOutput(ctx, fmt.Sprintf(msgConnected, url))
	c.addOutput(ctx, fmt.Sprintf(msgServerInfo, info.Version))

	c.goTracked("refresh_after_connect", func(ctx context.Context) {
		_ = c.RefreshAtomSpace(ctx)
	})
	return nil
}

// Disconnect always succeeds, even when already disconnected.
func (c *DashboardController) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	c.connGen++
	c.panelGen++
	c.state = models.Disconnected
	c.endpoint = ""
	c.status = models.StatusIndicator{Class: models.IndicatorOffline, Text: statusDisconnected}
	c.controls = models.DisconnectedControls()
	c.panel = models.AtomPanel{Kind: models.PanelPlaceholder}
	c.mu.Unlock()
	c.notify()

	c.log.Infow("disconnected")
	c.addOutput(ctx, msgDisconnected)
	return nil
}

// SetField changes an input value and notifies listeners, like an input event.
func (c *DashboardController) SetField(ctx context.Context, field models.FieldID, value string) error {
	c.mu.Lock()
	switch field {
	case models.FieldServerURL:
		c.fields.ServerURL = value
	case models.FieldCommand:
		c.fields.Command = value
	default:
		c.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	c.mu.Unlock()
	c.notify()
	return nil
}

// Focus moves the input focus to field.
func (c *DashboardController) Focus(field models.FieldID) error {
	if field != models.FieldServerURL && field != models.FieldCommand {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	c.mu.Lock()
	c.focus = field
	c.mu.Unlock()
	c.notify()
	return nil
}

// ControlEnabled reports whether the button id can be clicked.
func (c *DashboardController) ControlEnabled(id models.ControlID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controls.Enabled(id)
}

// SetControlEnabled flips a button regardless of the connection state.
func (c *DashboardController) SetControlEnabled(id models.ControlID, enabled bool) error {
	if !isKnownControl(id) {
		return fmt.Errorf("%w: %q", ErrUnknownControl, id)
	}
	c.mu.Lock()
	c.controls.Set(id, enabled)
	c.mu.Unlock()
	c.notify()
	return nil
}

// Click presses a button. A disabled button ignores the click and
// ErrControlDisabled is returned. confirm answers the clear prompt.
func (c *DashboardController) Click(ctx context.Context, id models.ControlID, confirm Confirmer) error {
	if !isKnownControl(id) {
		return fmt.Errorf("%w: %q", ErrUnknownControl, id)
	}
	if !c.ControlEnabled(id) {
		return fmt.Errorf("%w: %s", ErrControlDisabled, id)
	}
	switch id {
	case models.ControlConnect:
		return c.Connect(ctx, "")
	case models.ControlDisconnect:
		return c.Disconnect(ctx)
	case models.ControlExecute:
		_, err := c.SubmitCommand(ctx)
		return err
	case models.ControlRefresh:
		return c.RefreshAtomSpace(ctx)
	default:
		return c.ClearAtomSpace(ctx, confirm)
	}
}

func isKnownControl(id models.ControlID) bool {
	for _, known := range models.AllControls {
		if id == known {
			return true
		}
	}
	return false
}

// Subscribe returns a channel that receives a signal after every view change.
// Signals coalesce; call the returned func to unsubscribe.
func (c *DashboardController) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	c.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subMu.Lock()
			delete(c.subs, id)
			c.subMu.Unlock()
		})
	}
}

func (c *DashboardController) notify() {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for _, ch := range c.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (c *DashboardController) isConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == models.Connected
}

// addOutput appends a line to the output panel. A failing store is logged
// and otherwise ignored.
func (c *DashboardController) addOutput(ctx context.Context, message string) {
	_, err := c.output.Append(ctx, models.OutputLogEntry{
		OccurredAt: c.opts.Now(),
		Message:    message,
	})
	if err != nil {
		c.log.Errorw("output_append_failed", "err", err, "message", message)
		return
	}
	c.log.Debugw("output", "message", message)
	c.notify()
}

// goTracked runs fn in the background on the controller's own context.
func (c *DashboardController) goTracked(name string, fn func(ctx context.Context)) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer c.recoverTask(name)
		fn(c.baseCtx)
	}()
}

// afterTracked is goTracked delayed by d.
func (c *DashboardController) afterTracked(d time.Duration, name string, fn func(ctx context.Context)) {
	c.wg.Add(1)
	time.AfterFunc(d, func() {
		defer c.wg.Done()
		defer c.recoverTask(name)
		fn(c.baseCtx)
	})
}

func (c *DashboardController) recoverTask(name string) {
	if r := recover(); r != nil {
		c.log.Errorw("background_task_panic", "task", name, "panic", r)
		c.addOutput(c.baseCtx, fmt.Sprintf(msgCommandError, r))
	}
}

// Wait blocks until all background refreshes have finished.
func (c *DashboardController) Wait() {
	c.wg.Wait()
}

// Close cancels pending simulated calls and waits for them to return.
func (c *DashboardController) Close() {
	c.cancel()
	c.wg.Wait()
}
