package models

// FieldID names an input field of the dashboard.
type FieldID string

const (
	FieldServerURL FieldID = "server-url"
	FieldCommand   FieldID = "scheme-command"
)

// ControlID names a button of the dashboard.
type ControlID string

const (
	ControlConnect    ControlID = "connect-btn"
	ControlDisconnect ControlID = "disconnect-btn"
	ControlExecute    ControlID = "execute-btn"
	ControlRefresh    ControlID = "refresh-atomspace"
	ControlClear      ControlID = "clear-atomspace"
)

// AllControls lists every button in page order.
var AllControls = []ControlID{
	ControlConnect,
	ControlDisconnect,
	ControlExecute,
	ControlRefresh,
	ControlClear,
}

// Controls holds the enabled flag of each button.
type Controls struct {
	Connect    bool `json:"connect"`
	Disconnect bool `json:"disconnect"`
	Execute    bool `json:"execute"`
	Refresh    bool `json:"refresh"`
	Clear      bool `json:"clear"`
}

// DisconnectedControls is the configuration while no server is linked.
func DisconnectedControls() Controls {
	return Controls{Connect: true}
}

// ConnectedControls is the configuration once a server is linked.
func ConnectedControls() Controls {
	return Controls{Disconnect: true, Execute: true, Refresh: true, Clear: true}
}

// Enabled reports the flag for id.
func (c Controls) Enabled(id ControlID) bool {
	switch id {
	case ControlConnect:
		return c.Connect
	case ControlDisconnect:
		return c.Disconnect
	case ControlExecute:
		return c.Execute
	case ControlRefresh:
		return c.Refresh
	case ControlClear:
		return c.Clear
	}
	return false
}

// Set updates the flag for id; unknown ids are ignored.
func (c *Controls) Set(id ControlID, enabled bool) {
	switch id {
	case ControlConnect:
		c.Connect = enabled
	case ControlDisconnect:
		c.Disconnect = enabled
	case ControlExecute:
		c.Execute = enabled
	case ControlRefresh:
		c.Refresh = enabled
	case ControlClear:
		c.Clear = enabled
	}
}

// AtomPanelKind selects what the AtomSpace panel shows.
type AtomPanelKind string

const (
	PanelPlaceholder AtomPanelKind = "placeholder"
	PanelLoading     AtomPanelKind = "loading"
	PanelAtoms       AtomPanelKind = "atoms"
	PanelEmpty       AtomPanelKind = "empty"
	PanelError       AtomPanelKind = "error"
)

// AtomPanel is the rendered state of the AtomSpace panel.
type AtomPanel struct {
	Kind    AtomPanelKind `json:"kind"`
	Atoms   []Atom        `json:"atoms,omitempty"`
	Summary AtomSummary   `json:"summary"`
	Error   string        `json:"error,omitempty"`
}

// Fields holds the current values of the input fields.
type Fields struct {
	ServerURL string `json:"server_url"`
	Command   string `json:"command"`
}

// DashboardView is the complete rendered state of the dashboard.
type DashboardView struct {
	Active    bool             `json:"active"`
	State     ConnectionState  `json:"state"`
	Endpoint  string           `json:"endpoint,omitempty"`
	Status    StatusIndicator  `json:"status"`
	Controls  Controls         `json:"controls"`
	Fields    Fields           `json:"fields"`
	Focus     FieldID          `json:"focus,omitempty"`
	Output    []OutputLogEntry `json:"output"`
	AtomPanel AtomPanel        `json:"atom_panel"`
}
