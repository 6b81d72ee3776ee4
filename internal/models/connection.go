package models

import (
	"encoding/json"
	"fmt"
)

// ConnectionState is the dashboard's view of the OpenCog server link.
type ConnectionState int

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
	Failed
)

var connectionStateNames = [...]string{
	Disconnected: "DISCONNECTED",
	Connecting:   "CONNECTING",
	Connected:    "CONNECTED",
	Failed:       "FAILED",
}

func (s ConnectionState) String() string {
	if s < 0 || int(s) >= len(connectionStateNames) {
		return fmt.Sprintf("ConnectionState(%d)", int(s))
	}
	return connectionStateNames[s]
}

// MarshalJSON encodes the state by name.
func (s ConnectionState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the names produced by MarshalJSON.
func (s *ConnectionState) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for i, n := range connectionStateNames {
		if n == name {
			*s = ConnectionState(i)
			return nil
		}
	}
	return fmt.Errorf("unknown connection state %q", name)
}

// Status indicator classes used by the header.
const (
	IndicatorOffline    = "offline"
	IndicatorConnecting = "connecting"
	IndicatorOnline     = "online"
)

// StatusIndicator is the header's connection badge.
type StatusIndicator struct {
	Class string `json:"class"` // offline | connecting | online
	Text  string `json:"text"`
}
