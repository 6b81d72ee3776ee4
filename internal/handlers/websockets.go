package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"opencog_dashboard/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 1 * time.Second
	maxInterval      = 10 * time.Second
	maxIntervalMilli = 10_000 // 10s in ms

	wsTypeView = "view"
)

var wsJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// wsView is what a live page needs to patch itself: rendered fragments keyed
// by element id plus the values of the interactive elements.
type wsView struct {
	State     models.ConnectionState `json:"state"`
	Endpoint  string                 `json:"endpoint,omitempty"`
	Controls  models.Controls        `json:"controls"`
	Fields    models.Fields          `json:"fields"`
	Focus     models.FieldID         `json:"focus,omitempty"`
	Fragments map[string]string      `json:"fragments"`
}

// The dashboard is only served to allow-listed hosts, so any origin that got
// through activationMiddleware is accepted.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Live dashboard view
// @Description  WebSocket stream of {"type":"view"} messages, pushed on every change and re-sent every interval.
// @Tags         dashboard
// @Param        interval     query  string  false  "Resend period, e.g. 2s (max 10s)"
// @Param        interval_ms  query  int     false  "Resend period in ms (max 10000)"
// @Success      101
// @Failure      404  {object}  map[string]string
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err)
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine to handle control frames and detect disconnects.
	done := make(chan struct{})
	go h.startReader(conn, done)

	changes, unsubscribe := h.services.View.Subscribe()
	defer unsubscribe()

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	frame, err := h.sendView(ctx, conn)
	if err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err)
				return
			}
		case <-changes:
			if frame, err = h.sendView(ctx, conn); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		case <-ticker.C:
			// Heartbeat resends the last frame; only changes re-render.
			if err := writeFrame(conn, frame); err != nil {
				h.log.Infow("ws_write_failed", "err", err)
				return
			}
		}
	}
}

// parseInterval reads ?interval=2s or ?interval_ms=2000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	interval := defaultInterval

	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && v <= maxIntervalMilli {
			return time.Duration(v) * time.Millisecond
		}
	}

	return interval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

// buildView snapshots the dashboard and renders its dynamic fragments.
func (h *Handler) buildView(ctx context.Context) (wsView, error) {
	v, err := h.services.View.Snapshot(ctx)
	if err != nil {
		return wsView{}, err
	}
	frags, err := h.render.Fragments(v)
	if err != nil {
		return wsView{}, err
	}
	return wsView{
		State:     v.State,
		Endpoint:  v.Endpoint,
		Controls:  v.Controls,
		Fields:    v.Fields,
		Focus:     v.Focus,
		Fragments: frags,
	}, nil
}

// sendView writes the current view and returns the encoded frame.
func (h *Handler) sendView(ctx context.Context, conn *websocket.Conn) ([]byte, error) {
	view, err := h.buildView(ctx)
	if err != nil {
		h.log.Errorw("ws_get_view_failed", "err", err)
		return nil, err
	}
	data, err := wsJSON.Marshal(wsEnvelope{Type: wsTypeView, Data: view})
	if err != nil {
		return nil, err
	}
	return data, writeFrame(conn, data)
}

// writeFrame sends one text frame with a write deadline.
func writeFrame(conn *websocket.Conn, data []byte) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}
