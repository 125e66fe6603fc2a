package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/MasonDill/waveform-visualizer/internal/j1939"
	"github.com/MasonDill/waveform-visualizer/internal/logging"
	"github.com/MasonDill/waveform-visualizer/internal/protocol"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Maximum request size allowed from peer
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Visualization endpoint for local use; browsers on other origins may
	// connect to a deliberately exposed instance.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// waveformRequest is one generation request from the client.
type waveformRequest struct {
	Payload  string `json:"payload"`            // hex payload, optional 0x prefix
	Probe    string `json:"probe,omitempty"`    // CAN_H, CAN_L or DIFFERENTIAL
	Extended *bool  `json:"extended,omitempty"` // 29-bit identifier layout
}

// waveformResponse carries a generated waveform back to the client.
type waveformResponse struct {
	TimePoints    []float64 `json:"time_points"`
	VoltagePoints []float64 `json:"voltage_points"`
	TotalBits     int       `json:"total_bits"`
	PeriodSeconds float64   `json:"period_seconds"`
	HighVoltage   float64   `json:"high_voltage"`
	LowVoltage    float64   `json:"low_voltage"`
}

// errorResponse reports a failed request without closing the connection.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// handleWebSocket upgrades the connection and serves generation requests
// until the client disconnects. Each request builds a fresh Config, so
// connections never share frame storage.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Error("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	remoteAddr := r.RemoteAddr
	logging.Info("WebSocket client connected", zap.String("remote_addr", remoteAddr))

	defer func() {
		_ = conn.Close()
		logging.Info("WebSocket client disconnected", zap.String("remote_addr", remoteAddr))
	}()

	conn.SetReadLimit(maxMessageSize)

	for {
		var req waveformRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn("WebSocket read error",
					zap.String("remote_addr", remoteAddr),
					zap.Error(err),
				)
			}
			return
		}
		logging.LogWSMessage(remoteAddr, "received", len(req.Payload))

		resp := s.generate(req)

		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(resp); err != nil {
			logging.Warn("WebSocket write error",
				zap.String("remote_addr", remoteAddr),
				zap.Error(err),
			)
			return
		}
	}
}

// generate resolves the request's probe settings against the server
// defaults and runs the transform. Failures become error payloads rather
// than connection teardown: the transform is deterministic, so the only
// recovery is corrected input from the client.
func (s *Server) generate(req waveformRequest) interface{} {
	probe := s.config.Probe
	if req.Probe != "" {
		p, err := j1939.ParseProbe(req.Probe)
		if err != nil {
			return errorFor(err)
		}
		probe = p
	}
	extended := s.config.Extended
	if req.Extended != nil {
		extended = *req.Extended
	}

	cfg, err := j1939.New(probe, extended)
	if err != nil {
		return errorFor(err)
	}
	wf, err := cfg.GenerateWaveform(req.Payload)
	if err != nil {
		return errorFor(err)
	}

	return waveformResponse{
		TimePoints:    wf.TimePoints,
		VoltagePoints: wf.VoltagePoints,
		TotalBits:     cfg.Frame.TotalBits(),
		PeriodSeconds: cfg.Period,
		HighVoltage:   cfg.HighVoltage,
		LowVoltage:    cfg.LowVoltage,
	}
}

func errorFor(err error) errorResponse {
	kind := "internal"
	var perr *protocol.Error
	if errors.As(err, &perr) {
		switch perr.Type {
		case protocol.ErrTypeConfiguration:
			kind = "configuration"
		case protocol.ErrTypeParse:
			kind = "parse"
		case protocol.ErrTypeValidation:
			kind = "validation"
		}
	}
	return errorResponse{Error: err.Error(), Kind: kind}
}
