package api

import (
	"net/http"

	"github.com/creasty/defaults"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"stratosim/internal/domain/models"
	xlogger "stratosim/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Cross-origin dashboards connect directly.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type streamMessage struct {
	Type    string                  `json:"type"` // point | summary | error
	Point   *models.TrajectoryPoint `json:"point,omitempty"`
	Summary *summaryPayload         `json:"summary,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

type summaryPayload struct {
	RunID  string                      `json:"run_id,omitempty"`
	Seed   uint64                      `json:"seed"`
	Result models.StationKeepingResult `json:"result"`
}

// StationKeepingStream runs one station-keeping mission and streams the
// trajectory point by point, finishing with the aggregate summary.
func (h *SimulationHandler) StationKeepingStream(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	req := &models.StationKeepingRequest{}
	if err := conn.ReadJSON(req); err != nil {
		return h.streamError(conn, "invalid request: "+err.Error())
	}
	if err := defaults.Set(req); err != nil {
		return h.streamError(conn, "defaults: "+err.Error())
	}
	if req.AOIRadiusKm <= 0 || req.Month < 1 || req.Month > 12 {
		return h.streamError(conn, "aoi_radius_km and month are required")
	}

	out, err := h.sim.StationKeeping(c.Request().Context(), *req)
	if err != nil {
		return h.streamError(conn, err.Error())
	}

	for i := range out.Result.Trajectory {
		msg := streamMessage{Type: "point", Point: &out.Result.Trajectory[i]}
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Warn("trajectory stream aborted", xlogger.Error(err))
			return nil
		}
	}

	summary := out.Result
	summary.Trajectory = nil // already streamed
	final := streamMessage{Type: "summary", Summary: &summaryPayload{
		RunID:  out.RunID,
		Seed:   out.Seed,
		Result: summary,
	}}
	if err := conn.WriteJSON(final); err != nil {
		h.logger.Warn("trajectory summary write failed", xlogger.Error(err))
	}
	return nil
}

func (h *SimulationHandler) streamError(conn *websocket.Conn, msg string) error {
	if err := conn.WriteJSON(streamMessage{Type: "error", Error: msg}); err != nil {
		h.logger.Warn("stream error write failed", xlogger.Error(err))
	}
	return nil
}
