package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"stratosim/internal/domain/models"
	"stratosim/internal/engine/wind"
	"stratosim/internal/repository"
	"stratosim/internal/service/jobs"
	"stratosim/internal/service/ratelimit"
	"stratosim/internal/usecase"
	xhttp "stratosim/pkg/http"
	xlogger "stratosim/pkg/logger"
)

// Monte-Carlo endpoints are the expensive ones; each client IP gets a small
// token bucket.
const (
	riskBucketCapacity  = 5
	riskBucketRefillSec = 0.5
)

// SimulationHandler wires the simulation and mission use cases into Echo.
type SimulationHandler struct {
	logger   *xlogger.Logger
	sim      *usecase.SimulationService
	missions *usecase.MissionPlanner
	jobs     *jobs.Service // nil when the job queue is disabled
	limiter  *ratelimit.Limiter
}

func NewSimulationHandler(lgr *xlogger.Logger, sim *usecase.SimulationService, missions *usecase.MissionPlanner, jobSvc *jobs.Service) *SimulationHandler {
	return &SimulationHandler{
		logger:   lgr,
		sim:      sim,
		missions: missions,
		jobs:     jobSvc,
		limiter:  ratelimit.New(),
	}
}

func (h *SimulationHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.GET("/wind/vector", h.WindVector)
	g.GET("/wind/profile", h.WindProfile)
	g.GET("/wind/optimal-altitude", h.OptimalAltitude)

	g.POST("/navigation/decision", h.Decision)
	g.POST("/simulate/station-keeping", h.StationKeeping)

	g.GET("/fleet/revisit", h.Revisit)
	g.POST("/fleet/coverage", h.FleetCoverage)
	g.POST("/fleet/recommend", h.RecommendFleet)

	g.POST("/montecarlo", h.MonteCarlo)
	g.POST("/montecarlo/jobs", h.SubmitMonteCarloJob)
	g.GET("/montecarlo/jobs/:id", h.MonteCarloJob)
	g.GET("/montecarlo/seasonal", h.Seasonal)

	g.POST("/missions/quote", h.Quote)
	g.GET("/platforms", h.Platforms)
	g.GET("/payloads", h.Payloads)

	g.GET("/runs", h.Runs)
	g.GET("/runs/:id", h.Run)

	e.GET("/ws/station-keeping", h.StationKeepingStream)
}

func (h *SimulationHandler) WindVector(c echo.Context) error {
	req := &models.WindVectorRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.sim.WindVector(c.Request().Context(), *req))
}

func (h *SimulationHandler) WindProfile(c echo.Context) error {
	req := &models.WindProfileRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.sim.WindProfile(c.Request().Context(), *req))
}

func (h *SimulationHandler) OptimalAltitude(c echo.Context) error {
	req := &models.OptimalAltitudeRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.sim.OptimalAltitude(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, "optimal altitude", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SimulationHandler) Decision(c echo.Context) error {
	req := &models.DecisionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.sim.Decide(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, "decision", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SimulationHandler) StationKeeping(c echo.Context) error {
	req := &models.StationKeepingRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.sim.StationKeeping(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, "station keeping", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SimulationHandler) Revisit(c echo.Context) error {
	req := &models.RevisitRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	return xhttp.SuccessResponse(c, h.sim.Revisit(*req))
}

func (h *SimulationHandler) FleetCoverage(c echo.Context) error {
	req := &models.FleetCoverageRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.sim.FleetCoverage(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, "fleet coverage", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SimulationHandler) RecommendFleet(c echo.Context) error {
	req := &models.RecommendFleetRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.sim.RecommendFleet(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, "fleet recommend", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SimulationHandler) MonteCarlo(c echo.Context) error {
	if !h.limiter.Allow(c.RealIP(), riskBucketCapacity, riskBucketRefillSec) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "Too many risk requests")
	}
	req := &models.MonteCarloRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.sim.MonteCarlo(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, "monte carlo", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SimulationHandler) SubmitMonteCarloJob(c echo.Context) error {
	if h.jobs == nil {
		return xhttp.AppErrorResponse(c, xhttp.NewAppError(
			"ERR_JOBS_DISABLED", "", "Job queue is not enabled", http.StatusServiceUnavailable))
	}
	if !h.limiter.Allow(c.RealIP(), riskBucketCapacity, riskBucketRefillSec) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "Too many risk requests")
	}
	req := &models.MonteCarloRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	id, err := h.jobs.Submit(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, "submit job", err)
	}
	return xhttp.CreatedResponse(c, map[string]string{"job_id": id})
}

func (h *SimulationHandler) MonteCarloJob(c echo.Context) error {
	if h.jobs == nil {
		return xhttp.AppErrorResponse(c, xhttp.NewAppError(
			"ERR_JOBS_DISABLED", "", "Job queue is not enabled", http.StatusServiceUnavailable))
	}
	st, err := h.jobs.Get(c.Param("id"))
	if err != nil {
		return h.errorResponse(c, "job status", err)
	}
	return xhttp.SuccessResponse(c, st)
}

func (h *SimulationHandler) Seasonal(c echo.Context) error {
	if !h.limiter.Allow(c.RealIP(), riskBucketCapacity, riskBucketRefillSec) {
		return xhttp.DataResponse(c, http.StatusTooManyRequests, "Too many risk requests")
	}
	req := &models.SeasonalRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.sim.Seasonal(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, "seasonal", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SimulationHandler) Quote(c echo.Context) error {
	req := &models.QuoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	res, err := h.missions.Quote(c.Request().Context(), *req)
	if err != nil {
		return h.errorResponse(c, "quote", err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SimulationHandler) Platforms(c echo.Context) error {
	platforms, err := h.missions.Platforms(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, "platforms", err)
	}
	return xhttp.ListResponse(c, platforms, int64(len(platforms)))
}

func (h *SimulationHandler) Payloads(c echo.Context) error {
	payloads, err := h.missions.Payloads(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, "payloads", err)
	}
	return xhttp.ListResponse(c, payloads, int64(len(payloads)))
}

func (h *SimulationHandler) Runs(c echo.Context) error {
	req := &models.RunsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	runs, err := h.sim.Runs(c.Request().Context(), req.Limit)
	if err != nil {
		return h.errorResponse(c, "runs", err)
	}
	return xhttp.ListResponse(c, runs, int64(len(runs)))
}

func (h *SimulationHandler) Run(c echo.Context) error {
	run, err := h.sim.Run(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.errorResponse(c, "run", err)
	}
	return xhttp.SuccessResponse(c, run)
}

// errorResponse maps domain errors to API errors. Unknown errors are logged
// and surface as 500.
func (h *SimulationHandler) errorResponse(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, wind.ErrNoViableAltitude):
		return xhttp.AppErrorResponse(c, xhttp.NewAppError(
			"ERR_NO_VIABLE_ALTITUDE", "", err.Error(), http.StatusUnprocessableEntity))
	case errors.Is(err, usecase.ErrLimitExceeded):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()))
	case errors.Is(err, repository.ErrPresetNotFound),
		errors.Is(err, repository.ErrRunNotFound),
		errors.Is(err, jobs.ErrJobNotFound):
		return xhttp.AppErrorResponse(c, xhttp.NotFoundError(err.Error()))
	case errors.Is(err, usecase.ErrHistoryDisabled):
		return xhttp.AppErrorResponse(c, xhttp.NewAppError(
			"ERR_HISTORY_DISABLED", "", err.Error(), http.StatusServiceUnavailable))
	}
	h.logger.Error(op+" failed", xlogger.Error(err))
	return xhttp.AppErrorResponse(c, err)
}
