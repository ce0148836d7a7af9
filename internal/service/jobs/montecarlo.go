// Package jobs runs long Monte-Carlo batches off the request path. Results
// land in the shared cache under the job id and are fetched by polling.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"stratosim/internal/domain/models"
	"stratosim/internal/service/cache"
	simmetrics "stratosim/internal/service/metrics"
	"stratosim/internal/usecase"
	"stratosim/pkg/logger"
	"stratosim/pkg/queue"
)

const monteCarloJobType = "montecarlo.run"

// ErrJobNotFound is returned for unknown or expired job ids.
var ErrJobNotFound = errors.New("job not found")

// Status is a job lifecycle snapshot.
type Status struct {
	JobID      string                    `json:"job_id"`
	State      string                    `json:"state"` // queued | done | failed
	Error      string                    `json:"error,omitempty"`
	FinishedAt *time.Time                `json:"finished_at,omitempty"`
	Result     *usecase.MonteCarloOutput `json:"result,omitempty"`
}

type jobPayload struct {
	JobID   string                   `json:"job_id"`
	Request models.MonteCarloRequest `json:"request"`
}

// Service enqueues Monte-Carlo batches and serves their results.
type Service struct {
	sim       *usecase.SimulationService
	queue     *queue.RedisQueue
	cache     cache.BytesCache
	resultTTL time.Duration
	logger    *logger.Logger
}

func NewService(sim *usecase.SimulationService, q *queue.RedisQueue, byteCache cache.BytesCache, resultTTL time.Duration, lgr *logger.Logger) *Service {
	s := &Service{
		sim:       sim,
		queue:     q,
		cache:     byteCache,
		resultTTL: resultTTL,
		logger:    lgr,
	}
	simmetrics.Register()
	q.RegisterJob(&monteCarloJob{svc: s})
	return s
}

// Submit queues a batch and returns the job id immediately.
func (s *Service) Submit(ctx context.Context, req models.MonteCarloRequest) (string, error) {
	id := uuid.NewString()
	if err := s.setStatus(&Status{JobID: id, State: "queued"}); err != nil {
		return "", err
	}
	if _, err := s.queue.Enqueue(ctx, monteCarloJobType, jobPayload{JobID: id, Request: req}); err != nil {
		return "", fmt.Errorf("enqueue montecarlo job: %w", err)
	}
	simmetrics.JobQueueDepth.WithLabelValues("montecarlo").Inc()
	return id, nil
}

// Get fetches the current status of a job.
func (s *Service) Get(id string) (*Status, error) {
	raw, ok, err := s.cache.GetBytes(statusKey(id))
	if err != nil {
		return nil, fmt.Errorf("job status: %w", err)
	}
	if !ok {
		return nil, ErrJobNotFound
	}
	var st Status
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode job status: %w", err)
	}
	return &st, nil
}

func (s *Service) setStatus(st *Status) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode job status: %w", err)
	}
	if err := s.cache.SetBytes(statusKey(st.JobID), raw, s.resultTTL); err != nil {
		return fmt.Errorf("store job status: %w", err)
	}
	return nil
}

func statusKey(id string) string { return "job:montecarlo:" + id }

type monteCarloJob struct {
	svc *Service
}

func (j *monteCarloJob) Name() string { return "montecarlo-batch" }
func (j *monteCarloJob) Type() string { return monteCarloJobType }

func (j *monteCarloJob) Handle(ctx context.Context, payload json.RawMessage) error {
	p, err := queue.ParsePayload[jobPayload](payload)
	if err != nil {
		return err
	}
	simmetrics.JobQueueDepth.WithLabelValues("montecarlo").Dec()

	start := time.Now()
	out, err := j.svc.sim.MonteCarlo(ctx, p.Request)
	simmetrics.EngineLatency.WithLabelValues("montecarlo_job").Observe(time.Since(start).Seconds())
	now := time.Now()
	st := &Status{JobID: p.JobID, FinishedAt: &now}
	if err != nil {
		st.State = "failed"
		st.Error = err.Error()
		simmetrics.EngineErrors.WithLabelValues("montecarlo_job").Inc()
		j.svc.logger.Error("montecarlo job failed",
			logger.String("job_id", p.JobID), logger.Error(err))
	} else {
		st.State = "done"
		st.Result = out
	}

	// Simulation failures are final and recorded in the status; only a
	// status store failure is worth a queue retry.
	return j.svc.setStatus(st)
}
