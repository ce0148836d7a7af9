package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stratosim/internal/domain/models"
	pkgch "stratosim/pkg/clickhouse"
)

// ErrRunNotFound is returned when a run id has no stored record.
var ErrRunNotFound = errors.New("run not found")

// ClickHouseRunStore persists simulation run summaries in ClickHouse.
type ClickHouseRunStore struct {
	client *pkgch.Client
}

func NewClickHouseRunStore(client *pkgch.Client) *ClickHouseRunStore {
	return &ClickHouseRunStore{client: client}
}

func (s *ClickHouseRunStore) Init(ctx context.Context) error {
	stmts := []string{
		"CREATE DATABASE IF NOT EXISTS stratosim",
		`CREATE TABLE IF NOT EXISTS stratosim.simulation_runs (
			run_id String,
			kind String,
			seed UInt64,
			target_lat Float64,
			target_lon Float64,
			aoi_radius_km Float64,
			month UInt8,
			mission_hours Float64,
			availability_percent Float64,
			drift_events Int32,
			energy_used_wh Float64,
			risk_level String,
			started_at DateTime64(3),
			duration_ms Int64
		) ENGINE=MergeTree ORDER BY (started_at, run_id)`,
	}
	return s.client.InitSchema(ctx, stmts)
}

func (s *ClickHouseRunStore) Store(ctx context.Context, run *models.SimulationRun) error {
	const q = `INSERT INTO stratosim.simulation_runs
		(run_id, kind, seed, target_lat, target_lon, aoi_radius_km, month,
		 mission_hours, availability_percent, drift_events, energy_used_wh,
		 risk_level, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.client.DB().ExecContext(ctx, q,
		run.RunID, run.Kind, run.Seed,
		run.TargetLat, run.TargetLon, run.AOIRadiusKm, run.Month,
		run.MissionHours, run.AvailabilityPercent, run.DriftEvents,
		run.EnergyUsedWh, run.RiskLevel, run.StartedAt, run.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("store run: %w", err)
	}
	return nil
}

func (s *ClickHouseRunStore) Recent(ctx context.Context, limit int) ([]*models.SimulationRun, error) {
	const q = `SELECT run_id, kind, seed, target_lat, target_lon, aoi_radius_km,
		month, mission_hours, availability_percent, drift_events,
		energy_used_wh, risk_level, started_at, duration_ms
		FROM stratosim.simulation_runs
		ORDER BY started_at DESC
		LIMIT ?`

	rows, err := s.client.DB().QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	out := make([]*models.SimulationRun, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (s *ClickHouseRunStore) Get(ctx context.Context, id string) (*models.SimulationRun, error) {
	const q = `SELECT run_id, kind, seed, target_lat, target_lon, aoi_radius_km,
		month, mission_hours, availability_percent, drift_events,
		energy_used_wh, risk_level, started_at, duration_ms
		FROM stratosim.simulation_runs
		WHERE run_id = ?
		LIMIT 1`

	rows, err := s.client.DB().QueryContext(ctx, q, id)
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("rows: %w", err)
		}
		return nil, ErrRunNotFound
	}
	return scanRun(rows)
}

func (s *ClickHouseRunStore) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}

func (s *ClickHouseRunStore) Close() error {
	return s.client.Close()
}

func scanRun(rows *sql.Rows) (*models.SimulationRun, error) {
	var (
		run       models.SimulationRun
		month     uint8
		startedAt time.Time
	)
	if err := rows.Scan(
		&run.RunID, &run.Kind, &run.Seed,
		&run.TargetLat, &run.TargetLon, &run.AOIRadiusKm, &month,
		&run.MissionHours, &run.AvailabilityPercent, &run.DriftEvents,
		&run.EnergyUsedWh, &run.RiskLevel, &startedAt, &run.DurationMs,
	); err != nil {
		return nil, fmt.Errorf("scan run: %w", err)
	}
	run.Month = int(month)
	run.StartedAt = startedAt
	return &run, nil
}
