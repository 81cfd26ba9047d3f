// Package store persists analysis runs so trend and momentum can be
// computed over a history window.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ksatyam/marketpulse/pkg/models"
)

// Repository handles database operations for analysis runs
type Repository struct {
	db *sqlx.DB
}

// NewRepository creates new analysis run repository
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// SaveRun persists one combined sentiment result
func (r *Repository) SaveRun(ctx context.Context, result models.CombinedSentiment) (string, error) {
	weights, err := json.Marshal(result.WeightsUsed)
	if err != nil {
		return "", fmt.Errorf("failed to encode weights: %w", err)
	}

	id := uuid.New().String()
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO analysis_runs (
			id, key, score, confidence, label, status, weights, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		id,
		result.Key,
		result.Score,
		result.Confidence,
		string(result.Label),
		string(result.Status),
		weights,
		time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to save analysis run: %w", err)
	}

	return id, nil
}

// RecentRuns returns runs for a key within the window, newest first
func (r *Repository) RecentRuns(ctx context.Context, key string, window time.Duration) ([]models.AnalysisRun, error) {
	var runs []models.AnalysisRun
	err := r.db.SelectContext(ctx, &runs, `
		SELECT id, key, score, confidence, label, status, weights, created_at
		FROM analysis_runs
		WHERE key = $1 AND created_at >= $2
		ORDER BY created_at DESC
	`, key, time.Now().UTC().Add(-window))
	if err != nil {
		return nil, fmt.Errorf("failed to load recent runs: %w", err)
	}

	return runs, nil
}

// AverageScore returns the mean score for a key over the window.
// The second return reports whether any runs were found.
func (r *Repository) AverageScore(ctx context.Context, key string, window time.Duration) (float64, bool, error) {
	var avg *float64
	err := r.db.GetContext(ctx, &avg, `
		SELECT AVG(score)
		FROM analysis_runs
		WHERE key = $1 AND created_at >= $2
	`, key, time.Now().UTC().Add(-window))
	if err != nil {
		return 0, false, fmt.Errorf("failed to compute average score: %w", err)
	}
	if avg == nil {
		return 0, false, nil
	}

	return *avg, true, nil
}

// PruneOlderThan deletes runs older than the retention window
func (r *Repository) PruneOlderThan(ctx context.Context, retention time.Duration) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM analysis_runs WHERE created_at < $1
	`, time.Now().UTC().Add(-retention))
	if err != nil {
		return 0, fmt.Errorf("failed to prune analysis runs: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
