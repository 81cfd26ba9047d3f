package models

import "time"

// AnalysisRun is one persisted fused-sentiment result, kept for audit
// and rolling trend computation.
type AnalysisRun struct {
	ID         string    `json:"id" db:"id"`
	Key        string    `json:"key" db:"key"`
	Score      float64   `json:"score" db:"score"`
	Confidence float64   `json:"confidence" db:"confidence"`
	Label      string    `json:"label" db:"label"`
	Status     string    `json:"status" db:"status"`
	Weights    string    `json:"weights" db:"weights"` // JSON-encoded WeightsUsed
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
