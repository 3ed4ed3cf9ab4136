package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// LLMRequestRecord captures one request to the external LLM service.
type LLMRequestRecord struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	CostUSD      float64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeStats aggregates audit log entries for one purpose label.
type PurposeStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	CostUSD      float64
}

// AuditLog records LLM requests for monitoring. Implementations must be
// safe for concurrent use.
type AuditLog interface {
	// RecordLLMRequest appends one request record. Append-only.
	RecordLLMRequest(ctx context.Context, rec LLMRequestRecord) error

	// StatsByPurpose aggregates records since the given time, grouped by
	// purpose label.
	StatsByPurpose(ctx context.Context, since time.Time) ([]PurposeStats, error)
}

type sqliteAuditLog struct {
	db *sql.DB
}

func (a *sqliteAuditLog) RecordLLMRequest(ctx context.Context, rec LLMRequestRecord) error {
	_, err := a.db.ExecContext(ctx, `
INSERT INTO llm_requests
	(provider, model, purpose, input_tokens, output_tokens, latency_ms, cost_usd, success, error_message, request_body, response_body)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Provider, rec.Model, rec.Purpose,
		rec.InputTokens, rec.OutputTokens, rec.LatencyMs, rec.CostUSD,
		rec.Success, rec.ErrorMessage, rec.RequestBody, rec.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("insert llm request: %w", err)
	}
	return nil
}

func (a *sqliteAuditLog) StatsByPurpose(ctx context.Context, since time.Time) ([]PurposeStats, error) {
	rows, err := a.db.QueryContext(ctx, `
SELECT purpose,
	COUNT(*),
	SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END),
	SUM(input_tokens),
	SUM(output_tokens),
	SUM(cost_usd)
FROM llm_requests
WHERE created_at >= ?
GROUP BY purpose
ORDER BY purpose`, since.UTC())
	if err != nil {
		return nil, fmt.Errorf("query llm request stats: %w", err)
	}
	defer rows.Close()

	var out []PurposeStats
	for rows.Next() {
		var s PurposeStats
		if err := rows.Scan(&s.Purpose, &s.Requests, &s.Failures, &s.InputTokens, &s.OutputTokens, &s.CostUSD); err != nil {
			return nil, fmt.Errorf("scan llm request stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
