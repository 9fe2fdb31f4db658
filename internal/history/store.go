// Package history persists completed assessments to a local SQLite
// database so earlier verdicts for a URL can be reviewed later.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/MokshaVS03/scam-url-detector/internal/types"

	_ "modernc.org/sqlite" // SQLite driver
)

// defaultRecentLimit caps a Recent query when the caller passes no limit.
const defaultRecentLimit = 20

const schemaSQL = `
CREATE TABLE IF NOT EXISTS assessments (
  id TEXT PRIMARY KEY,
  url TEXT NOT NULL,
  score INTEGER NOT NULL,
  risk_level TEXT NOT NULL,
  summary TEXT NOT NULL,
  recommendation TEXT NOT NULL,
  details_json TEXT NOT NULL,
  assessed_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_assessments_url ON assessments(url);
CREATE INDEX IF NOT EXISTS idx_assessments_assessed_at ON assessments(assessed_at);
`

// Record is one stored assessment row.
type Record struct {
	ID             string                  `json:"id"`
	URL            string                  `json:"url"`
	Score          int                     `json:"score"`
	RiskLevel      string                  `json:"risk_level"`
	Summary        string                  `json:"summary"`
	Recommendation string                  `json:"recommendation"`
	Details        types.AssessmentDetails `json:"details"`
	AssessedAt     int64                   `json:"assessed_at"`
}

// Store wraps the SQLite database holding assessment history.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the assessment database at path and
// applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	// modernc sqlite serializes through a single connection to avoid
	// SQLITE_BUSY under concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close() //nolint:errcheck

		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close() //nolint:errcheck

		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists one completed assessment and returns the generated record ID.
func (s *Store) Save(ctx context.Context, assessment *types.Assessment) (string, error) {
	details, err := json.Marshal(assessment.Details)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	id := uuid.NewString()

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, url, score, risk_level, summary, recommendation, details_json, assessed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		assessment.URL,
		assessment.TrustAssessment.Score,
		string(assessment.TrustAssessment.RiskLevel),
		assessment.TrustAssessment.Summary,
		assessment.TrustAssessment.Recommendation,
		string(details),
		assessment.AssessedAt,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	return id, nil
}

// Recent returns up to limit assessments, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, score, risk_level, summary, recommendation, details_json, assessed_at
		 FROM assessments ORDER BY assessed_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer rows.Close() //nolint:errcheck

	records := []Record{}

	for rows.Next() {
		var (
			rec     Record
			details string
		)

		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Score, &rec.RiskLevel, &rec.Summary, &rec.Recommendation, &details, &rec.AssessedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}

		if err := json.Unmarshal([]byte(details), &rec.Details); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	return records, nil
}
