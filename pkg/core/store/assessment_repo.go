package store

import (
	"context"
	"encoding/json"
	"finhealth/pkg/core/analysis"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AssessmentRepo handles the storage of completed assessments.
type AssessmentRepo struct{}

// NewAssessmentRepo creates a new repository instance.
func NewAssessmentRepo() *AssessmentRepo {
	return &AssessmentRepo{}
}

// Save persists an assessment and returns its generated id.
// The full result is stored as a single JSONB blob; the business name and
// industry are lifted into their own columns for querying. The assessments
// table itself is created by InitDB.
func (r *AssessmentRepo) Save(ctx context.Context, a *analysis.Assessment) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	jsonData, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("failed to marshal assessment: %w", err)
	}

	id := uuid.NewString()

	query := `
		INSERT INTO assessments (id, business_name, industry, health_score, risk_level, assessment_json, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err = pool.Exec(ctx, query, id, a.Profile.Name, string(a.Profile.Industry), a.HealthScore, string(a.RiskLevel), jsonData, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to save assessment: %w", err)
	}

	return id, nil
}

// Load retrieves a previously saved assessment by id.
func (r *AssessmentRepo) Load(ctx context.Context, id string) (*analysis.Assessment, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT assessment_json FROM assessments WHERE id = $1`

	var jsonData []byte
	err := pool.QueryRow(ctx, query, id).Scan(&jsonData)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no assessment found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load assessment: %w", err)
	}

	var a analysis.Assessment
	if err := json.Unmarshal(jsonData, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal assessment: %w", err)
	}

	return &a, nil
}
