package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"briefd/internal/domain"
	"briefd/internal/domain/models"
	"briefd/internal/domain/repositories"
)

// PostgresBriefRepository implements the BriefRepository interface
type PostgresBriefRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewBriefRepository creates a new brief repository
func NewBriefRepository(config *RepositoryConfig) repositories.BriefRepository {
	return &PostgresBriefRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new brief
func (r *PostgresBriefRepository) Create(ctx context.Context, brief *models.Brief) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (title, event_type, status, version, metadata)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Briefs)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		brief.Title,
		brief.EventType,
		string(brief.Status),
		brief.Version,
		brief.Metadata,
	).Scan(&brief.ID, &brief.CreatedAt, &brief.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create brief: %w", err)
	}

	return nil
}

// GetByID retrieves a brief by ID
func (r *PostgresBriefRepository) GetByID(ctx context.Context, id string) (*models.Brief, error) {
	query := fmt.Sprintf(`
		SELECT id, title, event_type, status, version, metadata, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Briefs)

	var brief models.Brief
	var status string
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&brief.ID,
		&brief.Title,
		&brief.EventType,
		&status,
		&brief.Version,
		&brief.Metadata,
		&brief.CreatedAt,
		&brief.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("brief %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get brief: %w", err)
	}
	brief.Status = models.BriefStatus(status)

	return &brief, nil
}

// List lists briefs ordered by most recently updated
func (r *PostgresBriefRepository) List(ctx context.Context, filter *repositories.BriefFilter) ([]models.Brief, error) {
	query := fmt.Sprintf(`
		SELECT id, title, event_type, status, version, metadata, created_at, updated_at
		FROM %s
	`, r.tables.Briefs)

	args := []interface{}{}
	if filter.Status != nil {
		query += ` WHERE status = $1`
		args = append(args, string(*filter.Status))
	}
	query += fmt.Sprintf(" ORDER BY updated_at DESC OFFSET $%d LIMIT $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Skip, filter.Limit)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list briefs: %w", err)
	}
	defer rows.Close()

	briefs := []models.Brief{}
	for rows.Next() {
		var brief models.Brief
		var status string
		if err := rows.Scan(
			&brief.ID,
			&brief.Title,
			&brief.EventType,
			&status,
			&brief.Version,
			&brief.Metadata,
			&brief.CreatedAt,
			&brief.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan brief: %w", err)
		}
		brief.Status = models.BriefStatus(status)
		briefs = append(briefs, brief)
	}

	return briefs, rows.Err()
}

// Update updates an existing brief
func (r *PostgresBriefRepository) Update(ctx context.Context, brief *models.Brief) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $2, event_type = $3, status = $4, version = $5, metadata = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, r.tables.Briefs)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		brief.ID,
		brief.Title,
		brief.EventType,
		string(brief.Status),
		brief.Version,
		brief.Metadata,
	).Scan(&brief.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("brief %s: %w", brief.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update brief: %w", err)
	}

	return nil
}

// Delete deletes a brief. Sections, documents and versions are
// removed by ON DELETE CASCADE.
func (r *PostgresBriefRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Briefs)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete brief: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("brief %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
