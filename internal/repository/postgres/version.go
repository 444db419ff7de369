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

// PostgresVersionRepository implements the VersionRepository interface
type PostgresVersionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewVersionRepository creates a new version repository
func NewVersionRepository(config *RepositoryConfig) repositories.VersionRepository {
	return &PostgresVersionRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create persists a new version snapshot
func (r *PostgresVersionRepository) Create(ctx context.Context, version *models.Version) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (brief_id, version_number, content_snapshot)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, r.tables.Versions)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		version.BriefID,
		version.VersionNumber,
		version.Snapshot,
	).Scan(&version.ID, &version.CreatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("brief %s: %w", version.BriefID, domain.ErrNotFound)
		}
		return fmt.Errorf("create version: %w", err)
	}

	return nil
}

// ListByBrief lists a brief's versions, newest first
func (r *PostgresVersionRepository) ListByBrief(ctx context.Context, briefID string) ([]models.Version, error) {
	query := fmt.Sprintf(`
		SELECT id, brief_id, version_number, content_snapshot, created_at
		FROM %s
		WHERE brief_id = $1
		ORDER BY version_number DESC
	`, r.tables.Versions)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, briefID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	versions := []models.Version{}
	for rows.Next() {
		var version models.Version
		if err := rows.Scan(
			&version.ID,
			&version.BriefID,
			&version.VersionNumber,
			&version.Snapshot,
			&version.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		versions = append(versions, version)
	}

	return versions, rows.Err()
}
