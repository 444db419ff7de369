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

// PostgresSectionRepository implements the SectionRepository interface
type PostgresSectionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewSectionRepository creates a new section repository
func NewSectionRepository(config *RepositoryConfig) repositories.SectionRepository {
	return &PostgresSectionRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create creates a new section
func (r *PostgresSectionRepository) Create(ctx context.Context, section *models.Section) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (brief_id, section_number, section_name, content, ai_generated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		section.BriefID,
		section.SectionNumber,
		section.SectionName,
		section.Content,
		section.AIGenerated,
	).Scan(&section.ID, &section.CreatedAt, &section.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("brief %s: %w", section.BriefID, domain.ErrNotFound)
		}
		return fmt.Errorf("create section: %w", err)
	}

	return nil
}

// GetByID retrieves a section by ID
func (r *PostgresSectionRepository) GetByID(ctx context.Context, id string) (*models.Section, error) {
	query := fmt.Sprintf(`
		SELECT id, brief_id, section_number, section_name, content, ai_generated, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Sections)

	var section models.Section
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&section.ID,
		&section.BriefID,
		&section.SectionNumber,
		&section.SectionName,
		&section.Content,
		&section.AIGenerated,
		&section.CreatedAt,
		&section.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get section: %w", err)
	}

	return &section, nil
}

// ListByBrief lists a brief's sections ordered by section number
func (r *PostgresSectionRepository) ListByBrief(ctx context.Context, briefID string) ([]models.Section, error) {
	query := fmt.Sprintf(`
		SELECT id, brief_id, section_number, section_name, content, ai_generated, created_at, updated_at
		FROM %s
		WHERE brief_id = $1
		ORDER BY section_number
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, briefID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		var section models.Section
		if err := rows.Scan(
			&section.ID,
			&section.BriefID,
			&section.SectionNumber,
			&section.SectionName,
			&section.Content,
			&section.AIGenerated,
			&section.CreatedAt,
			&section.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, section)
	}

	return sections, rows.Err()
}

// Update persists a section's content and ai_generated maps
func (r *PostgresSectionRepository) Update(ctx context.Context, section *models.Section) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET content = $2, ai_generated = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		section.ID,
		section.Content,
		section.AIGenerated,
	).Scan(&section.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("section %s: %w", section.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update section: %w", err)
	}

	return nil
}

// Delete deletes a section
func (r *PostgresSectionRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Sections)

	executor := GetExecutor(ctx, r.pool)
	tag, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("section %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
