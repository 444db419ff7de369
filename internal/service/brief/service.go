package brief

import (
	"context"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"briefd/internal/cache"
	"briefd/internal/config"
	"briefd/internal/domain"
	"briefd/internal/domain/models"
	"briefd/internal/domain/repositories"
	"briefd/internal/domain/services"
)

// briefService implements the BriefService interface
type briefService struct {
	briefRepo   repositories.BriefRepository
	sectionRepo repositories.SectionRepository
	versionRepo repositories.VersionRepository
	txManager   repositories.TransactionManager
	store       cache.Store
	invalidator *cache.Invalidator
	template    []TemplateSection
	logger      *slog.Logger
}

// NewBriefService creates a new brief service
func NewBriefService(
	briefRepo repositories.BriefRepository,
	sectionRepo repositories.SectionRepository,
	versionRepo repositories.VersionRepository,
	txManager repositories.TransactionManager,
	store cache.Store,
	invalidator *cache.Invalidator,
	template []TemplateSection,
	logger *slog.Logger,
) services.BriefService {
	return &briefService{
		briefRepo:   briefRepo,
		sectionRepo: sectionRepo,
		versionRepo: versionRepo,
		txManager:   txManager,
		store:       store,
		invalidator: invalidator,
		template:    template,
		logger:      logger,
	}
}

// CreateBrief creates a brief and initializes its fixed section set
// from the template, atomically.
func (s *briefService) CreateBrief(ctx context.Context, req *services.CreateBriefRequest) (*models.Brief, error) {
	if err := s.validateCreateBriefRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	brief := &models.Brief{
		Title:     req.Title,
		EventType: req.EventType,
		Status:    models.StatusDraft,
		Version:   1,
		Metadata:  req.Metadata,
	}
	if brief.Metadata == nil {
		brief.Metadata = map[string]interface{}{}
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.briefRepo.Create(txCtx, brief); err != nil {
			return err
		}
		for _, tmpl := range s.template {
			section := &models.Section{
				BriefID:       brief.ID,
				SectionNumber: tmpl.Number,
				SectionName:   tmpl.Name,
				Content:       map[string]string{},
				AIGenerated:   map[string]string{},
			}
			if err := s.sectionRepo.Create(txCtx, section); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, brief.ID)
	s.logger.Info("brief created", "brief_id", brief.ID, "sections", len(s.template))
	return brief, nil
}

// GetBrief retrieves a brief, serving from cache when possible.
func (s *briefService) GetBrief(ctx context.Context, id string) (*models.Brief, error) {
	key := cache.BriefKey(id)

	var cached models.Brief
	if s.store.Get(ctx, key, &cached) {
		return &cached, nil
	}

	brief, err := s.briefRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, brief, cache.DefaultTTL)
	return brief, nil
}

// ListBriefs lists briefs, newest-updated first.
func (s *briefService) ListBriefs(ctx context.Context, req *services.ListBriefsRequest) ([]models.Brief, error) {
	limit := req.Limit
	if limit <= 0 || limit > config.MaxListLimit {
		limit = config.MaxListLimit
	}

	discriminator := fmt.Sprintf("all:%d:%d", req.Skip, limit)
	if req.Status != nil {
		discriminator = fmt.Sprintf("%s:%d:%d", *req.Status, req.Skip, limit)
	}
	key := cache.ListKey(discriminator)

	var cached []models.Brief
	if s.store.Get(ctx, key, &cached) {
		return cached, nil
	}

	briefs, err := s.briefRepo.List(ctx, &repositories.BriefFilter{
		Status: req.Status,
		Skip:   req.Skip,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	s.store.Set(ctx, key, briefs, cache.DefaultTTL)
	return briefs, nil
}

// UpdateBrief applies a partial update.
func (s *briefService) UpdateBrief(ctx context.Context, id string, req *services.UpdateBriefRequest) (*models.Brief, error) {
	if req.Status != nil && !req.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *req.Status)
	}
	if req.Title != nil {
		if err := validation.Validate(*req.Title, validation.Required, validation.Length(1, config.MaxBriefTitleLength)); err != nil {
			return nil, fmt.Errorf("%w: title: %v", domain.ErrValidation, err)
		}
	}

	brief, err := s.briefRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		brief.Title = *req.Title
	}
	if req.EventType != nil {
		brief.EventType = *req.EventType
	}
	if req.Status != nil {
		brief.Status = *req.Status
	}
	if req.Metadata != nil {
		brief.Metadata = req.Metadata
	}

	if err := s.briefRepo.Update(ctx, brief); err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, id)
	s.logger.Info("brief updated", "brief_id", id)
	return brief, nil
}

// DeleteBrief deletes a brief and everything it owns.
func (s *briefService) DeleteBrief(ctx context.Context, id string) error {
	if err := s.briefRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidator.Invalidate(ctx, id)
	s.logger.Info("brief deleted", "brief_id", id)
	return nil
}

// Snapshot captures the brief as a new immutable version and bumps
// its version counter by exactly one. Both writes happen in a single
// transaction: a failed half leaves neither visible.
func (s *briefService) Snapshot(ctx context.Context, briefID string) (*models.Version, error) {
	var version *models.Version

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		brief, err := s.briefRepo.GetByID(txCtx, briefID)
		if err != nil {
			return err
		}

		sections, err := s.sectionRepo.ListByBrief(txCtx, briefID)
		if err != nil {
			return err
		}

		snapshot := models.Snapshot{
			Title:     brief.Title,
			EventType: brief.EventType,
			Status:    brief.Status,
			Metadata:  brief.Metadata,
			Sections:  make([]models.SectionSnapshot, 0, len(sections)),
		}
		for _, section := range sections {
			snapshot.Sections = append(snapshot.Sections, models.SectionSnapshot{
				SectionNumber: section.SectionNumber,
				SectionName:   section.SectionName,
				Content:       section.Content,
				AIGenerated:   section.AIGenerated,
			})
		}

		brief.Version++
		if err := s.briefRepo.Update(txCtx, brief); err != nil {
			return err
		}

		version = &models.Version{
			BriefID:       briefID,
			VersionNumber: brief.Version,
			Snapshot:      snapshot,
		}
		return s.versionRepo.Create(txCtx, version)
	})
	if err != nil {
		return nil, err
	}

	s.invalidator.Invalidate(ctx, briefID)
	s.logger.Info("version created", "brief_id", briefID, "version", version.VersionNumber)
	return version, nil
}

// ListVersions lists a brief's versions, newest first.
func (s *briefService) ListVersions(ctx context.Context, briefID string) ([]models.Version, error) {
	if _, err := s.briefRepo.GetByID(ctx, briefID); err != nil {
		return nil, err
	}
	return s.versionRepo.ListByBrief(ctx, briefID)
}

func (s *briefService) validateCreateBriefRequest(req *services.CreateBriefRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxBriefTitleLength),
		),
	)
}
