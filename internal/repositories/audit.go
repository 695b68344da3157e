package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AuditRepository interface {
	Create(ctx context.Context, audit *models.AnalysisAudit) error
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

// Create implements AuditRepository.
func (r *auditRepository) Create(ctx context.Context, audit *models.AnalysisAudit) error {
	if audit.ID == uuid.Nil {
		audit.ID = uuid.New()
	}
	if audit.CreatedAt.IsZero() {
		audit.CreatedAt = time.Now()
	}

	if err := r.db.WithContext(ctx).Create(audit).Error; err != nil {
		return fmt.Errorf("failed to create analysis audit: %w", err)
	}
	return nil
}

type noopAuditRepository struct{}

// NewNoopAuditRepository is used when auditing is disabled.
func NewNoopAuditRepository() AuditRepository {
	return noopAuditRepository{}
}

func (noopAuditRepository) Create(context.Context, *models.AnalysisAudit) error {
	return nil
}
