package services

import (
	"encoding/json"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/logger"
	"finboard/internal/models"
	"finboard/internal/pagination"
	"finboard/internal/store"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Record stores one store event. Errors are logged but never propagate
// to avoid disrupting the mutation that produced the event.
func (s *auditService) Record(ev store.Event) {
	var changesJSON string
	if len(ev.Changes) > 0 {
		data, err := json.Marshal(ev.Changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", ev.Action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		Action:      string(ev.Action),
		Resource:    string(ev.Resource),
		ResourceID:  ev.ResourceID,
		PortfolioID: ev.PortfolioID,
		Changes:     changesJSON,
		RecordedAt:  ev.At,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"action", ev.Action,
			"resource", ev.Resource,
			"resource_id", ev.ResourceID,
		)
	}
}

// GetEntries returns audit entries, newest first.
func (s *auditService) GetEntries(filter AuditFilter, page pagination.PageRequest) (*pagination.PageResponse[models.AuditLog], error) {
	page.Defaults()

	base := s.db.Model(&models.AuditLog{})
	if filter.Resource != "" {
		base = base.Where("resource = ?", filter.Resource)
	}
	if filter.ResourceID != "" {
		base = base.Where("resource_id = ?", filter.ResourceID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.AuditLog
	if err := base.Order("id DESC").Scopes(pagination.Paginate(page)).Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, total)
	return &result, nil
}
