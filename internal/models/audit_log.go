package models

import "time"

// AuditLog records one mutation of the finance store.
type AuditLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Action      string    `gorm:"not null;index" json:"action"`
	Resource    string    `gorm:"not null" json:"resource"`
	ResourceID  string    `gorm:"not null;index" json:"resource_id"`
	PortfolioID string    `json:"portfolio_id,omitempty"`
	Changes     string    `json:"changes,omitempty"`
	RecordedAt  time.Time `gorm:"not null;index" json:"recorded_at"`
}
