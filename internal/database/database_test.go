package database

import (
	"fmt"
	"testing"
	"time"

	"finboard/internal/logger"
	"finboard/internal/models"
)

func TestManager(t *testing.T) {
	logger.Init("test", "")

	mgr, err := NewManager(NewConfig(fmt.Sprintf("file:dbtest%d?mode=memory&cache=shared", time.Now().UnixNano())))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	defer func() { _ = mgr.Close() }()

	if err := mgr.Migrate(); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	entry := &models.AuditLog{Action: "created", Resource: "goal", ResourceID: "1", RecordedAt: time.Now()}
	if err := mgr.DB().Create(entry).Error; err != nil {
		t.Fatalf("failed to insert audit entry: %v", err)
	}

	var count int64
	if err := mgr.DB().Model(&models.AuditLog{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 audit entry, got %d", count)
	}
}

func TestNewConfig(t *testing.T) {
	if got := NewConfig("").DSN; got != DefaultDSN {
		t.Errorf("expected default DSN, got %s", got)
	}
	if got := NewConfig("file:x.db").DSN; got != "file:x.db" {
		t.Errorf("expected explicit DSN, got %s", got)
	}
}
