package services

import (
	"os"
	"testing"

	"finboard/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init("test", "")
	os.Exit(m.Run())
}
