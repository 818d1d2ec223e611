package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"finboard/internal/services"
	"finboard/internal/testutil"
)

type mockDashboardService struct {
	getDashboardFn func() (*services.Dashboard, error)
}

func (m *mockDashboardService) GetDashboard() (*services.Dashboard, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn()
	}
	return &services.Dashboard{}, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Run("returns_200_with_statistics", func(t *testing.T) {
		svc := &mockDashboardService{
			getDashboardFn: func() (*services.Dashboard, error) {
				return &services.Dashboard{
					Currency: "SGD",
					NetWorth: testutil.Dec("5030"),
					Display:  services.DashboardDisplay{NetWorth: "S$5,030.00"},
				}, nil
			},
		}
		r := gin.New()
		r.GET("/dashboard", NewDashboardHandler(svc).GetDashboard)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["net_worth"].(float64) != 5030 {
			t.Errorf("expected net_worth 5030, got %v", result["net_worth"])
		}
		display := result["display"].(map[string]interface{})
		if display["net_worth"] != "S$5,030.00" {
			t.Errorf("expected display net worth, got %v", display["net_worth"])
		}
	})

	t.Run("returns_500_on_failure", func(t *testing.T) {
		svc := &mockDashboardService{
			getDashboardFn: func() (*services.Dashboard, error) { return nil, errors.New("boom") },
		}
		r := gin.New()
		r.GET("/dashboard", NewDashboardHandler(svc).GetDashboard)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
