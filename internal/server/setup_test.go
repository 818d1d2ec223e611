package server_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"finboard/internal/logger"
	"finboard/internal/server"
	"finboard/internal/services"
	"finboard/internal/store"
	"finboard/internal/testutil"
	"finboard/internal/validator"
)

// testApp holds the full application stack for flow tests.
type testApp struct {
	DB     *gorm.DB
	Store  *store.Store
	Clock  *testutil.Clock
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test", "")
	validator.Register()
}

// setupApp creates a full application stack over seed, with the audit log in
// an isolated in-memory SQLite database.
func setupApp(t *testing.T, seed store.Seed) *testApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	st, clock := testutil.NewTestStore(t, seed)
	audit := services.NewAuditService(db)
	st.Subscribe(audit.Record)

	router := server.NewRouter(server.Services{
		Transactions: services.NewTransactionService(st),
		Portfolios:   services.NewPortfolioService(st),
		Budgets:      services.NewBudgetService(st),
		Goals:        services.NewGoalService(st, clock.Now),
		Dashboard:    services.NewDashboardService(st, "SGD"),
		Audit:        audit,
	}, "*")

	return &testApp{DB: db, Store: st, Clock: clock, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("expected %d, got %d: %s", want, rec.Code, rec.Body.String())
	}
}
