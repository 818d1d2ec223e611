package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"
	"finboard/internal/testutil"
)

// --- mock goal service ---

type mockGoalService struct {
	createGoalFn func(g models.FinancialGoal) (*models.FinancialGoal, error)
	getGoalsFn   func() (*services.GoalList, error)
	contributeFn func(id string, amount decimal.Decimal) (*services.GoalProgress, error)
}

func (m *mockGoalService) CreateGoal(g models.FinancialGoal) (*models.FinancialGoal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(g)
	}
	return &g, nil
}

func (m *mockGoalService) GetGoals() (*services.GoalList, error) {
	if m.getGoalsFn != nil {
		return m.getGoalsFn()
	}
	return &services.GoalList{Goals: []services.GoalProgress{}}, nil
}

func (m *mockGoalService) Contribute(id string, amount decimal.Decimal) (*services.GoalProgress, error) {
	if m.contributeFn != nil {
		return m.contributeFn(id, amount)
	}
	return &services.GoalProgress{}, nil
}

var _ services.GoalServicer = (*mockGoalService)(nil)

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	r.GET("/goals", handler.GetGoals)
	r.POST("/goals", handler.CreateGoal)
	r.POST("/goals/:id/contributions", handler.Contribute)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns_201_on_success", func(t *testing.T) {
		var got models.FinancialGoal
		svc := &mockGoalService{
			createGoalFn: func(g models.FinancialGoal) (*models.FinancialGoal, error) {
				got = g
				g.ID = "g1"
				return &g, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals",
			`{"title":"House","target_amount":50000,"deadline":"2026-12-31","category":"Housing"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		testutil.AssertDecimal(t, "target", got.TargetAmount, testutil.Dec("50000"))
		if got.Deadline.String() != "2026-12-31" {
			t.Errorf("expected deadline 2026-12-31, got %s", got.Deadline)
		}
	})

	t.Run("returns_400_on_missing_deadline", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "POST", "/goals", `{"title":"House","target_amount":50000}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns_400_on_zero_target", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "POST", "/goals", `{"title":"House","target_amount":0,"deadline":"2026-12-31"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_Contribute(t *testing.T) {
	t.Run("returns_200_on_success", func(t *testing.T) {
		var gotID string
		var gotAmount decimal.Decimal
		svc := &mockGoalService{
			contributeFn: func(id string, amount decimal.Decimal) (*services.GoalProgress, error) {
				gotID, gotAmount = id, amount
				return &services.GoalProgress{
					FinancialGoal: models.FinancialGoal{ID: id, CurrentAmount: testutil.Dec("1000")},
					IsCompleted:   true,
				}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals/g1/contributions", `{"amount":500}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotID != "g1" {
			t.Errorf("expected g1, got %q", gotID)
		}
		testutil.AssertDecimal(t, "amount", gotAmount, testutil.Dec("500"))
		goal := parseJSON(t, rec)["goal"].(map[string]interface{})
		if goal["is_completed"] != true {
			t.Errorf("expected completed goal, got %v", goal)
		}
	})

	t.Run("returns_400_on_negative_amount", func(t *testing.T) {
		svc := &mockGoalService{
			contributeFn: func(string, decimal.Decimal) (*services.GoalProgress, error) {
				return nil, apperrors.ErrInvalidContribution
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals/g1/contributions", `{"amount":-5}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CONTRIBUTION")
	})

	t.Run("returns_404_when_not_found", func(t *testing.T) {
		svc := &mockGoalService{
			contributeFn: func(string, decimal.Decimal) (*services.GoalProgress, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals/missing/contributions", `{"amount":5}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("returns_400_on_malformed_body", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "POST", "/goals/g1/contributions", `{"amount":"lots"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_GetGoals(t *testing.T) {
	svc := &mockGoalService{
		getGoalsFn: func() (*services.GoalList, error) {
			return &services.GoalList{
				Goals:      []services.GoalProgress{{FinancialGoal: models.FinancialGoal{ID: "1"}, DaysRemaining: 30}},
				TotalSaved: testutil.Dec("6500"),
			}, nil
		},
	}
	r := setupGoalRouter(NewGoalHandler(svc))

	rec := doRequest(r, "GET", "/goals", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if result["total_saved"].(float64) != 6500 {
		t.Errorf("expected total_saved 6500, got %v", result["total_saved"])
	}
	goals := result["goals"].([]interface{})
	if goals[0].(map[string]interface{})["days_remaining"].(float64) != 30 {
		t.Errorf("expected days_remaining 30, got %v", goals[0])
	}
}
