package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Anurag-techs/Spend-Smart/internal/errors"
	"github.com/Anurag-techs/Spend-Smart/internal/models"
	"github.com/Anurag-techs/Spend-Smart/internal/pagination"
)

type mockGoalService struct {
	createGoalFn      func(userID uint, name string, targetAmount float64, deadline *time.Time) (*models.Goal, error)
	getUserGoalsFn    func(userID uint, page pagination.PageRequest, achieved *bool) (*pagination.PageResponse[models.Goal], error)
	getGoalByIDFn     func(userID, goalID uint) (*models.Goal, error)
	updateGoalFn      func(userID, goalID uint, name string, targetAmount *float64, deadline *time.Time) (*models.Goal, error)
	deleteGoalFn      func(userID, goalID uint) error
	addContributionFn func(userID, goalID uint, amount float64) (*models.Goal, error)
}

func (m *mockGoalService) CreateGoal(userID uint, name string, targetAmount float64, deadline *time.Time) (*models.Goal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, name, targetAmount, deadline)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) GetUserGoals(userID uint, page pagination.PageRequest, achieved *bool) (*pagination.PageResponse[models.Goal], error) {
	if m.getUserGoalsFn != nil {
		return m.getUserGoalsFn(userID, page, achieved)
	}
	resp := pagination.NewPageResponse([]models.Goal{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockGoalService) GetGoalByID(userID, goalID uint) (*models.Goal, error) {
	if m.getGoalByIDFn != nil {
		return m.getGoalByIDFn(userID, goalID)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) UpdateGoal(userID, goalID uint, name string, targetAmount *float64, deadline *time.Time) (*models.Goal, error) {
	if m.updateGoalFn != nil {
		return m.updateGoalFn(userID, goalID, name, targetAmount, deadline)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) DeleteGoal(userID, goalID uint) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(userID, goalID)
	}
	return nil
}

func (m *mockGoalService) AddContribution(userID, goalID uint, amount float64) (*models.Goal, error) {
	if m.addContributionFn != nil {
		return m.addContributionFn(userID, goalID, amount)
	}
	return &models.Goal{}, nil
}

func setupGoalRouter(handler *GoalHandler) *gin.Engine {
	r := gin.New()
	goals := r.Group("/goals", injectUserID(1))
	goals.POST("", handler.CreateGoal)
	goals.GET("", handler.GetGoals)
	goals.GET("/:id", handler.GetGoal)
	goals.PUT("/:id", handler.UpdateGoal)
	goals.DELETE("/:id", handler.DeleteGoal)
	goals.POST("/:id/contribute", handler.AddContribution)
	return r
}

func TestGoalHandler_CreateGoal(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockGoalService{
			createGoalFn: func(userID uint, name string, targetAmount float64, deadline *time.Time) (*models.Goal, error) {
				return &models.Goal{
					Base:         models.Base{ID: 1},
					UserID:       userID,
					Name:         name,
					TargetAmount: targetAmount,
					Deadline:     deadline,
				}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals", `{"name":"Emergency fund","target_amount":50000,"deadline":"2025-12-31"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		goal := result["goal"].(map[string]interface{})
		if goal["name"] != "Emergency fund" {
			t.Errorf("expected name, got %v", goal["name"])
		}
		if goal["deadline"] == nil {
			t.Error("expected deadline to be set")
		}
	})

	t.Run("returns 400 on missing target", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "POST", "/goals", `{"name":"No target"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_AddContribution(t *testing.T) {
	t.Run("returns updated goal with progress", func(t *testing.T) {
		svc := &mockGoalService{
			addContributionFn: func(_, goalID uint, amount float64) (*models.Goal, error) {
				return &models.Goal{
					Base:         models.Base{ID: goalID},
					TargetAmount: 1000,
					SavedAmount:  amount,
				}, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals/1/contribute", `{"amount":400}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["progress"] != float64(40) {
			t.Errorf("expected progress 40, got %v", result["progress"])
		}
	})

	t.Run("returns 409 when already achieved", func(t *testing.T) {
		svc := &mockGoalService{
			addContributionFn: func(_, _ uint, _ float64) (*models.Goal, error) {
				return nil, apperrors.ErrGoalAchieved
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "POST", "/goals/1/contribute", `{"amount":100}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "GOAL_ACHIEVED")
	})

	t.Run("returns 400 on non-positive amount", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "POST", "/goals/1/contribute", `{"amount":0}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestGoalHandler_GetGoals(t *testing.T) {
	t.Run("passes achieved filter", func(t *testing.T) {
		var captured *bool
		svc := &mockGoalService{
			getUserGoalsFn: func(_ uint, _ pagination.PageRequest, achieved *bool) (*pagination.PageResponse[models.Goal], error) {
				captured = achieved
				resp := pagination.NewPageResponse([]models.Goal{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupGoalRouter(NewGoalHandler(svc))

		rec := doRequest(r, "GET", "/goals?achieved=true", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured == nil || !*captured {
			t.Error("expected achieved filter true")
		}
	})

	t.Run("rejects malformed achieved value", func(t *testing.T) {
		r := setupGoalRouter(NewGoalHandler(&mockGoalService{}))

		rec := doRequest(r, "GET", "/goals?achieved=maybe", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
