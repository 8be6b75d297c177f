package service

import (
	"context"
	"log/slog"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/errors"
	"github.com/launchplanner/launchplanner-server/internal/store"
	"github.com/launchplanner/launchplanner-server/internal/validation"
)

// GoalService orchestrates goal operations.
type GoalService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewGoalService creates a new goal service.
func NewGoalService(store *store.Store, logger *slog.Logger) *GoalService {
	return &GoalService{
		store:     store,
		validator: validation.New(),
		logger:    logger,
	}
}

// CreateGoalRequest holds the fields a client may set on a new goal.
// CurrentCount is accepted for compatibility but new goals always start at zero.
type CreateGoalRequest struct {
	ProductID    string `json:"productId" validate:"required"`
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Category     string `json:"category,omitempty" validate:"omitempty,oneof=Marketing Sales Development Content Community Partnerships Other"`
	TargetCount  *int   `json:"targetCount,omitempty" validate:"omitempty,gt=0"`
	CurrentCount int    `json:"currentCount,omitempty" doc:"Ignored, new goals start at 0"`
	Completed    bool   `json:"completed,omitempty"`
}

// ListGoals returns all goals, or only those of productID when it is set.
func (s *GoalService) ListGoals(ctx context.Context, productID string) ([]domain.Goal, error) {
	if productID != "" {
		return s.store.ListGoalsByProduct(ctx, productID)
	}
	return s.store.ListGoals(ctx)
}

// GetGoal returns one goal.
func (s *GoalService) GetGoal(ctx context.Context, goalID string) (*domain.Goal, error) {
	if goalID == "" {
		return nil, errors.Validation("id is required")
	}
	return s.store.GetGoal(ctx, goalID)
}

// CreateGoal validates the request and stores a new goal for an existing product.
func (s *GoalService) CreateGoal(ctx context.Context, req CreateGoalRequest) (*domain.Goal, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	goal, err := s.store.CreateGoal(ctx, domain.Goal{
		ProductID:    req.ProductID,
		Title:        req.Title,
		Category:     req.Category,
		TargetCount:  req.TargetCount,
		CurrentCount: req.CurrentCount,
		Completed:    req.Completed,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("goal created",
		"goal_id", goal.ID,
		"product_id", goal.ProductID,
		"category", goal.Category,
	)
	return goal, nil
}

// UpdateGoal applies a partial update.
func (s *GoalService) UpdateGoal(ctx context.Context, goalID string, upd domain.GoalUpdate) (*domain.Goal, error) {
	if goalID == "" {
		return nil, errors.Validation("id is required")
	}
	if err := s.validator.Validate(upd); err != nil {
		return nil, err
	}
	if upd.IsEmpty() {
		return nil, errors.Validation("update must set at least one field")
	}

	goal, err := s.store.UpdateGoal(ctx, goalID, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("goal updated",
		"goal_id", goal.ID,
		"current_count", goal.CurrentCount,
		"completed", goal.Completed,
	)
	return goal, nil
}

// IncrementGoal records one more unit of progress.
func (s *GoalService) IncrementGoal(ctx context.Context, goalID string) (*domain.Goal, error) {
	if goalID == "" {
		return nil, errors.Validation("id is required")
	}

	goal, err := s.store.IncrementGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("goal incremented",
		"goal_id", goal.ID,
		"current_count", goal.CurrentCount,
		"progress", goal.Progress(),
	)
	return goal, nil
}

// DeleteGoal removes one goal.
func (s *GoalService) DeleteGoal(ctx context.Context, goalID string) error {
	if goalID == "" {
		return errors.Validation("id is required")
	}
	if err := s.store.DeleteGoal(ctx, goalID); err != nil {
		return err
	}

	s.logger.Info("goal deleted", "goal_id", goalID)
	return nil
}
