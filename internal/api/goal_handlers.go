package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/service"
)

func (s *Server) registerGoalRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listGoals",
		Method:      http.MethodGet,
		Path:        "/api/goals",
		Summary:     "List goals",
		Description: "Returns all goals, or only those of one product when productId is given",
		Tags:        []string{"Goals"},
	}, s.handleListGoals)

	huma.Register(s.api, huma.Operation{
		OperationID: "getGoal",
		Method:      http.MethodGet,
		Path:        "/api/goals/{id}",
		Summary:     "Get goal",
		Description: "Returns a single goal with its progress",
		Tags:        []string{"Goals"},
	}, s.handleGetGoal)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createGoal",
		Method:        http.MethodPost,
		Path:          "/api/goals",
		Summary:       "Create goal",
		Description:   "Creates a goal for an existing product. The current count always starts at zero.",
		Tags:          []string{"Goals"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateGoal)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateGoal",
		Method:      http.MethodPut,
		Path:        "/api/goals",
		Summary:     "Update goal",
		Description: "Merges the supplied fields into the goal named by id. A targetCount of 0 clears the target.",
		Tags:        []string{"Goals"},
	}, s.handleUpdateGoal)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteGoal",
		Method:      http.MethodDelete,
		Path:        "/api/goals",
		Summary:     "Delete goal",
		Tags:        []string{"Goals"},
	}, s.handleDeleteGoal)

	huma.Register(s.api, huma.Operation{
		OperationID: "incrementGoal",
		Method:      http.MethodPost,
		Path:        "/api/goals/{id}/increment",
		Summary:     "Increment goal",
		Description: "Adds one to the current count. With a target set, completed follows the count.",
		Tags:        []string{"Goals"},
	}, s.handleIncrementGoal)
}

// === DTOs ===

// GoalResponse is a goal plus its computed progress.
type GoalResponse struct {
	domain.Goal
	Progress int `json:"progress" doc:"Completion percentage, 0 to 100"`
}

func newGoalResponse(g domain.Goal) GoalResponse {
	return GoalResponse{Goal: g, Progress: g.Progress()}
}

// ListGoalsInput contains parameters for listing goals.
type ListGoalsInput struct {
	ProductID string `query:"productId" doc:"Only return goals of this product"`
}

// GoalListOutput wraps the goal list for Huma.
type GoalListOutput struct {
	Body []GoalResponse
}

// GoalOutput wraps a single goal for Huma.
type GoalOutput struct {
	Body GoalResponse
}

// CreateGoalInput wraps the create goal request for Huma.
type CreateGoalInput struct {
	Body service.CreateGoalRequest
}

// UpdateGoalRequest is `{id, ...updates}`. Unknown fields are rejected.
type UpdateGoalRequest struct {
	_  struct{} `json:"-" additionalProperties:"false"`
	ID string   `json:"id" doc:"Goal ID"`
	domain.GoalUpdate
}

// UpdateGoalInput wraps the update goal request for Huma.
type UpdateGoalInput struct {
	Body UpdateGoalRequest
}

// GetGoalInput names the goal to fetch.
type GetGoalInput struct {
	ID string `path:"id" doc:"Goal ID"`
}

// IncrementGoalInput names the goal to increment.
type IncrementGoalInput struct {
	ID string `path:"id" doc:"Goal ID"`
}

// === Handlers ===

func (s *Server) handleListGoals(ctx context.Context, input *ListGoalsInput) (*GoalListOutput, error) {
	goals, err := s.services.Goal.ListGoals(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	resp := make([]GoalResponse, len(goals))
	for i, g := range goals {
		resp[i] = newGoalResponse(g)
	}
	return &GoalListOutput{Body: resp}, nil
}

func (s *Server) handleGetGoal(ctx context.Context, input *GetGoalInput) (*GoalOutput, error) {
	goal, err := s.services.Goal.GetGoal(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GoalOutput{Body: newGoalResponse(*goal)}, nil
}

func (s *Server) handleCreateGoal(ctx context.Context, input *CreateGoalInput) (*GoalOutput, error) {
	goal, err := s.services.Goal.CreateGoal(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &GoalOutput{Body: newGoalResponse(*goal)}, nil
}

func (s *Server) handleUpdateGoal(ctx context.Context, input *UpdateGoalInput) (*GoalOutput, error) {
	goal, err := s.services.Goal.UpdateGoal(ctx, input.Body.ID, input.Body.GoalUpdate)
	if err != nil {
		return nil, err
	}
	return &GoalOutput{Body: newGoalResponse(*goal)}, nil
}

func (s *Server) handleIncrementGoal(ctx context.Context, input *IncrementGoalInput) (*GoalOutput, error) {
	goal, err := s.services.Goal.IncrementGoal(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GoalOutput{Body: newGoalResponse(*goal)}, nil
}

func (s *Server) handleDeleteGoal(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if err := s.services.Goal.DeleteGoal(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{Body: DeleteResponse{Success: true}}, nil
}
