package store

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/errors"
	"github.com/launchplanner/launchplanner-server/internal/id"
	"github.com/launchplanner/launchplanner-server/internal/sse"
)

// ListGoals returns every goal in store order.
func (s *Store) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	return s.listGoals(ctx, "list", nil)
}

// ListGoalsByProduct returns the goals of one product in store order.
func (s *Store) ListGoalsByProduct(ctx context.Context, productID string) ([]domain.Goal, error) {
	return s.listGoals(ctx, "list_by_product", func(g *domain.Goal) bool {
		return g.ProductID == productID
	})
}

func (s *Store) listGoals(ctx context.Context, op string, keep func(*domain.Goal) bool) ([]domain.Goal, error) {
	var goals []domain.Goal
	err := s.view(ctx, KeyGoals, op, func(txn *badger.Txn) error {
		all, err := s.goals.load(txn)
		if err != nil {
			return err
		}
		if keep == nil {
			goals = all
		} else {
			goals = filter(all, keep)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// GetGoal returns the goal with the given id.
func (s *Store) GetGoal(ctx context.Context, goalID string) (*domain.Goal, error) {
	var goal domain.Goal
	err := s.view(ctx, KeyGoals, "get", func(txn *badger.Txn) error {
		goals, err := s.goals.load(txn)
		if err != nil {
			return err
		}
		var ok bool
		if goal, ok = s.goals.find(goals, goalID); !ok {
			return errors.NotFoundf("goal %s not found", goalID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// CreateGoal assigns an id and timestamps and appends the goal. The current
// count always starts at zero whatever the caller passed.
func (s *Store) CreateGoal(ctx context.Context, goal domain.Goal) (*domain.Goal, error) {
	goalID, err := id.Generate(id.GoalPrefix)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to generate goal id")
	}

	goal.ID = goalID
	goal.CurrentCount = 0
	goal.InitTimestamps(s.now())
	if goal.Category == "" {
		goal.Category = domain.CategoryOther
	}
	if err := goal.Validate(); err != nil {
		s.metrics.RecordStoreOp(KeyGoals, "create", resultOf(err))
		return nil, err
	}

	err = s.update(ctx, KeyGoals, "create", func(txn *badger.Txn) error {
		if err := s.productExists(txn, goal.ProductID); err != nil {
			return err
		}
		goals, err := s.goals.load(txn)
		if err != nil {
			return err
		}
		return s.goals.save(txn, append(goals, goal))
	})
	if err != nil {
		return nil, err
	}

	s.eventEmitter.Emit(sse.NewGoalCreatedEvent(&goal))
	return &goal, nil
}

// UpdateGoal merges the non-nil fields of upd into the goal and refreshes its
// update timestamp.
func (s *Store) UpdateGoal(ctx context.Context, goalID string, upd domain.GoalUpdate) (*domain.Goal, error) {
	return s.mutateGoal(ctx, goalID, "update", func(g *domain.Goal) {
		upd.Apply(g)
	})
}

// IncrementGoal adds one to the goal's current count.
func (s *Store) IncrementGoal(ctx context.Context, goalID string) (*domain.Goal, error) {
	return s.mutateGoal(ctx, goalID, "increment", func(g *domain.Goal) {
		g.Increment()
	})
}

func (s *Store) mutateGoal(ctx context.Context, goalID, op string, mutate func(*domain.Goal)) (*domain.Goal, error) {
	var updated domain.Goal
	err := s.update(ctx, KeyGoals, op, func(txn *badger.Txn) error {
		goals, err := s.goals.load(txn)
		if err != nil {
			return err
		}
		i := s.goals.indexOf(goals, goalID)
		if i < 0 {
			return errors.NotFoundf("goal %s not found", goalID)
		}

		updated = goals[i]
		if goals[i].TargetCount != nil {
			target := *goals[i].TargetCount
			updated.TargetCount = &target
		}
		mutate(&updated)
		if err := updated.Validate(); err != nil {
			return err
		}
		updated.Touch(s.now())

		goals[i] = updated
		return s.goals.save(txn, goals)
	})
	if err != nil {
		return nil, err
	}

	s.eventEmitter.Emit(sse.NewGoalUpdatedEvent(&updated))
	return &updated, nil
}

// DeleteGoal removes exactly one goal.
func (s *Store) DeleteGoal(ctx context.Context, goalID string) error {
	var removed []domain.Goal
	err := s.update(ctx, KeyGoals, "delete", func(txn *badger.Txn) error {
		goals, err := s.goals.load(txn)
		if err != nil {
			return err
		}
		var kept []domain.Goal
		kept, removed = partition(goals, func(g *domain.Goal) bool { return g.ID == goalID })
		if len(removed) == 0 {
			return errors.NotFoundf("goal %s not found", goalID)
		}
		return s.goals.save(txn, kept)
	})
	if err != nil {
		return err
	}

	s.eventEmitter.Emit(sse.NewGoalDeletedEvent(goalID, removed[0].ProductID))
	return nil
}
