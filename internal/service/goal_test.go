package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchplanner/launchplanner-server/internal/domain"
	"github.com/launchplanner/launchplanner-server/internal/errors"
)

func TestCreateGoal(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()
	p := ts.createProduct(t)

	t.Run("defaults category and starts at zero", func(t *testing.T) {
		g, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: p.ID, Title: "Blog posts", TargetCount: ptr(4), CurrentCount: 3})
		require.NoError(t, err)

		assert.Equal(t, domain.CategoryOther, g.Category)
		assert.Zero(t, g.CurrentCount)
		require.NotNil(t, g.TargetCount)
		assert.Equal(t, 4, *g.TargetCount)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: "prd-missing", Title: "x"})
		assertCode(t, errors.CodeValidation, err)
		assert.Contains(t, err.Error(), "prd-missing")
	})

	t.Run("bad category", func(t *testing.T) {
		_, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: p.ID, Title: "x", Category: "Legal"})
		assertCode(t, errors.CodeValidation, err)
	})

	t.Run("zero target", func(t *testing.T) {
		_, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: p.ID, Title: "x", TargetCount: ptr(0)})
		assertCode(t, errors.CodeValidation, err)
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: p.ID})
		assertCode(t, errors.CodeValidation, err)
		assert.Contains(t, err.Error(), "title is required")
	})
}

func TestListGoals_FiltersByProduct(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()
	a := ts.createProduct(t)
	b := ts.createProduct(t)

	for _, productID := range []string{a.ID, b.ID, a.ID} {
		_, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: productID, Title: "goal"})
		require.NoError(t, err)
	}

	all, err := ts.goals.ListGoals(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyA, err := ts.goals.ListGoals(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, onlyA, 2)
	for _, g := range onlyA {
		assert.Equal(t, a.ID, g.ProductID)
	}
}

func TestIncrementGoal(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()
	p := ts.createProduct(t)

	g, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: p.ID, Title: "Demos", TargetCount: ptr(2)})
	require.NoError(t, err)

	g, err = ts.goals.IncrementGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, g.CurrentCount)
	assert.False(t, g.Completed)
	assert.Equal(t, 50, g.Progress())

	g, err = ts.goals.IncrementGoal(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, g.Completed)
	assert.Equal(t, 100, g.Progress())

	_, err = ts.goals.IncrementGoal(ctx, "goal-missing")
	assertCode(t, errors.CodeNotFound, err)
}

func TestUpdateGoal(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()
	p := ts.createProduct(t)

	g, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: p.ID, Title: "Launch party"})
	require.NoError(t, err)

	t.Run("manual completion", func(t *testing.T) {
		updated, err := ts.goals.UpdateGoal(ctx, g.ID, domain.GoalUpdate{Completed: ptr(true)})
		require.NoError(t, err)
		assert.True(t, updated.Completed)
		assert.Equal(t, 100, updated.Progress())
	})

	t.Run("negative count rejected", func(t *testing.T) {
		_, err := ts.goals.UpdateGoal(ctx, g.ID, domain.GoalUpdate{CurrentCount: ptr(-1)})
		assertCode(t, errors.CodeValidation, err)
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := ts.goals.UpdateGoal(ctx, g.ID, domain.GoalUpdate{})
		assertCode(t, errors.CodeValidation, err)
	})
}

func TestDeleteGoal(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()
	p := ts.createProduct(t)

	g, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: p.ID, Title: "x"})
	require.NoError(t, err)

	assertCode(t, errors.CodeValidation, ts.goals.DeleteGoal(ctx, ""))
	require.NoError(t, ts.goals.DeleteGoal(ctx, g.ID))
	assertCode(t, errors.CodeNotFound, ts.goals.DeleteGoal(ctx, g.ID))
}

func TestGetGoal(t *testing.T) {
	ts := setupTestServices(t)
	ctx := context.Background()
	p := ts.createProduct(t)

	created, err := ts.goals.CreateGoal(ctx, CreateGoalRequest{ProductID: p.ID, Title: "Launch tweet"})
	require.NoError(t, err)

	got, err := ts.goals.GetGoal(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, p.ID, got.ProductID)
	assert.Equal(t, "Launch tweet", got.Title)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))

	_, err = ts.goals.GetGoal(ctx, "")
	assertCode(t, errors.CodeValidation, err)

	_, err = ts.goals.GetGoal(ctx, "goal-missing")
	assertCode(t, errors.CodeNotFound, err)
}
