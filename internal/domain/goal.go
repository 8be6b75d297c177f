package domain

import "github.com/launchplanner/launchplanner-server/internal/errors"

// Goal categories.
const (
	CategoryMarketing    = "Marketing"
	CategorySales        = "Sales"
	CategoryDevelopment  = "Development"
	CategoryContent      = "Content"
	CategoryCommunity    = "Community"
	CategoryPartnerships = "Partnerships"
	CategoryOther        = "Other"
)

// GoalCategories lists the fixed set of categories a goal can belong to.
var GoalCategories = []string{
	CategoryMarketing,
	CategorySales,
	CategoryDevelopment,
	CategoryContent,
	CategoryCommunity,
	CategoryPartnerships,
	CategoryOther,
}

// ValidCategory reports whether c is one of GoalCategories.
func ValidCategory(c string) bool {
	for _, known := range GoalCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Goal is a countable or boolean objective belonging to one product.
//
// Completed can be toggled by hand and may disagree with the counts.
// Increment re-derives it only when a target is set.
type Goal struct {
	Record
	ProductID    string `json:"productId"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	TargetCount  *int   `json:"targetCount,omitempty"`
	CurrentCount int    `json:"currentCount"`
	Completed    bool   `json:"completed"`
}

// Progress returns completion as a whole percentage in [0, 100].
func (g *Goal) Progress() int {
	if g.TargetCount != nil && *g.TargetCount > 0 {
		if g.CurrentCount >= *g.TargetCount {
			return 100
		}
		return g.CurrentCount * 100 / *g.TargetCount
	}
	if g.Completed {
		return 100
	}
	return 0
}

// Increment bumps the current count by one.
func (g *Goal) Increment() {
	g.CurrentCount++
	if g.TargetCount != nil {
		g.Completed = g.CurrentCount >= *g.TargetCount
	}
}

// Validate checks goal invariants after a merge.
func (g *Goal) Validate() error {
	if g.Title == "" {
		return errors.Validation("title is required")
	}
	if !ValidCategory(g.Category) {
		return errors.Validationf("category must be one of: %v", GoalCategories)
	}
	if g.CurrentCount < 0 {
		return errors.Validation("currentCount must not be negative")
	}
	if g.TargetCount != nil && *g.TargetCount <= 0 {
		return errors.Validation("targetCount must be greater than 0")
	}
	return nil
}

// GoalUpdate is a partial update. Nil fields are left untouched.
// A targetCount of 0 clears the target.
type GoalUpdate struct {
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Category     *string `json:"category,omitempty" validate:"omitempty,oneof=Marketing Sales Development Content Community Partnerships Other"`
	TargetCount  *int    `json:"targetCount,omitempty" validate:"omitempty,gte=0"`
	CurrentCount *int    `json:"currentCount,omitempty" validate:"omitempty,gte=0"`
	Completed    *bool   `json:"completed,omitempty"`
}

// IsEmpty reports whether the update names no field at all.
func (u GoalUpdate) IsEmpty() bool {
	return u.Title == nil && u.Category == nil && u.TargetCount == nil &&
		u.CurrentCount == nil && u.Completed == nil
}

// Apply merges the non-nil fields of u into g.
func (u GoalUpdate) Apply(g *Goal) {
	if u.Title != nil {
		g.Title = *u.Title
	}
	if u.Category != nil {
		g.Category = *u.Category
	}
	if u.TargetCount != nil {
		if *u.TargetCount == 0 {
			g.TargetCount = nil
		} else {
			target := *u.TargetCount
			g.TargetCount = &target
		}
	}
	if u.CurrentCount != nil {
		g.CurrentCount = *u.CurrentCount
	}
	if u.Completed != nil {
		g.Completed = *u.Completed
	}
}
