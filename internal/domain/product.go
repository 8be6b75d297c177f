package domain

import (
	"time"

	"github.com/launchplanner/launchplanner-server/internal/errors"
)

// Quarter is a calendar quarter a launch targets.
type Quarter string

// Quarters.
const (
	Q1 Quarter = "Q1"
	Q2 Quarter = "Q2"
	Q3 Quarter = "Q3"
	Q4 Quarter = "Q4"
)

// Quarters lists every valid quarter in calendar order.
var Quarters = []Quarter{Q1, Q2, Q3, Q4}

// Valid reports whether q is one of Q1..Q4.
func (q Quarter) Valid() bool {
	switch q {
	case Q1, Q2, Q3, Q4:
		return true
	}
	return false
}

// QuarterOf returns the quarter containing t.
func QuarterOf(t time.Time) Quarter {
	return Quarters[(int(t.Month())-1)/3]
}

// ProductStatus tracks where a launch is in its lifecycle.
type ProductStatus string

// Product statuses.
const (
	StatusPlanning   ProductStatus = "planning"
	StatusInProgress ProductStatus = "in-progress"
	StatusLaunched   ProductStatus = "launched"
)

// Valid reports whether s is a known status.
func (s ProductStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusLaunched:
		return true
	}
	return false
}

// Year bounds accepted for TargetYear.
const (
	MinTargetYear = 2000
	MaxTargetYear = 2100
)

// Product is a planned launch. Deleting it removes its goals and leads.
type Product struct {
	Record
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	TargetQuarter Quarter       `json:"targetQuarter"`
	TargetYear    int           `json:"targetYear"`
	StartDate     string        `json:"startDate"` // YYYY-MM-DD
	EndDate       string        `json:"endDate"`   // YYYY-MM-DD
	Status        ProductStatus `json:"status"`
}

// ApplyDefaults fills optional fields left empty by the caller. The target
// quarter and year fall back to the quarter the product starts in.
func (p *Product) ApplyDefaults() {
	if p.Status == "" {
		p.Status = StatusPlanning
	}
	start, err := time.Parse(time.DateOnly, p.StartDate)
	if err != nil {
		return
	}
	if p.TargetQuarter == "" {
		p.TargetQuarter = QuarterOf(start)
	}
	if p.TargetYear == 0 {
		p.TargetYear = start.Year()
	}
}

// Validate checks the invariants that span more than one field. Field-level
// rules (required, formats, enums) are enforced on the request types.
func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.Validation("name is required")
	}
	if !p.TargetQuarter.Valid() {
		return errors.Validationf("targetQuarter must be one of: Q1 Q2 Q3 Q4")
	}
	if !p.Status.Valid() {
		return errors.Validationf("status must be one of: planning in-progress launched")
	}
	if p.TargetYear < MinTargetYear || p.TargetYear > MaxTargetYear {
		return errors.Validationf("targetYear must be between %d and %d", MinTargetYear, MaxTargetYear)
	}

	start, err := time.Parse(time.DateOnly, p.StartDate)
	if err != nil {
		return errors.Validation("startDate must be a date in YYYY-MM-DD format")
	}
	end, err := time.Parse(time.DateOnly, p.EndDate)
	if err != nil {
		return errors.Validation("endDate must be a date in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return errors.Validation("endDate must not be before startDate")
	}
	return nil
}

// ProductUpdate is a partial update. Nil fields are left untouched.
type ProductUpdate struct {
	Name          *string        `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string        `json:"description,omitempty" validate:"omitempty,max=5000"`
	TargetQuarter *Quarter       `json:"targetQuarter,omitempty" validate:"omitempty,oneof=Q1 Q2 Q3 Q4"`
	TargetYear    *int           `json:"targetYear,omitempty" validate:"omitempty,gte=2000,lte=2100"`
	StartDate     *string        `json:"startDate,omitempty" validate:"omitempty,isodate"`
	EndDate       *string        `json:"endDate,omitempty" validate:"omitempty,isodate"`
	Status        *ProductStatus `json:"status,omitempty" validate:"omitempty,oneof=planning in-progress launched"`
}

// IsEmpty reports whether the update names no field at all.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.TargetQuarter == nil &&
		u.TargetYear == nil && u.StartDate == nil && u.EndDate == nil && u.Status == nil
}

// Apply merges the non-nil fields of u into p.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.TargetQuarter != nil {
		p.TargetQuarter = *u.TargetQuarter
	}
	if u.TargetYear != nil {
		p.TargetYear = *u.TargetYear
	}
	if u.StartDate != nil {
		p.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		p.EndDate = *u.EndDate
	}
	if u.Status != nil {
		p.Status = *u.Status
	}
}
