// Package domain contains the core entities of the launch planner: products,
// their goals and the leads captured for them.
package domain

import "time"

// Record provides the identity and timestamp fields shared by products and goals.
// It is embedded so the fields serialize flat alongside the entity's own fields.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InitTimestamps sets both CreatedAt and UpdatedAt to now.
// Call this when creating a new entity.
func (r *Record) InitTimestamps(now time.Time) {
	now = now.UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
}

// Touch updates the UpdatedAt timestamp. It never moves backwards, so
// UpdatedAt >= CreatedAt holds even if the clock steps back.
func (r *Record) Touch(now time.Time) {
	now = now.UTC()
	if now.Before(r.UpdatedAt) {
		now = r.UpdatedAt
	}
	r.UpdatedAt = now
}
