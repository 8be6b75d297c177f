package domain

import "time"

// Lead is a contact captured for a product. Leads are never updated.
type Lead struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
