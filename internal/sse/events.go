// Package sse implements Server-Sent Events so open planner tabs see changes
// made elsewhere without polling.
package sse

import (
	"time"

	"github.com/launchplanner/launchplanner-server/internal/domain"
)

// EventType represents the type of SSE Event.
type EventType string

const (
	// EventProductCreated represents a product creation event.
	EventProductCreated EventType = "product.created"
	// EventProductUpdated represents a product update event.
	EventProductUpdated EventType = "product.updated"
	// EventProductDeleted represents a product deletion, including its cascade.
	EventProductDeleted EventType = "product.deleted"

	EventGoalCreated EventType = "goal.created"
	EventGoalUpdated EventType = "goal.updated"
	EventGoalDeleted EventType = "goal.deleted"

	EventLeadCreated EventType = "lead.created"
	EventLeadDeleted EventType = "lead.deleted"

	// EventReconciled is sent after a maintenance pass removed orphans.
	EventReconciled EventType = "maintenance.reconciled"

	// EventHeartbeat represents a connection keepalive event.
	EventHeartbeat EventType = "heartbeat"
)

// Event represents an SSE event to be sent to clients.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Type      EventType `json:"type"`

	// ProductID scopes the event. Clients subscribed to one product only
	// receive events for it; empty means broadcast to everyone.
	ProductID string `json:"-"`
}

// ProductEventData is the data payload for product create and update events.
type ProductEventData struct {
	Product *domain.Product `json:"product"`
}

// ProductDeletedEventData is the data payload for product delete events.
type ProductDeletedEventData struct {
	DeletedAt    time.Time `json:"deletedAt"`
	ProductID    string    `json:"productId"`
	GoalsRemoved int       `json:"goalsRemoved"`
	LeadsRemoved int       `json:"leadsRemoved"`
}

// GoalEventData is the data payload for goal create and update events.
type GoalEventData struct {
	Goal     *domain.Goal `json:"goal"`
	Progress int          `json:"progress"`
}

// LeadEventData is the data payload for lead create events.
type LeadEventData struct {
	Lead *domain.Lead `json:"lead"`
}

// DeletedEventData is the data payload for goal and lead delete events.
type DeletedEventData struct {
	DeletedAt time.Time `json:"deletedAt"`
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
}

// ReconciledEventData is the data payload for reconcile events.
type ReconciledEventData struct {
	GoalsRemoved int `json:"goalsRemoved"`
	LeadsRemoved int `json:"leadsRemoved"`
}

// HeartbeatEventData is the data payload for heartbeat events.
type HeartbeatEventData struct {
	ServerTime time.Time `json:"serverTime"`
}

// NewProductCreatedEvent creates a product.created event.
func NewProductCreatedEvent(p *domain.Product) Event {
	return Event{
		Type:      EventProductCreated,
		Data:      ProductEventData{Product: p},
		Timestamp: time.Now(),
		ProductID: p.ID,
	}
}

// NewProductUpdatedEvent creates a product.updated event.
func NewProductUpdatedEvent(p *domain.Product) Event {
	return Event{
		Type:      EventProductUpdated,
		Data:      ProductEventData{Product: p},
		Timestamp: time.Now(),
		ProductID: p.ID,
	}
}

// NewProductDeletedEvent creates a product.deleted event.
func NewProductDeletedEvent(productID string, goalsRemoved, leadsRemoved int) Event {
	now := time.Now()
	return Event{
		Type: EventProductDeleted,
		Data: ProductDeletedEventData{
			DeletedAt:    now,
			ProductID:    productID,
			GoalsRemoved: goalsRemoved,
			LeadsRemoved: leadsRemoved,
		},
		Timestamp: now,
		ProductID: productID,
	}
}

// NewGoalCreatedEvent creates a goal.created event.
func NewGoalCreatedEvent(g *domain.Goal) Event {
	return Event{
		Type:      EventGoalCreated,
		Data:      GoalEventData{Goal: g, Progress: g.Progress()},
		Timestamp: time.Now(),
		ProductID: g.ProductID,
	}
}

// NewGoalUpdatedEvent creates a goal.updated event.
func NewGoalUpdatedEvent(g *domain.Goal) Event {
	return Event{
		Type:      EventGoalUpdated,
		Data:      GoalEventData{Goal: g, Progress: g.Progress()},
		Timestamp: time.Now(),
		ProductID: g.ProductID,
	}
}

// NewGoalDeletedEvent creates a goal.deleted event.
func NewGoalDeletedEvent(goalID, productID string) Event {
	return newDeletedEvent(EventGoalDeleted, goalID, productID)
}

// NewLeadCreatedEvent creates a lead.created event.
func NewLeadCreatedEvent(l *domain.Lead) Event {
	return Event{
		Type:      EventLeadCreated,
		Data:      LeadEventData{Lead: l},
		Timestamp: time.Now(),
		ProductID: l.ProductID,
	}
}

// NewLeadDeletedEvent creates a lead.deleted event.
func NewLeadDeletedEvent(leadID, productID string) Event {
	return newDeletedEvent(EventLeadDeleted, leadID, productID)
}

func newDeletedEvent(t EventType, id, productID string) Event {
	now := time.Now()
	return Event{
		Type:      t,
		Data:      DeletedEventData{DeletedAt: now, ID: id, ProductID: productID},
		Timestamp: now,
		ProductID: productID,
	}
}

// NewReconciledEvent creates a maintenance.reconciled event.
func NewReconciledEvent(goalsRemoved, leadsRemoved int) Event {
	return Event{
		Type:      EventReconciled,
		Data:      ReconciledEventData{GoalsRemoved: goalsRemoved, LeadsRemoved: leadsRemoved},
		Timestamp: time.Now(),
	}
}

// NewHeartbeatEvent creates a heartbeat event.
func NewHeartbeatEvent() Event {
	now := time.Now()
	return Event{
		Type:      EventHeartbeat,
		Data:      HeartbeatEventData{ServerTime: now},
		Timestamp: now,
	}
}
