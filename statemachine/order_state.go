package statemachine

import (
	"errors"

	"food-ordering-api/models"
)

// Transition defines a valid state change and the event that causes it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Event string // "checkout", "cancel", "complete"
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Checkout flips a non-empty cart into a placed order
	{From: models.StatusCart, To: models.StatusPlaced, Event: "checkout"},
	// Fulfillment marks a placed order completed
	{From: models.StatusPlaced, To: models.StatusCompleted, Event: "complete"},
	// Placed and completed orders can be cancelled; cancelled is final
	{From: models.StatusPlaced, To: models.StatusCancelled, Event: "cancel"},
	{From: models.StatusCompleted, To: models.StatusCancelled, Event: "cancel"},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Event string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Event}] = true
	}
	return m
}()

// Terminal reports whether no event can ever leave the given status.
// A completed order is not terminal in the strict sense because it can
// still be cancelled; only cancelled admits no further transitions.
func Terminal(status models.OrderStatus) bool {
	for _, t := range validTransitions {
		if t.From == status {
			return false
		}
	}
	return true
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks whether the given event may move an order from
// one state to another
func CanTransition(from, to models.OrderStatus, event string) error {
	if transitionMap[transitionKey{From: from, To: to, Event: event}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			" is not allowed for event '" + event + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
