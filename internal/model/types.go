// Package model defines the core data structures for quest.
package model

import (
	"fmt"
	"strings"

	"github.com/jacksmith/quest/internal/cli"
)

// Priority represents the urgency of a quest.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityAliases maps accepted spellings to canonical priorities. The
// Portuguese spellings come from data files written by the original tool.
var priorityAliases = map[string]Priority{
	"high":   PriorityHigh,
	"alta":   PriorityHigh,
	"medium": PriorityMedium,
	"média":  PriorityMedium,
	"media":  PriorityMedium,
	"low":    PriorityLow,
	"baixa":  PriorityLow,
}

// ParsePriority parses a priority value, accepting legacy aliases.
// The result is always one of the three canonical priorities.
func ParsePriority(s string) (Priority, error) {
	if p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return "", &cli.ValidationError{
		Field:   "priority",
		Message: fmt.Sprintf("%q is not one of high, medium, low", s),
	}
}

// Valid reports whether p is one of the three canonical priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns the sort key for p: high sorts before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// Status represents the completion state of a quest in filter terms.
type Status string

const (
	StatusPending Status = "pending"
	StatusDone    Status = "done"
)

// ParseStatus parses a status filter value.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusDone:
		return StatusDone, nil
	}
	return "", &cli.ValidationError{
		Field:   "status",
		Message: fmt.Sprintf("%q is not one of pending, done", s),
	}
}

// Quest represents one trackable unit of work.
type Quest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Done        bool     `json:"done"`
}

// Status returns the quest's completion state as a filterable Status.
func (q *Quest) Status() Status {
	if q.Done {
		return StatusDone
	}
	return StatusPending
}
