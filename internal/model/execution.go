// Package model defines the in-memory domain records of the greeter
// application. An Execution tracks a single run of the application from start
// to completion; nothing outlives the process.
package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tigerroll/greeter/internal/support/util/logger"
)

// ExecutionStatus represents the lifecycle status of an Execution.
type ExecutionStatus string

const (
	StatusStarting  ExecutionStatus = "STARTING"
	StatusStarted   ExecutionStatus = "STARTED"
	StatusCompleted ExecutionStatus = "COMPLETED"
	StatusFailed    ExecutionStatus = "FAILED"
)

// IsFinished returns true for terminal statuses.
func (s ExecutionStatus) IsFinished() bool {
	switch s {
	case StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// NewID generates a new unique ID (UUID).
func NewID() string {
	return uuid.New().String()
}

// Execution records a single run of the application.
type Execution struct {
	// ID is the unique identifier of this execution.
	ID string
	// Status is the current lifecycle status.
	Status ExecutionStatus
	// StartTime is when the execution was created.
	StartTime time.Time
	// EndTime is set when the execution reaches a terminal status.
	EndTime *time.Time
	// LastUpdated is the time of the most recent status change.
	LastUpdated time.Time
	// Failure holds the error that terminated the execution, if any.
	Failure error
}

// NewExecution creates a new Execution in the STARTING state.
func NewExecution() *Execution {
	now := time.Now()
	return &Execution{
		ID:          NewID(),
		Status:      StatusStarting,
		StartTime:   now,
		LastUpdated: now,
	}
}

// TransitionTo moves the execution to a new status, rejecting invalid
// transitions.
func (e *Execution) TransitionTo(newStatus ExecutionStatus) error {
	if !isValidTransition(e.Status, newStatus) {
		return fmt.Errorf("Execution (ID: %s): Invalid state transition: %s -> %s", e.ID, e.Status, newStatus)
	}
	e.Status = newStatus
	e.LastUpdated = time.Now()
	return nil
}

// isValidTransition reports whether a status change is allowed.
// The run is strictly linear: STARTING -> STARTED -> COMPLETED or FAILED.
func isValidTransition(from, to ExecutionStatus) bool {
	switch from {
	case StatusStarting:
		return to == StatusStarted || to == StatusFailed
	case StatusStarted:
		return to == StatusCompleted || to == StatusFailed
	default:
		return false
	}
}

// MarkAsStarted updates the Execution status to STARTED.
func (e *Execution) MarkAsStarted() {
	if err := e.TransitionTo(StatusStarted); err != nil {
		logger.Warnf("Could not update Execution (ID: %s) status to STARTED: %v", e.ID, err)
		e.Status = StatusStarted
		e.LastUpdated = time.Now()
	}
}

// MarkAsCompleted updates the Execution status to COMPLETED.
func (e *Execution) MarkAsCompleted() {
	if err := e.TransitionTo(StatusCompleted); err != nil {
		logger.Warnf("Could not update Execution (ID: %s) status to COMPLETED: %v", e.ID, err)
		e.Status = StatusCompleted
	}
	now := time.Now()
	e.EndTime = &now
	e.LastUpdated = now
}

// MarkAsFailed updates the Execution status to FAILED and records the error.
func (e *Execution) MarkAsFailed(failure error) {
	if err := e.TransitionTo(StatusFailed); err != nil {
		logger.Warnf("Could not update Execution (ID: %s) status to FAILED: %v", e.ID, err)
		e.Status = StatusFailed
	}
	now := time.Now()
	e.EndTime = &now
	e.LastUpdated = now
	e.Failure = failure
}
