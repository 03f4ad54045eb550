package model

import (
	"fmt"

	"hotel/shared/failure"
)

type Status string

const (
	StatusConfirmed  Status = "Confirmed"
	StatusCheckedIn  Status = "CheckedIn"
	StatusCheckedOut Status = "CheckedOut"
	StatusCanceled   Status = "Canceled"
)

// ActiveStatuses hold the room for their dates.
var ActiveStatuses = []Status{StatusConfirmed, StatusCheckedIn}

func (s Status) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}

	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCanceled
}

type Operation string

const (
	OperationCancel   Operation = "cancel"
	OperationCheckIn  Operation = "check_in"
	OperationCheckOut Operation = "check_out"
)

var ErrInvalidTransition = failure.Conflict("invalid status transition")

type edge struct {
	from Status
	to   Status
}

var transitions = map[Operation]edge{
	OperationCancel:   {from: StatusConfirmed, to: StatusCanceled},
	OperationCheckIn:  {from: StatusConfirmed, to: StatusCheckedIn},
	OperationCheckOut: {from: StatusCheckedIn, to: StatusCheckedOut},
}

// Transition returns the status reached by applying op to a reservation in status from.
func Transition(from Status, op Operation) (Status, error) {
	e, ok := transitions[op]
	if !ok {
		return from, fmt.Errorf("unknown operation %q: %w", op, ErrInvalidTransition)
	}

	if from != e.from {
		return from, fmt.Errorf("cannot %s a reservation in status %s: %w", op, from, ErrInvalidTransition)
	}

	return e.to, nil
}
