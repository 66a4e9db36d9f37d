package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidAction is returned when a submitted label is not valid for the current state.
var ErrInvalidAction = errors.New("invalid action")

// ErrInvalidProfile is returned when a capacity or recipe table can never reach Ready.
var ErrInvalidProfile = errors.New("invalid profile")

// InvalidActionError describes a rejected submission.
// It matches ErrInvalidAction with errors.Is.
type InvalidActionError struct {
	Label string
	State State
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("%s: %q is not available while %s (expected one of %v)",
		ErrInvalidAction, e.Label, e.State, Labels(ActionsFor(e.State)))
}

func (e *InvalidActionError) Is(target error) bool {
	return target == ErrInvalidAction
}

// ResourceIntegrityError is the panic value raised when a brew would push a
// deposit below zero or above its capacity.
type ResourceIntegrityError struct {
	Deposit  DepositKind
	Load     uint8
	Capacity uint8
	Delta    int
}

func (e *ResourceIntegrityError) Error() string {
	return fmt.Sprintf("resource integrity breach: %s deposit at %d/%d cannot apply %+d",
		e.Deposit, e.Load, e.Capacity, e.Delta)
}
