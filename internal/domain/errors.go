package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below wraps exactly one of them, so callers can
// match either the specific failure or its kind with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRuntimeFault    = errors.New("runtime fault")
)

var (
	ErrAccountNotFound   = fmt.Errorf("account not found: %w", ErrInvalidArgument)
	ErrAccountExists     = fmt.Errorf("account already exists: %w", ErrInvalidArgument)
	ErrInvalidAmount     = fmt.Errorf("amount must be a non-negative number: %w", ErrInvalidArgument)
	ErrInvalidName       = fmt.Errorf("holder name must be non-empty printable text: %w", ErrInvalidArgument)
	ErrInsufficientFunds = fmt.Errorf("insufficient funds: %w", ErrRuntimeFault)
	ErrBalanceOverflow   = fmt.Errorf("balance overflow: %w", ErrRuntimeFault)
)
