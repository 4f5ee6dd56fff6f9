package interfaces

import (
	"errors"
	"fmt"
)

// Error kinds every IPaymentGateway reports. Match them with errors.Is.
var (
	// ErrTransport: the processor call failed (network, auth, processor error).
	ErrTransport = errors.New("payment gateway transport error")
	// ErrResolution: a required lookup (e.g. country name to ISO code) failed
	// before any processor call was made.
	ErrResolution = errors.New("payment gateway resolution error")
	// ErrContractViolation: the input matches no supported case.
	ErrContractViolation = errors.New("payment gateway contract violation")
	// ErrNotFound: the entity does not exist in the backing store.
	ErrNotFound = errors.New("payment gateway resource not found")
)

// GatewayError tags an underlying failure with its kind and the port operation.
type GatewayError struct {
	Op   string
	Kind error
	Err  error
}

func (e *GatewayError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause, so errors.Is(err, ErrNotFound)
// and errors.As(err, &processorErr) both work.
func (e *GatewayError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewGatewayError builds a GatewayError.
func NewGatewayError(op string, kind, err error) *GatewayError {
	return &GatewayError{Op: op, Kind: kind, Err: err}
}

// ContractViolation is a shorthand for input errors.
func ContractViolation(op, format string, args ...any) error {
	return NewGatewayError(op, ErrContractViolation, fmt.Errorf(format, args...))
}

// NotFound is a shorthand for missing entities.
func NotFound(op, format string, args ...any) error {
	return NewGatewayError(op, ErrNotFound, fmt.Errorf(format, args...))
}

// ErrorKind returns the kind carried by err, or nil when err is not a gateway error.
func ErrorKind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrContractViolation, ErrResolution, ErrTransport} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
