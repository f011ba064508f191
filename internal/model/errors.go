package model

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidParameter matches every *InvalidParameterError.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrResourceExhausted matches every *ResourceExhaustionError.
	ErrResourceExhausted = errors.New("resource exhausted")
	// ErrNumericOverflow matches every *NumericOverflowError.
	ErrNumericOverflow = errors.New("numeric overflow")
)

// InvalidParameterError names the input that was rejected before pricing.
type InvalidParameterError struct {
	Param  string
	Value  float64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%s: %s", e.Param, formatFloat(e.Value), e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// ResourceExhaustionError is returned when a step count exceeds the
// cap of the chosen lattice representation.
type ResourceExhaustionError struct {
	Representation Representation
	Steps          int
	MaxSteps       int
}

func (e *ResourceExhaustionError) Error() string {
	return fmt.Sprintf("steps=%d exceeds the %s lattice limit of %d", e.Steps, e.Representation, e.MaxSteps)
}

func (e *ResourceExhaustionError) Is(target error) bool {
	return target == ErrResourceExhausted
}

// WorkBudgetError is returned when a multi-price request would compute
// more lattice nodes than the configured budget allows.
type WorkBudgetError struct {
	Nodes    int64
	MaxNodes int64
}

func (e *WorkBudgetError) Error() string {
	return fmt.Sprintf("request needs %d lattice nodes, budget is %d", e.Nodes, e.MaxNodes)
}

func (e *WorkBudgetError) Is(target error) bool {
	return target == ErrResourceExhausted
}

// NumericOverflowError reports node prices or option values that do not
// fit in a float64.
type NumericOverflowError struct {
	Spot  float64
	Up    float64
	Steps int
}

func (e *NumericOverflowError) Error() string {
	return fmt.Sprintf("lattice prices overflow float64 (spot=%s, up=%s, steps=%d)",
		formatFloat(e.Spot), formatFloat(e.Up), e.Steps)
}

func (e *NumericOverflowError) Is(target error) bool {
	return target == ErrNumericOverflow
}

func invalid(param string, v float64, reason string) *InvalidParameterError {
	return &InvalidParameterError{Param: param, Value: v, Reason: reason}
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
