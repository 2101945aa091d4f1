// Package optim implements gradient-based parameter update rules.
//
// This package provides:
//   - InitNesterov / NesterovUpdate: the stateless Nesterov momentum step
//   - Nesterov: an optimizer that threads velocity state across steps
//   - SGD: plain gradient descent with optional classic momentum
//
// Example usage:
//
//	w := optim.NewParameter("w", weights)
//	optimizer := optim.NewNesterov([]*optim.Parameter{w}, optim.NesterovConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for step := range steps {
//	    grads := map[*optim.Parameter]mat.Matrix{w: gradient(w.Value())}
//	    if err := optimizer.Step(grads); err != nil {
//	        return err
//	    }
//	}
package optim

import (
	"gonum.org/v1/gonum/mat"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to every parameter that has a gradient.
	//
	// Parameters missing from grads are left unchanged. A gradient whose
	// shape differs from its parameter aborts the step with an error
	// matching tensor.ErrShapeMismatch.
	Step(grads map[*Parameter]mat.Matrix) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// defaultLR is used when a config leaves LR at zero.
const defaultLR = 0.01

// Parameter is a named trainable matrix.
//
// Optimizers replace or update the value on every Step; callers read it
// back with Value.
type Parameter struct {
	name  string
	value *mat.Dense
}

// NewParameter creates a parameter holding value.
func NewParameter(name string, value *mat.Dense) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the current parameter matrix.
func (p *Parameter) Value() *mat.Dense {
	return p.value
}

// SetValue replaces the parameter matrix.
func (p *Parameter) SetValue(value *mat.Dense) {
	p.value = value
}

// getGradient safely retrieves gradient for a parameter.
//
// Returns nil if no gradient is found.
func getGradient(param *Parameter, grads map[*Parameter]mat.Matrix) mat.Matrix {
	if param == nil {
		return nil
	}
	return grads[param]
}
