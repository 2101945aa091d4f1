package optim

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/dusenberrymw/systemml/internal/parallel"
)

// Nesterov implements SGD with Nesterov momentum over a fixed parameter set.
//
// It owns one velocity matrix per parameter, created with InitNesterov on
// the parameter's first step, and applies NesterovUpdate on every Step.
//
// Example:
//
//	optimizer := optim.NewNesterov(params, optim.NesterovConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for step := range steps {
//	    if err := optimizer.Step(computeGrads(params)); err != nil {
//	        return err
//	    }
//	}
//
// Nesterov is not safe for concurrent use.
type Nesterov struct {
	params     []*Parameter
	lr         float64
	momentum   float64
	parallel   parallel.Config
	velocities map[*Parameter]*mat.Dense
}

// NesterovConfig holds configuration for the Nesterov optimizer.
type NesterovConfig struct {
	LR       float64         // Learning rate (default: 0.01)
	Momentum float64         // Momentum coefficient (default: 0.0, conventionally [0.5, 0.99))
	Parallel parallel.Config // Row chunking for each update (default: sequential)
}

// NewNesterov creates a new Nesterov optimizer.
func NewNesterov(params []*Parameter, config NesterovConfig) *Nesterov {
	if config.LR == 0 {
		config.LR = defaultLR
	}

	return &Nesterov{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		parallel:   config.Parallel,
		velocities: make(map[*Parameter]*mat.Dense),
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient are skipped. On error the step stops at the
// failing parameter; parameters before it in the list keep their update.
func (n *Nesterov) Step(grads map[*Parameter]mat.Matrix) error {
	for _, param := range n.params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}

		velocity, exists := n.velocities[param]
		if !exists {
			velocity = InitNesterov(param.Value())
		}

		x, v, err := NesterovUpdateWith(n.parallel, param.Value(), grad, n.lr, n.momentum, velocity)
		if err != nil {
			return errors.Wrapf(err, "parameter %q", param.Name())
		}

		param.SetValue(x)
		n.velocities[param] = v
	}
	return nil
}

// Velocity returns the current velocity of param, or nil before its first step.
func (n *Nesterov) Velocity(param *Parameter) *mat.Dense {
	return n.velocities[param]
}

// GetLR returns the current learning rate.
func (n *Nesterov) GetLR() float64 {
	return n.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (n *Nesterov) SetLR(lr float64) {
	n.lr = lr
}

// GetMomentum returns the momentum coefficient.
func (n *Nesterov) GetMomentum() float64 {
	return n.momentum
}

// StateDict returns copies of the velocity buffers.
//
// State keys: "velocity.{param_index}" -> velocity matrix.
func (n *Nesterov) StateDict() map[string]*mat.Dense {
	return exportVelocities(n.params, n.velocities)
}

// LoadStateDict restores velocity buffers from StateDict output.
//
// Returns an error matching tensor.ErrShapeMismatch if a buffer does not
// match its parameter; existing velocities are kept in that case.
func (n *Nesterov) LoadStateDict(stateDict map[string]*mat.Dense) error {
	velocities, err := importVelocities(n.params, stateDict)
	if err != nil {
		return err
	}
	n.velocities = velocities
	return nil
}
