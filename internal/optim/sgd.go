package optim

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/dusenberrymw/systemml/internal/tensor"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Unlike Nesterov, SGD updates parameter matrices in place.
type SGD struct {
	params     []*Parameter
	lr         float64
	momentum   float64
	velocities map[*Parameter]*mat.Dense
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = defaultLR
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*Parameter]*mat.Dense),
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient are skipped.
func (s *SGD) Step(grads map[*Parameter]mat.Matrix) error {
	for _, param := range s.params {
		grad := getGradient(param, grads)
		if grad == nil {
			continue
		}

		shape := tensor.ShapeOf(param.Value())
		if err := tensor.CheckShape("sgd update", "grad", shape, grad); err != nil {
			return errors.Wrapf(err, "parameter %q", param.Name())
		}
		if shape.IsEmpty() {
			continue
		}

		if s.momentum == 0 {
			s.updateParameter(param, grad)
		} else {
			s.updateParameterWithMomentum(param, grad)
		}
	}
	return nil
}

// updateParameter performs simple SGD update without momentum.
func (s *SGD) updateParameter(param *Parameter, grad mat.Matrix) {
	var scaled mat.Dense
	scaled.Scale(s.lr, grad)

	value := param.Value()
	value.Sub(value, &scaled)
}

// updateParameterWithMomentum performs SGD update with momentum.
func (s *SGD) updateParameterWithMomentum(param *Parameter, grad mat.Matrix) {
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = tensor.ZerosLike(param.Value())
		s.velocities[param] = velocity
	}

	// velocity = momentum * velocity + grad
	velocity.Scale(s.momentum, velocity)
	velocity.Add(velocity, grad)

	// param -= lr * velocity
	var step mat.Dense
	step.Scale(s.lr, velocity)
	value := param.Value()
	value.Sub(value, &step)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the optimizer state for serialization.
//
// For SGD with momentum, this exports velocity buffers for each parameter.
// Without momentum, returns an empty map.
func (s *SGD) StateDict() map[string]*mat.Dense {
	if s.momentum == 0 {
		return make(map[string]*mat.Dense)
	}
	return exportVelocities(s.params, s.velocities)
}

// LoadStateDict loads optimizer state from StateDict output.
//
// If momentum is 0 the state is ignored.
func (s *SGD) LoadStateDict(stateDict map[string]*mat.Dense) error {
	if s.momentum == 0 {
		return nil
	}
	velocities, err := importVelocities(s.params, stateDict)
	if err != nil {
		return err
	}
	s.velocities = velocities
	return nil
}
