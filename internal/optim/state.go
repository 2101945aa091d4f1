package optim

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dusenberrymw/systemml/internal/tensor"
)

// velocityKey names the velocity buffer of the i-th parameter in a state dict.
func velocityKey(i int) string {
	return fmt.Sprintf("velocity.%d", i)
}

// exportVelocities copies the velocity buffers into a state dict.
//
// State keys: "velocity.{param_index}" -> velocity matrix.
// Parameters without a velocity yet are omitted.
func exportVelocities(params []*Parameter, velocities map[*Parameter]*mat.Dense) map[string]*mat.Dense {
	state := make(map[string]*mat.Dense)
	for i, param := range params {
		velocity, exists := velocities[param]
		if !exists {
			continue
		}
		state[velocityKey(i)] = cloneDense(velocity)
	}
	return state
}

// importVelocities builds a velocity map from a state dict, validating that
// every buffer matches its parameter's shape. Missing keys are skipped so
// those velocities are initialized on first use.
func importVelocities(params []*Parameter, state map[string]*mat.Dense) (map[*Parameter]*mat.Dense, error) {
	velocities := make(map[*Parameter]*mat.Dense)
	for i, param := range params {
		key := velocityKey(i)
		velocity, exists := state[key]
		if !exists {
			continue
		}
		if err := tensor.CheckShape("load state", key, tensor.ShapeOf(param.Value()), velocity); err != nil {
			return nil, err
		}
		velocities[param] = cloneDense(velocity)
	}
	return velocities, nil
}

// cloneDense returns a deep copy of m. Empty matrices stay empty.
func cloneDense(m *mat.Dense) *mat.Dense {
	if tensor.ShapeOf(m).IsEmpty() {
		return &mat.Dense{}
	}
	return mat.DenseCopyOf(m)
}
