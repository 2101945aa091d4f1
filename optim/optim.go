// Copyright 2025 The SystemML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dusenberrymw/systemml/internal/optim"
	"github.com/dusenberrymw/systemml/internal/parallel"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Config represents the base configuration for optimizers.
type Config = optim.Config

// Parameter is a named trainable matrix.
type Parameter = optim.Parameter

// ParallelConfig controls how an update is split across goroutines.
type ParallelConfig = parallel.Config

// NewParameter creates a parameter holding value.
func NewParameter(name string, value *mat.Dense) *Parameter {
	return optim.NewParameter(name, value)
}

// DefaultParallelConfig returns a ParallelConfig sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Nesterov momentum

// InitNesterov returns a zero velocity with the shape of x.
func InitNesterov(x mat.Matrix) *mat.Dense {
	return optim.InitNesterov(x)
}

// NesterovUpdate performs one SGD step with Nesterov momentum and returns
// the new parameters and velocity.
//
// Example:
//
//	x := tensor.MustFromRows([][]float64{{5.0}})
//	dx := tensor.MustFromRows([][]float64{{2.0}})
//	xNew, vNew, err := optim.NesterovUpdate(x, dx, 0.1, 0.9, optim.InitNesterov(x))
//	// xNew = [[4.62]], vNew = [[-0.2]]
func NesterovUpdate(x, dx mat.Matrix, lr, mu float64, v mat.Matrix) (xNew, vNew *mat.Dense, err error) {
	return optim.NesterovUpdate(x, dx, lr, mu, v)
}

// NesterovUpdateWith is NesterovUpdate with rows split across goroutines.
// The result does not depend on cfg.
func NesterovUpdateWith(cfg ParallelConfig, x, dx mat.Matrix, lr, mu float64, v mat.Matrix) (xNew, vNew *mat.Dense, err error) {
	return optim.NesterovUpdateWith(cfg, x, dx, lr, mu, v)
}

// Nesterov represents the stateful Nesterov momentum optimizer.
type Nesterov = optim.Nesterov

// NesterovConfig contains configuration for the Nesterov optimizer.
type NesterovConfig = optim.NesterovConfig

// NewNesterov creates a new Nesterov optimizer.
//
// Example:
//
//	optimizer := optim.NewNesterov(
//	    params,
//	    optim.NesterovConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	        Parallel: optim.DefaultParallelConfig(),
//	    },
//	)
func NewNesterov(params []*Parameter, config NesterovConfig) *Nesterov {
	return optim.NewNesterov(params, config)
}

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
