// Copyright 2025 The SystemML Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based update rules for dense matrices.
//
// # Overview
//
// This package contains:
//   - InitNesterov / NesterovUpdate: stateless SGD with Nesterov momentum
//   - Nesterov: optimizer that threads velocity across steps
//   - SGD: Stochastic Gradient Descent with optional classic momentum
//   - Optimizer interface for custom optimizers
//
// # Stateless Usage
//
// The caller owns both the parameters and the velocity and feeds the
// results of each step into the next:
//
//	v := optim.InitNesterov(x)
//	for step := range numSteps {
//	    dx := gradient(x)
//	    x, v, err = optim.NesterovUpdate(x, dx, 0.01, 0.9, v)
//	    if err != nil {
//	        return err
//	    }
//	}
//
// The update rule is
//
//	v_new = mu * v - lr * dX
//	X_new = X - mu * v + (1 + mu) * v_new
//
// evaluated element-wise with every product rounded separately, so results
// are reproducible bit for bit. lr and mu are not validated.
//
// # Optimizer Usage
//
//	w := optim.NewParameter("w", weights)
//	optimizer := optim.NewNesterov(
//	    []*optim.Parameter{w},
//	    optim.NesterovConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
//
//	for step := range numSteps {
//	    grads := map[*optim.Parameter]mat.Matrix{w: gradient(w.Value())}
//	    if err := optimizer.Step(grads); err != nil {
//	        return err
//	    }
//	}
//
// # Errors
//
// Every operand whose shape differs from its parameter is rejected with an
// error matching tensor.ErrShapeMismatch; nothing is broadcast or truncated.
package optim
