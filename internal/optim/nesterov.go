package optim

import (
	"gonum.org/v1/gonum/mat"

	"github.com/dusenberrymw/systemml/internal/parallel"
	"github.com/dusenberrymw/systemml/internal/tensor"
)

const nesterovUpdateOp = "nesterov update"

// InitNesterov returns the initial velocity for parameters x: a zero matrix
// with x's shape. The values of x are not read.
//
// Any same-shaped matrix is a valid first velocity; a non-zero one
// warm-starts the momentum.
func InitNesterov(x mat.Matrix) *mat.Dense {
	return tensor.ZerosLike(x)
}

// NesterovUpdate performs one SGD step with Nesterov momentum.
//
// Update rule, element-wise:
//
//	v_prev = v
//	v_new  = mu * v_prev - lr * dX
//	X_new  = X - mu * v_prev + (1 + mu) * v_new
//
// Both results are freshly allocated; x, dx and v are left untouched. The
// caller threads X_new and v_new back in as x and v on the next step.
//
// lr and mu are not validated and NaN/Inf propagate. If dx or v does not have
// x's shape the returned error matches tensor.ErrShapeMismatch and both
// matrices are nil.
//
// Example:
//
//	v := optim.InitNesterov(x)
//	for step := range steps {
//	    dx := gradient(x)
//	    x, v, err = optim.NesterovUpdate(x, dx, 0.01, 0.9, v)
//	}
func NesterovUpdate(x, dx mat.Matrix, lr, mu float64, v mat.Matrix) (xNew, vNew *mat.Dense, err error) {
	return NesterovUpdateWith(parallel.Sequential(), x, dx, lr, mu, v)
}

// NesterovUpdateWith is NesterovUpdate with the rows split across goroutines
// according to cfg. The result is bit-identical to NesterovUpdate for every cfg.
func NesterovUpdateWith(cfg parallel.Config, x, dx mat.Matrix, lr, mu float64, v mat.Matrix) (xNew, vNew *mat.Dense, err error) {
	shape := tensor.ShapeOf(x)
	if err := tensor.CheckShape(nesterovUpdateOp, "dX", shape, dx); err != nil {
		return nil, nil, err
	}
	if err := tensor.CheckShape(nesterovUpdateOp, "v", shape, v); err != nil {
		return nil, nil, err
	}

	xNew = tensor.Zeros(shape)
	vNew = tensor.Zeros(shape)
	if shape.IsEmpty() {
		return xNew, vNew, nil
	}

	xr, gr, vr := tensor.Raw(x), tensor.Raw(dx), tensor.Raw(v)
	xo, vo := xNew.RawMatrix(), vNew.RawMatrix()
	cols := shape.Cols

	parallel.ForRange(shape.Rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			nesterovRow(
				xo.Data[i*xo.Stride:i*xo.Stride+cols],
				vo.Data[i*vo.Stride:i*vo.Stride+cols],
				xr.Data[i*xr.Stride:i*xr.Stride+cols],
				gr.Data[i*gr.Stride:i*gr.Stride+cols],
				vr.Data[i*vr.Stride:i*vr.Stride+cols],
				lr, mu,
			)
		}
	}, cfg)

	return xNew, vNew, nil
}

// nesterovRow applies the update to one row. The explicit float64
// conversions keep the compiler from fusing multiply-adds, so every
// product and sum is rounded individually on all architectures.
func nesterovRow(xOut, vOut, x, dx, v []float64, lr, mu float64) {
	for j := range xOut {
		vPrev := v[j]
		vn := float64(mu*vPrev) - float64(lr*dx[j])
		vOut[j] = vn
		xOut[j] = float64(x[j]-float64(mu*vPrev)) + float64((1+mu)*vn)
	}
}
