package optim_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/dusenberrymw/systemml/internal/optim"
	"github.com/dusenberrymw/systemml/internal/parallel"
	"github.com/dusenberrymw/systemml/internal/tensor"
)

// randDense fills an r×c matrix with uniform values in [-1, 1).
func randDense(rng *rand.Rand, r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 2*rng.Float64() - 1
	}
	return mat.NewDense(r, c, data)
}

func TestInitNesterov_ZerosWithShape(t *testing.T) {
	shapes := []tensor.Shape{{Rows: 1, Cols: 1}, {Rows: 3, Cols: 4}, {Rows: 7, Cols: 1}, {Rows: 1, Cols: 9}}
	for _, shape := range shapes {
		t.Run(shape.String(), func(t *testing.T) {
			x := tensor.Full(shape, 3.5)

			v := optim.InitNesterov(x)

			assert.Equal(t, shape, tensor.ShapeOf(v))
			for _, val := range v.RawMatrix().Data {
				assert.Equal(t, 0.0, val)
			}
			// Input must not be touched.
			assert.Equal(t, 3.5, x.At(0, 0))
		})
	}
}

func TestInitNesterov_Empty(t *testing.T) {
	v := optim.InitNesterov(&mat.Dense{})
	assert.True(t, v.IsEmpty())
}

func TestNesterovUpdate_ScalarCase(t *testing.T) {
	x := tensor.MustFromRows([][]float64{{5.0}})
	dx := tensor.MustFromRows([][]float64{{2.0}})
	v := optim.InitNesterov(x)

	xNew, vNew, err := optim.NesterovUpdate(x, dx, 0.1, 0.9, v)
	require.NoError(t, err)

	// v_new = 0.9*0 - 0.1*2.0 = -0.2
	// X_new = 5.0 - 0.9*0 + 1.9*(-0.2) = 4.62
	assert.InDelta(t, -0.2, vNew.At(0, 0), 1e-12)
	assert.InDelta(t, 4.62, xNew.At(0, 0), 1e-12)

	// Inputs unchanged.
	assert.Equal(t, 5.0, x.At(0, 0))
	assert.Equal(t, 2.0, dx.At(0, 0))
	assert.Equal(t, 0.0, v.At(0, 0))
}

func TestNesterovUpdate_ZeroGradientFixpoint(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	x := randDense(rng, 4, 5)
	dx := tensor.ZerosLike(x)
	v := optim.InitNesterov(x)

	xNew, vNew, err := optim.NesterovUpdate(x, dx, 0.05, 0.9, v)
	require.NoError(t, err)

	assert.True(t, mat.Equal(x, xNew))
	assert.True(t, mat.Equal(tensor.ZerosLike(x), vNew))
}

func TestNesterovUpdate_ZeroMomentumIsPlainDescent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	x := randDense(rng, 3, 6)
	dx := randDense(rng, 3, 6)
	v := randDense(rng, 3, 6) // ignored when mu == 0
	lr := 0.1

	xNew, vNew, err := optim.NesterovUpdate(x, dx, lr, 0, v)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 6; j++ {
			assert.InDelta(t, -lr*dx.At(i, j), vNew.At(i, j), 1e-15)
			assert.InDelta(t, x.At(i, j)-lr*dx.At(i, j), xNew.At(i, j), 1e-15)
		}
	}
}

func TestNesterovUpdate_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x := randDense(rng, 8, 8)
	dx := randDense(rng, 8, 8)
	v := randDense(rng, 8, 8)

	x1, v1, err := optim.NesterovUpdate(x, dx, 0.01, 0.95, v)
	require.NoError(t, err)
	x2, v2, err := optim.NesterovUpdate(x, dx, 0.01, 0.95, v)
	require.NoError(t, err)

	assert.Equal(t, x1.RawMatrix().Data, x2.RawMatrix().Data)
	assert.Equal(t, v1.RawMatrix().Data, v2.RawMatrix().Data)
}

func TestNesterovUpdate_ChainedSteps(t *testing.T) {
	x := tensor.MustFromRows([][]float64{{1.0, -2.0}, {0.5, 3.0}})
	g1 := tensor.MustFromRows([][]float64{{0.3, -0.1}, {2.0, 0.0}})
	g2 := tensor.MustFromRows([][]float64{{-0.4, 0.2}, {1.0, -1.5}})
	lr, mu := 0.05, 0.9

	v := optim.InitNesterov(x)
	x1, v1, err := optim.NesterovUpdate(x, g1, lr, mu, v)
	require.NoError(t, err)
	x2, v2, err := optim.NesterovUpdate(x1, g2, lr, mu, v1)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			x0 := x.At(i, j)
			wantV1 := mu*0 - lr*g1.At(i, j)
			wantX1 := x0 - mu*0 + (1+mu)*wantV1
			wantV2 := mu*wantV1 - lr*g2.At(i, j)
			wantX2 := wantX1 - mu*wantV1 + (1+mu)*wantV2

			assert.InDelta(t, wantV2, v2.At(i, j), 1e-12)
			assert.InDelta(t, wantX2, x2.At(i, j), 1e-12)
		}
	}
}

func TestNesterovUpdate_ShapeMismatch(t *testing.T) {
	x := tensor.Zeros(tensor.Shape{Rows: 2, Cols: 3})
	good := tensor.Zeros(tensor.Shape{Rows: 2, Cols: 3})

	tests := []struct {
		name    string
		dx, v   mat.Matrix
		operand string
	}{
		{"gradient rows", tensor.Zeros(tensor.Shape{Rows: 3, Cols: 3}), good, "dX"},
		{"gradient transposed", tensor.Zeros(tensor.Shape{Rows: 3, Cols: 2}), good, "dX"},
		{"velocity cols", good, tensor.Zeros(tensor.Shape{Rows: 2, Cols: 4}), "v"},
		{"velocity empty", good, &mat.Dense{}, "v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xNew, vNew, err := optim.NesterovUpdate(x, tt.dx, 0.1, 0.9, tt.v)

			require.ErrorIs(t, err, tensor.ErrShapeMismatch)
			assert.Nil(t, xNew)
			assert.Nil(t, vNew)

			var shapeErr *tensor.ShapeMismatchError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, tt.operand, shapeErr.Operand)
			assert.Equal(t, tensor.Shape{Rows: 2, Cols: 3}, shapeErr.Want)
		})
	}
}

func TestNesterovUpdate_Empty(t *testing.T) {
	xNew, vNew, err := optim.NesterovUpdate(&mat.Dense{}, &mat.Dense{}, 0.1, 0.9, &mat.Dense{})
	require.NoError(t, err)
	assert.True(t, xNew.IsEmpty())
	assert.True(t, vNew.IsEmpty())
}

func TestNesterovUpdate_PropagatesNaN(t *testing.T) {
	x := tensor.MustFromRows([][]float64{{1, 2}})
	dx := tensor.MustFromRows([][]float64{{math.NaN(), 1}})
	v := optim.InitNesterov(x)

	xNew, vNew, err := optim.NesterovUpdate(x, dx, 0.1, 0.9, v)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(vNew.At(0, 0)))
	assert.True(t, math.IsNaN(xNew.At(0, 0)))
	assert.False(t, math.IsNaN(xNew.At(0, 1)))

	// Invalid hyperparameters are not rejected either.
	xNew, _, err = optim.NesterovUpdate(x, tensor.ZerosLike(x), math.Inf(1), math.NaN(), v)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(xNew.At(0, 1)))
}

func TestNesterovUpdate_NonContiguousViews(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	base := randDense(rng, 6, 6)

	// Slices share the parent's stride, transposes go through a copy.
	x := base.Slice(1, 4, 2, 5)
	dx := randDense(rng, 3, 3).T()
	v := randDense(rng, 3, 3)

	got, gotV, err := optim.NesterovUpdate(x, dx, 0.2, 0.8, v)
	require.NoError(t, err)

	want, wantV, err := optim.NesterovUpdate(mat.DenseCopyOf(x), mat.DenseCopyOf(dx), 0.2, 0.8, v)
	require.NoError(t, err)

	assert.Equal(t, want.RawMatrix().Data, got.RawMatrix().Data)
	assert.Equal(t, wantV.RawMatrix().Data, gotV.RawMatrix().Data)
}

func TestNesterovUpdateWith_ParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	x := randDense(rng, 509, 13)
	dx := randDense(rng, 509, 13)
	v := randDense(rng, 509, 13)

	want, wantV, err := optim.NesterovUpdate(x, dx, 0.03, 0.99, v)
	require.NoError(t, err)

	cfgs := []parallel.Config{
		parallel.DefaultConfig(),
		{Enabled: true, NumWorkers: 4, MinChunk: 1},
		{Enabled: true, NumWorkers: 17, MinChunk: 3},
	}
	for _, cfg := range cfgs {
		got, gotV, err := optim.NesterovUpdateWith(cfg, x, dx, 0.03, 0.99, v)
		require.NoError(t, err)
		assert.Equal(t, want.RawMatrix().Data, got.RawMatrix().Data, "cfg %+v", cfg)
		assert.Equal(t, wantV.RawMatrix().Data, gotV.RawMatrix().Data, "cfg %+v", cfg)
	}
}

// TestNesterovUpdate_ConvergesOnQuadratic minimizes f(x) = 0.5 * ||x - c||^2.
func TestNesterovUpdate_ConvergesOnQuadratic(t *testing.T) {
	target := tensor.MustFromRows([][]float64{{1, -2, 3}, {0.5, 0, -4}})
	x := tensor.ZerosLike(target)
	v := optim.InitNesterov(x)

	var err error
	for step := 0; step < 300; step++ {
		var grad mat.Dense
		grad.Sub(x, target)
		x, v, err = optim.NesterovUpdate(x, &grad, 0.1, 0.9, v)
		require.NoError(t, err)
	}

	assert.True(t, mat.EqualApprox(target, x, 1e-6))
}
