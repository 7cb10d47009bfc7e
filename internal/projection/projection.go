package projection

// #region imports
import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/rollout"
	qstats "github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/stats"
)

// #endregion

// #region constants

// Components is the fixed output dimensionality: three axes for display.
const Components = 3

// #endregion constants

// #region fit-transform

// FitTransform fits a principal-component decomposition to rows and projects
// the same rows onto the first three components, returning an N x 3 matrix.
// One-shot: fit and transform always use the same sequence. Three rows are
// the minimum for three orthogonal components to mean anything, and each row
// must be at least three-dimensional.
func FitTransform(rows [][]float64) ([][]float64, error) {
	n := len(rows)
	if n < Components {
		return nil, &qstats.InsufficientSamplesError{Op: "projection fit", Got: n, Want: Components}
	}
	d := len(rows[0])
	if d < Components {
		return nil, &qstats.DimensionMismatchError{Op: "projection fit: row width", LenA: d, LenB: Components}
	}
	for _, row := range rows {
		if len(row) != d {
			return nil, &qstats.DimensionMismatchError{Op: "projection fit: ragged rows", LenA: len(row), LenB: d}
		}
	}

	// 1. Pack rows into a dense matrix
	x := mat.NewDense(n, d, nil)
	for i, row := range rows {
		x.SetRow(i, row)
	}

	// 2. Principal directions
	var pc stat.PC
	if ok := pc.PrincipalComponents(x, nil); !ok {
		return nil, &qstats.InsufficientSamplesError{Op: "principal components", Got: n, Want: Components}
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	// 3. Center columns, project onto the first three directions
	means := make([]float64, d)
	for j := 0; j < d; j++ {
		means[j] = stat.Mean(mat.Col(nil, j, x), nil)
	}
	centered := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			centered.Set(i, j, x.At(i, j)-means[j])
		}
	}

	var projected mat.Dense
	projected.Mul(centered, vecs.Slice(0, d, 0, Components))

	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = mat.Row(nil, i, &projected)
	}
	return out, nil
}

// #endregion fit-transform

// #region observations

// FitTransformObservations projects a rollout's raw observation sequence,
// widening float32 observations to float64 rows first.
func FitTransformObservations(obs []rollout.Observation) ([][]float64, error) {
	rows := make([][]float64, len(obs))
	for i, o := range obs {
		row := make([]float64, len(o))
		for j, v := range o {
			row[j] = float64(v)
		}
		rows[i] = row
	}
	return FitTransform(rows)
}

// #endregion observations
