package trials

// #region imports
import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/circuit"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/rollout"
)

// #endregion

// #region interfaces

// Baseline is the static optimizer the learned policy is compared against,
// e.g. a transpiler behind the sidecar. Pure: the input circuit is never
// mutated.
type Baseline interface {
	Optimize(ctx context.Context, c circuit.Circuit) (circuit.Circuit, error)
}

// SessionFactory builds a fresh environment plus the policy bound to it.
// Parallel workers each call it once: a session holds mutable simulation
// state and must never be shared across concurrent trials. The returned pair
// may be one object, as with the sidecar client, where the environment and
// the policy live behind the same connection.
type SessionFactory func() (rollout.Environment, rollout.Policy, error)

// #endregion interfaces

// #region config

// Config controls one comparison run.
type Config struct {
	NumTrials  int
	StepBudget int
	// BaseSeed makes runs reproducible: trial i resets its environment with
	// seed BaseSeed+i, so both strategies in a trial see the same initial
	// circuit and a re-run with the same BaseSeed is bit-identical.
	BaseSeed int64
	// Workers > 1 runs trials on a worker pool. Defaults to sequential.
	Workers int
	// StripKinds are instruction kinds removed from the initial circuit
	// before it is handed to the baseline optimizer.
	StripKinds []string
	// KeepTrajectories retains each trial's learned trajectory for the
	// dimensionality reducer. Off by default: metrics are extracted and the
	// trajectory dropped.
	KeepTrajectories bool
}

// DefaultConfig mirrors the defaults of the reference harness.
func DefaultConfig() Config {
	return Config{
		NumTrials:  30,
		StepBudget: 200,
		BaseSeed:   1,
		Workers:    1,
		StripKinds: []string{"save_statevector"},
	}
}

// #endregion config

// #region errors

// TrialError annotates a failure with the trial it occurred in and, where
// known, the metric being produced. A failing trial aborts the whole
// comparison; dropping or retrying it would corrupt the paired-sample
// accounting.
type TrialError struct {
	Trial  int
	Metric string
	Err    error
}

func (e *TrialError) Error() string {
	if e.Metric == "" {
		return fmt.Sprintf("trial %d: %v", e.Trial, e.Err)
	}
	return fmt.Sprintf("trial %d (%s): %v", e.Trial, e.Metric, e.Err)
}

func (e *TrialError) Unwrap() error { return e.Err }

// #endregion errors
