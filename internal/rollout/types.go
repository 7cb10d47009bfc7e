package rollout

// #region imports
import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/circuit"
)

// #endregion

// #region vectors

// Observation is the environment's state vector for one step.
type Observation []float32

// ActionMask marks which actions are currently legal.
type ActionMask []bool

// RecurrentState is the policy's hidden state, opaque to the engine.
// It is owned by the caller: passed into every SelectAction call and replaced
// by the returned value, never held in ambient state, so concurrent rollouts
// with separate policy instances stay independent.
type RecurrentState []float32

// #endregion vectors

// #region trajectory

// StepRecord captures the metrics observed after one environment step.
type StepRecord struct {
	Observation Observation
	Fidelity    float64
	Depth       int
}

// TermReason records why a rollout stopped.
type TermReason string

const (
	// TermDone means the environment signalled completion.
	TermDone TermReason = "done"
	// TermBudget means the step budget ran out first.
	TermBudget TermReason = "budget"
)

// Trajectory is the ordered step history of one rollout. Len is always in
// [1, step budget].
type Trajectory struct {
	Steps []StepRecord
	Term  TermReason
}

// Last returns the final step record.
func (t Trajectory) Last() StepRecord {
	return t.Steps[len(t.Steps)-1]
}

// Observations returns the raw observation sequence, one row per step.
func (t Trajectory) Observations() []Observation {
	obs := make([]Observation, len(t.Steps))
	for i, s := range t.Steps {
		obs[i] = s.Observation
	}
	return obs
}

// #endregion trajectory

// #region interfaces

// Policy selects actions. Implementations live outside this engine (the gRPC
// sidecar adapter, or scripted fakes in tests).
type Policy interface {
	// InitialRecurrentState returns the hidden state for step zero of a rollout.
	InitialRecurrentState() RecurrentState
	// ComputeActionMask derives the currently legal actions from the environment.
	ComputeActionMask(ctx context.Context, env Environment) (ActionMask, error)
	// SelectAction picks an action and returns the successor recurrent state.
	SelectAction(ctx context.Context, obs Observation, rec RecurrentState, mask ActionMask) (int, RecurrentState, error)
}

// Environment is the mutable circuit simulation. One instance must never be
// shared between concurrent rollouts.
type Environment interface {
	// Reset re-seeds the simulation and returns the initial observation.
	Reset(ctx context.Context, seed int64) (Observation, error)
	// Step applies an action, returning the next observation and a done flag.
	Step(ctx context.Context, action int) (Observation, bool, error)
	// CurrentCircuit snapshots the circuit as it stands.
	CurrentCircuit(ctx context.Context) (circuit.Circuit, error)
	// Fidelity evaluates a circuit against the target state. A nil argument
	// means the environment's current circuit.
	Fidelity(ctx context.Context, c *circuit.Circuit) (float64, error)
}

// #endregion interfaces

// #region errors

// RunnerError wraps a policy or environment failure during a rollout. The
// enclosing trial aborts; partial trajectories are never padded or reused.
type RunnerError struct {
	Step int
	Op   string
	Err  error
}

func (e *RunnerError) Error() string {
	return fmt.Sprintf("rollout step %d: %s: %v", e.Step, e.Op, e.Err)
}

func (e *RunnerError) Unwrap() error { return e.Err }

// NumericError reports a metric value that is out of range or non-finite.
// The engine fails fast instead of clamping: a clamped value would hide a
// computation bug in the environment.
type NumericError struct {
	Metric string
	Value  float64
	Step   int // -1 when the value was not produced inside a rollout
}

func (e *NumericError) Error() string {
	if e.Step < 0 {
		return fmt.Sprintf("numeric check failed: %s = %v", e.Metric, e.Value)
	}
	return fmt.Sprintf("numeric check failed at step %d: %s = %v", e.Step, e.Metric, e.Value)
}

// #endregion errors
