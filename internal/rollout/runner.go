package rollout

// #region imports
import (
	"context"
	"math"
)

// #endregion

// #region run

// Run drives one rollout of policy against env, recording per-step metrics
// until the environment signals done or the step budget is exhausted,
// whichever comes first. The caller resets the environment beforehand and
// passes the resulting observation; the runner never re-seeds. At least one
// step is always attempted, so a successful trajectory has length >= 1.
func Run(ctx context.Context, policy Policy, env Environment, obs Observation, stepBudget int) (Trajectory, error) {
	if stepBudget < 1 {
		stepBudget = 1
	}

	rec := policy.InitialRecurrentState()
	traj := Trajectory{
		Steps: make([]StepRecord, 0, stepBudget),
		Term:  TermBudget,
	}

	for step := 0; step < stepBudget; step++ {
		if err := ctx.Err(); err != nil {
			return Trajectory{}, &RunnerError{Step: step, Op: "cancelled", Err: err}
		}

		// 1. Legal actions for the current circuit
		mask, err := policy.ComputeActionMask(ctx, env)
		if err != nil {
			return Trajectory{}, &RunnerError{Step: step, Op: "compute action mask", Err: err}
		}

		// 2. Policy decision; recurrent state threads explicitly
		action, nextRec, err := policy.SelectAction(ctx, obs, rec, mask)
		if err != nil {
			return Trajectory{}, &RunnerError{Step: step, Op: "select action", Err: err}
		}

		// 3. Apply to the environment
		nextObs, done, err := env.Step(ctx, action)
		if err != nil {
			return Trajectory{}, &RunnerError{Step: step, Op: "environment step", Err: err}
		}

		// 4. Metrics on the post-step circuit
		fidelity, err := env.Fidelity(ctx, nil)
		if err != nil {
			return Trajectory{}, &RunnerError{Step: step, Op: "fidelity", Err: err}
		}
		if err := CheckFidelity(fidelity, step); err != nil {
			return Trajectory{}, err
		}
		snapshot, err := env.CurrentCircuit(ctx)
		if err != nil {
			return Trajectory{}, &RunnerError{Step: step, Op: "current circuit", Err: err}
		}

		traj.Steps = append(traj.Steps, StepRecord{
			Observation: nextObs,
			Fidelity:    fidelity,
			Depth:       snapshot.Depth(),
		})

		if done {
			traj.Term = TermDone
			break
		}
		obs = nextObs
		rec = nextRec
	}

	return traj, nil
}

// #endregion run

// #region checks

// CheckFidelity enforces the [0,1] finite-value invariant. Pass step -1 for
// values measured outside a rollout.
func CheckFidelity(f float64, step int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > 1 {
		return &NumericError{Metric: "fidelity", Value: f, Step: step}
	}
	return nil
}

// #endregion checks
