package trials

// #region imports
import (
	"context"
	"fmt"
	"sync"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/rollout"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/stats"
)

// #endregion

// #region aggregator

// Aggregator repeats matched trials of the learned policy and the baseline
// optimizer, collecting paired metric arrays. Collaborators are injected
// through factories so the engine never owns a process-wide backend handle.
type Aggregator struct {
	newSession SessionFactory
	baseline   Baseline
	config     Config

	trajectories []rollout.Trajectory // learned rollouts, kept only on request
}

// NewAggregator wires the aggregator with its collaborator factory.
func NewAggregator(newSession SessionFactory, baseline Baseline, config Config) *Aggregator {
	return &Aggregator{
		newSession: newSession,
		baseline:   baseline,
		config:     config,
	}
}

// Trajectories returns the learned-strategy trajectories of the last Compare
// call, in trial order. Empty unless Config.KeepTrajectories was set.
func (a *Aggregator) Trajectories() []rollout.Trajectory {
	return a.trajectories
}

// #endregion aggregator

// #region trial-result

type trialResult struct {
	depthBefore      float64
	fidelityBefore   float64
	depthLearned     float64
	fidelityLearned  float64
	depthBaseline    float64
	fidelityBaseline float64
	trajectory       rollout.Trajectory
}

// #endregion trial-result

// #region compare

// Compare runs NumTrials matched trials and returns the six index-aligned
// metric series. Trial i is seeded with BaseSeed+i; the baseline sees the
// same initial circuit the learned rollout started from. The first failing
// trial aborts the run with its index attached.
func (a *Aggregator) Compare(ctx context.Context) (stats.PairedSamples, error) {
	if a.config.NumTrials < 1 {
		return nil, &stats.InsufficientSamplesError{Op: "compare", Got: a.config.NumTrials, Want: 1}
	}
	if a.config.StepBudget < 1 {
		return nil, fmt.Errorf("compare: step budget must be >= 1, got %d", a.config.StepBudget)
	}

	a.trajectories = nil

	var results []trialResult
	var err error
	if a.config.Workers > 1 {
		results, err = a.compareParallel(ctx)
	} else {
		results, err = a.compareSequential(ctx)
	}
	if err != nil {
		return nil, err
	}

	// Assemble series; slot i in every array belongs to trial i.
	samples := stats.PairedSamples{
		stats.DepthBefore:        make([]float64, len(results)),
		stats.FidelityBefore:     make([]float64, len(results)),
		stats.DepthAfterLearned:  make([]float64, len(results)),
		stats.FidelityAfterLearn: make([]float64, len(results)),
		stats.DepthAfterBaseline: make([]float64, len(results)),
		stats.FidelityAfterBase:  make([]float64, len(results)),
	}
	if a.config.KeepTrajectories {
		a.trajectories = make([]rollout.Trajectory, len(results))
	}
	for i, r := range results {
		samples[stats.DepthBefore][i] = r.depthBefore
		samples[stats.FidelityBefore][i] = r.fidelityBefore
		samples[stats.DepthAfterLearned][i] = r.depthLearned
		samples[stats.FidelityAfterLearn][i] = r.fidelityLearned
		samples[stats.DepthAfterBaseline][i] = r.depthBaseline
		samples[stats.FidelityAfterBase][i] = r.fidelityBaseline
		if a.config.KeepTrajectories {
			a.trajectories[i] = r.trajectory
		}
	}
	return samples, nil
}

// #endregion compare

// #region sequential

func (a *Aggregator) compareSequential(ctx context.Context) ([]trialResult, error) {
	env, policy, err := a.newSession()
	if err != nil {
		return nil, fmt.Errorf("build session: %w", err)
	}

	results := make([]trialResult, a.config.NumTrials)
	for i := 0; i < a.config.NumTrials; i++ {
		if err := ctx.Err(); err != nil {
			return nil, &TrialError{Trial: i, Err: err}
		}
		r, err := a.runTrial(ctx, env, policy, i)
		if err != nil {
			return nil, err
		}
		results[i] = r
	}
	return results, nil
}

// #endregion sequential

// #region parallel

// compareParallel fans trials out over Workers goroutines. Each worker builds
// its own session: simulation state and recurrent state are mutable per
// rollout and must not be shared. Results land by trial index so ordering is
// identical to a sequential run.
func (a *Aggregator) compareParallel(ctx context.Context) ([]trialResult, error) {
	workers := a.config.Workers
	if workers > a.config.NumTrials {
		workers = a.config.NumTrials
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make([]trialResult, a.config.NumTrials)
	indices := make(chan int)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			env, policy, err := a.newSession()
			if err != nil {
				fail(fmt.Errorf("build session: %w", err))
				return
			}
			for i := range indices {
				r, err := a.runTrial(runCtx, env, policy, i)
				if err != nil {
					fail(err)
					return
				}
				results[i] = r
			}
		}()
	}

	feed := func() {
		defer close(indices)
		for i := 0; i < a.config.NumTrials; i++ {
			select {
			case indices <- i:
			case <-runCtx.Done():
				return
			}
		}
	}
	feed()
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// #endregion parallel

// #region run-trial

func (a *Aggregator) runTrial(ctx context.Context, env rollout.Environment, policy rollout.Policy, trial int) (trialResult, error) {
	seed := a.config.BaseSeed + int64(trial)

	// 1. Fresh initial circuit, shared by both strategies
	obs, err := env.Reset(ctx, seed)
	if err != nil {
		return trialResult{}, &TrialError{Trial: trial, Err: fmt.Errorf("reset: %w", err)}
	}
	initial, err := env.CurrentCircuit(ctx)
	if err != nil {
		return trialResult{}, &TrialError{Trial: trial, Err: fmt.Errorf("initial circuit: %w", err)}
	}

	// 2. Before metrics, measured once on the initial circuit
	fidBefore, err := env.Fidelity(ctx, nil)
	if err != nil {
		return trialResult{}, &TrialError{Trial: trial, Metric: stats.FidelityBefore, Err: err}
	}
	if err := rollout.CheckFidelity(fidBefore, -1); err != nil {
		return trialResult{}, &TrialError{Trial: trial, Metric: stats.FidelityBefore, Err: err}
	}

	// 3. Learned strategy rollout
	traj, err := rollout.Run(ctx, policy, env, obs, a.config.StepBudget)
	if err != nil {
		return trialResult{}, &TrialError{Trial: trial, Err: err}
	}
	last := traj.Last()

	// 4. Baseline on the stripped copy of the same initial circuit
	cleaned := initial.Strip(a.config.StripKinds...)
	optimized, err := a.baseline.Optimize(ctx, cleaned)
	if err != nil {
		return trialResult{}, &TrialError{Trial: trial, Metric: stats.DepthAfterBaseline, Err: err}
	}
	fidBaseline, err := env.Fidelity(ctx, &optimized)
	if err != nil {
		return trialResult{}, &TrialError{Trial: trial, Metric: stats.FidelityAfterBase, Err: err}
	}
	if err := rollout.CheckFidelity(fidBaseline, -1); err != nil {
		return trialResult{}, &TrialError{Trial: trial, Metric: stats.FidelityAfterBase, Err: err}
	}

	r := trialResult{
		depthBefore:      float64(initial.Depth()),
		fidelityBefore:   fidBefore,
		depthLearned:     float64(last.Depth),
		fidelityLearned:  last.Fidelity,
		depthBaseline:    float64(optimized.Depth()),
		fidelityBaseline: fidBaseline,
	}
	if a.config.KeepTrajectories {
		r.trajectory = traj
	}
	return r, nil
}

// #endregion run-trial
