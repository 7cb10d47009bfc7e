package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/circuit"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/trials"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: a fully
// scripted comparison run plus the report values it is expected to produce.
type Fixture struct {
	Description string             `json:"description"`
	Config      FixtureConfig      `json:"config"`
	Trials      []FixtureTrial     `json:"trials"`
	Expected    FixtureExpectation `json:"expected"`
}

// FixtureConfig mirrors trials.Config with JSON tags. NumTrials is implicit:
// it is always len(Fixture.Trials).
type FixtureConfig struct {
	StepBudget int      `json:"step_budget"`
	Confidence float64  `json:"confidence"`
	BaseSeed   int64    `json:"base_seed"`
	StripKinds []string `json:"strip_kinds"`
}

// FixtureTrial scripts one matched trial end to end.
type FixtureTrial struct {
	InitialObservation []float32       `json:"initial_observation"`
	InitialCircuit     FixtureCircuit  `json:"initial_circuit"`
	FidelityBefore     float64         `json:"fidelity_before"`
	Steps              []FixtureStep   `json:"steps"`
	Baseline           FixtureBaseline `json:"baseline"`
}

// FixtureStep scripts one rollout step: the mask the policy must see, the
// action it must pick, and the environment's response.
type FixtureStep struct {
	Mask        []bool         `json:"mask"`
	Action      int            `json:"action"`
	Observation []float32      `json:"observation"`
	Done        bool           `json:"done"`
	Fidelity    float64        `json:"fidelity"`
	Circuit     FixtureCircuit `json:"circuit"`
}

// FixtureBaseline scripts the baseline optimizer's output for a trial.
type FixtureBaseline struct {
	Circuit  FixtureCircuit `json:"circuit"`
	Fidelity float64        `json:"fidelity"`
}

// FixtureCircuit mirrors circuit.Circuit with JSON tags.
type FixtureCircuit struct {
	NumQubits    int                  `json:"num_qubits"`
	Instructions []FixtureInstruction `json:"instructions"`
}

// FixtureInstruction mirrors circuit.Instruction with JSON tags.
type FixtureInstruction struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits"`
	Params []float64 `json:"params,omitempty"`
}

// FixtureExpectation lists report values the replayed run must reproduce.
// Tolerance is the absolute comparison tolerance; zero means exact.
type FixtureExpectation struct {
	Tolerance float64            `json:"tolerance"`
	Summaries []ExpectedSummary  `json:"summaries"`
	Tests     []ExpectedTest     `json:"tests"`
}

// ExpectedSummary pins the mean and sample std of one metric series.
type ExpectedSummary struct {
	Key  string  `json:"key"`
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// ExpectedTest pins one paired t-test outcome.
type ExpectedTest struct {
	Metric     string  `json:"metric"`
	Comparison string  `json:"comparison"`
	T          float64 `json:"t"`
	P          float64 `json:"p"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToCircuit converts a FixtureCircuit to a domain circuit.
func (fc *FixtureCircuit) ToCircuit() circuit.Circuit {
	c := circuit.Circuit{
		NumQubits:    fc.NumQubits,
		Instructions: make([]circuit.Instruction, len(fc.Instructions)),
	}
	for i, inst := range fc.Instructions {
		c.Instructions[i] = circuit.Instruction{
			Name:   inst.Name,
			Qubits: append([]int(nil), inst.Qubits...),
			Params: append([]float64(nil), inst.Params...),
		}
	}
	return c
}

// FromCircuit converts a domain circuit to its fixture form.
func FromCircuit(c circuit.Circuit) FixtureCircuit {
	fc := FixtureCircuit{
		NumQubits:    c.NumQubits,
		Instructions: make([]FixtureInstruction, len(c.Instructions)),
	}
	for i, inst := range c.Instructions {
		fc.Instructions[i] = FixtureInstruction{
			Name:   inst.Name,
			Qubits: append([]int(nil), inst.Qubits...),
			Params: append([]float64(nil), inst.Params...),
		}
	}
	return fc
}

// ToTrialsConfig converts a FixtureConfig to a domain comparison config.
// Replay is always sequential: the scripted collaborators share a cursor.
func (fc *FixtureConfig) ToTrialsConfig(numTrials int) trials.Config {
	return trials.Config{
		NumTrials:  numTrials,
		StepBudget: fc.StepBudget,
		BaseSeed:   fc.BaseSeed,
		Workers:    1,
		StripKinds: append([]string(nil), fc.StripKinds...),
	}
}

// #endregion fixture-loader
