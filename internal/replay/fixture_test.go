package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/circuit"
)

func TestLoadFixtureRoundTrip(t *testing.T) {
	f := testFixture()
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loaded, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if loaded.Description != f.Description {
		t.Errorf("description = %q, want %q", loaded.Description, f.Description)
	}
	if len(loaded.Trials) != 3 {
		t.Fatalf("expected 3 trials, got %d", len(loaded.Trials))
	}
	if loaded.Config.StepBudget != 4 || loaded.Config.BaseSeed != 1 {
		t.Errorf("config did not round-trip: %+v", loaded.Config)
	}
	if len(loaded.Trials[0].Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(loaded.Trials[0].Steps))
	}
	if loaded.Expected.Tolerance != f.Expected.Tolerance {
		t.Errorf("tolerance = %v, want %v", loaded.Expected.Tolerance, f.Expected.Tolerance)
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFixtureBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{not json"), 0644)

	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCircuitConversionRoundTrip(t *testing.T) {
	c := circuit.Circuit{
		NumQubits: 2,
		Instructions: []circuit.Instruction{
			{Name: "h", Qubits: []int{0}},
			{Name: "cx", Qubits: []int{0, 1}},
			{Name: "rz", Qubits: []int{1}, Params: []float64{0.25}},
		},
	}

	fc := FromCircuit(c)
	back := fc.ToCircuit()
	if back.NumQubits != c.NumQubits {
		t.Fatalf("NumQubits = %d, want %d", back.NumQubits, c.NumQubits)
	}
	if len(back.Instructions) != len(c.Instructions) {
		t.Fatalf("expected %d instructions, got %d", len(c.Instructions), len(back.Instructions))
	}
	if back.Instructions[2].Params[0] != 0.25 {
		t.Errorf("params did not round-trip: %+v", back.Instructions[2])
	}
	if back.Depth() != c.Depth() {
		t.Errorf("depth changed across conversion: %d vs %d", back.Depth(), c.Depth())
	}
}

func TestToTrialsConfig(t *testing.T) {
	fc := FixtureConfig{
		StepBudget: 10,
		Confidence: 0.99,
		BaseSeed:   7,
		StripKinds: []string{"save_statevector"},
	}

	config := fc.ToTrialsConfig(5)
	if config.NumTrials != 5 {
		t.Errorf("NumTrials = %d, want 5", config.NumTrials)
	}
	if config.StepBudget != 10 || config.BaseSeed != 7 {
		t.Errorf("unexpected config: %+v", config)
	}
	if config.Workers != 1 {
		t.Errorf("replay must be sequential, got Workers = %d", config.Workers)
	}
	if len(config.StripKinds) != 1 || config.StripKinds[0] != "save_statevector" {
		t.Errorf("strip kinds not carried: %v", config.StripKinds)
	}
}
