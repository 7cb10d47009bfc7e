package circuit

import "testing"

func twoQubitBell() Circuit {
	return Circuit{
		NumQubits: 2,
		Instructions: []Instruction{
			{Name: "h", Qubits: []int{0}},
			{Name: "cx", Qubits: []int{0, 1}},
			{Name: "save_statevector", Qubits: []int{0, 1}},
		},
	}
}

func TestDepthLayeredScheduling(t *testing.T) {
	c := Circuit{
		NumQubits: 3,
		Instructions: []Instruction{
			{Name: "h", Qubits: []int{0}},
			{Name: "h", Qubits: []int{1}}, // parallel with the first h
			{Name: "cx", Qubits: []int{0, 1}},
			{Name: "x", Qubits: []int{2}}, // parallel with everything above
			{Name: "cx", Qubits: []int{1, 2}},
		},
	}
	if got := c.Depth(); got != 3 {
		t.Fatalf("expected depth 3, got %d", got)
	}
}

func TestDepthEmptyCircuit(t *testing.T) {
	c := Circuit{NumQubits: 4}
	if got := c.Depth(); got != 0 {
		t.Fatalf("expected depth 0, got %d", got)
	}
}

func TestStripRemovesOnlyNamedKinds(t *testing.T) {
	c := twoQubitBell()
	stripped := c.Strip("save_statevector", "measure")

	if len(stripped.Instructions) != 2 {
		t.Fatalf("expected 2 instructions after strip, got %d", len(stripped.Instructions))
	}
	if stripped.CountKind("save_statevector") != 0 {
		t.Fatal("save_statevector should be gone")
	}
	// Original untouched
	if c.CountKind("save_statevector") != 1 {
		t.Fatal("strip mutated the receiver")
	}
}

func TestStripIsDeepCopy(t *testing.T) {
	c := twoQubitBell()
	stripped := c.Strip()
	stripped.Instructions[0].Qubits[0] = 99
	if c.Instructions[0].Qubits[0] != 0 {
		t.Fatal("stripped copy shares qubit slice with original")
	}
}

func TestCloneIndependence(t *testing.T) {
	c := twoQubitBell()
	d := c.Clone()
	d.Instructions[1].Qubits[1] = 7
	if c.Instructions[1].Qubits[1] != 1 {
		t.Fatal("clone shares qubit slice with original")
	}
}
