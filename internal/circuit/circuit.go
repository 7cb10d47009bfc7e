package circuit

// #region types

// Instruction is one operation applied to a set of qubits.
type Instruction struct {
	Name   string    `json:"name"`
	Qubits []int     `json:"qubits"`
	Params []float64 `json:"params,omitempty"`
}

// Circuit is an immutable-by-convention snapshot of a quantum circuit.
// Mutating helpers return a new value; callers never edit Instructions in place.
type Circuit struct {
	NumQubits    int           `json:"num_qubits"`
	Instructions []Instruction `json:"instructions"`
}

// #endregion types

// #region depth

// Depth returns the number of sequential instruction layers under greedy
// as-soon-as-possible scheduling: each instruction lands one layer past the
// deepest layer currently occupied on any of its operand qubits.
func (c Circuit) Depth() int {
	frontier := make([]int, c.NumQubits)
	depth := 0

	for _, inst := range c.Instructions {
		layer := 0
		for _, q := range inst.Qubits {
			if q < 0 || q >= c.NumQubits {
				continue
			}
			if frontier[q] > layer {
				layer = frontier[q]
			}
		}
		layer++
		for _, q := range inst.Qubits {
			if q < 0 || q >= c.NumQubits {
				continue
			}
			frontier[q] = layer
		}
		if layer > depth {
			depth = layer
		}
	}
	return depth
}

// #endregion depth

// #region strip

// Strip returns a copy of the circuit with every instruction whose name
// matches one of kinds removed. The receiver is left untouched.
func (c Circuit) Strip(kinds ...string) Circuit {
	drop := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		drop[k] = true
	}

	kept := make([]Instruction, 0, len(c.Instructions))
	for _, inst := range c.Instructions {
		if drop[inst.Name] {
			continue
		}
		kept = append(kept, cloneInstruction(inst))
	}
	return Circuit{NumQubits: c.NumQubits, Instructions: kept}
}

// #endregion strip

// #region clone

// Clone returns a deep copy sharing no slices with the receiver.
func (c Circuit) Clone() Circuit {
	out := Circuit{
		NumQubits:    c.NumQubits,
		Instructions: make([]Instruction, len(c.Instructions)),
	}
	for i, inst := range c.Instructions {
		out.Instructions[i] = cloneInstruction(inst)
	}
	return out
}

func cloneInstruction(inst Instruction) Instruction {
	out := Instruction{Name: inst.Name}
	if len(inst.Qubits) > 0 {
		out.Qubits = append([]int(nil), inst.Qubits...)
	}
	if len(inst.Params) > 0 {
		out.Params = append([]float64(nil), inst.Params...)
	}
	return out
}

// #endregion clone

// #region count

// CountKind returns how many instructions carry the given name.
func (c Circuit) CountKind(name string) int {
	n := 0
	for _, inst := range c.Instructions {
		if inst.Name == name {
			n++
		}
	}
	return n
}

// #endregion count
