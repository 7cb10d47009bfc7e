package codec

import (
	"context"
	"fmt"

	pb "github.com/danielpatrickdp/qopt-eval/go-evaluator/gen/sidecar"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/circuit"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/rollout"
	"github.com/danielpatrickdp/qopt-eval/go-evaluator/internal/trials"
)

// #region config
// Config controls how the client drives the sidecar.
type Config struct {
	// OptimizationLevel is passed to the baseline transpiler, 0-3.
	OptimizationLevel int
	// RecurrentSize is the width of the policy's flattened hidden state.
	// Must match the checkpoint loaded by the sidecar.
	RecurrentSize int
}

// DefaultConfig matches the sidecar's default PPO checkpoint.
func DefaultConfig() Config {
	return Config{
		OptimizationLevel: 3,
		RecurrentSize:     256,
	}
}

// #endregion config

// #region client-struct
// SidecarClient wraps the gRPC connection to the Python simulation service
// and adapts it to the engine's Policy, Environment, and Baseline interfaces.
// One client is one sidecar session: it holds the sidecar's environment
// state, so concurrent trials each need their own client.
type SidecarClient struct {
	conn   *grpc.ClientConn
	client pb.SidecarClient
	config Config
}

var (
	_ rollout.Policy      = (*SidecarClient)(nil)
	_ rollout.Environment = (*SidecarClient)(nil)
	_ trials.Baseline     = (*SidecarClient)(nil)
)

// #endregion client-struct

// #region constructor
// NewSidecarClient connects to the Python simulation gRPC server.
func NewSidecarClient(addr string, config Config) (*SidecarClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &SidecarClient{
		conn:   conn,
		client: pb.NewSidecarClient(conn),
		config: config,
	}, nil
}

// NewSidecarClientWithService creates a SidecarClient with an injected
// service implementation. Used for testing without a real gRPC connection.
func NewSidecarClientWithService(svc pb.SidecarClient, config Config) *SidecarClient {
	return &SidecarClient{client: svc, config: config}
}

// NewSessionFactory returns a trials.SessionFactory that dials a fresh
// sidecar session per call. Each client created is reported through onDial
// (if non-nil) so the caller can close it when the run ends.
func NewSessionFactory(addr string, config Config, onDial func(*SidecarClient)) trials.SessionFactory {
	return func() (rollout.Environment, rollout.Policy, error) {
		c, err := NewSidecarClient(addr, config)
		if err != nil {
			return nil, nil, err
		}
		if onDial != nil {
			onDial(c)
		}
		return c, c, nil
	}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection. No-op for injected services.
func (c *SidecarClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region environment
// Reset re-seeds the sidecar's environment and returns the initial observation.
func (c *SidecarClient) Reset(ctx context.Context, seed int64) (rollout.Observation, error) {
	resp, err := c.client.Reset(ctx, &pb.ResetRequest{Seed: seed})
	if err != nil {
		return nil, fmt.Errorf("reset rpc: %w", err)
	}
	return rollout.Observation(resp.Observation), nil
}

// Step applies an action in the sidecar's environment.
func (c *SidecarClient) Step(ctx context.Context, action int) (rollout.Observation, bool, error) {
	resp, err := c.client.Step(ctx, &pb.StepRequest{Action: int32(action)})
	if err != nil {
		return nil, false, fmt.Errorf("step rpc: %w", err)
	}
	return rollout.Observation(resp.Observation), resp.Done, nil
}

// CurrentCircuit snapshots the sidecar's current circuit.
func (c *SidecarClient) CurrentCircuit(ctx context.Context) (circuit.Circuit, error) {
	resp, err := c.client.CurrentCircuit(ctx, &pb.CurrentCircuitRequest{})
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("current circuit rpc: %w", err)
	}
	return circuitFromProto(resp.Circuit), nil
}

// Fidelity asks the sidecar to evaluate a circuit against the target state.
// A nil circuit means the sidecar's current circuit.
func (c *SidecarClient) Fidelity(ctx context.Context, cc *circuit.Circuit) (float64, error) {
	req := &pb.FidelityRequest{}
	if cc != nil {
		req.Circuit = circuitToProto(*cc)
	}
	resp, err := c.client.Fidelity(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("fidelity rpc: %w", err)
	}
	return resp.Fidelity, nil
}

// #endregion environment

// #region policy
// InitialRecurrentState returns a zeroed hidden state of the configured width.
func (c *SidecarClient) InitialRecurrentState() rollout.RecurrentState {
	return make(rollout.RecurrentState, c.config.RecurrentSize)
}

// ComputeActionMask fetches the legal-action mask for the sidecar's current
// circuit. The env argument is ignored: the sidecar holds both the policy and
// the environment, so the mask is computed server-side.
func (c *SidecarClient) ComputeActionMask(ctx context.Context, _ rollout.Environment) (rollout.ActionMask, error) {
	resp, err := c.client.ActionMask(ctx, &pb.ActionMaskRequest{})
	if err != nil {
		return nil, fmt.Errorf("action mask rpc: %w", err)
	}
	return rollout.ActionMask(resp.Mask), nil
}

// SelectAction runs one policy inference step on the sidecar.
func (c *SidecarClient) SelectAction(ctx context.Context, obs rollout.Observation, rec rollout.RecurrentState, mask rollout.ActionMask) (int, rollout.RecurrentState, error) {
	resp, err := c.client.SelectAction(ctx, &pb.SelectActionRequest{
		Observation:    obs,
		RecurrentState: rec,
		Mask:           mask,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("select action rpc: %w", err)
	}
	return int(resp.Action), rollout.RecurrentState(resp.RecurrentState), nil
}

// #endregion policy

// #region baseline
// Optimize runs the sidecar's baseline transpiler on a circuit.
func (c *SidecarClient) Optimize(ctx context.Context, cc circuit.Circuit) (circuit.Circuit, error) {
	resp, err := c.client.Transpile(ctx, &pb.TranspileRequest{
		Circuit:           circuitToProto(cc),
		OptimizationLevel: int32(c.config.OptimizationLevel),
	})
	if err != nil {
		return circuit.Circuit{}, fmt.Errorf("transpile rpc: %w", err)
	}
	return circuitFromProto(resp.Circuit), nil
}

// #endregion baseline

// #region conversions

func circuitToProto(c circuit.Circuit) *pb.Circuit {
	out := &pb.Circuit{
		NumQubits:    int32(c.NumQubits),
		Instructions: make([]*pb.Instruction, len(c.Instructions)),
	}
	for i, inst := range c.Instructions {
		qubits := make([]int32, len(inst.Qubits))
		for j, q := range inst.Qubits {
			qubits[j] = int32(q)
		}
		out.Instructions[i] = &pb.Instruction{
			Name:   inst.Name,
			Qubits: qubits,
			Params: append([]float64(nil), inst.Params...),
		}
	}
	return out
}

func circuitFromProto(c *pb.Circuit) circuit.Circuit {
	if c == nil {
		return circuit.Circuit{}
	}
	out := circuit.Circuit{
		NumQubits:    int(c.NumQubits),
		Instructions: make([]circuit.Instruction, len(c.Instructions)),
	}
	for i, inst := range c.Instructions {
		qubits := make([]int, len(inst.Qubits))
		for j, q := range inst.Qubits {
			qubits[j] = int(q)
		}
		out.Instructions[i] = circuit.Instruction{
			Name:   inst.Name,
			Qubits: qubits,
			Params: append([]float64(nil), inst.Params...),
		}
	}
	return out
}

// #endregion conversions
