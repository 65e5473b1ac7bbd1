// Package wasmop loads and invokes custom operators compiled to WASI
// (wasip1) WebAssembly modules via wazero, so a rule can call out to
// logic written in any language that targets WASM.
//
// Each invocation instantiates the compiled module anew with its
// arguments piped in on stdin as JSON and its result read back from
// stdout as JSON.
package wasmop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	wazeroSys "github.com/tetratelabs/wazero/sys"

	"github.com/sandrolain/rulelogic/pkg/value"
)

// Module is a loaded WASI custom-operator module, AOT-compiled once and
// instantiated fresh for every Invoke call so concurrent evaluations
// never share mutable WASM linear memory.
type Module struct {
	mu       sync.Mutex
	runtime  wazero.Runtime
	compiled wazero.CompiledModule
}

// request is the stdin envelope a custom WASM operator reads.
type request struct {
	Args []interface{} `json:"args"`
}

// response is the stdout envelope a custom WASM operator writes.
type response struct {
	Result interface{} `json:"result"`
	Error  string      `json:"error"`
}

// Load compiles wasmBytes as a wasip1 module. The module's exit code
// convention mirrors a CLI tool: exit 0 with a JSON envelope on stdout.
func Load(ctx context.Context, wasmBytes []byte) (*Module, error) {
	rt := wazero.NewRuntime(ctx)
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("wasmop: instantiate wasi_snapshot_preview1: %w", err)
	}
	compiled, err := rt.CompileModule(ctx, wasmBytes)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("wasmop: compile module: %w", err)
	}
	return &Module{runtime: rt, compiled: compiled}, nil
}

// Invoke runs the module once against args, returning a structured
// error both for host-side failures and for an explicit error field in
// the module's response envelope.
func (m *Module) Invoke(ctx context.Context, args []value.Value) (value.Value, *value.Error) {
	req := request{Args: make([]interface{}, len(args))}
	for i, a := range args {
		req.Args[i] = value.ToJSON(a)
	}
	payload, err := json.Marshal(req)
	if err != nil {
		return value.Null, value.NewError(value.InvalidArguments, "wasmop: marshal request: "+err.Error())
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var stdout bytes.Buffer
	modConfig := wazero.NewModuleConfig().
		WithStdin(bytes.NewReader(payload)).
		WithStdout(&stdout).
		WithArgs("custom-op").
		WithName("")
	_, execErr := m.runtime.InstantiateModule(ctx, m.compiled, modConfig)
	if execErr != nil {
		var exitErr *wazeroSys.ExitError
		if !errors.As(execErr, &exitErr) || exitErr.ExitCode() != 0 {
			return value.Null, value.NewError(value.InvalidArguments, "wasmop: module execution failed: "+execErr.Error())
		}
	}

	var env response
	if err := json.Unmarshal(stdout.Bytes(), &env); err != nil {
		return value.Null, value.NewError(value.InvalidArguments, "wasmop: malformed response envelope: "+err.Error())
	}
	if env.Error != "" {
		return value.Null, value.NewUserError(value.String(env.Error))
	}
	return value.FromJSON(env.Result), nil
}

// Close releases the underlying wazero runtime.
func (m *Module) Close(ctx context.Context) error {
	return m.runtime.Close(ctx)
}
