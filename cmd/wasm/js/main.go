//go:build js && wasm

// Command rulelogic-wasm-js is the WebAssembly entrypoint for browser and
// Node.js.
//
// It exposes a global `rulelogic` object with the following API:
//
//	rulelogic.version()                  → string
//	rulelogic.eval(ruleJSON, dataJSON)    → resultJSON  (throws on error)
//	rulelogic.compile(ruleJSON)          → { eval(dataJSON) → resultJSON }  (throws on error)
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o rulelogic.wasm ./cmd/wasm/js/
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/sandrolain/rulelogic"
	"github.com/sandrolain/rulelogic/pkg/value"
)

// jsThrow panics with a JS Error so the caller receives a thrown exception.
func jsThrow(msg string) {
	js.Global().Get("Error").New(msg)
	panic(msg)
}

// jsEval implements rulelogic.eval(ruleJSON, dataJSON) → resultJSON.
func jsEval(_ js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		jsThrow("rulelogic.eval requires 2 arguments: rule (JSON string) and data (JSON string)")
	}
	ruleJSON := args[0].String()
	dataJSON := args[1].String()

	result, err := rulelogic.EvaluateString(context.Background(), ruleJSON, dataJSON)
	if err != nil {
		jsThrow(fmt.Sprintf("rulelogic.eval: %v", err))
	}

	out, err := json.Marshal(value.ToJSON(result))
	if err != nil {
		jsThrow(fmt.Sprintf("rulelogic.eval: marshal result: %v", err))
	}
	return string(out)
}

// jsCompile implements rulelogic.compile(ruleJSON) → { eval(dataJSON) → resultJSON }.
func jsCompile(_ js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		jsThrow("rulelogic.compile requires 1 argument: rule (JSON string)")
	}

	expr, err := rulelogic.ParseString(args[0].String())
	if err != nil {
		jsThrow(fmt.Sprintf("rulelogic.compile: %v", err))
	}

	ev := rulelogic.New()

	evalFn := js.FuncOf(func(_ js.Value, innerArgs []js.Value) interface{} {
		if len(innerArgs) < 1 {
			jsThrow("compiled.eval requires 1 argument: data (JSON string)")
		}
		data, e := rulelogic.ParseData(innerArgs[0].String())
		if e != nil {
			jsThrow(fmt.Sprintf("compiled.eval: %v", e))
		}
		r, e := ev.Eval(context.Background(), expr, data)
		if e != nil {
			jsThrow(fmt.Sprintf("compiled.eval: %v", e))
		}
		out, _ := json.Marshal(value.ToJSON(r))
		return string(out)
	})

	obj := js.ValueOf(map[string]interface{}{"eval": evalFn})
	return obj
}

func main() {
	api := map[string]interface{}{
		"eval":    js.FuncOf(jsEval),
		"compile": js.FuncOf(jsCompile),
		"version": js.FuncOf(func(_ js.Value, _ []js.Value) interface{} {
			return "v0.1.0-dev"
		}),
	}
	js.Global().Set("rulelogic", js.ValueOf(api))

	// Block forever — the JS event loop owns execution from here.
	select {}
}
